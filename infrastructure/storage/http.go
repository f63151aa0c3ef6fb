package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	pkgerrors "github.com/pkg/errors"
	"github.com/vfg2006/capex-consolidado/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// HTTPStore fala com um bucket exposto por HTTP: GET/PUT/DELETE em
// {url}/{bucket}/{key} e listagem em {url}/{bucket}?prefix=
type HTTPStore struct {
	baseURL    string
	bucket     string
	token      string
	httpClient *http.Client
}

func NewHTTPStore(cfg config.Storage) *HTTPStore {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &HTTPStore{
		baseURL: strings.TrimRight(cfg.BucketURL, "/"),
		bucket:  cfg.BucketName,
		token:   cfg.AccessToken,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (s *HTTPStore) objectURL(key string) string {
	escaped := make([]string, 0)
	for _, part := range strings.Split(key, "/") {
		escaped = append(escaped, url.PathEscape(part))
	}
	return fmt.Sprintf("%s/%s/%s", s.baseURL, url.PathEscape(s.bucket), strings.Join(escaped, "/"))
}

func (s *HTTPStore) newRequest(ctx context.Context, method, target string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao criar a requisição")
	}
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	return req, nil
}

func (s *HTTPStore) do(req *http.Request, key string) (*http.Response, error) {
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "erro ao executar %s %s", req.Method, key)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		resp.Body.Close()
		return nil, pkgerrors.Wrap(ErrObjectNotFound, key)
	case resp.StatusCode >= 300:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		resp.Body.Close()
		return nil, pkgerrors.Errorf("storage: %s %s falhou com status %s: %s", req.Method, key, resp.Status, body)
	}
	return resp, nil
}

func (s *HTTPStore) Get(ctx context.Context, key string) ([]byte, error) {
	name, err := cleanKey(key)
	if err != nil {
		return nil, err
	}

	req, err := s.newRequest(ctx, http.MethodGet, s.objectURL(name), nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.do(req, name)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "erro ao ler %s", name)
	}
	return content, nil
}

func (s *HTTPStore) Put(ctx context.Context, key string, content []byte) error {
	name, err := cleanKey(key)
	if err != nil {
		return err
	}

	req, err := s.newRequest(ctx, http.MethodPut, s.objectURL(name), bytes.NewReader(content))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	resp, err := s.do(req, name)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

func (s *HTTPStore) Delete(ctx context.Context, key string) error {
	name, err := cleanKey(key)
	if err != nil {
		return err
	}

	req, err := s.newRequest(ctx, http.MethodDelete, s.objectURL(name), nil)
	if err != nil {
		return err
	}

	resp, err := s.do(req, name)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

func (s *HTTPStore) List(ctx context.Context, prefix string) ([]ObjectInfo, error) {
	target := fmt.Sprintf("%s/%s?prefix=%s", s.baseURL, url.PathEscape(s.bucket), url.QueryEscape(prefix))

	req, err := s.newRequest(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.do(req, prefix)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var objects []ObjectInfo
	if err := json.NewDecoder(resp.Body).Decode(&objects); err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao decodificar a listagem")
	}
	if objects == nil {
		objects = []ObjectInfo{}
	}
	return objects, nil
}

func (s *HTTPStore) Info() StoreInfo {
	return StoreInfo{Driver: "http", Location: fmt.Sprintf("%s/%s", s.baseURL, s.bucket)}
}
