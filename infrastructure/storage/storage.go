// Package storage guarda templates e artefatos gerados (BOSQUETO e consolidados)
package storage

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/spf13/afero"
	"github.com/vfg2006/capex-consolidado/internal/config"
)

var (
	ErrObjectNotFound = errors.New("objeto não encontrado")
	ErrInvalidKey     = errors.New("chave de objeto inválida")
)

type ObjectInfo struct {
	Key       string    `json:"key"`
	Size      int64     `json:"size"`
	UpdatedAt time.Time `json:"updated_at"`
}

type StoreInfo struct {
	Driver   string `json:"driver"`
	Location string `json:"location"`
}

type ObjectStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, content []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context, prefix string) ([]ObjectInfo, error)
	Info() StoreInfo
}

// New escolhe a implementação pelo driver configurado
func New(cfg config.Storage) (ObjectStore, error) {
	switch cfg.Driver {
	case "", "fs":
		return NewFileStore(afero.NewOsFs(), cfg.BasePath), nil
	case "http":
		if cfg.BucketURL == "" {
			return nil, fmt.Errorf("storage http exige STORAGE_BUCKET_URL")
		}
		return NewHTTPStore(cfg), nil
	default:
		return nil, fmt.Errorf("driver de storage desconhecido: %s", cfg.Driver)
	}
}

// cleanKey normaliza a chave e recusa caminhos que saem da raiz do storage
func cleanKey(key string) (string, error) {
	key = strings.TrimSpace(strings.ReplaceAll(key, "\\", "/"))
	if key == "" {
		return "", ErrInvalidKey
	}
	for _, part := range strings.Split(key, "/") {
		if part == ".." {
			return "", fmt.Errorf("%w: %s", ErrInvalidKey, key)
		}
	}
	cleaned := strings.TrimPrefix(path.Clean("/"+key), "/")
	if cleaned == "" {
		return "", ErrInvalidKey
	}
	return cleaned, nil
}
