package ftdclient

import (
	"context"
	"io"
	"net/http"
	"net/url"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	ftddomain "github.com/vfg2006/capex-consolidado/infrastructure/integrator/ftd/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var ErrMissingData = errors.New("resposta do feed sem campo datos")

type RatesParams struct {
	Ctx      context.Context
	Endpoint string
}

type RatesResponse = ftddomain.RatesResponse

func (c *FTDClient) GetRates(params RatesParams) (RatesResponse, error) {
	var response RatesResponse

	parent := params.Ctx
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithTimeout(parent, c.timeout)
	defer cancel()

	endpoint, err := url.Parse(params.Endpoint)
	if err != nil {
		return response, errors.Wrap(err, "erro ao analisar a URL do feed")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return response, errors.Wrap(err, "erro ao criar a requisição")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return response, errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return response, errors.Errorf("requisição ao feed falhou com status %s: %s", resp.Status, body)
	}

	var raw map[string]jsoniter.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return response, errors.Wrap(err, "erro ao decodificar a resposta")
	}

	datos, ok := raw["datos"]
	if !ok {
		return response, ErrMissingData
	}
	if err := json.Unmarshal(datos, &response.Datos); err != nil {
		return response, errors.Wrap(err, "erro ao decodificar as taxas")
	}

	return response, nil
}
