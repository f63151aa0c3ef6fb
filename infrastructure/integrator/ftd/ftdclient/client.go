package ftdclient

import (
	"net/http"
	"time"

	"github.com/vfg2006/capex-consolidado/internal/config"
)

type Client interface {
	GetRates(params RatesParams) (RatesResponse, error)
}

type FTDClient struct {
	httpClient *http.Client
	timeout    time.Duration
}

// NewClient cria o cliente do feed de taxas; sem timeout configurado usa 30s
func NewClient(cfg config.Feed) Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &FTDClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		timeout: timeout,
	}
}
