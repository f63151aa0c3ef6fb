package ftd

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/capex-consolidado/infrastructure/integrator/ftd/ftdclient"
	"github.com/vfg2006/capex-consolidado/internal/domain"
)

type FeedIntegrator interface {
	GetFeedRates(ctx context.Context, endpoint string) ([]domain.FeedRate, error)
}

type FTDService struct {
	Client ftdclient.Client
}

func New(client ftdclient.Client) FeedIntegrator {
	return &FTDService{
		Client: client,
	}
}

// GetFeedRates converte os registros do feed; datas ilegíveis são descartadas
func (s *FTDService) GetFeedRates(ctx context.Context, endpoint string) ([]domain.FeedRate, error) {
	resp, err := s.Client.GetRates(ftdclient.RatesParams{Ctx: ctx, Endpoint: endpoint})
	if err != nil {
		return nil, err
	}

	rates := make([]domain.FeedRate, 0, len(resp.Datos))
	skipped := 0
	for _, item := range resp.Datos {
		date, err := parseValidity(item.FechaVigencia)
		if err != nil {
			skipped++
			continue
		}

		rates = append(rates, domain.FeedRate{
			Date:            date,
			FeedRate:        item.TasaFarmatodo,
			CentralBankRate: item.TasaBCV,
			ReferenceRate:   item.TasaReferencial,
		})
	}

	logger := logrus.WithFields(logrus.Fields{
		"endpoint": endpoint,
		"rates":    len(rates),
	})
	if skipped > 0 {
		logger.WithField("skipped", skipped).Warn("ftd: registros com data inválida ignorados")
	} else {
		logger.Debug("ftd: taxas obtidas")
	}

	return rates, nil
}

// parseValidity aceita "2006-01-02" e variantes com hora
func parseValidity(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if len(value) > len(time.DateOnly) {
		value = value[:len(time.DateOnly)]
	}
	return time.Parse(time.DateOnly, value)
}
