package rating

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/capex-consolidado/internal/domain"
	"github.com/vfg2006/capex-consolidado/pkg/metrics"
)

type RateResolver interface {
	Resolve(ctx context.Context, date time.Time, country string) (domain.RateEntry, error)
	PreloadAll(ctx context.Context, country string) (*RateTable, error)
	Snapshot(country string) *RateTable
	ClearCache()
	Countries() []string
}

type Service struct {
	source RateSource
	cache  *Cache
	now    func() time.Time
}

func NewService(source RateSource) *Service {
	return &Service{
		source: source,
		cache:  NewCache(),
		now:    time.Now,
	}
}

// Resolve carrega o snapshot do país sob demanda e procura a data exata
func (s *Service) Resolve(ctx context.Context, date time.Time, country string) (domain.RateEntry, error) {
	table := s.cache.Get(country)
	if table == nil {
		loaded, err := s.PreloadAll(ctx, country)
		if err != nil {
			return domain.RateEntry{}, err
		}
		table = loaded
	}

	entry, err := table.Lookup(date)
	metrics.IncRateLookup(country, err == nil)
	if err != nil {
		var notFound *RateNotFoundError
		if errors.As(err, &notFound) {
			logrus.WithFields(logrus.Fields{
				"country": country,
				"date":    domain.DateKey(date),
				"missing": notFound.Missing,
			}).Warn("rates: taxa não encontrada")
		}
		return domain.RateEntry{}, err
	}

	return entry, nil
}

// PreloadAll busca todas as taxas na fonte e substitui o snapshot do país
func (s *Service) PreloadAll(ctx context.Context, country string) (*RateTable, error) {
	start := s.now()

	entries, err := s.source.FetchAll(ctx, country)
	if err != nil {
		metrics.ObserveRatePreload(country, 0, err)
		logrus.WithError(err).WithField("country", country).Error("rates: erro ao carregar taxas")
		return nil, err
	}

	table := NewRateTable(country, entries, s.now())
	s.cache.Put(table)
	metrics.ObserveRatePreload(country, table.Len(), nil)

	logrus.WithFields(logrus.Fields{
		"country":  country,
		"entries":  table.Len(),
		"duration": time.Since(start).String(),
	}).Info("rates: cache carregado")

	return table, nil
}

// Snapshot retorna o snapshot atual ou nil quando o país ainda não foi carregado
func (s *Service) Snapshot(country string) *RateTable {
	return s.cache.Get(country)
}

func (s *Service) ClearCache() {
	s.cache.Clear()
	metrics.ResetRateEntries()
	logrus.Info("rates: cache limpo")
}

func (s *Service) Countries() []string {
	return s.cache.Countries()
}
