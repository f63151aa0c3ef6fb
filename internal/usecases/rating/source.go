package rating

import (
	"context"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/capex-consolidado/internal/config"
	"github.com/vfg2006/capex-consolidado/internal/domain"
)

// FeedRateProvider obtém as taxas do feed externo (tasa_farmatodo)
type FeedRateProvider interface {
	GetFeedRates(ctx context.Context, endpoint string) ([]domain.FeedRate, error)
}

// CentralBankRateRepository lê a tabela de taxas do banco central no warehouse
type CentralBankRateRepository interface {
	ListRates(ctx context.Context, table string) ([]domain.CentralBankRate, error)
}

// RateSource é a fonte de verdade consultada quando o cache precisa ser carregado
type RateSource interface {
	FetchAll(ctx context.Context, country string) ([]domain.RateEntry, error)
}

// MergedSource combina o feed e o warehouse por data. A taxa do banco central
// vem do warehouse; quando a data não existe lá, usa a tasa_bcv do feed.
type MergedSource struct {
	feed            FeedRateProvider
	centralBank     CentralBankRateRepository
	profiles        config.Profiles
	defaultEndpoint string
}

func NewMergedSource(feed FeedRateProvider, centralBank CentralBankRateRepository, profiles config.Profiles, defaultEndpoint string) *MergedSource {
	return &MergedSource{
		feed:            feed,
		centralBank:     centralBank,
		profiles:        profiles,
		defaultEndpoint: defaultEndpoint,
	}
}

func (s *MergedSource) FetchAll(ctx context.Context, country string) ([]domain.RateEntry, error) {
	profile, err := s.profiles.Get(country)
	if err != nil {
		return nil, err
	}

	endpoint := profile.Rates.FeedURL
	if endpoint == "" {
		endpoint = s.defaultEndpoint
	}

	feedRates, err := s.feed.GetFeedRates(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: feed: %w", ErrRateSource, err)
	}

	bankRates, err := s.centralBank.ListRates(ctx, profile.Rates.CentralBankTable)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRateSource, profile.Rates.CentralBankTable, err)
	}

	byDate := make(map[string]*domain.RateEntry, len(feedRates))
	for _, fr := range feedRates {
		key := domain.DateKey(fr.Date)
		byDate[key] = &domain.RateEntry{
			Date:            fr.Date,
			Country:         profile.Key,
			FeedRate:        fr.FeedRate,
			CentralBankRate: fr.CentralBankRate,
		}
	}

	for _, br := range bankRates {
		key := domain.DateKey(br.Date)
		entry, ok := byDate[key]
		if !ok {
			entry = &domain.RateEntry{Date: br.Date, Country: profile.Key}
			byDate[key] = entry
		}
		if br.USD.IsPositive() {
			entry.CentralBankRate = br.USD
		}
	}

	keys := make([]string, 0, len(byDate))
	for key := range byDate {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	entries := make([]domain.RateEntry, 0, len(keys))
	for _, key := range keys {
		entries = append(entries, *byDate[key])
	}

	logrus.WithFields(logrus.Fields{
		"country":      profile.Key,
		"feed":         len(feedRates),
		"central_bank": len(bankRates),
		"merged":       len(entries),
	}).Debug("rates: fontes combinadas")

	return entries, nil
}
