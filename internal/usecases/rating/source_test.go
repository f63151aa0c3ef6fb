package rating

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/capex-consolidado/internal/config"
	"github.com/vfg2006/capex-consolidado/internal/domain"
	"github.com/vfg2006/capex-consolidado/internal/usecases/rating/mocks"
	"go.uber.org/mock/gomock"
)

func TestMergedSource_FetchAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	profiles, err := config.LoadProfiles("")
	require.NoError(t, err)

	ctx := context.Background()

	tests := []struct {
		name     string
		country  string
		setup    func(feed *mocks.MockFeedRateProvider, bank *mocks.MockCentralBankRateRepository)
		validate func(t *testing.T, entries []domain.RateEntry, err error)
	}{
		{
			name:    "Combina feed e warehouse por data priorizando a taxa do warehouse",
			country: "venezuela",
			setup: func(feed *mocks.MockFeedRateProvider, bank *mocks.MockCentralBankRateRepository) {
				feed.EXPECT().GetFeedRates(gomock.Any(), "http://feed.local/").Return([]domain.FeedRate{
					{Date: date(2026, 1, 30), FeedRate: decimal.RequireFromString("38.25"), CentralBankRate: decimal.RequireFromString("36.00")},
					{Date: date(2026, 1, 29), FeedRate: decimal.RequireFromString("38.10"), CentralBankRate: decimal.RequireFromString("36.40")},
				}, nil)
				bank.EXPECT().ListRates(gomock.Any(), "cxp_vzla.bcv_tasas").Return([]domain.CentralBankRate{
					{Date: date(2026, 1, 30), USD: decimal.RequireFromString("36.5012")},
					{Date: date(2026, 1, 28), USD: decimal.RequireFromString("36.3000")},
				}, nil)
			},
			validate: func(t *testing.T, entries []domain.RateEntry, err error) {
				require.NoError(t, err)
				require.Len(t, entries, 3)

				assert.Equal(t, date(2026, 1, 28), entries[0].Date)
				assert.True(t, entries[0].FeedRate.IsZero())
				assert.True(t, entries[0].CentralBankRate.Equal(decimal.RequireFromString("36.3")))

				assert.Equal(t, date(2026, 1, 29), entries[1].Date)
				assert.True(t, entries[1].CentralBankRate.Equal(decimal.RequireFromString("36.40")))

				assert.Equal(t, "vzla", entries[2].Country)
				assert.True(t, entries[2].FeedRate.Equal(decimal.RequireFromString("38.25")))
				assert.True(t, entries[2].CentralBankRate.Equal(decimal.RequireFromString("36.5012")))
			},
		},
		{
			name:    "Erro do feed interrompe a carga",
			country: "vzla",
			setup: func(feed *mocks.MockFeedRateProvider, bank *mocks.MockCentralBankRateRepository) {
				feed.EXPECT().GetFeedRates(gomock.Any(), gomock.Any()).Return(nil, errors.New("status 503"))
			},
			validate: func(t *testing.T, _ []domain.RateEntry, err error) {
				assert.ErrorIs(t, err, ErrRateSource)
				assert.Contains(t, err.Error(), "status 503")
			},
		},
		{
			name:    "Erro do warehouse interrompe a carga",
			country: "vzla",
			setup: func(feed *mocks.MockFeedRateProvider, bank *mocks.MockCentralBankRateRepository) {
				feed.EXPECT().GetFeedRates(gomock.Any(), gomock.Any()).Return(nil, nil)
				bank.EXPECT().ListRates(gomock.Any(), "cxp_vzla.bcv_tasas").Return(nil, errors.New("conexão recusada"))
			},
			validate: func(t *testing.T, _ []domain.RateEntry, err error) {
				assert.ErrorIs(t, err, ErrRateSource)
				assert.Contains(t, err.Error(), "cxp_vzla.bcv_tasas")
			},
		},
		{
			name:    "País sem perfil",
			country: "peru",
			setup:   func(*mocks.MockFeedRateProvider, *mocks.MockCentralBankRateRepository) {},
			validate: func(t *testing.T, _ []domain.RateEntry, err error) {
				assert.ErrorIs(t, err, config.ErrUnknownCountry)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			feed := mocks.NewMockFeedRateProvider(ctrl)
			bank := mocks.NewMockCentralBankRateRepository(ctrl)
			tt.setup(feed, bank)

			source := NewMergedSource(feed, bank, profiles, "http://feed.local/")
			entries, err := source.FetchAll(ctx, tt.country)
			tt.validate(t, entries, err)
		})
	}
}
