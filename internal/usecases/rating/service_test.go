package rating

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/capex-consolidado/internal/domain"
	"github.com/vfg2006/capex-consolidado/internal/usecases/rating/mocks"
	"go.uber.org/mock/gomock"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func entry(d time.Time, feed, bank string) domain.RateEntry {
	return domain.RateEntry{
		Date:            d,
		FeedRate:        decimal.RequireFromString(feed),
		CentralBankRate: decimal.RequireFromString(bank),
	}
}

func TestService_Resolve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	tests := []struct {
		name     string
		date     time.Time
		setup    func(source *mocks.MockRateSource)
		validate func(t *testing.T, got domain.RateEntry, err error)
	}{
		{
			name: "Carrega o cache na primeira consulta e encontra a data exata",
			date: date(2026, 1, 30),
			setup: func(source *mocks.MockRateSource) {
				source.EXPECT().FetchAll(gomock.Any(), "vzla").Return([]domain.RateEntry{
					entry(date(2026, 1, 29), "38.10", "36.40"),
					entry(date(2026, 1, 30), "38.25", "36.50"),
				}, nil).Times(1)
			},
			validate: func(t *testing.T, got domain.RateEntry, err error) {
				require.NoError(t, err)
				assert.Equal(t, "vzla", got.Country)
				assert.True(t, got.FeedRate.Equal(decimal.RequireFromString("38.25")))
				assert.True(t, got.CentralBankRate.Equal(decimal.RequireFromString("36.50")))
			},
		},
		{
			name: "Data ausente falha sem buscar a data anterior",
			date: date(2026, 1, 31),
			setup: func(source *mocks.MockRateSource) {
				source.EXPECT().FetchAll(gomock.Any(), "vzla").Return([]domain.RateEntry{
					entry(date(2026, 1, 30), "38.25", "36.50"),
				}, nil)
			},
			validate: func(t *testing.T, _ domain.RateEntry, err error) {
				var notFound *RateNotFoundError
				require.ErrorAs(t, err, &notFound)
				assert.ErrorIs(t, err, ErrRateNotFound)
				assert.Equal(t, "vzla", notFound.Country)
				assert.Equal(t, date(2026, 1, 31), notFound.Date)
				assert.Equal(t, []string{MissingFeedRate, MissingCentralBankRate}, notFound.Missing)
			},
		},
		{
			name: "Entrada sem taxa do feed informa qual taxa falta",
			date: date(2026, 1, 30),
			setup: func(source *mocks.MockRateSource) {
				source.EXPECT().FetchAll(gomock.Any(), "vzla").Return([]domain.RateEntry{
					entry(date(2026, 1, 30), "0", "36.50"),
				}, nil)
			},
			validate: func(t *testing.T, _ domain.RateEntry, err error) {
				var notFound *RateNotFoundError
				require.ErrorAs(t, err, &notFound)
				assert.Equal(t, []string{MissingFeedRate}, notFound.Missing)
			},
		},
		{
			name: "Erro da fonte é propagado",
			date: date(2026, 1, 30),
			setup: func(source *mocks.MockRateSource) {
				source.EXPECT().FetchAll(gomock.Any(), "vzla").Return(nil, ErrRateSource)
			},
			validate: func(t *testing.T, _ domain.RateEntry, err error) {
				assert.ErrorIs(t, err, ErrRateSource)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := mocks.NewMockRateSource(ctrl)
			tt.setup(source)

			service := NewService(source)
			got, err := service.Resolve(ctx, tt.date, "vzla")
			tt.validate(t, got, err)
		})
	}
}

func TestService_CacheLifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	source := mocks.NewMockRateSource(ctrl)
	service := NewService(source)

	first := source.EXPECT().FetchAll(gomock.Any(), "vzla").Return([]domain.RateEntry{
		entry(date(2026, 2, 2), "40.00", "38.00"),
	}, nil).Times(1)

	// Segunda consulta usa o snapshot sem tocar na fonte
	_, err := service.Resolve(ctx, date(2026, 2, 2), "vzla")
	require.NoError(t, err)
	_, err = service.Resolve(ctx, date(2026, 2, 2), "vzla")
	require.NoError(t, err)
	assert.Equal(t, []string{"vzla"}, service.Countries())

	service.ClearCache()
	assert.Nil(t, service.Snapshot("vzla"))

	source.EXPECT().FetchAll(gomock.Any(), "vzla").Return([]domain.RateEntry{
		entry(date(2026, 2, 2), "41.00", "38.00"),
	}, nil).Times(1).After(first)

	got, err := service.Resolve(ctx, date(2026, 2, 2), "vzla")
	require.NoError(t, err)
	assert.True(t, got.FeedRate.Equal(decimal.NewFromInt(41)))
}

func TestService_PreloadAllReplacesSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	source := mocks.NewMockRateSource(ctrl)
	service := NewService(source)

	gomock.InOrder(
		source.EXPECT().FetchAll(gomock.Any(), "vzla").Return([]domain.RateEntry{
			entry(date(2026, 2, 2), "40.00", "38.00"),
		}, nil),
		source.EXPECT().FetchAll(gomock.Any(), "vzla").Return([]domain.RateEntry{
			entry(date(2026, 2, 3), "40.50", "38.10"),
		}, nil),
	)

	old, err := service.PreloadAll(ctx, "vzla")
	require.NoError(t, err)

	_, err = service.PreloadAll(ctx, "vzla")
	require.NoError(t, err)

	// O snapshot antigo continua íntegro para quem já o tinha
	_, err = old.Lookup(date(2026, 2, 2))
	assert.NoError(t, err)

	current := service.Snapshot("vzla")
	_, err = current.Lookup(date(2026, 2, 2))
	assert.Error(t, err)
	_, err = current.Lookup(date(2026, 2, 3))
	assert.NoError(t, err)

	latest, ok := current.Latest()
	require.True(t, ok)
	assert.Equal(t, date(2026, 2, 3), latest.Date)
}

func TestService_PreloadAllFailureKeepsPreviousSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	source := mocks.NewMockRateSource(ctrl)
	service := NewService(source)

	gomock.InOrder(
		source.EXPECT().FetchAll(gomock.Any(), "vzla").Return([]domain.RateEntry{
			entry(date(2026, 2, 2), "40.00", "38.00"),
		}, nil),
		source.EXPECT().FetchAll(gomock.Any(), "vzla").Return(nil, errors.New("timeout")),
	)

	_, err := service.PreloadAll(ctx, "vzla")
	require.NoError(t, err)
	_, err = service.PreloadAll(ctx, "vzla")
	require.Error(t, err)

	got, err := service.Resolve(ctx, date(2026, 2, 2), "vzla")
	require.NoError(t, err)
	assert.True(t, got.CentralBankRate.Equal(decimal.NewFromInt(38)))
}

func TestCache_ConcurrentReadersDuringReplace(t *testing.T) {
	cache := NewCache()
	cache.Put(NewRateTable("vzla", []domain.RateEntry{entry(date(2026, 2, 2), "1", "1")}, time.Now()))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			cache.Put(NewRateTable("vzla", []domain.RateEntry{
				entry(date(2026, 2, 2), "1", "1"),
				entry(date(2026, 2, 3), "2", "2"),
			}, time.Now()))
			if i%4 == 0 {
				cache.Put(NewRateTable("col", nil, time.Now()))
			}
		}(i)
		go func() {
			defer wg.Done()
			table := cache.Get("vzla")
			if assert.NotNil(t, table) {
				_, err := table.Lookup(date(2026, 2, 2))
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, []string{"col", "vzla"}, cache.Countries())
	cache.Clear()
	assert.Empty(t, cache.Countries())
}
