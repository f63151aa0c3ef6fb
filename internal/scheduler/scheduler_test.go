package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/capex-consolidado/infrastructure/storage"
	"github.com/vfg2006/capex-consolidado/internal/config"
	"github.com/vfg2006/capex-consolidado/internal/domain"
	"github.com/vfg2006/capex-consolidado/internal/scheduler/mocks"
	"github.com/vfg2006/capex-consolidado/internal/usecases/rating"
	"go.uber.org/mock/gomock"
)

func TestRateCacheRefreshService_refresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRates := mocks.NewMockRateRefresher(ctrl)
	loadedAt := time.Date(2026, 2, 2, 6, 0, 0, 0, time.UTC)
	table := rating.NewRateTable("vzla", []domain.RateEntry{{Date: loadedAt, Country: "vzla"}}, loadedAt)

	tests := []struct {
		name      string
		countries []string
		setup     func()
		validate  func(t *testing.T, s *RateCacheRefreshService)
	}{
		{
			name:      "Limpa o cache antes de recarregar cada país",
			countries: []string{"vzla", "col"},
			setup: func() {
				gomock.InOrder(
					mockRates.EXPECT().ClearCache(),
					mockRates.EXPECT().PreloadAll(gomock.Any(), "vzla").Return(table, nil),
					mockRates.EXPECT().PreloadAll(gomock.Any(), "col").Return(table, nil),
				)
			},
			validate: func(t *testing.T, s *RateCacheRefreshService) {
				status := s.GetStatus()
				assert.Empty(t, status["last_errors"])
				assert.Equal(t, false, status["sync_running"])
			},
		},
		{
			name:      "Falha de um país não interrompe os demais",
			countries: []string{"vzla", "col"},
			setup: func() {
				mockRates.EXPECT().ClearCache()
				mockRates.EXPECT().PreloadAll(gomock.Any(), "vzla").Return(nil, errors.New("feed indisponível"))
				mockRates.EXPECT().PreloadAll(gomock.Any(), "col").Return(table, nil)
			},
			validate: func(t *testing.T, s *RateCacheRefreshService) {
				errs := s.GetStatus()["last_errors"].(map[string]string)
				assert.Equal(t, map[string]string{"vzla": "feed indisponível"}, errs)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			service := &RateCacheRefreshService{
				config:     RateCacheRefreshConfig{Countries: tt.countries, Timeout: time.Second},
				rates:      mockRates,
				lastErrors: map[string]string{},
			}

			assert.True(t, service.refresh(context.Background()))
			tt.validate(t, service)
		})
	}
}

func TestRateCacheRefreshService_refresh_AlreadyRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := &RateCacheRefreshService{
		rates:       mocks.NewMockRateRefresher(ctrl),
		syncRunning: true,
	}

	assert.False(t, service.refresh(context.Background()))
}

func TestTmpCleanupService_cleanup(t *testing.T) {
	now := time.Date(2026, 2, 3, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		setup    func(store *mocks.MockArtifactStore)
		validate func(t *testing.T, deleted int, err error, s *TmpCleanupService)
	}{
		{
			name: "Remove apenas temporários mais antigos que a retenção",
			setup: func(store *mocks.MockArtifactStore) {
				store.EXPECT().List(gomock.Any(), "tmp/").Return([]storage.ObjectInfo{
					{Key: "tmp/bosqueto_old.xlsx", UpdatedAt: now.Add(-25 * time.Hour)},
					{Key: "tmp/bosqueto_new.xlsx", UpdatedAt: now.Add(-time.Hour)},
					{Key: "tmp/bosqueto_fail.xlsx", UpdatedAt: now.Add(-48 * time.Hour)},
				}, nil)
				store.EXPECT().Delete(gomock.Any(), "tmp/bosqueto_old.xlsx").Return(nil)
				store.EXPECT().Delete(gomock.Any(), "tmp/bosqueto_fail.xlsx").Return(errors.New("sem permissão"))
			},
			validate: func(t *testing.T, deleted int, err error, s *TmpCleanupService) {
				require.NoError(t, err)
				assert.Equal(t, 1, deleted)
				assert.Equal(t, 1, s.GetStatus()["last_deleted"])
			},
		},
		{
			name: "Erro ao listar é devolvido",
			setup: func(store *mocks.MockArtifactStore) {
				store.EXPECT().List(gomock.Any(), "tmp/").Return(nil, errors.New("bucket fora do ar"))
			},
			validate: func(t *testing.T, deleted int, err error, s *TmpCleanupService) {
				require.Error(t, err)
				assert.Zero(t, deleted)
				assert.Contains(t, s.GetStatus()["last_run_failure"], "bucket fora do ar")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mocks.NewMockArtifactStore(ctrl)
			tt.setup(store)

			service := &TmpCleanupService{
				retention: 24 * time.Hour,
				store:     store,
				now:       func() time.Time { return now },
			}

			deleted, err := service.cleanup(context.Background())
			tt.validate(t, deleted, err, service)
		})
	}
}

func TestNewTmpCleanupService_DefaultRetention(t *testing.T) {
	service := NewTmpCleanupService(nil, &config.Config{Report: config.Report{LocationName: "UTC"}})
	assert.Equal(t, 24*time.Hour, service.retention)
}
