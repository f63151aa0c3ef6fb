package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/capex-consolidado/internal/config"
)

// RateCacheRefreshConfig representa a configuração da atualização agendada das taxas
type RateCacheRefreshConfig struct {
	CronSchedule string
	Enabled      bool
	Countries    []string
	Timeout      time.Duration
}

// RateCacheRefreshService limpa o cache de taxas e recarrega os países habilitados
type RateCacheRefreshService struct {
	scheduler           *gocron.Scheduler
	config              RateCacheRefreshConfig
	rates               RateRefresher
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastErrors          map[string]string
}

func NewRateCacheRefreshService(rates RateRefresher, appConfig *config.Config) *RateCacheRefreshService {
	refreshConfig := RateCacheRefreshConfig{
		CronSchedule: appConfig.RateCacheRefresh.CronSchedule,
		Enabled:      appConfig.RateCacheRefresh.Enabled,
		Countries:    appConfig.Report.EnabledCountries,
		Timeout:      2 * time.Minute,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
		"enabled":       refreshConfig.Enabled,
		"countries":     refreshConfig.Countries,
	}).Info("Configuração da atualização de taxas carregada")

	return &RateCacheRefreshService{
		scheduler:  gocron.NewScheduler(appConfig.Location()),
		config:     refreshConfig,
		rates:      rates,
		lastErrors: map[string]string{},
	}
}

// Start inicia o agendador
func (s *RateCacheRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Atualização agendada de taxas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de atualização de taxas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refresh(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização de taxas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de atualização de taxas")
		s.scheduler.Stop()
	}()

	return nil
}

// refresh devolve false quando outra execução já está em andamento
func (s *RateCacheRefreshService) refresh(ctx context.Context) bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização de taxas já em andamento, ignorando")
		return false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	errs := make(map[string]string)
	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.lastErrors = errs
		s.syncMutex.Unlock()
	}()

	s.rates.ClearCache()

	for _, country := range s.config.Countries {
		runCtx, cancel := context.WithTimeout(ctx, s.config.Timeout)
		table, err := s.rates.PreloadAll(runCtx, country)
		cancel()

		if err != nil {
			errs[country] = err.Error()
			logrus.WithError(err).WithField("country", country).Error("Erro ao recarregar taxas do país")
			continue
		}

		logrus.WithFields(logrus.Fields{
			"country": country,
			"entries": table.Len(),
		}).Info("Taxas recarregadas")
	}

	logrus.WithFields(logrus.Fields{
		"countries": len(s.config.Countries),
		"errors":    len(errs),
	}).Info("Atualização de taxas concluída")

	return true
}

// TriggerManualSync inicia manualmente uma atualização das taxas
func (s *RateCacheRefreshService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Atualização de taxas já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando atualização manual de taxas")
	go s.refresh(context.Background())
}

// GetStatus retorna o status atual da atualização
func (s *RateCacheRefreshService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.Enabled,
		"countries":              s.config.Countries,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_errors":            s.lastErrors,
	}
}
