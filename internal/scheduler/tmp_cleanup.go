package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/capex-consolidado/internal/config"
	"github.com/vfg2006/capex-consolidado/internal/usecases/reporting"
)

// TmpCleanupService remove os BOSQUETOs temporários mais antigos que a retenção
type TmpCleanupService struct {
	scheduler      *gocron.Scheduler
	cronSchedule   string
	enabled        bool
	retention      time.Duration
	store          ArtifactStore
	now            func() time.Time
	running        bool
	mutex          sync.Mutex
	lastRunAt      time.Time
	lastDeleted    int
	lastRunFailure string
}

func NewTmpCleanupService(store ArtifactStore, appConfig *config.Config) *TmpCleanupService {
	retention := appConfig.Storage.TmpRetention
	if retention <= 0 {
		retention = 24 * time.Hour
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": appConfig.TmpCleanup.CronSchedule,
		"enabled":       appConfig.TmpCleanup.Enabled,
		"retention":     retention.String(),
	}).Info("Configuração da limpeza de temporários carregada")

	return &TmpCleanupService{
		scheduler:    gocron.NewScheduler(appConfig.Location()),
		cronSchedule: appConfig.TmpCleanup.CronSchedule,
		enabled:      appConfig.TmpCleanup.Enabled,
		retention:    retention,
		store:        store,
		now:          time.Now,
	}
}

// Start inicia o agendador
func (s *TmpCleanupService) Start(ctx context.Context) error {
	if !s.enabled {
		logrus.Info("Limpeza de temporários desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.cronSchedule).Info("Iniciando agendador de limpeza de temporários")

	_, err := s.scheduler.Cron(s.cronSchedule).Do(func() {
		if _, err := s.cleanup(ctx); err != nil {
			logrus.WithError(err).Error("Erro na limpeza de temporários")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de temporários: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de limpeza de temporários")
		s.scheduler.Stop()
	}()

	return nil
}

// cleanup apaga os objetos de tmp/ cuja última atualização passou da retenção
func (s *TmpCleanupService) cleanup(ctx context.Context) (int, error) {
	s.mutex.Lock()
	if s.running {
		s.mutex.Unlock()
		logrus.Info("Limpeza de temporários já em andamento, ignorando")
		return 0, nil
	}
	s.running = true
	s.mutex.Unlock()

	deleted := 0
	var runErr error
	defer func() {
		s.mutex.Lock()
		s.running = false
		s.lastRunAt = s.now()
		s.lastDeleted = deleted
		s.lastRunFailure = ""
		if runErr != nil {
			s.lastRunFailure = runErr.Error()
		}
		s.mutex.Unlock()
	}()

	objects, err := s.store.List(ctx, reporting.TmpPrefix)
	if err != nil {
		runErr = fmt.Errorf("erro ao listar temporários: %w", err)
		return 0, runErr
	}

	cutoff := s.now().Add(-s.retention)
	for _, object := range objects {
		if !object.UpdatedAt.Before(cutoff) {
			continue
		}
		if err := s.store.Delete(ctx, object.Key); err != nil {
			logrus.WithError(err).WithField("key", object.Key).Warn("Erro ao remover temporário")
			continue
		}
		deleted++
	}

	logrus.WithFields(logrus.Fields{
		"listed":  len(objects),
		"deleted": deleted,
	}).Info("Limpeza de temporários concluída")

	return deleted, nil
}

// TriggerManualSync executa a limpeza fora do agendamento
func (s *TmpCleanupService) TriggerManualSync() {
	logrus.Info("Iniciando limpeza manual de temporários")
	go func() {
		if _, err := s.cleanup(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na limpeza manual de temporários")
		}
	}()
}

// GetStatus retorna o status atual da limpeza
func (s *TmpCleanupService) GetStatus() map[string]any {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return map[string]any{
		"sync_running":     s.running,
		"sync_cron":        s.cronSchedule,
		"sync_enabled":     s.enabled,
		"retention":        s.retention.String(),
		"last_run_at":      s.lastRunAt,
		"last_deleted":     s.lastDeleted,
		"last_run_failure": s.lastRunFailure,
	}
}
