package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/capex-consolidado/infrastructure/database/postgres"
	"github.com/vfg2006/capex-consolidado/infrastructure/integrator/ftd"
	"github.com/vfg2006/capex-consolidado/infrastructure/integrator/ftd/ftdclient"
	"github.com/vfg2006/capex-consolidado/infrastructure/repository"
	"github.com/vfg2006/capex-consolidado/infrastructure/spreadsheet"
	"github.com/vfg2006/capex-consolidado/infrastructure/storage"
	"github.com/vfg2006/capex-consolidado/internal/api"
	"github.com/vfg2006/capex-consolidado/internal/api/handler"
	"github.com/vfg2006/capex-consolidado/internal/config"
	"github.com/vfg2006/capex-consolidado/internal/scheduler"
	"github.com/vfg2006/capex-consolidado/internal/usecases/authenticating"
	"github.com/vfg2006/capex-consolidado/internal/usecases/rating"
	"github.com/vfg2006/capex-consolidado/internal/usecases/reporting"
	"github.com/vfg2006/capex-consolidado/pkg/log"
	"github.com/vfg2006/capex-consolidado/pkg/metrics"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)
	log.SetEnvironment(cfg.App.Environment)

	metrics.Init()

	location := cfg.Location()
	clock := func() time.Time { return time.Now().In(location) }

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	detailRepo := repository.NewDetailRowRepository(pgConn, cfg.Warehouse.BatchSize)
	differenceRepo := repository.NewDifferenceRepository(pgConn, cfg.Warehouse.BatchSize)
	centralBankRepo := repository.NewCentralBankRateRepository(pgConn)

	objectStore, err := storage.New(cfg.Storage)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao configurar o storage")
	}
	logrus.WithFields(logrus.Fields{
		"driver":   objectStore.Info().Driver,
		"location": objectStore.Info().Location,
	}).Info("Storage configurado")

	authenticator := authenticating.NewService(userRepo, cfg.Auth)

	feedIntegrator := ftd.New(ftdclient.NewClient(cfg.Feed))
	rateSource := rating.NewMergedSource(feedIntegrator, centralBankRepo, cfg.Profiles, cfg.Feed.Endpoint)
	rateService := rating.NewService(rateSource)

	reportService := reporting.NewService(
		cfg.Profiles,
		spreadsheet.NewReader(),
		rateService,
		detailRepo,
		differenceRepo,
		objectStore,
	).WithClock(clock)

	rateCacheRefreshService := scheduler.NewRateCacheRefreshService(rateService, cfg)
	tmpCleanupService := scheduler.NewTmpCleanupService(objectStore, cfg)

	// Inicia os agendadores em background
	if err := rateCacheRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização do cache de taxas")
	} else {
		logrus.Info("Agendador de atualização do cache de taxas iniciado com sucesso")
	}

	if err := tmpCleanupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza de artefatos temporários")
	} else {
		logrus.Info("Agendador de limpeza de artefatos temporários iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Reporter:      reportService,
		Rates:         rateService,
		Authenticator: authenticator,
		Diagnostics: handler.Diagnostics{
			Profiles:    cfg.Profiles,
			Tables:      detailRepo,
			Differences: differenceRepo,
			Database:    pgConn,
			Store:       objectStore,
			Clock:       clock,
		},
		CronJobs: handler.CronJobServices{
			handler.CronJobTypeRateCache:  rateCacheRefreshService,
			handler.CronJobTypeTmpCleanup: tmpCleanupService,
		},
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
