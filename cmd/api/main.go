package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-prediction-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-prediction-api/infrastructure/integrator/bentoml"
	"github.com/vfg2006/sales-prediction-api/infrastructure/integrator/bentoml/bentoclient"
	"github.com/vfg2006/sales-prediction-api/infrastructure/repository"
	"github.com/vfg2006/sales-prediction-api/internal/api"
	"github.com/vfg2006/sales-prediction-api/internal/config"
	"github.com/vfg2006/sales-prediction-api/internal/scheduler"
	"github.com/vfg2006/sales-prediction-api/internal/usecases/aggregating"
	"github.com/vfg2006/sales-prediction-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-prediction-api/internal/usecases/enriching"
	"github.com/vfg2006/sales-prediction-api/internal/usecases/filtering"
	"github.com/vfg2006/sales-prediction-api/internal/usecases/ingesting"
	"github.com/vfg2006/sales-prediction-api/internal/usecases/reporting"
)

func main() {
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	submissionRepo := repository.NewSubmissionRepository(pgConn)

	bentoClient := bentoclient.NewClient(cfg)
	predictor := bentoml.New(cfg, bentoClient)

	// Monta o pipeline de análise com persistência de envios
	analysisService := analyzing.NewService(
		ingesting.NewService(),
		predictor,
		enriching.NewService(),
		filtering.NewService(),
		aggregating.NewService(),
		reporting.NewService(),
	).WithStore(submissionRepo)

	// Varredura de retenção dos envios expirados
	submissionCleanupService := scheduler.NewSubmissionCleanupService(
		submissionRepo,
		analysisService,
		cfg,
	)

	if err := submissionCleanupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar a varredura de retenção de envios")
	} else {
		logrus.Info("Varredura de retenção de envios iniciada com sucesso")
	}

	server, err := api.New(
		cfg,
		analysisService,
		submissionCleanupService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
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

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
