package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/chocolate-forecast-api/infrastructure/database/postgres"
	"github.com/vfg2006/chocolate-forecast-api/infrastructure/repository"
	"github.com/vfg2006/chocolate-forecast-api/internal/api"
	"github.com/vfg2006/chocolate-forecast-api/internal/api/handler"
	"github.com/vfg2006/chocolate-forecast-api/internal/config"
	"github.com/vfg2006/chocolate-forecast-api/internal/metrics"
	"github.com/vfg2006/chocolate-forecast-api/internal/scheduler"
	"github.com/vfg2006/chocolate-forecast-api/internal/usecases/forecasting"
	"github.com/vfg2006/chocolate-forecast-api/internal/usecases/insighting"
	"github.com/vfg2006/chocolate-forecast-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	salesRepo, closeSales := salesRepository(ctx, cfg)
	defer closeSales()

	// Sem artefatos válidos a API não tem o que servir
	artifactStore, err := forecasting.NewArtifactStore(cfg.Artifacts.ModelPath, cfg.Artifacts.LabelMappingPath)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar os artefatos de previsão")
	}

	collector, err := metrics.NewCollector()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao registrar métricas")
	}

	ranker := forecasting.NewBestSellerRanker(
		artifactStore,
		salesRepo,
		forecasting.WithObserver(collector),
	)

	facade := forecasting.NewPredictionFacade(ranker).
		WithDefaults(cfg.Prediction.DefaultMonthsAhead, cfg.Prediction.DefaultSeason)

	predictionServices := handler.PredictionServices{
		Ranker:     ranker,
		Summarizer: facade,
		Scorer:     forecasting.NewSingleScorer(artifactStore),
	}

	salesService := insighting.NewService(salesRepo)

	artifactReloadService := scheduler.NewArtifactReloadService(artifactStore, cfg)
	if err := artifactReloadService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recarga de artefatos")
	} else {
		logrus.Info("Agendador de recarga de artefatos iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		predictionServices,
		salesService,
		artifactStore,
		artifactReloadService,
		collector,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// salesRepository escolhe a origem do histórico de vendas
func salesRepository(ctx context.Context, cfg *config.Config) (repository.SalesRepository, func()) {
	if cfg.Sales.Source != config.SalesSourcePostgres {
		logrus.WithField("path", cfg.Sales.CSVPath).Info("Histórico de vendas lido do CSV")
		return repository.NewCSVSalesRepository(cfg.Sales.CSVPath), func() {}
	}

	conn := pgconn(ctx, cfg.Database)
	return repository.NewPostgresSalesRepository(conn), func() { conn.Close() }
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
