package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/CrossChainLabs-FIL/filmarket-registry/internal/api"
	"github.com/CrossChainLabs-FIL/filmarket-registry/internal/clients/marketclient"
	"github.com/CrossChainLabs-FIL/filmarket-registry/internal/config"
	"github.com/CrossChainLabs-FIL/filmarket-registry/internal/db"
	dbmodel "github.com/CrossChainLabs-FIL/filmarket-registry/internal/db/model"
	"github.com/CrossChainLabs-FIL/filmarket-registry/internal/observability/metrics"
	"github.com/CrossChainLabs-FIL/filmarket-registry/internal/observability/tracing"
	"github.com/CrossChainLabs-FIL/filmarket-registry/internal/queue"
	"github.com/CrossChainLabs-FIL/filmarket-registry/internal/services"
)

func StartServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start-server",
		Short: "Starts the FilMarket registry server",
		Args:  cobra.ExactArgs(0),
		RunE:  startServer,
	}

	return cmd
}

func startServer(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	ctx = tracing.InjectTraceID(ctx)
	log := log.Ctx(ctx)

	// load config
	cfgPath := GetConfigPath()
	cfg, err := config.New(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg(fmt.Sprintf("error while loading config file: %s", cfgPath))
	}

	err = dbmodel.Setup(ctx, &cfg.Db)
	if err != nil {
		log.Fatal().Err(err).Msg("error while setting up registry db model")
	}

	// create new db client
	var dbClient db.DbInterface
	dbClient, err = db.New(ctx, cfg.Db)
	if err != nil {
		log.Fatal().Err(err).Msg("error while creating db client")
	}
	dbClient = db.NewDbWithMetrics(dbClient)

	// Create a basic zap logger
	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatal().Err(err).Msg("error while creating zap logger")
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			log.Error().Err(err).Msg("error while syncing zap logger")
		}
	}()

	queueManager, err := queue.NewQueueManager(&cfg.Queue, zapLogger)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize queue manager")
	}
	defer queueManager.Shutdown()

	// the market client is only needed when the collector is configured
	var marketClient marketclient.MarketInterface
	if cfg.Market != nil {
		marketClient = marketclient.NewClient(cfg.Market)
		marketClient = marketclient.NewMarketClientWithMetrics(marketClient)
	}

	service := services.NewService(cfg, dbClient, marketClient, queueManager)

	// initialize metrics with the metrics port from config
	metricsPort := cfg.Metrics.GetMetricsPort()
	metrics.Init(metricsPort)

	service.StartCollector(ctx)

	return api.New(cfg, service).Start(ctx)
}
