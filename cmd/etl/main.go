package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/frostline/thermoscale-etl/internal/adapter/http"
	kafkaadapter "github.com/frostline/thermoscale-etl/internal/adapter/kafka"
	"github.com/frostline/thermoscale-etl/internal/adapter/stationapi"
	"github.com/frostline/thermoscale-etl/internal/config"
	"github.com/frostline/thermoscale-etl/internal/domain"
	"github.com/frostline/thermoscale-etl/internal/observability"
	"github.com/frostline/thermoscale-etl/internal/pipeline"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	// Initialize the station resolver (feature-flagged via STATION_ENABLED /
	// STATION_API_URL).
	var resolver domain.StationResolver
	if cfg.StationEnabled {
		client := stationapi.NewClient(cfg.StationAPIURL, cfg.StationTimeout, logger, metrics)
		resolver = stationapi.NewCachedResolver(client, cfg.StationCacheSize, metrics)
		metrics.StationEnabled.Set(1)
		logger.Info("station enrichment enabled", "cache_size", cfg.StationCacheSize, "timeout", cfg.StationTimeout)
	} else {
		logger.Info("station enrichment disabled")
	}

	reader := kafkaadapter.NewReader(cfg, logger)
	writer := kafkaadapter.NewWriter(cfg, logger)
	transformer := pipeline.NewTransformer(resolver, logger)

	p := pipeline.New(reader, transformer, writer, logger, metrics, cfg.BatchSize)

	srv := httpadapter.NewServer(cfg.HTTPAddr, p, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start HTTP server.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	// Start ETL pipeline.
	go func() {
		if err := p.Run(ctx); err != nil {
			logger.Error("pipeline error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if err := reader.Close(); err != nil {
		logger.Error("kafka reader close error", "error", err)
	}
	if err := writer.Close(); err != nil {
		logger.Error("kafka writer close error", "error", err)
	}

	logger.Info("shutdown complete")
}
