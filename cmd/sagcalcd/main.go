package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/gridclear/sagcalc/internal/adapter/http"
	kafkaadapter "github.com/gridclear/sagcalc/internal/adapter/kafka"
	"github.com/gridclear/sagcalc/internal/config"
	"github.com/gridclear/sagcalc/internal/engine"
	"github.com/gridclear/sagcalc/internal/observability"
	"github.com/gridclear/sagcalc/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	exposure, err := engine.Exposure(cfg.ExposureCategory)
	if err != nil {
		logger.Error("invalid exposure category", "error", err)
		os.Exit(1)
	}

	// Result publishing is feature-flagged via KAFKA_ENABLED.
	var publisher service.Publisher
	var kafkaPub *kafkaadapter.Publisher
	if cfg.KafkaEnabled {
		kafkaPub = kafkaadapter.NewPublisher(cfg, logger)
		publisher = kafkaPub
		logger.Info("result publishing enabled", "topic", cfg.KafkaResultsTopic, "brokers", cfg.KafkaBrokers)
	} else {
		logger.Info("result publishing disabled")
	}

	calc := service.New(logger, metrics, publisher, exposure)

	srv := httpadapter.NewServer(cfg.HTTPAddr, calc, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	metrics.ServiceUp.Set(1)
	defer metrics.ServiceUp.Set(0)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if kafkaPub != nil {
		if err := kafkaPub.Close(); err != nil {
			logger.Error("kafka publisher close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
