package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"best-menu/agg-svc/internal/service"
	"best-menu/agg-svc/internal/storage"
	"best-menu/config"

	"go.uber.org/zap"
)

func main() {
	settings, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := config.NewLogger(settings.LogLevel, settings.LogFormat)
	defer logger.Sync()

	if settings.KafkaBroker == "" {
		logger.Fatal("KAFKA_BROKER is required for the aggregation consumer")
	}

	rdb := config.MustInitRedis(settings, logger)
	defer rdb.Close()

	reader := config.NewKafkaReader(settings, settings.SearchTopic, settings.AggGroupID)
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Aggregation Service started",
		zap.String("topic", settings.SearchTopic),
		zap.String("group_id", settings.AggGroupID))
	consumer := service.NewConsumer(reader, storage.NewStore(rdb), logger)
	consumer.Start(ctx)
}
