package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	catalogapp "kitchen_orders/internal/application/catalog"
	"kitchen_orders/internal/config"
	kafkainfra "kitchen_orders/internal/infrastructure/messaging/kafka"
	"kitchen_orders/internal/infrastructure/persistence/postgres"
	"kitchen_orders/pkg/logger"
)

// Consumes administrative catalog load records (cooks and dishes) from
// Kafka and stores them in Postgres. Runs until interrupted.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}

	zapLog, err := logger.NewZapLogger(cfg.App.Env)
	if err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	defer zapLog.Sync()

	if len(cfg.Kafka.Brokers) == 0 {
		zapLog.Fatal("KAFKA_BOOTSTRAP_SERVERS is empty")
	}
	if cfg.Kafka.CatalogTopic == "" {
		zapLog.Fatal("KAFKA_CATALOG_TOPIC is empty")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(cfg.DB)
	if err != nil {
		zapLog.Fatal("postgres connection failed", logger.Error(err))
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		zapLog.Fatal("schema bootstrap failed", logger.Error(err))
	}

	cookRepo := postgres.NewCookRepository(pool)
	dishRepo := postgres.NewDishRepository(pool)

	svc := catalogapp.NewService(cookRepo, dishRepo, zapLog)

	consumer := kafkainfra.NewCatalogConsumer(cfg.Kafka, svc, zapLog)
	defer consumer.Close()

	zapLog.Info("catalog ingest started",
		logger.Any("brokers", cfg.Kafka.Brokers),
		logger.String("topic", cfg.Kafka.CatalogTopic),
	)

	if err := consumer.Start(ctx); err != nil && ctx.Err() == nil {
		zapLog.Fatal("catalog consumer stopped", logger.Error(err))
	}

	zapLog.Info("catalog ingest shut down")
}
