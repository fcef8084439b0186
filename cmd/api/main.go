package main

import (
	"context"
	"log"

	finalizeapp "kitchen_orders/internal/application/finalize"
	orderapp "kitchen_orders/internal/application/order"
	"kitchen_orders/internal/config"
	ginserver "kitchen_orders/internal/infrastructure/http/gin"
	"kitchen_orders/internal/infrastructure/http/partner"
	kafkainfra "kitchen_orders/internal/infrastructure/messaging/kafka"
	"kitchen_orders/internal/infrastructure/persistence/postgres"
	"kitchen_orders/internal/interfaces/http/handler"
	"kitchen_orders/internal/interfaces/http/router"
	"kitchen_orders/pkg/logger"
)

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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

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
	orderRepo := postgres.NewOrderRepository(pool)
	syncLogRepo := postgres.NewSyncLogRepository(pool)

	forwarder := partner.NewClient(cfg.Partner, zapLog)

	// Finalize events are best-effort; a broken producer must not keep the
	// API from serving orders.
	var events finalizeapp.EventPublisher
	producer, err := kafkainfra.NewSyncEventProducer(cfg.Kafka, zapLog)
	if err != nil {
		zapLog.Warn("sync event producer unavailable, finalize events disabled", logger.Error(err))
	} else {
		events = producer
		defer producer.Close(ctx)
	}

	orderService := orderapp.NewService(dishRepo, cookRepo, orderRepo, syncLogRepo, forwarder, zapLog)
	finalizeService := finalizeapp.NewService(orderRepo, syncLogRepo, forwarder, events, zapLog)

	healthHandler := handler.NewHealthHandler(cfg, forwarder)
	dishHandler := handler.NewDishHandler(orderService)
	orderHandler := handler.NewOrderHandler(orderService, finalizeService)

	engine := ginserver.NewEngine()
	router.RegisterRoutes(engine, healthHandler, dishHandler, orderHandler)

	zapLog.Info("starting api server", logger.String("addr", cfg.Server.Address()))

	server := ginserver.NewServer(cfg.Server, engine)
	if err := server.Run(); err != nil {
		zapLog.Fatal("server run failed", logger.Error(err))
	}
}
