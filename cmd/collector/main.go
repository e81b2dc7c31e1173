package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/yujm08/MSAProjects-ezen/internal/bootstrap"
	"github.com/yujm08/MSAProjects-ezen/pkg/config"
	"github.com/yujm08/MSAProjects-ezen/pkg/logger"
	"github.com/yujm08/MSAProjects-ezen/pkg/postgresql"
	"github.com/yujm08/MSAProjects-ezen/pkg/redis"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.NewLogger(logger.WithLoggingLevel(logger.Level(cfg.App.LogLevel)))
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	// Initialize PostgreSQL client
	pgClient, err := postgresql.NewClient(ctx, cfg.Postgres)
	if err != nil {
		appLogger.Error(err, logger.Field{Key: "action", Value: "postgres_connect"})
		os.Exit(1)
	}
	defer pgClient.Close()

	appLogger.Info("PostgreSQL client connected successfully")

	// Initialize Redis client for the latest-quote cache
	redisClient := redis.NewClient(appLogger, &cfg.Redis)
	if err := redisClient.Connect(ctx); err != nil {
		appLogger.Error(err, logger.Field{Key: "action", Value: "redis_connect"})
		os.Exit(1)
	}
	defer redisClient.Disconnect(context.Background())

	appLogger.Info("Redis client connected successfully")

	// Wire the collector
	b := bootstrap.Bootstrap{}
	b.Init(bootstrap.BootstrapConfig{
		Config:   cfg,
		Logger:   appLogger,
		Postgres: pgClient,
		Redis:    redisClient,
	})

	// Start streaming ingestion. Both feeds tolerate startup failures:
	// the schedulers keep running and a supervisor can re-invoke the
	// subscription entry points.
	if err := b.SubscribeAllDomestic(ctx); err != nil {
		appLogger.Error(err, logger.Field{Key: "action", Value: "subscribe_domestic"})
	}
	if err := b.Ingestor.ForexStream.Connect(ctx); err != nil {
		appLogger.Error(err, logger.Field{Key: "action", Value: "connect_forex_stream"})
	}

	b.Scheduler.Start(ctx)

	appLogger.Info("Data collector started successfully",
		logger.Field{Key: "app", Value: cfg.App.Name},
		logger.Field{Key: "environment", Value: cfg.App.Environment},
	)

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down data collector...")

	cancel()
	b.Scheduler.Wait()

	appLogger.Info("Data collector stopped")
}
