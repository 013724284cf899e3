package main

import (
	"context"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/shopmeco/backend/internal/auth"
	"github.com/shopmeco/backend/internal/cache"
	"github.com/shopmeco/backend/internal/config"
	"github.com/shopmeco/backend/internal/db"
	"github.com/shopmeco/backend/internal/kafka"
	"github.com/shopmeco/backend/internal/logger"
	"github.com/shopmeco/backend/internal/repository/postgresql"
	"github.com/shopmeco/backend/internal/server"
	"github.com/shopmeco/backend/internal/storage"
)

func main() {
	cfg := config.Init()
	logger.New(cfg.LogLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := db.Migrate(cfg.DSN()); err != nil {
		zap.L().Fatal("failed to apply migrations", zap.Error(err))
	}

	database, err := db.NewDb(ctx, cfg.DSN())
	if err != nil {
		zap.L().Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.GetPool().Close()

	if err := db.SeedAdmin(ctx, database, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		zap.L().Fatal("failed to seed admin account", zap.Error(err))
	}

	userRepo := postgresql.NewUserRepo(database)
	vehicleRepo := postgresql.NewVehicleRepo(database)
	productRepo := postgresql.NewProductRepo(database)
	orderRepo := postgresql.NewOrderRepo(database)
	serviceRepo := postgresql.NewServiceRequestRepo(database)
	maintenanceRepo := postgresql.NewMaintenanceRepo(database)
	reviewRepo := postgresql.NewReviewRepo(database)
	outboxRepo := postgresql.NewOutboxTaskRepo()

	stg := storage.NewPostgresStorage(database,
		userRepo, vehicleRepo, productRepo, orderRepo,
		serviceRepo, maintenanceRepo, reviewRepo)

	var producer kafka.Producer
	if cfg.KafkaBrokers != "" {
		producer = kafka.NewKafkaProducer(strings.Split(cfg.KafkaBrokers, ","))
	} else {
		producer = kafka.NewConsoleProducer()
	}

	publisher := kafka.NewPublisher(database, outboxRepo, producer, kafka.PublisherConfig{
		PollInterval: 2 * time.Second,
		BatchSize:    50,
		MaxAttempts:  5,
	})
	go publisher.Run(ctx)

	tokens := auth.NewManager(cfg.JWTSecret, cfg.TokenExpiry)
	productCache := cache.NewProductCache()
	auditSink := server.NewOutboxAuditSink(database, outboxRepo, cfg.AuditTopic)

	srv := server.New(stg, tokens, productCache, auditSink)

	metricsServer := &http.Server{
		Addr:    ":" + cfg.MetricsPort,
		Handler: promhttp.Handler(),
	}
	go func() {
		zap.L().Info("metrics server starting", zap.String("port", cfg.MetricsPort))
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		if err := srv.Run(ctx, cfg.HTTPPort); err != nil {
			zap.L().Fatal("failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Error("server shutdown failed", zap.Error(err))
	}
	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		zap.L().Error("metrics server shutdown failed", zap.Error(err))
	}
	publisher.Shutdown()

	zap.L().Info("server gracefully stopped")
}
