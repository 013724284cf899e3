package main

import (
	"context"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/shopmeco/backend/internal/config"
	"github.com/shopmeco/backend/internal/logger"
)

const groupID = "shopmeco-audit-consumer"

func main() {
	cfg := config.Init()
	logger.New(cfg.LogLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        strings.Split(cfg.KafkaBrokers, ","),
		GroupID:        groupID,
		Topic:          cfg.AuditTopic,
		MinBytes:       10e3,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
		MaxWait:        3 * time.Second,
	})
	defer func() {
		if err := reader.Close(); err != nil {
			zap.L().Error("failed to close kafka reader", zap.Error(err))
		}
	}()

	zap.L().Info("audit consumer started",
		zap.String("topic", cfg.AuditTopic),
		zap.String("brokers", cfg.KafkaBrokers),
	)

	for {
		message, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				zap.L().Info("shutdown signal received, stopping consumer")
				return
			}
			zap.L().Error("failed to read message", zap.Error(err))
			time.Sleep(5 * time.Second)
			continue
		}

		zap.L().Info("audit event",
			zap.Time("timestamp", message.Time),
			zap.Int("partition", message.Partition),
			zap.Int64("offset", message.Offset),
			zap.ByteString("key", message.Key),
			zap.ByteString("value", message.Value),
		)
	}
}
