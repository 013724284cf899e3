package server

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/shopmeco/backend/internal/db"
	"github.com/shopmeco/backend/internal/repository"
	"github.com/shopmeco/backend/internal/storage"
)

type AuditLogEntry struct {
	Timestamp  time.Time `json:"timestamp"`
	Method     string    `json:"method"`
	Path       string    `json:"path"`
	StatusCode int       `json:"statusCode"`
	UserID     string    `json:"userId,omitempty"`
	Role       string    `json:"role,omitempty"`
	EntityID   string    `json:"entityId,omitempty"`
	Request    string    `json:"request,omitempty"`
	Response   string    `json:"response,omitempty"`
}

// AuditSink receives aggregated audit batches from the manager workers.
type AuditSink interface {
	SaveBatch(ctx context.Context, entries []AuditLogEntry) error
}

// OutboxAuditSink stores audit entries as outbox tasks; the outbox
// publisher forwards them to Kafka later.
type OutboxAuditSink struct {
	db    db.DB
	repo  storage.OutboxTaskRepository
	topic string
}

func NewOutboxAuditSink(database db.DB, repo storage.OutboxTaskRepository, topic string) *OutboxAuditSink {
	return &OutboxAuditSink{db: database, repo: repo, topic: topic}
}

func (s *OutboxAuditSink) SaveBatch(ctx context.Context, entries []AuditLogEntry) error {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin audit transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, entry := range entries {
		payload, err := json.Marshal(entry)
		if err != nil {
			return fmt.Errorf("failed to marshal audit entry: %w", err)
		}
		task := &repository.OutboxTask{
			Payload: payload,
			Topic:   s.topic,
		}
		if err := s.repo.CreateTx(ctx, tx, task); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

// ConsoleAuditSink logs batches instead of persisting them. Used in
// tests and when the outbox is not wired up.
type ConsoleAuditSink struct{}

func (ConsoleAuditSink) SaveBatch(_ context.Context, entries []AuditLogEntry) error {
	for _, entry := range entries {
		zap.L().Info("audit",
			zap.String("method", entry.Method),
			zap.String("path", entry.Path),
			zap.Int("statusCode", entry.StatusCode),
			zap.String("userId", entry.UserID),
		)
	}
	return nil
}
