package db

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the bootstrap admin account if it does not exist yet.
func SeedAdmin(ctx context.Context, database *Database, email, password string) error {
	if email == "" || password == "" {
		zap.L().Info("admin credentials not configured, skipping admin seed")
		return nil
	}

	var count int
	err := database.ExecQueryRow(ctx, "SELECT COUNT(*) FROM users WHERE email = $1", email).Scan(&count)
	if err != nil {
		return err
	}
	if count > 0 {
		zap.L().Info("admin user already exists", zap.String("email", email))
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	_, err = database.Exec(ctx, `
        INSERT INTO users (id, email, password_hash, name, role, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `, uuid.New(), email, string(hash), "Administrator", "admin", now, now)
	if err != nil {
		return err
	}

	zap.L().Info("admin user created", zap.String("email", email))
	return nil
}
