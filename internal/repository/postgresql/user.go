package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"

	"github.com/shopmeco/backend/internal/db"
	"github.com/shopmeco/backend/internal/repository"
	"github.com/shopmeco/backend/internal/storage"
)

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

type UserRepo struct {
	db db.DB
}

func NewUserRepo(db db.DB) storage.UserRepository {
	return &UserRepo{db: db}
}

func (r *UserRepo) Create(ctx context.Context, user *repository.User) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO users (
            id, email, password_hash, name, role, phone, address,
            rating_average, rating_count, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    `, user.ID, user.Email, user.PasswordHash, user.Name, user.Role, user.Phone, user.Address,
		user.RatingAverage, user.RatingCount, user.CreatedAt, user.UpdatedAt)
	if isUniqueViolation(err) {
		return repository.ErrDuplicateKey
	}
	return err
}

func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*repository.User, error) {
	var user repository.User
	err := r.db.Get(ctx, &user, "SELECT * FROM users WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) GetByIDTx(ctx context.Context, tx db.Tx, id uuid.UUID) (*repository.User, error) {
	var user repository.User
	err := tx.Get(ctx, &user, "SELECT * FROM users WHERE id = $1 FOR UPDATE", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*repository.User, error) {
	var user repository.User
	err := r.db.Get(ctx, &user, "SELECT * FROM users WHERE email = $1", email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) Update(ctx context.Context, user *repository.User) error {
	_, err := r.db.Exec(ctx, `
        UPDATE users
        SET
            email = $1,
            name = $2,
            role = $3,
            phone = $4,
            address = $5,
            updated_at = $6
        WHERE id = $7
    `, user.Email, user.Name, user.Role, user.Phone, user.Address, user.UpdatedAt, user.ID)
	return err
}

func (r *UserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *UserRepo) List(ctx context.Context, page, limit int) ([]*repository.User, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}

	var users []*repository.User
	err := r.db.Select(ctx, &users, `
        SELECT * FROM users
        ORDER BY created_at DESC
        LIMIT $1 OFFSET $2
    `, limit, (page-1)*limit)
	return users, err
}

func (r *UserRepo) UpdateRatingTx(ctx context.Context, tx db.Tx, id uuid.UUID, average float64, count int) error {
	_, err := tx.Exec(ctx, `
        UPDATE users
        SET rating_average = $1, rating_count = $2
        WHERE id = $3
    `, average, count, id)
	return err
}
