package postgresql

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/shopmeco/backend/internal/db"
	"github.com/shopmeco/backend/internal/repository"
	"github.com/shopmeco/backend/internal/storage"
)

type ReviewRepo struct {
	db db.DB
}

func NewReviewRepo(db db.DB) storage.ReviewRepository {
	return &ReviewRepo{db: db}
}

func (r *ReviewRepo) CreateTx(ctx context.Context, tx db.Tx, review *repository.Review) error {
	_, err := tx.Exec(ctx, `
        INSERT INTO reviews (
            id, author_id, target_type, target_id, rating, title, comment,
            response, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    `, review.ID, review.AuthorID, review.TargetType, review.TargetID, review.Rating,
		review.Title, review.Comment, review.Response, review.CreatedAt, review.UpdatedAt)
	if isUniqueViolation(err) {
		return repository.ErrDuplicateKey
	}
	return err
}

func (r *ReviewRepo) GetByID(ctx context.Context, id uuid.UUID) (*repository.Review, error) {
	var review repository.Review
	err := r.db.Get(ctx, &review, "SELECT * FROM reviews WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepo) GetByIDTx(ctx context.Context, tx db.Tx, id uuid.UUID) (*repository.Review, error) {
	var review repository.Review
	err := tx.Get(ctx, &review, "SELECT * FROM reviews WHERE id = $1 FOR UPDATE", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &review, nil
}

const updateReviewQuery = `
    UPDATE reviews
    SET
        rating = $1,
        title = $2,
        comment = $3,
        response = $4,
        updated_at = $5
    WHERE id = $6
`

func (r *ReviewRepo) UpdateTx(ctx context.Context, tx db.Tx, review *repository.Review) error {
	_, err := tx.Exec(ctx, updateReviewQuery,
		review.Rating, review.Title, review.Comment, review.Response,
		review.UpdatedAt, review.ID)
	return err
}

func (r *ReviewRepo) Update(ctx context.Context, review *repository.Review) error {
	_, err := r.db.Exec(ctx, updateReviewQuery,
		review.Rating, review.Title, review.Comment, review.Response,
		review.UpdatedAt, review.ID)
	return err
}

func (r *ReviewRepo) DeleteTx(ctx context.Context, tx db.Tx, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, "DELETE FROM reviews WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *ReviewRepo) GetByAuthorAndTarget(ctx context.Context, authorID uuid.UUID, targetType string, targetID uuid.UUID) (*repository.Review, error) {
	var review repository.Review
	err := r.db.Get(ctx, &review, `
        SELECT * FROM reviews
        WHERE author_id = $1 AND target_type = $2 AND target_id = $3
    `, authorID, targetType, targetID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepo) ListByTarget(ctx context.Context, targetType string, targetID uuid.UUID, page, limit int) ([]*repository.Review, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}

	var reviews []*repository.Review
	err := r.db.Select(ctx, &reviews, `
        SELECT * FROM reviews
        WHERE target_type = $1 AND target_id = $2
        ORDER BY created_at DESC
        LIMIT $3 OFFSET $4
    `, targetType, targetID, limit, (page-1)*limit)
	return reviews, err
}
