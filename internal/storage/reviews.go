package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/shopmeco/backend/internal/db"
	"github.com/shopmeco/backend/internal/lifecycle"
	"github.com/shopmeco/backend/internal/repository"
)

type CreateReviewInput struct {
	TargetType string    `json:"targetType"`
	TargetID   uuid.UUID `json:"targetId"`
	Rating     int       `json:"rating"`
	Title      string    `json:"title"`
	Comment    string    `json:"comment"`
}

type UpdateReviewInput struct {
	Rating  *int    `json:"rating"`
	Title   *string `json:"title"`
	Comment *string `json:"comment"`
}

// CreateReview stores a review and folds its rating into the target's
// running {average, count} aggregate inside one transaction. The author
// must have transactionally interacted with the target: a delivered
// order for products and sellers, a completed service request for
// services and repairers. One review per (author, target).
func (s *PostgresStorage) CreateReview(ctx context.Context, actor Actor, input CreateReviewInput) (*Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}
	if !ValidTargetType(input.TargetType) {
		return nil, fmt.Errorf("%w: unknown target type %q", ErrValidation, input.TargetType)
	}

	if err := s.checkReviewEligibility(ctx, actor, input.TargetType, input.TargetID); err != nil {
		return nil, err
	}

	existing, err := s.reviewRepo.GetByAuthorAndTarget(ctx, actor.UserID, input.TargetType, input.TargetID)
	if err != nil && !errors.Is(err, repository.ErrObjectNotFound) {
		return nil, fmt.Errorf("failed to check for existing review: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: you have already reviewed this target", ErrConflict)
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	now := time.Now().UTC()
	review := &repository.Review{
		ID:         uuid.New(),
		AuthorID:   actor.UserID,
		TargetType: input.TargetType,
		TargetID:   input.TargetID,
		Rating:     input.Rating,
		Title:      input.Title,
		Comment:    input.Comment,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.reviewRepo.CreateTx(ctx, tx, review); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: you have already reviewed this target", ErrConflict)
		}
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	average, count, err := s.targetRatingLocked(ctx, tx, input.TargetType, input.TargetID)
	if err != nil {
		return nil, err
	}
	newCount := count + 1
	newAverage := (average*float64(count) + float64(input.Rating)) / float64(newCount)
	if err := s.setTargetRating(ctx, tx, input.TargetType, input.TargetID, newAverage, newCount); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit review: %w", err)
	}
	return reviewFromRepo(review), nil
}

func (s *PostgresStorage) GetReview(ctx context.Context, id uuid.UUID) (*Review, error) {
	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, fmt.Errorf("%w: review", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}
	return reviewFromRepo(review), nil
}

func (s *PostgresStorage) ListReviews(ctx context.Context, targetType string, targetID uuid.UUID, page, limit int) ([]Review, error) {
	if !ValidTargetType(targetType) {
		return nil, fmt.Errorf("%w: unknown target type %q", ErrValidation, targetType)
	}

	rows, err := s.reviewRepo.ListByTarget(ctx, targetType, targetID, page, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	reviews := make([]Review, len(rows))
	for i, row := range rows {
		reviews[i] = *reviewFromRepo(row)
	}
	return reviews, nil
}

// UpdateReview lets the author or an admin edit a review. A rating edit
// shifts the aggregate by the delta with the count unchanged.
func (s *PostgresStorage) UpdateReview(ctx context.Context, actor Actor, id uuid.UUID, input UpdateReviewInput) (*Review, error) {
	if input.Rating != nil && (*input.Rating < 1 || *input.Rating > 5) {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	review, err := s.reviewRepo.GetByIDTx(ctx, tx, id)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, fmt.Errorf("%w: review", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}
	if !actor.IsAdmin() && review.AuthorID != actor.UserID {
		return nil, ErrForbidden
	}

	if input.Rating != nil && *input.Rating != review.Rating {
		average, count, err := s.targetRatingLocked(ctx, tx, review.TargetType, review.TargetID)
		if err != nil {
			return nil, err
		}
		delta := float64(*input.Rating - review.Rating)
		newAverage := (average*float64(count) + delta) / float64(count)
		if err := s.setTargetRating(ctx, tx, review.TargetType, review.TargetID, newAverage, count); err != nil {
			return nil, err
		}
		review.Rating = *input.Rating
	}
	if input.Title != nil {
		review.Title = *input.Title
	}
	if input.Comment != nil {
		review.Comment = *input.Comment
	}
	review.UpdatedAt = time.Now().UTC()

	if err := s.reviewRepo.UpdateTx(ctx, tx, review); err != nil {
		return nil, fmt.Errorf("failed to update review: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit review update: %w", err)
	}
	return reviewFromRepo(review), nil
}

// DeleteReview hard-deletes a review and compensates the target
// aggregate; the average resets to zero when the last review goes.
func (s *PostgresStorage) DeleteReview(ctx context.Context, actor Actor, id uuid.UUID) error {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	review, err := s.reviewRepo.GetByIDTx(ctx, tx, id)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return fmt.Errorf("%w: review", ErrNotFound)
		}
		return fmt.Errorf("failed to get review: %w", err)
	}
	if !actor.IsAdmin() && review.AuthorID != actor.UserID {
		return ErrForbidden
	}

	if err := s.reviewRepo.DeleteTx(ctx, tx, id); err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}

	average, count, err := s.targetRatingLocked(ctx, tx, review.TargetType, review.TargetID)
	if err != nil {
		return err
	}
	newCount := count - 1
	var newAverage float64
	if newCount > 0 {
		newAverage = (average*float64(count) - float64(review.Rating)) / float64(newCount)
	}
	if err := s.setTargetRating(ctx, tx, review.TargetType, review.TargetID, newAverage, newCount); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit review deletion: %w", err)
	}
	return nil
}

// RespondToReview lets the reviewed party publish a single reply.
func (s *PostgresStorage) RespondToReview(ctx context.Context, actor Actor, id uuid.UUID, response string) (*Review, error) {
	if response == "" {
		return nil, fmt.Errorf("%w: response must not be empty", ErrValidation)
	}

	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, fmt.Errorf("%w: review", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}

	ownerID, err := s.reviewTargetOwner(ctx, review)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && ownerID != actor.UserID {
		return nil, ErrForbidden
	}

	review.Response = response
	review.UpdatedAt = time.Now().UTC()
	if err := s.reviewRepo.Update(ctx, review); err != nil {
		return nil, fmt.Errorf("failed to update review: %w", err)
	}
	return reviewFromRepo(review), nil
}

func (s *PostgresStorage) checkReviewEligibility(ctx context.Context, actor Actor, targetType string, targetID uuid.UUID) error {
	switch targetType {
	case TargetProduct:
		if _, err := s.productRepo.GetByID(ctx, targetID); err != nil {
			if errors.Is(err, repository.ErrObjectNotFound) {
				return fmt.Errorf("%w: product", ErrNotFound)
			}
			return fmt.Errorf("failed to get product: %w", err)
		}
		ok, err := s.orderRepo.HasDeliveredOrderWithProduct(ctx, actor.UserID, targetID)
		if err != nil {
			return fmt.Errorf("failed to check purchase history: %w", err)
		}
		if !ok {
			return fmt.Errorf("%w: you can only review products from delivered orders", ErrForbidden)
		}

	case TargetSeller, TargetRepairer:
		user, err := s.userRepo.GetByID(ctx, targetID)
		if err != nil {
			if errors.Is(err, repository.ErrObjectNotFound) {
				return fmt.Errorf("%w: %s", ErrNotFound, targetType)
			}
			return fmt.Errorf("failed to get user: %w", err)
		}
		if user.Role != string(lifecycle.RoleSeller) && user.Role != string(lifecycle.RoleRepairer) {
			return fmt.Errorf("%w: target user is not reviewable", ErrValidation)
		}

		var ok bool
		if targetType == TargetSeller {
			ok, err = s.orderRepo.HasDeliveredOrderFromSeller(ctx, actor.UserID, targetID)
		} else {
			ok, err = s.serviceRepo.HasCompletedForOwner(ctx, actor.UserID, targetID)
		}
		if err != nil {
			return fmt.Errorf("failed to check interaction history: %w", err)
		}
		if !ok {
			return fmt.Errorf("%w: you can only review a %s you have transacted with", ErrForbidden, targetType)
		}

	case TargetService:
		request, err := s.serviceRepo.GetByID(ctx, targetID)
		if err != nil {
			if errors.Is(err, repository.ErrObjectNotFound) {
				return fmt.Errorf("%w: service request", ErrNotFound)
			}
			return fmt.Errorf("failed to get service request: %w", err)
		}
		if request.OwnerID != actor.UserID {
			return fmt.Errorf("%w: you can only review your own service requests", ErrForbidden)
		}
		if lifecycle.ServiceStatus(request.Status) != lifecycle.ServiceCompleted {
			return fmt.Errorf("%w: you can only review a completed service request", ErrForbidden)
		}
	}
	return nil
}

// targetRatingLocked reads the target's current aggregate under a row
// lock so concurrent review writes serialize.
func (s *PostgresStorage) targetRatingLocked(ctx context.Context, tx db.Tx, targetType string, targetID uuid.UUID) (float64, int, error) {
	switch targetType {
	case TargetProduct:
		product, err := s.productRepo.GetByIDTx(ctx, tx, targetID)
		if err != nil {
			return 0, 0, fmt.Errorf("failed to lock product: %w", err)
		}
		return product.RatingAverage, product.RatingCount, nil
	case TargetSeller, TargetRepairer:
		user, err := s.userRepo.GetByIDTx(ctx, tx, targetID)
		if err != nil {
			return 0, 0, fmt.Errorf("failed to lock user: %w", err)
		}
		return user.RatingAverage, user.RatingCount, nil
	case TargetService:
		request, err := s.serviceRepo.GetByIDTx(ctx, tx, targetID)
		if err != nil {
			return 0, 0, fmt.Errorf("failed to lock service request: %w", err)
		}
		return request.RatingAverage, request.RatingCount, nil
	}
	return 0, 0, fmt.Errorf("%w: unknown target type %q", ErrValidation, targetType)
}

func (s *PostgresStorage) setTargetRating(ctx context.Context, tx db.Tx, targetType string, targetID uuid.UUID, average float64, count int) error {
	var err error
	switch targetType {
	case TargetProduct:
		err = s.productRepo.UpdateRatingTx(ctx, tx, targetID, average, count)
	case TargetSeller, TargetRepairer:
		err = s.userRepo.UpdateRatingTx(ctx, tx, targetID, average, count)
	case TargetService:
		err = s.serviceRepo.UpdateRatingTx(ctx, tx, targetID, average, count)
	default:
		return fmt.Errorf("%w: unknown target type %q", ErrValidation, targetType)
	}
	if err != nil {
		return fmt.Errorf("failed to update target rating: %w", err)
	}
	return nil
}

func (s *PostgresStorage) reviewTargetOwner(ctx context.Context, review *repository.Review) (uuid.UUID, error) {
	switch review.TargetType {
	case TargetProduct:
		product, err := s.productRepo.GetByID(ctx, review.TargetID)
		if err != nil {
			return uuid.Nil, fmt.Errorf("failed to get product: %w", err)
		}
		return product.SellerID, nil
	case TargetService:
		request, err := s.serviceRepo.GetByID(ctx, review.TargetID)
		if err != nil {
			return uuid.Nil, fmt.Errorf("failed to get service request: %w", err)
		}
		if request.RepairerID == nil {
			return uuid.Nil, nil
		}
		return *request.RepairerID, nil
	default:
		return review.TargetID, nil
	}
}

func reviewFromRepo(row *repository.Review) *Review {
	return &Review{
		ID:         row.ID,
		AuthorID:   row.AuthorID,
		TargetType: row.TargetType,
		TargetID:   row.TargetID,
		Rating:     row.Rating,
		Title:      row.Title,
		Comment:    row.Comment,
		Response:   row.Response,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}
