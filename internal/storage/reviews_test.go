package storage_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shopmeco/backend/internal/lifecycle"
	"github.com/shopmeco/backend/internal/repository"
	"github.com/shopmeco/backend/internal/storage"
)

func TestCreateReview(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()
	sellerID := uuid.New()
	productID := uuid.New()
	customer := storage.Actor{UserID: customerID, Role: lifecycle.RoleCustomer}

	productInput := storage.CreateReviewInput{
		TargetType: storage.TargetProduct,
		TargetID:   productID,
		Rating:     5,
		Title:      "great pads",
	}

	t.Run("product review folds into the aggregate", func(t *testing.T) {
		f := newFixture(t)
		f.products.EXPECT().GetByID(gomock.Any(), productID).Return(&repository.Product{ID: productID, SellerID: sellerID}, nil)
		f.orders.EXPECT().HasDeliveredOrderWithProduct(gomock.Any(), customerID, productID).Return(true, nil)
		f.reviews.EXPECT().GetByAuthorAndTarget(gomock.Any(), customerID, storage.TargetProduct, productID).Return(nil, repository.ErrObjectNotFound)
		f.expectTx()
		f.reviews.EXPECT().CreateTx(gomock.Any(), f.tx, gomock.Any()).Return(nil)
		f.products.EXPECT().GetByIDTx(gomock.Any(), f.tx, productID).Return(&repository.Product{
			ID: productID, SellerID: sellerID, RatingAverage: 4.0, RatingCount: 2,
		}, nil)
		f.products.EXPECT().UpdateRatingTx(gomock.Any(), f.tx, productID, (4.0*2+5)/3, 3).Return(nil)
		f.expectCommit()

		review, err := f.storage.CreateReview(ctx, customer, productInput)
		require.NoError(t, err)
		assert.Equal(t, 5, review.Rating)
		assert.Equal(t, customerID, review.AuthorID)
	})

	t.Run("first review sets the average to the rating", func(t *testing.T) {
		f := newFixture(t)
		f.products.EXPECT().GetByID(gomock.Any(), productID).Return(&repository.Product{ID: productID, SellerID: sellerID}, nil)
		f.orders.EXPECT().HasDeliveredOrderWithProduct(gomock.Any(), customerID, productID).Return(true, nil)
		f.reviews.EXPECT().GetByAuthorAndTarget(gomock.Any(), customerID, storage.TargetProduct, productID).Return(nil, repository.ErrObjectNotFound)
		f.expectTx()
		f.reviews.EXPECT().CreateTx(gomock.Any(), f.tx, gomock.Any()).Return(nil)
		f.products.EXPECT().GetByIDTx(gomock.Any(), f.tx, productID).Return(&repository.Product{ID: productID, SellerID: sellerID}, nil)
		f.products.EXPECT().UpdateRatingTx(gomock.Any(), f.tx, productID, 5.0, 1).Return(nil)
		f.expectCommit()

		_, err := f.storage.CreateReview(ctx, customer, productInput)
		require.NoError(t, err)
	})

	t.Run("no delivered order means no product review", func(t *testing.T) {
		f := newFixture(t)
		f.products.EXPECT().GetByID(gomock.Any(), productID).Return(&repository.Product{ID: productID, SellerID: sellerID}, nil)
		f.orders.EXPECT().HasDeliveredOrderWithProduct(gomock.Any(), customerID, productID).Return(false, nil)

		_, err := f.storage.CreateReview(ctx, customer, productInput)
		assert.ErrorIs(t, err, storage.ErrForbidden)
	})

	t.Run("second review of the same target conflicts", func(t *testing.T) {
		f := newFixture(t)
		f.products.EXPECT().GetByID(gomock.Any(), productID).Return(&repository.Product{ID: productID, SellerID: sellerID}, nil)
		f.orders.EXPECT().HasDeliveredOrderWithProduct(gomock.Any(), customerID, productID).Return(true, nil)
		f.reviews.EXPECT().GetByAuthorAndTarget(gomock.Any(), customerID, storage.TargetProduct, productID).Return(&repository.Review{ID: uuid.New()}, nil)

		_, err := f.storage.CreateReview(ctx, customer, productInput)
		assert.ErrorIs(t, err, storage.ErrConflict)
	})

	t.Run("rating out of range", func(t *testing.T) {
		f := newFixture(t)
		input := productInput
		input.Rating = 6
		_, err := f.storage.CreateReview(ctx, customer, input)
		assert.ErrorIs(t, err, storage.ErrValidation)
	})

	t.Run("unknown target type", func(t *testing.T) {
		f := newFixture(t)
		input := productInput
		input.TargetType = "garage"
		_, err := f.storage.CreateReview(ctx, customer, input)
		assert.ErrorIs(t, err, storage.ErrValidation)
	})

	t.Run("repairer review requires a completed service request", func(t *testing.T) {
		f := newFixture(t)
		repairerID := uuid.New()
		f.users.EXPECT().GetByID(gomock.Any(), repairerID).Return(&repository.User{
			ID: repairerID, Role: string(lifecycle.RoleRepairer),
		}, nil)
		f.services.EXPECT().HasCompletedForOwner(gomock.Any(), customerID, repairerID).Return(false, nil)

		_, err := f.storage.CreateReview(ctx, customer, storage.CreateReviewInput{
			TargetType: storage.TargetRepairer,
			TargetID:   repairerID,
			Rating:     4,
		})
		assert.ErrorIs(t, err, storage.ErrForbidden)
	})

	t.Run("service review only by the request owner", func(t *testing.T) {
		f := newFixture(t)
		requestID := uuid.New()
		f.services.EXPECT().GetByID(gomock.Any(), requestID).Return(&repository.ServiceRequest{
			ID: requestID, OwnerID: uuid.New(), Status: string(lifecycle.ServiceCompleted),
		}, nil)

		_, err := f.storage.CreateReview(ctx, customer, storage.CreateReviewInput{
			TargetType: storage.TargetService,
			TargetID:   requestID,
			Rating:     4,
		})
		assert.ErrorIs(t, err, storage.ErrForbidden)
	})
}

func TestUpdateReview(t *testing.T) {
	ctx := context.Background()
	authorID := uuid.New()
	productID := uuid.New()
	reviewID := uuid.New()
	author := storage.Actor{UserID: authorID, Role: lifecycle.RoleCustomer}

	baseReview := func(rating int) *repository.Review {
		return &repository.Review{
			ID:         reviewID,
			AuthorID:   authorID,
			TargetType: storage.TargetProduct,
			TargetID:   productID,
			Rating:     rating,
		}
	}

	t.Run("rating edit shifts the average, count unchanged", func(t *testing.T) {
		f := newFixture(t)
		f.expectTx()
		f.reviews.EXPECT().GetByIDTx(gomock.Any(), f.tx, reviewID).Return(baseReview(3), nil)
		f.products.EXPECT().GetByIDTx(gomock.Any(), f.tx, productID).Return(&repository.Product{
			ID: productID, RatingAverage: 4.0, RatingCount: 2,
		}, nil)
		f.products.EXPECT().UpdateRatingTx(gomock.Any(), f.tx, productID, (4.0*2+2)/2, 2).Return(nil)
		f.reviews.EXPECT().UpdateTx(gomock.Any(), f.tx, gomock.Any()).Return(nil)
		f.expectCommit()

		rating := 5
		review, err := f.storage.UpdateReview(ctx, author, reviewID, storage.UpdateReviewInput{Rating: &rating})
		require.NoError(t, err)
		assert.Equal(t, 5, review.Rating)
	})

	t.Run("comment-only edit leaves the aggregate alone", func(t *testing.T) {
		f := newFixture(t)
		f.expectTx()
		f.reviews.EXPECT().GetByIDTx(gomock.Any(), f.tx, reviewID).Return(baseReview(3), nil)
		f.reviews.EXPECT().UpdateTx(gomock.Any(), f.tx, gomock.Any()).Return(nil)
		f.expectCommit()

		comment := "still holding up after a month"
		_, err := f.storage.UpdateReview(ctx, author, reviewID, storage.UpdateReviewInput{Comment: &comment})
		require.NoError(t, err)
	})

	t.Run("not the author", func(t *testing.T) {
		f := newFixture(t)
		f.expectTx()
		f.reviews.EXPECT().GetByIDTx(gomock.Any(), f.tx, reviewID).Return(baseReview(3), nil)

		rating := 5
		_, err := f.storage.UpdateReview(ctx, storage.Actor{UserID: uuid.New(), Role: lifecycle.RoleCustomer}, reviewID, storage.UpdateReviewInput{Rating: &rating})
		assert.ErrorIs(t, err, storage.ErrForbidden)
	})
}

func TestDeleteReview(t *testing.T) {
	ctx := context.Background()
	authorID := uuid.New()
	productID := uuid.New()
	reviewID := uuid.New()
	author := storage.Actor{UserID: authorID, Role: lifecycle.RoleCustomer}

	review := &repository.Review{
		ID:         reviewID,
		AuthorID:   authorID,
		TargetType: storage.TargetProduct,
		TargetID:   productID,
		Rating:     5,
	}

	t.Run("aggregate is compensated", func(t *testing.T) {
		f := newFixture(t)
		f.expectTx()
		f.reviews.EXPECT().GetByIDTx(gomock.Any(), f.tx, reviewID).Return(review, nil)
		f.reviews.EXPECT().DeleteTx(gomock.Any(), f.tx, reviewID).Return(nil)
		f.products.EXPECT().GetByIDTx(gomock.Any(), f.tx, productID).Return(&repository.Product{
			ID: productID, RatingAverage: 4.5, RatingCount: 2,
		}, nil)
		f.products.EXPECT().UpdateRatingTx(gomock.Any(), f.tx, productID, (4.5*2-5)/1, 1).Return(nil)
		f.expectCommit()

		require.NoError(t, f.storage.DeleteReview(ctx, author, reviewID))
	})

	t.Run("last review resets the average to zero", func(t *testing.T) {
		f := newFixture(t)
		f.expectTx()
		f.reviews.EXPECT().GetByIDTx(gomock.Any(), f.tx, reviewID).Return(review, nil)
		f.reviews.EXPECT().DeleteTx(gomock.Any(), f.tx, reviewID).Return(nil)
		f.products.EXPECT().GetByIDTx(gomock.Any(), f.tx, productID).Return(&repository.Product{
			ID: productID, RatingAverage: 5.0, RatingCount: 1,
		}, nil)
		f.products.EXPECT().UpdateRatingTx(gomock.Any(), f.tx, productID, 0.0, 0).Return(nil)
		f.expectCommit()

		require.NoError(t, f.storage.DeleteReview(ctx, author, reviewID))
	})

	t.Run("not the author", func(t *testing.T) {
		f := newFixture(t)
		f.expectTx()
		f.reviews.EXPECT().GetByIDTx(gomock.Any(), f.tx, reviewID).Return(review, nil)

		err := f.storage.DeleteReview(ctx, storage.Actor{UserID: uuid.New(), Role: lifecycle.RoleSeller}, reviewID)
		assert.ErrorIs(t, err, storage.ErrForbidden)
	})
}

func TestRespondToReview(t *testing.T) {
	ctx := context.Background()
	sellerID := uuid.New()
	productID := uuid.New()
	reviewID := uuid.New()

	review := &repository.Review{
		ID:         reviewID,
		AuthorID:   uuid.New(),
		TargetType: storage.TargetProduct,
		TargetID:   productID,
		Rating:     2,
	}

	t.Run("seller responds to a product review", func(t *testing.T) {
		f := newFixture(t)
		f.reviews.EXPECT().GetByID(gomock.Any(), reviewID).Return(review, nil)
		f.products.EXPECT().GetByID(gomock.Any(), productID).Return(&repository.Product{ID: productID, SellerID: sellerID}, nil)
		f.reviews.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, updated *repository.Review) error {
				assert.Equal(t, "sorry to hear that, contact support", updated.Response)
				return nil
			})

		got, err := f.storage.RespondToReview(ctx, storage.Actor{UserID: sellerID, Role: lifecycle.RoleSeller}, reviewID, "sorry to hear that, contact support")
		require.NoError(t, err)
		assert.Equal(t, "sorry to hear that, contact support", got.Response)
	})

	t.Run("someone else's product", func(t *testing.T) {
		f := newFixture(t)
		f.reviews.EXPECT().GetByID(gomock.Any(), reviewID).Return(review, nil)
		f.products.EXPECT().GetByID(gomock.Any(), productID).Return(&repository.Product{ID: productID, SellerID: uuid.New()}, nil)

		_, err := f.storage.RespondToReview(ctx, storage.Actor{UserID: sellerID, Role: lifecycle.RoleSeller}, reviewID, "thanks")
		assert.ErrorIs(t, err, storage.ErrForbidden)
	})

	t.Run("empty response", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.storage.RespondToReview(ctx, storage.Actor{UserID: sellerID, Role: lifecycle.RoleSeller}, reviewID, "")
		assert.ErrorIs(t, err, storage.ErrValidation)
	})
}
