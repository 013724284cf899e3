package postgresql

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_database "github.com/shopmeco/backend/internal/db/mocks"
	"github.com/shopmeco/backend/internal/repository"
)

func TestUserRepoCreate(t *testing.T) {
	ctx := context.Background()
	user := &repository.User{
		ID:        uuid.New(),
		Email:     "jordan@example.com",
		Name:      "Jordan",
		Role:      "customer",
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		database := mock_database.NewMockDB(ctrl)
		database.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(pgconn.CommandTag("INSERT 0 1"), nil)

		repo := &UserRepo{db: database}
		require.NoError(t, repo.Create(ctx, user))
	})

	t.Run("duplicate email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		database := mock_database.NewMockDB(ctrl)
		database.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(pgconn.CommandTag(nil), &pgconn.PgError{Code: uniqueViolation})

		repo := &UserRepo{db: database}
		assert.ErrorIs(t, repo.Create(ctx, user), repository.ErrDuplicateKey)
	})
}

func TestUserRepoGetByID(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		database := mock_database.NewMockDB(ctrl)
		database.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), userID).
			DoAndReturn(func(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
				*dest.(*repository.User) = repository.User{ID: userID, Email: "jordan@example.com"}
				return nil
			})

		repo := &UserRepo{db: database}
		user, err := repo.GetByID(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, userID, user.ID)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		database := mock_database.NewMockDB(ctrl)
		database.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), userID).
			Return(pgx.ErrNoRows)

		repo := &UserRepo{db: database}
		_, err := repo.GetByID(ctx, userID)
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
	})
}

func TestUserRepoDelete(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		database := mock_database.NewMockDB(ctrl)
		database.EXPECT().Exec(gomock.Any(), gomock.Any(), userID).
			Return(pgconn.CommandTag("DELETE 1"), nil)

		repo := &UserRepo{db: database}
		require.NoError(t, repo.Delete(ctx, userID))
	})

	t.Run("nothing deleted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		database := mock_database.NewMockDB(ctrl)
		database.EXPECT().Exec(gomock.Any(), gomock.Any(), userID).
			Return(pgconn.CommandTag("DELETE 0"), nil)

		repo := &UserRepo{db: database}
		assert.ErrorIs(t, repo.Delete(ctx, userID), repository.ErrObjectNotFound)
	})
}

func TestUserRepoListDefaults(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	database := mock_database.NewMockDB(ctrl)
	database.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any(), 20, 0).Return(nil)

	repo := &UserRepo{db: database}
	_, err := repo.List(ctx, 0, 0)
	require.NoError(t, err)
}
