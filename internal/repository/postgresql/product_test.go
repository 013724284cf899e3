package postgresql

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_database "github.com/shopmeco/backend/internal/db/mocks"
	"github.com/shopmeco/backend/internal/repository"
	"github.com/shopmeco/backend/internal/storage"
)

func TestProductRepoList(t *testing.T) {
	ctx := context.Background()

	t.Run("filters become numbered conditions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		database := mock_database.NewMockDB(ctrl)

		var gotQuery string
		var gotArgs []interface{}
		database.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ interface{}, query string, args ...interface{}) error {
				gotQuery = query
				gotArgs = args
				return nil
			})

		repo := &ProductRepo{db: database}
		_, err := repo.List(ctx, storage.ProductFilter{
			Category: "brakes",
			Year:     2019,
			Page:     2,
			Limit:    10,
		})
		require.NoError(t, err)

		assert.Equal(t,
			"SELECT * FROM products WHERE category = $1 AND year_from <= $2 AND year_to >= $3 ORDER BY created_at DESC LIMIT $4 OFFSET $5",
			gotQuery)
		assert.Equal(t, []interface{}{"brakes", 2019, 2019, 10, 10}, gotArgs)
	})

	t.Run("empty filter lists everything paginated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		database := mock_database.NewMockDB(ctrl)

		var gotQuery string
		database.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any(), 20, 0).
			DoAndReturn(func(_ context.Context, _ interface{}, query string, _ ...interface{}) error {
				gotQuery = query
				return nil
			})

		repo := &ProductRepo{db: database}
		_, err := repo.List(ctx, storage.ProductFilter{})
		require.NoError(t, err)
		assert.Equal(t, "SELECT * FROM products ORDER BY created_at DESC LIMIT $1 OFFSET $2", gotQuery)
	})
}

func TestProductRepoGetByIDTx(t *testing.T) {
	ctx := context.Background()
	productID := uuid.New()
	ctrl := gomock.NewController(t)
	tx := mock_database.NewMockTx(ctrl)
	tx.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), productID).Return(pgx.ErrNoRows)

	repo := &ProductRepo{}
	_, err := repo.GetByIDTx(ctx, tx, productID)
	assert.ErrorIs(t, err, repository.ErrObjectNotFound)
}

func TestProductRepoAdjustStockTx(t *testing.T) {
	ctx := context.Background()
	productID := uuid.New()
	ctrl := gomock.NewController(t)
	tx := mock_database.NewMockTx(ctrl)
	tx.EXPECT().Exec(gomock.Any(), gomock.Any(), -3, productID).
		Return(pgconn.CommandTag("UPDATE 1"), nil)

	repo := &ProductRepo{}
	require.NoError(t, repo.AdjustStockTx(ctx, tx, productID, -3))
}
