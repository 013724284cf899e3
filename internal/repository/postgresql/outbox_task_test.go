package postgresql

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_database "github.com/shopmeco/backend/internal/db/mocks"
	"github.com/shopmeco/backend/internal/repository"
)

func TestOutboxTaskRepoCreateTx(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	tx := mock_database.NewMockTx(ctrl)

	var gotArgs []interface{}
	tx.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, args ...interface{}) (pgconn.CommandTag, error) {
			gotArgs = args
			return pgconn.CommandTag("INSERT 0 1"), nil
		})

	repo := &OutboxTaskRepo{maxAttempts: 5}
	task := &repository.OutboxTask{
		Payload: json.RawMessage(`{"method":"POST"}`),
		Topic:   "audit-log",
	}
	require.NoError(t, repo.CreateTx(ctx, tx, task))

	assert.NotEqual(t, uuid.Nil, task.ID, "an id must be assigned")
	require.Len(t, gotArgs, 6)
	assert.Equal(t, task.ID, gotArgs[0])
	assert.Equal(t, repository.TaskStatusCreated, gotArgs[1])
	assert.Equal(t, "audit-log", gotArgs[3])
}

func TestOutboxTaskRepoGetProcessableTasks(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	tx := mock_database.NewMockTx(ctrl)

	var gotQuery string
	tx.EXPECT().Select(gomock.Any(), gomock.Any(), gomock.Any(),
		repository.TaskStatusCreated, repository.TaskStatusFailed, 5, 10).
		DoAndReturn(func(_ context.Context, dest interface{}, query string, _ ...interface{}) error {
			gotQuery = query
			*dest.(*[]*repository.OutboxTask) = []*repository.OutboxTask{
				{ID: uuid.New(), Status: repository.TaskStatusCreated},
			}
			return nil
		})

	repo := &OutboxTaskRepo{maxAttempts: 5}
	tasks, err := repo.GetProcessableTasks(ctx, tx, 10)
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
	assert.Contains(t, gotQuery, "FOR UPDATE SKIP LOCKED")
}

func TestOutboxTaskRepoUpdateTaskStatus(t *testing.T) {
	ctx := context.Background()
	taskID := uuid.New()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		database := mock_database.NewMockDB(ctrl)
		database.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(pgconn.CommandTag("UPDATE 1"), nil)

		repo := &OutboxTaskRepo{maxAttempts: 5}
		require.NoError(t, repo.UpdateTaskStatus(ctx, database, taskID, repository.TaskStatusDone, 1, nil, nil))
	})

	t.Run("unknown task", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		database := mock_database.NewMockDB(ctrl)
		database.EXPECT().Exec(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(pgconn.CommandTag("UPDATE 0"), nil)

		repo := &OutboxTaskRepo{maxAttempts: 5}
		err := repo.UpdateTaskStatus(ctx, database, taskID, repository.TaskStatusDone, 1, nil, nil)
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
	})
}
