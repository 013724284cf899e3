package storage_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/shopmeco/backend/internal/lifecycle"
	"github.com/shopmeco/backend/internal/repository"
	"github.com/shopmeco/backend/internal/storage"
)

func TestRegisterUser(t *testing.T) {
	ctx := context.Background()

	input := storage.RegisterInput{
		Email:    "jordan@example.com",
		Password: "hunter2hunter2",
		Name:     "Jordan",
		Role:     "customer",
	}

	t.Run("success", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user *repository.User) error {
				assert.Equal(t, "jordan@example.com", user.Email)
				assert.Equal(t, string(lifecycle.RoleCustomer), user.Role)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter2hunter2")))
				return nil
			})

		user, err := f.storage.RegisterUser(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, "customer", user.Role)
	})

	t.Run("admin cannot self-register", func(t *testing.T) {
		f := newFixture(t)
		bad := input
		bad.Role = "admin"
		_, err := f.storage.RegisterUser(ctx, bad)
		assert.ErrorIs(t, err, storage.ErrValidation)
	})

	t.Run("unknown role", func(t *testing.T) {
		f := newFixture(t)
		bad := input
		bad.Role = "mechanic"
		_, err := f.storage.RegisterUser(ctx, bad)
		assert.ErrorIs(t, err, storage.ErrValidation)
	})

	t.Run("duplicate email", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(repository.ErrDuplicateKey)

		_, err := f.storage.RegisterUser(ctx, input)
		assert.ErrorIs(t, err, storage.ErrConflict)
	})
}

func TestAuthenticateUser(t *testing.T) {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &repository.User{
		ID:           uuid.New(),
		Email:        "jordan@example.com",
		PasswordHash: string(hash),
		Role:         "customer",
	}

	t.Run("success", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().GetByEmail(gomock.Any(), "jordan@example.com").Return(user, nil)

		got, err := f.storage.AuthenticateUser(ctx, "jordan@example.com", "hunter2hunter2")
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().GetByEmail(gomock.Any(), "jordan@example.com").Return(user, nil)

		_, err := f.storage.AuthenticateUser(ctx, "jordan@example.com", "wrong")
		assert.ErrorIs(t, err, storage.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().GetByEmail(gomock.Any(), "ghost@example.com").Return(nil, repository.ErrObjectNotFound)

		_, err := f.storage.AuthenticateUser(ctx, "ghost@example.com", "hunter2hunter2")
		assert.ErrorIs(t, err, storage.ErrInvalidCredentials)
	})
}

func TestListUsers(t *testing.T) {
	ctx := context.Background()

	t.Run("admin only", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.storage.ListUsers(ctx, storage.Actor{UserID: uuid.New(), Role: lifecycle.RoleSeller}, 1, 20)
		assert.ErrorIs(t, err, storage.ErrForbidden)
	})

	t.Run("admin lists accounts", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().List(gomock.Any(), 1, 20).Return([]*repository.User{
			{ID: uuid.New(), Email: "a@example.com"},
			{ID: uuid.New(), Email: "b@example.com"},
		}, nil)

		users, err := f.storage.ListUsers(ctx, storage.Actor{UserID: uuid.New(), Role: lifecycle.RoleAdmin}, 1, 20)
		require.NoError(t, err)
		assert.Len(t, users, 2)
	})
}

func TestDeleteUser(t *testing.T) {
	ctx := context.Background()
	targetID := uuid.New()

	t.Run("admin only", func(t *testing.T) {
		f := newFixture(t)
		err := f.storage.DeleteUser(ctx, storage.Actor{UserID: uuid.New(), Role: lifecycle.RoleCustomer}, targetID)
		assert.ErrorIs(t, err, storage.ErrForbidden)
	})

	t.Run("unknown user", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().Delete(gomock.Any(), targetID).Return(repository.ErrObjectNotFound)

		err := f.storage.DeleteUser(ctx, storage.Actor{UserID: uuid.New(), Role: lifecycle.RoleAdmin}, targetID)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}
