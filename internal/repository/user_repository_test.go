package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news-notes/internal/domain"
)

func TestUserRepository_CreateAndGetByUsername(t *testing.T) {
	truncateTables(t)
	repo := NewPostgresUserRepository(testPool)

	created := createTestUser(t, "someone")

	got, err := repo.GetByUsername(context.Background(), "someone")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created.ID, got.ID)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestUserRepository_GetByID(t *testing.T) {
	truncateTables(t)
	repo := NewPostgresUserRepository(testPool)

	created := createTestUser(t, "someone")

	got, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "someone", got.Username)
}

func TestUserRepository_GetByID_MissingReturnsNil(t *testing.T) {
	truncateTables(t)
	repo := NewPostgresUserRepository(testPool)

	got, err := repo.GetByID(context.Background(), uuid.New().String())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserRepository_DuplicateUsernameRejected(t *testing.T) {
	truncateTables(t)
	repo := NewPostgresUserRepository(testPool)

	createTestUser(t, "taken")

	err := repo.Create(context.Background(), &domain.User{
		ID:           uuid.New().String(),
		Username:     "taken",
		PasswordHash: "x",
	})
	assert.ErrorIs(t, err, ErrDuplicateUsername)
}
