package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentRepository_ListByNews_OldestFirst(t *testing.T) {
	truncateTables(t)
	repo := NewPostgresCommentRepository(testPool)

	user := createTestUser(t, "commenter")
	news := createTestNews(t, "Discussed", day(0))

	base := time.Date(2026, 8, 2, 12, 0, 0, 0, time.UTC)
	// Insert out of chronological order on purpose.
	second := createTestComment(t, news.ID, user.ID, "second", base.Add(time.Minute))
	first := createTestComment(t, news.ID, user.ID, "first", base)
	third := createTestComment(t, news.ID, user.ID, "third", base.Add(2*time.Minute))

	comments, err := repo.ListByNews(context.Background(), news.ID)
	require.NoError(t, err)
	require.Len(t, comments, 3)
	assert.Equal(t, first.ID, comments[0].ID)
	assert.Equal(t, second.ID, comments[1].ID)
	assert.Equal(t, third.ID, comments[2].ID)
}

func TestCommentRepository_ListByNews_ScopedToNewsItem(t *testing.T) {
	truncateTables(t)
	repo := NewPostgresCommentRepository(testPool)

	user := createTestUser(t, "commenter")
	one := createTestNews(t, "One", day(0))
	two := createTestNews(t, "Two", day(1))

	createTestComment(t, one.ID, user.ID, "on one", time.Now().UTC())
	createTestComment(t, two.ID, user.ID, "on two", time.Now().UTC())

	comments, err := repo.ListByNews(context.Background(), one.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "on one", comments[0].Text)
}

func TestCommentRepository_GetByID_CarriesAuthorName(t *testing.T) {
	truncateTables(t)
	repo := NewPostgresCommentRepository(testPool)

	user := createTestUser(t, "loudmouth")
	news := createTestNews(t, "Item", day(0))
	comment := createTestComment(t, news.ID, user.ID, "hi", time.Now().UTC())

	got, err := repo.GetByID(context.Background(), comment.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "loudmouth", got.AuthorName)
}

func TestCommentRepository_GetByID_MissingReturnsNil(t *testing.T) {
	truncateTables(t)
	repo := NewPostgresCommentRepository(testPool)

	got, err := repo.GetByID(context.Background(), uuid.New().String())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCommentRepository_Update_ChangesOnlyText(t *testing.T) {
	truncateTables(t)
	repo := NewPostgresCommentRepository(testPool)

	user := createTestUser(t, "commenter")
	news := createTestNews(t, "Item", day(0))
	comment := createTestComment(t, news.ID, user.ID, "before", time.Now().UTC())

	comment.Text = "after"
	require.NoError(t, repo.Update(context.Background(), comment))

	got, err := repo.GetByID(context.Background(), comment.ID)
	require.NoError(t, err)
	assert.Equal(t, "after", got.Text)
	assert.Equal(t, user.ID, got.AuthorID)
	assert.Equal(t, news.ID, got.NewsID)
}

func TestCommentRepository_Delete(t *testing.T) {
	truncateTables(t)
	repo := NewPostgresCommentRepository(testPool)

	user := createTestUser(t, "commenter")
	news := createTestNews(t, "Item", day(0))
	comment := createTestComment(t, news.ID, user.ID, "bye", time.Now().UTC())

	require.NoError(t, repo.Delete(context.Background(), comment.ID))

	got, err := repo.GetByID(context.Background(), comment.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
