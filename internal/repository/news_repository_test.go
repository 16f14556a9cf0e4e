package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news-notes/internal/domain"
)

func day(offset int) time.Time {
	return time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func TestNewsRepository_ListPage_NewestFirst(t *testing.T) {
	truncateTables(t)
	repo := NewPostgresNewsRepository(testPool)

	oldest := createTestNews(t, "Oldest", day(0))
	middle := createTestNews(t, "Middle", day(1))
	newest := createTestNews(t, "Newest", day(2))

	items, err := repo.ListPage(context.Background(), 10, 0)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, newest.ID, items[0].ID)
	assert.Equal(t, middle.ID, items[1].ID)
	assert.Equal(t, oldest.ID, items[2].ID)
}

func TestNewsRepository_ListPage_LimitAndOffset(t *testing.T) {
	truncateTables(t)
	repo := NewPostgresNewsRepository(testPool)

	for i := 0; i < 5; i++ {
		createTestNews(t, "Item", day(i))
	}

	firstPage, err := repo.ListPage(context.Background(), 2, 0)
	require.NoError(t, err)
	assert.Len(t, firstPage, 2)

	secondPage, err := repo.ListPage(context.Background(), 2, 2)
	require.NoError(t, err)
	assert.Len(t, secondPage, 2)
	assert.NotEqual(t, firstPage[0].ID, secondPage[0].ID)

	lastPage, err := repo.ListPage(context.Background(), 2, 4)
	require.NoError(t, err)
	assert.Len(t, lastPage, 1)
}

func TestNewsRepository_GetByID_MissingReturnsNil(t *testing.T) {
	truncateTables(t)
	repo := NewPostgresNewsRepository(testPool)

	got, err := repo.GetByID(context.Background(), uuid.New().String())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestNewsRepository_Create_DefaultsDateToToday(t *testing.T) {
	truncateTables(t)
	repo := NewPostgresNewsRepository(testPool)

	news := &domain.News{ID: uuid.New().String(), Title: "No Date", Text: "text"}
	require.NoError(t, repo.Create(context.Background(), news))

	assert.False(t, news.Date.IsZero())
}

func TestNewsRepository_BulkInsert(t *testing.T) {
	truncateTables(t)
	repo := NewPostgresNewsRepository(testPool)

	items := make([]domain.News, 0, 5)
	for i := 0; i < 5; i++ {
		items = append(items, domain.News{
			ID:    uuid.New().String(),
			Title: "Bulk",
			Text:  "text",
			Date:  day(i),
		})
	}

	inserted, err := repo.BulkInsert(context.Background(), items)
	require.NoError(t, err)
	assert.Equal(t, 5, inserted)

	listed, err := repo.ListPage(context.Background(), 10, 0)
	require.NoError(t, err)
	assert.Len(t, listed, 5)
}

func TestNewsRepository_BulkInsert_EmptyIsNoop(t *testing.T) {
	truncateTables(t)
	repo := NewPostgresNewsRepository(testPool)

	inserted, err := repo.BulkInsert(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, inserted)
}

func TestNewsRepository_Delete_CascadesComments(t *testing.T) {
	truncateTables(t)
	repo := NewPostgresNewsRepository(testPool)
	comments := NewPostgresCommentRepository(testPool)

	user := createTestUser(t, "commenter")
	news := createTestNews(t, "Doomed", day(0))
	comment := createTestComment(t, news.ID, user.ID, "will vanish", time.Now().UTC())

	require.NoError(t, repo.Delete(context.Background(), news.ID))

	got, err := comments.GetByID(context.Background(), comment.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
