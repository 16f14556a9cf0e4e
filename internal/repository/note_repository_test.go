package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news-notes/internal/domain"
)

func TestNoteRepository_CreateAndGetBySlug(t *testing.T) {
	truncateTables(t)
	author := createTestUser(t, "author")
	repo := NewPostgresNoteRepository(testPool)

	created := createTestNote(t, author.ID, "My Note", "my-note")

	got, err := repo.GetBySlug(context.Background(), "my-note")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "My Note", got.Title)
	assert.Equal(t, author.ID, got.AuthorID)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestNoteRepository_GetBySlug_MissingReturnsNil(t *testing.T) {
	truncateTables(t)
	repo := NewPostgresNoteRepository(testPool)

	got, err := repo.GetBySlug(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestNoteRepository_DuplicateSlugRejectedAtomically(t *testing.T) {
	truncateTables(t)
	author := createTestUser(t, "author")
	other := createTestUser(t, "other")
	repo := NewPostgresNoteRepository(testPool)

	createTestNote(t, author.ID, "First", "shared-slug")

	// Slug uniqueness is global, so another author's note collides too.
	second := createTestNote(t, other.ID, "placeholder", "other-slug")
	second.Slug = "shared-slug"
	err := repo.Update(context.Background(), second)
	assert.ErrorIs(t, err, ErrDuplicateSlug)

	var count int
	err = testPool.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM notes WHERE slug = 'shared-slug'`).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNoteRepository_Create_DuplicateSlugNotPersisted(t *testing.T) {
	truncateTables(t)
	author := createTestUser(t, "author")
	repo := NewPostgresNoteRepository(testPool)

	createTestNote(t, author.ID, "First", "taken")

	err := repo.Create(context.Background(), &domain.Note{
		ID:       uuid.New().String(),
		Title:    "Second",
		Text:     "text",
		Slug:     "taken",
		AuthorID: author.ID,
	})
	assert.ErrorIs(t, err, ErrDuplicateSlug)

	var count int
	require.NoError(t, testPool.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM notes`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestNoteRepository_ListByAuthor_ScopedAndOrdered(t *testing.T) {
	truncateTables(t)
	author := createTestUser(t, "author")
	other := createTestUser(t, "other")
	repo := NewPostgresNoteRepository(testPool)

	first := createTestNote(t, author.ID, "First", "first")
	second := createTestNote(t, author.ID, "Second", "second")
	createTestNote(t, other.ID, "Foreign", "foreign")

	notes, err := repo.ListByAuthor(context.Background(), author.ID)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, first.ID, notes[0].ID)
	assert.Equal(t, second.ID, notes[1].ID)
	for _, n := range notes {
		assert.Equal(t, author.ID, n.AuthorID)
	}
}

func TestNoteRepository_Update_KeepingOwnSlugAllowed(t *testing.T) {
	truncateTables(t)
	author := createTestUser(t, "author")
	repo := NewPostgresNoteRepository(testPool)

	note := createTestNote(t, author.ID, "Original", "keep-me")
	note.Title = "Renamed"

	require.NoError(t, repo.Update(context.Background(), note))

	got, err := repo.GetBySlug(context.Background(), "keep-me")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)
}

func TestNoteRepository_Delete(t *testing.T) {
	truncateTables(t)
	author := createTestUser(t, "author")
	repo := NewPostgresNoteRepository(testPool)

	note := createTestNote(t, author.ID, "Doomed", "doomed")
	require.NoError(t, repo.Delete(context.Background(), note.ID))

	got, err := repo.GetBySlug(context.Background(), "doomed")
	require.NoError(t, err)
	assert.Nil(t, got)
}
