package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"news-notes/internal/domain"
	"news-notes/internal/mocks"
	"news-notes/internal/moderation"
	"news-notes/internal/repository"
	"news-notes/internal/service"
	"news-notes/internal/validator"
)

func newTestValidator() *validator.Validator {
	return validator.NewValidator(moderation.NewFilter(nil))
}

func TestNoteService_Create_KeepsSubmittedSlug(t *testing.T) {
	repo := mocks.NewNoteRepository(t)
	svc := service.NewNoteService(repo, newTestValidator())

	var stored *domain.Note
	repo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Note")).
		Run(func(ctx context.Context, note *domain.Note) {
			stored = note
		}).
		Return(nil)

	form := &domain.NoteForm{Title: "Shopping", Text: "milk", Slug: "my-list"}
	note, fieldErrs, err := svc.Create(context.Background(), "user-1", form)

	require.NoError(t, err)
	require.Nil(t, fieldErrs)
	require.NotNil(t, note)
	assert.Equal(t, "my-list", note.Slug)
	assert.Equal(t, "user-1", note.AuthorID)
	assert.NotEmpty(t, note.ID)
	assert.Equal(t, note, stored)
}

func TestNoteService_Create_DerivesSlugFromTitle(t *testing.T) {
	repo := mocks.NewNoteRepository(t)
	svc := service.NewNoteService(repo, newTestValidator())

	repo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Note")).Return(nil)

	form := &domain.NoteForm{Title: "My Shopping List", Text: "milk"}
	note, fieldErrs, err := svc.Create(context.Background(), "user-1", form)

	require.NoError(t, err)
	require.Nil(t, fieldErrs)
	assert.Equal(t, "my-shopping-list", note.Slug)
}

func TestNoteService_Create_DuplicateSlug(t *testing.T) {
	repo := mocks.NewNoteRepository(t)
	svc := service.NewNoteService(repo, newTestValidator())

	repo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Note")).
		Return(repository.ErrDuplicateSlug)

	form := &domain.NoteForm{Title: "Second", Text: "text", Slug: "taken"}
	note, fieldErrs, err := svc.Create(context.Background(), "user-1", form)

	require.NoError(t, err)
	assert.Nil(t, note)
	require.NotNil(t, fieldErrs)
	assert.Equal(t, "taken"+service.DuplicateSlugWarning, fieldErrs.Get("slug"))
}

func TestNoteService_Create_ValidationFailureSkipsStorage(t *testing.T) {
	repo := mocks.NewNoteRepository(t)
	svc := service.NewNoteService(repo, newTestValidator())

	form := &domain.NoteForm{Title: "", Text: ""}
	note, fieldErrs, err := svc.Create(context.Background(), "user-1", form)

	require.NoError(t, err)
	assert.Nil(t, note)
	require.NotNil(t, fieldErrs)
	assert.True(t, fieldErrs.Has("title"))
	assert.True(t, fieldErrs.Has("text"))
}

func TestNoteService_Update_ReplacesFields(t *testing.T) {
	repo := mocks.NewNoteRepository(t)
	svc := service.NewNoteService(repo, newTestValidator())

	existing := &domain.Note{ID: "note-1", Title: "Old", Text: "old", Slug: "old", AuthorID: "user-1"}
	repo.EXPECT().Update(mock.Anything, mock.AnythingOfType("*domain.Note")).Return(nil)

	form := &domain.NoteForm{Title: "New Title", Text: "new text", Slug: "new-slug"}
	updated, fieldErrs, err := svc.Update(context.Background(), existing, form)

	require.NoError(t, err)
	require.Nil(t, fieldErrs)
	assert.Equal(t, "note-1", updated.ID)
	assert.Equal(t, "user-1", updated.AuthorID)
	assert.Equal(t, "New Title", updated.Title)
	assert.Equal(t, "new-slug", updated.Slug)
	// The caller's copy stays untouched until the write succeeds.
	assert.Equal(t, "Old", existing.Title)
}

func TestNoteService_Update_DuplicateSlug(t *testing.T) {
	repo := mocks.NewNoteRepository(t)
	svc := service.NewNoteService(repo, newTestValidator())

	existing := &domain.Note{ID: "note-1", Title: "Old", Text: "old", Slug: "old", AuthorID: "user-1"}
	repo.EXPECT().Update(mock.Anything, mock.AnythingOfType("*domain.Note")).
		Return(repository.ErrDuplicateSlug)

	form := &domain.NoteForm{Title: "Old", Text: "old", Slug: "other"}
	updated, fieldErrs, err := svc.Update(context.Background(), existing, form)

	require.NoError(t, err)
	assert.Nil(t, updated)
	require.NotNil(t, fieldErrs)
	assert.Equal(t, "other"+service.DuplicateSlugWarning, fieldErrs.Get("slug"))
}

func TestNoteService_Delete_PropagatesError(t *testing.T) {
	repo := mocks.NewNoteRepository(t)
	svc := service.NewNoteService(repo, newTestValidator())

	repo.EXPECT().Delete(mock.Anything, "note-1").Return(errors.New("boom"))

	err := svc.Delete(context.Background(), "note-1")
	assert.Error(t, err)
}

func TestNoteService_ListForAuthor(t *testing.T) {
	repo := mocks.NewNoteRepository(t)
	svc := service.NewNoteService(repo, newTestValidator())

	expected := []domain.Note{{ID: "note-1", AuthorID: "user-1"}}
	repo.EXPECT().ListByAuthor(mock.Anything, "user-1").Return(expected, nil)

	notes, err := svc.ListForAuthor(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, expected, notes)
}
