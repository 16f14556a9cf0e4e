package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"news-notes/internal/domain"
	"news-notes/internal/logger"
	"news-notes/internal/metrics"
	"news-notes/internal/repository"
	"news-notes/internal/slugify"
	"news-notes/internal/validator"
)

// DuplicateSlugWarning is appended to the colliding slug value in the
// field error shown on the note form.
const DuplicateSlugWarning = " - this slug already exists, choose a unique value!"

// NoteService implements the note use-cases.
type NoteService struct {
	notes     repository.NoteRepository
	validator *validator.Validator
}

// NewNoteService creates a new NoteService.
func NewNoteService(notes repository.NoteRepository, v *validator.Validator) *NoteService {
	return &NoteService{notes: notes, validator: v}
}

// resolveSlug returns the slug to store: the submitted one verbatim, or
// one derived from the title when the form left it empty.
func resolveSlug(form *domain.NoteForm) string {
	if form.Slug != "" {
		return form.Slug
	}
	return slugify.Make(form.Title)
}

// Create validates the form and persists a new note for the author.
func (s *NoteService) Create(ctx context.Context, authorID string, form *domain.NoteForm) (*domain.Note, domain.FieldErrors, error) {
	if errs := s.validator.ValidateNote(form); errs != nil {
		return nil, errs, nil
	}

	note := &domain.Note{
		ID:       uuid.New().String(),
		Title:    form.Title,
		Text:     form.Text,
		Slug:     resolveSlug(form),
		AuthorID: authorID,
	}

	if err := s.notes.Create(ctx, note); err != nil {
		if errors.Is(err, repository.ErrDuplicateSlug) {
			return nil, domain.FieldErrors{"slug": note.Slug + DuplicateSlugWarning}, nil
		}
		return nil, nil, fmt.Errorf("create note: %w", err)
	}

	metrics.ObserveNoteOperation("created")
	logger.WithUser(authorID).Info("note created", slog.String("slug", note.Slug))
	return note, nil, nil
}

// Update validates the form and rewrites the note. Submitting the
// note's own slug unchanged is not a collision.
func (s *NoteService) Update(ctx context.Context, note *domain.Note, form *domain.NoteForm) (*domain.Note, domain.FieldErrors, error) {
	if errs := s.validator.ValidateNote(form); errs != nil {
		return nil, errs, nil
	}

	updated := *note
	updated.Title = form.Title
	updated.Text = form.Text
	updated.Slug = resolveSlug(form)

	if err := s.notes.Update(ctx, &updated); err != nil {
		if errors.Is(err, repository.ErrDuplicateSlug) {
			return nil, domain.FieldErrors{"slug": updated.Slug + DuplicateSlugWarning}, nil
		}
		return nil, nil, fmt.Errorf("update note: %w", err)
	}

	metrics.ObserveNoteOperation("updated")
	logger.WithUser(note.AuthorID).Info("note updated", slog.String("slug", updated.Slug))
	return &updated, nil, nil
}

// Delete removes the note.
func (s *NoteService) Delete(ctx context.Context, id string) error {
	if err := s.notes.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	metrics.ObserveNoteOperation("deleted")
	return nil
}

// GetBySlug returns the note with the slug, or nil when absent.
func (s *NoteService) GetBySlug(ctx context.Context, slug string) (*domain.Note, error) {
	return s.notes.GetBySlug(ctx, slug)
}

// ListForAuthor returns the author's notes, and only theirs.
func (s *NoteService) ListForAuthor(ctx context.Context, authorID string) ([]domain.Note, error) {
	return s.notes.ListByAuthor(ctx, authorID)
}
