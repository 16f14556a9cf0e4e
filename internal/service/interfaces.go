package service

import (
	"context"

	"news-notes/internal/domain"
)

// NewsPage is one page of the news home listing.
type NewsPage struct {
	Items   []domain.News
	Number  int
	HasNext bool
	HasPrev bool
}

// NewsDetail is a news item together with its ordered comment thread.
type NewsDetail struct {
	News     *domain.News
	Comments []domain.Comment
}

// NoteServiceInterface defines the note use-cases.
// Used for dependency injection and mocking in tests.
type NoteServiceInterface interface {
	// Create validates the form, assigns the slug and persists the note.
	// Field errors (including a slug collision) come back as the second
	// value; the storage state is untouched when they are non-nil.
	Create(ctx context.Context, authorID string, form *domain.NoteForm) (*domain.Note, domain.FieldErrors, error)
	// Update rewrites an existing note from the form, under the same
	// validation and slug rules as Create.
	Update(ctx context.Context, note *domain.Note, form *domain.NoteForm) (*domain.Note, domain.FieldErrors, error)
	// Delete removes a note by ID.
	Delete(ctx context.Context, id string) error
	// GetBySlug returns the note with the slug, or nil when absent.
	GetBySlug(ctx context.Context, slug string) (*domain.Note, error)
	// ListForAuthor returns only the author's own notes.
	ListForAuthor(ctx context.Context, authorID string) ([]domain.Note, error)
}

// NewsServiceInterface defines the news read use-cases.
type NewsServiceInterface interface {
	// HomePage returns one fixed-size page of news, newest first.
	HomePage(ctx context.Context, page int) (*NewsPage, error)
	// Detail returns the news item and its comments oldest-first, or nil
	// when the item does not exist.
	Detail(ctx context.Context, id string) (*NewsDetail, error)
}

// CommentServiceInterface defines the comment use-cases.
type CommentServiceInterface interface {
	// Create validates and moderates the form, then persists the comment
	// with the submitting identity as author and the current time as
	// creation time. A moderation hit yields field errors and no write.
	Create(ctx context.Context, newsID, authorID string, form *domain.CommentForm) (*domain.Comment, domain.FieldErrors, error)
	// Update rewrites the comment text under the same moderation rules.
	Update(ctx context.Context, comment *domain.Comment, form *domain.CommentForm) (domain.FieldErrors, error)
	// Delete removes a comment by ID.
	Delete(ctx context.Context, id string) error
	// Get returns the comment with the ID, or nil when absent.
	Get(ctx context.Context, id string) (*domain.Comment, error)
}

// AuthServiceInterface defines the account use-cases.
type AuthServiceInterface interface {
	// Signup validates the form and creates the account.
	Signup(ctx context.Context, form *domain.SignupForm) (*domain.User, domain.FieldErrors, error)
	// Login verifies the credentials and returns the user, or
	// ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (*domain.User, error)
}
