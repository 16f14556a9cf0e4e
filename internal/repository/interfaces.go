package repository

import (
	"context"

	"news-notes/internal/domain"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// NoteRepository defines methods for note data access. Create and
// Update surface ErrDuplicateSlug when the unique slug index rejects
// the write; nothing is persisted in that case.
type NoteRepository interface {
	Create(ctx context.Context, note *domain.Note) error
	GetBySlug(ctx context.Context, slug string) (*domain.Note, error)
	ListByAuthor(ctx context.Context, authorID string) ([]domain.Note, error)
	Update(ctx context.Context, note *domain.Note) error
	Delete(ctx context.Context, id string) error
}

// NewsRepository defines methods for news data access. ListPage orders
// by date descending; ordering is part of the contract, not a default.
type NewsRepository interface {
	Create(ctx context.Context, news *domain.News) error
	GetByID(ctx context.Context, id string) (*domain.News, error)
	ListPage(ctx context.Context, limit, offset int) ([]domain.News, error)
	BulkInsert(ctx context.Context, items []domain.News) (int, error)
	Delete(ctx context.Context, id string) error
}

// CommentRepository defines methods for comment data access. ListByNews
// orders by creation time ascending; ordering is part of the contract.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	GetByID(ctx context.Context, id string) (*domain.Comment, error)
	ListByNews(ctx context.Context, newsID string) ([]domain.Comment, error)
	Update(ctx context.Context, comment *domain.Comment) error
	Delete(ctx context.Context, id string) error
}
