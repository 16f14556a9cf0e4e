package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"news-notes/internal/domain"
)

// ErrDuplicateSlug is returned when a note create/update collides with
// an existing slug. The unique index enforces the invariant at the
// storage boundary, so two concurrent creations with the same slug
// cannot both succeed; the losing write fails atomically.
var ErrDuplicateSlug = errors.New("note slug already exists")

// PostgresNoteRepository implements NoteRepository using PostgreSQL.
type PostgresNoteRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresNoteRepository creates a new PostgresNoteRepository.
func NewPostgresNoteRepository(pool *pgxpool.Pool) *PostgresNoteRepository {
	return &PostgresNoteRepository{pool: pool}
}

// Create inserts a new note.
func (r *PostgresNoteRepository) Create(ctx context.Context, note *domain.Note) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO notes (id, title, text, slug, author_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING created_at, updated_at
	`, note.ID, note.Title, note.Text, note.Slug, note.AuthorID).Scan(&note.CreatedAt, &note.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err, "notes_slug_key") {
			return ErrDuplicateSlug
		}
		return fmt.Errorf("insert note: %w", err)
	}
	return nil
}

// GetBySlug returns the note with the given slug, or nil when absent.
func (r *PostgresNoteRepository) GetBySlug(ctx context.Context, slug string) (*domain.Note, error) {
	var n domain.Note
	err := r.pool.QueryRow(ctx, `
		SELECT id, title, text, slug, author_id, created_at, updated_at
		FROM notes
		WHERE slug = $1
	`, slug).Scan(&n.ID, &n.Title, &n.Text, &n.Slug, &n.AuthorID, &n.CreatedAt, &n.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select note by slug: %w", err)
	}
	return &n, nil
}

// ListByAuthor returns the author's notes ordered by creation time
// ascending. The scope filter is the visibility rule: a requester only
// ever sees their own notes.
func (r *PostgresNoteRepository) ListByAuthor(ctx context.Context, authorID string) ([]domain.Note, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, text, slug, author_id, created_at, updated_at
		FROM notes
		WHERE author_id = $1
		ORDER BY created_at ASC
	`, authorID)
	if err != nil {
		return nil, fmt.Errorf("query notes by author: %w", err)
	}
	defer rows.Close()

	var notes []domain.Note
	for rows.Next() {
		var n domain.Note
		if err := rows.Scan(&n.ID, &n.Title, &n.Text, &n.Slug, &n.AuthorID, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

// Update rewrites the note's title, text and slug.
func (r *PostgresNoteRepository) Update(ctx context.Context, note *domain.Note) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE notes
		SET title = $2, text = $3, slug = $4, updated_at = NOW()
		WHERE id = $1
	`, note.ID, note.Title, note.Text, note.Slug)
	if err != nil {
		if isUniqueViolation(err, "notes_slug_key") {
			return ErrDuplicateSlug
		}
		return fmt.Errorf("update note: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update note: no note with id %s", note.ID)
	}
	return nil
}

// Delete removes the note.
func (r *PostgresNoteRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM notes WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	return nil
}
