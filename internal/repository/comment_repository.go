package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"news-notes/internal/domain"
)

// PostgresCommentRepository implements CommentRepository using PostgreSQL.
type PostgresCommentRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository.
func NewPostgresCommentRepository(pool *pgxpool.Pool) *PostgresCommentRepository {
	return &PostgresCommentRepository{pool: pool}
}

// Create inserts a comment. A zero Created timestamp defaults to NOW();
// callers that need deterministic ordering (tests, seeds) set it.
func (r *PostgresCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	var err error
	if comment.Created.IsZero() {
		err = r.pool.QueryRow(ctx, `
			INSERT INTO comments (id, news_id, author_id, text, created)
			VALUES ($1, $2, $3, $4, NOW())
			RETURNING created
		`, comment.ID, comment.NewsID, comment.AuthorID, comment.Text).Scan(&comment.Created)
	} else {
		_, err = r.pool.Exec(ctx, `
			INSERT INTO comments (id, news_id, author_id, text, created)
			VALUES ($1, $2, $3, $4, $5)
		`, comment.ID, comment.NewsID, comment.AuthorID, comment.Text, comment.Created)
	}
	if err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}
	return nil
}

// GetByID returns the comment with the given ID, or nil when absent.
func (r *PostgresCommentRepository) GetByID(ctx context.Context, id string) (*domain.Comment, error) {
	var c domain.Comment
	err := r.pool.QueryRow(ctx, `
		SELECT c.id, c.news_id, c.author_id, u.username, c.text, c.created
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.id = $1
	`, id).Scan(&c.ID, &c.NewsID, &c.AuthorID, &c.AuthorName, &c.Text, &c.Created)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select comment by id: %w", err)
	}
	return &c, nil
}

// ListByNews returns the news item's comments ordered oldest-first, the
// chronological reading order of a discussion thread.
func (r *PostgresCommentRepository) ListByNews(ctx context.Context, newsID string) ([]domain.Comment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT c.id, c.news_id, c.author_id, u.username, c.text, c.created
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.news_id = $1
		ORDER BY c.created ASC
	`, newsID)
	if err != nil {
		return nil, fmt.Errorf("query comments by news: %w", err)
	}
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.NewsID, &c.AuthorID, &c.AuthorName, &c.Text, &c.Created); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

// Update rewrites the comment text. News item and author never change.
func (r *PostgresCommentRepository) Update(ctx context.Context, comment *domain.Comment) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE comments
		SET text = $2
		WHERE id = $1
	`, comment.ID, comment.Text)
	if err != nil {
		return fmt.Errorf("update comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update comment: no comment with id %s", comment.ID)
	}
	return nil
}

// Delete removes the comment.
func (r *PostgresCommentRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	return nil
}
