package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"news-notes/internal/domain"
)

// PostgresNewsRepository implements NewsRepository using PostgreSQL.
type PostgresNewsRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresNewsRepository creates a new PostgresNewsRepository.
func NewPostgresNewsRepository(pool *pgxpool.Pool) *PostgresNewsRepository {
	return &PostgresNewsRepository{pool: pool}
}

// Create inserts a news item. A zero date defaults to today.
func (r *PostgresNewsRepository) Create(ctx context.Context, news *domain.News) error {
	var err error
	if news.Date.IsZero() {
		err = r.pool.QueryRow(ctx, `
			INSERT INTO news (id, title, text, created_at)
			VALUES ($1, $2, $3, NOW())
			RETURNING date, created_at
		`, news.ID, news.Title, news.Text).Scan(&news.Date, &news.CreatedAt)
	} else {
		err = r.pool.QueryRow(ctx, `
			INSERT INTO news (id, title, text, date, created_at)
			VALUES ($1, $2, $3, $4, NOW())
			RETURNING created_at
		`, news.ID, news.Title, news.Text, news.Date).Scan(&news.CreatedAt)
	}
	if err != nil {
		return fmt.Errorf("insert news: %w", err)
	}
	return nil
}

// GetByID returns the news item with the given ID, or nil when absent.
func (r *PostgresNewsRepository) GetByID(ctx context.Context, id string) (*domain.News, error) {
	var n domain.News
	err := r.pool.QueryRow(ctx, `
		SELECT id, title, text, date, created_at
		FROM news
		WHERE id = $1
	`, id).Scan(&n.ID, &n.Title, &n.Text, &n.Date, &n.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select news by id: %w", err)
	}
	return &n, nil
}

// ListPage returns one page of news ordered newest-first by date, with
// creation time as the tie-break so same-day items keep a stable order.
func (r *PostgresNewsRepository) ListPage(ctx context.Context, limit, offset int) ([]domain.News, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, text, date, created_at
		FROM news
		ORDER BY date DESC, created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query news page: %w", err)
	}
	defer rows.Close()

	var items []domain.News
	for rows.Next() {
		var n domain.News
		if err := rows.Scan(&n.ID, &n.Title, &n.Text, &n.Date, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan news: %w", err)
		}
		items = append(items, n)
	}
	return items, rows.Err()
}

// BulkInsert inserts many news items in one statement and returns the
// number inserted. Used by seed tooling and tests.
func (r *PostgresNewsRepository) BulkInsert(ctx context.Context, items []domain.News) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}

	var values []string
	var args []interface{}
	argNum := 1
	for _, n := range items {
		values = append(values, fmt.Sprintf("($%d, $%d, $%d, $%d, NOW())",
			argNum, argNum+1, argNum+2, argNum+3))
		args = append(args, n.ID, n.Title, n.Text, n.Date)
		argNum += 4
	}

	query := fmt.Sprintf(`
		INSERT INTO news (id, title, text, date, created_at)
		VALUES %s
	`, strings.Join(values, ", "))

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("bulk insert news: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// Delete removes the news item; its comments go with it via the
// ON DELETE CASCADE on comments.news_id.
func (r *PostgresNewsRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM news WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete news: %w", err)
	}
	return nil
}
