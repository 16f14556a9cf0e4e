// Command seed fills the database with demo users, news and comments.
// It is safe to run repeatedly; duplicate usernames are skipped.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"news-notes/internal/config"
	"news-notes/internal/domain"
	"news-notes/internal/infrastructure/database"
	"news-notes/internal/logger"
	"news-notes/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", slog.Any("error", err))
	}
	logger.Init(cfg.LogLevel)

	ctx := context.Background()
	poolCfg := database.PoolConfig{
		Host:              cfg.DBHost,
		Port:              cfg.DBPort,
		User:              cfg.DBUser,
		Password:          cfg.DBPassword,
		Database:          cfg.DBName,
		SSLMode:           cfg.DBSSLMode,
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
	}

	pool, err := database.NewPostgres(ctx, poolCfg)
	if err != nil {
		logger.Fatal("failed to connect to database", slog.Any("error", err))
	}
	defer pool.Close()

	if err := database.Migrate(poolCfg.DSN(), "migrations"); err != nil {
		logger.Fatal("failed to run migrations", slog.Any("error", err))
	}

	if err := seed(ctx, pool); err != nil {
		logger.Fatal("seeding failed", slog.Any("error", err))
	}
	logger.Info("seeding finished")
}

func seed(ctx context.Context, pool *pgxpool.Pool) error {
	users := repository.NewPostgresUserRepository(pool)
	newsRepo := repository.NewPostgresNewsRepository(pool)
	comments := repository.NewPostgresCommentRepository(pool)

	author, err := seedUser(ctx, users, "author", "Author")
	if err != nil {
		return err
	}
	reader, err := seedUser(ctx, users, "reader", "Reader")
	if err != nil {
		return err
	}

	items := make([]domain.News, 0, 15)
	base := time.Now().UTC()
	for i := 0; i < 15; i++ {
		items = append(items, domain.News{
			ID:    uuid.New().String(),
			Title: fmt.Sprintf("News item %d", i+1),
			Text:  "Just some text.",
			Date:  base.AddDate(0, 0, -i),
		})
	}
	inserted, err := newsRepo.BulkInsert(ctx, items)
	if err != nil {
		return fmt.Errorf("insert news: %w", err)
	}
	logger.Info("news inserted", slog.Int("count", inserted))

	for i, user := range []*domain.User{author, reader} {
		comment := &domain.Comment{
			ID:       uuid.New().String(),
			NewsID:   items[0].ID,
			AuthorID: user.ID,
			Text:     fmt.Sprintf("Comment number %d", i+1),
			Created:  base.Add(time.Duration(i) * time.Minute),
		}
		if err := comments.Create(ctx, comment); err != nil {
			return fmt.Errorf("insert comment: %w", err)
		}
	}
	return nil
}

func seedUser(ctx context.Context, users repository.UserRepository, username, name string) (*domain.User, error) {
	existing, err := users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &domain.User{
		ID:           uuid.New().String(),
		Username:     username,
		Name:         name,
		PasswordHash: string(hash),
	}
	if err := users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return users.GetByUsername(ctx, username)
		}
		return nil, err
	}
	return user, nil
}
