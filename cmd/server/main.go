package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"news-notes/internal/config"
	"news-notes/internal/handler"
	"news-notes/internal/infrastructure/database"
	"news-notes/internal/logger"
	"news-notes/internal/metrics"
	"news-notes/internal/middleware"
	"news-notes/internal/moderation"
	"news-notes/internal/repository"
	"news-notes/internal/service"
	"news-notes/internal/validator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", slog.Any("error", err))
	}

	logger.Init(cfg.LogLevel)
	logger.Info("starting server", slog.String("port", cfg.ServerPort))

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

	statsCollector := metrics.NewPoolStatsCollector(pool)
	statsCollector.Start(15 * time.Second)
	defer statsCollector.Stop()

	userRepo := repository.NewPostgresUserRepository(pool)
	noteRepo := repository.NewPostgresNoteRepository(pool)
	newsRepo := repository.NewPostgresNewsRepository(pool)
	commentRepo := repository.NewPostgresCommentRepository(pool)

	filter := moderation.NewFilter(cfg.ModerationWords)
	v := validator.NewValidator(filter)

	noteSvc := service.NewNoteService(noteRepo, v)
	newsSvc := service.NewNewsService(newsRepo, commentRepo, cfg.NewsPageSize)
	commentSvc := service.NewCommentService(commentRepo, v)
	authSvc := service.NewAuthService(userRepo, v)

	sessions := middleware.NewSessionManager(cfg.SessionSecret, cfg.SessionTTL)

	router := handler.NewRouter(handler.RouterConfig{
		Notes:    handler.NewNoteHandler(noteSvc),
		News:     handler.NewNewsHandler(newsSvc),
		Comments: handler.NewCommentHandler(commentSvc, newsSvc),
		Auth:     handler.NewAuthHandler(authSvc, sessions),
		Health:   handler.NewHealthHandler(pool),
		Sessions: sessions,
		Users:    userRepo,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
