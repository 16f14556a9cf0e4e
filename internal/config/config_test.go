package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	originalEnv := make(map[string]string)
	envVars := []string{
		"SERVER_PORT",
		"DB_HOST",
		"DB_PORT",
		"DB_USER",
		"DB_PASSWORD",
		"DB_NAME",
		"DB_SSL_MODE",
		"DB_MAX_CONNS",
		"DB_MIN_CONNS",
		"NEWS_PAGE_SIZE",
		"MODERATION_WORDS",
		"SESSION_SECRET",
		"SESSION_TTL",
		"LOG_LEVEL",
	}

	for _, env := range envVars {
		originalEnv[env] = os.Getenv(env)
	}

	defer func() {
		for env, val := range originalEnv {
			if val == "" {
				os.Unsetenv(env)
			} else {
				os.Setenv(env, val)
			}
		}
	}()

	for _, env := range envVars {
		os.Unsetenv(env)
	}

	t.Run("default values", func(t *testing.T) {
		os.Setenv("SESSION_SECRET", "test-secret")
		defer os.Unsetenv("SESSION_SECRET")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.ServerPort != "8080" {
			t.Errorf("ServerPort = %v, want 8080", cfg.ServerPort)
		}
		if cfg.DBHost != "localhost" {
			t.Errorf("DBHost = %v, want localhost", cfg.DBHost)
		}
		if cfg.DBPort != 5432 {
			t.Errorf("DBPort = %v, want 5432", cfg.DBPort)
		}
		if cfg.NewsPageSize != 10 {
			t.Errorf("NewsPageSize = %v, want 10", cfg.NewsPageSize)
		}
		if cfg.ModerationWords != nil {
			t.Errorf("ModerationWords = %v, want nil", cfg.ModerationWords)
		}
		if cfg.SessionTTL != 14*24*time.Hour {
			t.Errorf("SessionTTL = %v, want 336h", cfg.SessionTTL)
		}
		if cfg.LogLevel != "info" {
			t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
		}
	})

	t.Run("custom values", func(t *testing.T) {
		os.Setenv("SESSION_SECRET", "test-secret")
		os.Setenv("SERVER_PORT", "9090")
		os.Setenv("NEWS_PAGE_SIZE", "5")
		os.Setenv("MODERATION_WORDS", "foo, bar,baz")
		os.Setenv("SESSION_TTL", "1h")
		defer func() {
			os.Unsetenv("SESSION_SECRET")
			os.Unsetenv("SERVER_PORT")
			os.Unsetenv("NEWS_PAGE_SIZE")
			os.Unsetenv("MODERATION_WORDS")
			os.Unsetenv("SESSION_TTL")
		}()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.ServerPort != "9090" {
			t.Errorf("ServerPort = %v, want 9090", cfg.ServerPort)
		}
		if cfg.NewsPageSize != 5 {
			t.Errorf("NewsPageSize = %v, want 5", cfg.NewsPageSize)
		}
		want := []string{"foo", "bar", "baz"}
		if len(cfg.ModerationWords) != len(want) {
			t.Fatalf("ModerationWords = %v, want %v", cfg.ModerationWords, want)
		}
		for i, w := range want {
			if cfg.ModerationWords[i] != w {
				t.Errorf("ModerationWords[%d] = %v, want %v", i, cfg.ModerationWords[i], w)
			}
		}
		if cfg.SessionTTL != time.Hour {
			t.Errorf("SessionTTL = %v, want 1h", cfg.SessionTTL)
		}
	})

	t.Run("missing session secret", func(t *testing.T) {
		if _, err := Load(); err == nil {
			t.Error("Load() expected error when SESSION_SECRET is unset")
		}
	})

	t.Run("invalid page size", func(t *testing.T) {
		os.Setenv("SESSION_SECRET", "test-secret")
		os.Setenv("NEWS_PAGE_SIZE", "0")
		defer func() {
			os.Unsetenv("SESSION_SECRET")
			os.Unsetenv("NEWS_PAGE_SIZE")
		}()

		if _, err := Load(); err == nil {
			t.Error("Load() expected error for NEWS_PAGE_SIZE=0")
		}
	})
}
