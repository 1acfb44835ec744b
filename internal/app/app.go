// Package app wires configuration, storage and the HTTP server together.
package app

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/snnyvrz/bookshelf/internal/config"
	"github.com/snnyvrz/bookshelf/internal/db"
	"github.com/snnyvrz/bookshelf/internal/metrics"
	"github.com/snnyvrz/bookshelf/internal/middleware"
	"github.com/snnyvrz/bookshelf/internal/repository"
	"github.com/snnyvrz/bookshelf/internal/router"
	"github.com/snnyvrz/bookshelf/internal/seed"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const shutdownTimeout = 30 * time.Second

type App struct {
	config *config.Config
	logger *zap.Logger
	db     *gorm.DB
	books  repository.BookRepository
	server *http.Server
}

// New opens the database and builds the server. Call Close when done.
func New(cfg *config.Config, logger *zap.Logger, version string) (*App, error) {
	gdb, err := db.Open(cfg, logger)
	if err != nil {
		return nil, err
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	secret, err := sessionSecret(cfg.SecretKey, logger)
	if err != nil {
		return nil, err
	}

	books := repository.NewGormBookRepository(gdb)

	engine := router.New(router.Deps{
		Books:     books,
		Genres:    repository.NewGenreRepository(gdb),
		Authors:   repository.NewAuthorRepository(gdb),
		DB:        sqlDB,
		Log:       logger,
		Metrics:   metrics.New(),
		Limiter:   middleware.NewLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
		Secret:    secret,
		StartTime: time.Now(),
		Version:   version,
	})

	return &App{
		config: cfg,
		logger: logger,
		db:     gdb,
		books:  books,
		server: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           engine,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

// Prepare resets and seeds the catalog when configured to.
func (a *App) Prepare(ctx context.Context) error {
	if !a.config.ResetOnStart {
		return a.Migrate()
	}

	a.logger.Info("resetting catalog schema")
	if err := db.Reset(a.db); err != nil {
		return err
	}
	_, err := a.Seed(ctx)
	return err
}

func (a *App) Migrate() error {
	return db.Migrate(a.db)
}

func (a *App) Seed(ctx context.Context) (int, error) {
	entries, err := seed.Entries()
	if err != nil {
		return 0, err
	}
	return seed.Load(ctx, a.books, entries, a.logger)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("starting server", zap.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	a.logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("server forced to shutdown", zap.Error(err))
		return err
	}

	a.logger.Info("server exited gracefully")
	return nil
}

func (a *App) Close() error {
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func sessionSecret(configured string, logger *zap.Logger) ([]byte, error) {
	if configured != "" {
		return []byte(configured), nil
	}

	logger.Warn("SECRET_KEY not set, using a random key; sessions will not survive a restart")
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("generate session key: %w", err)
	}
	return key, nil
}
