package main

// @title           Book Catalog API
// @version         1.0
// @description     Browse books by genre and author, track what you have read and add new books.

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/bookshelf/internal/app"
	"github.com/snnyvrz/bookshelf/internal/config"
	"github.com/snnyvrz/bookshelf/internal/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	version = "dev"
	commit  = "none"
)

type flags struct {
	port       string
	dbDriver   string
	sqlitePath string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f flags

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), f)
		},
	}

	root := &cobra.Command{
		Use:          "catalog",
		Short:        "Book catalog service",
		Version:      fmt.Sprintf("%s (%s)", version, commit),
		SilenceUsage: true,
		RunE:         serve.RunE,
	}

	root.PersistentFlags().StringVar(&f.port, "port", "", "listen port (overrides PORT)")
	root.PersistentFlags().StringVar(&f.dbDriver, "db-driver", "", "sqlite or postgres (overrides DB_DRIVER)")
	root.PersistentFlags().StringVar(&f.sqlitePath, "sqlite-path", "", "SQLite file (overrides SQLITE_PATH)")

	root.AddCommand(serve, &cobra.Command{
		Use:   "seed",
		Short: "Load the bundled sample catalog without starting the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd.Context(), f)
		},
	})

	return root
}

func setup(f flags) (*config.Config, *zap.Logger, error) {
	cfg := config.Load()
	if f.port != "" {
		cfg.Port = f.port
	}
	if f.dbDriver != "" {
		cfg.DBDriver = f.dbDriver
	}
	if f.sqlitePath != "" {
		cfg.SQLitePath = f.sqlitePath
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	gin.SetMode(cfg.GinMode)

	appLogger, err := logger.New(cfg.GinMode, cfg.LogLevel)
	if err != nil {
		log.Printf("failed to create logger: %v", err)
		return nil, nil, err
	}
	return cfg, appLogger, nil
}

func runServe(ctx context.Context, f flags) error {
	cfg, appLogger, err := setup(f)
	if err != nil {
		return err
	}
	defer func() {
		_ = appLogger.Sync()
	}()

	appLogger.Info("build info",
		zap.String("version", version),
		zap.String("commit", commit),
		zap.String("db_driver", cfg.DBDriver),
	)

	a, err := app.New(cfg, appLogger, version)
	if err != nil {
		appLogger.Error("failed to initialize application", zap.Error(err))
		return err
	}
	defer func() {
		_ = a.Close()
	}()

	if err := a.Prepare(ctx); err != nil {
		appLogger.Error("failed to prepare database", zap.Error(err))
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.Run(ctx)
}

func runSeed(ctx context.Context, f flags) error {
	cfg, appLogger, err := setup(f)
	if err != nil {
		return err
	}
	defer func() {
		_ = appLogger.Sync()
	}()

	a, err := app.New(cfg, appLogger, version)
	if err != nil {
		return err
	}
	defer func() {
		_ = a.Close()
	}()

	if err := a.Migrate(); err != nil {
		return err
	}

	n, err := a.Seed(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("seeded %d books\n", n)
	return nil
}
