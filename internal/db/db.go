package db

import (
	"fmt"
	"time"

	"github.com/snnyvrz/bookshelf/internal/config"
	"github.com/snnyvrz/bookshelf/internal/model"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	defaultMaxAttempts     = 10
	defaultDelayBetweenTry = 2 * time.Second
)

// Open connects to the configured database. Postgres is retried while the
// server comes up; SQLite is opened once and pinned to a single connection.
func Open(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	gcfg := gormConfig(log)

	switch cfg.DBDriver {
	case config.DriverSQLite:
		return openSQLite(cfg.DSN(), gcfg)
	case config.DriverPostgres:
		return connectWithRetry(postgres.Open(cfg.DSN()), gcfg, log, defaultMaxAttempts, defaultDelayBetweenTry)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.DBDriver)
	}
}

func OpenSQLite(dsn string, log *zap.Logger) (*gorm.DB, error) {
	return openSQLite(dsn, gormConfig(log))
}

// gormConfig stamps auto timestamps in UTC so rows written by either driver
// agree with seeded data regardless of the host zone.
func gormConfig(log *zap.Logger) *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger:         NewGormLogger(log),
		NowFunc:        func() time.Time { return time.Now().UTC() },
	}
}

func openSQLite(dsn string, gcfg *gorm.Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), gcfg)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB from gorm: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

func connectWithRetry(dialector gorm.Dialector, gcfg *gorm.Config, log *zap.Logger, attempts int, delay time.Duration) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	for attempt := 1; attempt <= attempts; attempt++ {
		db, err = gorm.Open(dialector, gcfg)
		if err == nil {
			sqlDB, err2 := db.DB()
			if err2 == nil {
				pingErr := sqlDB.Ping()
				if pingErr == nil {
					return db, nil
				}
				err = pingErr
			} else {
				err = err2
			}
		}

		log.Warn("db not ready",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", attempts),
			zap.Error(err),
		)
		time.Sleep(delay)
	}

	return nil, fmt.Errorf("could not connect to db after %d attempts: %w", attempts, err)
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(model.All()...)
}

// Reset drops every catalog table and recreates the schema.
func Reset(db *gorm.DB) error {
	tables := model.All()
	for i := len(tables) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(tables[i]); err != nil {
			return fmt.Errorf("drop table: %w", err)
		}
	}
	return Migrate(db)
}

func NewGormLogger(log *zap.Logger) gormlogger.Interface {
	if log == nil {
		log = zap.NewNop()
	}
	return gormlogger.New(
		zap.NewStdLog(log.Named("gorm")),
		gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		},
	)
}
