package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Rohith-AI-HUB/webhook-repo/internal/event/repository"
	"github.com/Rohith-AI-HUB/webhook-repo/pkg/log"
)

type implRepository struct {
	db *gorm.DB
	l  log.Logger
}

// Open opens (creating if needed) the SQLite file at dsn and migrates the
// events table.
func Open(ctx context.Context, dsn string, l log.Logger) (repository.Repository, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("sqlite dsn is required")
	}
	if !strings.Contains(dsn, "?") {
		dsn += "?_pragma=busy_timeout(5000)"
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sqlite handle: %w", err)
	}
	// SQLite allows one writer at a time.
	sqlDB.SetMaxOpenConns(1)

	if err := db.WithContext(ctx).AutoMigrate(&eventRow{}); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("migrate events: %w", err)
	}

	return New(db, l), nil
}

// New wraps an already migrated gorm handle.
func New(db *gorm.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("event/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("%w: %v", repository.ErrUnavailable, err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %v", repository.ErrUnavailable, err)
	}
	return nil
}

func (r *implRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("event/repository/sqlite.%s", method)
}
