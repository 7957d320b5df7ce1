package postgre

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Rohith-AI-HUB/webhook-repo/internal/event/repository"
	"github.com/Rohith-AI-HUB/webhook-repo/pkg/log"
)

//go:embed schema.sql
var schemaSQL string

type implRepository struct {
	pool *pgxpool.Pool
	l    log.Logger
}

// Options configures the Postgres connection.
type Options struct {
	URI       string
	Database  string // overrides the database named in URI when set
	VerifySSL bool
}

// Open connects, pings and applies the embedded schema.
func Open(ctx context.Context, opt Options, l log.Logger) (repository.Repository, error) {
	cfg, err := pgxpool.ParseConfig(opt.URI)
	if err != nil {
		return nil, fmt.Errorf("parse postgres uri: %w", err)
	}
	if opt.Database != "" {
		cfg.ConnConfig.Database = opt.Database
	}
	if !opt.VerifySSL && cfg.ConnConfig.TLSConfig != nil {
		cfg.ConnConfig.TLSConfig.InsecureSkipVerify = true
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%w: %v", repository.ErrUnavailable, err)
	}

	r := New(pool, l)
	if err := r.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return r, nil
}

// New wraps an existing pool. The schema is assumed to exist.
func New(pool *pgxpool.Pool, l log.Logger) *implRepository {
	if pool == nil {
		panic("event/repository/postgre: pool is required")
	}
	return &implRepository{pool: pool, l: l}
}

// ensureSchema applies schema.sql. Safe to run multiple times.
func (r *implRepository) ensureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, schemaSQL); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ensureSchema"), err)
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

func (r *implRepository) Ping(ctx context.Context) error {
	if err := r.pool.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %v", repository.ErrUnavailable, err)
	}
	return nil
}

func (r *implRepository) Close() error {
	r.pool.Close()
	return nil
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("event/repository/postgre.%s", method)
}
