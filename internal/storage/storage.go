// Package storage opens the event repository selected by configuration.
package storage

import (
	"context"
	"fmt"

	"github.com/Rohith-AI-HUB/webhook-repo/config"
	"github.com/Rohith-AI-HUB/webhook-repo/internal/event/repository"
	"github.com/Rohith-AI-HUB/webhook-repo/internal/event/repository/postgre"
	"github.com/Rohith-AI-HUB/webhook-repo/internal/event/repository/sqlite"
	"github.com/Rohith-AI-HUB/webhook-repo/pkg/log"
)

// Open connects to the configured backend and prepares its schema.
// The caller owns the returned repository and must Close it.
func Open(ctx context.Context, cfg config.StoreConfig, verifySSL bool, l log.Logger) (repository.Repository, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		l.Infof(ctx, "storage.Open: using sqlite at %s", cfg.SQLitePath())
		return sqlite.Open(ctx, cfg.SQLitePath(), l)
	case config.DriverPostgres:
		l.Infof(ctx, "storage.Open: using postgres")
		return postgre.Open(ctx, postgre.Options{
			URI:       cfg.URI,
			Database:  cfg.Database,
			VerifySSL: verifySSL,
		}, l)
	default:
		return nil, fmt.Errorf("storage: unknown driver %q", cfg.Driver)
	}
}
