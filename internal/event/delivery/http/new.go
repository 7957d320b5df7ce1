package http

import (
	"time"

	"github.com/Rohith-AI-HUB/webhook-repo/internal/event"
	"github.com/Rohith-AI-HUB/webhook-repo/pkg/log"
)

// Config holds dashboard-facing settings exposed by the query API.
type Config struct {
	DefaultLimit    int
	RefreshInterval time.Duration
}

type handler struct {
	l   log.Logger
	uc  event.UseCase
	cfg Config
}

// New creates a new HTTP handler for the event query API.
func New(l log.Logger, uc event.UseCase, cfg Config) *handler {
	if cfg.DefaultLimit <= 0 || cfg.DefaultLimit > event.MaxLimit {
		cfg.DefaultLimit = event.DefaultLimit
	}
	if cfg.RefreshInterval <= 0 {
		cfg.RefreshInterval = 15 * time.Second
	}
	return &handler{
		l:   l,
		uc:  uc,
		cfg: cfg,
	}
}
