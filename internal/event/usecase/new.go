package usecase

import (
	"time"

	"github.com/Rohith-AI-HUB/webhook-repo/internal/event"
	"github.com/Rohith-AI-HUB/webhook-repo/internal/event/repository"
	"github.com/Rohith-AI-HUB/webhook-repo/pkg/log"
)

const defaultTimeout = 5 * time.Second

// Config tunes the usecase.
type Config struct {
	// Timeout bounds every repository call. Zero means defaultTimeout.
	Timeout time.Duration
	// Now is the clock used for ingestion and retention cutoffs.
	Now func() time.Time
}

// implUseCase is the private implementation of event.UseCase.
type implUseCase struct {
	repo    repository.Repository
	l       log.Logger
	timeout time.Duration
	now     func() time.Time
}

var _ event.UseCase = (*implUseCase)(nil)

// New creates a new event UseCase implementation.
func New(repo repository.Repository, l log.Logger, cfg Config) *implUseCase {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &implUseCase{
		repo:    repo,
		l:       l,
		timeout: cfg.Timeout,
		now:     cfg.Now,
	}
}
