// Package retention periodically removes events past their retention age.
package retention

import (
	"context"
	"errors"
	"time"

	"github.com/Rohith-AI-HUB/webhook-repo/pkg/log"
)

// Purger is the slice of event.UseCase the sweeper needs.
type Purger interface {
	PurgeOlderThan(ctx context.Context, days int) (int64, error)
}

// Sweeper runs PurgeOlderThan on a fixed interval.
type Sweeper struct {
	purger   Purger
	days     int
	interval time.Duration
	l        log.Logger
}

func New(purger Purger, days int, interval time.Duration, l log.Logger) (*Sweeper, error) {
	if purger == nil {
		return nil, errors.New("purger is required")
	}
	if days <= 0 {
		return nil, errors.New("retention days must be positive")
	}
	if interval <= 0 {
		return nil, errors.New("retention interval must be positive")
	}
	return &Sweeper{purger: purger, days: days, interval: interval, l: l}, nil
}

// SweepOnce purges once. Failures are logged and returned.
func (s *Sweeper) SweepOnce(ctx context.Context) (int64, error) {
	start := time.Now()
	removed, err := s.purger.PurgeOlderThan(ctx, s.days)
	if err != nil {
		s.l.Errorf(ctx, "Retention sweeper: purge failed: %v", err)
		return 0, err
	}
	s.l.Infof(ctx, "Retention sweeper: removed %d events older than %d days in %v", removed, s.days, time.Since(start))
	return removed, nil
}

// Run sweeps immediately and then every interval until ctx is done.
// It always returns nil so a failing store never stops the process.
func (s *Sweeper) Run(ctx context.Context) error {
	s.l.Infof(ctx, "Retention sweeper: starting with %v interval, %d day retention", s.interval, s.days)
	_, _ = s.SweepOnce(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			_, _ = s.SweepOnce(ctx)
		case <-ctx.Done():
			s.l.Infof(context.Background(), "Retention sweeper: stopped")
			return nil
		}
	}
}
