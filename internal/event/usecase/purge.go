package usecase

import (
	"context"
	"time"

	"github.com/Rohith-AI-HUB/webhook-repo/internal/event"
	"github.com/Rohith-AI-HUB/webhook-repo/pkg/metrics"
)

// PurgeOlderThan deletes events whose timestamp is strictly before now - days.
func (uc *implUseCase) PurgeOlderThan(ctx context.Context, days int) (int64, error) {
	if days <= 0 {
		return 0, event.ErrInvalidRetention
	}
	cutoff := uc.now().UTC().AddDate(0, 0, -days)

	var removed int64
	err := uc.call(ctx, "purge", func(ctx context.Context) error {
		var err error
		removed, err = uc.repo.DeleteEventsBefore(ctx, cutoff)
		return err
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.PurgeOlderThan DeleteEventsBefore: %v", err)
		return 0, err
	}

	metrics.EventsPurged.Add(float64(removed))
	uc.l.Infof(ctx, "uc.PurgeOlderThan: removed %d events older than %s", removed, cutoff.Format(time.RFC3339))
	return removed, nil
}
