package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Rohith-AI-HUB/webhook-repo/internal/event"
	"github.com/Rohith-AI-HUB/webhook-repo/pkg/metrics"
)

// clampLimit applies def to non-positive limits and caps at event.MaxLimit.
func clampLimit(limit, def int) int {
	if limit <= 0 {
		limit = def
	}
	if limit > event.MaxLimit {
		return event.MaxLimit
	}
	return limit
}

// call runs fn under the store timeout and records latency and failures.
func (uc *implUseCase) call(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	start := time.Now()
	err := fn(ctx)
	metrics.StoreDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.StoreFailures.WithLabelValues(op).Inc()
		return fmt.Errorf("%w: %v", event.ErrStorageUnavailable, err)
	}
	return nil
}
