package usecase

import (
	"context"
	"fmt"

	"github.com/Rohith-AI-HUB/webhook-repo/internal/event"
	repo "github.com/Rohith-AI-HUB/webhook-repo/internal/event/repository"
	"github.com/Rohith-AI-HUB/webhook-repo/internal/model"
)

// Insert validates and persists a canonical event, stamping its ingestion time.
func (uc *implUseCase) Insert(ctx context.Context, input event.InsertInput) (event.InsertOutput, error) {
	ev := input.Event
	if err := ev.Validate(); err != nil {
		return event.InsertOutput{}, fmt.Errorf("%w: %v", event.ErrInvalidEvent, err)
	}
	ev.Timestamp = ev.Timestamp.UTC()
	ev.CreatedAt = uc.now().UTC()

	var created model.Event
	err := uc.call(ctx, "insert", func(ctx context.Context) error {
		var err error
		created, err = uc.repo.CreateEvent(ctx, repo.CreateEventOptions{Event: ev})
		return err
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Insert CreateEvent: %v", err)
		return event.InsertOutput{}, err
	}

	return event.InsertOutput{ID: created.ID}, nil
}
