package repository

import (
	"context"
	"time"

	"github.com/Rohith-AI-HUB/webhook-repo/internal/event"
	"github.com/Rohith-AI-HUB/webhook-repo/internal/model"
)

// Repository is the composed interface for the event data store.
type Repository interface {
	EventRepository
	Ping(ctx context.Context) error
	Close() error
}

// EventRepository defines all data access methods for canonical events.
// Events are immutable, so there is no update method.
type EventRepository interface {
	CreateEvent(ctx context.Context, opt CreateEventOptions) (model.Event, error)
	ListEvents(ctx context.Context, opt ListEventsOptions) ([]model.Event, error)
	CountEvents(ctx context.Context) (int64, error)
	CountByType(ctx context.Context) (map[model.EventType]int64, error)
	TopAuthors(ctx context.Context, limit int) ([]event.AuthorCount, error)
	DeleteEventsBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
