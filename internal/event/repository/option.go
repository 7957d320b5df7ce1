package repository

import "github.com/Rohith-AI-HUB/webhook-repo/internal/model"

// CreateEventOptions holds the event to persist. ID is assigned by the store.
type CreateEventOptions struct {
	Event model.Event
}

// ListEventsOptions holds filter parameters for listing events.
// All non-empty fields are applied as AND conditions. Results are ordered by
// occurrence time, newest first.
type ListEventsOptions struct {
	EventType  model.EventType
	Repository string
	Author     string
	Limit      int
}
