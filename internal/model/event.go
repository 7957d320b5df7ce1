package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// EventType is the normalized kind of a repository event.
type EventType string

const (
	EventTypePush        EventType = "push"
	EventTypePullRequest EventType = "pull_request"
	EventTypeMerge       EventType = "merge"
)

// ErrInvalidEvent is returned by Event.Validate.
var ErrInvalidEvent = errors.New("invalid event")

// Valid reports whether t is one of the known event types.
func (t EventType) Valid() bool {
	switch t {
	case EventTypePush, EventTypePullRequest, EventTypeMerge:
		return true
	}
	return false
}

// HasSourceBranch reports whether events of this type carry a from_branch.
func (t EventType) HasSourceBranch() bool {
	return t == EventTypePullRequest || t == EventTypeMerge
}

// Event is a normalized GitHub repository event.
type Event struct {
	ID         string
	EventType  EventType
	Author     string
	FromBranch *string // nil for push
	ToBranch   string
	Timestamp  time.Time // always UTC
	Repository string    // owner/name
	RawPayload json.RawMessage
	CreatedAt  time.Time
}

// Validate checks the structural invariants of a normalized event.
func (e Event) Validate() error {
	if !e.EventType.Valid() {
		return fmt.Errorf("%w: unknown event_type %q", ErrInvalidEvent, e.EventType)
	}
	if e.Author == "" {
		return fmt.Errorf("%w: author is required", ErrInvalidEvent)
	}
	if e.Repository == "" {
		return fmt.Errorf("%w: repository is required", ErrInvalidEvent)
	}
	if e.ToBranch == "" {
		return fmt.Errorf("%w: to_branch is required", ErrInvalidEvent)
	}
	if e.EventType.HasSourceBranch() && (e.FromBranch == nil || *e.FromBranch == "") {
		return fmt.Errorf("%w: from_branch is required for %s", ErrInvalidEvent, e.EventType)
	}
	if !e.EventType.HasSourceBranch() && e.FromBranch != nil {
		return fmt.Errorf("%w: from_branch must be absent for %s", ErrInvalidEvent, e.EventType)
	}
	if e.Timestamp.IsZero() {
		return fmt.Errorf("%w: timestamp is required", ErrInvalidEvent)
	}
	return nil
}
