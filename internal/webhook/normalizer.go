package webhook

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Rohith-AI-HUB/webhook-repo/internal/model"
)

// Normalizer turns GitHub deliveries into canonical events. It has no side
// effects and is safe for concurrent use.
type Normalizer struct {
	now func() time.Time
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithClock overrides the time source used when a push carries no commit time.
func WithClock(now func() time.Time) Option {
	return func(n *Normalizer) {
		n.now = now
	}
}

func NewNormalizer(opts ...Option) *Normalizer {
	n := &Normalizer{now: time.Now}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Normalize maps an X-GitHub-Event tag and body to a canonical event.
// Deliveries that produce no event return an error wrapping ErrIgnored.
func (n *Normalizer) Normalize(eventType string, payload []byte) (model.Event, error) {
	var (
		ev  model.Event
		err error
	)
	switch eventType {
	case eventPush:
		ev, err = n.normalizePush(payload)
	case eventPullRequest:
		ev, err = n.normalizePullRequest(payload)
	default:
		return model.Event{}, fmt.Errorf("%w: %q", ErrUnsupportedEvent, eventType)
	}
	if err != nil {
		return model.Event{}, err
	}
	if err := ev.Validate(); err != nil {
		return model.Event{}, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	ev.RawPayload = json.RawMessage(bytes.Clone(payload))
	return ev, nil
}

func (n *Normalizer) normalizePush(payload []byte) (model.Event, error) {
	p, err := decodePush(payload)
	if err != nil {
		return model.Event{}, err
	}

	ts := n.now().UTC()
	if p.HeadCommit != nil && p.HeadCommit.Timestamp != "" {
		if parsed, err := parseTimestamp(p.HeadCommit.Timestamp); err == nil {
			ts = parsed
		}
	}

	return model.Event{
		EventType:  model.EventTypePush,
		Author:     p.Pusher.Name,
		ToBranch:   branchFromRef(p.Ref),
		Timestamp:  ts,
		Repository: p.Repository.FullName,
	}, nil
}

func (n *Normalizer) normalizePullRequest(payload []byte) (model.Event, error) {
	p, err := decodePullRequest(payload)
	if err != nil {
		return model.Event{}, err
	}
	pr := p.PullRequest

	var (
		eventType model.EventType
		rawTime   string
		field     string
	)
	switch {
	case p.Action == actionOpened || p.Action == actionReopened:
		eventType, rawTime, field = model.EventTypePullRequest, pr.CreatedAt, "pull_request.created_at"
	case p.Action == actionClosed && pr.Merged:
		eventType, rawTime, field = model.EventTypeMerge, pr.MergedAt, "pull_request.merged_at"
		if rawTime == "" {
			rawTime, field = pr.UpdatedAt, "pull_request.updated_at"
		}
	default:
		return model.Event{}, fmt.Errorf("%w: %s (merged=%t)", ErrUnsupportedAction, p.Action, pr.Merged)
	}

	if rawTime == "" {
		return model.Event{}, fmt.Errorf("%w: %s", ErrMissingField, field)
	}
	ts, err := parseTimestamp(rawTime)
	if err != nil {
		return model.Event{}, err
	}

	from := pr.Head.Ref
	return model.Event{
		EventType:  eventType,
		Author:     pr.User.Login,
		FromBranch: &from,
		ToBranch:   pr.Base.Ref,
		Timestamp:  ts,
		Repository: p.Repository.FullName,
	}, nil
}
