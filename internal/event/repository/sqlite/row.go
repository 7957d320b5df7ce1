package sqlite

import (
	"encoding/json"
	"math"
	"time"

	"github.com/Rohith-AI-HUB/webhook-repo/internal/model"
)

// eventRow stores times as UTC unix nanoseconds so ordering and range
// comparisons are numeric.
type eventRow struct {
	ID          string  `gorm:"column:id;type:text;primaryKey"`
	EventType   string  `gorm:"column:event_type;type:text;not null;index:idx_events_occurred_type,priority:2"`
	Author      string  `gorm:"column:author;type:text;not null;index:idx_events_author"`
	FromBranch  *string `gorm:"column:from_branch;type:text"`
	ToBranch    string  `gorm:"column:to_branch;type:text;not null"`
	OccurredAt  int64   `gorm:"column:occurred_at;not null;index:idx_events_occurred_type,priority:1,sort:desc"`
	Repository  string  `gorm:"column:repository;type:text;not null;index:idx_events_repository"`
	RawPayload  []byte  `gorm:"column:raw_payload;type:blob"`
	CreatedNano int64   `gorm:"column:created_at;not null"`
}

func (eventRow) TableName() string { return "events" }

var (
	minNanoTime = time.Unix(0, math.MinInt64)
	maxNanoTime = time.Unix(0, math.MaxInt64)
)

// fitsNano reports whether t survives a UnixNano round trip.
func fitsNano(t time.Time) bool {
	return !t.Before(minNanoTime) && !t.After(maxNanoTime)
}

func toRow(ev model.Event) eventRow {
	return eventRow{
		ID:          ev.ID,
		EventType:   string(ev.EventType),
		Author:      ev.Author,
		FromBranch:  ev.FromBranch,
		ToBranch:    ev.ToBranch,
		OccurredAt:  ev.Timestamp.UTC().UnixNano(),
		Repository:  ev.Repository,
		RawPayload:  ev.RawPayload,
		CreatedNano: ev.CreatedAt.UTC().UnixNano(),
	}
}

func (row eventRow) toModel() model.Event {
	ev := model.Event{
		ID:         row.ID,
		EventType:  model.EventType(row.EventType),
		Author:     row.Author,
		FromBranch: row.FromBranch,
		ToBranch:   row.ToBranch,
		Timestamp:  time.Unix(0, row.OccurredAt).UTC(),
		Repository: row.Repository,
		CreatedAt:  time.Unix(0, row.CreatedNano).UTC(),
	}
	if len(row.RawPayload) > 0 {
		ev.RawPayload = json.RawMessage(row.RawPayload)
	}
	return ev
}
