package event

import "github.com/Rohith-AI-HUB/webhook-repo/internal/model"

const (
	DefaultLimit         = 50
	MaxLimit             = 100
	DefaultAuthorLimit   = 20
	DefaultTopAuthors    = 5
	DefaultRetentionDays = 30
)

// --- UseCase Inputs ---

type InsertInput struct {
	Event model.Event
}

// RecentInput filters are exact matches; empty means no filter.
type RecentInput struct {
	Limit      int
	EventType  model.EventType
	Repository string
}

// --- UseCase Outputs ---

type InsertOutput struct {
	ID string
}

type RecentOutput struct {
	Events []model.Event
	Limit  int
}

// AuthorCount is one row of the top-authors ranking.
type AuthorCount struct {
	Author string
	Count  int64
}

type Statistics struct {
	TotalCount int64
	ByType     map[model.EventType]int64
	TopAuthors []AuthorCount
}
