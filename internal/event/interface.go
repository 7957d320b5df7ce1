package event

import (
	"context"

	"github.com/Rohith-AI-HUB/webhook-repo/internal/model"
)

// UseCase is the event store contract. Read operations return an empty,
// non-nil result together with ErrStorageUnavailable when the backend fails.
//
//go:generate mockery --name UseCase
type UseCase interface {
	Insert(ctx context.Context, input InsertInput) (InsertOutput, error)
	Recent(ctx context.Context, input RecentInput) (RecentOutput, error)
	EventsByAuthor(ctx context.Context, author string, limit int) ([]model.Event, error)
	EventsByRepository(ctx context.Context, repository string, limit int) ([]model.Event, error)
	CountByType(ctx context.Context) (map[model.EventType]int64, error)
	TopAuthors(ctx context.Context, n int) ([]AuthorCount, error)
	PurgeOlderThan(ctx context.Context, days int) (int64, error)
	Statistics(ctx context.Context) (Statistics, error)
	Ping(ctx context.Context) error
}
