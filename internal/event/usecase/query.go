package usecase

import (
	"context"
	"strings"

	"github.com/Rohith-AI-HUB/webhook-repo/internal/event"
	repo "github.com/Rohith-AI-HUB/webhook-repo/internal/event/repository"
	"github.com/Rohith-AI-HUB/webhook-repo/internal/model"
)

// Recent returns events newest first, optionally filtered by type and repository.
func (uc *implUseCase) Recent(ctx context.Context, input event.RecentInput) (event.RecentOutput, error) {
	limit := clampLimit(input.Limit, event.DefaultLimit)
	events, err := uc.list(ctx, "recent", repo.ListEventsOptions{
		EventType:  input.EventType,
		Repository: strings.TrimSpace(input.Repository),
		Limit:      limit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Recent ListEvents: %v", err)
	}
	return event.RecentOutput{Events: events, Limit: limit}, err
}

// EventsByAuthor returns the author's events newest first.
func (uc *implUseCase) EventsByAuthor(ctx context.Context, author string, limit int) ([]model.Event, error) {
	author = strings.TrimSpace(author)
	if author == "" {
		return []model.Event{}, event.ErrAuthorRequired
	}
	events, err := uc.list(ctx, "events_by_author", repo.ListEventsOptions{
		Author: author,
		Limit:  clampLimit(limit, event.DefaultAuthorLimit),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.EventsByAuthor ListEvents: %v", err)
	}
	return events, err
}

// EventsByRepository returns the repository's events newest first.
func (uc *implUseCase) EventsByRepository(ctx context.Context, repository string, limit int) ([]model.Event, error) {
	repository = strings.TrimSpace(repository)
	if repository == "" {
		return []model.Event{}, event.ErrRepositoryRequired
	}
	events, err := uc.list(ctx, "events_by_repository", repo.ListEventsOptions{
		Repository: repository,
		Limit:      clampLimit(limit, event.DefaultLimit),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.EventsByRepository ListEvents: %v", err)
	}
	return events, err
}

func (uc *implUseCase) list(ctx context.Context, op string, opt repo.ListEventsOptions) ([]model.Event, error) {
	var events []model.Event
	err := uc.call(ctx, op, func(ctx context.Context) error {
		var err error
		events, err = uc.repo.ListEvents(ctx, opt)
		return err
	})
	if err != nil || events == nil {
		events = []model.Event{}
	}
	// Enforce the ceiling even if a backend ignores Limit.
	if len(events) > opt.Limit {
		events = events[:opt.Limit]
	}
	return events, err
}

// CountByType returns the number of stored events per type.
func (uc *implUseCase) CountByType(ctx context.Context) (map[model.EventType]int64, error) {
	var counts map[model.EventType]int64
	err := uc.call(ctx, "count_by_type", func(ctx context.Context) error {
		var err error
		counts, err = uc.repo.CountByType(ctx)
		return err
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CountByType CountByType: %v", err)
	}
	if err != nil || counts == nil {
		counts = map[model.EventType]int64{}
	}
	return counts, err
}

// TopAuthors returns up to n authors ranked by event count.
func (uc *implUseCase) TopAuthors(ctx context.Context, n int) ([]event.AuthorCount, error) {
	n = clampLimit(n, event.DefaultTopAuthors)
	var authors []event.AuthorCount
	err := uc.call(ctx, "top_authors", func(ctx context.Context) error {
		var err error
		authors, err = uc.repo.TopAuthors(ctx, n)
		return err
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.TopAuthors TopAuthors: %v", err)
	}
	if err != nil || authors == nil {
		authors = []event.AuthorCount{}
	}
	return authors, err
}

// Statistics aggregates totals, per-type counts and the top five authors.
// Partial results are returned alongside the first error.
func (uc *implUseCase) Statistics(ctx context.Context) (event.Statistics, error) {
	var total int64
	totalErr := uc.call(ctx, "count", func(ctx context.Context) error {
		var err error
		total, err = uc.repo.CountEvents(ctx)
		return err
	})
	if totalErr != nil {
		uc.l.Errorf(ctx, "uc.Statistics CountEvents: %v", totalErr)
		total = 0
	}

	byType, typeErr := uc.CountByType(ctx)
	top, topErr := uc.TopAuthors(ctx, event.DefaultTopAuthors)

	stats := event.Statistics{TotalCount: total, ByType: byType, TopAuthors: top}
	for _, err := range []error{totalErr, typeErr, topErr} {
		if err != nil {
			return stats, err
		}
	}
	return stats, nil
}

// Ping reports whether the store is reachable.
func (uc *implUseCase) Ping(ctx context.Context) error {
	return uc.call(ctx, "ping", uc.repo.Ping)
}
