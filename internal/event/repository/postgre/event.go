package postgre

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Rohith-AI-HUB/webhook-repo/internal/event"
	repo "github.com/Rohith-AI-HUB/webhook-repo/internal/event/repository"
	"github.com/Rohith-AI-HUB/webhook-repo/internal/model"
)

const listColumns = `id, event_type, author, from_branch, to_branch, occurred_at, repository, created_at`

// CreateEvent inserts a new event row under a fresh UUID.
func (r *implRepository) CreateEvent(ctx context.Context, opt repo.CreateEventOptions) (model.Event, error) {
	const query = `
		INSERT INTO events (id, event_type, author, from_branch, to_branch, occurred_at, repository, raw_payload, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	ev := opt.Event
	ev.ID = uuid.NewString()
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = time.Now().UTC()
	}

	var raw any
	if len(ev.RawPayload) > 0 {
		raw = ev.RawPayload
	}

	_, err := r.pool.Exec(ctx, query,
		ev.ID, string(ev.EventType), ev.Author, ev.FromBranch, ev.ToBranch,
		ev.Timestamp.UTC(), ev.Repository, raw, ev.CreatedAt.UTC(),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateEvent"), err)
		return model.Event{}, fmt.Errorf("%w: %v", repo.ErrFailedToInsert, err)
	}
	return ev, nil
}

// ListEvents returns events newest first. raw_payload is not loaded.
func (r *implRepository) ListEvents(ctx context.Context, opt repo.ListEventsOptions) ([]model.Event, error) {
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM events %s`, listColumns, mods)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListEvents"), err)
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
	}
	defer rows.Close()

	events := make([]model.Event, 0)
	for rows.Next() {
		var (
			ev        model.Event
			eventType string
		)
		if err := rows.Scan(&ev.ID, &eventType, &ev.Author, &ev.FromBranch, &ev.ToBranch,
			&ev.Timestamp, &ev.Repository, &ev.CreatedAt); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListEvents"), err)
			return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
		}
		ev.EventType = model.EventType(eventType)
		ev.Timestamp = ev.Timestamp.UTC()
		ev.CreatedAt = ev.CreatedAt.UTC()
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListEvents"), err)
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
	}
	return events, nil
}

func (r *implRepository) CountEvents(ctx context.Context) (int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM events`).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CountEvents"), err)
		return 0, fmt.Errorf("%w: %v", repo.ErrFailedToCount, err)
	}
	return total, nil
}

func (r *implRepository) CountByType(ctx context.Context) (map[model.EventType]int64, error) {
	rows, err := r.pool.Query(ctx, `SELECT event_type, COUNT(*) FROM events GROUP BY event_type`)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CountByType"), err)
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToCount, err)
	}

	counts := make(map[model.EventType]int64)
	var (
		eventType string
		n         int64
	)
	_, err = pgx.ForEachRow(rows, []any{&eventType, &n}, func() error {
		counts[model.EventType(eventType)] = n
		return nil
	})
	if err != nil {
		r.l.Errorf(ctx, "%s scan: %v", r.dsn("CountByType"), err)
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToCount, err)
	}
	return counts, nil
}

// TopAuthors ranks authors by event count, ties broken alphabetically.
func (r *implRepository) TopAuthors(ctx context.Context, limit int) ([]event.AuthorCount, error) {
	const query = `
		SELECT author, COUNT(*) AS n
		FROM events
		GROUP BY author
		ORDER BY n DESC, author ASC
		LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("TopAuthors"), err)
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToCount, err)
	}

	authors, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (event.AuthorCount, error) {
		var ac event.AuthorCount
		err := row.Scan(&ac.Author, &ac.Count)
		return ac, err
	})
	if err != nil {
		r.l.Errorf(ctx, "%s scan: %v", r.dsn("TopAuthors"), err)
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToCount, err)
	}
	return authors, nil
}

// DeleteEventsBefore removes events that occurred strictly before cutoff.
func (r *implRepository) DeleteEventsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM events WHERE occurred_at < $1`, cutoff.UTC())
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteEventsBefore"), err)
		return 0, fmt.Errorf("%w: %v", repo.ErrFailedToDelete, err)
	}
	return tag.RowsAffected(), nil
}
