package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Rohith-AI-HUB/webhook-repo/internal/event"
	repo "github.com/Rohith-AI-HUB/webhook-repo/internal/event/repository"
	"github.com/Rohith-AI-HUB/webhook-repo/internal/model"
)

// listColumns excludes raw_payload.
var listColumns = []string{"id", "event_type", "author", "from_branch", "to_branch", "occurred_at", "repository", "created_at"}

// CreateEvent inserts a new event row under a fresh UUID.
func (r *implRepository) CreateEvent(ctx context.Context, opt repo.CreateEventOptions) (model.Event, error) {
	ev := opt.Event
	ev.ID = uuid.NewString()
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = time.Now().UTC()
	}
	if !fitsNano(ev.Timestamp) || !fitsNano(ev.CreatedAt) {
		return model.Event{}, fmt.Errorf("%w: timestamp %s outside the storable range", repo.ErrFailedToInsert, ev.Timestamp.Format(time.RFC3339))
	}

	row := toRow(ev)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateEvent"), err)
		return model.Event{}, fmt.Errorf("%w: %v", repo.ErrFailedToInsert, err)
	}
	return ev, nil
}

// ListEvents returns events newest first. raw_payload is not loaded.
func (r *implRepository) ListEvents(ctx context.Context, opt repo.ListEventsOptions) ([]model.Event, error) {
	var rows []eventRow
	if err := r.buildListQuery(r.db.WithContext(ctx), opt).Find(&rows).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListEvents"), err)
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToList, err)
	}

	events := make([]model.Event, 0, len(rows))
	for _, row := range rows {
		events = append(events, row.toModel())
	}
	return events, nil
}

// buildListQuery applies filters, ordering and limit for ListEvents.
func (r *implRepository) buildListQuery(db *gorm.DB, opt repo.ListEventsOptions) *gorm.DB {
	q := db.Model(&eventRow{}).Select(listColumns)
	if opt.EventType != "" {
		q = q.Where("event_type = ?", string(opt.EventType))
	}
	if opt.Repository != "" {
		q = q.Where("repository = ?", opt.Repository)
	}
	if opt.Author != "" {
		q = q.Where("author = ?", opt.Author)
	}
	q = q.Order("occurred_at DESC").Order("created_at DESC")
	if opt.Limit > 0 {
		q = q.Limit(opt.Limit)
	}
	return q
}

func (r *implRepository) CountEvents(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&eventRow{}).Count(&total).Error; err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CountEvents"), err)
		return 0, fmt.Errorf("%w: %v", repo.ErrFailedToCount, err)
	}
	return total, nil
}

func (r *implRepository) CountByType(ctx context.Context) (map[model.EventType]int64, error) {
	var rows []struct {
		EventType string
		Total     int64
	}
	err := r.db.WithContext(ctx).Model(&eventRow{}).
		Select("event_type, COUNT(*) AS total").
		Group("event_type").
		Scan(&rows).Error
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CountByType"), err)
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToCount, err)
	}

	counts := make(map[model.EventType]int64, len(rows))
	for _, row := range rows {
		counts[model.EventType(row.EventType)] = row.Total
	}
	return counts, nil
}

// TopAuthors ranks authors by event count, ties broken alphabetically.
func (r *implRepository) TopAuthors(ctx context.Context, limit int) ([]event.AuthorCount, error) {
	var rows []struct {
		Author string
		Total  int64
	}
	err := r.db.WithContext(ctx).Model(&eventRow{}).
		Select("author, COUNT(*) AS total").
		Group("author").
		Order("total DESC").Order("author ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("TopAuthors"), err)
		return nil, fmt.Errorf("%w: %v", repo.ErrFailedToCount, err)
	}

	authors := make([]event.AuthorCount, 0, len(rows))
	for _, row := range rows {
		authors = append(authors, event.AuthorCount{Author: row.Author, Count: row.Total})
	}
	return authors, nil
}

// DeleteEventsBefore removes events that occurred strictly before cutoff.
func (r *implRepository) DeleteEventsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Where("occurred_at < ?", cutoff.UTC().UnixNano()).Delete(&eventRow{})
	if res.Error != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteEventsBefore"), res.Error)
		return 0, fmt.Errorf("%w: %v", repo.ErrFailedToDelete, res.Error)
	}
	return res.RowsAffected, nil
}
