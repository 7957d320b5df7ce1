package usecase_test

import (
	"context"
	"errors"
	"time"

	"github.com/Rohith-AI-HUB/webhook-repo/internal/event"
	repo "github.com/Rohith-AI-HUB/webhook-repo/internal/event/repository"
	"github.com/Rohith-AI-HUB/webhook-repo/internal/model"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

var errBackend = errors.New("connection refused")

// mockRepo fails every call unless the matching func is set.
type mockRepo struct {
	createFunc func(opt repo.CreateEventOptions) (model.Event, error)
	listFunc   func(ctx context.Context, opt repo.ListEventsOptions) ([]model.Event, error)
	deleteFunc func(cutoff time.Time) (int64, error)
	pingFunc   func(ctx context.Context) error
}

func (m *mockRepo) CreateEvent(ctx context.Context, opt repo.CreateEventOptions) (model.Event, error) {
	if m.createFunc != nil {
		return m.createFunc(opt)
	}
	return model.Event{}, errBackend
}

func (m *mockRepo) ListEvents(ctx context.Context, opt repo.ListEventsOptions) ([]model.Event, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opt)
	}
	return nil, errBackend
}

func (m *mockRepo) CountEvents(ctx context.Context) (int64, error) { return 0, errBackend }

func (m *mockRepo) CountByType(ctx context.Context) (map[model.EventType]int64, error) {
	return nil, errBackend
}

func (m *mockRepo) TopAuthors(ctx context.Context, limit int) ([]event.AuthorCount, error) {
	return nil, errBackend
}

func (m *mockRepo) DeleteEventsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	if m.deleteFunc != nil {
		return m.deleteFunc(cutoff)
	}
	return 0, errBackend
}

func (m *mockRepo) Ping(ctx context.Context) error {
	if m.pingFunc != nil {
		return m.pingFunc(ctx)
	}
	return errBackend
}

func (m *mockRepo) Close() error { return nil }
