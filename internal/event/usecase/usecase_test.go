package usecase_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rohith-AI-HUB/webhook-repo/internal/event"
	repo "github.com/Rohith-AI-HUB/webhook-repo/internal/event/repository"
	"github.com/Rohith-AI-HUB/webhook-repo/internal/event/repository/sqlite"
	"github.com/Rohith-AI-HUB/webhook-repo/internal/event/usecase"
	"github.com/Rohith-AI-HUB/webhook-repo/internal/model"
)

var fixedNow = time.Date(2021, 5, 1, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func newSQLiteUseCase(t *testing.T) event.UseCase {
	t.Helper()
	r, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "events.db"), &mockLogger{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })
	return usecase.New(r, &mockLogger{}, usecase.Config{Now: clock})
}

func pushAt(author, repository string, ts time.Time) model.Event {
	return model.Event{
		EventType:  model.EventTypePush,
		Author:     author,
		ToBranch:   "main",
		Timestamp:  ts,
		Repository: repository,
	}
}

func TestInsertThenRecentRoundTrip(t *testing.T) {
	uc := newSQLiteUseCase(t)
	ctx := context.Background()
	feature := "feature"

	in := model.Event{
		EventType:  model.EventTypeMerge,
		Author:     "alice",
		FromBranch: &feature,
		ToBranch:   "main",
		Timestamp:  time.Date(2021, 4, 1, 21, 30, 0, 0, time.UTC),
		Repository: "o/r",
		RawPayload: []byte(`{}`),
	}
	out, err := uc.Insert(ctx, event.InsertInput{Event: in})
	require.NoError(t, err)
	require.NotEmpty(t, out.ID)

	recent, err := uc.Recent(ctx, event.RecentInput{Limit: 1})
	require.NoError(t, err)
	require.Len(t, recent.Events, 1)

	got := recent.Events[0]
	assert.Equal(t, out.ID, got.ID)
	assert.Equal(t, in.EventType, got.EventType)
	assert.Equal(t, in.Author, got.Author)
	assert.Equal(t, in.Repository, got.Repository)
	assert.Equal(t, in.ToBranch, got.ToBranch)
	require.NotNil(t, got.FromBranch)
	assert.Equal(t, feature, *got.FromBranch)
	assert.True(t, got.Timestamp.Equal(in.Timestamp))
	assert.True(t, got.CreatedAt.Equal(fixedNow))
}

func TestInsertRejectsInvalidEvent(t *testing.T) {
	uc := usecase.New(&mockRepo{
		createFunc: func(opt repo.CreateEventOptions) (model.Event, error) {
			t.Fatal("invalid event must not reach the repository")
			return model.Event{}, nil
		},
	}, &mockLogger{}, usecase.Config{})

	ev := pushAt("alice", "o/r", fixedNow)
	ev.ToBranch = ""
	_, err := uc.Insert(context.Background(), event.InsertInput{Event: ev})
	assert.ErrorIs(t, err, event.ErrInvalidEvent)
}

func TestRecentLimits(t *testing.T) {
	uc := newSQLiteUseCase(t)
	ctx := context.Background()

	for i := 0; i < 120; i++ {
		_, err := uc.Insert(ctx, event.InsertInput{Event: pushAt("alice", "o/r", fixedNow.Add(-time.Duration(i)*time.Minute))})
		require.NoError(t, err)
	}

	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"default", 0, event.DefaultLimit},
		{"negative uses default", -5, event.DefaultLimit},
		{"explicit", 7, 7},
		{"ceiling", 500, event.MaxLimit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := uc.Recent(ctx, event.RecentInput{Limit: tt.limit})
			require.NoError(t, err)
			assert.Len(t, out.Events, tt.want)
			assert.Equal(t, tt.want, out.Limit)
			for i := 1; i < len(out.Events); i++ {
				assert.False(t, out.Events[i].Timestamp.After(out.Events[i-1].Timestamp))
			}
		})
	}
}

func TestRecentCeilingAppliesWhenBackendIgnoresLimit(t *testing.T) {
	uc := usecase.New(&mockRepo{
		listFunc: func(ctx context.Context, opt repo.ListEventsOptions) ([]model.Event, error) {
			events := make([]model.Event, 250)
			return events, nil
		},
	}, &mockLogger{}, usecase.Config{})

	out, err := uc.Recent(context.Background(), event.RecentInput{Limit: 1000})
	require.NoError(t, err)
	assert.Len(t, out.Events, event.MaxLimit)
}

func TestRecentOrdersByOccurrenceNotIngestion(t *testing.T) {
	uc := newSQLiteUseCase(t)
	ctx := context.Background()

	_, err := uc.Insert(ctx, event.InsertInput{Event: pushAt("late-arrival", "o/r", fixedNow.Add(-24*time.Hour))})
	require.NoError(t, err)
	_, err = uc.Insert(ctx, event.InsertInput{Event: pushAt("newest", "o/r", fixedNow)})
	require.NoError(t, err)
	_, err = uc.Insert(ctx, event.InsertInput{Event: pushAt("oldest", "o/r", fixedNow.Add(-48*time.Hour))})
	require.NoError(t, err)

	out, err := uc.Recent(ctx, event.RecentInput{})
	require.NoError(t, err)
	require.Len(t, out.Events, 3)
	assert.Equal(t, []string{"newest", "late-arrival", "oldest"},
		[]string{out.Events[0].Author, out.Events[1].Author, out.Events[2].Author})
}

func TestQueriesByAuthorAndRepository(t *testing.T) {
	uc := newSQLiteUseCase(t)
	ctx := context.Background()

	for _, ev := range []model.Event{
		pushAt("alice", "o/r", fixedNow),
		pushAt("alice", "o/other", fixedNow.Add(-time.Hour)),
		pushAt("bob", "o/r", fixedNow.Add(-2*time.Hour)),
	} {
		_, err := uc.Insert(ctx, event.InsertInput{Event: ev})
		require.NoError(t, err)
	}

	byAuthor, err := uc.EventsByAuthor(ctx, "alice", 0)
	require.NoError(t, err)
	assert.Len(t, byAuthor, 2)

	byRepo, err := uc.EventsByRepository(ctx, "o/r", 0)
	require.NoError(t, err)
	assert.Len(t, byRepo, 2)

	filtered, err := uc.Recent(ctx, event.RecentInput{Repository: "o/r", EventType: model.EventTypePush})
	require.NoError(t, err)
	assert.Len(t, filtered.Events, 2)

	_, err = uc.EventsByAuthor(ctx, "  ", 0)
	assert.ErrorIs(t, err, event.ErrAuthorRequired)
	_, err = uc.EventsByRepository(ctx, "", 0)
	assert.ErrorIs(t, err, event.ErrRepositoryRequired)
}

func TestStatistics(t *testing.T) {
	uc := newSQLiteUseCase(t)
	ctx := context.Background()
	feature := "f"

	authors := []string{"alice", "alice", "alice", "bob", "bob", "carol", "dave", "erin", "frank"}
	for _, a := range authors {
		_, err := uc.Insert(ctx, event.InsertInput{Event: pushAt(a, "o/r", fixedNow)})
		require.NoError(t, err)
	}
	_, err := uc.Insert(ctx, event.InsertInput{Event: model.Event{
		EventType: model.EventTypePullRequest, Author: "bob", FromBranch: &feature, ToBranch: "main", Timestamp: fixedNow, Repository: "o/r",
	}})
	require.NoError(t, err)

	stats, err := uc.Statistics(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 10, stats.TotalCount)
	assert.EqualValues(t, 9, stats.ByType[model.EventTypePush])
	assert.EqualValues(t, 1, stats.ByType[model.EventTypePullRequest])
	require.Len(t, stats.TopAuthors, event.DefaultTopAuthors)
	assert.Equal(t, event.AuthorCount{Author: "alice", Count: 3}, stats.TopAuthors[0])
	assert.Equal(t, event.AuthorCount{Author: "bob", Count: 3}, stats.TopAuthors[1])
	assert.Equal(t, "carol", stats.TopAuthors[2].Author)
}

func TestPurgeOlderThan(t *testing.T) {
	uc := newSQLiteUseCase(t)
	ctx := context.Background()
	cutoff := fixedNow.AddDate(0, 0, -30)

	for _, ts := range []time.Time{
		cutoff.Add(-time.Second),
		cutoff,
		cutoff.Add(time.Second),
		fixedNow,
	} {
		_, err := uc.Insert(ctx, event.InsertInput{Event: pushAt("alice", "o/r", ts)})
		require.NoError(t, err)
	}

	removed, err := uc.PurgeOlderThan(ctx, 30)
	require.NoError(t, err)
	assert.EqualValues(t, 1, removed)

	out, err := uc.Recent(ctx, event.RecentInput{})
	require.NoError(t, err)
	assert.Len(t, out.Events, 3)

	_, err = uc.PurgeOlderThan(ctx, 0)
	assert.ErrorIs(t, err, event.ErrInvalidRetention)
}

func TestStorageFailuresDegrade(t *testing.T) {
	uc := usecase.New(&mockRepo{}, &mockLogger{}, usecase.Config{})
	ctx := context.Background()

	_, err := uc.Insert(ctx, event.InsertInput{Event: pushAt("alice", "o/r", fixedNow)})
	assert.ErrorIs(t, err, event.ErrStorageUnavailable)

	recent, err := uc.Recent(ctx, event.RecentInput{})
	assert.ErrorIs(t, err, event.ErrStorageUnavailable)
	assert.NotNil(t, recent.Events)
	assert.Empty(t, recent.Events)

	counts, err := uc.CountByType(ctx)
	assert.ErrorIs(t, err, event.ErrStorageUnavailable)
	assert.NotNil(t, counts)

	top, err := uc.TopAuthors(ctx, 5)
	assert.ErrorIs(t, err, event.ErrStorageUnavailable)
	assert.NotNil(t, top)

	stats, err := uc.Statistics(ctx)
	assert.ErrorIs(t, err, event.ErrStorageUnavailable)
	assert.Zero(t, stats.TotalCount)

	removed, err := uc.PurgeOlderThan(ctx, 30)
	assert.ErrorIs(t, err, event.ErrStorageUnavailable)
	assert.Zero(t, removed)

	assert.ErrorIs(t, uc.Ping(ctx), event.ErrStorageUnavailable)
}

func TestStoreCallsAreBounded(t *testing.T) {
	uc := usecase.New(&mockRepo{
		listFunc: func(ctx context.Context, opt repo.ListEventsOptions) ([]model.Event, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}, &mockLogger{}, usecase.Config{Timeout: 20 * time.Millisecond})

	start := time.Now()
	out, err := uc.Recent(context.Background(), event.RecentInput{})
	assert.ErrorIs(t, err, event.ErrStorageUnavailable)
	assert.Empty(t, out.Events)
	assert.Less(t, time.Since(start), 2*time.Second)
}
