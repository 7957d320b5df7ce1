package http

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/Rohith-AI-HUB/webhook-repo/internal/event"
	"github.com/Rohith-AI-HUB/webhook-repo/internal/model"
	"github.com/Rohith-AI-HUB/webhook-repo/pkg/response"
	"github.com/Rohith-AI-HUB/webhook-repo/pkg/timefmt"
)

// --- Request DTOs ---

type listReq struct {
	Limit      int    `form:"limit"`
	EventType  string `form:"event_type"`
	Repository string `form:"repository"`
}

func (r listReq) toInput(defaultLimit int) event.RecentInput {
	limit := r.Limit
	if limit == 0 {
		limit = defaultLimit
	}
	return event.RecentInput{
		Limit:      limit,
		EventType:  model.EventType(r.EventType),
		Repository: r.Repository,
	}
}

type authorReq struct {
	Author string
	Limit  int
}

type repositoryReq struct {
	Repository string
	Limit      int
}

// --- Response DTOs ---

type eventResp struct {
	ID         string            `json:"_id"`
	EventType  string            `json:"event_type"`
	Author     string            `json:"author"`
	FromBranch *string           `json:"from_branch"`
	ToBranch   string            `json:"to_branch"`
	Timestamp  response.DateTime `json:"timestamp" swaggertype:"string" example:"2021-04-01T21:30:00Z"`
	Repository string            `json:"repository"`
	Message    string            `json:"message" example:"alice pushed to main on 1st April 2021 - 9:30 PM UTC"`
}

func newEventResp(ev model.Event) eventResp {
	return eventResp{
		ID:         ev.ID,
		EventType:  string(ev.EventType),
		Author:     ev.Author,
		FromBranch: ev.FromBranch,
		ToBranch:   ev.ToBranch,
		Timestamp:  response.DateTime(ev.Timestamp),
		Repository: ev.Repository,
		Message:    describe(ev),
	}
}

// describe renders the one-line activity text shown on the dashboard.
func describe(ev model.Event) string {
	when := timefmt.Format(ev.Timestamp)
	from := lo.FromPtr(ev.FromBranch)
	switch ev.EventType {
	case model.EventTypePush:
		return fmt.Sprintf("%s pushed to %s on %s", ev.Author, ev.ToBranch, when)
	case model.EventTypePullRequest:
		return fmt.Sprintf("%s submitted a pull request from %s to %s on %s", ev.Author, from, ev.ToBranch, when)
	case model.EventTypeMerge:
		return fmt.Sprintf("%s merged branch %s to %s on %s", ev.Author, from, ev.ToBranch, when)
	}
	return fmt.Sprintf("%s %s on %s", ev.Author, ev.EventType, when)
}

type listResp struct {
	Success bool        `json:"success"`
	Events  []eventResp `json:"events"`
	Count   int         `json:"count"`
}

func (h *handler) newListResp(events []model.Event) listResp {
	items := lo.Map(events, func(ev model.Event, _ int) eventResp {
		return newEventResp(ev)
	})
	return listResp{Success: true, Events: items, Count: len(items)}
}

type failResp struct {
	Success bool        `json:"success"`
	Error   string      `json:"error"`
	Events  []eventResp `json:"events"`
}

func newFailResp(msg string) failResp {
	return failResp{Success: false, Error: msg, Events: []eventResp{}}
}

type authorCountResp struct {
	Author string `json:"author"`
	Count  int64  `json:"count"`
}

type statsResp struct {
	Success    bool              `json:"success"`
	TotalCount int64             `json:"total_count"`
	ByType     map[string]int64  `json:"by_type"`
	TopAuthors []authorCountResp `json:"top_authors"`
}

func (h *handler) newStatsResp(s event.Statistics) statsResp {
	return statsResp{
		Success:    true,
		TotalCount: s.TotalCount,
		ByType: lo.MapKeys(s.ByType, func(_ int64, k model.EventType) string {
			return string(k)
		}),
		TopAuthors: lo.Map(s.TopAuthors, func(a event.AuthorCount, _ int) authorCountResp {
			return authorCountResp{Author: a.Author, Count: a.Count}
		}),
	}
}

type settingsResp struct {
	RefreshIntervalSeconds int `json:"refresh_interval_seconds"`
	MaxEventsDisplay       int `json:"max_events_display"`
}
