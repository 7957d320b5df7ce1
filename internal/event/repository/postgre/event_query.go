package postgre

import (
	"fmt"
	"strings"

	repo "github.com/Rohith-AI-HUB/webhook-repo/internal/event/repository"
)

// buildListQuery builds the WHERE + ORDER + LIMIT clause for ListEvents.
func (r *implRepository) buildListQuery(opt repo.ListEventsOptions) (string, []any) {
	var parts []string
	var conditions []string
	var args []any
	idx := 1

	if opt.EventType != "" {
		conditions = append(conditions, fmt.Sprintf("event_type = $%d", idx))
		args = append(args, string(opt.EventType))
		idx++
	}
	if opt.Repository != "" {
		conditions = append(conditions, fmt.Sprintf("repository = $%d", idx))
		args = append(args, opt.Repository)
		idx++
	}
	if opt.Author != "" {
		conditions = append(conditions, fmt.Sprintf("author = $%d", idx))
		args = append(args, opt.Author)
		idx++
	}

	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}

	parts = append(parts, "ORDER BY occurred_at DESC, created_at DESC")

	if opt.Limit > 0 {
		parts = append(parts, fmt.Sprintf("LIMIT $%d", idx))
		args = append(args, opt.Limit)
	}

	return strings.Join(parts, " "), args
}
