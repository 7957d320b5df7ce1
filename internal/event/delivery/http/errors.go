package http

import (
	"errors"
	"net/http"

	"github.com/Rohith-AI-HUB/webhook-repo/internal/event"
)

var (
	errInvalidLimit     = errors.New("limit must be a positive integer")
	errInvalidEventType = errors.New("event_type must be one of push, pull_request, merge")
)

// mapError translates use-case errors into a status and a client-safe message.
// Storage detail is logged by the caller, never returned.
func (h *handler) mapError(err error) (int, string) {
	switch {
	case errors.Is(err, event.ErrAuthorRequired),
		errors.Is(err, event.ErrRepositoryRequired):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, event.ErrStorageUnavailable):
		return http.StatusInternalServerError, event.ErrStorageUnavailable.Error()
	default:
		return http.StatusInternalServerError, "internal error"
	}
}
