package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	eventHTTP "github.com/Rohith-AI-HUB/webhook-repo/internal/event/delivery/http"
)

// setupEventDomain registers the read-only event query API under api.
func (srv HTTPServer) setupEventDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := eventHTTP.New(srv.l, srv.eventUC, eventHTTP.Config{
		DefaultLimit:    srv.maxEventsDisplay,
		RefreshInterval: srv.refreshInterval,
	})

	// registers /api/events, /api/events/stats, /api/authors/:author/events, /api/settings
	eventHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Event domain registered")
	return nil
}
