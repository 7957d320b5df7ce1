package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the read-only query API onto rg (mounted at /api).
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	events := rg.Group("/events")
	{
		events.GET("", h.List)
		events.GET("/stats", h.Stats)
	}
	rg.GET("/authors/:author/events", h.ByAuthor)
	rg.GET("/repositories/*repository", h.ByRepository)
	rg.GET("/settings", h.Settings)
}
