package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Rohith-AI-HUB/webhook-repo/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthVersion = "1.0.0"
	ServiceName   = "webhook-repo"

	readyTimeout = time.Second
)

type healthResp struct {
	Status    string            `json:"status" example:"healthy"`
	Timestamp response.DateTime `json:"timestamp" swaggertype:"string" example:"2021-04-01T21:30:00Z"`
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API process is up. Does not touch the event store.
// @Tags Health
// @Produce json
// @Success 200 {object} healthResp "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, healthResp{
		Status:    "healthy",
		Timestamp: response.DateTime(time.Now()),
	})
}

// readyCheck reports ready only when the event store answers a ping.
// @Summary Readiness Check
// @Description Check if the API can reach its event store
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is ready"
// @Failure 503 {object} response.Resp "Event store unreachable"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
	defer cancel()

	if err := srv.eventUC.Ping(ctx); err != nil {
		srv.l.Warnf(ctx, "readiness: %v", err)
		response.ServiceUnavailable(c, "event store unreachable")
		return
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": HealthVersion,
		"service": ServiceName,
	})
}
