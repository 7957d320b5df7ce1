package httpserver

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Rohith-AI-HUB/webhook-repo/internal/event"
	"github.com/Rohith-AI-HUB/webhook-repo/pkg/log"
)

// WebhookHandler is the ingestion endpoint.
type WebhookHandler interface {
	HandleGitHubWebhook(c *gin.Context)
}

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// Event domain
	eventUC          event.UseCase
	webhookHandler   WebhookHandler
	maxEventsDisplay int
	refreshInterval  time.Duration
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string
	// TrustedProxies lists the proxies allowed to set X-Forwarded-For. Empty
	// means the socket address is the client address.
	TrustedProxies []string

	// Event domain
	EventUC          event.UseCase
	WebhookHandler   WebhookHandler
	MaxEventsDisplay int
	RefreshInterval  time.Duration
}

// New creates a new HTTPServer instance with all routes mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                logger,
		gin:              gin.New(),
		host:             cfg.Host,
		port:             cfg.Port,
		mode:             cfg.Mode,
		environment:      cfg.Environment,
		eventUC:          cfg.EventUC,
		webhookHandler:   cfg.WebhookHandler,
		maxEventsDisplay: cfg.MaxEventsDisplay,
		refreshInterval:  cfg.RefreshInterval,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.gin.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.eventUC == nil {
		return errors.New("event usecase is required")
	}
	if srv.webhookHandler == nil {
		return errors.New("webhook handler is required")
	}
	return nil
}
