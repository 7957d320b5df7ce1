package webhook

import (
	"context"

	"github.com/Rohith-AI-HUB/webhook-repo/internal/event"
	pkgLog "github.com/Rohith-AI-HUB/webhook-repo/pkg/log"
)

type Handler struct {
	eventUC      event.UseCase
	security     *SecurityValidator
	normalizer   *Normalizer
	maxPayload   int64
	exposeErrors bool
	l            pkgLog.Logger
}

// NewHandler wires the ingestion endpoint. A nil normalizer uses the wall clock.
func NewHandler(
	eventUC event.UseCase,
	securityConfig SecurityConfig,
	normalizer *Normalizer,
	l pkgLog.Logger,
) (*Handler, error) {
	security, err := NewSecurityValidator(securityConfig)
	if err != nil {
		return nil, err
	}
	if normalizer == nil {
		normalizer = NewNormalizer()
	}
	maxPayload := securityConfig.MaxPayloadBytes
	if maxPayload <= 0 {
		maxPayload = defaultMaxPayloadBytes
	}
	if securityConfig.ExposeErrors {
		l.Warnf(context.Background(), "Webhook internal error details are returned to callers (webhook.expose_errors=true)")
	} else {
		l.Infof(context.Background(), "Webhook internal errors are redacted (webhook.expose_errors=false)")
	}
	return &Handler{
		eventUC:      eventUC,
		security:     security,
		normalizer:   normalizer,
		maxPayload:   maxPayload,
		exposeErrors: securityConfig.ExposeErrors,
		l:            l,
	}, nil
}
