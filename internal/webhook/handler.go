package webhook

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/go-github/v68/github"

	"github.com/Rohith-AI-HUB/webhook-repo/internal/event"
	"github.com/Rohith-AI-HUB/webhook-repo/pkg/metrics"
	pkgResponse "github.com/Rohith-AI-HUB/webhook-repo/pkg/response"
)

// HandleGitHubWebhook godoc
// @Summary     Receive a GitHub webhook delivery
// @Description Normalizes push and pull_request deliveries and stores them. Other event types are acknowledged as ignored.
// @Tags        Webhook
// @Accept      json
// @Produce     json
// @Param       X-GitHub-Event      header string true  "GitHub event type"
// @Param       X-GitHub-Delivery   header string false "Delivery GUID"
// @Param       X-Hub-Signature-256 header string false "HMAC signature, required when verification is enabled"
// @Param       body body object true "GitHub webhook payload"
// @Success     200 {object} response.StatusBody
// @Failure     400 {object} response.ErrorBody "Empty or invalid payload"
// @Failure     401 {object} response.ErrorBody "Invalid signature"
// @Failure     403 {object} response.ErrorBody "Source not allowed"
// @Failure     413 {object} response.ErrorBody "Payload too large"
// @Failure     429 {object} response.ErrorBody "Rate limited"
// @Failure     500 {object} response.ErrorBody "Internal error"
// @Router      /webhook [POST]
func (h *Handler) HandleGitHubWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	eventType := github.WebHookType(c.Request)
	deliveryID := github.DeliveryID(c.Request)
	source := c.ClientIP()

	if err := h.security.ValidateIPAddress(source); err != nil {
		h.l.Warnf(ctx, "Rejected webhook %s: %v", deliveryID, err)
		h.reject(c, eventType, http.StatusForbidden, ErrForbiddenSource)
		return
	}

	if err := h.security.CheckRateLimit(source); err != nil {
		h.l.Warnf(ctx, "Rate limit exceeded: %v", err)
		h.reject(c, eventType, http.StatusTooManyRequests, ErrRateLimited)
		return
	}

	// Read body
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxPayload)
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.l.Warnf(ctx, "Webhook %s exceeds %d bytes", deliveryID, h.maxPayload)
			h.reject(c, eventType, http.StatusRequestEntityTooLarge, ErrPayloadTooLarge)
			return
		}
		h.l.Warnf(ctx, "Failed to read webhook body: %v", err)
		h.reject(c, eventType, http.StatusBadRequest, ErrEmptyPayload)
		return
	}

	if h.security.SignatureRequired() {
		signature := c.GetHeader(github.SHA256SignatureHeader)
		if signature == "" {
			signature = c.GetHeader(github.SHA1SignatureHeader)
		}
		if err := h.security.ValidateGitHubSignature(body, signature); err != nil {
			h.l.Warnf(ctx, "GitHub signature verification failed for %s: %v", deliveryID, err)
			h.reject(c, eventType, http.StatusUnauthorized, ErrInvalidSignature)
			return
		}
	}

	if err := checkPayload(body); err != nil {
		h.reject(c, eventType, http.StatusBadRequest, err)
		return
	}

	ev, err := h.normalizer.Normalize(eventType, body)
	if err != nil {
		if errors.Is(err, ErrIgnored) {
			h.l.Infof(ctx, "Ignored %q delivery %s: %v", eventType, deliveryID, err)
			metrics.WebhookDeliveries.WithLabelValues(eventLabel(eventType), metrics.OutcomeIgnored).Inc()
			pkgResponse.Ack(c, "ignored", ignoredMessage(err))
			return
		}
		h.fail(c, eventType, err)
		return
	}

	if _, err := h.eventUC.Insert(ctx, event.InsertInput{Event: ev}); err != nil {
		h.fail(c, eventType, err)
		return
	}

	h.l.Infof(ctx, "Processed %s event from %s (%s, delivery %s)", ev.EventType, ev.Author, ev.Repository, deliveryID)
	metrics.WebhookDeliveries.WithLabelValues(eventLabel(eventType), metrics.OutcomeSuccess).Inc()
	pkgResponse.Ack(c, "success", "Webhook processed")
}

func (h *Handler) reject(c *gin.Context, eventType string, status int, err error) {
	metrics.WebhookDeliveries.WithLabelValues(eventLabel(eventType), metrics.OutcomeRejected).Inc()
	pkgResponse.Fail(c, status, err.Error())
}

// fail logs err and answers 500, hiding the detail unless exposeErrors is set.
func (h *Handler) fail(c *gin.Context, eventType string, err error) {
	h.l.Errorf(c.Request.Context(), "Error processing webhook: %v", err)
	metrics.WebhookDeliveries.WithLabelValues(eventLabel(eventType), metrics.OutcomeFailed).Inc()

	msg := ErrInternal.Error()
	if h.exposeErrors {
		msg = err.Error()
	}
	pkgResponse.Fail(c, http.StatusInternalServerError, msg)
}

// checkPayload rejects bodies that are empty or hold no data (null, {}, [],
// "", 0, false) and bodies that are not JSON.
func checkPayload(body []byte) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return ErrEmptyPayload
	}

	var v any
	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil || dec.More() {
		return ErrInvalidJSON
	}

	switch t := v.(type) {
	case nil:
		return ErrEmptyPayload
	case map[string]any:
		if len(t) == 0 {
			return ErrEmptyPayload
		}
	case []any:
		if len(t) == 0 {
			return ErrEmptyPayload
		}
	case string:
		if t == "" {
			return ErrEmptyPayload
		}
	case bool:
		if !t {
			return ErrEmptyPayload
		}
	case json.Number:
		if f, err := t.Float64(); err == nil && f == 0 {
			return ErrEmptyPayload
		}
	}
	return nil
}

func ignoredMessage(err error) string {
	switch {
	case errors.Is(err, ErrUnsupportedEvent):
		return "Event type not supported"
	case errors.Is(err, ErrUnsupportedAction):
		return "Event action not supported"
	default:
		return "Event payload incomplete"
	}
}

// eventLabel bounds metric label cardinality to known event types.
func eventLabel(eventType string) string {
	switch eventType {
	case eventPush, eventPullRequest:
		return eventType
	case "":
		return "none"
	}
	return "other"
}
