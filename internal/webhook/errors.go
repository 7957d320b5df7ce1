package webhook

import (
	"errors"
	"fmt"
)

// ErrIgnored marks a delivery that is accepted but produces no event.
var ErrIgnored = errors.New("webhook ignored")

var (
	ErrUnsupportedEvent  = fmt.Errorf("%w: unsupported event type", ErrIgnored)
	ErrUnsupportedAction = fmt.Errorf("%w: unsupported action", ErrIgnored)
	ErrMissingField      = fmt.Errorf("%w: missing required field", ErrIgnored)
	ErrMalformedPayload  = fmt.Errorf("%w: malformed payload", ErrIgnored)
)

// Handler-level errors.
var (
	ErrEmptyPayload     = errors.New("No payload received")
	ErrInvalidJSON      = errors.New("Invalid JSON payload")
	ErrPayloadTooLarge  = errors.New("Payload too large")
	ErrInvalidSignature = errors.New("invalid signature")
	ErrForbiddenSource  = errors.New("source not allowed")
	ErrRateLimited      = errors.New("rate limit exceeded")
	ErrInternal         = errors.New("Internal server error")
)
