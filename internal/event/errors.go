package event

import "errors"

var (
	ErrStorageUnavailable = errors.New("event store unavailable")
	ErrInvalidEvent       = errors.New("invalid event")
	ErrInvalidRetention   = errors.New("retention days must be positive")
	ErrAuthorRequired     = errors.New("author is required")
	ErrRepositoryRequired = errors.New("repository is required")
)
