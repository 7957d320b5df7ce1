package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert record")
	ErrFailedToList   = errors.New("failed to list records")
	ErrFailedToCount  = errors.New("failed to count records")
	ErrFailedToDelete = errors.New("failed to delete records")
	ErrUnavailable    = errors.New("store unreachable")
)
