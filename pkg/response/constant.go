package response

import "time"

const (
	MessageSuccess = "Success"

	// DateTimeFormat is the wire format for timestamps, always UTC.
	DateTimeFormat = time.RFC3339
)
