package response

import (
	"encoding/json"
	"time"
)

// Resp is the envelope used by the operational endpoints.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// ErrorBody is the bare error shape returned to webhook senders.
type ErrorBody struct {
	Error string `json:"error"`
}

// StatusBody is the acknowledgement shape returned to webhook senders.
type StatusBody struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// DateTime marshals as DateTimeFormat in UTC.
type DateTime time.Time

// MarshalJSON implements json.Marshaler for DateTime.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).UTC().Format(DateTimeFormat))
}
