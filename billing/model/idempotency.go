package model

import (
	"encoding/json"
	"time"
)

// IdempotencyKey identifies one logical request: the endpoint path plus the
// caller-supplied key.
type IdempotencyKey struct {
	Resource string
	Key      string
}

// Idempotency record statuses.
const (
	IdempotencyInFlight  = "in_flight"
	IdempotencyCompleted = "completed"
)

// IdempotencyRecord is the cached outcome of a keyed request. While the
// first attempt is still running the record holds only the status; once it
// completes the serialized response is stored for replay.
type IdempotencyRecord struct {
	Status          string          `json:"status"`
	RequestBodyHash string          `json:"request_body_hash"`
	Response        json.RawMessage `json:"response,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
