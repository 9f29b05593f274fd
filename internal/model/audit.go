package model

import (
	"encoding/json"
	"time"
)

// AuditLog is one entry in the append-only access trail of a patient's
// records. Entries are immutable once created; the repository interface
// exposes no update or delete for them. Details carries a free-form payload
// describing the action.
type AuditLog struct {
	ID        string          `json:"id"`
	PatientID string          `json:"patient_id"`
	ActorID   string          `json:"actor_id,omitempty"`
	Action    string          `json:"action"`
	Details   json.RawMessage `json:"details,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}
