package model

import "time"

// Consent session status values. Status is persisted state; whether a session
// actually authorizes access also depends on ExpiresAt (see
// IsEffectivelyActive). Other terminal states are reachable via a direct
// status update.
const (
	ConsentStatusActive  = "active"
	ConsentStatusExpired = "expired"
	ConsentStatusRevoked = "revoked"
)

// ConsentSession is a time-boxed grant allowing a doctor to access a
// patient's records, identified by a short caller-facing share code.
//
// Expiration is two-tier: the persisted Status only changes through an
// explicit expire/update, while queries evaluate ExpiresAt lazily at read
// time. A session past its expiry can therefore still read "active" in
// storage; callers must use IsEffectivelyActive rather than inspecting
// Status alone.
type ConsentSession struct {
	ID        string    `json:"id"`
	PatientID string    `json:"patient_id"`
	DoctorID  string    `json:"doctor_id,omitempty"`
	ShareCode string    `json:"share_code"`
	Status    string    `json:"status"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// IsEffectivelyActive reports whether the session authorizes access at the
// given instant: persisted status is active and the expiry is strictly in
// the future.
func (s *ConsentSession) IsEffectivelyActive(now time.Time) bool {
	return s.Status == ConsentStatusActive && s.ExpiresAt.After(now)
}
