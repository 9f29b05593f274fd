package repository

import (
	"context"
	"time"

	"healthvault/internal/model"
)

// ConsentSessionUpdate carries a shallow-merge update for a ConsentSession.
// Status transitions (including expiry) go through here; ShareCode and
// CreatedAt are write-once.
type ConsentSessionUpdate struct {
	DoctorID  *string
	Status    *string
	ExpiresAt *time.Time
}

// ConsentSessionRepository defines data access for consent sessions.
//
// FindByShareCode returns the first session carrying the code; the service
// layer guarantees codes are unique at write time, so "first" is "the".
// ListByPatient returns the patient's sessions in insertion order with no
// time-based filtering; deriving the effectively-active subset is the
// service layer's job, evaluated lazily at read time.
type ConsentSessionRepository interface {
	Create(ctx context.Context, session *model.ConsentSession) (*model.ConsentSession, error)
	FindByID(ctx context.Context, id string) (*model.ConsentSession, error)
	FindByShareCode(ctx context.Context, code string) (*model.ConsentSession, error)
	ListByPatient(ctx context.Context, patientID string) ([]model.ConsentSession, error)
	Update(ctx context.Context, id string, upd ConsentSessionUpdate) (*model.ConsentSession, error)
	Delete(ctx context.Context, id string) (bool, error)
}
