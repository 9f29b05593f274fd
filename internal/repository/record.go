package repository

import (
	"context"
	"time"

	"healthvault/internal/model"
)

// MedicalRecordUpdate carries a shallow-merge update for a MedicalRecord.
// RecordDate is caller-owned and therefore updatable; CreatedAt is not.
type MedicalRecordUpdate struct {
	DoctorID   *string
	Title      *string
	Notes      *string
	RecordDate *time.Time
}

// MedicalRecordRepository defines data access for medical records.
// ListByPatient returns the patient's records most-recent-first by
// RecordDate, truncated to limit.
type MedicalRecordRepository interface {
	Create(ctx context.Context, rec *model.MedicalRecord) (*model.MedicalRecord, error)
	FindByID(ctx context.Context, id string) (*model.MedicalRecord, error)
	ListByPatient(ctx context.Context, patientID string, limit int) ([]model.MedicalRecord, error)
	Update(ctx context.Context, id string, upd MedicalRecordUpdate) (*model.MedicalRecord, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// VitalRepository defines data access for vitals. ListByPatient returns the
// patient's vitals most-recent-first by RecordedAt, optionally filtered by
// vital type (empty vitalType means all types), truncated to limit. Vitals
// are never updated after the fact; correction is a new measurement.
type VitalRepository interface {
	Create(ctx context.Context, vital *model.Vital) (*model.Vital, error)
	FindByID(ctx context.Context, id string) (*model.Vital, error)
	ListByPatient(ctx context.Context, patientID, vitalType string, limit int) ([]model.Vital, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// EncounterUpdate carries a shallow-merge update for an Encounter.
type EncounterUpdate struct {
	DoctorID *string
	Reason   *string
	Notes    *string
}

// EncounterRepository defines data access for clinical encounters.
// ListByPatient returns the patient's encounters most-recent-first by
// EncounterDate, truncated to limit.
type EncounterRepository interface {
	Create(ctx context.Context, enc *model.Encounter) (*model.Encounter, error)
	FindByID(ctx context.Context, id string) (*model.Encounter, error)
	ListByPatient(ctx context.Context, patientID string, limit int) ([]model.Encounter, error)
	Update(ctx context.Context, id string, upd EncounterUpdate) (*model.Encounter, error)
	Delete(ctx context.Context, id string) (bool, error)
}
