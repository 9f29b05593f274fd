package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"healthvault/internal/logging"
	"healthvault/internal/metrics"
	"healthvault/internal/model"
	"healthvault/internal/repository"
)

// DefaultAuditLimit caps Query results when the caller does not supply a
// positive limit.
const DefaultAuditLimit = 100

var ErrActionRequired = errors.New("action is required")

// RecordAuditInput carries the caller-supplied fields for a new audit
// entry. Identity and timestamp are store-assigned.
type RecordAuditInput struct {
	PatientID string
	ActorID   string
	Action    string
	Details   json.RawMessage
}

// AuditService is the append-only event trail. Entries are immutable; the
// only read is per-patient, most-recent-first.
type AuditService interface {
	// Record stamps and stores a new entry, returning it complete.
	Record(ctx context.Context, in RecordAuditInput) (*model.AuditLog, error)

	// Query returns the patient's entries most-recent-first, truncated to
	// limit (DefaultAuditLimit when limit is not positive).
	Query(ctx context.Context, patientID string, limit int) ([]model.AuditLog, error)
}

type auditService struct {
	repo repository.AuditLogRepository
	log  logging.Logger
	m    *metrics.Metrics
}

// NewAuditService constructs an AuditService. metrics may be nil.
func NewAuditService(repo repository.AuditLogRepository, log logging.Logger, m *metrics.Metrics) AuditService {
	return &auditService{repo: repo, log: log, m: m}
}

func (s *auditService) Record(ctx context.Context, in RecordAuditInput) (*model.AuditLog, error) {
	if in.PatientID == "" {
		return nil, ErrPatientIDRequired
	}
	if in.Action == "" {
		return nil, ErrActionRequired
	}

	entry, err := s.repo.Append(ctx, &model.AuditLog{
		PatientID: in.PatientID,
		ActorID:   in.ActorID,
		Action:    in.Action,
		Details:   in.Details,
	})
	if err != nil {
		// Append failures are infrastructure failures; there is nothing to
		// retry locally.
		s.log.Error(ctx, "audit append failed", "patient_id", in.PatientID, "action", in.Action, "error", err)
		return nil, fmt.Errorf("append audit entry: %w", err)
	}

	s.m.AuditRecorded()
	return entry, nil
}

func (s *auditService) Query(ctx context.Context, patientID string, limit int) ([]model.AuditLog, error) {
	if patientID == "" {
		return nil, ErrPatientIDRequired
	}
	if limit <= 0 {
		limit = DefaultAuditLimit
	}
	return s.repo.ListByPatient(ctx, patientID, limit)
}
