package repository

import (
	"context"

	"healthvault/internal/model"
)

// AuditLogRepository defines the append-only access trail. There is
// deliberately no update or delete: immutability of audit entries is part of
// the contract and enforced at the interface level.
//
// ListByPatient returns the patient's entries most-recent-first by
// Timestamp, truncated to limit.
type AuditLogRepository interface {
	Append(ctx context.Context, entry *model.AuditLog) (*model.AuditLog, error)
	FindByID(ctx context.Context, id string) (*model.AuditLog, error)
	ListByPatient(ctx context.Context, patientID string, limit int) ([]model.AuditLog, error)
}
