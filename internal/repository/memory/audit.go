package memory

import (
	"context"
	"slices"
	"time"

	"github.com/google/uuid"

	"healthvault/internal/model"
	"healthvault/internal/query"
	"healthvault/internal/repository"
)

type auditLogRepo struct {
	c   *collection[model.AuditLog]
	now func() time.Time
}

var _ repository.AuditLogRepository = (*auditLogRepo)(nil)

// Append stores a new audit entry. ID and Timestamp are store-assigned; the
// details payload is cloned so the stored entry stays immutable even if the
// caller reuses its buffer.
func (r *auditLogRepo) Append(ctx context.Context, entry *model.AuditLog) (*model.AuditLog, error) {
	out := *entry
	out.ID = uuid.NewString()
	out.Timestamp = r.now()
	out.Details = slices.Clone(entry.Details)
	r.c.insert(out.ID, out)
	return &out, nil
}

func (r *auditLogRepo) FindByID(ctx context.Context, id string) (*model.AuditLog, error) {
	e, ok := r.c.get(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &e, nil
}

// ListByPatient returns the patient's entries most-recent-first. Entries
// appended within the same clock tick fall back to reverse insertion order,
// which the stable sort preserves after the in-place reversal below.
func (r *auditLogRepo) ListByPatient(ctx context.Context, patientID string, limit int) ([]model.AuditLog, error) {
	entries := query.Filter(r.c.list(), func(e model.AuditLog) bool {
		return e.PatientID == patientID
	})
	slices.Reverse(entries)
	query.SortByTimeDesc(entries, func(e model.AuditLog) time.Time { return e.Timestamp })
	return query.Limit(entries, limit), nil
}
