package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"healthvault/internal/model"
	"healthvault/internal/query"
	"healthvault/internal/repository"
)

type medicalRecordRepo struct {
	c   *collection[model.MedicalRecord]
	now func() time.Time
}

var _ repository.MedicalRecordRepository = (*medicalRecordRepo)(nil)

// Create stores a new medical record. RecordDate is the one timestamp that
// honors caller input; it falls back to creation time when zero.
func (r *medicalRecordRepo) Create(ctx context.Context, rec *model.MedicalRecord) (*model.MedicalRecord, error) {
	out := *rec
	out.ID = uuid.NewString()
	out.CreatedAt = r.now()
	if out.RecordDate.IsZero() {
		out.RecordDate = out.CreatedAt
	}
	r.c.insert(out.ID, out)
	return &out, nil
}

func (r *medicalRecordRepo) FindByID(ctx context.Context, id string) (*model.MedicalRecord, error) {
	rec, ok := r.c.get(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &rec, nil
}

func (r *medicalRecordRepo) ListByPatient(ctx context.Context, patientID string, limit int) ([]model.MedicalRecord, error) {
	recs := query.Filter(r.c.list(), func(m model.MedicalRecord) bool {
		return m.PatientID == patientID
	})
	query.SortByTimeDesc(recs, func(m model.MedicalRecord) time.Time { return m.RecordDate })
	return query.Limit(recs, limit), nil
}

func (r *medicalRecordRepo) Update(ctx context.Context, id string, upd repository.MedicalRecordUpdate) (*model.MedicalRecord, error) {
	rec, ok := r.c.mutate(id, func(m model.MedicalRecord) model.MedicalRecord {
		if upd.DoctorID != nil {
			m.DoctorID = *upd.DoctorID
		}
		if upd.Title != nil {
			m.Title = *upd.Title
		}
		if upd.Notes != nil {
			m.Notes = *upd.Notes
		}
		if upd.RecordDate != nil {
			m.RecordDate = *upd.RecordDate
		}
		return m
	})
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &rec, nil
}

func (r *medicalRecordRepo) Delete(ctx context.Context, id string) (bool, error) {
	return r.c.remove(id), nil
}
