package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"healthvault/internal/model"
	"healthvault/internal/query"
	"healthvault/internal/repository"
)

type vitalRepo struct {
	c   *collection[model.Vital]
	now func() time.Time
}

var _ repository.VitalRepository = (*vitalRepo)(nil)

// Create stores a new vital. RecordedAt is store-assigned; Source defaults
// to "patient" when not supplied.
func (r *vitalRepo) Create(ctx context.Context, vital *model.Vital) (*model.Vital, error) {
	out := *vital
	out.ID = uuid.NewString()
	out.RecordedAt = r.now()
	if out.Source == "" {
		out.Source = model.VitalSourcePatient
	}
	r.c.insert(out.ID, out)
	return &out, nil
}

func (r *vitalRepo) FindByID(ctx context.Context, id string) (*model.Vital, error) {
	v, ok := r.c.get(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &v, nil
}

func (r *vitalRepo) ListByPatient(ctx context.Context, patientID, vitalType string, limit int) ([]model.Vital, error) {
	vitals := query.Filter(r.c.list(), func(v model.Vital) bool {
		if v.PatientID != patientID {
			return false
		}
		return vitalType == "" || v.Type == vitalType
	})
	query.SortByTimeDesc(vitals, func(v model.Vital) time.Time { return v.RecordedAt })
	return query.Limit(vitals, limit), nil
}

func (r *vitalRepo) Delete(ctx context.Context, id string) (bool, error) {
	return r.c.remove(id), nil
}
