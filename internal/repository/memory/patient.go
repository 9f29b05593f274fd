package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"healthvault/internal/model"
	"healthvault/internal/repository"
)

type patientRepo struct {
	c   *collection[model.Patient]
	now func() time.Time
}

var _ repository.PatientRepository = (*patientRepo)(nil)

func (r *patientRepo) Create(ctx context.Context, patient *model.Patient) (*model.Patient, error) {
	out := *patient
	out.ID = uuid.NewString()
	out.CreatedAt = r.now()
	r.c.insert(out.ID, out)
	return &out, nil
}

func (r *patientRepo) FindByID(ctx context.Context, id string) (*model.Patient, error) {
	p, ok := r.c.get(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

// FindByUserID resolves the user linkage by scan; the linkage is a plain
// field, not an indexed constraint.
func (r *patientRepo) FindByUserID(ctx context.Context, userID string) (*model.Patient, error) {
	for _, p := range r.c.list() {
		if p.UserID == userID {
			return &p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *patientRepo) Update(ctx context.Context, id string, upd repository.PatientUpdate) (*model.Patient, error) {
	p, ok := r.c.mutate(id, func(p model.Patient) model.Patient {
		if upd.DateOfBirth != nil {
			p.DateOfBirth = *upd.DateOfBirth
		}
		if upd.BloodGroup != nil {
			p.BloodGroup = *upd.BloodGroup
		}
		return p
	})
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (r *patientRepo) Delete(ctx context.Context, id string) (bool, error) {
	return r.c.remove(id), nil
}
