package memory

import (
	"context"
	"slices"
	"time"

	"github.com/google/uuid"

	"healthvault/internal/model"
	"healthvault/internal/repository"
)

type doctorRepo struct {
	c   *collection[model.Doctor]
	now func() time.Time
}

var _ repository.DoctorRepository = (*doctorRepo)(nil)

// Create stores a new doctor. IsVerified starts false and
// VerificationDocuments starts absent; documents are attached later through
// an update. The documents slice is cloned so stored state cannot be
// mutated through the caller's copy.
func (r *doctorRepo) Create(ctx context.Context, doctor *model.Doctor) (*model.Doctor, error) {
	out := *doctor
	out.ID = uuid.NewString()
	out.CreatedAt = r.now()
	out.IsVerified = false
	out.VerificationDocuments = nil
	r.c.insert(out.ID, out)
	return &out, nil
}

func (r *doctorRepo) FindByID(ctx context.Context, id string) (*model.Doctor, error) {
	d, ok := r.c.get(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &d, nil
}

func (r *doctorRepo) FindByUserID(ctx context.Context, userID string) (*model.Doctor, error) {
	for _, d := range r.c.list() {
		if d.UserID == userID {
			return &d, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *doctorRepo) FindByRegistrationNumber(ctx context.Context, regNo string) (*model.Doctor, error) {
	for _, d := range r.c.list() {
		if d.RegistrationNumber == regNo {
			return &d, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *doctorRepo) Update(ctx context.Context, id string, upd repository.DoctorUpdate) (*model.Doctor, error) {
	d, ok := r.c.mutate(id, func(d model.Doctor) model.Doctor {
		if upd.Specialty != nil {
			d.Specialty = *upd.Specialty
		}
		if upd.IsVerified != nil {
			d.IsVerified = *upd.IsVerified
		}
		if upd.VerificationDocuments != nil {
			d.VerificationDocuments = slices.Clone(*upd.VerificationDocuments)
		}
		return d
	})
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &d, nil
}

func (r *doctorRepo) Delete(ctx context.Context, id string) (bool, error) {
	return r.c.remove(id), nil
}
