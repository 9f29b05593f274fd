package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"healthvault/internal/model"
	"healthvault/internal/query"
	"healthvault/internal/repository"
)

type encounterRepo struct {
	c   *collection[model.Encounter]
	now func() time.Time
}

var _ repository.EncounterRepository = (*encounterRepo)(nil)

func (r *encounterRepo) Create(ctx context.Context, enc *model.Encounter) (*model.Encounter, error) {
	out := *enc
	out.ID = uuid.NewString()
	out.EncounterDate = r.now()
	r.c.insert(out.ID, out)
	return &out, nil
}

func (r *encounterRepo) FindByID(ctx context.Context, id string) (*model.Encounter, error) {
	e, ok := r.c.get(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &e, nil
}

func (r *encounterRepo) ListByPatient(ctx context.Context, patientID string, limit int) ([]model.Encounter, error) {
	encs := query.Filter(r.c.list(), func(e model.Encounter) bool {
		return e.PatientID == patientID
	})
	query.SortByTimeDesc(encs, func(e model.Encounter) time.Time { return e.EncounterDate })
	return query.Limit(encs, limit), nil
}

func (r *encounterRepo) Update(ctx context.Context, id string, upd repository.EncounterUpdate) (*model.Encounter, error) {
	e, ok := r.c.mutate(id, func(e model.Encounter) model.Encounter {
		if upd.DoctorID != nil {
			e.DoctorID = *upd.DoctorID
		}
		if upd.Reason != nil {
			e.Reason = *upd.Reason
		}
		if upd.Notes != nil {
			e.Notes = *upd.Notes
		}
		return e
	})
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &e, nil
}

func (r *encounterRepo) Delete(ctx context.Context, id string) (bool, error) {
	return r.c.remove(id), nil
}
