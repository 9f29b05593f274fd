package service

import (
	"context"
	"errors"

	"healthvault/internal/model"
	"healthvault/internal/repository"
)

// DefaultEncounterLimit caps ListByPatient results when the caller does not
// supply a positive limit.
const DefaultEncounterLimit = 50

// CreateEncounterInput carries the caller-supplied fields for a new
// encounter. EncounterDate is store-assigned at creation.
type CreateEncounterInput struct {
	PatientID string
	DoctorID  string
	Reason    string
	Notes     string
}

// EncounterService is the thin CRUD around clinical encounters.
type EncounterService interface {
	Create(ctx context.Context, in CreateEncounterInput) (*model.Encounter, error)
	Get(ctx context.Context, id string) (*model.Encounter, error)
	ListByPatient(ctx context.Context, patientID string, limit int) ([]model.Encounter, error)
	Update(ctx context.Context, id string, upd repository.EncounterUpdate) (*model.Encounter, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type encounterService struct {
	repo repository.EncounterRepository
}

func NewEncounterService(repo repository.EncounterRepository) EncounterService {
	return &encounterService{repo: repo}
}

func (s *encounterService) Create(ctx context.Context, in CreateEncounterInput) (*model.Encounter, error) {
	if in.PatientID == "" {
		return nil, ErrPatientIDRequired
	}
	return s.repo.Create(ctx, &model.Encounter{
		PatientID: in.PatientID,
		DoctorID:  in.DoctorID,
		Reason:    in.Reason,
		Notes:     in.Notes,
	})
}

func (s *encounterService) Get(ctx context.Context, id string) (*model.Encounter, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (s *encounterService) ListByPatient(ctx context.Context, patientID string, limit int) ([]model.Encounter, error) {
	if patientID == "" {
		return nil, ErrPatientIDRequired
	}
	if limit <= 0 {
		limit = DefaultEncounterLimit
	}
	return s.repo.ListByPatient(ctx, patientID, limit)
}

func (s *encounterService) Update(ctx context.Context, id string, upd repository.EncounterUpdate) (*model.Encounter, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	e, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (s *encounterService) Delete(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, ErrIDRequired
	}
	return s.repo.Delete(ctx, id)
}
