package service

import (
	"context"
	"errors"
	"time"

	"healthvault/internal/model"
	"healthvault/internal/repository"
)

var ErrUserIDRequired = errors.New("user id is required")

// CreatePatientInput carries the caller-supplied fields for a new patient.
type CreatePatientInput struct {
	UserID      string
	DateOfBirth time.Time
	BloodGroup  string
}

// PatientService is the thin CRUD around patients.
type PatientService interface {
	Create(ctx context.Context, in CreatePatientInput) (*model.Patient, error)
	Get(ctx context.Context, id string) (*model.Patient, error)
	GetByUserID(ctx context.Context, userID string) (*model.Patient, error)
	Update(ctx context.Context, id string, upd repository.PatientUpdate) (*model.Patient, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type patientService struct {
	repo repository.PatientRepository
}

func NewPatientService(repo repository.PatientRepository) PatientService {
	return &patientService{repo: repo}
}

func (s *patientService) Create(ctx context.Context, in CreatePatientInput) (*model.Patient, error) {
	if in.UserID == "" {
		return nil, ErrUserIDRequired
	}
	return s.repo.Create(ctx, &model.Patient{
		UserID:      in.UserID,
		DateOfBirth: in.DateOfBirth,
		BloodGroup:  in.BloodGroup,
	})
}

func (s *patientService) Get(ctx context.Context, id string) (*model.Patient, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *patientService) GetByUserID(ctx context.Context, userID string) (*model.Patient, error) {
	if userID == "" {
		return nil, ErrUserIDRequired
	}
	p, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *patientService) Update(ctx context.Context, id string, upd repository.PatientUpdate) (*model.Patient, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	p, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *patientService) Delete(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, ErrIDRequired
	}
	return s.repo.Delete(ctx, id)
}
