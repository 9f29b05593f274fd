package service

import (
	"context"
	"errors"

	"healthvault/internal/model"
	"healthvault/internal/repository"
)

// DefaultVitalLimit caps ListByPatient results when the caller does not
// supply a positive limit.
const DefaultVitalLimit = 50

var (
	ErrVitalTypeRequired  = errors.New("vital type is required")
	ErrVitalValueRequired = errors.New("vital value is required")
)

// RecordVitalInput carries the caller-supplied fields for a new vital.
// Source may be left empty to default to "patient".
type RecordVitalInput struct {
	PatientID string
	Type      string
	Value     string
	Unit      string
	Source    string
}

// VitalService records and lists patient measurements.
type VitalService interface {
	Record(ctx context.Context, in RecordVitalInput) (*model.Vital, error)
	Get(ctx context.Context, id string) (*model.Vital, error)
	// ListByPatient returns the patient's vitals most-recent-first,
	// optionally filtered by type (empty means all), truncated to limit
	// (DefaultVitalLimit when limit is not positive).
	ListByPatient(ctx context.Context, patientID, vitalType string, limit int) ([]model.Vital, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type vitalService struct {
	repo repository.VitalRepository
}

func NewVitalService(repo repository.VitalRepository) VitalService {
	return &vitalService{repo: repo}
}

func (s *vitalService) Record(ctx context.Context, in RecordVitalInput) (*model.Vital, error) {
	if in.PatientID == "" {
		return nil, ErrPatientIDRequired
	}
	if in.Type == "" {
		return nil, ErrVitalTypeRequired
	}
	if in.Value == "" {
		return nil, ErrVitalValueRequired
	}
	return s.repo.Create(ctx, &model.Vital{
		PatientID: in.PatientID,
		Type:      in.Type,
		Value:     in.Value,
		Unit:      in.Unit,
		Source:    in.Source,
	})
}

func (s *vitalService) Get(ctx context.Context, id string) (*model.Vital, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

func (s *vitalService) ListByPatient(ctx context.Context, patientID, vitalType string, limit int) ([]model.Vital, error) {
	if patientID == "" {
		return nil, ErrPatientIDRequired
	}
	if limit <= 0 {
		limit = DefaultVitalLimit
	}
	return s.repo.ListByPatient(ctx, patientID, vitalType, limit)
}

func (s *vitalService) Delete(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, ErrIDRequired
	}
	return s.repo.Delete(ctx, id)
}
