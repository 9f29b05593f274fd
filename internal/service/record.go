package service

import (
	"context"
	"errors"
	"time"

	"healthvault/internal/model"
	"healthvault/internal/repository"
)

// DefaultRecordLimit caps ListByPatient results when the caller does not
// supply a positive limit.
const DefaultRecordLimit = 50

var ErrTitleRequired = errors.New("title is required")

// CreateRecordInput carries the caller-supplied fields for a new medical
// record. A zero RecordDate defaults to creation time; a supplied one is
// honored as-is.
type CreateRecordInput struct {
	PatientID  string
	DoctorID   string
	Title      string
	Notes      string
	RecordDate time.Time
}

// RecordService is the thin CRUD around medical records.
type RecordService interface {
	Create(ctx context.Context, in CreateRecordInput) (*model.MedicalRecord, error)
	Get(ctx context.Context, id string) (*model.MedicalRecord, error)
	// ListByPatient returns the patient's records most-recent-first by
	// record date, truncated to limit (DefaultRecordLimit when limit is not
	// positive).
	ListByPatient(ctx context.Context, patientID string, limit int) ([]model.MedicalRecord, error)
	Update(ctx context.Context, id string, upd repository.MedicalRecordUpdate) (*model.MedicalRecord, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type recordService struct {
	repo repository.MedicalRecordRepository
}

func NewRecordService(repo repository.MedicalRecordRepository) RecordService {
	return &recordService{repo: repo}
}

func (s *recordService) Create(ctx context.Context, in CreateRecordInput) (*model.MedicalRecord, error) {
	if in.PatientID == "" {
		return nil, ErrPatientIDRequired
	}
	if in.Title == "" {
		return nil, ErrTitleRequired
	}
	return s.repo.Create(ctx, &model.MedicalRecord{
		PatientID:  in.PatientID,
		DoctorID:   in.DoctorID,
		Title:      in.Title,
		Notes:      in.Notes,
		RecordDate: in.RecordDate,
	})
}

func (s *recordService) Get(ctx context.Context, id string) (*model.MedicalRecord, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}

func (s *recordService) ListByPatient(ctx context.Context, patientID string, limit int) ([]model.MedicalRecord, error) {
	if patientID == "" {
		return nil, ErrPatientIDRequired
	}
	if limit <= 0 {
		limit = DefaultRecordLimit
	}
	return s.repo.ListByPatient(ctx, patientID, limit)
}

func (s *recordService) Update(ctx context.Context, id string, upd repository.MedicalRecordUpdate) (*model.MedicalRecord, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	rec, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}

func (s *recordService) Delete(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, ErrIDRequired
	}
	return s.repo.Delete(ctx, id)
}
