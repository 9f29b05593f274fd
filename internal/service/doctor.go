package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"time"

	"github.com/google/uuid"

	"healthvault/internal/model"
	"healthvault/internal/repository"
	"healthvault/internal/storage"
)

var (
	ErrRegistrationNumberRequired = errors.New("registration number is required")
	ErrRegistrationNumberTaken    = errors.New("registration number is already in use")
	ErrReaderNil                  = errors.New("reader is nil")
	ErrDocumentNotAttached        = errors.New("document is not attached to this doctor")
)

// CreateDoctorInput carries the caller-supplied fields for a new doctor.
type CreateDoctorInput struct {
	UserID             string
	RegistrationNumber string
	Specialty          string
}

// DoctorService is the CRUD around doctors plus the verification-document
// flow backed by object storage.
type DoctorService interface {
	// Create stores a new, unverified doctor. The registration number must
	// be unused.
	Create(ctx context.Context, in CreateDoctorInput) (*model.Doctor, error)
	Get(ctx context.Context, id string) (*model.Doctor, error)
	GetByUserID(ctx context.Context, userID string) (*model.Doctor, error)
	GetByRegistrationNumber(ctx context.Context, regNo string) (*model.Doctor, error)
	// Verify marks the doctor verified after their credentials have been
	// reviewed.
	Verify(ctx context.Context, id string) (*model.Doctor, error)
	Delete(ctx context.Context, id string) (bool, error)

	// AttachVerificationDocument uploads a credential document to object
	// storage and records its key on the doctor, rolling the upload back if
	// the record update fails. originalFilename is used only to extract the
	// extension; the stored key is UUID-based.
	AttachVerificationDocument(ctx context.Context, doctorID string, r io.Reader, originalFilename, contentType string, size int64) (*model.Doctor, error)

	// PresignVerificationDocument returns a time-limited download URL for a
	// document previously attached to the doctor.
	PresignVerificationDocument(ctx context.Context, doctorID, key string, expiry time.Duration) (string, error)
}

type doctorService struct {
	repo  repository.DoctorRepository
	store storage.Storage
}

func NewDoctorService(repo repository.DoctorRepository, store storage.Storage) DoctorService {
	return &doctorService{repo: repo, store: store}
}

func (s *doctorService) Create(ctx context.Context, in CreateDoctorInput) (*model.Doctor, error) {
	if in.UserID == "" {
		return nil, ErrUserIDRequired
	}
	if in.RegistrationNumber == "" {
		return nil, ErrRegistrationNumberRequired
	}

	// A duplicate registration number would make later lookups return an
	// arbitrary first match, so reject it at write time.
	_, err := s.repo.FindByRegistrationNumber(ctx, in.RegistrationNumber)
	switch {
	case err == nil:
		return nil, ErrRegistrationNumberTaken
	case !errors.Is(err, repository.ErrNotFound):
		return nil, fmt.Errorf("check registration number: %w", err)
	}

	return s.repo.Create(ctx, &model.Doctor{
		UserID:             in.UserID,
		RegistrationNumber: in.RegistrationNumber,
		Specialty:          in.Specialty,
	})
}

func (s *doctorService) Get(ctx context.Context, id string) (*model.Doctor, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

func (s *doctorService) GetByUserID(ctx context.Context, userID string) (*model.Doctor, error) {
	if userID == "" {
		return nil, ErrUserIDRequired
	}
	d, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

func (s *doctorService) GetByRegistrationNumber(ctx context.Context, regNo string) (*model.Doctor, error) {
	if regNo == "" {
		return nil, ErrRegistrationNumberRequired
	}
	d, err := s.repo.FindByRegistrationNumber(ctx, regNo)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

func (s *doctorService) Verify(ctx context.Context, id string) (*model.Doctor, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	verified := true
	d, err := s.repo.Update(ctx, id, repository.DoctorUpdate{IsVerified: &verified})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

func (s *doctorService) Delete(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, ErrIDRequired
	}
	return s.repo.Delete(ctx, id)
}

func (s *doctorService) AttachVerificationDocument(ctx context.Context, doctorID string, r io.Reader, originalFilename, contentType string, size int64) (*model.Doctor, error) {
	if r == nil {
		return nil, ErrReaderNil
	}
	doctor, err := s.Get(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	ext := filepath.Ext(originalFilename)
	key := filepath.ToSlash(filepath.Join("verification", doctorID, uuid.NewString()+ext))

	_, err = s.store.Put(ctx, key, r, storage.PutOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": originalFilename,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	docs := append(slices.Clone(doctor.VerificationDocuments), key)
	updated, err := s.repo.Update(ctx, doctorID, repository.DoctorUpdate{VerificationDocuments: &docs})
	if err != nil {
		// Roll back the upload so storage does not accumulate orphans.
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("record update failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("record update failed: %w", err)
	}
	return updated, nil
}

func (s *doctorService) PresignVerificationDocument(ctx context.Context, doctorID, key string, expiry time.Duration) (string, error) {
	doctor, err := s.Get(ctx, doctorID)
	if err != nil {
		return "", err
	}
	if !slices.Contains(doctor.VerificationDocuments, key) {
		return "", ErrDocumentNotAttached
	}
	return s.store.PresignGet(ctx, key, expiry)
}
