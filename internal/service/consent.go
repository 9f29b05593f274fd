package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"healthvault/internal/logging"
	"healthvault/internal/metrics"
	"healthvault/internal/model"
	"healthvault/internal/query"
	"healthvault/internal/repository"
)

var (
	ErrShareCodeRequired = errors.New("share code is required")
	ErrShareCodeTaken    = errors.New("share code is already in use")
	ErrExpiryNotFuture   = errors.New("expiry must be in the future")
)

// CreateConsentInput carries the caller-supplied fields for a new consent
// session. Status may be left empty to default to active.
type CreateConsentInput struct {
	PatientID string
	DoctorID  string
	ShareCode string
	ExpiresAt time.Time
	Status    string
}

// ConsentService owns the lifecycle of time-boxed, code-based record
// sharing.
//
// Expiration is two-tier: ListActive evaluates ExpiresAt lazily at call
// time, while the persisted status only changes through Expire (or a direct
// update). A session past its expiry therefore still reads "active" in
// storage until Expire is invoked; consumers must rely on ListActive or
// model.ConsentSession.IsEffectivelyActive, never on the raw status field.
type ConsentService interface {
	// Create validates and stores a new session: the share code must be
	// unused and the expiry strictly in the future.
	Create(ctx context.Context, in CreateConsentInput) (*model.ConsentSession, error)

	// Get returns a session by its internal id.
	Get(ctx context.Context, id string) (*model.ConsentSession, error)

	// GetByShareCode returns the session carrying the given share code.
	GetByShareCode(ctx context.Context, code string) (*model.ConsentSession, error)

	// ListActive returns the patient's sessions that are effectively active
	// right now, in insertion order.
	ListActive(ctx context.Context, patientID string) ([]model.ConsentSession, error)

	// Expire transitions a session's persisted status to expired and reports
	// whether a session was found. Re-expiring an already-expired session
	// still reports true.
	Expire(ctx context.Context, id string) (bool, error)
}

type consentService struct {
	repo repository.ConsentSessionRepository
	log  logging.Logger
	m    *metrics.Metrics
	now  func() time.Time
}

// NewConsentService constructs a ConsentService. metrics may be nil.
func NewConsentService(repo repository.ConsentSessionRepository, log logging.Logger, m *metrics.Metrics) ConsentService {
	return &consentService{repo: repo, log: log, m: m, now: func() time.Time { return time.Now().UTC() }}
}

func (s *consentService) Create(ctx context.Context, in CreateConsentInput) (*model.ConsentSession, error) {
	if in.PatientID == "" {
		return nil, ErrPatientIDRequired
	}
	if in.ShareCode == "" {
		return nil, ErrShareCodeRequired
	}
	if !in.ExpiresAt.After(s.now()) {
		return nil, ErrExpiryNotFuture
	}

	// Duplicate codes would corrupt first-match lookup semantics later, so
	// reject them here rather than letting them in silently.
	_, err := s.repo.FindByShareCode(ctx, in.ShareCode)
	switch {
	case err == nil:
		return nil, ErrShareCodeTaken
	case !errors.Is(err, repository.ErrNotFound):
		return nil, fmt.Errorf("check share code: %w", err)
	}

	created, err := s.repo.Create(ctx, &model.ConsentSession{
		PatientID: in.PatientID,
		DoctorID:  in.DoctorID,
		ShareCode: in.ShareCode,
		Status:    in.Status,
		ExpiresAt: in.ExpiresAt,
	})
	if err != nil {
		return nil, fmt.Errorf("create consent session: %w", err)
	}

	s.m.SessionCreated()
	s.log.Info(ctx, "consent session created",
		"session_id", created.ID,
		"patient_id", created.PatientID,
		"expires_at", created.ExpiresAt,
	)
	return created, nil
}

func (s *consentService) Get(ctx context.Context, id string) (*model.ConsentSession, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	session, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return session, nil
}

func (s *consentService) GetByShareCode(ctx context.Context, code string) (*model.ConsentSession, error) {
	if code == "" {
		return nil, ErrShareCodeRequired
	}
	session, err := s.repo.FindByShareCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.m.CodeLookup(metrics.LookupMiss)
			return nil, ErrNotFound
		}
		return nil, err
	}
	s.m.CodeLookup(metrics.LookupHit)
	return session, nil
}

func (s *consentService) ListActive(ctx context.Context, patientID string) ([]model.ConsentSession, error) {
	if patientID == "" {
		return nil, ErrPatientIDRequired
	}
	sessions, err := s.repo.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	return query.Filter(sessions, func(cs model.ConsentSession) bool {
		return cs.IsEffectivelyActive(now)
	}), nil
}

func (s *consentService) Expire(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, ErrIDRequired
	}
	status := model.ConsentStatusExpired
	_, err := s.repo.Update(ctx, id, repository.ConsentSessionUpdate{Status: &status})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("expire consent session: %w", err)
	}

	s.m.SessionExpired()
	s.log.Info(ctx, "consent session expired", "session_id", id)
	return true, nil
}
