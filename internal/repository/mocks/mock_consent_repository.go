package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"healthvault/internal/model"
	"healthvault/internal/repository"
)

type MockConsentSessionRepository struct {
	mock.Mock
}

func (m *MockConsentSessionRepository) Create(ctx context.Context, session *model.ConsentSession) (*model.ConsentSession, error) {
	args := m.Called(ctx, session)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ConsentSession), args.Error(1)
}

func (m *MockConsentSessionRepository) FindByID(ctx context.Context, id string) (*model.ConsentSession, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ConsentSession), args.Error(1)
}

func (m *MockConsentSessionRepository) FindByShareCode(ctx context.Context, code string) (*model.ConsentSession, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ConsentSession), args.Error(1)
}

func (m *MockConsentSessionRepository) ListByPatient(ctx context.Context, patientID string) ([]model.ConsentSession, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ConsentSession), args.Error(1)
}

func (m *MockConsentSessionRepository) Update(ctx context.Context, id string, upd repository.ConsentSessionUpdate) (*model.ConsentSession, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ConsentSession), args.Error(1)
}

func (m *MockConsentSessionRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
