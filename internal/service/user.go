package service

import (
	"context"
	"errors"

	"healthvault/internal/model"
	"healthvault/internal/repository"
)

var ErrPhoneRequired = errors.New("phone is required")

// UserService is the thin CRUD around phone-identified accounts.
type UserService interface {
	// Register stores a new, unverified account.
	Register(ctx context.Context, phone, name string) (*model.User, error)
	Get(ctx context.Context, id string) (*model.User, error)
	GetByPhone(ctx context.Context, phone string) (*model.User, error)
	// Verify marks the account verified (e.g. after an OTP round trip,
	// which happens outside this layer).
	Verify(ctx context.Context, id string) (*model.User, error)
	Update(ctx context.Context, id string, upd repository.UserUpdate) (*model.User, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Register(ctx context.Context, phone, name string) (*model.User, error) {
	if phone == "" {
		return nil, ErrPhoneRequired
	}
	return s.repo.Create(ctx, &model.User{Phone: phone, Name: name})
}

func (s *userService) Get(ctx context.Context, id string) (*model.User, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *userService) GetByPhone(ctx context.Context, phone string) (*model.User, error) {
	if phone == "" {
		return nil, ErrPhoneRequired
	}
	u, err := s.repo.FindByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *userService) Verify(ctx context.Context, id string) (*model.User, error) {
	verified := true
	return s.Update(ctx, id, repository.UserUpdate{IsVerified: &verified})
}

func (s *userService) Update(ctx context.Context, id string, upd repository.UserUpdate) (*model.User, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	u, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *userService) Delete(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, ErrIDRequired
	}
	return s.repo.Delete(ctx, id)
}
