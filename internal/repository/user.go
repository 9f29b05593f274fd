package repository

import (
	"context"
	"time"

	"healthvault/internal/model"
)

// UserUpdate carries a shallow-merge update for a User. Only non-nil fields
// are applied; ID and CreatedAt are never touched.
type UserUpdate struct {
	Phone      *string
	Name       *string
	IsVerified *bool
}

// UserRepository defines data access for phone-identified accounts.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByPhone(ctx context.Context, phone string) (*model.User, error)
	Update(ctx context.Context, id string, upd UserUpdate) (*model.User, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// PatientUpdate carries a shallow-merge update for a Patient.
type PatientUpdate struct {
	DateOfBirth *time.Time
	BloodGroup  *string
}

// PatientRepository defines data access for patients. FindByUserID resolves
// the unenforced user linkage by scan; referential integrity is the caller's
// responsibility.
type PatientRepository interface {
	Create(ctx context.Context, patient *model.Patient) (*model.Patient, error)
	FindByID(ctx context.Context, id string) (*model.Patient, error)
	FindByUserID(ctx context.Context, userID string) (*model.Patient, error)
	Update(ctx context.Context, id string, upd PatientUpdate) (*model.Patient, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// DoctorUpdate carries a shallow-merge update for a Doctor.
type DoctorUpdate struct {
	Specialty             *string
	IsVerified            *bool
	VerificationDocuments *[]string
}

// DoctorRepository defines data access for doctors. Registration-number
// uniqueness is guarded at the service layer, not here.
type DoctorRepository interface {
	Create(ctx context.Context, doctor *model.Doctor) (*model.Doctor, error)
	FindByID(ctx context.Context, id string) (*model.Doctor, error)
	FindByUserID(ctx context.Context, userID string) (*model.Doctor, error)
	FindByRegistrationNumber(ctx context.Context, regNo string) (*model.Doctor, error)
	Update(ctx context.Context, id string, upd DoctorUpdate) (*model.Doctor, error)
	Delete(ctx context.Context, id string) (bool, error)
}
