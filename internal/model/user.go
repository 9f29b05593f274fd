package model

import "time"

// User is a phone-identified account. Patients and doctors each link back to
// a User via UserID.
type User struct {
	ID         string    `json:"id"`
	Phone      string    `json:"phone"`
	Name       string    `json:"name"`
	IsVerified bool      `json:"is_verified"`
	CreatedAt  time.Time `json:"created_at"`
}

// Patient links one-to-one with a User. The user linkage is a plain field,
// not an enforced constraint; lookups go through the repository.
type Patient struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	DateOfBirth time.Time `json:"date_of_birth,omitempty"`
	BloodGroup  string    `json:"blood_group,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Doctor links one-to-one with a User. RegistrationNumber must be unique;
// the service layer guards this at write time. VerificationDocuments holds
// object-storage keys of uploaded credentials.
type Doctor struct {
	ID                    string    `json:"id"`
	UserID                string    `json:"user_id"`
	RegistrationNumber    string    `json:"registration_number"`
	Specialty             string    `json:"specialty,omitempty"`
	IsVerified            bool      `json:"is_verified"`
	VerificationDocuments []string  `json:"verification_documents,omitempty"`
	CreatedAt             time.Time `json:"created_at"`
}
