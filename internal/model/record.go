package model

import "time"

// MedicalRecord belongs to one Patient. RecordDate is the clinical date of
// the record; it defaults to creation time when the caller does not supply
// one, and is honored as-is when the caller does. CreatedAt is store-owned.
type MedicalRecord struct {
	ID         string    `json:"id"`
	PatientID  string    `json:"patient_id"`
	DoctorID   string    `json:"doctor_id,omitempty"`
	Title      string    `json:"title"`
	Notes      string    `json:"notes,omitempty"`
	RecordDate time.Time `json:"record_date"`
	CreatedAt  time.Time `json:"created_at"`
}

// Vital source values.
const (
	VitalSourcePatient = "patient"
	VitalSourceDevice  = "device"
	VitalSourceDoctor  = "doctor"
)

// Common vital types. The Type field is free-form; these are the values the
// platform itself produces.
const (
	VitalTypeBloodPressure = "blood-pressure"
	VitalTypeHeartRate     = "heart-rate"
	VitalTypeTemperature   = "temperature"
	VitalTypeBloodSugar    = "blood-sugar"
)

// Vital is a single measurement for a patient. Source defaults to "patient"
// when not supplied. RecordedAt is store-owned and fixed at creation.
type Vital struct {
	ID         string    `json:"id"`
	PatientID  string    `json:"patient_id"`
	Type       string    `json:"type"`
	Value      string    `json:"value"`
	Unit       string    `json:"unit,omitempty"`
	Source     string    `json:"source"`
	RecordedAt time.Time `json:"recorded_at"`
}

// Encounter is a clinical visit. EncounterDate is store-owned and fixed at
// creation.
type Encounter struct {
	ID            string    `json:"id"`
	PatientID     string    `json:"patient_id"`
	DoctorID      string    `json:"doctor_id,omitempty"`
	Reason        string    `json:"reason,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	EncounterDate time.Time `json:"encounter_date"`
}
