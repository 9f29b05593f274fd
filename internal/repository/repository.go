package repository

import "errors"

// Package repository contains the data-access layer abstractions: one
// interface per entity, plus the Store aggregate. Implementations live in
// subpackages (memory, postgres) inside this directory.
//
// Conventions shared by all implementations:
//   - Create assigns the identity (an opaque, globally unique string) and the
//     store-owned timestamp fields; caller-supplied values for those fields
//     are ignored. The returned record is complete, defaults applied.
//   - Lookup misses return ErrNotFound, never a panic; absence is a routine
//     outcome. Infrastructure failures are returned wrapped and are
//     distinguishable from ErrNotFound via errors.Is.
//   - Update merges only the fields set on the update struct (shallow merge)
//     and returns the updated record, or ErrNotFound.
//   - Delete reports whether a record was actually present and removed.

// ErrNotFound is returned by lookups and updates when no record with the
// requested id (or code) exists.
var ErrNotFound = errors.New("record not found")

// Store aggregates the per-entity repositories behind one constructed,
// dependency-injected object. Lifecycle is owned by the process entry point;
// there is no package-level singleton.
type Store interface {
	Users() UserRepository
	Patients() PatientRepository
	Doctors() DoctorRepository
	MedicalRecords() MedicalRecordRepository
	Vitals() VitalRepository
	ConsentSessions() ConsentSessionRepository
	Encounters() EncounterRepository
	AuditLogs() AuditLogRepository
}
