package service

import "errors"

// Package service contains the use cases of the health-records platform:
// the consent-session lifecycle, the audit trail, and the thin entity CRUD
// around them. Services validate input, enforce write-time uniqueness
// guards, and translate repository misses into the sentinels below; they
// contain no persistence logic.

// Sentinel errors shared across services. Lookup misses surface as
// ErrNotFound; infrastructure failures are wrapped and stay distinguishable
// via errors.Is.
var (
	ErrIDRequired        = errors.New("id is required")
	ErrPatientIDRequired = errors.New("patient id is required")
	ErrNotFound          = errors.New("record not found")
)
