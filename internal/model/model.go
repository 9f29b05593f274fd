package model

// Package model contains the domain entities of the health-records platform.
// These are pure data structures with no database-specific dependencies or
// tags beyond JSON; they can be used across layers (service, repository,
// storage) without coupling to persistence.
