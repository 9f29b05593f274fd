// Package memory is the in-memory implementation of the repository
// interfaces. It is the baseline backend: all operations are synchronous
// read/modify/write against process-local collections, safe for concurrent
// callers. Records are stored and returned by value, so a reader never
// observes a partially written record and callers cannot mutate stored state
// through a returned pointer.
package memory

import (
	"sync"
	"time"

	"healthvault/internal/model"
	"healthvault/internal/repository"
)

// collection is generic keyed storage with insertion-order iteration. Every
// mutation runs under the write lock, which serializes per-record
// read-modify-write and rules out lost updates between concurrent writers.
type collection[T any] struct {
	mu    sync.RWMutex
	items map[string]T
	order []string
}

func newCollection[T any]() *collection[T] {
	return &collection[T]{items: make(map[string]T)}
}

func (c *collection[T]) insert(id string, v T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[id] = v
	c.order = append(c.order, id)
}

func (c *collection[T]) get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.items[id]
	return v, ok
}

// mutate applies fn to the stored value under the write lock and stores the
// result. It reports false when the id is absent, leaving the collection
// unchanged.
func (c *collection[T]) mutate(id string, fn func(T) T) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.items[id]
	if !ok {
		var zero T
		return zero, false
	}
	v = fn(v)
	c.items[id] = v
	return v, true
}

func (c *collection[T]) remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[id]; !ok {
		return false
	}
	delete(c.items, id)
	for i, oid := range c.order {
		if oid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

// list returns a snapshot of all values in insertion order.
func (c *collection[T]) list() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.items[id])
	}
	return out
}

func (c *collection[T]) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Store bundles the in-memory repositories behind repository.Store. Each
// entity collection is exclusively owned by its repository; nothing outside
// this package touches the collections directly.
type Store struct {
	users      *userRepo
	patients   *patientRepo
	doctors    *doctorRepo
	records    *medicalRecordRepo
	vitals     *vitalRepo
	consents   *consentSessionRepo
	encounters *encounterRepo
	audits     *auditLogRepo
}

var _ repository.Store = (*Store)(nil)

// Option configures a Store.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock overrides the time source used to stamp store-owned timestamp
// fields. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// NewStore constructs an isolated in-memory store. There is no package-level
// instance; callers own the lifecycle and inject the store where needed.
func NewStore(opts ...Option) *Store {
	o := options{now: func() time.Time { return time.Now().UTC() }}
	for _, opt := range opts {
		opt(&o)
	}
	return &Store{
		users:      &userRepo{c: newCollection[model.User](), now: o.now},
		patients:   &patientRepo{c: newCollection[model.Patient](), now: o.now},
		doctors:    &doctorRepo{c: newCollection[model.Doctor](), now: o.now},
		records:    &medicalRecordRepo{c: newCollection[model.MedicalRecord](), now: o.now},
		vitals:     &vitalRepo{c: newCollection[model.Vital](), now: o.now},
		consents:   newConsentSessionRepo(o.now),
		encounters: &encounterRepo{c: newCollection[model.Encounter](), now: o.now},
		audits:     &auditLogRepo{c: newCollection[model.AuditLog](), now: o.now},
	}
}

func (s *Store) Users() repository.UserRepository                     { return s.users }
func (s *Store) Patients() repository.PatientRepository               { return s.patients }
func (s *Store) Doctors() repository.DoctorRepository                 { return s.doctors }
func (s *Store) MedicalRecords() repository.MedicalRecordRepository   { return s.records }
func (s *Store) Vitals() repository.VitalRepository                   { return s.vitals }
func (s *Store) ConsentSessions() repository.ConsentSessionRepository { return s.consents }
func (s *Store) Encounters() repository.EncounterRepository           { return s.encounters }
func (s *Store) AuditLogs() repository.AuditLogRepository             { return s.audits }
