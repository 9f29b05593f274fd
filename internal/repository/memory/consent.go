package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"healthvault/internal/model"
	"healthvault/internal/repository"
)

// consentSessionRepo does not reuse the generic collection: share-code
// lookup is the hot path of the sharing flow, so it keeps a shareCode → id
// index maintained under the same lock as the primary map. Observable
// behavior matches a linear scan exactly.
type consentSessionRepo struct {
	mu     sync.RWMutex
	items  map[string]model.ConsentSession
	order  []string
	byCode map[string]string
	now    func() time.Time
}

var _ repository.ConsentSessionRepository = (*consentSessionRepo)(nil)

func newConsentSessionRepo(now func() time.Time) *consentSessionRepo {
	return &consentSessionRepo{
		items:  make(map[string]model.ConsentSession),
		byCode: make(map[string]string),
		now:    now,
	}
}

// Create stores a new session. ID and CreatedAt are store-assigned; Status
// defaults to active when not supplied. ExpiresAt and ShareCode are taken
// as given; validating a future expiry and a fresh code is the service
// layer's job.
func (r *consentSessionRepo) Create(ctx context.Context, session *model.ConsentSession) (*model.ConsentSession, error) {
	out := *session
	out.ID = uuid.NewString()
	out.CreatedAt = r.now()
	if out.Status == "" {
		out.Status = model.ConsentStatusActive
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[out.ID] = out
	r.order = append(r.order, out.ID)
	// First writer wins on a duplicate code, matching first-match scan
	// semantics.
	if _, taken := r.byCode[out.ShareCode]; !taken {
		r.byCode[out.ShareCode] = out.ID
	}
	return &out, nil
}

func (r *consentSessionRepo) FindByID(ctx context.Context, id string) (*model.ConsentSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &s, nil
}

func (r *consentSessionRepo) FindByShareCode(ctx context.Context, code string) (*model.ConsentSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byCode[code]
	if !ok {
		return nil, repository.ErrNotFound
	}
	s := r.items[id]
	return &s, nil
}

// ListByPatient returns the patient's sessions in insertion order, without
// any time-based filtering.
func (r *consentSessionRepo) ListByPatient(ctx context.Context, patientID string) ([]model.ConsentSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.ConsentSession, 0)
	for _, id := range r.order {
		if s := r.items[id]; s.PatientID == patientID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *consentSessionRepo) Update(ctx context.Context, id string, upd repository.ConsentSessionUpdate) (*model.ConsentSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if upd.DoctorID != nil {
		s.DoctorID = *upd.DoctorID
	}
	if upd.Status != nil {
		s.Status = *upd.Status
	}
	if upd.ExpiresAt != nil {
		s.ExpiresAt = *upd.ExpiresAt
	}
	r.items[id] = s
	return &s, nil
}

func (r *consentSessionRepo) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.items[id]
	if !ok {
		return false, nil
	}
	delete(r.items, id)
	if r.byCode[s.ShareCode] == id {
		delete(r.byCode, s.ShareCode)
	}
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true, nil
}
