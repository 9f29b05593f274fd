package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthvault/internal/logging"
	"healthvault/internal/model"
	"healthvault/internal/repository"
	"healthvault/internal/repository/memory"
	repoMocks "healthvault/internal/repository/mocks"
)

// consentFixture wires a ConsentService over an isolated in-memory store
// with a controllable clock.
type consentFixture struct {
	svc   *consentService
	store *memory.Store
	now   time.Time
}

func newConsentFixture(t *testing.T) *consentFixture {
	t.Helper()
	f := &consentFixture{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	f.store = memory.NewStore(memory.WithClock(func() time.Time { return f.now }))
	f.svc = &consentService{
		repo: f.store.ConsentSessions(),
		log:  logging.Nop(),
		now:  func() time.Time { return f.now },
	}
	return f
}

func (f *consentFixture) advance(d time.Duration) { f.now = f.now.Add(d) }

func TestConsentService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path defaults status to active", func(t *testing.T) {
		f := newConsentFixture(t)

		s, err := f.svc.Create(ctx, CreateConsentInput{
			PatientID: "p1",
			ShareCode: "QX7-29K",
			ExpiresAt: f.now.Add(time.Hour),
		})
		require.NoError(t, err)
		assert.NotEmpty(t, s.ID)
		assert.Equal(t, model.ConsentStatusActive, s.Status)
		assert.Equal(t, f.now, s.CreatedAt)
	})

	t.Run("missing patient id", func(t *testing.T) {
		f := newConsentFixture(t)
		_, err := f.svc.Create(ctx, CreateConsentInput{ShareCode: "QX7", ExpiresAt: f.now.Add(time.Hour)})
		assert.ErrorIs(t, err, ErrPatientIDRequired)
	})

	t.Run("missing share code", func(t *testing.T) {
		f := newConsentFixture(t)
		_, err := f.svc.Create(ctx, CreateConsentInput{PatientID: "p1", ExpiresAt: f.now.Add(time.Hour)})
		assert.ErrorIs(t, err, ErrShareCodeRequired)
	})

	t.Run("expiry in the past", func(t *testing.T) {
		f := newConsentFixture(t)
		_, err := f.svc.Create(ctx, CreateConsentInput{
			PatientID: "p1",
			ShareCode: "QX7",
			ExpiresAt: f.now.Add(-time.Second),
		})
		assert.ErrorIs(t, err, ErrExpiryNotFuture)
	})

	t.Run("expiry exactly now is rejected", func(t *testing.T) {
		f := newConsentFixture(t)
		_, err := f.svc.Create(ctx, CreateConsentInput{
			PatientID: "p1",
			ShareCode: "QX7",
			ExpiresAt: f.now,
		})
		assert.ErrorIs(t, err, ErrExpiryNotFuture)
	})

	t.Run("duplicate share code", func(t *testing.T) {
		f := newConsentFixture(t)
		_, err := f.svc.Create(ctx, CreateConsentInput{
			PatientID: "p1",
			ShareCode: "DUP",
			ExpiresAt: f.now.Add(time.Hour),
		})
		require.NoError(t, err)

		_, err = f.svc.Create(ctx, CreateConsentInput{
			PatientID: "p2",
			ShareCode: "DUP",
			ExpiresAt: f.now.Add(time.Hour),
		})
		assert.ErrorIs(t, err, ErrShareCodeTaken)
	})

	t.Run("repository failure during code check", func(t *testing.T) {
		mRepo := new(repoMocks.MockConsentSessionRepository)
		mRepo.On("FindByShareCode", ctx, "QX7").Return(nil, errors.New("backend down"))

		svc := &consentService{repo: mRepo, log: logging.Nop(), now: time.Now}
		_, err := svc.Create(ctx, CreateConsentInput{
			PatientID: "p1",
			ShareCode: "QX7",
			ExpiresAt: time.Now().Add(time.Hour),
		})
		assert.ErrorContains(t, err, "check share code")
		mRepo.AssertExpectations(t)
	})
}

func TestConsentService_GetByShareCode(t *testing.T) {
	ctx := context.Background()
	f := newConsentFixture(t)

	created, err := f.svc.Create(ctx, CreateConsentInput{
		PatientID: "p1",
		ShareCode: "QX7-29K",
		ExpiresAt: f.now.Add(time.Hour),
	})
	require.NoError(t, err)

	got, err := f.svc.GetByShareCode(ctx, "QX7-29K")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = f.svc.GetByShareCode(ctx, "UNKNOWN")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestConsentService_ListActive(t *testing.T) {
	ctx := context.Background()

	t.Run("excludes expired-by-time session with active status", func(t *testing.T) {
		f := newConsentFixture(t)

		shortLived, err := f.svc.Create(ctx, CreateConsentInput{
			PatientID: "p1",
			ShareCode: "SHORT",
			ExpiresAt: f.now.Add(time.Minute),
		})
		require.NoError(t, err)
		longLived, err := f.svc.Create(ctx, CreateConsentInput{
			PatientID: "p1",
			ShareCode: "LONG",
			ExpiresAt: f.now.Add(time.Hour),
		})
		require.NoError(t, err)

		// Move past the first session's expiry without touching its status.
		f.advance(2 * time.Minute)

		active, err := f.svc.ListActive(ctx, "p1")
		require.NoError(t, err)
		require.Len(t, active, 1)
		assert.Equal(t, longLived.ID, active[0].ID)

		// The persisted status of the lapsed session still reads active.
		stored, err := f.svc.Get(ctx, shortLived.ID)
		require.NoError(t, err)
		assert.Equal(t, model.ConsentStatusActive, stored.Status)
	})

	t.Run("excludes explicitly expired session before its expiry", func(t *testing.T) {
		f := newConsentFixture(t)

		s, err := f.svc.Create(ctx, CreateConsentInput{
			PatientID: "p1",
			ShareCode: "QX7",
			ExpiresAt: f.now.Add(time.Hour),
		})
		require.NoError(t, err)

		found, err := f.svc.Expire(ctx, s.ID)
		require.NoError(t, err)
		assert.True(t, found)

		active, err := f.svc.ListActive(ctx, "p1")
		require.NoError(t, err)
		assert.Empty(t, active)
	})
}

func TestConsentService_Expire(t *testing.T) {
	ctx := context.Background()
	f := newConsentFixture(t)

	s, err := f.svc.Create(ctx, CreateConsentInput{
		PatientID: "p1",
		ShareCode: "QX7",
		ExpiresAt: f.now.Add(time.Hour),
	})
	require.NoError(t, err)

	found, err := f.svc.Expire(ctx, s.ID)
	require.NoError(t, err)
	assert.True(t, found)

	// Idempotent in effect: a second expire still reports true and the
	// status stays expired.
	found, err = f.svc.Expire(ctx, s.ID)
	require.NoError(t, err)
	assert.True(t, found)

	stored, err := f.svc.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ConsentStatusExpired, stored.Status)

	found, err = f.svc.Expire(ctx, "no-such-session")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestConsentService_ExpirePersistsOnlyStatus(t *testing.T) {
	ctx := context.Background()

	mRepo := new(repoMocks.MockConsentSessionRepository)
	status := model.ConsentStatusExpired
	mRepo.On("Update", ctx, "s1", repository.ConsentSessionUpdate{Status: &status}).
		Return(&model.ConsentSession{ID: "s1", Status: status}, nil)

	svc := &consentService{repo: mRepo, log: logging.Nop(), now: time.Now}
	found, err := svc.Expire(ctx, "s1")

	require.NoError(t, err)
	assert.True(t, found)
	mRepo.AssertExpectations(t)
}
