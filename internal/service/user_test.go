package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthvault/internal/repository"
	"healthvault/internal/repository/memory"
)

func TestUserService(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := NewUserService(store.Users())

	t.Run("register and look up by phone", func(t *testing.T) {
		u, err := svc.Register(ctx, "+6281200001111", "Rani")
		require.NoError(t, err)
		assert.NotEmpty(t, u.ID)
		assert.False(t, u.IsVerified)

		byPhone, err := svc.GetByPhone(ctx, "+6281200001111")
		require.NoError(t, err)
		assert.Equal(t, u.ID, byPhone.ID)
	})

	t.Run("register without phone", func(t *testing.T) {
		_, err := svc.Register(ctx, "", "Rani")
		assert.ErrorIs(t, err, ErrPhoneRequired)
	})

	t.Run("verify flips the flag only", func(t *testing.T) {
		u, err := svc.Register(ctx, "+6281200002222", "Budi")
		require.NoError(t, err)

		verified, err := svc.Verify(ctx, u.ID)
		require.NoError(t, err)
		assert.True(t, verified.IsVerified)
		assert.Equal(t, "Budi", verified.Name)
		assert.Equal(t, u.CreatedAt, verified.CreatedAt)
	})

	t.Run("update merges supplied fields", func(t *testing.T) {
		u, err := svc.Register(ctx, "+6281200003333", "Sari")
		require.NoError(t, err)

		name := "Sari W."
		updated, err := svc.Update(ctx, u.ID, repository.UserUpdate{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "Sari W.", updated.Name)
		assert.Equal(t, u.Phone, updated.Phone)
	})

	t.Run("not found maps to service sentinel", func(t *testing.T) {
		_, err := svc.Get(ctx, "no-such-user")
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = svc.Update(ctx, "no-such-user", repository.UserUpdate{})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete reports presence", func(t *testing.T) {
		u, err := svc.Register(ctx, "+6281200004444", "Andi")
		require.NoError(t, err)

		ok, err := svc.Delete(ctx, u.ID)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = svc.Delete(ctx, u.ID)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestPatientService(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := NewPatientService(store.Patients())

	t.Run("create and look up by user id", func(t *testing.T) {
		p, err := svc.Create(ctx, CreatePatientInput{UserID: "u1", BloodGroup: "O+"})
		require.NoError(t, err)
		assert.NotEmpty(t, p.ID)

		byUser, err := svc.GetByUserID(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, p.ID, byUser.ID)
	})

	t.Run("create without user id", func(t *testing.T) {
		_, err := svc.Create(ctx, CreatePatientInput{BloodGroup: "O+"})
		assert.ErrorIs(t, err, ErrUserIDRequired)
	})

	t.Run("update blood group", func(t *testing.T) {
		p, err := svc.Create(ctx, CreatePatientInput{UserID: "u2", BloodGroup: "A+"})
		require.NoError(t, err)

		group := "AB+"
		updated, err := svc.Update(ctx, p.ID, repository.PatientUpdate{BloodGroup: &group})
		require.NoError(t, err)
		assert.Equal(t, "AB+", updated.BloodGroup)
		assert.Equal(t, p.UserID, updated.UserID)
	})
}
