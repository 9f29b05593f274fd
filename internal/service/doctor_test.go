package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"healthvault/internal/model"
	"healthvault/internal/repository/memory"
	repoMocks "healthvault/internal/repository/mocks"
	"healthvault/internal/storage"
	storageMocks "healthvault/internal/storage/mocks"
)

func TestDoctorService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path starts unverified", func(t *testing.T) {
		store := memory.NewStore()
		svc := NewDoctorService(store.Doctors(), nil)

		d, err := svc.Create(ctx, CreateDoctorInput{
			UserID:             "u1",
			RegistrationNumber: "MD-2210",
			Specialty:          "cardiology",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, d.ID)
		assert.False(t, d.IsVerified)
	})

	t.Run("missing user id", func(t *testing.T) {
		svc := NewDoctorService(memory.NewStore().Doctors(), nil)
		_, err := svc.Create(ctx, CreateDoctorInput{RegistrationNumber: "MD-2210"})
		assert.ErrorIs(t, err, ErrUserIDRequired)
	})

	t.Run("missing registration number", func(t *testing.T) {
		svc := NewDoctorService(memory.NewStore().Doctors(), nil)
		_, err := svc.Create(ctx, CreateDoctorInput{UserID: "u1"})
		assert.ErrorIs(t, err, ErrRegistrationNumberRequired)
	})

	t.Run("duplicate registration number", func(t *testing.T) {
		store := memory.NewStore()
		svc := NewDoctorService(store.Doctors(), nil)

		_, err := svc.Create(ctx, CreateDoctorInput{UserID: "u1", RegistrationNumber: "MD-2210"})
		require.NoError(t, err)

		_, err = svc.Create(ctx, CreateDoctorInput{UserID: "u2", RegistrationNumber: "MD-2210"})
		assert.ErrorIs(t, err, ErrRegistrationNumberTaken)
	})
}

func TestDoctorService_Verify(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := NewDoctorService(store.Doctors(), nil)

	d, err := svc.Create(ctx, CreateDoctorInput{UserID: "u1", RegistrationNumber: "MD-2210"})
	require.NoError(t, err)

	verified, err := svc.Verify(ctx, d.ID)
	require.NoError(t, err)
	assert.True(t, verified.IsVerified)

	_, err = svc.Verify(ctx, "no-such-doctor")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDoctorService_AttachVerificationDocument(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path records the storage key", func(t *testing.T) {
		store := memory.NewStore()
		mStore := new(storageMocks.MockStorage)
		svc := NewDoctorService(store.Doctors(), mStore)

		d, err := svc.Create(ctx, CreateDoctorInput{UserID: "u1", RegistrationNumber: "MD-2210"})
		require.NoError(t, err)

		mStore.On("Put", ctx, mock.AnythingOfType("string"), mock.Anything, mock.MatchedBy(func(opt storage.PutOptions) bool {
			return opt.ContentType == "application/pdf" && opt.Size == 42
		})).Return(storage.ObjectInfo{}, nil)

		updated, err := svc.AttachVerificationDocument(ctx, d.ID, strings.NewReader("pdf-bytes"), "license.pdf", "application/pdf", 42)
		require.NoError(t, err)
		require.Len(t, updated.VerificationDocuments, 1)
		key := updated.VerificationDocuments[0]
		assert.True(t, strings.HasPrefix(key, "verification/"+d.ID+"/"))
		assert.True(t, strings.HasSuffix(key, ".pdf"))
		mStore.AssertExpectations(t)
	})

	t.Run("nil reader", func(t *testing.T) {
		svc := NewDoctorService(memory.NewStore().Doctors(), nil)
		_, err := svc.AttachVerificationDocument(ctx, "d1", nil, "license.pdf", "application/pdf", 42)
		assert.ErrorIs(t, err, ErrReaderNil)
	})

	t.Run("unknown doctor", func(t *testing.T) {
		svc := NewDoctorService(memory.NewStore().Doctors(), nil)
		_, err := svc.AttachVerificationDocument(ctx, "d1", strings.NewReader("x"), "license.pdf", "application/pdf", 1)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("upload failure", func(t *testing.T) {
		store := memory.NewStore()
		mStore := new(storageMocks.MockStorage)
		svc := NewDoctorService(store.Doctors(), mStore)

		d, err := svc.Create(ctx, CreateDoctorInput{UserID: "u1", RegistrationNumber: "MD-2210"})
		require.NoError(t, err)

		mStore.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return(storage.ObjectInfo{}, errors.New("connection refused"))

		_, err = svc.AttachVerificationDocument(ctx, d.ID, strings.NewReader("x"), "license.pdf", "application/pdf", 1)
		assert.ErrorContains(t, err, "upload to storage")
		mStore.AssertExpectations(t)
	})

	t.Run("rollback deletes the upload when the record update fails", func(t *testing.T) {
		mRepo := new(repoMocks.MockDoctorRepository)
		mStore := new(storageMocks.MockStorage)
		svc := NewDoctorService(mRepo, mStore)

		mRepo.On("FindByID", ctx, "d1").Return(&model.Doctor{ID: "d1"}, nil)
		mRepo.On("Update", ctx, "d1", mock.AnythingOfType("repository.DoctorUpdate")).
			Return(nil, errors.New("row locked"))
		mStore.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return(storage.ObjectInfo{}, nil)
		mStore.On("Delete", ctx, mock.AnythingOfType("string")).Return(nil)

		_, err := svc.AttachVerificationDocument(ctx, "d1", strings.NewReader("x"), "license.pdf", "application/pdf", 1)
		assert.ErrorContains(t, err, "record update failed")
		mStore.AssertExpectations(t)
		mRepo.AssertExpectations(t)
	})

	t.Run("rollback failure surfaces both errors", func(t *testing.T) {
		mRepo := new(repoMocks.MockDoctorRepository)
		mStore := new(storageMocks.MockStorage)
		svc := NewDoctorService(mRepo, mStore)

		mRepo.On("FindByID", ctx, "d1").Return(&model.Doctor{ID: "d1"}, nil)
		mRepo.On("Update", ctx, "d1", mock.AnythingOfType("repository.DoctorUpdate")).
			Return(nil, errors.New("row locked"))
		mStore.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).
			Return(storage.ObjectInfo{}, nil)
		mStore.On("Delete", ctx, mock.AnythingOfType("string")).Return(errors.New("bucket gone"))

		_, err := svc.AttachVerificationDocument(ctx, "d1", strings.NewReader("x"), "license.pdf", "application/pdf", 1)
		assert.ErrorContains(t, err, "rollback delete failed")
	})
}

func TestDoctorService_PresignVerificationDocument(t *testing.T) {
	ctx := context.Background()

	t.Run("returns url for attached document", func(t *testing.T) {
		store := memory.NewStore()
		mStore := new(storageMocks.MockStorage)
		svc := NewDoctorService(store.Doctors(), mStore)

		d, err := svc.Create(ctx, CreateDoctorInput{UserID: "u1", RegistrationNumber: "MD-2210"})
		require.NoError(t, err)

		mStore.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).Return(storage.ObjectInfo{}, nil)
		attached, err := svc.AttachVerificationDocument(ctx, d.ID, strings.NewReader("x"), "license.pdf", "application/pdf", 1)
		require.NoError(t, err)
		key := attached.VerificationDocuments[0]

		mStore.On("PresignGet", ctx, key, 15*time.Minute).Return("https://example.test/"+key, nil)

		url, err := svc.PresignVerificationDocument(ctx, d.ID, key, 15*time.Minute)
		require.NoError(t, err)
		assert.Contains(t, url, key)
	})

	t.Run("rejects a key the doctor does not own", func(t *testing.T) {
		store := memory.NewStore()
		svc := NewDoctorService(store.Doctors(), nil)

		d, err := svc.Create(ctx, CreateDoctorInput{UserID: "u1", RegistrationNumber: "MD-2210"})
		require.NoError(t, err)

		_, err = svc.PresignVerificationDocument(ctx, d.ID, "verification/other/doc.pdf", time.Minute)
		assert.ErrorIs(t, err, ErrDocumentNotAttached)
	})
}
