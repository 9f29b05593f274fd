package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthvault/internal/model"
	"healthvault/internal/repository"
)

var auditCols = []string{"id", "patient_id", "actor_id", "action", "details", "logged_at"}

func TestAuditLogPostgres_Append(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewAuditLogPostgres(db)
	ctx := context.Background()

	details := []byte(`{"record_id":"r1"}`)
	now := time.Now().UTC()

	rows := sqlmock.NewRows(auditCols).
		AddRow("gen-id", "p1", "doc-1", "record.viewed", details, now)

	mock.ExpectQuery("INSERT INTO audit_logs").
		WithArgs(sqlmock.AnyArg(), "p1", "doc-1", "record.viewed", details, sqlmock.AnyArg()).
		WillReturnRows(rows)

	got, err := repo.Append(ctx, &model.AuditLog{
		PatientID: "p1",
		ActorID:   "doc-1",
		Action:    "record.viewed",
		Details:   json.RawMessage(details),
	})

	assert.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "gen-id", got.ID)
	assert.Equal(t, now, got.Timestamp)
	assert.JSONEq(t, `{"record_id":"r1"}`, string(got.Details))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditLogPostgres_FindByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewAuditLogPostgres(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM audit_logs WHERE id = ?").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	got, err := repo.FindByID(ctx, "missing")

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, repository.ErrNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditLogPostgres_ListByPatient(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewAuditLogPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	rows := sqlmock.NewRows(auditCols).
		AddRow("a3", "p1", "", "consent.created", []byte(`{}`), now).
		AddRow("a2", "p1", "", "record.viewed", []byte(`{}`), now.Add(-time.Second)).
		AddRow("a1", "p1", "", "record.created", []byte(`{}`), now.Add(-2*time.Second))

	mock.ExpectQuery("SELECT (.+) FROM audit_logs WHERE patient_id = ?").
		WithArgs("p1", 100).
		WillReturnRows(rows)

	got, err := repo.ListByPatient(ctx, "p1", 100)

	assert.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "consent.created", got[0].Action)
	assert.Equal(t, "record.created", got[2].Action)
	assert.NoError(t, mock.ExpectationsWereMet())
}
