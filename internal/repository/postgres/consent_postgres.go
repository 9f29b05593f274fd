package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"healthvault/internal/model"
	"healthvault/internal/repository"
)

// ConsentSessionPostgres is a PostgreSQL implementation of
// repository.ConsentSessionRepository. It uses database/sql with
// parameterized queries and contains no business logic; share-code lookups
// are served by the unique index on share_code.
type ConsentSessionPostgres struct {
	db *sql.DB
}

// NewConsentSessionPostgres creates a new ConsentSessionPostgres repository.
func NewConsentSessionPostgres(db *sql.DB) *ConsentSessionPostgres {
	return &ConsentSessionPostgres{db: db}
}

var _ repository.ConsentSessionRepository = (*ConsentSessionPostgres)(nil)

const consentColumns = `id, patient_id, doctor_id, share_code, status, expires_at, created_at`

func scanConsent(row *sql.Row) (*model.ConsentSession, error) {
	var s model.ConsentSession
	err := row.Scan(
		&s.ID,
		&s.PatientID,
		&s.DoctorID,
		&s.ShareCode,
		&s.Status,
		&s.ExpiresAt,
		&s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// Create inserts a new session row and returns the stored record. ID and
// CreatedAt are store-assigned here; Status defaults to active.
func (r *ConsentSessionPostgres) Create(ctx context.Context, session *model.ConsentSession) (*model.ConsentSession, error) {
	const q = `
		INSERT INTO consent_sessions (id, patient_id, doctor_id, share_code, status, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + consentColumns

	status := session.Status
	if status == "" {
		status = model.ConsentStatusActive
	}
	row := r.db.QueryRowContext(ctx, q,
		uuid.NewString(),
		session.PatientID,
		session.DoctorID,
		session.ShareCode,
		status,
		session.ExpiresAt,
		time.Now().UTC(),
	)
	out, err := scanConsent(row)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// FindByID fetches a single session by its ID.
func (r *ConsentSessionPostgres) FindByID(ctx context.Context, id string) (*model.ConsentSession, error) {
	const q = `SELECT ` + consentColumns + ` FROM consent_sessions WHERE id = $1`
	return scanConsent(r.db.QueryRowContext(ctx, q, id))
}

// FindByShareCode fetches the session carrying the given share code.
func (r *ConsentSessionPostgres) FindByShareCode(ctx context.Context, code string) (*model.ConsentSession, error) {
	const q = `SELECT ` + consentColumns + ` FROM consent_sessions WHERE share_code = $1`
	return scanConsent(r.db.QueryRowContext(ctx, q, code))
}

// ListByPatient returns the patient's sessions in insertion order.
func (r *ConsentSessionPostgres) ListByPatient(ctx context.Context, patientID string) ([]model.ConsentSession, error) {
	const q = `
		SELECT ` + consentColumns + `
		FROM consent_sessions
		WHERE patient_id = $1
		ORDER BY created_at ASC, id ASC
	`
	rows, err := r.db.QueryContext(ctx, q, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ConsentSession, 0)
	for rows.Next() {
		var s model.ConsentSession
		if err := rows.Scan(
			&s.ID,
			&s.PatientID,
			&s.DoctorID,
			&s.ShareCode,
			&s.Status,
			&s.ExpiresAt,
			&s.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Update merges the provided fields onto the stored row in a single atomic
// statement, so concurrent writers cannot lose updates.
func (r *ConsentSessionPostgres) Update(ctx context.Context, id string, upd repository.ConsentSessionUpdate) (*model.ConsentSession, error) {
	const q = `
		UPDATE consent_sessions
		SET doctor_id  = COALESCE($2, doctor_id),
		    status     = COALESCE($3, status),
		    expires_at = COALESCE($4, expires_at)
		WHERE id = $1
		RETURNING ` + consentColumns
	return scanConsent(r.db.QueryRowContext(ctx, q, id, upd.DoctorID, upd.Status, upd.ExpiresAt))
}

// Delete removes a session by ID and reports whether a row was present.
func (r *ConsentSessionPostgres) Delete(ctx context.Context, id string) (bool, error) {
	const q = `DELETE FROM consent_sessions WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
