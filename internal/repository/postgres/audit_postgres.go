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

// AuditLogPostgres is a PostgreSQL implementation of
// repository.AuditLogRepository. The interface carries no update or delete,
// so the trail stays append-only all the way down.
type AuditLogPostgres struct {
	db *sql.DB
}

// NewAuditLogPostgres creates a new AuditLogPostgres repository.
func NewAuditLogPostgres(db *sql.DB) *AuditLogPostgres {
	return &AuditLogPostgres{db: db}
}

var _ repository.AuditLogRepository = (*AuditLogPostgres)(nil)

const auditColumns = `id, patient_id, actor_id, action, details, logged_at`

// Append inserts a new audit row and returns the stored entry. ID and
// Timestamp are store-assigned here.
func (r *AuditLogPostgres) Append(ctx context.Context, entry *model.AuditLog) (*model.AuditLog, error) {
	const q = `
		INSERT INTO audit_logs (id, patient_id, actor_id, action, details, logged_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + auditColumns

	row := r.db.QueryRowContext(ctx, q,
		uuid.NewString(),
		entry.PatientID,
		entry.ActorID,
		entry.Action,
		[]byte(entry.Details),
		time.Now().UTC(),
	)
	return scanAudit(row)
}

// FindByID fetches a single audit entry by its ID.
func (r *AuditLogPostgres) FindByID(ctx context.Context, id string) (*model.AuditLog, error) {
	const q = `SELECT ` + auditColumns + ` FROM audit_logs WHERE id = $1`
	return scanAudit(r.db.QueryRowContext(ctx, q, id))
}

// ListByPatient returns the patient's entries most-recent-first, truncated
// to limit. The id tiebreak keeps the order deterministic for entries
// sharing a timestamp.
func (r *AuditLogPostgres) ListByPatient(ctx context.Context, patientID string, limit int) ([]model.AuditLog, error) {
	const q = `
		SELECT ` + auditColumns + `
		FROM audit_logs
		WHERE patient_id = $1
		ORDER BY logged_at DESC, id DESC
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, q, patientID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.AuditLog, 0)
	for rows.Next() {
		var (
			e       model.AuditLog
			details []byte
		)
		if err := rows.Scan(
			&e.ID,
			&e.PatientID,
			&e.ActorID,
			&e.Action,
			&details,
			&e.Timestamp,
		); err != nil {
			return nil, err
		}
		e.Details = details
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func scanAudit(row *sql.Row) (*model.AuditLog, error) {
	var (
		e       model.AuditLog
		details []byte
	)
	err := row.Scan(
		&e.ID,
		&e.PatientID,
		&e.ActorID,
		&e.Action,
		&details,
		&e.Timestamp,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	e.Details = details
	return &e, nil
}
