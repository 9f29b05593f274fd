package migration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_table_users",
		SQL: `CREATE TABLE IF NOT EXISTS users (
  id          UUID        PRIMARY KEY,
  phone       TEXT        NOT NULL,
  name        TEXT        NOT NULL DEFAULT '',
  is_verified BOOLEAN     NOT NULL DEFAULT FALSE,
  created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_patients",
		SQL: `CREATE TABLE IF NOT EXISTS patients (
  id            UUID        PRIMARY KEY,
  user_id       TEXT        NOT NULL,
  date_of_birth TIMESTAMPTZ,
  blood_group   TEXT        NOT NULL DEFAULT '',
  created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_doctors",
		SQL: `CREATE TABLE IF NOT EXISTS doctors (
  id                     UUID        PRIMARY KEY,
  user_id                TEXT        NOT NULL,
  registration_number    TEXT        NOT NULL,
  specialty              TEXT        NOT NULL DEFAULT '',
  is_verified            BOOLEAN     NOT NULL DEFAULT FALSE,
  verification_documents TEXT[]      NOT NULL DEFAULT '{}',
  created_at             TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_unique_index_doctors_registration_number",
		SQL:  `CREATE UNIQUE INDEX IF NOT EXISTS idx_doctors_registration_number ON doctors (registration_number);`,
	},
	{
		Name: "create_table_medical_records",
		SQL: `CREATE TABLE IF NOT EXISTS medical_records (
  id          UUID        PRIMARY KEY,
  patient_id  TEXT        NOT NULL,
  doctor_id   TEXT        NOT NULL DEFAULT '',
  title       TEXT        NOT NULL,
  notes       TEXT        NOT NULL DEFAULT '',
  record_date TIMESTAMPTZ NOT NULL,
  created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_medical_records_patient_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_medical_records_patient_id ON medical_records (patient_id, record_date DESC);`,
	},
	{
		Name: "create_table_vitals",
		SQL: `CREATE TABLE IF NOT EXISTS vitals (
  id          UUID        PRIMARY KEY,
  patient_id  TEXT        NOT NULL,
  type        TEXT        NOT NULL,
  value       TEXT        NOT NULL,
  unit        TEXT        NOT NULL DEFAULT '',
  source      TEXT        NOT NULL DEFAULT 'patient',
  recorded_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_vitals_patient_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_vitals_patient_id ON vitals (patient_id, recorded_at DESC);`,
	},
	{
		Name: "create_table_consent_sessions",
		SQL: `CREATE TABLE IF NOT EXISTS consent_sessions (
  id         UUID        PRIMARY KEY,
  patient_id TEXT        NOT NULL,
  doctor_id  TEXT        NOT NULL DEFAULT '',
  share_code TEXT        NOT NULL,
  status     TEXT        NOT NULL DEFAULT 'active',
  expires_at TIMESTAMPTZ NOT NULL,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_unique_index_consent_sessions_share_code",
		SQL:  `CREATE UNIQUE INDEX IF NOT EXISTS idx_consent_sessions_share_code ON consent_sessions (share_code);`,
	},
	{
		Name: "create_index_consent_sessions_patient_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_consent_sessions_patient_id ON consent_sessions (patient_id, created_at ASC);`,
	},
	{
		Name: "create_table_encounters",
		SQL: `CREATE TABLE IF NOT EXISTS encounters (
  id             UUID        PRIMARY KEY,
  patient_id     TEXT        NOT NULL,
  doctor_id      TEXT        NOT NULL DEFAULT '',
  reason         TEXT        NOT NULL DEFAULT '',
  notes          TEXT        NOT NULL DEFAULT '',
  encounter_date TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_audit_logs",
		SQL: `CREATE TABLE IF NOT EXISTS audit_logs (
  id         UUID        PRIMARY KEY,
  patient_id TEXT        NOT NULL,
  actor_id   TEXT        NOT NULL DEFAULT '',
  action     TEXT        NOT NULL,
  details    JSONB,
  logged_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_audit_logs_patient_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_audit_logs_patient_id ON audit_logs (patient_id, logged_at DESC);`,
	},
}

// EnsureMigrated checks whether the consent_sessions sentinel table exists
// and runs the full step list if it does not.
func EnsureMigrated(ctx context.Context, db *sql.DB, dbHost string) error {
	start := time.Now()

	var exists bool
	if err := db.QueryRowContext(ctx, "SELECT to_regclass('public.consent_sessions') IS NOT NULL").Scan(&exists); err != nil {
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		logJSON(map[string]any{
			"component":   "database",
			"event":       "db_migration_skip",
			"msg":         "schema already exists, skipping migration",
			"db_host":     dbHost,
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return nil
	}

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			logJSON(map[string]any{
				"component":      "database",
				"event":          "db_migration_failed",
				"level":          "error",
				"migration_step": step.Name,
				"error_message":  err.Error(),
				"db_host":        dbHost,
			})
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}
		logJSON(map[string]any{
			"component":        "database",
			"event":            "db_migration_step",
			"migration_step":   step.Name,
			"db_host":          dbHost,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		})
	}

	logJSON(map[string]any{
		"component":   "database",
		"event":       "db_migration_success",
		"db_host":     dbHost,
		"duration_ms": time.Since(start).Milliseconds(),
	})
	return nil
}

func logJSON(data map[string]any) {
	data["ts"] = time.Now().UTC().Format(time.RFC3339Nano)
	if _, ok := data["level"]; !ok {
		data["level"] = "info"
	}

	b, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to marshal migration log: %v", err)
		return
	}
	log.SetFlags(0)
	log.Println(string(b))
}
