package database

import (
	"context"
	"fmt"
)

// Logical layout: employees, punches (raw, append-mostly), uploads (batch
// provenance) and daily_attendance (derived cache). Punch uniqueness and the
// upload cascade are enforced here so application bugs cannot violate them.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS employees (
		id              TEXT PRIMARY KEY,
		name            TEXT NOT NULL,
		default_in_time TEXT,
		created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS uploads (
		id               UUID PRIMARY KEY,
		filename         TEXT NOT NULL,
		records_inserted INTEGER NOT NULL DEFAULT 0,
		records_skipped  INTEGER NOT NULL DEFAULT 0,
		records_empty    INTEGER NOT NULL DEFAULT 0,
		uploaded_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS punches (
		employee_id TEXT NOT NULL REFERENCES employees(id),
		date        DATE NOT NULL,
		punch_time  TEXT NOT NULL,
		source      TEXT NOT NULL,
		upload_id   UUID REFERENCES uploads(id),
		PRIMARY KEY (employee_id, date, punch_time)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_punches_upload ON punches(upload_id)`,
	`CREATE TABLE IF NOT EXISTS daily_attendance (
		employee_id TEXT NOT NULL REFERENCES employees(id),
		date        DATE NOT NULL,
		punch_times TEXT NOT NULL,
		upload_ids  TEXT[] NOT NULL DEFAULT '{}',
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (employee_id, date)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_daily_attendance_date ON daily_attendance(date)`,
}

// Migrate creates the schema on startup. Statements are idempotent.
func (db *DB) Migrate(ctx context.Context) error {
	for _, stmt := range migrations {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply migration: %w", err)
		}
	}
	return nil
}
