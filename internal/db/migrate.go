package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all SQLite schema migrations.
func Migrate(db *sql.DB) error {
	return run(db, migrations)
}

// MigratePostgres runs all PostgreSQL schema migrations.
func MigratePostgres(db *sql.DB) error {
	return run(db, postgresMigrations)
}

func run(db *sql.DB, stmts []string) error {
	for i, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate duplicate column errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if isDuplicateColumn(err) {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

func isDuplicateColumn(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "duplicate column name") || // sqlite
		(strings.Contains(msg, "column") && strings.Contains(msg, "already exists")) // postgres
}

// kv holds the three reading-plan documents (start date, progress, notes)
// as opaque strings under fixed keys.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS kv (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL
	)`,
	`ALTER TABLE kv ADD COLUMN updated_at TEXT NOT NULL DEFAULT ''`,
}

var postgresMigrations = []string{
	`CREATE TABLE IF NOT EXISTS kv (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL
	)`,
	`ALTER TABLE kv ADD COLUMN IF NOT EXISTS updated_at TIMESTAMPTZ NOT NULL DEFAULT now()`,
}
