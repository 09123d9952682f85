package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Every statement is safe to re-run.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS session_kv (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS payments (
		id         TEXT PRIMARY KEY,
		tier       TEXT NOT NULL CHECK(tier IN ('basic','premium')),
		order_id   TEXT NOT NULL,
		payment_id TEXT NOT NULL UNIQUE,
		amount     TEXT NOT NULL,
		currency   TEXT NOT NULL DEFAULT 'INR',
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_payments_created_at ON payments(created_at)`,

	// Orders opened by checkout. A confirmation is only trusted for the
	// tier and amount its order was opened with.
	`CREATE TABLE IF NOT EXISTS orders (
		id         TEXT PRIMARY KEY,
		tier       TEXT NOT NULL CHECK(tier IN ('basic','premium')),
		amount     TEXT NOT NULL,
		currency   TEXT NOT NULL DEFAULT 'INR',
		created_at TEXT NOT NULL
	)`,
}
