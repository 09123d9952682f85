package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/astroveda/internal/db"
)

// SQLiteSessionStore implements SessionStore over the session_kv table.
type SQLiteSessionStore struct {
	db db.DBTX
}

func NewSQLiteSessionStore(conn db.DBTX) *SQLiteSessionStore {
	return &SQLiteSessionStore{db: conn}
}

func (r *SQLiteSessionStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM session_kv WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("session key %s: %w", key, ErrNotFound)
		}
		return "", fmt.Errorf("reading session key %s: %w", key, err)
	}
	return value, nil
}

// GetMany returns the keys that exist; missing keys are simply absent from
// the map.
func (r *SQLiteSessionStore) GetMany(ctx context.Context, keys ...string) (map[string]string, error) {
	out := make(map[string]string, len(keys))
	if len(keys) == 0 {
		return out, nil
	}

	query := `SELECT key, value FROM session_kv WHERE key IN (` + placeholders(len(keys)) + `)`
	rows, err := r.db.QueryContext(ctx, query, toArgs(keys)...)
	if err != nil {
		return nil, fmt.Errorf("reading session keys: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("scanning session key: %w", err)
		}
		out[k] = v
	}
	return out, rows.Err()
}

func (r *SQLiteSessionStore) Set(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO session_kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, nowUTC())
	if err != nil {
		return fmt.Errorf("writing session key %s: %w", key, err)
	}
	return nil
}

// Delete removes keys. Deleting a missing key is not an error.
func (r *SQLiteSessionStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	query := `DELETE FROM session_kv WHERE key IN (` + placeholders(len(keys)) + `)`
	if _, err := r.db.ExecContext(ctx, query, toArgs(keys)...); err != nil {
		return fmt.Errorf("deleting session keys: %w", err)
	}
	return nil
}
