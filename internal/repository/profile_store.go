package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/alexanderramin/astroveda/internal/db"
	"github.com/alexanderramin/astroveda/internal/domain"
)

// SQLiteProfileStore keeps the finalized profile as JSON under KeyProfile.
type SQLiteProfileStore struct {
	kv *SQLiteSessionStore
}

func NewSQLiteProfileStore(conn db.DBTX) *SQLiteProfileStore {
	return &SQLiteProfileStore{kv: NewSQLiteSessionStore(conn)}
}

func (r *SQLiteProfileStore) Save(ctx context.Context, p domain.UserProfile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding profile: %w", err)
	}
	return r.kv.Set(ctx, KeyProfile, string(data))
}

// Load returns ErrNotFound when no profile has been saved.
func (r *SQLiteProfileStore) Load(ctx context.Context) (*domain.UserProfile, error) {
	raw, err := r.kv.Get(ctx, KeyProfile)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("profile: %w", ErrNotFound)
		}
		return nil, err
	}
	var p domain.UserProfile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, fmt.Errorf("decoding stored profile: %w", err)
	}
	return &p, nil
}

func (r *SQLiteProfileStore) Clear(ctx context.Context) error {
	return r.kv.Delete(ctx, KeyProfile)
}
