package repository

import (
	"context"

	"github.com/alexanderramin/astroveda/internal/domain"
)

// SessionStore is a string key/value store that outlives the process.
type SessionStore interface {
	Get(ctx context.Context, key string) (string, error)
	GetMany(ctx context.Context, keys ...string) (map[string]string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
}

type PaymentRepo interface {
	Create(ctx context.Context, p *domain.Payment) error
	ListRecent(ctx context.Context, limit int) ([]*domain.Payment, error)
}

// OrderRepo holds checkout orders. FindOrder returns ErrNotFound for an id
// that was never opened.
type OrderRepo interface {
	CreateOrder(ctx context.Context, o *domain.Order) error
	FindOrder(ctx context.Context, id string) (*domain.Order, error)
}

// ProfileStore holds the single finalized profile for this device.
type ProfileStore interface {
	Save(ctx context.Context, p domain.UserProfile) error
	Load(ctx context.Context) (*domain.UserProfile, error)
	Clear(ctx context.Context) error
}
