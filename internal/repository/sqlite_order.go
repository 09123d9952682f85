package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/astroveda/internal/db"
	"github.com/alexanderramin/astroveda/internal/domain"
	"github.com/shopspring/decimal"
)

// SQLiteOrderRepo implements OrderRepo over the orders table.
type SQLiteOrderRepo struct {
	db db.DBTX
}

func NewSQLiteOrderRepo(conn db.DBTX) *SQLiteOrderRepo {
	return &SQLiteOrderRepo{db: conn}
}

func (r *SQLiteOrderRepo) CreateOrder(ctx context.Context, o *domain.Order) error {
	query := `INSERT INTO orders (id, tier, amount, currency, created_at) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		o.ID,
		string(o.Tier),
		o.Amount.String(),
		o.Currency,
		o.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting order: %w", err)
	}
	return nil
}

func (r *SQLiteOrderRepo) FindOrder(ctx context.Context, id string) (*domain.Order, error) {
	query := `SELECT id, tier, amount, currency, created_at FROM orders WHERE id = ?`

	var o domain.Order
	var tier, amount, createdAt string
	err := r.db.QueryRowContext(ctx, query, id).Scan(&o.ID, &tier, &amount, &o.Currency, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("order %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("finding order: %w", err)
	}

	o.Tier = domain.Tier(tier)
	if o.Amount, err = decimal.NewFromString(amount); err != nil {
		return nil, fmt.Errorf("parsing amount for order %s: %w", id, err)
	}
	if o.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at for order %s: %w", id, err)
	}
	return &o, nil
}
