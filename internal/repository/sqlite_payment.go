package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/astroveda/internal/db"
	"github.com/alexanderramin/astroveda/internal/domain"
	"github.com/shopspring/decimal"
)

// SQLitePaymentRepo implements PaymentRepo over the payments ledger.
type SQLitePaymentRepo struct {
	db db.DBTX
}

func NewSQLitePaymentRepo(conn db.DBTX) *SQLitePaymentRepo {
	return &SQLitePaymentRepo{db: conn}
}

func (r *SQLitePaymentRepo) Create(ctx context.Context, p *domain.Payment) error {
	query := `INSERT INTO payments (id, tier, order_id, payment_id, amount, currency, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		string(p.Tier),
		p.OrderID,
		p.PaymentID,
		p.Amount.String(),
		p.Currency,
		p.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting payment: %w", err)
	}
	return nil
}

// ListRecent returns up to limit payments, newest first.
func (r *SQLitePaymentRepo) ListRecent(ctx context.Context, limit int) ([]*domain.Payment, error) {
	query := `SELECT id, tier, order_id, payment_id, amount, currency, created_at
		FROM payments ORDER BY created_at DESC, rowid DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing payments: %w", err)
	}
	defer rows.Close()

	var out []*domain.Payment
	for rows.Next() {
		var p domain.Payment
		var tier, amount, createdAt string
		if err := rows.Scan(&p.ID, &tier, &p.OrderID, &p.PaymentID, &amount, &p.Currency, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning payment: %w", err)
		}
		p.Tier = domain.Tier(tier)
		p.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("parsing amount for payment %s: %w", p.ID, err)
		}
		p.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at for payment %s: %w", p.ID, err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}
