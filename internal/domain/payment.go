package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is a verified checkout recorded in the local ledger.
type Payment struct {
	ID        string
	Tier      Tier
	OrderID   string
	PaymentID string
	Amount    decimal.Decimal
	Currency  string
	CreatedAt time.Time
}

// Order is opened by checkout before any payment is taken. It fixes the
// tier and amount a later confirmation may claim.
type Order struct {
	ID        string
	Tier      Tier
	Amount    decimal.Decimal
	Currency  string
	CreatedAt time.Time
}
