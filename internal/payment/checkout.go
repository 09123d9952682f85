package payment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/astroveda/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Confirmation is what a completed checkout reports back. It is untrusted
// until SignatureVerifier.Verify accepts it.
type Confirmation struct {
	Tier      domain.Tier
	OrderID   string
	PaymentID string
	Signature string
	Amount    decimal.Decimal
	PaidAt    time.Time
}

// Checkout collects payment for a tier.
type Checkout interface {
	// Checkout returns ErrCheckoutCancelled when the user backs out or ctx
	// ends first.
	Checkout(ctx context.Context, tier domain.Tier) (Confirmation, error)
}

// OrderStore keeps the orders checkout opens, so a confirmation can be
// matched back to the tier and amount that were actually charged.
type OrderStore interface {
	CreateOrder(ctx context.Context, o *domain.Order) error
	FindOrder(ctx context.Context, id string) (*domain.Order, error)
}

// SandboxCheckout completes every checkout immediately with generated
// order and payment ids, signed the same way the gateway signs them.
type SandboxCheckout struct {
	secret string
	orders OrderStore
	now    func() time.Time
}

// NewSandboxCheckout creates a sandbox checkout signing with secret and
// opening its orders in orders.
func NewSandboxCheckout(secret string, orders OrderStore) *SandboxCheckout {
	return &SandboxCheckout{secret: secret, orders: orders, now: time.Now}
}

func (c *SandboxCheckout) Checkout(ctx context.Context, tier domain.Tier) (Confirmation, error) {
	if err := ctx.Err(); err != nil {
		return Confirmation{}, fmt.Errorf("%w: %v", ErrCheckoutCancelled, err)
	}
	plan, err := PlanFor(tier)
	if err != nil {
		return Confirmation{}, err
	}

	now := c.now().UTC()
	order := &domain.Order{
		ID:        "order_" + compactID(),
		Tier:      plan.Tier,
		Amount:    plan.Price,
		Currency:  Currency,
		CreatedAt: now,
	}
	if err := c.orders.CreateOrder(ctx, order); err != nil {
		return Confirmation{}, fmt.Errorf("opening order: %w", err)
	}

	paymentID := "pay_" + compactID()
	return Confirmation{
		Tier:      plan.Tier,
		OrderID:   order.ID,
		PaymentID: paymentID,
		Signature: Sign(c.secret, order.ID, paymentID),
		Amount:    plan.Price,
		PaidAt:    now,
	}, nil
}

func compactID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:14]
}

// DisabledCheckout refuses every checkout with Err. It stands in when no
// gateway secret is configured so the rest of the app still runs.
type DisabledCheckout struct {
	Err error
}

func (c DisabledCheckout) Checkout(context.Context, domain.Tier) (Confirmation, error) {
	return Confirmation{}, c.Err
}
