// Package payment prices the reading tiers, runs checkout, and verifies
// checkout confirmations before a plan is trusted.
package payment

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/astroveda/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	ErrUnknownTier       = errors.New("unknown tier")
	ErrInvalidSignature  = errors.New("payment signature mismatch")
	ErrCheckoutCancelled = errors.New("checkout cancelled")
	ErrAmountMismatch    = errors.New("payment amount does not match plan price")
	ErrUnknownOrder      = errors.New("unknown order")
	ErrOrderMismatch     = errors.New("confirmation tier does not match order")
)

// Currency is the only currency plans are sold in.
const Currency = "INR"

var hundred = decimal.NewFromInt(100)

// Plan is a purchasable tier with its price.
type Plan struct {
	Tier        domain.Tier
	Name        string
	Price       decimal.Decimal
	Description string
}

// Paise returns the price in the smallest currency unit, as the payment
// gateway expects it.
func (p Plan) Paise() int64 {
	return p.Price.Mul(hundred).IntPart()
}

// Display formats the price for people, e.g. "₹99".
func (p Plan) Display() string {
	return "₹" + p.Price.String()
}

var plans = []Plan{
	{
		Tier:        domain.TierBasic,
		Name:        "Basic",
		Price:       decimal.NewFromInt(10),
		Description: "Basic Astrological Prediction - Essential cosmic guidance",
	},
	{
		Tier:        domain.TierPremium,
		Name:        "Premium",
		Price:       decimal.NewFromInt(99),
		Description: "Premium Astrological Prediction - Deep cosmic analysis",
	},
}

// Plans lists every tier, cheapest first.
func Plans() []Plan {
	out := make([]Plan, len(plans))
	copy(out, plans)
	return out
}

// PlanFor returns the plan for tier.
func PlanFor(tier domain.Tier) (Plan, error) {
	for _, p := range plans {
		if p.Tier == tier {
			return p, nil
		}
	}
	return Plan{}, fmt.Errorf("%w: %q", ErrUnknownTier, tier)
}
