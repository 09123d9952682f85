package domain

import (
	"fmt"
	"strings"
)

// Tier is a paid plan level.
type Tier string

const (
	TierBasic   Tier = "basic"
	TierPremium Tier = "premium"
)

// PaymentPlan is the plan held by the current session. PlanNone means no
// checkout has completed.
type PaymentPlan = Tier

// PlanNone is the zero plan.
const PlanNone PaymentPlan = ""

// Valid reports whether t is a purchasable tier.
func (t Tier) Valid() bool {
	return t == TierBasic || t == TierPremium
}

// ParseTier accepts "basic" or "premium" in any case.
func ParseTier(s string) (Tier, error) {
	t := Tier(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return PlanNone, fmt.Errorf("unknown tier %q (want basic or premium)", s)
	}
	return t, nil
}
