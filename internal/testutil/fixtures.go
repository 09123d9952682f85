package testutil

import (
	"time"

	"github.com/alexanderramin/astroveda/internal/astro"
	"github.com/alexanderramin/astroveda/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Profile options
type ProfileOption func(*domain.UserProfile)

func WithFocus(f domain.LifeFocus) ProfileOption {
	return func(p *domain.UserProfile) {
		p.Focus = f
	}
}

func WithBirthData(b domain.BirthData) ProfileOption {
	return func(p *domain.UserProfile) {
		p.BirthData = b
		id := astro.DeriveIdentity(b)
		p.Identity = &id
	}
}

func WithoutIdentity() ProfileOption {
	return func(p *domain.UserProfile) {
		p.Identity = nil
	}
}

// NewTestProfile returns a finalized profile for Aarav, born 1990-05-12
// 14:30 in Mumbai, with the identity already derived.
func NewTestProfile(opts ...ProfileOption) domain.UserProfile {
	b := domain.BirthData{
		Name:         "Aarav",
		DateOfBirth:  "1990-05-12",
		TimeOfBirth:  "14:30",
		PlaceOfBirth: "Mumbai",
	}
	id := astro.DeriveIdentity(b)
	p := domain.UserProfile{
		ID:        uuid.New().String(),
		BirthData: b,
		Focus:     domain.FocusCareer,
		Identity:  &id,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	for _, o := range opts {
		o(&p)
	}
	return p
}

// Payment options
type PaymentOption func(*domain.Payment)

func WithCreatedAt(t time.Time) PaymentOption {
	return func(p *domain.Payment) {
		p.CreatedAt = t
	}
}

func NewTestPayment(tier domain.Tier, opts ...PaymentOption) *domain.Payment {
	amount := decimal.NewFromInt(10)
	if tier == domain.TierPremium {
		amount = decimal.NewFromInt(99)
	}
	p := &domain.Payment{
		ID:        uuid.New().String(),
		Tier:      tier,
		OrderID:   "order_" + uuid.New().String()[:8],
		PaymentID: "pay_" + uuid.New().String()[:8],
		Amount:    amount,
		Currency:  "INR",
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	for _, o := range opts {
		o(p)
	}
	return p
}
