package service

import (
	"context"
	"errors"

	"github.com/alexanderramin/astroveda/internal/domain"
	"github.com/alexanderramin/astroveda/internal/payment"
)

// ErrPlanRequired is returned by ReadingService when no plan is held, and
// no request is sent.
var ErrPlanRequired = errors.New("a paid plan is required for predictions")

// PlanGate owns the session's payment plan. The stored plan is read once by
// Load; after that only Record and Forget change it.
type PlanGate interface {
	Load(ctx context.Context) error
	Plan() domain.PaymentPlan
	Allowed() bool
	Record(ctx context.Context, c payment.Confirmation) error
	Forget(ctx context.Context) error
	RecentPayments(ctx context.Context, limit int) ([]*domain.Payment, error)
}

type ReadingService interface {
	// Reading requests a prediction at the gate's tier. Concurrent calls
	// for the same profile and tier share one request.
	Reading(ctx context.Context, profile domain.UserProfile) (*domain.Prediction, error)
	Simulate(ctx context.Context, profile domain.UserProfile, decisionText string) (*domain.SimulationResult, error)
	// Overview fetches a reading and a simulation concurrently.
	Overview(ctx context.Context, profile domain.UserProfile, decisionText string) (*Overview, error)
}

// Overview pairs a reading with a decision simulation.
type Overview struct {
	Prediction *domain.Prediction       `json:"prediction"`
	Simulation *domain.SimulationResult `json:"simulation,omitempty"`
}

type SessionService interface {
	Finalize(ctx context.Context, profile domain.UserProfile) error
	// Current returns repository.ErrNotFound before onboarding completes.
	Current(ctx context.Context) (*domain.UserProfile, error)
	// Reset discards the stored profile; forgetPlan also drops the plan.
	Reset(ctx context.Context, forgetPlan bool) error
}

// ConfirmationVerifier is the trusted check a checkout confirmation must
// pass before its plan is recorded.
type ConfirmationVerifier interface {
	Verify(ctx context.Context, c payment.Confirmation) error
}
