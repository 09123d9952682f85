package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/alexanderramin/astroveda/internal/db"
	"github.com/alexanderramin/astroveda/internal/domain"
	"github.com/alexanderramin/astroveda/internal/payment"
	"github.com/alexanderramin/astroveda/internal/repository"
	"github.com/google/uuid"
)

type planGate struct {
	kv       repository.SessionStore
	payments repository.PaymentRepo
	uow      db.UnitOfWork
	verifier ConfirmationVerifier
	observer UseCaseObserver

	mu     sync.RWMutex
	loaded bool
	plan   domain.PaymentPlan
}

func NewPlanGate(
	kv repository.SessionStore,
	payments repository.PaymentRepo,
	uow db.UnitOfWork,
	verifier ConfirmationVerifier,
	observers ...UseCaseObserver,
) PlanGate {
	return &planGate{
		kv:       kv,
		payments: payments,
		uow:      uow,
		verifier: verifier,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Load reads the stored plan the first time it is called. An unknown stored
// value counts as no plan.
func (g *planGate) Load(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.loaded {
		return nil
	}

	v, err := g.kv.Get(ctx, repository.KeyPaymentPlan)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		g.plan = domain.PlanNone
	case err != nil:
		return fmt.Errorf("loading plan: %w", err)
	default:
		if t := domain.Tier(v); t.Valid() {
			g.plan = t
		}
	}
	g.loaded = true
	return nil
}

func (g *planGate) Plan() domain.PaymentPlan {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.plan
}

func (g *planGate) Allowed() bool {
	return g.Plan().Valid()
}

// Record verifies c, then writes the plan keys and the ledger row in one
// transaction. The in-memory plan changes only after the commit.
func (g *planGate) Record(ctx context.Context, c payment.Confirmation) (err error) {
	done := observe(ctx, g.observer, "record-plan", map[string]any{
		"tier":       string(c.Tier),
		"payment_id": c.PaymentID,
	})
	defer func() { done(err) }()

	if err = g.verifier.Verify(ctx, c); err != nil {
		return fmt.Errorf("verifying checkout: %w", err)
	}

	paidAt := c.PaidAt
	if paidAt.IsZero() {
		paidAt = time.Now()
	}
	paidAt = paidAt.UTC()

	err = g.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		kv := repository.NewSQLiteSessionStore(tx)
		values := []struct{ key, value string }{
			{repository.KeyPaymentPlan, string(c.Tier)},
			{repository.KeyPaymentID, c.PaymentID},
			{repository.KeyPaymentAmount, c.Amount.String()},
			{repository.KeyPaymentTimestamp, paidAt.Format(time.RFC3339)},
		}
		for _, v := range values {
			if err := kv.Set(ctx, v.key, v.value); err != nil {
				return err
			}
		}

		return repository.NewSQLitePaymentRepo(tx).Create(ctx, &domain.Payment{
			ID:        uuid.New().String(),
			Tier:      c.Tier,
			OrderID:   c.OrderID,
			PaymentID: c.PaymentID,
			Amount:    c.Amount,
			Currency:  payment.Currency,
			CreatedAt: paidAt,
		})
	})
	if err != nil {
		return fmt.Errorf("recording plan: %w", err)
	}

	g.mu.Lock()
	g.plan = c.Tier
	g.loaded = true
	g.mu.Unlock()
	return nil
}

// Forget removes the stored plan keys. The ledger is kept.
func (g *planGate) Forget(ctx context.Context) error {
	if err := g.kv.Delete(ctx, repository.PaymentKeys...); err != nil {
		return fmt.Errorf("forgetting plan: %w", err)
	}
	g.mu.Lock()
	g.plan = domain.PlanNone
	g.loaded = true
	g.mu.Unlock()
	return nil
}

func (g *planGate) RecentPayments(ctx context.Context, limit int) ([]*domain.Payment, error) {
	return g.payments.ListRecent(ctx, limit)
}
