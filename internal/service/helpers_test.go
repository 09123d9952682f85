package service

import (
	"context"
	"database/sql"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/alexanderramin/astroveda/internal/db"
	"github.com/alexanderramin/astroveda/internal/domain"
	"github.com/alexanderramin/astroveda/internal/payment"
	"github.com/alexanderramin/astroveda/internal/repository"
	"github.com/alexanderramin/astroveda/internal/testutil"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

// testOrders is shared by every checkout and verifier in this package so a
// confirmation from confirm verifies against any fixture's gate.
var testOrders = &orderBook{orders: map[string]domain.Order{}}

type orderBook struct {
	mu     sync.Mutex
	orders map[string]domain.Order
}

func (b *orderBook) CreateOrder(_ context.Context, o *domain.Order) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.orders[o.ID] = *o
	return nil
}

func (b *orderBook) FindOrder(_ context.Context, id string) (*domain.Order, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	o, ok := b.orders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &o, nil
}

type gateFixture struct {
	db   *sql.DB
	kv   *repository.SQLiteSessionStore
	gate PlanGate
}

func newGateFixture(t *testing.T, uow ...db.UnitOfWork) gateFixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	u := testutil.NewTestUoW(database)
	if len(uow) > 0 {
		u = uow[0]
	}
	kv := repository.NewSQLiteSessionStore(database)
	gate := NewPlanGate(kv, repository.NewSQLitePaymentRepo(database), u, payment.NewSignatureVerifier(testSecret, testOrders))
	return gateFixture{db: database, kv: kv, gate: gate}
}

func confirm(t *testing.T, tier domain.Tier) payment.Confirmation {
	t.Helper()
	c, err := payment.NewSandboxCheckout(testSecret, testOrders).Checkout(context.Background(), tier)
	require.NoError(t, err)
	return c
}

// fixedGate is a PlanGate that always reports one plan.
type fixedGate struct {
	PlanGate
	plan domain.PaymentPlan
}

func (g fixedGate) Plan() domain.PaymentPlan { return g.plan }
func (g fixedGate) Allowed() bool            { return g.plan.Valid() }

type fakePredictions struct {
	calls   atomic.Int32
	started chan struct{}
	release chan struct{}
	result  *domain.Prediction
	err     error

	mu       sync.Mutex
	lastTier domain.Tier
}

func (f *fakePredictions) Predict(_ context.Context, _ domain.UserProfile, tier domain.Tier) (*domain.Prediction, error) {
	f.calls.Add(1)
	f.mu.Lock()
	f.lastTier = tier
	f.mu.Unlock()
	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.release != nil {
		<-f.release
	}
	return f.result, f.err
}

type fakeSimulations struct {
	calls  atomic.Int32
	result *domain.SimulationResult
	err    error
}

func (f *fakeSimulations) Simulate(_ context.Context, _ domain.UserProfile, _ string) (*domain.SimulationResult, error) {
	f.calls.Add(1)
	return f.result, f.err
}

type captureUseCases struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (c *captureUseCases) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, e)
}

func (c *captureUseCases) byName(name string) []UseCaseEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []UseCaseEvent
	for _, e := range c.events {
		if e.Name == name {
			out = append(out, e)
		}
	}
	return out
}
