package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/astroveda/internal/domain"
	"github.com/alexanderramin/astroveda/internal/payment"
	"github.com/alexanderramin/astroveda/internal/repository"
	"github.com/alexanderramin/astroveda/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanGate_LoadWithoutStoredPlan(t *testing.T) {
	f := newGateFixture(t)

	require.NoError(t, f.gate.Load(context.Background()))
	assert.Equal(t, domain.PlanNone, f.gate.Plan())
	assert.False(t, f.gate.Allowed())
}

func TestPlanGate_LoadStoredPlan(t *testing.T) {
	f := newGateFixture(t)
	ctx := context.Background()
	require.NoError(t, f.kv.Set(ctx, repository.KeyPaymentPlan, "premium"))

	require.NoError(t, f.gate.Load(ctx))
	assert.Equal(t, domain.TierPremium, f.gate.Plan())
	assert.True(t, f.gate.Allowed())
}

func TestPlanGate_LoadReadsOnce(t *testing.T) {
	f := newGateFixture(t)
	ctx := context.Background()
	require.NoError(t, f.gate.Load(ctx))

	require.NoError(t, f.kv.Set(ctx, repository.KeyPaymentPlan, "basic"))
	require.NoError(t, f.gate.Load(ctx))

	assert.Equal(t, domain.PlanNone, f.gate.Plan(), "store changes after startup are not picked up")
}

func TestPlanGate_LoadUnknownValueIsNoPlan(t *testing.T) {
	f := newGateFixture(t)
	ctx := context.Background()
	require.NoError(t, f.kv.Set(ctx, repository.KeyPaymentPlan, "platinum"))

	require.NoError(t, f.gate.Load(ctx))
	assert.False(t, f.gate.Allowed())
}

func TestPlanGate_RecordVerifiedConfirmation(t *testing.T) {
	f := newGateFixture(t)
	ctx := context.Background()
	require.NoError(t, f.gate.Load(ctx))

	c := confirm(t, domain.TierPremium)
	c.PaidAt = time.Date(2026, 4, 1, 8, 30, 0, 0, time.UTC)
	require.NoError(t, f.gate.Record(ctx, c))

	assert.Equal(t, domain.TierPremium, f.gate.Plan())

	stored, err := f.kv.GetMany(ctx, repository.PaymentKeys...)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		repository.KeyPaymentPlan:      "premium",
		repository.KeyPaymentID:        c.PaymentID,
		repository.KeyPaymentAmount:    "99",
		repository.KeyPaymentTimestamp: "2026-04-01T08:30:00Z",
	}, stored)

	ledger, err := f.gate.RecentPayments(ctx, 5)
	require.NoError(t, err)
	require.Len(t, ledger, 1)
	assert.Equal(t, c.OrderID, ledger[0].OrderID)
	assert.Equal(t, "INR", ledger[0].Currency)
	assert.True(t, ledger[0].Amount.Equal(decimal.NewFromInt(99)))
}

func TestPlanGate_RecordRejectsForgedConfirmation(t *testing.T) {
	f := newGateFixture(t)
	ctx := context.Background()
	require.NoError(t, f.gate.Load(ctx))

	c := confirm(t, domain.TierBasic)
	c.Signature = payment.Sign("attacker-secret", c.OrderID, c.PaymentID)

	err := f.gate.Record(ctx, c)
	assert.ErrorIs(t, err, payment.ErrInvalidSignature)
	assert.False(t, f.gate.Allowed())

	stored, err := f.kv.GetMany(ctx, repository.PaymentKeys...)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestPlanGate_RecordRejectsRelabelledTier(t *testing.T) {
	f := newGateFixture(t)
	ctx := context.Background()
	require.NoError(t, f.gate.Load(ctx))

	// Signed for a basic order, then claimed as premium at the premium price.
	c := confirm(t, domain.TierBasic)
	c.Tier = domain.TierPremium
	c.Amount = decimal.NewFromInt(99)

	err := f.gate.Record(ctx, c)
	assert.ErrorIs(t, err, payment.ErrOrderMismatch)
	assert.False(t, f.gate.Allowed())

	ledger, err := f.gate.RecentPayments(ctx, 5)
	require.NoError(t, err)
	assert.Empty(t, ledger)
}

func TestPlanGate_RecordRollsBackWhenLedgerWriteFails(t *testing.T) {
	database := testutil.NewTestDB(t)
	boom := errors.New("disk full")
	// Four key writes succeed, the ledger insert fails.
	uow := &testutil.FailOnNthExecUoW{DB: database, FailOn: 5, Err: boom}
	kv := repository.NewSQLiteSessionStore(database)
	gate := NewPlanGate(kv, repository.NewSQLitePaymentRepo(database), uow, payment.NewSignatureVerifier(testSecret, testOrders))
	ctx := context.Background()

	err := gate.Record(ctx, confirm(t, domain.TierBasic))
	assert.ErrorIs(t, err, boom)
	assert.False(t, gate.Allowed())

	stored, err := kv.GetMany(ctx, repository.PaymentKeys...)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestPlanGate_RecordObserved(t *testing.T) {
	database := testutil.NewTestDB(t)
	obs := &captureUseCases{}
	gate := NewPlanGate(
		repository.NewSQLiteSessionStore(database),
		repository.NewSQLitePaymentRepo(database),
		testutil.NewTestUoW(database),
		payment.NewSignatureVerifier(testSecret, testOrders),
		obs,
	)

	require.NoError(t, gate.Record(context.Background(), confirm(t, domain.TierBasic)))

	events := obs.byName("record-plan")
	require.Len(t, events, 1)
	assert.True(t, events[0].Success)
	assert.Equal(t, "basic", events[0].Fields["tier"])
}

func TestPlanGate_Forget(t *testing.T) {
	f := newGateFixture(t)
	ctx := context.Background()
	require.NoError(t, f.gate.Record(ctx, confirm(t, domain.TierBasic)))
	require.True(t, f.gate.Allowed())

	require.NoError(t, f.gate.Forget(ctx))

	assert.False(t, f.gate.Allowed())
	stored, err := f.kv.GetMany(ctx, repository.PaymentKeys...)
	require.NoError(t, err)
	assert.Empty(t, stored)

	ledger, err := f.gate.RecentPayments(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, ledger, 1, "ledger survives forgetting the plan")
}
