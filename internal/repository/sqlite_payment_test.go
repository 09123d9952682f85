package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/astroveda/internal/domain"
	"github.com/alexanderramin/astroveda/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentRepo_CreateAndList(t *testing.T) {
	repo := NewSQLitePaymentRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	base := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

	older := testutil.NewTestPayment(domain.TierBasic, testutil.WithCreatedAt(base))
	newer := testutil.NewTestPayment(domain.TierPremium, testutil.WithCreatedAt(base.Add(time.Hour)))
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	got, err := repo.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, newer.ID, got[0].ID)
	assert.Equal(t, domain.TierPremium, got[0].Tier)
	assert.True(t, got[0].Amount.Equal(decimal.NewFromInt(99)))
	assert.Equal(t, "INR", got[0].Currency)
	assert.Equal(t, newer.CreatedAt, got[0].CreatedAt)
	assert.Equal(t, older.PaymentID, got[1].PaymentID)
}

func TestPaymentRepo_ListRecentLimit(t *testing.T) {
	repo := NewSQLitePaymentRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(ctx, testutil.NewTestPayment(domain.TierBasic)))
	}

	got, err := repo.ListRecent(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestPaymentRepo_DuplicatePaymentIDRejected(t *testing.T) {
	repo := NewSQLitePaymentRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	p := testutil.NewTestPayment(domain.TierBasic)
	require.NoError(t, repo.Create(ctx, p))

	dup := testutil.NewTestPayment(domain.TierBasic)
	dup.PaymentID = p.PaymentID
	assert.Error(t, repo.Create(ctx, dup))
}

func TestPaymentRepo_FractionalAmountRoundTrips(t *testing.T) {
	repo := NewSQLitePaymentRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	p := testutil.NewTestPayment(domain.TierBasic)
	p.Amount = decimal.RequireFromString("10.50")
	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.ListRecent(ctx, 1)
	require.NoError(t, err)
	assert.True(t, got[0].Amount.Equal(decimal.RequireFromString("10.5")))
}
