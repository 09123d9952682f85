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

func TestOrderRepo_CreateAndFind(t *testing.T) {
	repo := NewSQLiteOrderRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	created := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, repo.CreateOrder(ctx, &domain.Order{
		ID:        "order_abc",
		Tier:      domain.TierBasic,
		Amount:    decimal.NewFromInt(49),
		Currency:  "INR",
		CreatedAt: created,
	}))

	got, err := repo.FindOrder(ctx, "order_abc")
	require.NoError(t, err)
	assert.Equal(t, domain.TierBasic, got.Tier)
	assert.True(t, got.Amount.Equal(decimal.NewFromInt(49)))
	assert.Equal(t, "INR", got.Currency)
	assert.Equal(t, created, got.CreatedAt)
}

func TestOrderRepo_FindMissing(t *testing.T) {
	repo := NewSQLiteOrderRepo(testutil.NewTestDB(t))

	_, err := repo.FindOrder(context.Background(), "order_nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOrderRepo_DuplicateID(t *testing.T) {
	repo := NewSQLiteOrderRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	o := &domain.Order{ID: "order_dup", Tier: domain.TierPremium, Amount: decimal.NewFromInt(99), Currency: "INR", CreatedAt: time.Now()}

	require.NoError(t, repo.CreateOrder(ctx, o))
	assert.Error(t, repo.CreateOrder(ctx, o))
}
