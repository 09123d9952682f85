package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/astroveda/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStore_SetGet(t *testing.T) {
	store := NewSQLiteSessionStore(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, KeyPaymentPlan, "basic"))
	got, err := store.Get(ctx, KeyPaymentPlan)
	require.NoError(t, err)
	assert.Equal(t, "basic", got)

	require.NoError(t, store.Set(ctx, KeyPaymentPlan, "premium"))
	got, err = store.Get(ctx, KeyPaymentPlan)
	require.NoError(t, err)
	assert.Equal(t, "premium", got)
}

func TestSessionStore_GetMissing(t *testing.T) {
	store := NewSQLiteSessionStore(testutil.NewTestDB(t))

	_, err := store.Get(context.Background(), KeyPaymentPlan)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionStore_GetMany_OmitsMissing(t *testing.T) {
	store := NewSQLiteSessionStore(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, KeyPaymentPlan, "premium"))
	require.NoError(t, store.Set(ctx, KeyPaymentID, "pay_1"))

	got, err := store.GetMany(ctx, PaymentKeys...)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{KeyPaymentPlan: "premium", KeyPaymentID: "pay_1"}, got)

	empty, err := store.GetMany(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestSessionStore_Delete(t *testing.T) {
	store := NewSQLiteSessionStore(testutil.NewTestDB(t))
	ctx := context.Background()

	for _, k := range PaymentKeys {
		require.NoError(t, store.Set(ctx, k, "v"))
	}
	require.NoError(t, store.Set(ctx, KeyProfile, "{}"))

	require.NoError(t, store.Delete(ctx, PaymentKeys...))
	require.NoError(t, store.Delete(ctx, "never-set"))
	require.NoError(t, store.Delete(ctx))

	got, err := store.GetMany(ctx, append(PaymentKeys, KeyProfile)...)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{KeyProfile: "{}"}, got)
}

func TestPlaceholders(t *testing.T) {
	assert.Equal(t, "", placeholders(0))
	assert.Equal(t, "?", placeholders(1))
	assert.Equal(t, "?, ?, ?", placeholders(3))
}
