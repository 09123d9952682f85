package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/astroveda/internal/astro"
	"github.com/alexanderramin/astroveda/internal/domain"
	"github.com/alexanderramin/astroveda/internal/repository"
	"github.com/alexanderramin/astroveda/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionFixture(t *testing.T) (SessionService, gateFixture) {
	t.Helper()
	f := newGateFixture(t)
	return NewSessionService(repository.NewSQLiteProfileStore(f.db), f.gate), f
}

func TestSession_FinalizeAndCurrent(t *testing.T) {
	svc, _ := newSessionFixture(t)
	ctx := context.Background()
	profile := testutil.NewTestProfile()

	require.NoError(t, svc.Finalize(ctx, profile))

	got, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, profile.ID, got.ID)
	assert.Equal(t, *profile.Identity, *got.Identity)
}

func TestSession_FinalizeDerivesMissingIdentity(t *testing.T) {
	svc, _ := newSessionFixture(t)
	ctx := context.Background()
	profile := testutil.NewTestProfile(testutil.WithoutIdentity())

	require.NoError(t, svc.Finalize(ctx, profile))

	got, err := svc.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, got.Identity)
	assert.Equal(t, astro.DeriveIdentity(profile.BirthData), *got.Identity)
}

func TestSession_FinalizeRejectsIncompleteBirthData(t *testing.T) {
	svc, _ := newSessionFixture(t)
	profile := testutil.NewTestProfile(testutil.WithBirthData(domain.BirthData{Name: "Aarav"}))

	assert.Error(t, svc.Finalize(context.Background(), profile))
}

func TestSession_CurrentBeforeOnboarding(t *testing.T) {
	svc, _ := newSessionFixture(t)

	_, err := svc.Current(context.Background())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSession_ResetKeepsPlan(t *testing.T) {
	svc, f := newSessionFixture(t)
	ctx := context.Background()
	require.NoError(t, f.gate.Record(ctx, confirm(t, domain.TierBasic)))
	require.NoError(t, svc.Finalize(ctx, testutil.NewTestProfile()))

	require.NoError(t, svc.Reset(ctx, false))

	_, err := svc.Current(ctx)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.True(t, f.gate.Allowed())
}

func TestSession_ResetAllForgetsPlan(t *testing.T) {
	svc, f := newSessionFixture(t)
	ctx := context.Background()
	require.NoError(t, f.gate.Record(ctx, confirm(t, domain.TierPremium)))
	require.NoError(t, svc.Finalize(ctx, testutil.NewTestProfile()))

	require.NoError(t, svc.Reset(ctx, true))

	assert.False(t, f.gate.Allowed())
	plan, err := f.kv.GetMany(ctx, repository.KeyPaymentPlan)
	require.NoError(t, err)
	assert.Empty(t, plan)
}
