package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/astroveda/internal/astro"
	"github.com/alexanderramin/astroveda/internal/domain"
	"github.com/alexanderramin/astroveda/internal/repository"
)

type sessionService struct {
	profiles repository.ProfileStore
	gate     PlanGate
	observer UseCaseObserver
}

func NewSessionService(profiles repository.ProfileStore, gate PlanGate, observers ...UseCaseObserver) SessionService {
	return &sessionService{
		profiles: profiles,
		gate:     gate,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Finalize stores profile as the device's profile, deriving its identity if
// it has none.
func (s *sessionService) Finalize(ctx context.Context, profile domain.UserProfile) (err error) {
	done := observe(ctx, s.observer, "finalize-profile", map[string]any{"focus": string(profile.Focus)})
	defer func() { done(err) }()

	if !profile.BirthData.Complete() {
		return fmt.Errorf("finalizing profile: birth data is incomplete")
	}
	if profile.Identity == nil {
		id := astro.DeriveIdentity(profile.BirthData)
		profile.Identity = &id
	}
	return s.profiles.Save(ctx, profile)
}

func (s *sessionService) Current(ctx context.Context) (*domain.UserProfile, error) {
	return s.profiles.Load(ctx)
}

func (s *sessionService) Reset(ctx context.Context, forgetPlan bool) (err error) {
	done := observe(ctx, s.observer, "reset", map[string]any{"forget_plan": forgetPlan})
	defer func() { done(err) }()

	if err = s.profiles.Clear(ctx); err != nil {
		return fmt.Errorf("clearing profile: %w", err)
	}
	if forgetPlan {
		return s.gate.Forget(ctx)
	}
	return nil
}
