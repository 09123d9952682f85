package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/astroveda/internal/domain"
	"github.com/alexanderramin/astroveda/internal/intelligence"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

type readingService struct {
	gate        PlanGate
	predictions intelligence.PredictionService
	simulations intelligence.SimulationService
	observer    UseCaseObserver
	inflight    singleflight.Group
}

func NewReadingService(
	gate PlanGate,
	predictions intelligence.PredictionService,
	simulations intelligence.SimulationService,
	observers ...UseCaseObserver,
) ReadingService {
	return &readingService{
		gate:        gate,
		predictions: predictions,
		simulations: simulations,
		observer:    useCaseObserverOrNoop(observers),
	}
}

// Reading shares an in-flight request between callers with the same
// profile and tier. The shared request runs under the first caller's ctx.
func (s *readingService) Reading(ctx context.Context, profile domain.UserProfile) (_ *domain.Prediction, err error) {
	tier := s.gate.Plan()
	if !tier.Valid() {
		return nil, ErrPlanRequired
	}

	fields := map[string]any{"tier": string(tier), "focus": string(profile.Focus)}
	done := observe(ctx, s.observer, "prediction", fields)
	defer func() { done(err) }()

	key := profile.Key() + "|" + string(tier)
	v, err, shared := s.inflight.Do(key, func() (any, error) {
		return s.predictions.Predict(ctx, profile, tier)
	})
	fields["shared"] = shared
	if err != nil {
		return nil, err
	}
	return v.(*domain.Prediction), nil
}

// Simulate is not gated by the plan; the simulator is part of the free
// dashboard.
func (s *readingService) Simulate(ctx context.Context, profile domain.UserProfile, decisionText string) (_ *domain.SimulationResult, err error) {
	done := observe(ctx, s.observer, "simulation", map[string]any{
		"decision_len": len(decisionText),
	})
	defer func() { done(err) }()

	return s.simulations.Simulate(ctx, profile, decisionText)
}

func (s *readingService) Overview(ctx context.Context, profile domain.UserProfile, decisionText string) (*Overview, error) {
	if !s.gate.Allowed() {
		return nil, ErrPlanRequired
	}

	var out Overview
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.Reading(gctx, profile)
		if err != nil {
			return fmt.Errorf("reading: %w", err)
		}
		out.Prediction = p
		return nil
	})
	g.Go(func() error {
		r, err := s.Simulate(gctx, profile, decisionText)
		if err != nil {
			return fmt.Errorf("simulation: %w", err)
		}
		out.Simulation = r
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}
