package intelligence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/astroveda/internal/astro"
	"github.com/alexanderramin/astroveda/internal/domain"
	"github.com/alexanderramin/astroveda/internal/llm"
)

// ErrUnknownTier is returned when a prediction is requested for a tier
// other than basic or premium.
var ErrUnknownTier = errors.New("unknown prediction tier")

// PredictionService produces structured life predictions.
type PredictionService interface {
	// Predict requests a prediction for profile at the given tier. Endpoint
	// failures are returned as *llm.ServiceError; unusable payloads as
	// *llm.MalformedResponseError. Neither is retried.
	Predict(ctx context.Context, profile domain.UserProfile, tier domain.Tier) (*domain.Prediction, error)
}

type predictionService struct {
	client llm.LLMClient
}

// NewPredictionService creates a PredictionService backed by an LLM client.
func NewPredictionService(client llm.LLMClient) PredictionService {
	return &predictionService{client: client}
}

func (s *predictionService) Predict(ctx context.Context, profile domain.UserProfile, tier domain.Tier) (*domain.Prediction, error) {
	req, err := BuildPredictionRequest(profile, tier)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("prediction request failed: %w", err)
	}

	payload, err := llm.DecodeJSON(resp.Text, validatePrediction)
	if err != nil {
		return nil, fmt.Errorf("prediction response: %w", err)
	}
	return payload.toDomain(), nil
}

// BuildPredictionRequest composes the instruction text and generation task
// for a prediction. The tier picks the task, and with it the token budget
// and temperature, and appends tier-specific instructions.
func BuildPredictionRequest(profile domain.UserProfile, tier domain.Tier) (llm.GenerateRequest, error) {
	var task llm.TaskType
	var tierInstructions string
	switch tier {
	case domain.TierBasic:
		task = llm.TaskPredictionBasic
		tierInstructions = basicInstructions
	case domain.TierPremium:
		task = llm.TaskPredictionPremium
		tierInstructions = premiumInstructions
	default:
		return llm.GenerateRequest{}, fmt.Errorf("%w: %q", ErrUnknownTier, tier)
	}

	id := identityOf(profile)

	var b strings.Builder
	b.WriteString("Act as a wise, modern Vedic Astrologer for Astroveda, an India-first platform.\n")
	fmt.Fprintf(&b, "User Name: %s\n", profile.Name)
	fmt.Fprintf(&b, "Birth Context: %s Lagna, %s Rashi, %s Nakshatra.\n", id.Lagna, id.Rashi, id.Nakshatra)
	fmt.Fprintf(&b, "Current Dasha: %s\n", id.Dasha)
	if len(id.Strengths) > 0 {
		fmt.Fprintf(&b, "Core Strengths: %s\n", strings.Join(id.Strengths, ", "))
	}
	fmt.Fprintf(&b, "Current Life Focus: %s\n\n", focusOf(profile))
	b.WriteString(predictionFramework)
	b.WriteString("\n\n")
	b.WriteString(tierInstructions)
	b.WriteString("\n\n")
	b.WriteString(predictionShape)

	return llm.GenerateRequest{
		Task:         task,
		SystemPrompt: systemPrompt,
		UserPrompt:   b.String(),
	}, nil
}

// identityOf returns the profile's identity, deriving it when onboarding
// has not attached one yet.
func identityOf(profile domain.UserProfile) domain.AstroIdentity {
	if profile.Identity != nil {
		return *profile.Identity
	}
	return astro.DeriveIdentity(profile.BirthData)
}

func focusOf(profile domain.UserProfile) domain.LifeFocus {
	if profile.Focus == "" {
		return domain.DefaultLifeFocus
	}
	return profile.Focus
}
