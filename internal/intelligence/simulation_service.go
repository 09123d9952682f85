package intelligence

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/astroveda/internal/domain"
	"github.com/alexanderramin/astroveda/internal/llm"
)

// SimulationService compares acting now against waiting for a decision.
type SimulationService interface {
	// Simulate requests a comparison for the free-text decision. An empty
	// decision is allowed and produces a general comparison.
	Simulate(ctx context.Context, profile domain.UserProfile, decisionText string) (*domain.SimulationResult, error)
}

type simulationService struct {
	client llm.LLMClient
}

// NewSimulationService creates a SimulationService backed by an LLM client.
func NewSimulationService(client llm.LLMClient) SimulationService {
	return &simulationService{client: client}
}

func (s *simulationService) Simulate(ctx context.Context, profile domain.UserProfile, decisionText string) (*domain.SimulationResult, error) {
	resp, err := s.client.Generate(ctx, BuildSimulationRequest(profile, decisionText))
	if err != nil {
		return nil, fmt.Errorf("simulation request failed: %w", err)
	}

	payload, err := llm.DecodeJSON(resp.Text, validateSimulation)
	if err != nil {
		return nil, fmt.Errorf("simulation response: %w", err)
	}
	return payload.toDomain(), nil
}

// BuildSimulationRequest composes the decision-simulator instruction text.
func BuildSimulationRequest(profile domain.UserProfile, decisionText string) llm.GenerateRequest {
	id := identityOf(profile)

	decision := strings.TrimSpace(decisionText)
	if decision == "" {
		decision = emptyDecisionContext
	}

	var b strings.Builder
	b.WriteString("Vedic Decision Simulator for Astroveda.\n")
	fmt.Fprintf(&b, "User Profile: %s Lagna, %s Rashi in %s Dasha.\n", id.Lagna, id.Rashi, id.Dasha)
	fmt.Fprintf(&b, "Current Life Focus: %s\n", focusOf(profile))
	fmt.Fprintf(&b, "Decision Context: %s\n\n", decision)
	b.WriteString(simulationPaths)
	b.WriteString("\n\n")
	b.WriteString(simulationShape)

	return llm.GenerateRequest{
		Task:         llm.TaskSimulation,
		SystemPrompt: systemPrompt,
		UserPrompt:   b.String(),
	}
}
