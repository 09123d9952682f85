package intelligence

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexanderramin/astroveda/internal/domain"
)

// predictionPayload mirrors domain.Prediction on the wire.
type predictionPayload struct {
	Headline       string   `json:"headline"`
	Reassurance    string   `json:"reassurance"`
	Interpretation string   `json:"interpretation"`
	AstrologyLogic string   `json:"astrologyLogic"`
	ActionsDo      []string `json:"actionsDo"`
	ActionsAvoid   []string `json:"actionsAvoid"`
	Timing         string   `json:"timing"`
	OneSmallStep   string   `json:"oneSmallStep"`
}

func (p predictionPayload) toDomain() *domain.Prediction {
	return &domain.Prediction{
		Headline:       p.Headline,
		Reassurance:    p.Reassurance,
		Interpretation: p.Interpretation,
		AstrologyLogic: p.AstrologyLogic,
		ActionsDo:      p.ActionsDo,
		ActionsAvoid:   p.ActionsAvoid,
		Timing:         p.Timing,
		OneSmallStep:   p.OneSmallStep,
	}
}

// validatePrediction requires all eight fields, with at least one
// non-blank entry in each action list.
func validatePrediction(p predictionPayload) error {
	required := []struct {
		name  string
		value string
	}{
		{"headline", p.Headline},
		{"reassurance", p.Reassurance},
		{"interpretation", p.Interpretation},
		{"astrologyLogic", p.AstrologyLogic},
		{"timing", p.Timing},
		{"oneSmallStep", p.OneSmallStep},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%s is required", f.name)
		}
	}
	if err := validateItems("actionsDo", p.ActionsDo); err != nil {
		return err
	}
	return validateItems("actionsAvoid", p.ActionsAvoid)
}

func validateItems(name string, items []string) error {
	if len(items) == 0 {
		return fmt.Errorf("%s must contain at least one item", name)
	}
	for i, item := range items {
		if strings.TrimSpace(item) == "" {
			return fmt.Errorf("%s[%d] is empty", name, i)
		}
	}
	return nil
}

// simulationPayload mirrors domain.SimulationResult on the wire. The
// percentages are pointers so a missing field is distinguishable from 0,
// and floats so "40.0" is accepted as an integer.
type simulationPayload struct {
	OptionA      string   `json:"optionA"`
	OptionB      string   `json:"optionB"`
	RiskFactor   *float64 `json:"riskFactor"`
	GrowthFactor *float64 `json:"growthFactor"`
	Explanation  string   `json:"explanation"`
}

func (p simulationPayload) toDomain() *domain.SimulationResult {
	return &domain.SimulationResult{
		OptionA:      p.OptionA,
		OptionB:      p.OptionB,
		RiskFactor:   int(*p.RiskFactor),
		GrowthFactor: int(*p.GrowthFactor),
		Explanation:  p.Explanation,
	}
}

func validateSimulation(p simulationPayload) error {
	if strings.TrimSpace(p.OptionA) == "" {
		return fmt.Errorf("optionA is required")
	}
	if strings.TrimSpace(p.OptionB) == "" {
		return fmt.Errorf("optionB is required")
	}
	if strings.TrimSpace(p.Explanation) == "" {
		return fmt.Errorf("explanation is required")
	}
	if err := validatePercent("riskFactor", p.RiskFactor); err != nil {
		return err
	}
	return validatePercent("growthFactor", p.GrowthFactor)
}

func validatePercent(name string, v *float64) error {
	if v == nil {
		return fmt.Errorf("%s is required", name)
	}
	if *v != math.Trunc(*v) {
		return fmt.Errorf("%s must be an integer, got %v", name, *v)
	}
	if *v < 0 || *v > 100 {
		return fmt.Errorf("%s must be in [0,100], got %v", name, *v)
	}
	return nil
}
