package domain

// Prediction is the structured narrative returned for a profile and tier.
// Field order follows the conclusion → reassurance → reason → action → timing
// framework used in the prompt.
type Prediction struct {
	Headline       string   `json:"headline"`
	Reassurance    string   `json:"reassurance"`
	Interpretation string   `json:"interpretation"`
	AstrologyLogic string   `json:"astrologyLogic"`
	ActionsDo      []string `json:"actionsDo"`
	ActionsAvoid   []string `json:"actionsAvoid"`
	Timing         string   `json:"timing"`
	OneSmallStep   string   `json:"oneSmallStep"`
}

// SimulationResult compares acting now (A) against waiting (B).
// RiskFactor and GrowthFactor are percentages in [0,100].
type SimulationResult struct {
	OptionA      string `json:"optionA"`
	OptionB      string `json:"optionB"`
	RiskFactor   int    `json:"riskFactor"`
	GrowthFactor int    `json:"growthFactor"`
	Explanation  string `json:"explanation"`
}
