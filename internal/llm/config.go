package llm

import (
	"os"
	"strconv"
	"strings"
)

// TaskType identifies the kind of generation being performed.
type TaskType string

const (
	TaskPredictionBasic   TaskType = "prediction_basic"
	TaskPredictionPremium TaskType = "prediction_premium"
	TaskSimulation        TaskType = "simulation"
)

// TaskConfig holds per-task generation parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// LLMConfig holds all configuration for the narrative endpoint.
type LLMConfig struct {
	LogCalls   bool
	Endpoint   string
	APIKey     string
	Model      string
	TimeoutMs  int
	MaxRetries int
	Tasks      map[TaskType]TaskConfig
}

// DefaultConfig returns an LLMConfig pointed at the SambaNova
// OpenAI-compatible API. No API key is set.
func DefaultConfig() LLMConfig {
	return LLMConfig{
		LogCalls:   false,
		Endpoint:   "https://api.sambanova.ai/v1",
		Model:      "Meta-Llama-3.3-70B-Instruct",
		TimeoutMs:  60000,
		MaxRetries: 0,
		Tasks: map[TaskType]TaskConfig{
			TaskPredictionBasic:   {Temperature: 0.7, MaxTokens: 2000},
			TaskPredictionPremium: {Temperature: 0.8, MaxTokens: 3000},
			TaskSimulation:        {Temperature: 0.7, MaxTokens: 2000},
		},
	}
}

// LoadConfig reads configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() LLMConfig {
	cfg := DefaultConfig()

	if v := os.Getenv("ASTROVEDA_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("ASTROVEDA_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = strings.TrimRight(v, "/")
	}
	if v := os.Getenv("ASTROVEDA_LLM_API_KEY"); v != "" {
		cfg.APIKey = v
	} else if v := os.Getenv("SAMBANOVA_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("ASTROVEDA_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("ASTROVEDA_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("ASTROVEDA_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}

	applyTaskTimeoutEnv(&cfg, TaskPredictionBasic, "ASTROVEDA_LLM_PREDICTION_BASIC_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskPredictionPremium, "ASTROVEDA_LLM_PREDICTION_PREMIUM_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskSimulation, "ASTROVEDA_LLM_SIMULATION_TIMEOUT_MS")

	return cfg
}

// Configured reports whether an endpoint and credential are present.
func (c LLMConfig) Configured() bool {
	return c.Endpoint != "" && c.APIKey != ""
}

// TaskTimeout returns the effective timeout for a given task type.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c LLMConfig) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

func applyTaskTimeoutEnv(cfg *LLMConfig, task TaskType, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	tc := cfg.Tasks[task]
	tc.TimeoutMs = n
	cfg.Tasks[task] = tc
}
