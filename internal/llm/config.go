package llm

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of generation being requested.
type TaskType string

const (
	// TaskPassage asks the service for the text of a scripture reference.
	TaskPassage TaskType = "passage"
)

// TaskConfig holds per-task generation parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// LLMConfig holds all configuration for the text-generation fallback.
type LLMConfig struct {
	Enabled    bool
	Endpoint   string
	Model      string
	APIKey     string
	Referer    string
	AppTitle   string
	TimeoutMs  int
	MaxRetries int
	Tasks      map[TaskType]TaskConfig
}

// DefaultConfig returns an LLMConfig pointing at the OpenRouter chat
// completions endpoint. No API key is set; the fallback reports a
// configuration error until one is supplied.
func DefaultConfig() LLMConfig {
	return LLMConfig{
		Enabled:    true,
		Endpoint:   "https://openrouter.ai/api/v1/chat/completions",
		Model:      "google/gemini-2.0-flash-lite-preview-02-05:free",
		Referer:    "https://365lumieres.app",
		AppTitle:   "365 Lumières",
		TimeoutMs:  30000,
		MaxRetries: 1,
		Tasks: map[TaskType]TaskConfig{
			TaskPassage: {Temperature: 0.1, MaxTokens: 8192, TimeoutMs: 45000},
		},
	}
}

// LoadConfig reads configuration from LUMIERES_LLM_* environment variables,
// falling back to defaults for any unset values.
func LoadConfig() LLMConfig {
	cfg := DefaultConfig()

	if v := os.Getenv("LUMIERES_LLM_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("LUMIERES_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("LUMIERES_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("LUMIERES_LLM_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("LUMIERES_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("LUMIERES_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}

	applyTaskTimeoutEnv(&cfg, TaskPassage, "LUMIERES_LLM_PASSAGE_TIMEOUT_MS")

	return cfg
}

// TaskTimeout returns the effective timeout for a given task type.
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
