package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_TargetsOpenRouterWithoutKey(t *testing.T) {
	cfg := DefaultConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, "https://openrouter.ai/api/v1/chat/completions", cfg.Endpoint)
	assert.Empty(t, cfg.APIKey)
	assert.Equal(t, 45000, cfg.TaskTimeout(TaskPassage))
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("LUMIERES_LLM_ENDPOINT", "http://localhost:9999/v1/chat/completions")
	t.Setenv("LUMIERES_LLM_MODEL", "local/model")
	t.Setenv("LUMIERES_LLM_API_KEY", "sk-env")
	t.Setenv("LUMIERES_LLM_TIMEOUT_MS", "9000")
	t.Setenv("LUMIERES_LLM_PASSAGE_TIMEOUT_MS", "15000")
	t.Setenv("LUMIERES_LLM_MAX_RETRIES", "0")

	cfg := LoadConfig()

	assert.Equal(t, "http://localhost:9999/v1/chat/completions", cfg.Endpoint)
	assert.Equal(t, "local/model", cfg.Model)
	assert.Equal(t, "sk-env", cfg.APIKey)
	assert.Equal(t, 9000, cfg.TimeoutMs)
	assert.Equal(t, 15000, cfg.TaskTimeout(TaskPassage))
	assert.Equal(t, 0, cfg.MaxRetries)
}

func TestLoadConfig_InvalidValuesIgnored(t *testing.T) {
	t.Setenv("LUMIERES_LLM_PASSAGE_TIMEOUT_MS", "not-a-number")
	t.Setenv("LUMIERES_LLM_MAX_RETRIES", "-2")

	cfg := LoadConfig()

	assert.Equal(t, 45000, cfg.TaskTimeout(TaskPassage))
	assert.Equal(t, 1, cfg.MaxRetries)
}

func TestTaskTimeout_FallsBackToGlobal(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Tasks = map[TaskType]TaskConfig{}
	assert.Equal(t, cfg.TimeoutMs, cfg.TaskTimeout(TaskPassage))
}
