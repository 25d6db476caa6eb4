package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/HACKERPRO961/fen-oyunu/internal/config"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, k := range []string{
		"PORT", "APP_ENV", "NODE_ENV", "LOG_LEVEL", "LLM_PROVIDER", "LLM_MAX_TOKENS",
		"LLM_TEMPERATURE", "LLM_TIMEOUT", "GEMINI_API_KEY", "GEMINI_MODEL",
		"QUIZ_DEFAULT_QUESTIONS", "QUIZ_MAX_QUESTIONS", "CORS_ALLOWED_ORIGINS",
	} {
		t.Setenv(k, "")
	}

	cfg := config.FromEnv()

	assert.Equal(t, "3001", cfg.Port)
	assert.Equal(t, ":3001", cfg.Addr())
	assert.Equal(t, config.EnvProduction, cfg.AppEnv)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "gemini", cfg.LLMProvider)
	assert.Equal(t, "gemini-flash", cfg.GeminiModel)
	assert.Equal(t, 4096, cfg.LLMMaxTokens)
	assert.InDelta(t, 0.7, cfg.LLMTemperature, 1e-9)
	assert.Zero(t, cfg.LLMTimeout)
	assert.Equal(t, 5, cfg.DefaultQuestionCount)
	assert.Equal(t, 20, cfg.MaxQuestionCount)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Run("NodeEnvFallback", func(t *testing.T) {
		t.Setenv("APP_ENV", "")
		t.Setenv("NODE_ENV", "Development")

		cfg := config.FromEnv()
		assert.Equal(t, config.EnvDevelopment, cfg.AppEnv)
		assert.False(t, cfg.IsProduction())
	})

	t.Run("ExplicitValues", func(t *testing.T) {
		t.Setenv("PORT", "0.0.0.0:9000")
		t.Setenv("LLM_PROVIDER", "OpenAI")
		t.Setenv("LLM_TIMEOUT", "45s")
		t.Setenv("QUIZ_MAX_QUESTIONS", "8")
		t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")

		cfg := config.FromEnv()
		assert.Equal(t, "0.0.0.0:9000", cfg.Addr())
		assert.Equal(t, "openai", cfg.LLMProvider)
		assert.Equal(t, 45*time.Second, cfg.LLMTimeout)
		assert.Equal(t, 8, cfg.MaxQuestionCount)
		assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	})

	t.Run("InvalidValuesFallBack", func(t *testing.T) {
		t.Setenv("LLM_MAX_TOKENS", "-3")
		t.Setenv("LLM_TEMPERATURE", "hot")
		t.Setenv("LLM_TIMEOUT", "soon")
		t.Setenv("QUIZ_DEFAULT_QUESTIONS", "zero")

		cfg := config.FromEnv()
		assert.Equal(t, 4096, cfg.LLMMaxTokens)
		assert.InDelta(t, 0.7, cfg.LLMTemperature, 1e-9)
		assert.Zero(t, cfg.LLMTimeout)
		assert.Equal(t, 5, cfg.DefaultQuestionCount)
	})
}
