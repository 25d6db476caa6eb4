package llm

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockProvider(t *testing.T) {
	t.Run("FIFO", func(t *testing.T) {
		m := NewMockProvider(MockResponse{Text: "first"}, MockResponse{Text: "second"})

		r1, err := m.Generate(context.Background(), Request{Prompt: "a"})
		require.NoError(t, err)
		r2, err := m.Generate(context.Background(), Request{Prompt: "b"})
		require.NoError(t, err)

		assert.Equal(t, "first", r1.Text)
		assert.Equal(t, "second", r2.Text)
		assert.Equal(t, 2, m.CallCount())
		assert.Equal(t, "b", m.Calls[1].Prompt)
	})

	t.Run("EmptyQueueIsUnavailable", func(t *testing.T) {
		m := NewMockProvider()
		_, err := m.Generate(context.Background(), Request{})
		assert.True(t, IsUnavailable(err))
	})

	t.Run("CannedError", func(t *testing.T) {
		boom := errors.New("boom")
		m := NewMockProvider(MockResponse{Err: boom})
		_, err := m.Generate(context.Background(), Request{})
		assert.ErrorIs(t, err, boom)
	})

	t.Run("Fallback", func(t *testing.T) {
		m := NewMockProvider().WithFallback(MockResponse{Text: SampleQuizText})
		for range 3 {
			r, err := m.Generate(context.Background(), Request{})
			require.NoError(t, err)
			assert.Equal(t, SampleQuizText, r.Text)
		}
	})
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"gemini with key", Config{Provider: ProviderGemini, Gemini: GeminiConfig{APIKey: "k"}}, false},
		{"gemini without key", Config{Provider: ProviderGemini}, true},
		{"openai without key", Config{Provider: ProviderOpenAI}, true},
		{"anthropic without key", Config{Provider: ProviderAnthropic}, true},
		{"mock", Config{Provider: ProviderMock}, false},
		{"unknown", Config{Provider: "llama"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewProvider(t *testing.T) {
	ctx := context.Background()

	t.Run("Mock", func(t *testing.T) {
		p, err := NewProvider(ctx, Config{Provider: ProviderMock})
		require.NoError(t, err)
		assert.Equal(t, "mock", p.ModelID())

		resp, err := p.Generate(ctx, Request{Prompt: "x"})
		require.NoError(t, err)
		assert.Equal(t, SampleQuizText, resp.Text)
	})

	t.Run("OpenAIResolvesModel", func(t *testing.T) {
		p, err := NewProvider(ctx, Config{
			Provider: ProviderOpenAI,
			OpenAI:   OpenAIConfig{APIKey: "sk-test", Model: "gpt-4o-mini"},
		})
		require.NoError(t, err)
		assert.Equal(t, "gpt-4o-mini", p.ModelID())
	})

	t.Run("AnthropicResolvesAlias", func(t *testing.T) {
		p, err := NewProvider(ctx, Config{
			Provider:  ProviderAnthropic,
			Anthropic: AnthropicConfig{APIKey: "sk-ant-test", Model: "claude-haiku"},
		})
		require.NoError(t, err)
		assert.Equal(t, "claude-haiku-4-5-20251001", p.ModelID())
	})

	t.Run("MissingKey", func(t *testing.T) {
		_, err := NewProvider(ctx, Config{Provider: ProviderGemini})
		assert.Error(t, err)
	})
}

func TestUnavailableProvider(t *testing.T) {
	cause := fmt.Errorf("GEMINI_API_KEY is required")
	p := NewUnavailableProvider(ProviderGemini, cause)

	_, err := p.Generate(context.Background(), Request{Prompt: "x"})
	require.Error(t, err)

	var unavail *ErrProviderUnavailable
	require.ErrorAs(t, err, &unavail)
	assert.Equal(t, ProviderGemini, unavail.Provider)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "gemini unavailable")
}

func TestResolveModel(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.5-flash", "gemini-2.5-flash"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, resolveModel(tt.input, geminiModels), tt.input)
	}
}

func TestLoggingProviderPassesThrough(t *testing.T) {
	inner := NewMockProvider(MockResponse{Text: "ok"}, MockResponse{Err: &ErrProviderUnavailable{Provider: "mock"}})
	p := WithLogging(inner, ProviderMock)
	ctx := WithGenerationID(context.Background(), "gen-1")

	resp, err := p.Generate(ctx, Request{Prompt: "p"})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Text)

	_, err = p.Generate(ctx, Request{Prompt: "p"})
	assert.True(t, IsUnavailable(err))
	assert.Equal(t, "gen-1", GenerationIDFrom(ctx))
	assert.Equal(t, "mock", p.ModelID())
}
