package container_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HACKERPRO961/fen-oyunu/internal/config"
	"github.com/HACKERPRO961/fen-oyunu/internal/container"
	"github.com/HACKERPRO961/fen-oyunu/internal/llm"
)

func TestNew(t *testing.T) {
	t.Run("MockProvider", func(t *testing.T) {
		cfg := &config.Config{AppEnv: config.EnvDevelopment, LogLevel: "info", LLMProvider: llm.ProviderMock}

		c := container.New(context.Background(), cfg)
		require.NotNil(t, c.AIQuizContainer)
		assert.Equal(t, "mock", c.AIQuizContainer.Provider.ModelID())

		rc := c.RouterConfig()
		assert.True(t, rc.ExposeErrorDetails)
		assert.NotNil(t, rc.AIQuizHandler)
		assert.NotNil(t, rc.SystemHandler)
	})

	t.Run("MissingKeyStillStarts", func(t *testing.T) {
		cfg := &config.Config{AppEnv: config.EnvProduction, LogLevel: "info", LLMProvider: llm.ProviderGemini}

		c := container.New(context.Background(), cfg)
		assert.Equal(t, "unavailable", c.AIQuizContainer.Provider.ModelID())
		assert.False(t, c.RouterConfig().ExposeErrorDetails)
	})
}
