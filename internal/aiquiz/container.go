package aiquiz

import (
	"context"

	"github.com/HACKERPRO961/fen-oyunu/internal/config"
	"github.com/HACKERPRO961/fen-oyunu/internal/llm"
)

type AIQuizContainer struct {
	Provider llm.Provider
	Service  Service
	Handler  *Handler
}

func NewAIQuizContainer(ctx context.Context, cfg *config.Config) *AIQuizContainer {
	llmCfg := llm.ConfigFrom(cfg)

	provider, err := llm.NewProvider(ctx, llmCfg)
	if err != nil {
		config.WithContext(ctx).WithError(err).
			Warn("model provider unavailable; generation requests will answer 503")
		provider = llm.NewUnavailableProvider(llmCfg.Provider, err)
	}

	return NewAIQuizContainerWithProvider(cfg, provider)
}

// NewAIQuizContainerWithProvider wires the feature around an existing
// provider.
func NewAIQuizContainerWithProvider(cfg *config.Config, provider llm.Provider) *AIQuizContainer {
	service := NewService(provider, ServiceConfig{
		DefaultQuestionCount: cfg.DefaultQuestionCount,
		MaxQuestionCount:     cfg.MaxQuestionCount,
		MaxTokens:            cfg.LLMMaxTokens,
		Temperature:          cfg.LLMTemperature,
	})
	handler := NewHandler(service, HandlerOptions{
		ExposeErrorDetails: !cfg.IsProduction(),
		ModelTimeout:       cfg.LLMTimeout,
	})

	return &AIQuizContainer{
		Provider: provider,
		Service:  service,
		Handler:  handler,
	}
}
