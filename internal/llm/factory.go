package llm

import (
	"context"
	"fmt"
)

// NewProvider builds the configured backend wrapped with logging.
func NewProvider(ctx context.Context, cfg Config) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base Provider
	var err error

	switch cfg.Provider {
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case ProviderMock:
		base = NewMockProvider().WithFallback(MockResponse{Text: SampleQuizText})
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return WithLogging(base, cfg.Provider), nil
}

type unavailableProvider struct {
	name  string
	cause error
}

// NewUnavailableProvider stands in for a backend that could not be built,
// so the process still serves and generation requests fail with 503.
func NewUnavailableProvider(name string, cause error) Provider {
	return &unavailableProvider{name: name, cause: cause}
}

func (p *unavailableProvider) Generate(context.Context, Request) (*Response, error) {
	return nil, &ErrProviderUnavailable{Provider: p.name, Err: p.cause}
}

func (p *unavailableProvider) ModelID() string {
	return "unavailable"
}
