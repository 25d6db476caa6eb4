package llm

import "context"

// Provider is the model-service boundary: prompt text in, generated text out.
// Implementations must be safe for concurrent use.
type Provider interface {
	// Generate sends the prompt and returns the model's raw text. Transport
	// and service failures are reported as *ErrProviderUnavailable.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes a single-turn generation.
type Request struct {
	Prompt string

	// MaxTokens caps the response length. Zero leaves the provider default.
	MaxTokens int

	// Temperature controls randomness. Zero leaves the provider default.
	Temperature float64

	// JSONOnly asks the provider for its native JSON output mode, when it
	// has one. The caller must still treat the text as untrusted.
	JSONOnly bool
}

// Response holds the model's output.
type Response struct {
	Text  string
	Model string
	Usage Usage
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
