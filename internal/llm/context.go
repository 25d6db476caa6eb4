package llm

import "context"

type contextKey string

const generationKey contextKey = "llm_generation_id"

// WithGenerationID tags the context so provider logs can be correlated
// with the request that triggered them.
func WithGenerationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, generationKey, id)
}

func GenerationIDFrom(ctx context.Context) string {
	if v, ok := ctx.Value(generationKey).(string); ok {
		return v
	}
	return ""
}
