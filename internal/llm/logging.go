package llm

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/HACKERPRO961/fen-oyunu/internal/config"
)

type loggingProvider struct {
	inner Provider
	name  string
}

// WithLogging wraps a Provider so every call is logged with its latency
// and outcome.
func WithLogging(p Provider, name string) Provider {
	return &loggingProvider{inner: p, name: name}
}

func (l *loggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)

	log := config.WithContext(ctx).WithFields(logrus.Fields{
		"provider":      l.name,
		"model":         l.inner.ModelID(),
		"generation_id": GenerationIDFrom(ctx),
		"latency_ms":    time.Since(start).Milliseconds(),
		"prompt_chars":  len(req.Prompt),
	})

	if err != nil {
		log.WithError(err).Error("model call failed")
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"response_chars": len(resp.Text),
		"input_tokens":   resp.Usage.InputTokens,
		"output_tokens":  resp.Usage.OutputTokens,
	}).Info("model call completed")
	log.Debugf("raw model response:\n%s", resp.Text)

	return resp, nil
}

func (l *loggingProvider) ModelID() string {
	return l.inner.ModelID()
}
