package aiquiz

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/HACKERPRO961/fen-oyunu/internal/config"
	"github.com/HACKERPRO961/fen-oyunu/internal/llm"
)

type Service interface {
	GenerateQuestions(ctx context.Context, req QuizRequest) (*GenerationResult, error)
}

type GenerationResult struct {
	ID        string
	Questions []ValidatedQuestion
	Dropped   int
}

type ServiceConfig struct {
	DefaultQuestionCount int
	MaxQuestionCount     int
	MaxTokens            int
	Temperature          float64
}

type service struct {
	provider llm.Provider
	cfg      ServiceConfig
}

func NewService(provider llm.Provider, cfg ServiceConfig) Service {
	if cfg.DefaultQuestionCount <= 0 {
		cfg.DefaultQuestionCount = 5
	}
	return &service{provider: provider, cfg: cfg}
}

func (s *service) GenerateQuestions(ctx context.Context, req QuizRequest) (*GenerationResult, error) {
	req = s.normalize(req)
	if req.Grade == "" || req.Unit == "" || req.Topic == "" {
		return nil, ErrMissingFields
	}

	id := uuid.NewString()
	ctx = llm.WithGenerationID(ctx, id)
	log := config.WithContext(ctx).WithFields(logrus.Fields{
		"generation_id":  id,
		"grade":          req.Grade,
		"unit":           req.Unit,
		"topic":          req.Topic,
		"question_count": req.QuestionCount,
	})
	log.Info("AI question request")

	resp, err := s.provider.Generate(ctx, llm.Request{
		Prompt:      BuildPrompt(req.Grade, req.Unit, req.Topic, req.QuestionCount),
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
		JSONOnly:    true,
	})
	if err != nil {
		if !llm.IsUnavailable(err) {
			err = &llm.ErrProviderUnavailable{Provider: s.provider.ModelID(), Err: err}
		}
		return nil, err
	}

	report, err := Parse(resp.Text, req)
	if err != nil {
		log.WithError(err).Error("could not process model output")
		return nil, err
	}

	logDropped(log, report.Dropped)
	log.WithField("count", len(report.Questions)).Info("questions generated")

	return &GenerationResult{
		ID:        id,
		Questions: report.Questions,
		Dropped:   len(report.Dropped),
	}, nil
}

func (s *service) normalize(req QuizRequest) QuizRequest {
	req.Grade = strings.TrimSpace(req.Grade)
	req.Unit = strings.TrimSpace(req.Unit)
	req.Topic = strings.TrimSpace(req.Topic)

	if req.QuestionCount <= 0 {
		req.QuestionCount = s.cfg.DefaultQuestionCount
	}
	if s.cfg.MaxQuestionCount > 0 && req.QuestionCount > s.cfg.MaxQuestionCount {
		req.QuestionCount = s.cfg.MaxQuestionCount
	}
	return req
}

func logDropped(log logrus.FieldLogger, dropped []ItemDiagnostic) {
	for _, d := range dropped {
		log.WithFields(logrus.Fields{
			"item_index": d.Index,
			"reason":     d.Reason,
		}).Warn("dropped invalid question from model output")
	}
}
