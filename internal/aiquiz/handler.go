package aiquiz

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/HACKERPRO961/fen-oyunu/internal/config"
	"github.com/HACKERPRO961/fen-oyunu/internal/llm"
)

const (
	msgInvalidBody        = "Geçersiz istek gövdesi"
	msgMissingFields      = "Eksik bilgi: grade, unit ve topic zorunludur"
	msgServiceUnavailable = "AI servisi şu anda kullanılamıyor"
	msgRetryLater         = "Lütfen daha sonra tekrar deneyin"
	msgParseFailed        = "AI cevabı işlenemedi"
	msgServerError        = "Sunucu hatası"
	msgUnexpectedError    = "Beklenmedik bir hata oluştu"
)

type HandlerOptions struct {
	// ExposeErrorDetails puts internal error text in 500 responses.
	ExposeErrorDetails bool

	// ModelTimeout bounds the whole generation. Zero means no limit.
	ModelTimeout time.Duration
}

type Handler struct {
	service Service
	opts    HandlerOptions
}

func NewHandler(s Service, opts HandlerOptions) *Handler {
	return &Handler{service: s, opts: opts}
}

func (h *Handler) GenerateQuestions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	req, err := decodeQuizRequest(w, r)
	if err != nil {
		log.WithError(err).Warn("invalid request body for question generation")
		config.JSON(w, http.StatusBadRequest, ErrorResponse{Error: msgInvalidBody})
		return
	}

	ctx := r.Context()
	if h.opts.ModelTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.opts.ModelTimeout)
		defer cancel()
	}

	result, err := h.service.GenerateQuestions(ctx, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	questions := result.Questions
	if questions == nil {
		questions = []ValidatedQuestion{}
	}
	config.JSON(w, http.StatusOK, GenerateResponse{
		Success:   true,
		Questions: questions,
		Count:     len(questions),
		Message:   fmt.Sprintf("%d yapay zeka sorusu üretildi", len(questions)),
	})
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := config.WithContext(r.Context())

	var parseErr *ParseError
	switch {
	case errors.Is(err, ErrMissingFields):
		log.Warn("question request without grade, unit or topic")
		config.JSON(w, http.StatusBadRequest, ErrorResponse{Error: msgMissingFields})

	case llm.IsUnavailable(err):
		log.WithError(err).Error("model service unavailable")
		config.JSON(w, http.StatusServiceUnavailable, ErrorResponse{
			Error:   msgServiceUnavailable,
			Details: msgRetryLater,
		})

	case errors.As(err, &parseErr):
		config.JSON(w, http.StatusInternalServerError, ErrorResponse{
			Error:   msgParseFailed,
			Details: parseErr.Error(),
		})

	default:
		log.WithError(err).Error("unexpected error while generating questions")
		details := msgUnexpectedError
		if h.opts.ExposeErrorDetails {
			details = err.Error()
		}
		config.JSON(w, http.StatusInternalServerError, ErrorResponse{
			Error:   msgServerError,
			Details: details,
		})
	}
}
