package aiquiz

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Routes serves question generation. Every response is freshly generated,
// so none of it may be cached.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.NoCache)

	r.Post("/", h.GenerateQuestions)
	return r
}
