package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/HACKERPRO961/fen-oyunu/internal/aiquiz"
	"github.com/HACKERPRO961/fen-oyunu/internal/config"
	"github.com/HACKERPRO961/fen-oyunu/internal/middlewares"
	"github.com/HACKERPRO961/fen-oyunu/internal/system"
)

type RouterConfig struct {
	AIQuizHandler      *aiquiz.Handler
	SystemHandler      *system.Handler
	CORSAllowedOrigins []string
	ExposeErrorDetails bool
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middlewares.ExposeRequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger:  config.Logger,
		NoColor: true,
	}))
	r.Use(middlewares.Recoverer(cfg.ExposeErrorDetails))
	r.Use(middlewares.Cors(cfg.CORSAllowedOrigins))

	// Unknown methods on known paths get the same answer as unknown paths.
	// Both must be set before Mount so sub-routers inherit them.
	r.NotFound(cfg.SystemHandler.NotFound)
	r.MethodNotAllowed(cfg.SystemHandler.NotFound)

	r.Get("/", cfg.SystemHandler.Root)
	r.Get("/health", cfg.SystemHandler.Health)
	r.Mount("/generate-questions", aiquiz.Routes(cfg.AIQuizHandler))

	return r
}
