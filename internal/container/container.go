package container

import (
	"context"

	"github.com/HACKERPRO961/fen-oyunu/internal/aiquiz"
	"github.com/HACKERPRO961/fen-oyunu/internal/config"
	"github.com/HACKERPRO961/fen-oyunu/internal/router"
	"github.com/HACKERPRO961/fen-oyunu/internal/system"
)

type Container struct {
	Config          *config.Config
	AIQuizContainer *aiquiz.AIQuizContainer
	SystemHandler   *system.Handler
}

// New wires every feature from cfg. It never fails: a provider that cannot
// be built is replaced by one that reports the model service as unavailable.
func New(ctx context.Context, cfg *config.Config) *Container {
	config.InitLogger(cfg)

	return &Container{
		Config:          cfg,
		AIQuizContainer: aiquiz.NewAIQuizContainer(ctx, cfg),
		SystemHandler:   system.NewHandler(),
	}
}

func (c *Container) RouterConfig() router.RouterConfig {
	return router.RouterConfig{
		AIQuizHandler:      c.AIQuizContainer.Handler,
		SystemHandler:      c.SystemHandler,
		CORSAllowedOrigins: c.Config.CORSAllowedOrigins,
		ExposeErrorDetails: !c.Config.IsProduction(),
	}
}
