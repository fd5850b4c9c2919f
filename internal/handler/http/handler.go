package http

import (
	"github.com/poiioq/5315-project/internal/config"
	"github.com/poiioq/5315-project/internal/logger"
	"github.com/poiioq/5315-project/internal/service"
)

type Handler struct {
	services *service.Services

	// development controls 500-response verbosity: raw error detail is
	// exposed to clients only in the development environment.
	development bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:    services,
		development: cfg.IsDevelopment(),
		logger:      logger,
	}
}
