package handler

import (
	"github.com/vkarpenko/clocksync/internal/config"
	"github.com/vkarpenko/clocksync/internal/handler/http"
	"github.com/vkarpenko/clocksync/internal/logger"
	"github.com/vkarpenko/clocksync/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
