package handler

import (
	"github.com/mealcart/list-keeper/internal/config"
	"github.com/mealcart/list-keeper/internal/handler/http"
	"github.com/mealcart/list-keeper/internal/logger"
	"github.com/mealcart/list-keeper/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
