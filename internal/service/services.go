package service

import (
	"github.com/mealcart/list-keeper/internal/config"
	"github.com/mealcart/list-keeper/internal/logger"
	"github.com/mealcart/list-keeper/internal/store"
)

type Services struct {
	AuthService    AuthService
	ListService    ListService
	AppInfoService AppInfoService
}

func NewServices(storages store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		ListService:    NewListService(storages.ListRepository, logger),
		AppInfoService: appInfoService,
	}, nil
}
