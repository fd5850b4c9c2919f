package service

import (
	"github.com/poiioq/5315-project/internal/config"
	"github.com/poiioq/5315-project/internal/logger"
	"github.com/poiioq/5315-project/internal/store"
)

type Services struct {
	AuthService       AuthService
	RestaurantService RestaurantService
}

func NewServices(storages *store.Storages, cfg *config.Config, logger *logger.Logger) *Services {
	return &Services{
		AuthService:       NewAuthService(storages.UserRepository, cfg.App, logger),
		RestaurantService: NewRestaurantService(storages.RestaurantRepository, logger),
	}
}
