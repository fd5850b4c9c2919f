package store

import (
	"github.com/poiioq/5315-project/internal/logger"
)

// Storages aggregates all repositories used by the service layer.
type Storages struct {
	UserRepository       UserRepository
	RestaurantRepository RestaurantRepository
}

// NewStorages wires every repository to the shared database connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:       NewUserRepository(db, logger),
		RestaurantRepository: NewRestaurantRepository(db, logger),
	}
}
