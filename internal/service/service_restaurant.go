package service

import (
	"context"

	"github.com/poiioq/5315-project/internal/logger"
	"github.com/poiioq/5315-project/internal/store"
	"github.com/poiioq/5315-project/models"
)

// restaurantService is the concrete implementation of RestaurantService.
// It enforces the creation and pagination invariants before any storage
// call; everything else is a direct pass-through to the repository.
type restaurantService struct {
	restaurantRepository store.RestaurantRepository
	logger               *logger.Logger
}

// NewRestaurantService constructs a RestaurantService wired to the given
// repository.
func NewRestaurantService(restaurantRepository store.RestaurantRepository, logger *logger.Logger) RestaurantService {
	return &restaurantService{
		restaurantRepository: restaurantRepository,
		logger:               logger,
	}
}

// Create inserts a new restaurant document. restaurant_id and name must be
// present and non-empty; no other field is required.
func (s *restaurantService) Create(ctx context.Context, restaurant models.Restaurant) (models.Restaurant, error) {
	log := logger.FromContext(ctx)

	if restaurant.RestaurantID == "" || restaurant.Name == "" {
		log.Error().Msg("restaurant is missing required fields")
		return models.Restaurant{}, ErrInvalidDataProvided
	}

	return s.restaurantRepository.Create(ctx, restaurant)
}

// List returns one page of restaurants. page and perPage must both be
// positive; non-conforming values are rejected before reaching storage.
func (s *restaurantService) List(ctx context.Context, filter models.ListFilter, page, perPage int64) ([]models.Restaurant, error) {
	if page < 1 || perPage < 1 {
		return nil, ErrInvalidPagination
	}

	return s.restaurantRepository.List(ctx, filter, page, perPage)
}

// Get fetches a single restaurant by id.
func (s *restaurantService) Get(ctx context.Context, id string) (models.Restaurant, error) {
	return s.restaurantRepository.GetByID(ctx, id)
}

// Update applies a partial update and returns the post-update record.
// An empty patch is a no-op read: the stored record is returned unchanged.
func (s *restaurantService) Update(ctx context.Context, id string, patch models.RestaurantPatch) (models.Restaurant, error) {
	if patch.IsEmpty() {
		return s.restaurantRepository.GetByID(ctx, id)
	}

	return s.restaurantRepository.UpdateByID(ctx, id, patch)
}

// Delete removes a restaurant. A missing record reports
// store.ErrRestaurantNotFound.
func (s *restaurantService) Delete(ctx context.Context, id string) error {
	return s.restaurantRepository.DeleteByID(ctx, id)
}
