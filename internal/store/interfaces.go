package store

import (
	"context"

	"github.com/poiioq/5315-project/models"
)

// RestaurantRepository is the persistence gateway for restaurant documents.
//
// Identifiers are hex document ids. A lookup, update or delete of an id that
// does not exist returns [ErrRestaurantNotFound]; an id that is not valid
// hex at all returns [ErrInvalidDocumentID] instead of being misreported as
// a missing record.
type RestaurantRepository interface {
	Create(ctx context.Context, restaurant models.Restaurant) (models.Restaurant, error)
	List(ctx context.Context, filter models.ListFilter, page, perPage int64) ([]models.Restaurant, error)
	GetByID(ctx context.Context, id string) (models.Restaurant, error)
	UpdateByID(ctx context.Context, id string, patch models.RestaurantPatch) (models.Restaurant, error)
	DeleteByID(ctx context.Context, id string) error
}

// UserRepository is the persistence gateway for registered accounts.
// Username uniqueness is enforced atomically by the storage layer, so two
// concurrent registrations of the same username cannot both succeed.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}
