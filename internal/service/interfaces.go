package service

import (
	"context"

	"github.com/poiioq/5315-project/models"
)

// AuthService owns the credential and token lifecycle: registration, login
// and the issuing/verification of bearer tokens.
type AuthService interface {
	Register(ctx context.Context, creds models.Credentials) (models.User, error)
	Login(ctx context.Context, creds models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// RestaurantService validates restaurant operations and delegates
// persistence to the restaurant repository. Validation failures never reach
// storage.
type RestaurantService interface {
	Create(ctx context.Context, restaurant models.Restaurant) (models.Restaurant, error)
	List(ctx context.Context, filter models.ListFilter, page, perPage int64) ([]models.Restaurant, error)
	Get(ctx context.Context, id string) (models.Restaurant, error)
	Update(ctx context.Context, id string, patch models.RestaurantPatch) (models.Restaurant, error)
	Delete(ctx context.Context, id string) error
}
