package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Restaurant is the persisted restaurant document.
//
// ID is assigned by the storage layer on insert and is immutable afterwards.
// RestaurantID is the caller-supplied external identifier; it is required at
// creation time but its uniqueness is not enforced by this service.
type Restaurant struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	RestaurantID string             `bson:"restaurant_id" json:"restaurant_id" validate:"required"`
	Name         string             `bson:"name" json:"name" validate:"required"`
	Borough      string             `bson:"borough,omitempty" json:"borough,omitempty"`
	Cuisine      string             `bson:"cuisine,omitempty" json:"cuisine,omitempty"`
	Address      Address            `bson:"address,omitempty" json:"address,omitempty"`
	Grades       []Grade            `bson:"grades" json:"grades,omitempty"`
}

// Address is the nested address value of a restaurant document.
// Coord holds [longitude, latitude].
type Address struct {
	Building string    `bson:"building,omitempty" json:"building,omitempty"`
	Street   string    `bson:"street,omitempty" json:"street,omitempty"`
	Zipcode  string    `bson:"zipcode,omitempty" json:"zipcode,omitempty"`
	Coord    []float64 `bson:"coord,omitempty" json:"coord,omitempty"`
}

// Grade is one inspection entry in a restaurant's grade history.
// The sequence is ordered and carries no uniqueness constraint.
type Grade struct {
	Date  time.Time `bson:"date" json:"date"`
	Grade string    `bson:"grade" json:"grade"`
	Score float64   `bson:"score" json:"score"`
}

// RestaurantPatch describes a partial update of a restaurant document.
// Nil fields are left untouched; non-nil fields replace the stored value.
type RestaurantPatch struct {
	RestaurantID *string  `json:"restaurant_id,omitempty"`
	Name         *string  `json:"name,omitempty"`
	Borough      *string  `json:"borough,omitempty"`
	Cuisine      *string  `json:"cuisine,omitempty"`
	Address      *Address `json:"address,omitempty"`
	Grades       *[]Grade `json:"grades,omitempty"`
}

// IsEmpty reports whether the patch carries no fields at all.
func (p RestaurantPatch) IsEmpty() bool {
	return p.RestaurantID == nil && p.Name == nil && p.Borough == nil &&
		p.Cuisine == nil && p.Address == nil && p.Grades == nil
}

// ListFilter narrows a restaurant listing.
//
// Borough matches exactly when non-empty. Search, when non-empty, matches a
// case-insensitive substring of either the name or the cuisine; it is used by
// the rendered search page.
type ListFilter struct {
	Borough string
	Search  string
}
