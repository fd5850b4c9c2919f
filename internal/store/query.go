package store

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/poiioq/5315-project/models"
)

// buildListFilter translates a [models.ListFilter] into a bson filter
// document.
//
// A non-empty Borough is an exact match. A non-empty Search matches a
// case-insensitive substring of the name or the cuisine; the search text is
// quoted so that regex metacharacters in user input are matched literally.
func buildListFilter(filter models.ListFilter) bson.M {
	query := bson.M{}

	if filter.Borough != "" {
		query["borough"] = filter.Borough
	}

	if filter.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"name": pattern},
			bson.M{"cuisine": pattern},
		}
	}

	return query
}

// buildPatch translates a [models.RestaurantPatch] into a "$set" update
// document containing only the fields the caller supplied.
func buildPatch(patch models.RestaurantPatch) bson.M {
	set := bson.M{}

	if patch.RestaurantID != nil {
		set["restaurant_id"] = *patch.RestaurantID
	}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Borough != nil {
		set["borough"] = *patch.Borough
	}
	if patch.Cuisine != nil {
		set["cuisine"] = *patch.Cuisine
	}
	if patch.Address != nil {
		set["address"] = *patch.Address
	}
	if patch.Grades != nil {
		set["grades"] = *patch.Grades
	}

	return bson.M{"$set": set}
}
