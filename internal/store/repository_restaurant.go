package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/poiioq/5315-project/internal/logger"
	"github.com/poiioq/5315-project/models"
)

// restaurantRepository is the MongoDB-backed implementation of
// [RestaurantRepository]. It operates on the "restaurants" collection.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type restaurantRepository struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

// NewRestaurantRepository constructs a [RestaurantRepository] backed by the
// provided database connection and logger.
func NewRestaurantRepository(db *DB, logger *logger.Logger) RestaurantRepository {
	logger.Debug().Msg("creating restaurant repository")
	return &restaurantRepository{
		collection: db.database.Collection(restaurantsCollection),
		logger:     logger,
	}
}

// Create inserts a new restaurant document and returns it with the
// server-assigned id.
func (r *restaurantRepository) Create(ctx context.Context, restaurant models.Restaurant) (models.Restaurant, error) {
	log := logger.FromContext(ctx)

	restaurant.ID = primitive.NilObjectID
	result, err := r.collection.InsertOne(ctx, restaurant)
	if err != nil {
		log.Err(err).Str("func", "*restaurantRepository.Create").Msg("error inserting restaurant")
		return models.Restaurant{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	restaurant.ID = result.InsertedID.(primitive.ObjectID)

	return restaurant, nil
}

// List returns one page of restaurants matching filter, ordered by
// restaurant_id ascending with the document id as a deterministic tiebreak.
// Pagination skips (page-1)*perPage documents and returns up to perPage.
func (r *restaurantRepository) List(ctx context.Context, filter models.ListFilter, page, perPage int64) ([]models.Restaurant, error) {
	log := logger.FromContext(ctx)

	opts := options.Find().
		SetSort(bson.D{{Key: "restaurant_id", Value: 1}, {Key: "_id", Value: 1}}).
		SetSkip((page - 1) * perPage).
		SetLimit(perPage)

	cursor, err := r.collection.Find(ctx, buildListFilter(filter), opts)
	if err != nil {
		log.Err(err).Str("func", "*restaurantRepository.List").Msg("error querying restaurants")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer cursor.Close(ctx)

	restaurants := make([]models.Restaurant, 0, perPage)
	if err := cursor.All(ctx, &restaurants); err != nil {
		log.Err(err).Str("func", "*restaurantRepository.List").Msg("error decoding restaurants")
		return nil, fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}

	return restaurants, nil
}

// GetByID fetches a single restaurant by its hex document id.
func (r *restaurantRepository) GetByID(ctx context.Context, id string) (models.Restaurant, error) {
	log := logger.FromContext(ctx)

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Restaurant{}, ErrInvalidDocumentID
	}

	var restaurant models.Restaurant
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&restaurant)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Restaurant{}, ErrRestaurantNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*restaurantRepository.GetByID").Msg("error fetching restaurant")
		return models.Restaurant{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return restaurant, nil
}

// UpdateByID applies the non-nil fields of patch to the document with the
// given id and returns the post-update record.
func (r *restaurantRepository) UpdateByID(ctx context.Context, id string, patch models.RestaurantPatch) (models.Restaurant, error) {
	log := logger.FromContext(ctx)

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Restaurant{}, ErrInvalidDocumentID
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Restaurant
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": objectID}, buildPatch(patch), opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Restaurant{}, ErrRestaurantNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*restaurantRepository.UpdateByID").Msg("error updating restaurant")
		return models.Restaurant{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return updated, nil
}

// DeleteByID removes the document with the given id. Deleting an id that is
// already gone reports [ErrRestaurantNotFound]; the operation is otherwise
// idempotent in effect.
func (r *restaurantRepository) DeleteByID(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidDocumentID
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		log.Err(err).Str("func", "*restaurantRepository.DeleteByID").Msg("error deleting restaurant")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if result.DeletedCount == 0 {
		return ErrRestaurantNotFound
	}

	return nil
}
