package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/poiioq/5315-project/internal/config"
	"github.com/poiioq/5315-project/internal/logger"
)

const (
	restaurantsCollection = "restaurants"
	usersCollection       = "users"
)

// DB wraps a connected MongoDB client together with the application
// database handle and a logger.
type DB struct {
	client   *mongo.Client
	database *mongo.Database
	logger   *logger.Logger
}

// NewConnectMongo opens a MongoDB client for the configured connection
// string, verifies the connection with a ping, and ensures the indexes the
// repositories rely on.
//
// The unique index on users.username is what makes registration an atomic
// check-and-insert: of two concurrent registrations with the same username,
// exactly one insert succeeds and the other reports a duplicate key.
func NewConnectMongo(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.ConnectionString))
	if err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error occurred during database connection")
		return nil, fmt.Errorf("error occurred during database connection: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectMongo").Msg("connected to database successfully")

	db := &DB{
		client:   client,
		database: client.Database(cfg.Database),
		logger:   log,
	}

	if err := db.ensureIndexes(ctx); err != nil {
		return nil, err
	}

	return db, nil
}

// Close disconnects the underlying client.
func (db *DB) Close(ctx context.Context) error {
	return db.client.Disconnect(ctx)
}

func (db *DB) ensureIndexes(ctx context.Context) error {
	_, err := db.database.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("error creating username index: %w", err)
	}

	// Supports the restaurant_id ascending sort used by every listing.
	_, err = db.database.Collection(restaurantsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "restaurant_id", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("error creating restaurant_id index: %w", err)
	}

	return nil
}
