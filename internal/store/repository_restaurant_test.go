package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/poiioq/5315-project/models"
)

// Malformed ids are rejected before any database round trip, so these tests
// run against a repository with no live connection.
func TestRestaurantRepository_MalformedID(t *testing.T) {
	repo := &restaurantRepository{}
	ctx := context.Background()

	tests := []struct {
		name string
		id   string
	}{
		{name: "not hex", id: "not-a-hex-id"},
		{name: "too short", id: "abc123"},
		{name: "empty", id: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repo.GetByID(ctx, tt.id)
			assert.ErrorIs(t, err, ErrInvalidDocumentID)

			_, err = repo.UpdateByID(ctx, tt.id, models.RestaurantPatch{})
			assert.ErrorIs(t, err, ErrInvalidDocumentID)

			err = repo.DeleteByID(ctx, tt.id)
			assert.ErrorIs(t, err, ErrInvalidDocumentID)
		})
	}
}

func TestRestaurantRepository_MalformedIDIsNotNotFound(t *testing.T) {
	repo := &restaurantRepository{}

	_, err := repo.GetByID(context.Background(), "not-a-hex-id")

	assert.NotErrorIs(t, err, ErrRestaurantNotFound)
}
