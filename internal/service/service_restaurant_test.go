package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/poiioq/5315-project/internal/logger"
	"github.com/poiioq/5315-project/internal/store"
	"github.com/poiioq/5315-project/models"
)

// mockRestaurantRepository implements store.RestaurantRepository for unit
// tests. Each method field can be overridden per test case; unset methods
// fail the test when called.
type mockRestaurantRepository struct {
	t          *testing.T
	createFn   func(ctx context.Context, restaurant models.Restaurant) (models.Restaurant, error)
	listFn     func(ctx context.Context, filter models.ListFilter, page, perPage int64) ([]models.Restaurant, error)
	getByIDFn  func(ctx context.Context, id string) (models.Restaurant, error)
	updateFn   func(ctx context.Context, id string, patch models.RestaurantPatch) (models.Restaurant, error)
	deleteByFn func(ctx context.Context, id string) error
}

func (m *mockRestaurantRepository) Create(ctx context.Context, restaurant models.Restaurant) (models.Restaurant, error) {
	if m.createFn == nil {
		m.t.Fatal("unexpected Create call")
	}
	return m.createFn(ctx, restaurant)
}

func (m *mockRestaurantRepository) List(ctx context.Context, filter models.ListFilter, page, perPage int64) ([]models.Restaurant, error) {
	if m.listFn == nil {
		m.t.Fatal("unexpected List call")
	}
	return m.listFn(ctx, filter, page, perPage)
}

func (m *mockRestaurantRepository) GetByID(ctx context.Context, id string) (models.Restaurant, error) {
	if m.getByIDFn == nil {
		m.t.Fatal("unexpected GetByID call")
	}
	return m.getByIDFn(ctx, id)
}

func (m *mockRestaurantRepository) UpdateByID(ctx context.Context, id string, patch models.RestaurantPatch) (models.Restaurant, error) {
	if m.updateFn == nil {
		m.t.Fatal("unexpected UpdateByID call")
	}
	return m.updateFn(ctx, id, patch)
}

func (m *mockRestaurantRepository) DeleteByID(ctx context.Context, id string) error {
	if m.deleteByFn == nil {
		m.t.Fatal("unexpected DeleteByID call")
	}
	return m.deleteByFn(ctx, id)
}

func TestCreate_Success(t *testing.T) {
	assigned := primitive.NewObjectID()
	repo := &mockRestaurantRepository{
		t: t,
		createFn: func(_ context.Context, r models.Restaurant) (models.Restaurant, error) {
			r.ID = assigned
			return r, nil
		},
	}
	svc := NewRestaurantService(repo, logger.Nop())

	created, err := svc.Create(context.Background(), models.Restaurant{RestaurantID: "123", Name: "Cafe X"})

	require.NoError(t, err)
	assert.Equal(t, assigned, created.ID)
	assert.Equal(t, "Cafe X", created.Name)
	assert.Equal(t, "123", created.RestaurantID)
}

func TestCreate_MissingRequiredFields(t *testing.T) {
	// no createFn: storage must never be reached
	svc := NewRestaurantService(&mockRestaurantRepository{t: t}, logger.Nop())

	tests := []struct {
		name       string
		restaurant models.Restaurant
	}{
		{name: "missing restaurant_id", restaurant: models.Restaurant{Name: "Cafe X"}},
		{name: "missing name", restaurant: models.Restaurant{RestaurantID: "123"}},
		{name: "missing both", restaurant: models.Restaurant{Borough: "Brooklyn"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.restaurant)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestList_InvalidPaginationNeverReachesStorage(t *testing.T) {
	svc := NewRestaurantService(&mockRestaurantRepository{t: t}, logger.Nop())

	tests := []struct {
		name    string
		page    int64
		perPage int64
	}{
		{name: "zero page", page: 0, perPage: 10},
		{name: "negative page", page: -1, perPage: 10},
		{name: "zero perPage", page: 1, perPage: 0},
		{name: "negative perPage", page: 1, perPage: -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.List(context.Background(), models.ListFilter{}, tt.page, tt.perPage)
			assert.ErrorIs(t, err, ErrInvalidPagination)
		})
	}
}

func TestList_PassesFilterAndPagination(t *testing.T) {
	var gotFilter models.ListFilter
	var gotPage, gotPerPage int64
	repo := &mockRestaurantRepository{
		t: t,
		listFn: func(_ context.Context, filter models.ListFilter, page, perPage int64) ([]models.Restaurant, error) {
			gotFilter, gotPage, gotPerPage = filter, page, perPage
			return []models.Restaurant{{RestaurantID: "1"}}, nil
		},
	}
	svc := NewRestaurantService(repo, logger.Nop())

	result, err := svc.List(context.Background(), models.ListFilter{Borough: "Queens"}, 2, 25)

	require.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, models.ListFilter{Borough: "Queens"}, gotFilter)
	assert.Equal(t, int64(2), gotPage)
	assert.Equal(t, int64(25), gotPerPage)
}

func TestUpdate_EmptyPatchReadsInsteadOfWriting(t *testing.T) {
	stored := models.Restaurant{RestaurantID: "123", Name: "Cafe X"}
	repo := &mockRestaurantRepository{
		t: t,
		getByIDFn: func(_ context.Context, _ string) (models.Restaurant, error) {
			return stored, nil
		},
		// no updateFn: an empty patch must not hit UpdateByID
	}
	svc := NewRestaurantService(repo, logger.Nop())

	got, err := svc.Update(context.Background(), primitive.NewObjectID().Hex(), models.RestaurantPatch{})

	require.NoError(t, err)
	assert.Equal(t, stored, got)
}

func TestUpdate_AppliesPatch(t *testing.T) {
	name := "Renamed"
	repo := &mockRestaurantRepository{
		t: t,
		updateFn: func(_ context.Context, _ string, patch models.RestaurantPatch) (models.Restaurant, error) {
			return models.Restaurant{RestaurantID: "123", Name: *patch.Name}, nil
		},
	}
	svc := NewRestaurantService(repo, logger.Nop())

	got, err := svc.Update(context.Background(), primitive.NewObjectID().Hex(), models.RestaurantPatch{Name: &name})

	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)
}

func TestDelete_NotFoundPropagates(t *testing.T) {
	repo := &mockRestaurantRepository{
		t: t,
		deleteByFn: func(_ context.Context, _ string) error {
			return store.ErrRestaurantNotFound
		},
	}
	svc := NewRestaurantService(repo, logger.Nop())

	err := svc.Delete(context.Background(), primitive.NewObjectID().Hex())

	assert.ErrorIs(t, err, store.ErrRestaurantNotFound)
}
