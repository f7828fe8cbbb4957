package service_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/Beka01247/dormeats/internal/domain"
	"github.com/Beka01247/dormeats/internal/mocks"
	"github.com/Beka01247/dormeats/internal/repo"
	"github.com/Beka01247/dormeats/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestFoodService_Create(t *testing.T) {
	ctx := context.Background()
	input := service.FoodInput{Name: "Pad Thai", Price: 45, Description: "rice noodles", Available: true}

	tests := []struct {
		name          string
		actor         service.Actor
		store         func() *domain.Store
		prepareMocks  func(foods *mocks.FoodRepository)
		expectedError error
	}{
		{
			name:  "owner of approved store",
			actor: owner,
			store: approvedStore,
			prepareMocks: func(foods *mocks.FoodRepository) {
				foods.On("Create", ctx, mock.MatchedBy(func(f *domain.Food) bool {
					return f.Name == "Pad Thai" && f.Price == 45 && f.Available
				})).Return(nil).Once()
			},
		},
		{
			name:  "pending store cannot sell",
			actor: owner,
			store: func() *domain.Store {
				s := approvedStore()
				s.Status = domain.StoreStatusPending
				return s
			},
			prepareMocks:  func(*mocks.FoodRepository) {},
			expectedError: service.ErrStoreNotApproved,
		},
		{
			name:          "another seller",
			actor:         other,
			store:         approvedStore,
			prepareMocks:  func(*mocks.FoodRepository) {},
			expectedError: service.ErrForbidden,
		},
		{
			name:          "admin cannot stock a store",
			actor:         admin,
			store:         approvedStore,
			prepareMocks:  func(*mocks.FoodRepository) {},
			expectedError: service.ErrForbidden,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			foods := mocks.NewFoodRepository(t)
			stores := mocks.NewStoreRepository(t)
			svc := service.NewFoodService(foods, stores, mocks.NewUploader(t), logger)

			store := testCase.store()
			stores.On("GetByID", ctx, store.ID).Return(store, nil).Once()
			testCase.prepareMocks(foods)

			food, err := svc.Create(ctx, testCase.actor, store.ID, input)
			assert.ErrorIs(t, err, testCase.expectedError)
			if testCase.expectedError == nil {
				assert.Equal(t, store.ID, food.StoreID)
			}
		})
	}
}

func TestFoodService_Create_UnknownStore(t *testing.T) {
	ctx := context.Background()
	foods := mocks.NewFoodRepository(t)
	stores := mocks.NewStoreRepository(t)
	svc := service.NewFoodService(foods, stores, mocks.NewUploader(t), logger)

	storeID := primitive.NewObjectID()
	stores.On("GetByID", ctx, storeID).Return(nil, fmt.Errorf("store %w", repo.ErrNotFound)).Once()

	_, err := svc.Create(ctx, owner, storeID, service.FoodInput{Name: "x"})
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestFoodService_ListByStore(t *testing.T) {
	ctx := context.Background()
	foods := mocks.NewFoodRepository(t)
	svc := service.NewFoodService(foods, mocks.NewStoreRepository(t), mocks.NewUploader(t), logger)

	storeID := primitive.NewObjectID()
	expected := []domain.Food{{Name: "A", StoreID: storeID, Available: true}}
	foods.On("ListByStore", ctx, storeID, true).Return(expected, nil).Once()

	got, err := svc.ListByStore(ctx, storeID, true)
	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestFoodService_OwnerOperations(t *testing.T) {
	ctx := context.Background()
	store := approvedStore()
	food := &domain.Food{ID: primitive.NewObjectID(), Name: "Pad Thai", StoreID: store.ID, Available: true}

	setup := func(t *testing.T, food *domain.Food) (*mocks.FoodRepository, *mocks.StoreRepository, *mocks.Uploader, *service.FoodService) {
		foods := mocks.NewFoodRepository(t)
		stores := mocks.NewStoreRepository(t)
		uploader := mocks.NewUploader(t)
		foods.On("GetByID", ctx, food.ID).Return(food, nil).Once()
		stores.On("GetByID", ctx, store.ID).Return(store, nil).Once()
		return foods, stores, uploader, service.NewFoodService(foods, stores, uploader, logger)
	}

	t.Run("set availability", func(t *testing.T) {
		foods, _, _, svc := setup(t, food)
		foods.On("SetAvailability", ctx, food.ID, false).Return(nil).Once()

		assert.NoError(t, svc.SetAvailability(ctx, owner, food.ID, false))
	})

	t.Run("set availability forbidden", func(t *testing.T) {
		_, _, _, svc := setup(t, food)

		assert.ErrorIs(t, svc.SetAvailability(ctx, other, food.ID, false), service.ErrForbidden)
	})

	t.Run("update keeps omitted fields", func(t *testing.T) {
		soldOut := &domain.Food{ID: food.ID, Name: "Pad Thai", Description: "rice noodles", StoreID: store.ID, Available: false}
		foods, _, _, svc := setup(t, soldOut)
		foods.On("Update", ctx, mock.MatchedBy(func(f *domain.Food) bool {
			return f.StoreID == store.ID && f.Price == 55 && !f.Available && f.Description == "rice noodles"
		})).Return(nil).Once()

		price := 55.0
		updated, err := svc.Update(ctx, owner, food.ID, service.FoodPatch{Price: &price})
		require.NoError(t, err)
		assert.Equal(t, 55.0, updated.Price)
		assert.False(t, updated.Available)
	})

	t.Run("admin deletes", func(t *testing.T) {
		foods, _, _, svc := setup(t, food)
		foods.On("Delete", ctx, food.ID).Return(nil).Once()

		assert.NoError(t, svc.Delete(ctx, admin, food.ID))
	})

	t.Run("upload image", func(t *testing.T) {
		foods, _, uploader, svc := setup(t, food)
		uploader.On("Upload", ctx, mock.AnythingOfType("string"), "image/png", pngBytes).Return("https://cdn/foods/1.png", nil).Once()
		foods.On("SetImageURL", ctx, food.ID, "https://cdn/foods/1.png").Return(nil).Once()

		url, err := svc.UploadImage(ctx, owner, food.ID, pngBytes)
		require.NoError(t, err)
		assert.Equal(t, "https://cdn/foods/1.png", url)
	})
}
