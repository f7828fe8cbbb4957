package service

import (
	"context"
	"fmt"

	"github.com/Beka01247/dormeats/internal/domain"
	"github.com/Beka01247/dormeats/internal/media"
	"github.com/Beka01247/dormeats/internal/repo"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type FoodInput struct {
	Name        string
	Price       float64
	Description string
	Available   bool
}

// FoodPatch carries the fields of a partial update; nil keeps the stored value.
type FoodPatch struct {
	Name        *string
	Price       *float64
	Description *string
	Available   *bool
}

type FoodService struct {
	foodRepo  repo.FoodRepository
	storeRepo repo.StoreRepository
	uploader  media.Uploader
	logger    *zap.SugaredLogger
}

func NewFoodService(
	foodRepo repo.FoodRepository,
	storeRepo repo.StoreRepository,
	uploader media.Uploader,
	logger *zap.SugaredLogger,
) *FoodService {
	return &FoodService{
		foodRepo:  foodRepo,
		storeRepo: storeRepo,
		uploader:  uploader,
		logger:    logger,
	}
}

// Create adds a menu item. Only approved stores can sell.
func (s *FoodService) Create(ctx context.Context, actor Actor, storeID primitive.ObjectID, input FoodInput) (*domain.Food, error) {
	store, err := s.storeRepo.GetByID(ctx, storeID)
	if err != nil {
		return nil, err
	}

	if err := authorizeOwner(store, actor); err != nil {
		return nil, err
	}

	if store.Status != domain.StoreStatusApproved {
		return nil, ErrStoreNotApproved
	}

	food := &domain.Food{
		Name:        input.Name,
		Price:       input.Price,
		Description: input.Description,
		Available:   input.Available,
		StoreID:     storeID,
	}

	if err := s.foodRepo.Create(ctx, food); err != nil {
		return nil, fmt.Errorf("failed to create food: %w", err)
	}

	s.logger.Infow("food created", "food_id", food.ID.Hex(), "store_id", storeID.Hex())

	return food, nil
}

func (s *FoodService) Get(ctx context.Context, id primitive.ObjectID) (*domain.Food, error) {
	return s.foodRepo.GetByID(ctx, id)
}

func (s *FoodService) ListByStore(ctx context.Context, storeID primitive.ObjectID, onlyAvailable bool) ([]domain.Food, error) {
	return s.foodRepo.ListByStore(ctx, storeID, onlyAvailable)
}

func (s *FoodService) Update(ctx context.Context, actor Actor, id primitive.ObjectID, patch FoodPatch) (*domain.Food, error) {
	food, err := s.authorizedFood(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		food.Name = *patch.Name
	}
	if patch.Price != nil {
		food.Price = *patch.Price
	}
	if patch.Description != nil {
		food.Description = *patch.Description
	}
	if patch.Available != nil {
		food.Available = *patch.Available
	}

	if err := s.foodRepo.Update(ctx, food); err != nil {
		return nil, fmt.Errorf("failed to update food: %w", err)
	}

	return food, nil
}

func (s *FoodService) SetAvailability(ctx context.Context, actor Actor, id primitive.ObjectID, available bool) error {
	if _, err := s.authorizedFood(ctx, actor, id); err != nil {
		return err
	}

	if err := s.foodRepo.SetAvailability(ctx, id, available); err != nil {
		return fmt.Errorf("failed to set availability: %w", err)
	}

	s.logger.Infow("food availability changed", "food_id", id.Hex(), "available", available)

	return nil
}

func (s *FoodService) Delete(ctx context.Context, actor Actor, id primitive.ObjectID) error {
	if _, err := s.authorizedFood(ctx, actor, id); err != nil {
		return err
	}

	if err := s.foodRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete food: %w", err)
	}

	s.logger.Infow("food deleted", "food_id", id.Hex())

	return nil
}

func (s *FoodService) UploadImage(ctx context.Context, actor Actor, id primitive.ObjectID, data []byte) (string, error) {
	if _, err := s.authorizedFood(ctx, actor, id); err != nil {
		return "", err
	}

	url, err := uploadImage(ctx, s.uploader, imagePrefixFoods, id.Hex(), data)
	if err != nil {
		return "", err
	}

	if err := s.foodRepo.SetImageURL(ctx, id, url); err != nil {
		return "", fmt.Errorf("failed to save food image: %w", err)
	}

	return url, nil
}

func (s *FoodService) authorizedFood(ctx context.Context, actor Actor, id primitive.ObjectID) (*domain.Food, error) {
	food, err := s.foodRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	store, err := s.storeRepo.GetByID(ctx, food.StoreID)
	if err != nil {
		return nil, err
	}

	if err := authorizeStore(store, actor); err != nil {
		return nil, err
	}

	return food, nil
}
