package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Beka01247/dormeats/internal/domain"
	"github.com/Beka01247/dormeats/internal/repo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FoodRepository struct {
	collection *mongo.Collection
}

func NewFoodRepository(db *mongo.Database) *FoodRepository {
	return &FoodRepository{
		collection: db.Collection(CollectionFoods),
	}
}

func (r *FoodRepository) Create(ctx context.Context, food *domain.Food) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if food.ID.IsZero() {
		food.ID = primitive.NewObjectID()
	}
	food.CreatedAt = time.Now()
	food.UpdatedAt = food.CreatedAt

	if _, err := r.collection.InsertOne(ctx, food); err != nil {
		return fmt.Errorf("failed to create food: %w", err)
	}

	return nil
}

func (r *FoodRepository) CreateMany(ctx context.Context, foods []domain.Food) error {
	if len(foods) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	now := time.Now()
	docs := make([]interface{}, len(foods))
	for i := range foods {
		if foods[i].ID.IsZero() {
			foods[i].ID = primitive.NewObjectID()
		}
		foods[i].CreatedAt = now
		foods[i].UpdatedAt = now
		docs[i] = foods[i]
	}

	if _, err := r.collection.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to create foods: %w", err)
	}

	return nil
}

func (r *FoodRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Food, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var food domain.Food
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&food)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("food %w", repo.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get food: %w", err)
	}

	return &food, nil
}

func (r *FoodRepository) ListByStore(ctx context.Context, storeID primitive.ObjectID, onlyAvailable bool) ([]domain.Food, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"storeId": storeID}
	if onlyAvailable {
		filter["available"] = true
	}
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list foods: %w", err)
	}
	defer cursor.Close(ctx)

	foods := []domain.Food{}
	if err := cursor.All(ctx, &foods); err != nil {
		return nil, fmt.Errorf("failed to decode foods: %w", err)
	}

	return foods, nil
}

func (r *FoodRepository) Update(ctx context.Context, food *domain.Food) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	food.UpdatedAt = time.Now()

	update := bson.M{
		"$set": bson.M{
			"name":        food.Name,
			"price":       food.Price,
			"description": food.Description,
			"available":   food.Available,
			"updatedAt":   food.UpdatedAt,
		},
	}

	return r.updateOne(ctx, food.ID, update)
}

func (r *FoodRepository) SetAvailability(ctx context.Context, id primitive.ObjectID, available bool) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"available": available,
			"updatedAt": time.Now(),
		},
	}

	return r.updateOne(ctx, id, update)
}

func (r *FoodRepository) SetImageURL(ctx context.Context, id primitive.ObjectID, url string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"imageUrl":  url,
			"updatedAt": time.Now(),
		},
	}

	return r.updateOne(ctx, id, update)
}

func (r *FoodRepository) updateOne(ctx context.Context, id primitive.ObjectID, update bson.M) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update food: %w", err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("food %w", repo.ErrNotFound)
	}

	return nil
}

func (r *FoodRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete food: %w", err)
	}

	if result.DeletedCount == 0 {
		return fmt.Errorf("food %w", repo.ErrNotFound)
	}

	return nil
}
