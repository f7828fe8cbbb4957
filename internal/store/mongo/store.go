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

type StoreRepository struct {
	collection *mongo.Collection
}

func NewStoreRepository(db *mongo.Database) *StoreRepository {
	return &StoreRepository{
		collection: db.Collection(CollectionStores),
	}
}

func (r *StoreRepository) Create(ctx context.Context, store *domain.Store) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if store.ID.IsZero() {
		store.ID = primitive.NewObjectID()
	}
	store.CreatedAt = time.Now()
	store.UpdatedAt = store.CreatedAt

	if _, err := r.collection.InsertOne(ctx, store); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("store for owner %s %w", store.OwnerID, repo.ErrConflict)
		}
		return fmt.Errorf("failed to create store: %w", err)
	}

	return nil
}

func (r *StoreRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Store, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *StoreRepository) GetByOwnerID(ctx context.Context, ownerID string) (*domain.Store, error) {
	return r.findOne(ctx, bson.M{"ownerId": ownerID})
}

func (r *StoreRepository) findOne(ctx context.Context, filter bson.M) (*domain.Store, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var store domain.Store
	err := r.collection.FindOne(ctx, filter).Decode(&store)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("store %w", repo.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get store: %w", err)
	}

	return &store, nil
}

// Update writes the owner-editable fields. Status and image are left alone.
func (r *StoreRepository) Update(ctx context.Context, store *domain.Store) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	store.UpdatedAt = time.Now()

	update := bson.M{
		"$set": bson.M{
			"name":         store.Name,
			"description":  store.Description,
			"location":     store.Location,
			"openingHours": store.OpeningHours,
			"updatedAt":    store.UpdatedAt,
		},
	}

	return r.updateOne(ctx, store.ID, update)
}

func (r *StoreRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.StoreStatus) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"status":    status,
			"updatedAt": time.Now(),
		},
	}

	return r.updateOne(ctx, id, update)
}

func (r *StoreRepository) SetImageURL(ctx context.Context, id primitive.ObjectID, url string) error {
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

func (r *StoreRepository) updateOne(ctx context.Context, id primitive.ObjectID, update bson.M) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update store: %w", err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("store %w", repo.ErrNotFound)
	}

	return nil
}

func (r *StoreRepository) ListByStatus(ctx context.Context, status domain.StoreStatus, limit int) ([]domain.Store, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: 1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{"status": status}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list stores: %w", err)
	}
	defer cursor.Close(ctx)

	stores := []domain.Store{}
	if err := cursor.All(ctx, &stores); err != nil {
		return nil, fmt.Errorf("failed to decode stores: %w", err)
	}

	return stores, nil
}
