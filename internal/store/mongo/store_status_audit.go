package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/Beka01247/dormeats/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type StoreStatusAuditRepository struct {
	collection *mongo.Collection
}

func NewStoreStatusAuditRepository(db *mongo.Database) *StoreStatusAuditRepository {
	return &StoreStatusAuditRepository{
		collection: db.Collection(CollectionStoreStatusAudit),
	}
}

func (r *StoreStatusAuditRepository) Create(ctx context.Context, audit *domain.StoreStatusAudit) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if audit.ID.IsZero() {
		audit.ID = primitive.NewObjectID()
	}
	if audit.Timestamp.IsZero() {
		audit.Timestamp = time.Now()
	}

	if _, err := r.collection.InsertOne(ctx, audit); err != nil {
		return fmt.Errorf("failed to create store status audit: %w", err)
	}

	return nil
}

func (r *StoreStatusAuditRepository) GetByStoreID(ctx context.Context, storeID primitive.ObjectID, limit int) ([]domain.StoreStatusAudit, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"store_id": storeID}
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}).SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to get store status audits: %w", err)
	}
	defer cursor.Close(ctx)

	audits := []domain.StoreStatusAudit{}
	if err := cursor.All(ctx, &audits); err != nil {
		return nil, fmt.Errorf("failed to decode store status audits: %w", err)
	}

	return audits, nil
}
