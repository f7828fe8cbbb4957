package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Beka01247/dormeats/internal/domain"
	"github.com/Beka01247/dormeats/internal/repo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DashboardRepository struct {
	stats     *mongo.Collection
	topStores *mongo.Collection
}

func NewDashboardRepository(db *mongo.Database) *DashboardRepository {
	return &DashboardRepository{
		stats:     db.Collection(CollectionDashboardStats),
		topStores: db.Collection(CollectionTopStoreRevenue),
	}
}

func (r *DashboardRepository) UpsertStats(ctx context.Context, stats *domain.AdminDashboardStats) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	stats.UpdatedAt = time.Now()

	filter := bson.M{"week_start": stats.WeekStart}
	opts := options.Replace().SetUpsert(true)

	if _, err := r.stats.ReplaceOne(ctx, filter, stats, opts); err != nil {
		return fmt.Errorf("failed to upsert dashboard stats: %w", err)
	}

	return nil
}

func (r *DashboardRepository) GetLatestStats(ctx context.Context) (*domain.AdminDashboardStats, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{{Key: "week_start", Value: -1}})

	var stats domain.AdminDashboardStats
	err := r.stats.FindOne(ctx, bson.M{}, opts).Decode(&stats)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("dashboard stats %w", repo.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get dashboard stats: %w", err)
	}

	return &stats, nil
}

// ReplaceTopStores swaps the whole summary. Callers wanting atomicity run it
// inside Storage.WithTransaction.
func (r *DashboardRepository) ReplaceTopStores(ctx context.Context, stores []domain.TopStoreRevenue) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if _, err := r.topStores.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to clear top stores: %w", err)
	}

	if len(stores) == 0 {
		return nil
	}

	docs := make([]interface{}, len(stores))
	for i := range stores {
		docs[i] = stores[i]
	}

	if _, err := r.topStores.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert top stores: %w", err)
	}

	return nil
}

func (r *DashboardRepository) ListTopStores(ctx context.Context, limit int) ([]domain.TopStoreRevenue, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "total_revenue", Value: -1}}).
		SetLimit(int64(limit)).
		SetProjection(bson.M{"_id": 0})

	cursor, err := r.topStores.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list top stores: %w", err)
	}
	defer cursor.Close(ctx)

	stores := []domain.TopStoreRevenue{}
	if err := cursor.All(ctx, &stores); err != nil {
		return nil, fmt.Errorf("failed to decode top stores: %w", err)
	}

	return stores, nil
}
