package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	CollectionFoods            = "foods"
	CollectionStores           = "stores"
	CollectionDashboardStats   = "dashboard_stats"
	CollectionTopStoreRevenue  = "top_store_revenue"
	CollectionStoreStatusAudit = "store_status_audit"
	CollectionFoodImportTasks  = "food_import_tasks"
)

type Storage struct {
	client   *mongo.Client
	database *mongo.Database
	config   Config
}

type Config struct {
	URI         string
	Database    string
	Timeout     time.Duration
	MaxPoolSize uint64
	MinPoolSize uint64
}

func New(cfg Config) (*Storage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	if cfg.MaxPoolSize == 0 {
		cfg.MaxPoolSize = 100
	}
	if cfg.MinPoolSize == 0 {
		cfg.MinPoolSize = 10
	}

	clientOptions := options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &Storage{
		client:   client,
		database: client.Database(cfg.Database),
		config:   cfg,
	}, nil
}

func (s *Storage) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Storage) Database() *mongo.Database {
	return s.database
}

// WithTransaction runs fn inside a multi-document transaction. Repositories
// called with the ctx handed to fn join the transaction.
func (s *Storage) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := s.client.StartSession()
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		return nil, fn(sessCtx)
	})
	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

func (s *Storage) CreateIndexes(ctx context.Context) error {
	indexes := map[string][]mongo.IndexModel{
		CollectionFoods: {
			{Keys: bson.D{{Key: "storeId", Value: 1}, {Key: "available", Value: 1}}},
		},
		CollectionStores: {
			{
				Keys:    bson.D{{Key: "ownerId", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			{Keys: bson.D{{Key: "status", Value: 1}}},
		},
		CollectionDashboardStats: {
			{
				Keys:    bson.D{{Key: "week_start", Value: -1}},
				Options: options.Index().SetUnique(true),
			},
		},
		CollectionTopStoreRevenue: {
			{Keys: bson.D{{Key: "total_revenue", Value: -1}}},
		},
		CollectionStoreStatusAudit: {
			{Keys: bson.D{{Key: "store_id", Value: 1}, {Key: "timestamp", Value: -1}}},
		},
		CollectionFoodImportTasks: {
			{Keys: bson.D{{Key: "status", Value: 1}}},
			{Keys: bson.D{{Key: "created_at", Value: 1}}},
		},
	}

	for name, models := range indexes {
		if _, err := s.database.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create %s indexes: %w", name, err)
		}
	}

	return nil
}
