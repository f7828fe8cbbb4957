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
)

type FoodImportTaskRepository struct {
	collection *mongo.Collection
}

func NewFoodImportTaskRepository(db *mongo.Database) *FoodImportTaskRepository {
	return &FoodImportTaskRepository{
		collection: db.Collection(CollectionFoodImportTasks),
	}
}

func (r *FoodImportTaskRepository) Create(ctx context.Context, task *domain.FoodImportTask) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if task.ID.IsZero() {
		task.ID = primitive.NewObjectID()
	}
	task.CreatedAt = time.Now()
	task.UpdatedAt = task.CreatedAt

	if _, err := r.collection.InsertOne(ctx, task); err != nil {
		return fmt.Errorf("failed to create import task: %w", err)
	}

	return nil
}

func (r *FoodImportTaskRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.FoodImportTask, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var task domain.FoodImportTask
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&task)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("import task %w", repo.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get import task: %w", err)
	}

	return &task, nil
}

func (r *FoodImportTaskRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.ImportTaskStatus, errorMsg string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{
		"status":     status,
		"updated_at": time.Now(),
	}
	if errorMsg != "" {
		set["error_message"] = errorMsg
	}

	return r.updateOne(ctx, id, bson.M{"$set": set})
}

func (r *FoodImportTaskRepository) Complete(ctx context.Context, id primitive.ObjectID, importedCount int) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"status":         domain.ImportCompleted,
			"imported_count": importedCount,
			"updated_at":     time.Now(),
		},
		"$unset": bson.M{"error_message": ""},
	}

	return r.updateOne(ctx, id, update)
}

func (r *FoodImportTaskRepository) IncrementRetryCount(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$inc": bson.M{"retry_count": 1},
		"$set": bson.M{"updated_at": time.Now()},
	}

	return r.updateOne(ctx, id, update)
}

func (r *FoodImportTaskRepository) updateOne(ctx context.Context, id primitive.ObjectID, update bson.M) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update import task: %w", err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("import task %w", repo.ErrNotFound)
	}

	return nil
}
