package repo

import (
	"context"

	"github.com/Beka01247/dormeats/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FoodImportTaskRepository interface {
	Create(ctx context.Context, task *domain.FoodImportTask) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.FoodImportTask, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.ImportTaskStatus, errorMsg string) error
	Complete(ctx context.Context, id primitive.ObjectID, importedCount int) error
	IncrementRetryCount(ctx context.Context, id primitive.ObjectID) error
}
