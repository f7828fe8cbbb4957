package repo

import (
	"context"

	"github.com/Beka01247/dormeats/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FoodRepository interface {
	Create(ctx context.Context, food *domain.Food) error
	CreateMany(ctx context.Context, foods []domain.Food) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Food, error)
	ListByStore(ctx context.Context, storeID primitive.ObjectID, onlyAvailable bool) ([]domain.Food, error)
	Update(ctx context.Context, food *domain.Food) error
	SetAvailability(ctx context.Context, id primitive.ObjectID, available bool) error
	SetImageURL(ctx context.Context, id primitive.ObjectID, url string) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
