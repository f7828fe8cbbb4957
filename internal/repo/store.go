package repo

import (
	"context"

	"github.com/Beka01247/dormeats/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type StoreRepository interface {
	Create(ctx context.Context, store *domain.Store) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Store, error)
	GetByOwnerID(ctx context.Context, ownerID string) (*domain.Store, error)
	Update(ctx context.Context, store *domain.Store) error
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.StoreStatus) error
	SetImageURL(ctx context.Context, id primitive.ObjectID, url string) error
	ListByStatus(ctx context.Context, status domain.StoreStatus, limit int) ([]domain.Store, error)
}

type StoreStatusAuditRepository interface {
	Create(ctx context.Context, audit *domain.StoreStatusAudit) error
	GetByStoreID(ctx context.Context, storeID primitive.ObjectID, limit int) ([]domain.StoreStatusAudit, error)
}
