package service

import (
	"context"
	"errors"

	"github.com/Beka01247/dormeats/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrForbidden         = errors.New("forbidden")
	ErrStoreNotApproved  = errors.New("store is not approved")
	ErrInvalidStatus     = errors.New("invalid store status")
	ErrInvalidStats      = errors.New("invalid dashboard stats")
	ErrImportUnavailable = errors.New("spreadsheet import is not configured")
)

// Actor is the authenticated caller of a service operation.
type Actor struct {
	UserID string
	Admin  bool
}

// Transactor runs fn in a database transaction; *mongo.Storage implements it.
type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type FoodParser interface {
	ParseFoods(ctx context.Context, spreadsheetID string, storeID primitive.ObjectID) ([]domain.Food, error)
}

// authorizeOwner allows only the store owner; admins manage but do not stock stores.
func authorizeOwner(store *domain.Store, actor Actor) error {
	if actor.UserID != "" && store.OwnerID == actor.UserID {
		return nil
	}
	return ErrForbidden
}

// authorizeStore allows the store owner and administrators.
func authorizeStore(store *domain.Store, actor Actor) error {
	if actor.Admin || (actor.UserID != "" && store.OwnerID == actor.UserID) {
		return nil
	}
	return ErrForbidden
}
