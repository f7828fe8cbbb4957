package service_test

import (
	"context"

	"github.com/Beka01247/dormeats/internal/domain"
	"github.com/Beka01247/dormeats/internal/service"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// inlineTx runs fn without a session and counts calls.
type inlineTx struct {
	calls int
}

func (tx *inlineTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	tx.calls++
	return fn(ctx)
}

var (
	owner  = service.Actor{UserID: "seller-1"}
	other  = service.Actor{UserID: "seller-2"}
	admin  = service.Actor{UserID: "admin-1", Admin: true}
	logger = zap.NewNop().Sugar()

	pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
)

func approvedStore() *domain.Store {
	return &domain.Store{
		ID:      primitive.NewObjectID(),
		OwnerID: owner.UserID,
		Name:    "Noodle Bar",
		Status:  domain.StoreStatusApproved,
	}
}
