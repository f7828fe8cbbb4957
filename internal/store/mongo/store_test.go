package mongo

import (
	"context"
	"testing"

	"github.com/Beka01247/dormeats/internal/domain"
	"github.com/Beka01247/dormeats/internal/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestStoreRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("create duplicate owner", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error collection: dormeats.stores index: ownerId_1",
		}))
		r := NewStoreRepository(mt.DB)

		err := r.Create(ctx, &domain.Store{OwnerID: "u1", Name: "Noodle Bar", Status: domain.StoreStatusPending})
		assert.ErrorIs(t, err, repo.ErrConflict)
	})

	mt.Run("get by owner", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "dormeats.stores", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id},
			{Key: "ownerId", Value: "u1"},
			{Key: "name", Value: "Noodle Bar"},
			{Key: "openingHours", Value: "10:00-22:00"},
			{Key: "status", Value: "APPROVED"},
		}))
		r := NewStoreRepository(mt.DB)

		store, err := r.GetByOwnerID(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, id, store.ID)
		assert.Equal(t, "10:00-22:00", store.OpeningHours)
		assert.Equal(t, domain.StoreStatusApproved, store.Status)
	})

	mt.Run("get by id missing", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "dormeats.stores", mtest.FirstBatch))
		r := NewStoreRepository(mt.DB)

		_, err := r.GetByID(ctx, primitive.NewObjectID())
		assert.ErrorIs(t, err, repo.ErrNotFound)
	})

	mt.Run("update status", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))
		r := NewStoreRepository(mt.DB)

		assert.NoError(t, r.UpdateStatus(ctx, primitive.NewObjectID(), domain.StoreStatusRejected))
	})

	mt.Run("list by status", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "dormeats.stores", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "name", Value: "A"}, {Key: "status", Value: "PENDING"}},
		))
		r := NewStoreRepository(mt.DB)

		stores, err := r.ListByStatus(ctx, domain.StoreStatusPending, 50)
		require.NoError(t, err)
		require.Len(t, stores, 1)
		assert.Equal(t, domain.StoreStatusPending, stores[0].Status)
	})
}
