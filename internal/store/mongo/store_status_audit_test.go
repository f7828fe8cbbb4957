package mongo

import (
	"context"
	"testing"
	"time"

	"github.com/Beka01247/dormeats/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestStoreStatusAuditRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()
	storeID := primitive.NewObjectID()

	mt.Run("create stamps timestamp", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		r := NewStoreStatusAuditRepository(mt.DB)

		audit := &domain.StoreStatusAudit{StoreID: storeID, OldStatus: domain.StoreStatusPending, NewStatus: domain.StoreStatusApproved}
		require.NoError(t, r.Create(ctx, audit))

		assert.False(t, audit.ID.IsZero())
		assert.False(t, audit.Timestamp.IsZero())
	})

	mt.Run("history is newest first and limited", func(mt *mtest.T) {
		newer := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
		older := newer.Add(-48 * time.Hour)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "dormeats.store_status_audit", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "store_id", Value: storeID}, {Key: "new_status", Value: "REJECTED"}, {Key: "timestamp", Value: newer}},
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "store_id", Value: storeID}, {Key: "new_status", Value: "APPROVED"}, {Key: "timestamp", Value: older}},
		))
		r := NewStoreStatusAuditRepository(mt.DB)

		audits, err := r.GetByStoreID(ctx, storeID, 10)
		require.NoError(t, err)
		require.Len(t, audits, 2)
		assert.Equal(t, domain.StoreStatusRejected, audits[0].NewStatus)

		cmd := mt.GetStartedEvent().Command
		assert.EqualValues(t, -1, cmd.Lookup("sort", "timestamp").AsInt64())
		assert.EqualValues(t, 10, cmd.Lookup("limit").AsInt64())
		assert.Equal(t, storeID, cmd.Lookup("filter", "store_id").ObjectID())
	})

	mt.Run("no history is empty slice", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "dormeats.store_status_audit", mtest.FirstBatch))
		r := NewStoreStatusAuditRepository(mt.DB)

		audits, err := r.GetByStoreID(ctx, storeID, 10)
		require.NoError(t, err)
		assert.NotNil(t, audits)
		assert.Empty(t, audits)
	})
}
