package service_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/Beka01247/dormeats/internal/domain"
	"github.com/Beka01247/dormeats/internal/repo"
	"github.com/Beka01247/dormeats/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionService_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("admin lands on dashboard", func(t *testing.T) {
		d := newStoreDeps(t)
		session, err := service.NewSessionService(d.svc).Resolve(ctx, admin, "admin")
		require.NoError(t, err)
		assert.Equal(t, service.HomeAdminDashboard, session.Home)
	})

	t.Run("seller without store registers one", func(t *testing.T) {
		d := newStoreDeps(t)
		d.stores.On("GetByOwnerID", ctx, owner.UserID).Return(nil, fmt.Errorf("store %w", repo.ErrNotFound)).Once()

		session, err := service.NewSessionService(d.svc).Resolve(ctx, owner, "seller")
		require.NoError(t, err)
		assert.Equal(t, service.HomeStoreRegistration, session.Home)
		assert.Equal(t, domain.StoreStatusNone, session.StoreStatus)
		assert.Empty(t, session.StoreID)
	})

	t.Run("seller with pending store", func(t *testing.T) {
		d := newStoreDeps(t)
		store := approvedStore()
		store.Status = domain.StoreStatusPending
		d.stores.On("GetByOwnerID", ctx, owner.UserID).Return(store, nil).Once()

		session, err := service.NewSessionService(d.svc).Resolve(ctx, owner, "seller")
		require.NoError(t, err)
		assert.Equal(t, service.HomeSellerHome, session.Home)
		assert.Equal(t, domain.StoreStatusPending, session.StoreStatus)
		assert.Equal(t, store.ID.Hex(), session.StoreID)
	})
}
