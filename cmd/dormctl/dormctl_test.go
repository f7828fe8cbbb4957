package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/Beka01247/dormeats/internal/auth"
	"github.com/Beka01247/dormeats/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingDashboard struct {
	stats *domain.AdminDashboardStats
	top   []domain.TopStoreRevenue
}

func (r *recordingDashboard) RecordStats(_ context.Context, stats *domain.AdminDashboardStats) error {
	r.stats = stats
	return nil
}

func (r *recordingDashboard) ReplaceTopStores(_ context.Context, stores []domain.TopStoreRevenue) error {
	r.top = stores
	return nil
}

func TestLoadStatsFile(t *testing.T) {
	t.Run("stats and top stores", func(t *testing.T) {
		data, err := loadStatsFile(strings.NewReader(`{
			"stats": {"weekStart": "2026-10-12T00:00:00Z", "weeklyRevenue": [1,2,3,4,5,6,7], "weeklyOrders": [1,1,1,1,1,1,1], "newUsers": 3},
			"topStores": [{"storeId": "s1", "storeName": "Noodle Bar", "totalRevenue": 120.5, "totalOrders": 9}]
		}`))
		require.NoError(t, err)
		assert.Equal(t, int64(3), data.Stats.NewUsers)
		assert.Len(t, data.TopStores, 1)
	})

	t.Run("empty document", func(t *testing.T) {
		_, err := loadStatsFile(strings.NewReader(`{}`))
		assert.Error(t, err)
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := loadStatsFile(strings.NewReader(`{"revenue": []}`))
		assert.Error(t, err)
	})
}

func TestImportStats(t *testing.T) {
	dashboard := &recordingDashboard{}
	data := &statsFile{TopStores: []domain.TopStoreRevenue{{StoreID: "s1"}, {StoreID: "s2"}}}
	var out bytes.Buffer

	require.NoError(t, importStats(context.Background(), dashboard, data, &out))
	assert.Nil(t, dashboard.stats)
	assert.Len(t, dashboard.top, 2)
	assert.Contains(t, out.String(), "Replaced 2 top stores.")
}

func TestTokenCommand(t *testing.T) {
	t.Setenv("AUTH_TOKEN_SECRET", "cli-secret")
	t.Setenv("AUTH_TOKEN_ISSUER", "dormeats")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"token", "--user", "admin-1", "--role", "admin", "--ttl", "1h"})
	require.NoError(t, rootCmd.Execute())

	authenticator := auth.NewAuthenticator(auth.Config{Secret: "cli-secret", Issuer: "dormeats"})
	claims, err := authenticator.ValidateToken(strings.TrimSpace(out.String()))
	require.NoError(t, err)
	assert.Equal(t, "admin-1", claims.UserID)
	assert.True(t, claims.IsAdmin())
}

func TestTokenCommand_RequiresSecretOutsideDevelopment(t *testing.T) {
	t.Setenv("AUTH_TOKEN_SECRET", "")
	t.Setenv("ENV", "production")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"token", "--user", "admin-1", "--role", "admin"})
	assert.ErrorIs(t, rootCmd.Execute(), auth.ErrMissingSecret)
}
