package repo

import (
	"context"

	"github.com/Beka01247/dormeats/internal/domain"
)

type DashboardRepository interface {
	UpsertStats(ctx context.Context, stats *domain.AdminDashboardStats) error
	GetLatestStats(ctx context.Context) (*domain.AdminDashboardStats, error)
	ReplaceTopStores(ctx context.Context, stores []domain.TopStoreRevenue) error
	ListTopStores(ctx context.Context, limit int) ([]domain.TopStoreRevenue, error)
}
