package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/Beka01247/dormeats/internal/domain"
	"github.com/Beka01247/dormeats/internal/repo"
	"go.uber.org/zap"
)

const topStoresUnavailable = "top stores are unavailable"

type DashboardService struct {
	dashboardRepo repo.DashboardRepository
	tx            Transactor
	logger        *zap.SugaredLogger
}

func NewDashboardService(dashboardRepo repo.DashboardRepository, tx Transactor, logger *zap.SugaredLogger) *DashboardService {
	return &DashboardService{
		dashboardRepo: dashboardRepo,
		tx:            tx,
		logger:        logger,
	}
}

// Get loads the latest week and the top stores. No stats yet yields an empty
// week; a top-stores failure is reported in DashboardView.Error.
func (s *DashboardService) Get(ctx context.Context, topLimit int) (*domain.DashboardView, error) {
	view := &domain.DashboardView{TopStores: []domain.TopStoreRevenue{}}

	stats, err := s.dashboardRepo.GetLatestStats(ctx)
	switch {
	case errors.Is(err, repo.ErrNotFound):
		view.Stats = domain.EmptyStats()
	case err != nil:
		return nil, fmt.Errorf("failed to get dashboard stats: %w", err)
	default:
		view.Stats = *stats
	}

	top, err := s.dashboardRepo.ListTopStores(ctx, topLimit)
	if err != nil {
		s.logger.Errorw("failed to load top stores", "error", err)
		view.Error = topStoresUnavailable
		return view, nil
	}
	view.TopStores = top

	return view, nil
}

func (s *DashboardService) RecordStats(ctx context.Context, stats *domain.AdminDashboardStats) error {
	if err := validateStats(stats); err != nil {
		return err
	}

	if stats.WeekStart.IsZero() {
		stats.WeekStart = WeekStart(time.Now())
	} else {
		stats.WeekStart = WeekStart(stats.WeekStart)
	}

	if err := s.dashboardRepo.UpsertStats(ctx, stats); err != nil {
		return fmt.Errorf("failed to record dashboard stats: %w", err)
	}

	s.logger.Infow("dashboard stats recorded", "week_start", stats.WeekStart.Format(time.DateOnly))

	return nil
}

func (s *DashboardService) ReplaceTopStores(ctx context.Context, stores []domain.TopStoreRevenue) error {
	for i, st := range stores {
		if st.StoreID == "" || st.TotalRevenue < 0 || st.TotalOrders < 0 {
			return fmt.Errorf("%w: top store %d", ErrInvalidStats, i)
		}
	}

	sorted := make([]domain.TopStoreRevenue, len(stores))
	copy(sorted, stores)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TotalRevenue > sorted[j].TotalRevenue
	})

	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		return s.dashboardRepo.ReplaceTopStores(ctx, sorted)
	})
	if err != nil {
		return fmt.Errorf("failed to replace top stores: %w", err)
	}

	s.logger.Infow("top stores replaced", "count", len(sorted))

	return nil
}

func validateStats(stats *domain.AdminDashboardStats) error {
	if len(stats.WeeklyRevenue) != domain.DaysPerWeek {
		return fmt.Errorf("%w: weeklyRevenue needs %d entries, got %d", ErrInvalidStats, domain.DaysPerWeek, len(stats.WeeklyRevenue))
	}
	if len(stats.WeeklyOrders) != domain.DaysPerWeek {
		return fmt.Errorf("%w: weeklyOrders needs %d entries, got %d", ErrInvalidStats, domain.DaysPerWeek, len(stats.WeeklyOrders))
	}
	for i := 0; i < domain.DaysPerWeek; i++ {
		if stats.WeeklyRevenue[i] < 0 || stats.WeeklyOrders[i] < 0 {
			return fmt.Errorf("%w: negative value on day %d", ErrInvalidStats, i)
		}
	}
	if stats.PendingStores < 0 || stats.PendingShippers < 0 || stats.NewUsers < 0 {
		return fmt.Errorf("%w: negative counter", ErrInvalidStats)
	}

	return nil
}

// WeekStart truncates t to Monday 00:00 UTC.
func WeekStart(t time.Time) time.Time {
	t = t.UTC()
	offset := (int(t.Weekday()) + 6) % 7
	y, m, d := t.AddDate(0, 0, -offset).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
