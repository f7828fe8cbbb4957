package domain

import "time"

const DaysPerWeek = 7

// AdminDashboardStats holds counters computed outside this service.
type AdminDashboardStats struct {
	WeekStart       time.Time `bson:"week_start" json:"weekStart"`
	WeeklyRevenue   []float64 `bson:"weekly_revenue" json:"weeklyRevenue"`
	WeeklyOrders    []int64   `bson:"weekly_orders" json:"weeklyOrders"`
	PendingStores   int64     `bson:"pending_stores" json:"pendingStores"`
	PendingShippers int64     `bson:"pending_shippers" json:"pendingShippers"`
	NewUsers        int64     `bson:"new_users" json:"newUsers"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updatedAt"`
}

type TopStoreRevenue struct {
	StoreID      string  `bson:"store_id" json:"storeId"`
	StoreName    string  `bson:"store_name" json:"storeName"`
	TotalRevenue float64 `bson:"total_revenue" json:"totalRevenue"`
	TotalOrders  int64   `bson:"total_orders" json:"totalOrders"`
}

// DashboardView is what the admin dashboard renders. Error carries a
// partial-load failure; it is empty when everything loaded.
type DashboardView struct {
	Stats     AdminDashboardStats `json:"stats"`
	TopStores []TopStoreRevenue   `json:"topStores"`
	Error     string              `json:"error,omitempty"`
}

// EmptyStats is returned when no week has been recorded yet.
func EmptyStats() AdminDashboardStats {
	return AdminDashboardStats{
		WeeklyRevenue: make([]float64, DaysPerWeek),
		WeeklyOrders:  make([]int64, DaysPerWeek),
	}
}
