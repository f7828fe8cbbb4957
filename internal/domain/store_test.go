package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoreStatus(t *testing.T) {
	tests := []struct {
		status   StoreStatus
		valid    bool
		settable bool
	}{
		{StoreStatusNone, true, false},
		{StoreStatusPending, true, true},
		{StoreStatusApproved, true, true},
		{StoreStatusRejected, true, true},
		{StoreStatus("approved"), false, false},
		{StoreStatus(""), false, false},
	}

	for _, tc := range tests {
		t.Run(string(tc.status), func(t *testing.T) {
			assert.Equal(t, tc.valid, tc.status.Valid())
			assert.Equal(t, tc.settable, tc.status.AdminSettable())
		})
	}
}

func TestEmptyStatsHasFullWeek(t *testing.T) {
	stats := EmptyStats()
	assert.Len(t, stats.WeeklyRevenue, DaysPerWeek)
	assert.Len(t, stats.WeeklyOrders, DaysPerWeek)
}
