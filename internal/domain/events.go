package domain

import "time"

type FoodImportMessage struct {
	TaskID        string `json:"task_id"`
	StoreID       string `json:"store_id"`
	SpreadsheetID string `json:"spreadsheet_id"`
}

type StoreStatusEvent struct {
	EventType string      `json:"event_type"`
	StoreID   string      `json:"store_id"`
	OldStatus StoreStatus `json:"old_status"`
	NewStatus StoreStatus `json:"new_status"`
	Reason    string      `json:"reason"`
	Timestamp time.Time   `json:"timestamp"`
	UserID    string      `json:"user_id"`
}

const (
	EventStoreStatusChanged = "store.status_changed"
)
