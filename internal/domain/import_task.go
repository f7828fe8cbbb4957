package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ImportTaskStatus string

const (
	ImportQueued     ImportTaskStatus = "queued"
	ImportProcessing ImportTaskStatus = "processing"
	ImportCompleted  ImportTaskStatus = "completed"
	ImportFailed     ImportTaskStatus = "failed"
)

type FoodImportTask struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StoreID       primitive.ObjectID `bson:"store_id" json:"store_id"`
	RequestedBy   string             `bson:"requested_by" json:"requested_by"`
	SpreadsheetID string             `bson:"spreadsheet_id" json:"spreadsheet_id"`
	Status        ImportTaskStatus   `bson:"status" json:"status"`
	ImportedCount int                `bson:"imported_count" json:"imported_count"`
	ErrorMessage  string             `bson:"error_message,omitempty" json:"error_message,omitempty"`
	RetryCount    int                `bson:"retry_count" json:"retry_count"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updated_at"`
}
