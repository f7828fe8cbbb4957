package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type StoreStatus string

const (
	// StoreStatusNone is reported for sellers without a store; it is never persisted.
	StoreStatusNone     StoreStatus = "NONE"
	StoreStatusPending  StoreStatus = "PENDING"
	StoreStatusApproved StoreStatus = "APPROVED"
	StoreStatusRejected StoreStatus = "REJECTED"
)

func (s StoreStatus) Valid() bool {
	switch s {
	case StoreStatusNone, StoreStatusPending, StoreStatusApproved, StoreStatusRejected:
		return true
	}
	return false
}

// AdminSettable reports whether an administrator may put a store into s.
func (s StoreStatus) AdminSettable() bool {
	return s == StoreStatusPending || s == StoreStatusApproved || s == StoreStatusRejected
}

type Store struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OwnerID      string             `bson:"ownerId" json:"ownerId"`
	Name         string             `bson:"name" json:"name"`
	Description  string             `bson:"description" json:"description"`
	Location     string             `bson:"location" json:"location"`
	OpeningHours string             `bson:"openingHours" json:"openingHours"`
	ImageURL     string             `bson:"imageUrl" json:"imageUrl"`
	Status       StoreStatus        `bson:"status" json:"status"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type StoreStatusAudit struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StoreID   primitive.ObjectID `bson:"store_id" json:"store_id"`
	OldStatus StoreStatus        `bson:"old_status" json:"old_status"`
	NewStatus StoreStatus        `bson:"new_status" json:"new_status"`
	Reason    string             `bson:"reason" json:"reason"`
	UserID    string             `bson:"user_id" json:"user_id"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}
