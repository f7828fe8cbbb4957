package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Food is a menu item belonging to a store. Field names on the wire match
// the documents the mobile app reads from the foods collection.
type Food struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Price       float64            `bson:"price" json:"price"`
	Description string             `bson:"description" json:"description"`
	Available   bool               `bson:"available" json:"available"`
	ImageURL    string             `bson:"imageUrl" json:"imageUrl"`
	StoreID     primitive.ObjectID `bson:"storeId" json:"storeId"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
