package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment records a completed checkout. Created once, never updated after
// the cart purge finishes, never deleted.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email         string             `bson:"email" json:"email" binding:"required,email"`
	Amount        float64            `bson:"amount" json:"amount" binding:"required,gt=0"`
	TransactionID string             `bson:"transactionId" json:"transactionId" binding:"required"`
	CartIDs       []string           `bson:"cartIds" json:"cartIds" binding:"required,min=1"`
	MenuItemIDs   []string           `bson:"menuItemIds" json:"menuItemIds"`
	Date          time.Time          `bson:"date" json:"date"`

	// CartCleared is false until the purchased cart rows have been deleted.
	// A payment left with cartCleared=false marks an interrupted checkout
	// whose cart rows still need cleanup.
	CartCleared bool `bson:"cartCleared" json:"cartCleared"`
}
