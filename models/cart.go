package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CartItem is one menu item added to a user's pending order. Quantity is
// implicit: adding the same item twice creates two rows.
type CartItem struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email      string             `bson:"email" json:"email" binding:"required,email"`
	MenuItemID string             `bson:"menuItemId" json:"menuItemId" binding:"required"`
	Name       string             `bson:"name" json:"name"`
	Image      string             `bson:"image" json:"image"`
	Price      float64            `bson:"price" json:"price"`
}
