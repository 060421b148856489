package models

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MenuItem struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name     string             `bson:"name" json:"name" binding:"required"`
	Recipe   string             `bson:"recipe" json:"recipe"`
	Image    string             `bson:"image" json:"image"`
	Category string             `bson:"category" json:"category"`
	Price    float64            `bson:"price" json:"price" binding:"required,gt=0"`
}

// NormalizeCategory lower-cases the category so every stored document uses
// one casing regardless of what the client sent.
func (m *MenuItem) NormalizeCategory() {
	m.Category = strings.ToLower(m.Category)
}
