package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
)

// Collection names used by the service.
const (
	Users    = "users"
	Menu     = "menu"
	Carts    = "carts"
	Payments = "payments"
)

// ErrInvalidID is returned when a route parameter that must be an ObjectID
// does not parse as one.
var ErrInvalidID = errors.New("invalid document id")

// InsertResult mirrors the driver's insert acknowledgement; the field name
// matches what API clients already expect in response bodies.
type InsertResult struct {
	InsertedID interface{} `json:"insertedId"`
}

type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}

// Store is the generic contract over the named document collections. Absent
// single-document lookups return (nil, nil) rather than an error; handlers
// treat "not found" as an empty result, not a failure.
type Store interface {
	FindAll(ctx context.Context, coll string) ([]bson.M, error)
	FindOne(ctx context.Context, coll string, filter bson.M) (bson.M, error)
	FindMany(ctx context.Context, coll string, filter bson.M) ([]bson.M, error)
	InsertOne(ctx context.Context, coll string, doc interface{}) (*InsertResult, error)
	UpdateOne(ctx context.Context, coll string, filter, set bson.M) (*UpdateResult, error)
	DeleteOne(ctx context.Context, coll string, filter bson.M) (*DeleteResult, error)
	DeleteMany(ctx context.Context, coll string, filter bson.M) (*DeleteResult, error)
}
