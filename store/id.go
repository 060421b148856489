package store

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ByID builds a strict _id filter. A value that does not parse as an
// ObjectID is rejected with ErrInvalidID.
func ByID(id string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return bson.M{"_id": oid}, nil
}

// ByIDs builds a strict {_id: {$in: ...}} filter over a list of ids; any
// malformed entry rejects the whole list.
func ByIDs(ids []string) (bson.M, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
		}
		oids = append(oids, oid)
	}
	return bson.M{"_id": bson.M{"$in": oids}}, nil
}

// DocID is the two-variant document identifier used where the API accepts
// either a native ObjectID or a raw string _id. The variant is decided once
// when the path parameter is parsed, never by querying both forms.
type DocID struct {
	oid primitive.ObjectID
	raw string
	hex bool
}

// ParseDocID classifies id: hex-shaped values become the ObjectID variant,
// everything else stays a raw string key. It never fails.
func ParseDocID(id string) DocID {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return DocID{oid: oid, hex: true}
	}
	return DocID{raw: id}
}

// Filter emits the single _id filter for the resolved variant.
func (d DocID) Filter() bson.M {
	if d.hex {
		return bson.M{"_id": d.oid}
	}
	return bson.M{"_id": d.raw}
}
