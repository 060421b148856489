package store

import (
	"context"
	"errors"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Mongo implements Store against a single MongoDB database.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect opens the shared client, pings the deployment, and returns the
// store bound to the named database.
func Connect(ctx context.Context, uri, dbName string) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}
	log.Println("connected to MongoDB")
	return &Mongo{client: client, db: client.Database(dbName)}, nil
}

// Close disconnects the underlying client.
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

func (m *Mongo) FindAll(ctx context.Context, coll string) ([]bson.M, error) {
	return m.FindMany(ctx, coll, bson.M{})
}

func (m *Mongo) FindOne(ctx context.Context, coll string, filter bson.M) (bson.M, error) {
	var doc bson.M
	err := m.db.Collection(coll).FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (m *Mongo) FindMany(ctx context.Context, coll string, filter bson.M) ([]bson.M, error) {
	cur, err := m.db.Collection(coll).Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	docs := []bson.M{}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (m *Mongo) InsertOne(ctx context.Context, coll string, doc interface{}) (*InsertResult, error) {
	res, err := m.db.Collection(coll).InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}
	return &InsertResult{InsertedID: res.InsertedID}, nil
}

func (m *Mongo) UpdateOne(ctx context.Context, coll string, filter, set bson.M) (*UpdateResult, error) {
	res, err := m.db.Collection(coll).UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	return &UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

func (m *Mongo) DeleteOne(ctx context.Context, coll string, filter bson.M) (*DeleteResult, error) {
	res, err := m.db.Collection(coll).DeleteOne(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &DeleteResult{DeletedCount: res.DeletedCount}, nil
}

func (m *Mongo) DeleteMany(ctx context.Context, coll string, filter bson.M) (*DeleteResult, error) {
	res, err := m.db.Collection(coll).DeleteMany(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &DeleteResult{DeletedCount: res.DeletedCount}, nil
}
