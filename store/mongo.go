package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type slotDocument struct {
	Key       string    `bson:"_id"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// MongoBackend keeps one document per slot in a single collection.
type MongoBackend struct {
	coll *mongo.Collection
	now  func() time.Time
}

func NewMongoBackend(coll *mongo.Collection) *MongoBackend {
	return &MongoBackend{coll: coll, now: time.Now}
}

func (b *MongoBackend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var doc slotDocument
	err := b.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, slotIO(key, "get", err)
	}
	return []byte(doc.Value), true, nil
}

func (b *MongoBackend) Set(ctx context.Context, key string, value []byte) error {
	doc := slotDocument{Key: key, Value: string(value), UpdatedAt: b.now().UTC()}
	_, err := b.coll.ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return slotIO(key, "set", err)
	}
	return nil
}

func (b *MongoBackend) Remove(ctx context.Context, key string) error {
	if _, err := b.coll.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return slotIO(key, "remove", err)
	}
	return nil
}
