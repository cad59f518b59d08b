package db

import (
	"context"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// SlotsCollection holds one document per durable slot.
const SlotsCollection = "slots"

// Connect opens a client for uri and pings the primary.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	clientOptions := options.Client().ApplyURI(uri).SetConnectTimeout(10 * time.Second)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryExternal, "mongo connect").WithTextCode("MONGO_UNAVAILABLE")
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, goerrors.Wrap(err, goerrors.CategoryExternal, "mongo ping").WithTextCode("MONGO_UNAVAILABLE")
	}
	return client, nil
}

// Slots returns the slot collection of database name.
func Slots(client *mongo.Client, name string) *mongo.Collection {
	return client.Database(name).Collection(SlotsCollection)
}
