package db

import (
	"context"
	"os"
	"testing"
	"time"
)

func TestConnect(t *testing.T) {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		t.Skip("MONGO_URI not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client, err := Connect(ctx, uri)
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	defer client.Disconnect(ctx)

	if got := Slots(client, "tourcab_test").Name(); got != SlotsCollection {
		t.Errorf("collection = %q", got)
	}
}

func TestConnectRejectsBadURI(t *testing.T) {
	if _, err := Connect(context.Background(), "not-a-uri"); err == nil {
		t.Fatal("expected error")
	}
}
