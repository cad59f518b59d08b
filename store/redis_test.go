package store

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newRedisBackend(t *testing.T) (*RedisBackend, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisBackend(client, "test"), srv
}

func TestRedisBackendGetSetRemove(t *testing.T) {
	ctx := context.Background()
	backend, srv := newRedisBackend(t)

	if _, ok, err := backend.Get(ctx, "tours"); err != nil || ok {
		t.Fatalf("expected missing key, ok=%v err=%v", ok, err)
	}
	if err := backend.Set(ctx, "tours", []byte(`[{"id":"1"}]`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if got, err := srv.Get("test:tours"); err != nil || got != `[{"id":"1"}]` {
		t.Fatalf("expected prefixed key in redis, got %q err=%v", got, err)
	}
	raw, ok, err := backend.Get(ctx, "tours")
	if err != nil || !ok || string(raw) != `[{"id":"1"}]` {
		t.Fatalf("unexpected get: %q ok=%v err=%v", raw, ok, err)
	}
	if err := backend.Remove(ctx, "tours"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if srv.Exists("test:tours") {
		t.Fatal("expected key removed")
	}
}

func TestCollectionOverRedisRoundTrip(t *testing.T) {
	ctx := context.Background()
	backend, _ := newRedisBackend(t)

	c := openWidgets(t, backend)
	if err := c.Append(ctx, widget{ID: "d", Name: "delta", Count: 4}); err != nil {
		t.Fatalf("append: %v", err)
	}

	reopened := openWidgets(t, backend)
	if reopened.Len() != 4 {
		t.Fatalf("expected 4 records after reopen, got %d", reopened.Len())
	}
	if got, ok := reopened.Find("d"); !ok || got.Count != 4 {
		t.Fatalf("expected delta persisted, got %+v ok=%v", got, ok)
	}
}
