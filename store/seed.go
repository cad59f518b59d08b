package store

import (
	"context"
	"encoding/json"
)

// Seed writes fixtures into key the first time the key is observed absent and
// leaves an existing slot untouched, whatever it holds. It reports whether it wrote.
// Stored shapes are never migrated.
func Seed[E any](ctx context.Context, backend Backend, key string, fixtures []E) (bool, error) {
	_, ok, err := backend.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if ok {
		return false, nil
	}
	if fixtures == nil {
		fixtures = []E{}
	}
	raw, err := json.Marshal(fixtures)
	if err != nil {
		return false, slotIO(key, "encode", err)
	}
	if err := backend.Set(ctx, key, raw); err != nil {
		return false, err
	}
	return true, nil
}
