package store

import (
	"context"
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
)

// Backend is a durable key-value slot provider. Each key holds one complete,
// JSON-serialized collection.
type Backend interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}

// Slot keys, one per entity kind.
const (
	SlotTours      = "tours"
	SlotBookings   = "bookings"
	SlotCars       = "cars"
	SlotLocations  = "locations"
	SlotPages      = "pages"
	SlotCategories = "categories"
	SlotBlogPosts  = "blog_posts"
)

// SessionSlot returns the slot key holding the signed-in user record for userID.
func SessionSlot(userID string) string {
	return "session:" + userID
}

// ErrMalformedSlot is reported when a slot's value cannot be decoded.
var ErrMalformedSlot = errors.New("malformed slot data")

const (
	textCodeSlotMalformed = "SLOT_MALFORMED"
	textCodeSlotIO        = "SLOT_IO"
)

func malformed(key string, err error) error {
	return goerrors.Wrap(fmt.Errorf("%w: %s: %v", ErrMalformedSlot, key, err), goerrors.CategoryInternal, "decode slot").
		WithTextCode(textCodeSlotMalformed).
		WithMetadata(map[string]any{"slot": key})
}

func slotIO(key, action string, err error) error {
	return goerrors.Wrap(err, goerrors.CategoryInternal, action+" slot "+key).
		WithTextCode(textCodeSlotIO).
		WithMetadata(map[string]any{"slot": key})
}
