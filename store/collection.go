package store

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Identified is implemented by every stored entity.
type Identified[K comparable] interface {
	GetID() K
}

// Change operations reported to listeners.
const (
	OpCreate  = "create"
	OpUpdate  = "update"
	OpDelete  = "delete"
	OpRewrite = "rewrite"
	OpReload  = "reload"
)

// Change describes one persisted mutation of a slot.
type Change struct {
	Slot string    `json:"slot"`
	Op   string    `json:"op"`
	IDs  []any     `json:"ids,omitempty"`
	At   time.Time `json:"at"`
}

// Listener receives a Change after it has been persisted.
type Listener func(Change)

// Collection is the ordered in-memory snapshot of one slot. Every mutation
// writes the complete list to the backend before the snapshot is replaced, so
// a failed write leaves both sides as they were.
type Collection[E Identified[K], K comparable] struct {
	mu        sync.RWMutex
	slot      string
	backend   Backend
	items     []E
	logger    *zap.SugaredLogger
	listeners []Listener
	now       func() time.Time
}

// Open seeds slot with fixtures when it is absent and loads it. Change
// events are stamped with the wall clock.
func Open[E Identified[K], K comparable](ctx context.Context, backend Backend, slot string, fixtures []E, logger *zap.SugaredLogger) (*Collection[E, K], error) {
	return open[E, K](ctx, backend, slot, fixtures, logger, time.Now)
}

// OpenWith is Open over deps: its backend, logger and clock.
func OpenWith[E Identified[K], K comparable](ctx context.Context, deps Deps, slot string, fixtures []E) (*Collection[E, K], error) {
	deps = deps.WithDefaults()
	return open[E, K](ctx, deps.Backend, slot, fixtures, deps.Logger, deps.Now)
}

func open[E Identified[K], K comparable](ctx context.Context, backend Backend, slot string, fixtures []E, logger *zap.SugaredLogger, now func() time.Time) (*Collection[E, K], error) {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	seeded, err := Seed(ctx, backend, slot, fixtures)
	if err != nil {
		return nil, err
	}
	if seeded {
		logger.Infow("seeded slot", "slot", slot, "records", len(fixtures))
	}

	c := &Collection[E, K]{
		slot:    slot,
		backend: backend,
		logger:  logger,
		now:     now,
	}
	if err := c.Reload(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

// Slot returns the backing key.
func (c *Collection[E, K]) Slot() string {
	return c.slot
}

// Subscribe registers l for every future change.
func (c *Collection[E, K]) Subscribe(l Listener) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, l)
}

// Reload replaces the snapshot with the slot's current content.
func (c *Collection[E, K]) Reload(ctx context.Context) error {
	items, err := c.read(ctx)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.items = items
	c.mu.Unlock()
	c.notify(OpReload, nil)
	return nil
}

// List returns the full snapshot in insertion order.
func (c *Collection[E, K]) List() []E {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]E, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Collection[E, K]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Find returns the record with id.
func (c *Collection[E, K]) Find(id K) (E, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if i := c.indexOf(id); i >= 0 {
		return c.items[i], true
	}
	var zero E
	return zero, false
}

// Filter returns the records matching keep, in order. The result is never nil.
func (c *Collection[E, K]) Filter(keep func(E) bool) []E {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]E, 0)
	for _, item := range c.items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// FindFirst returns the first record matching match.
func (c *Collection[E, K]) FindFirst(match func(E) bool) (E, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if match(item) {
			return item, true
		}
	}
	var zero E
	return zero, false
}

// Append adds item at the end of the collection.
func (c *Collection[E, K]) Append(ctx context.Context, item E) error {
	c.mu.Lock()
	next := make([]E, len(c.items), len(c.items)+1)
	copy(next, c.items)
	next = append(next, item)
	if err := c.commit(ctx, next); err != nil {
		c.mu.Unlock()
		return err
	}
	c.mu.Unlock()
	c.notify(OpCreate, []any{item.GetID()})
	return nil
}

// Update replaces the record with id by apply(record). It reports false, and
// writes nothing, when no record has id.
func (c *Collection[E, K]) Update(ctx context.Context, id K, apply func(E) E) (bool, error) {
	c.mu.Lock()
	i := c.indexOf(id)
	if i < 0 {
		c.mu.Unlock()
		return false, nil
	}
	next := make([]E, len(c.items))
	copy(next, c.items)
	next[i] = apply(next[i])
	if err := c.commit(ctx, next); err != nil {
		c.mu.Unlock()
		return false, err
	}
	c.mu.Unlock()
	c.notify(OpUpdate, []any{id})
	return true, nil
}

// Delete removes the record with id, keeping the order of the rest.
func (c *Collection[E, K]) Delete(ctx context.Context, id K) (bool, error) {
	removed, err := c.DeleteMany(ctx, []K{id})
	return removed == 1, err
}

// DeleteMany removes every record whose id is in ids and returns how many
// were removed. Nothing is written when none match.
func (c *Collection[E, K]) DeleteMany(ctx context.Context, ids []K) (int, error) {
	drop := make(map[K]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	c.mu.Lock()
	next := make([]E, 0, len(c.items))
	var removed []any
	for _, item := range c.items {
		if _, ok := drop[item.GetID()]; ok {
			removed = append(removed, item.GetID())
			continue
		}
		next = append(next, item)
	}
	if len(removed) == 0 {
		c.mu.Unlock()
		return 0, nil
	}
	if err := c.commit(ctx, next); err != nil {
		c.mu.Unlock()
		return 0, err
	}
	c.mu.Unlock()
	c.notify(OpDelete, removed)
	return len(removed), nil
}

// Rewrite transforms the whole list in one persisted write.
func (c *Collection[E, K]) Rewrite(ctx context.Context, transform func([]E) []E) error {
	c.mu.Lock()
	current := make([]E, len(c.items))
	copy(current, c.items)
	next := transform(current)
	if next == nil {
		next = []E{}
	}
	if err := c.commit(ctx, next); err != nil {
		c.mu.Unlock()
		return err
	}
	c.mu.Unlock()
	c.notify(OpRewrite, nil)
	return nil
}

// commit must be called with mu held.
func (c *Collection[E, K]) commit(ctx context.Context, next []E) error {
	raw, err := json.Marshal(next)
	if err != nil {
		return slotIO(c.slot, "encode", err)
	}
	if err := c.backend.Set(ctx, c.slot, raw); err != nil {
		c.logger.Errorw("persist slot failed", "slot", c.slot, "error", err)
		return err
	}
	c.items = next
	return nil
}

func (c *Collection[E, K]) read(ctx context.Context) ([]E, error) {
	raw, ok, err := c.backend.Get(ctx, c.slot)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []E{}, nil
	}
	var items []E
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, malformed(c.slot, err)
	}
	if items == nil {
		items = []E{}
	}
	return items, nil
}

func (c *Collection[E, K]) indexOf(id K) int {
	for i, item := range c.items {
		if item.GetID() == id {
			return i
		}
	}
	return -1
}

func (c *Collection[E, K]) notify(op string, ids []any) {
	c.mu.RLock()
	listeners := make([]Listener, len(c.listeners))
	copy(listeners, c.listeners)
	c.mu.RUnlock()

	change := Change{Slot: c.slot, Op: op, IDs: ids, At: c.now()}
	for _, l := range listeners {
		l(change)
	}
}
