package store

import (
	"bytes"
	"context"
	"errors"
	"reflect"
	"testing"
	"time"
)

type widget struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func (w widget) GetID() string { return w.ID }

var widgetFixtures = []widget{
	{ID: "a", Name: "alpha", Count: 1},
	{ID: "b", Name: "beta", Count: 2},
	{ID: "c", Name: "gamma", Count: 3},
}

func openWidgets(t *testing.T, backend Backend) *Collection[widget, string] {
	t.Helper()
	c, err := Open[widget, string](context.Background(), backend, "widgets", widgetFixtures, nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	return c
}

func slotBytes(t *testing.T, backend Backend, key string) []byte {
	t.Helper()
	raw, ok, err := backend.Get(context.Background(), key)
	if err != nil || !ok {
		t.Fatalf("expected slot %s, ok=%v err=%v", key, ok, err)
	}
	return raw
}

func TestOpenSeedsEmptySlot(t *testing.T) {
	c := openWidgets(t, NewMemoryBackend())
	if got := c.List(); !reflect.DeepEqual(got, widgetFixtures) {
		t.Fatalf("expected fixtures, got %+v", got)
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()

	wrote, err := Seed(ctx, backend, "widgets", widgetFixtures)
	if err != nil || !wrote {
		t.Fatalf("expected first seed to write, wrote=%v err=%v", wrote, err)
	}
	before := slotBytes(t, backend, "widgets")

	wrote, err = Seed(ctx, backend, "widgets", []widget{{ID: "z"}})
	if err != nil || wrote {
		t.Fatalf("expected second seed to skip, wrote=%v err=%v", wrote, err)
	}
	if after := slotBytes(t, backend, "widgets"); !bytes.Equal(before, after) {
		t.Fatalf("slot changed: %s -> %s", before, after)
	}
}

func TestSeedLeavesEmptyListAlone(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()
	if err := backend.Set(ctx, "widgets", []byte("[]")); err != nil {
		t.Fatal(err)
	}
	c := openWidgets(t, backend)
	if c.Len() != 0 {
		t.Fatalf("expected stored empty list to be kept, got %d records", c.Len())
	}
}

func TestAppendPersistsFullList(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()
	c := openWidgets(t, backend)

	if err := c.Append(ctx, widget{ID: "d", Name: "delta"}); err != nil {
		t.Fatalf("append: %v", err)
	}

	list := c.List()
	if len(list) != 4 || list[3].ID != "d" {
		t.Fatalf("expected d appended last, got %+v", list)
	}

	reopened := openWidgets(t, backend)
	if !reflect.DeepEqual(reopened.List(), list) {
		t.Fatalf("round trip mismatch: %+v vs %+v", reopened.List(), list)
	}
}

func TestUpdateChangesOnlyTarget(t *testing.T) {
	ctx := context.Background()
	c := openWidgets(t, NewMemoryBackend())

	found, err := c.Update(ctx, "b", func(w widget) widget {
		w.Count = 20
		return w
	})
	if err != nil || !found {
		t.Fatalf("expected update to match, found=%v err=%v", found, err)
	}

	want := []widget{widgetFixtures[0], {ID: "b", Name: "beta", Count: 20}, widgetFixtures[2]}
	if got := c.List(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestUpdateUnknownIDWritesNothing(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()
	c := openWidgets(t, backend)
	before := slotBytes(t, backend, "widgets")

	found, err := c.Update(ctx, "missing", func(w widget) widget {
		w.Name = "changed"
		return w
	})
	if err != nil || found {
		t.Fatalf("expected no match, found=%v err=%v", found, err)
	}
	if after := slotBytes(t, backend, "widgets"); !bytes.Equal(before, after) {
		t.Fatalf("slot changed on unknown id")
	}
}

func TestDeleteKeepsOrder(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()
	c := openWidgets(t, backend)

	found, err := c.Delete(ctx, "b")
	if err != nil || !found {
		t.Fatalf("expected delete, found=%v err=%v", found, err)
	}
	want := []widget{widgetFixtures[0], widgetFixtures[2]}
	if got := c.List(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %+v, got %+v", want, got)
	}

	before := slotBytes(t, backend, "widgets")
	found, err = c.Delete(ctx, "b")
	if err != nil || found {
		t.Fatalf("expected second delete to miss, found=%v err=%v", found, err)
	}
	if after := slotBytes(t, backend, "widgets"); !bytes.Equal(before, after) {
		t.Fatal("slot changed on missing delete")
	}
}

func TestDeleteMany(t *testing.T) {
	ctx := context.Background()
	c := openWidgets(t, NewMemoryBackend())

	removed, err := c.DeleteMany(ctx, []string{"a", "c", "nope"})
	if err != nil {
		t.Fatalf("delete many: %v", err)
	}
	if removed != 2 {
		t.Fatalf("expected 2 removed, got %d", removed)
	}
	if got := c.List(); len(got) != 1 || got[0].ID != "b" {
		t.Fatalf("expected only b left, got %+v", got)
	}
}

func TestRewrite(t *testing.T) {
	ctx := context.Background()
	c := openWidgets(t, NewMemoryBackend())

	err := c.Rewrite(ctx, func(items []widget) []widget {
		for i := range items {
			items[i].Count = 0
		}
		return items
	})
	if err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	for _, w := range c.List() {
		if w.Count != 0 {
			t.Fatalf("expected count reset, got %+v", w)
		}
	}
}

func TestListReturnsCopy(t *testing.T) {
	c := openWidgets(t, NewMemoryBackend())
	list := c.List()
	list[0].Name = "mutated"
	if got, _ := c.Find("a"); got.Name != "alpha" {
		t.Fatalf("snapshot was mutated through List result")
	}
}

func TestMalformedSlot(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()
	if err := backend.Set(ctx, "widgets", []byte("{not json")); err != nil {
		t.Fatal(err)
	}
	_, err := Open[widget, string](ctx, backend, "widgets", widgetFixtures, nil)
	if !errors.Is(err, ErrMalformedSlot) {
		t.Fatalf("expected ErrMalformedSlot, got %v", err)
	}
}

type failingBackend struct {
	*MemoryBackend
	failSet bool
}

func (f *failingBackend) Set(ctx context.Context, key string, value []byte) error {
	if f.failSet {
		return errors.New("disk full")
	}
	return f.MemoryBackend.Set(ctx, key, value)
}

func TestFailedWriteKeepsSnapshot(t *testing.T) {
	ctx := context.Background()
	backend := &failingBackend{MemoryBackend: NewMemoryBackend()}
	c := openWidgets(t, backend)

	backend.failSet = true
	if err := c.Append(ctx, widget{ID: "d"}); err == nil {
		t.Fatal("expected append to fail")
	}
	if _, err := c.Update(ctx, "a", func(w widget) widget { w.Count = 9; return w }); err == nil {
		t.Fatal("expected update to fail")
	}
	if got := c.List(); !reflect.DeepEqual(got, widgetFixtures) {
		t.Fatalf("snapshot diverged after failed writes: %+v", got)
	}
}

func TestSubscribeReceivesChanges(t *testing.T) {
	ctx := context.Background()
	c := openWidgets(t, NewMemoryBackend())

	var got []Change
	c.Subscribe(func(ch Change) { got = append(got, ch) })

	_ = c.Append(ctx, widget{ID: "d"})
	_, _ = c.Update(ctx, "d", func(w widget) widget { return w })
	_, _ = c.Delete(ctx, "d")
	_, _ = c.Delete(ctx, "d")

	ops := []string{}
	for _, ch := range got {
		if ch.Slot != "widgets" {
			t.Fatalf("unexpected slot %q", ch.Slot)
		}
		ops = append(ops, ch.Op)
	}
	want := []string{OpCreate, OpUpdate, OpDelete}
	if !reflect.DeepEqual(ops, want) {
		t.Fatalf("expected ops %v, got %v", want, ops)
	}
}

func TestOpenWithStampsChangesWithDepsClock(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	c, err := OpenWith[widget, string](ctx, Deps{Backend: NewMemoryBackend(), Now: func() time.Time { return at }}, "widgets", widgetFixtures)
	if err != nil {
		t.Fatal(err)
	}

	var got []Change
	c.Subscribe(func(ch Change) { got = append(got, ch) })
	if err := c.Append(ctx, widget{ID: "d"}); err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || !got[0].At.Equal(at) {
		t.Fatalf("changes = %+v", got)
	}
}
