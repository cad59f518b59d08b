package idgen

import (
	"testing"
	"time"
)

func TestMonotonicNeverRepeatsWithinSameMillisecond(t *testing.T) {
	fixed := time.UnixMilli(1_700_000_000_000)
	m := &Monotonic{now: func() time.Time { return fixed }}

	first := m.Next()
	second := m.Next()
	third := m.Next()

	if first != fixed.UnixMilli() {
		t.Fatalf("expected first id %d, got %d", fixed.UnixMilli(), first)
	}
	if second != first+1 || third != second+1 {
		t.Fatalf("expected consecutive ids, got %d %d %d", first, second, third)
	}
}

func TestMonotonicObserveRaisesFloor(t *testing.T) {
	m := &Monotonic{now: func() time.Time { return time.UnixMilli(10) }}
	m.Observe(500)
	if got := m.Next(); got != 501 {
		t.Fatalf("expected 501 after observing 500, got %d", got)
	}
}

func TestUUIDIsUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := UUID{}.NewID()
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
}

func TestPrefixed(t *testing.T) {
	p := Prefixed{Prefix: "car", Counter: NewCounter(7)}
	if got := p.NewID(); got != "car-7" {
		t.Fatalf("expected car-7, got %s", got)
	}
	if got := p.NewID(); got != "car-8" {
		t.Fatalf("expected car-8, got %s", got)
	}
}
