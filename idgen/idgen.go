// Package idgen provides the id providers injected into entity stores.
package idgen

import (
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Strings hands out string ids.
type Strings interface {
	NewID() string
}

// Sequence hands out numeric ids.
type Sequence interface {
	Next() int64
}

// UUID generates random version 4 ids.
type UUID struct{}

func (UUID) NewID() string {
	return uuid.New().String()
}

// Monotonic yields millisecond timestamps that never repeat: two calls in the
// same millisecond get consecutive values.
type Monotonic struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

func NewMonotonic() *Monotonic {
	return &Monotonic{now: time.Now}
}

// Observe raises the floor so ids already in use are never handed out again.
func (m *Monotonic) Observe(id int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if id > m.last {
		m.last = id
	}
}

func (m *Monotonic) Next() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	next := m.now().UnixMilli()
	if next <= m.last {
		next = m.last + 1
	}
	m.last = next
	return next
}

// Counter is a deterministic sequence for tests and fixtures.
type Counter struct {
	mu   sync.Mutex
	next int64
}

func NewCounter(start int64) *Counter {
	return &Counter{next: start}
}

func (c *Counter) Next() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	v := c.next
	c.next++
	return v
}

// Prefixed produces "<prefix>-<n>" ids from a Counter. Tests use it where
// readable ids help.
type Prefixed struct {
	Prefix  string
	Counter *Counter
}

func (p Prefixed) NewID() string {
	return p.Prefix + "-" + strconv.FormatInt(p.Counter.Next(), 10)
}
