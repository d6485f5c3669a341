// Package testutil provides testing utilities.
package testutil

import (
	"fmt"
	"testing"
	"time"

	"todo/internal/backend/memstore"
)

// FixedTime is the clock value used by stores built with NewStore.
var FixedTime = time.Date(2026, time.March, 9, 10, 30, 0, 0, time.UTC)

// SequentialIDs returns an ID generator yielding task-1, task-2, ...
func SequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("task-%d", n)
	}
}

// NewStore creates a deterministic empty store: fixed clock, sequential IDs.
func NewStore(t *testing.T, opts ...memstore.Option) *memstore.Store {
	t.Helper()
	base := []memstore.Option{
		memstore.WithClock(func() time.Time { return FixedTime }),
		memstore.WithIDGenerator(SequentialIDs()),
	}
	return memstore.New(append(base, opts...)...)
}

// NewSeededStore is NewStore plus the example tasks.
func NewSeededStore(t *testing.T, opts ...memstore.Option) *memstore.Store {
	t.Helper()
	s := NewStore(t, opts...)
	if err := memstore.Seed(s); err != nil {
		t.Fatalf("failed to seed store: %v", err)
	}
	return s
}
