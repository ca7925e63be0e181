// Package memory is a process-local implementation of the persistence layer.
// It backs the "memory" storage driver used for local development and tests.
package memory

import (
	"slices"
	"sync"

	"github.com/google/uuid"
)

// table keeps records in insertion order behind a single lock.
type table[T any] struct {
	mu    sync.RWMutex
	order []uuid.UUID
	rows  map[uuid.UUID]*T
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[uuid.UUID]*T)}
}

// insert stores a copy of row. It reports false when the id is taken.
func (t *table[T]) insert(id uuid.UUID, row T) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.rows[id]; exists {
		return false
	}
	t.rows[id] = &row
	t.order = append(t.order, id)

	return true
}

func (t *table[T]) get(id uuid.UUID) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	row, ok := t.rows[id]
	if !ok {
		var zero T

		return zero, false
	}

	return *row, true
}

// list returns copies of the rows matching keep, in insertion order.
func (t *table[T]) list(keep func(*T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		row := t.rows[id]
		if keep == nil || keep(row) {
			out = append(out, *row)
		}
	}

	return out
}

func cloneIDs(ids []uuid.UUID) []uuid.UUID {
	if ids == nil {
		return nil
	}

	return slices.Clone(ids)
}
