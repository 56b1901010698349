package memstore

import (
	"sort"
	"sync"
	"time"
)

// Collection is a process-local, mutex-guarded record collection. It keeps
// records in insertion order, indexes them by id, and serves reads as
// newest-first snapshots. All mutations are atomic with respect to each
// other, which is what the record invariants rely on: duplicate checks in
// FindOrInsert happen under the same lock as the insert, and Update is a
// single read-modify-write critical section.
type Collection[T any] struct {
	mu      sync.RWMutex
	records []T
	index   map[string]int

	id        func(T) string
	createdAt func(T) time.Time
}

func New[T any](id func(T) string, createdAt func(T) time.Time) *Collection[T] {
	return &Collection[T]{
		index:     map[string]int{},
		id:        id,
		createdAt: createdAt,
	}
}

func (c *Collection[T]) Insert(rec T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.insertLocked(rec)
}

func (c *Collection[T]) insertLocked(rec T) {
	c.index[c.id(rec)] = len(c.records)
	c.records = append(c.records, rec)
}

func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var zero T

	pos, ok := c.index[id]
	if !ok {
		return zero, false
	}

	return c.records[pos], true
}

// Find returns the first record matching pred, scanning in insertion order.
func (c *Collection[T]) Find(pred func(T) bool) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var zero T

	for _, rec := range c.records {
		if pred(rec) {
			return rec, true
		}
	}

	return zero, false
}

// FindOrInsert inserts rec unless a record matching pred already exists, in
// which case the existing record is returned. The check and the insert run
// under one lock, so two concurrent calls for the same key observe the same
// stored record: the first writer creates it, the second reads it back.
func (c *Collection[T]) FindOrInsert(pred func(T) bool, rec T) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, existing := range c.records {
		if pred(existing) {
			return existing, false
		}
	}

	c.insertLocked(rec)

	return rec, true
}

// Update atomically applies fn to the record with the given id and stores the
// result. It reports false without mutating anything when the id is unknown.
func (c *Collection[T]) Update(id string, fn func(T) T) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T

	pos, ok := c.index[id]
	if !ok {
		return zero, false
	}

	updated := fn(c.records[pos])
	c.records[pos] = updated

	return updated, true
}

// List returns a snapshot of all records ordered by creation time descending.
// Records sharing a creation time are ordered newest insertion first.
func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.records))
	for i, rec := range c.records {
		out[len(c.records)-1-i] = rec
	}

	sort.SliceStable(out, func(i, j int) bool {
		return c.createdAt(out[i]).After(c.createdAt(out[j]))
	})

	return out
}

// Recent returns at most n records, newest first.
func (c *Collection[T]) Recent(n int) []T {
	out := c.List()
	if n >= 0 && n < len(out) {
		out = out[:n]
	}

	return out
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.records)
}

func (c *Collection[T]) Count(pred func(T) bool) int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	count := 0

	for _, rec := range c.records {
		if pred(rec) {
			count++
		}
	}

	return count
}
