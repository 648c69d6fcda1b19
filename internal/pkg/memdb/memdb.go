// Package memdb provides mutex-guarded in-memory collections.
//
// The service keeps all state in process memory; every domain repository
// wraps one Collection and owns its entity type. Mutations run inside the
// collection lock so a caller observes either the full effect of an
// operation or none of it.
package memdb

import (
	"errors"
	"sync"
)

// ErrNotFound is returned when no item matches the given predicate.
var ErrNotFound = errors.New("memdb: item not found")

// Collection is an ordered, concurrency-safe slice of items.
// Insertion order is preserved; Replace and Update keep the item's position.
type Collection[T any] struct {
	mu    sync.RWMutex
	items []T
}

// NewCollection creates an empty collection.
func NewCollection[T any]() *Collection[T] {
	return &Collection[T]{}
}

// Seed replaces the collection contents. Intended for boot-time seeding.
func (c *Collection[T]) Seed(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append([]T(nil), items...)
}

// Append adds an item at the end of the collection.
func (c *Collection[T]) Append(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, item)
}

// Len returns the number of stored items.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// All returns a copy of every item in insertion order.
func (c *Collection[T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]T(nil), c.items...)
}

// Find returns the first item matching the predicate.
func (c *Collection[T]) Find(match func(T) bool) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if match(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Filter returns all items matching the predicate, in insertion order.
func (c *Collection[T]) Filter(match func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []T
	for _, item := range c.items {
		if match(item) {
			out = append(out, item)
		}
	}
	return out
}

// Replace swaps the first matching item for the given one, keeping its
// position. Returns ErrNotFound when nothing matches.
func (c *Collection[T]) Replace(match func(T) bool, item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if match(c.items[i]) {
			c.items[i] = item
			return nil
		}
	}
	return ErrNotFound
}

// Update applies fn to the first matching item under the write lock and
// returns the updated copy. When fn returns an error the item is left
// untouched and the error is passed through.
func (c *Collection[T]) Update(match func(T) bool, fn func(*T) error) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if match(c.items[i]) {
			updated := c.items[i]
			if err := fn(&updated); err != nil {
				var zero T
				return zero, err
			}
			c.items[i] = updated
			return updated, nil
		}
	}
	var zero T
	return zero, ErrNotFound
}

// UpdateAll applies fn to every item under the write lock. fn mutates the
// item in place and reports whether it changed anything; UpdateAll returns
// the number of changed items.
func (c *Collection[T]) UpdateAll(fn func(*T) bool) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	changed := 0
	for i := range c.items {
		if fn(&c.items[i]) {
			changed++
		}
	}
	return changed
}

// Delete removes the first matching item. Returns ErrNotFound when nothing
// matches. Deletion is irreversible.
func (c *Collection[T]) Delete(match func(T) bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if match(c.items[i]) {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
