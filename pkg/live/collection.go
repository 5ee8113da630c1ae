package live

import "sync"

// Collection is an id-keyed local mirror of one server collection.
// Created events append, updated events replace by identifier, deleted
// events filter by identifier — the same patches the web client applies.
type Collection[T any] struct {
	mu    sync.RWMutex
	id    func(T) string
	items []T
}

// NewCollection creates a Collection keyed by the given identifier func
func NewCollection[T any](id func(T) string) *Collection[T] {
	return &Collection[T]{id: id}
}

// Reset replaces the mirror's contents with a freshly fetched list
func (c *Collection[T]) Reset(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append([]T(nil), items...)
}

// ApplyCreated appends a new item
func (c *Collection[T]) ApplyCreated(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, item)
}

// ApplyUpdated replaces the item with the same identifier, if present
func (c *Collection[T]) ApplyUpdated(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.id(item)
	for i := range c.items {
		if c.id(c.items[i]) == id {
			c.items[i] = item
		}
	}
}

// ApplyDeleted removes every item with the given identifier
func (c *Collection[T]) ApplyDeleted(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.items[:0]
	for _, item := range c.items {
		if c.id(item) != id {
			kept = append(kept, item)
		}
	}
	c.items = kept
}

// Snapshot returns a copy of the mirror's current contents
func (c *Collection[T]) Snapshot() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]T(nil), c.items...)
}

// Len returns the number of mirrored items
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
