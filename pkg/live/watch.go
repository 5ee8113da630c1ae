package live

import (
	"context"
	"encoding/json"
)

// Watch mirrors one entity's server collection: an initial fetch, then
// subscriptions to the entity's three lifecycle events until Stop.
type Watch[T any] struct {
	collection *Collection[T]
	id         func(T) string
	unsubs     []func()
}

// NewWatch fetches the initial list and subscribes to <entity>Created,
// <entity>Updated and <entity>Deleted. Deleted events may carry either
// the bare identifier or the deleted document.
func NewWatch[T any](ctx context.Context, conn *Conn, entity string, fetch func(context.Context) ([]T, error), id func(T) string) (*Watch[T], error) {
	items, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	collection := NewCollection[T](id)
	collection.Reset(items)

	w := &Watch[T]{collection: collection, id: id}
	w.unsubs = []func(){
		conn.Subscribe(entity+"Created", func(data json.RawMessage) {
			var item T
			if err := json.Unmarshal(data, &item); err == nil {
				collection.ApplyCreated(item)
			}
		}),
		conn.Subscribe(entity+"Updated", func(data json.RawMessage) {
			var item T
			if err := json.Unmarshal(data, &item); err == nil {
				collection.ApplyUpdated(item)
			}
		}),
		conn.Subscribe(entity+"Deleted", func(data json.RawMessage) {
			var deletedID string
			if err := json.Unmarshal(data, &deletedID); err == nil {
				collection.ApplyDeleted(deletedID)
				return
			}
			var item T
			if err := json.Unmarshal(data, &item); err == nil {
				collection.ApplyDeleted(id(item))
			}
		}),
	}
	return w, nil
}

// Snapshot returns a copy of the mirrored collection
func (w *Watch[T]) Snapshot() []T {
	return w.collection.Snapshot()
}

// Len returns the number of mirrored items
func (w *Watch[T]) Len() int {
	return w.collection.Len()
}

// Stop unsubscribes from the entity's lifecycle events. The mirror keeps
// its last contents but no longer receives patches.
func (w *Watch[T]) Stop() {
	for _, unsub := range w.unsubs {
		unsub()
	}
	w.unsubs = nil
}
