// Package feed provides the bounded in-memory streams the contest view is
// built from. A feed holds at most its capacity of items; pushing past the
// cap evicts from the opposite end, so every stream retains only its most
// recent window.
package feed

import (
	"sync"

	"github.com/okian/gully/pkg/metrics"
)

// Default feed configuration constants.
const (
	defaultCapacity = 20
)

// Feed is a capacity-bounded list of T. Newest-first streams Push to the
// front; chronological streams Append to the back. Safe for concurrent use.
type Feed[T any] struct {
	mu       sync.RWMutex
	items    []T
	capacity int
	stream   string
}

// New creates a feed with the configuration options applied.
func New[T any](opts ...Option) *Feed[T] {
	s := settings{capacity: defaultCapacity}
	for _, opt := range opts {
		opt(&s)
	}
	f := &Feed[T]{
		items:    make([]T, 0, s.capacity),
		capacity: s.capacity,
		stream:   s.stream,
	}
	f.report(0)
	return f
}

// Push prepends an item, evicting the oldest entry from the back when the
// feed is full. Newest-first streams use this.
func (f *Feed[T]) Push(item T) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.items = append([]T{item}, f.items...)
	if len(f.items) > f.capacity {
		f.items = f.items[:f.capacity]
	}
	f.report(len(f.items))
}

// Append adds an item at the back, evicting the oldest entry from the front
// when the feed is full. Chronological streams use this.
func (f *Feed[T]) Append(item T) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.items = append(f.items, item)
	if len(f.items) > f.capacity {
		f.items = f.items[len(f.items)-f.capacity:]
	}
	f.report(len(f.items))
}

// Replace swaps the entire contents, keeping at most capacity items from
// the front of the given slice.
func (f *Feed[T]) Replace(items []T) {
	f.mu.Lock()
	defer f.mu.Unlock()

	n := len(items)
	if n > f.capacity {
		n = f.capacity
	}
	f.items = make([]T, n)
	copy(f.items, items[:n])
	f.report(n)
}

// Snapshot returns a copy of the current contents in retention order.
func (f *Feed[T]) Snapshot() []T {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]T, len(f.items))
	copy(out, f.items)
	return out
}

// Mutate applies fn to every retained item in place under the write lock.
func (f *Feed[T]) Mutate(fn func(*T)) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.items {
		fn(&f.items[i])
	}
}

// Remove deletes every item matching the predicate and reports how many
// were dropped.
func (f *Feed[T]) Remove(match func(T) bool) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	kept := f.items[:0]
	removed := 0
	for _, item := range f.items {
		if match(item) {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	f.items = kept
	f.report(len(f.items))
	return removed
}

// Len returns the current number of retained items.
func (f *Feed[T]) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.items)
}

// Cap returns the feed's capacity.
func (f *Feed[T]) Cap() int {
	return f.capacity
}

// Clear drops every retained item.
func (f *Feed[T]) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.items = f.items[:0]
	f.report(0)
}

// report updates the stream-size gauge for named feeds. Callers hold the
// lock.
func (f *Feed[T]) report(n int) {
	if f.stream != "" {
		metrics.UpdateFeedSize(f.stream, n)
	}
}
