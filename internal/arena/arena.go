// Package arena implements the typed-handle pattern of spec §9: products,
// promotions, and layers are addressed by opaque integer keys into
// arena-like meta-maps rather than by pointer, so they stay stable and
// hashable identities safe to embed in solver variables and external
// renderings. Grounded in original_source's use of slotmap-style keys
// (ProductKey, PromotionKey) threaded through src/items, crates/core/src/promotions.
package arena

// Key is an opaque handle into an Arena[T]. Keys are assigned from zero in
// insertion order, so the zero Key refers to the first stored element.
type Key int

// Arena is an append-only store of T, addressed by Key.
type Arena[T any] struct {
	items []T
}

// New constructs an empty Arena.
func New[T any]() *Arena[T] {
	return &Arena[T]{}
}

// Insert appends value and returns its Key.
func (a *Arena[T]) Insert(value T) Key {
	a.items = append(a.items, value)
	return Key(len(a.items) - 1)
}

// Get returns the value for key and whether it exists.
func (a *Arena[T]) Get(key Key) (T, bool) {
	var zero T
	if int(key) < 0 || int(key) >= len(a.items) {
		return zero, false
	}
	return a.items[key], true
}

// MustGet returns the value for key, panicking if it does not exist. Intended
// for call sites where key provenance guarantees existence (e.g. a key just
// returned by Insert on the same arena).
func (a *Arena[T]) MustGet(key Key) T {
	v, ok := a.Get(key)
	if !ok {
		panic("arena: key out of range")
	}
	return v
}

// Len returns the number of elements stored.
func (a *Arena[T]) Len() int { return len(a.items) }

// Keys returns every key currently valid in the arena, in insertion order.
func (a *Arena[T]) Keys() []Key {
	keys := make([]Key, len(a.items))
	for i := range a.items {
		keys[i] = Key(i)
	}
	return keys
}
