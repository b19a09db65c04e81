package linearmap

import "iter"

// Map is a fixed-capacity map backed by a flat array of slots, scanned
// linearly instead of hashed. It never grows: the capacity it is created
// with is the capacity it keeps, and no operation after New allocates.
// That makes it a fit for hot paths and for embedding inside other
// fixed-size structures, where a map of a handful of entries does not
// deserve hashing machinery.
//
// Lookups, inserts and deletes cost O(cursor), where the cursor is the
// highest slot ever claimed since New or the last Clear. Deleting leaves a
// tombstone below the cursor which a later Put reuses; the cursor itself
// only moves back on Clear or Compact.
//
// A Map is not safe for concurrent use. Callers wanting the usual
// many-readers-or-one-writer discipline must enforce it themselves.
type Map[K comparable, V any] struct {
	table[K, V]
}

// New returns an empty map with the given fixed capacity.
func New[K comparable, V any](capacity int) *Map[K, V] {
	var m Map[K, V]
	m.init(capacity)

	return &m
}

// Collect builds a map of the given capacity from a pair sequence, putting
// each pair in order. A later pair with a seen key overwrites the earlier
// value in place. Panics like Put if the distinct keys exceed the capacity.
func Collect[K comparable, V any](capacity int, seq iter.Seq2[K, V]) *Map[K, V] {
	m := New[K, V](capacity)
	for k, v := range seq {
		m.Put(k, v)
	}

	return m
}

// Capacity returns the fixed number of slots.
func (m *Map[K, V]) Capacity() int {
	return m.capacity()
}

// Len returns the number of pairs inside.
func (m *Map[K, V]) Len() int {
	return m.size()
}

// IsEmpty reports whether the map holds no pairs.
func (m *Map[K, V]) IsEmpty() bool {
	return m.size() == 0
}

// Has reports whether a key is in the map.
func (m *Map[K, V]) Has(key K) bool {
	return m.has(key)
}

// Get returns the value stored for a key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	return m.get(key)
}

// Ref returns a pointer to the value stored for a key, or nil if the key is
// absent. The pointer is invalidated by Delete, Clear, Compact or a Put of
// the same key.
func (m *Map[K, V]) Ref(key K) *V {
	return m.ref(key)
}

// Put inserts a pair, replacing the value in place if the key is already
// present. A new key reuses the most recent tombstone if one exists,
// otherwise it claims a fresh slot.
//
// Putting a new key into a map that is full and has no tombstone panics.
// This is a capacity-planning error on the caller's side, not a runtime
// condition, so no error is returned for it; size the map for the worst
// case or check Len against Capacity first.
func (m *Map[K, V]) Put(key K, value V) {
	m.put(key, value)
}

// Delete removes a key and reports whether it was present. Deleting an
// absent key is a no-op.
func (m *Map[K, V]) Delete(key K) bool {
	return m.delete(key)
}

// Retain keeps only the pairs the predicate accepts, deleting the rest.
// Kept pairs stay in their slots.
func (m *Map[K, V]) Retain(keep func(K, V) bool) {
	m.retain(keep)
}

// Clear removes all pairs, keeping the capacity for future use.
func (m *Map[K, V]) Clear() {
	m.clear()
}

// Compact squeezes the tombstones out, sliding the remaining pairs toward
// slot zero without changing their relative order. Useful after heavy
// deletion, when the occupied prefix has grown much larger than Len and
// every scan pays for the dead slots.
func (m *Map[K, V]) Compact() {
	m.compact()
}

// All returns an iterator over the pairs in physical slot order. The order
// reflects tombstone reuse, not insertion order. The map must not be
// modified during iteration.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return m.all
}

// Keys returns an iterator over the keys in physical slot order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.all {
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns an iterator over the values in physical slot order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.all {
			if !yield(v) {
				return
			}
		}
	}
}

// Clone returns an independent copy with the same capacity, contents and
// slot layout. Cost is O(capacity) regardless of occupancy.
func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{m.table.clone()}
}

// Stats returns a snapshot of the map's occupancy.
func (m *Map[K, V]) Stats() Stats {
	return m.stats()
}
