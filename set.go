package linearmap

import "iter"

// Set is a fixed-capacity set built on the same flat slot storage as Map,
// storing keys only. It shares Map's behavior: linear scans over the
// occupied prefix, tombstone reuse on Add, a panic on adding a genuinely
// new key to a full set, and no safety for concurrent use.
type Set[K comparable] struct {
	table[K, struct{}]
}

// NewSet returns an empty set with the given fixed capacity.
func NewSet[K comparable](capacity int) *Set[K] {
	var s Set[K]
	s.init(capacity)

	return &s
}

// CollectSet builds a set of the given capacity from a key sequence.
// Duplicates in the sequence land in their original slot. Panics like Add
// if the distinct keys exceed the capacity.
func CollectSet[K comparable](capacity int, seq iter.Seq[K]) *Set[K] {
	s := NewSet[K](capacity)
	for k := range seq {
		s.Add(k)
	}

	return s
}

// Capacity returns the fixed number of slots.
func (s *Set[K]) Capacity() int {
	return s.capacity()
}

// Len returns the number of keys inside.
func (s *Set[K]) Len() int {
	return s.size()
}

// IsEmpty reports whether the set holds no keys.
func (s *Set[K]) IsEmpty() bool {
	return s.size() == 0
}

// Has reports whether a key is in the set.
func (s *Set[K]) Has(key K) bool {
	return s.has(key)
}

// Add puts a key in the set. Adding a present key is a no-op on the
// observable state; a new key reuses the most recent tombstone or claims a
// fresh slot, panicking if the set is full with no tombstone.
func (s *Set[K]) Add(key K) {
	s.put(key, struct{}{})
}

// Delete removes a key and reports whether it was present.
func (s *Set[K]) Delete(key K) bool {
	return s.delete(key)
}

// Retain keeps only the keys the predicate accepts, deleting the rest.
func (s *Set[K]) Retain(keep func(K) bool) {
	s.retain(func(k K, _ struct{}) bool {
		return keep(k)
	})
}

// Clear removes all keys, keeping the capacity for future use.
func (s *Set[K]) Clear() {
	s.clear()
}

// Compact squeezes the tombstones out, preserving relative key order.
func (s *Set[K]) Compact() {
	s.compact()
}

// All returns an iterator over the keys in physical slot order.
func (s *Set[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range s.all {
			if !yield(k) {
				return
			}
		}
	}
}

// Clone returns an independent copy with the same capacity, contents and
// slot layout.
func (s *Set[K]) Clone() *Set[K] {
	return &Set[K]{s.table.clone()}
}

// Stats returns a snapshot of the set's occupancy.
func (s *Set[K]) Stats() Stats {
	return s.stats()
}
