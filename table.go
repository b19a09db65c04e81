package linearmap

import "fmt"

// slot is one fixed storage position. A slot is either vacant or holds
// exactly one key-value pair. Slots start vacant and stay fully initialized
// at all times, so there is never a read of unwritten memory.
type slot[K comparable, V any] struct {
	used  bool
	key   K
	value V
}

// table is the storage core shared by Map and Set.
//
// slots never grows after init. next is the high-water cursor: slots at
// index >= next have never been claimed since init or the last clear, and
// are never read or key-compared. Slots below next may be vacant again
// (tombstones) and are eligible for reuse by put.
//
// Invariants:
//   - 0 <= next <= len(slots)
//   - no two used slots below next hold equal keys
type table[K comparable, V any] struct {
	slots []slot[K, V]
	next  int

	emptyV V
}

func (t *table[K, V]) init(capacity int) {
	if capacity < 0 {
		panic(fmt.Sprintf("linearmap: negative capacity %d", capacity))
	}

	t.slots = make([]slot[K, V], capacity)
	t.next = 0
}

func (t *table[K, V]) capacity() int {
	return len(t.slots)
}

// size counts the used slots below the cursor. Cost is proportional to the
// cursor, not to the capacity.
func (t *table[K, V]) size() int {
	busy := 0
	for i := range t.next {
		if t.slots[i].used {
			busy++
		}
	}

	return busy
}

func (t *table[K, V]) get(key K) (V, bool) {
	for i := range t.next {
		s := &t.slots[i]
		if s.used && s.key == key {
			return s.value, true
		}
	}

	return t.emptyV, false
}

// ref returns a pointer into the slot holding key, or nil. The pointer stays
// valid until the slot is vacated or overwritten.
func (t *table[K, V]) ref(key K) *V {
	for i := range t.next {
		s := &t.slots[i]
		if s.used && s.key == key {
			return &s.value
		}
	}

	return nil
}

func (t *table[K, V]) has(key K) bool {
	for i := range t.next {
		s := &t.slots[i]
		if s.used && s.key == key {
			return true
		}
	}

	return false
}

// put writes the pair into a single slot chosen by one left-to-right scan
// of the occupied prefix:
//
//  1. A used slot with an equal key wins immediately; the value is replaced
//     in place and the scan stops, no matter what vacancies were seen before.
//  2. Otherwise the last vacant slot seen during the scan (the most recent
//     tombstone) is reused; the cursor does not move.
//  3. Otherwise the slot at the cursor is claimed and the cursor advances.
//
// Only case 3 can fail: a genuinely new key with no reusable tombstone in a
// full table is a capacity-planning error, and put panics rather than
// corrupt state. There is no error-return path for it.
func (t *table[K, V]) put(key K, value V) {
	target := -1
	for i := range t.next {
		s := &t.slots[i]
		if s.used {
			if s.key == key {
				s.value = value
				return
			}
		} else {
			target = i
		}
	}

	if target < 0 {
		if t.next == len(t.slots) {
			panic(fmt.Sprintf("linearmap: table is full, capacity %d exceeded", len(t.slots)))
		}

		target = t.next
		t.next++
	}

	t.slots[target] = slot[K, V]{used: true, key: key, value: value}
}

// delete vacates the slot holding key, if any. The cursor never moves back;
// the vacated slot becomes a tombstone reusable by put. The slot is zeroed
// so the pair is released immediately rather than when later overwritten.
func (t *table[K, V]) delete(key K) bool {
	for i := range t.next {
		s := &t.slots[i]
		if s.used && s.key == key {
			*s = slot[K, V]{}
			return true
		}
	}

	return false
}

// retain vacates every used slot whose pair the predicate rejects. Kept
// slots are untouched: no reordering, no compaction.
func (t *table[K, V]) retain(keep func(K, V) bool) {
	for i := range t.next {
		s := &t.slots[i]
		if s.used && !keep(s.key, s.value) {
			*s = slot[K, V]{}
		}
	}
}

// clear vacates the whole occupied prefix and resets the cursor. Slots are
// zeroed eagerly so pairs holding pointers do not linger until overwritten.
func (t *table[K, V]) clear() {
	for i := range t.next {
		t.slots[i] = slot[K, V]{}
	}

	t.next = 0
}

// compact slides used slots down over the tombstones, preserving their
// relative order, and pulls the cursor back to the pair count. Together
// with clear this is the only way the cursor decreases.
func (t *table[K, V]) compact() {
	w := 0
	for i := range t.next {
		if !t.slots[i].used {
			continue
		}

		if w != i {
			t.slots[w] = t.slots[i]
			t.slots[i] = slot[K, V]{}
		}
		w++
	}

	t.next = w
}

// all yields every pair in the occupied prefix in physical slot order,
// skipping tombstones.
func (t *table[K, V]) all(yield func(K, V) bool) {
	for i := range t.next {
		s := &t.slots[i]
		if s.used && !yield(s.key, s.value) {
			return
		}
	}
}

func (t *table[K, V]) clone() table[K, V] {
	c := table[K, V]{
		slots: make([]slot[K, V], len(t.slots)),
		next:  t.next,
	}
	copy(c.slots, t.slots)

	return c
}

func (t *table[K, V]) stats() Stats {
	size := t.size()

	return Stats{
		Size:       size,
		Tombstones: t.next - size,
		Cursor:     t.next,
		Capacity:   len(t.slots),
	}
}
