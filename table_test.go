package linearmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTable[K comparable, V any](capacity int) *table[K, V] {
	var tt table[K, V]
	tt.init(capacity)

	return &tt
}

func TestTable_init(t *testing.T) {
	var tt table[string, int]

	tt.init(16)

	require.Len(t, tt.slots, 16)
	require.Zero(t, tt.next)
}

func TestTable_init_NegativeCapacity(t *testing.T) {
	require.Panics(t, func() {
		newTable[int, int](-1)
	})
}

func TestTable_put_AdvancesCursor(t *testing.T) {
	tt := newTable[string, int](8)

	tt.put("a", 1)
	tt.put("b", 2)
	tt.put("c", 3)

	require.Equal(t, 3, tt.next)
	assert.Equal(t, 3, tt.size())
}

func TestTable_put_ExistingKeyKeepsSlot(t *testing.T) {
	tt := newTable[string, int](8)

	tt.put("a", 1)
	tt.put("b", 2)
	tt.put("a", 100)

	require.Equal(t, 2, tt.next)
	require.True(t, tt.slots[0].used)
	assert.Equal(t, "a", tt.slots[0].key)
	assert.Equal(t, 100, tt.slots[0].value)
}

func TestTable_put_KeyMatchWinsOverTombstone(t *testing.T) {
	tt := newTable[string, int](8)

	tt.put("a", 1)
	tt.put("b", 2)
	tt.put("c", 3)

	// Tombstone at slot 0, then update a key living past it. The update
	// must hit slot 2 in place, not migrate into the hole.
	require.True(t, tt.delete("a"))
	tt.put("c", 30)

	require.False(t, tt.slots[0].used)
	require.True(t, tt.slots[2].used)
	assert.Equal(t, 30, tt.slots[2].value)
	assert.Equal(t, 3, tt.next)
}

func TestTable_put_ReusesLastTombstone(t *testing.T) {
	tt := newTable[string, int](8)

	tt.put("a", 1)
	tt.put("b", 2)
	tt.put("c", 3)
	tt.put("d", 4)

	require.True(t, tt.delete("b"))
	require.True(t, tt.delete("c"))

	// Two holes at slots 1 and 2; a new key takes the later one.
	tt.put("e", 5)

	require.True(t, tt.slots[2].used)
	assert.Equal(t, "e", tt.slots[2].key)
	require.False(t, tt.slots[1].used)

	tt.put("f", 6)

	require.True(t, tt.slots[1].used)
	assert.Equal(t, "f", tt.slots[1].key)

	// Both holes consumed without touching the cursor.
	assert.Equal(t, 4, tt.next)
}

func TestTable_put_TombstoneReuseOnFullTable(t *testing.T) {
	tt := newTable[int, int](2)

	tt.put(1, 10)
	tt.put(2, 20)
	require.Equal(t, 2, tt.next)

	// Cursor is at capacity, but a tombstone keeps the table writable.
	require.True(t, tt.delete(1))
	require.NotPanics(t, func() {
		tt.put(3, 30)
	})

	assert.Equal(t, 2, tt.next)
	assert.Equal(t, 2, tt.size())

	v, ok := tt.get(3)
	require.True(t, ok)
	assert.Equal(t, 30, v)
}

func TestTable_put_FullPanics(t *testing.T) {
	tt := newTable[int, int](2)

	tt.put(1, 10)
	tt.put(2, 20)

	require.Panics(t, func() {
		tt.put(3, 30)
	})

	// Existing keys are still writable at full occupancy.
	require.NotPanics(t, func() {
		tt.put(2, 200)
	})
}

func TestTable_delete_LeavesCursor(t *testing.T) {
	tt := newTable[string, int](8)

	tt.put("a", 1)
	tt.put("b", 2)

	require.True(t, tt.delete("a"))
	require.False(t, tt.delete("a"))

	// The cursor never shrinks on delete, only the slot is vacated.
	assert.Equal(t, 2, tt.next)
	assert.Equal(t, 1, tt.size())
}

func TestTable_delete_ZeroesSlot(t *testing.T) {
	tt := newTable[string, []byte](4)

	tt.put("blob", make([]byte, 64))
	require.True(t, tt.delete("blob"))

	// Eager disposal: the pair is released immediately, not when the slot
	// is reused.
	assert.Equal(t, slot[string, []byte]{}, tt.slots[0])
}

func TestTable_clear_ZeroesPrefix(t *testing.T) {
	tt := newTable[string, []byte](4)

	tt.put("a", make([]byte, 64))
	tt.put("b", make([]byte, 64))

	tt.clear()

	require.Zero(t, tt.next)
	for i := range tt.slots {
		assert.Equal(t, slot[string, []byte]{}, tt.slots[i])
	}
}

func TestTable_compact(t *testing.T) {
	tt := newTable[int, int](10)

	for i := range 8 {
		tt.put(i, i*10)
	}

	require.True(t, tt.delete(0))
	require.True(t, tt.delete(3))
	require.True(t, tt.delete(7))
	require.Equal(t, 8, tt.next)

	tt.compact()

	// Cursor pulled back to the pair count, survivors in their original
	// relative order, no tombstones left.
	require.Equal(t, 5, tt.next)
	want := []int{1, 2, 4, 5, 6}
	for i, k := range want {
		require.True(t, tt.slots[i].used)
		assert.Equal(t, k, tt.slots[i].key)
		assert.Equal(t, k*10, tt.slots[i].value)
	}
	for i := tt.next; i < len(tt.slots); i++ {
		assert.Equal(t, slot[int, int]{}, tt.slots[i])
	}
}

func TestTable_compact_Empty(t *testing.T) {
	tt := newTable[int, int](4)

	require.NotPanics(t, tt.compact)
	assert.Zero(t, tt.next)
}

func TestTable_stats(t *testing.T) {
	tt := newTable[int, int](16)

	for i := range 10 {
		tt.put(i, i)
	}
	for i := range 4 {
		require.True(t, tt.delete(i))
	}

	stats := tt.stats()
	assert.Equal(t, 6, stats.Size)
	assert.Equal(t, 4, stats.Tombstones)
	assert.Equal(t, 10, stats.Cursor)
	assert.Equal(t, 16, stats.Capacity)
}
