package linearmap

import "unsafe"

// CapacityFromSize estimates how many slots of a given key and value type
// fit in a memory budget of size bytes. Handy for sizing a map that has to
// live inside a fixed memory region.
func CapacityFromSize[K comparable, V any](size uintptr) int {
	return int(size / unsafe.Sizeof(slot[K, V]{}))
}
