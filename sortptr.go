package keysort

import "math/bits"

// SortPtr is the engine's working unit: a row index plus eight cached key
// bytes. Whenever a contiguous []SortPtr region is held at some cpLen,
// cache is exactly the big-endian eight bytes of the row's key at offset
// cpLen, zero-padded if the key is shorter than cpLen+8. SortPtr is a value
// type and is always held in a contiguous slice, never behind a pointer.
type SortPtr struct {
	Index int
	Cache uint64
}

// seedPointers builds one SortPtr per row, caching each row's first eight
// key bytes.
func seedPointers(acc Accessor) []SortPtr {
	n := acc.Len()
	ptrs := make([]SortPtr, n)
	for i := 0; i < n; i++ {
		ptrs[i] = SortPtr{Index: i, Cache: acc.GetU64Prefix(i, 0)}
	}
	return ptrs
}

// commonBytesPrefix returns the number of whole leading bytes that are
// identical across the cached prefixes of every pointer in a non-empty
// region: the bitwise OR of cache XOR ptrs[0].cache across the region, as a
// count of leading zero bytes.
func commonBytesPrefix(ptrs []SortPtr) int {
	anchor := ptrs[0].Cache
	var diff uint64
	for _, p := range ptrs {
		diff |= p.Cache ^ anchor
	}
	return bits.LeadingZeros64(diff) / 8
}

// reloadCaches refreshes every pointer's cache from the accessor at the
// given common-prefix length. Always reloads rather than trying to be
// clever about which pointers changed, since correctness around the
// zero-padding ambiguity depends on every pointer in a region carrying a
// cache consistent with the same cpLen.
func reloadCaches(acc Accessor, ptrs []SortPtr, cpLen int) {
	for i := range ptrs {
		ptrs[i].Cache = acc.GetU64Prefix(ptrs[i].Index, cpLen)
	}
}

// shiftCaches consumes n already-known-common bytes from every pointer's
// cache by shifting left, exposing the next bytes without touching the
// accessor. Valid only while n bytes of the current cache load remain
// unconsumed; the radix step tracks that via bytesSinceLoad.
func shiftCaches(ptrs []SortPtr, n int) {
	shift := uint(n) * 8
	for i := range ptrs {
		ptrs[i].Cache <<= shift
	}
}
