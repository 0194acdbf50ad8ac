// Copyright 2009 The Go Authors.
// Copyright 2014-5 Randall Farmer.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keysort

// SetSmallThreshold overrides the region size at or below which the driver
// always falls back to comparison sort, returning the previous value so
// tests can restore it.
func SetSmallThreshold(n int) int {
	orig := smallThreshold
	smallThreshold = n
	return orig
}

// SetRadixThreshold overrides the region size above which the driver
// prefers the radix step, returning the previous value so tests can
// restore it.
func SetRadixThreshold(n int) int {
	orig := radixThreshold
	radixThreshold = n
	return orig
}

// ComparisonSort exposes the CPS comparison-sort path directly, so tests
// can exercise it (input distributions and orderings) without routing
// through the driver's size heuristics.
func ComparisonSort(acc Accessor, ptrs []SortPtr, cpLen int) {
	comparisonSort(acc, ptrs, cpLen, 0, len(ptrs))
}

// SeedPointers exposes sort-pointer seeding for tests that want to drive
// the comparison or radix paths directly.
func SeedPointers(acc Accessor) []SortPtr {
	return seedPointers(acc)
}

// RadixStep exposes the radix pass directly.
func RadixStep(acc Accessor, ptrs []SortPtr, cpLen int) {
	radixStep(acc, ptrs, cpLen, 0)
}
