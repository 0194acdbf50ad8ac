package keysort

// Copyright 2009 The Go Authors.
// Copyright 2014-5 Randall Farmer.
// All rights reserved.

// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Quicksort, following Bentley and McIlroy, ``Engineering a Sort
// Function,'' SP&E November 1993, adapted to operate on a []SortPtr region
// at a fixed common-prefix length instead of a sort.Interface, using
// compareEntries as the comparator.

func less(acc Accessor, ptrs []SortPtr, cpLen, i, j int) bool {
	return compareEntries(acc, ptrs[i], ptrs[j], cpLen) == Less
}

func swapPtrs(ptrs []SortPtr, i, j int) {
	ptrs[i], ptrs[j] = ptrs[j], ptrs[i]
}

// insertionSort sorts ptrs[a:b] in place.
func insertionSort(acc Accessor, ptrs []SortPtr, cpLen, a, b int) {
	for i := a + 1; i < b; i++ {
		for j := i; j > a && less(acc, ptrs, cpLen, j, j-1); j-- {
			swapPtrs(ptrs, j, j-1)
		}
	}
}

func siftDown(acc Accessor, ptrs []SortPtr, cpLen, lo, hi, first int) {
	root := lo
	for {
		child := 2*root + 1
		if child >= hi {
			break
		}
		if child+1 < hi && less(acc, ptrs, cpLen, first+child, first+child+1) {
			child++
		}
		if !less(acc, ptrs, cpLen, first+root, first+child) {
			return
		}
		swapPtrs(ptrs, first+root, first+child)
		root = child
	}
}

func heapSort(acc Accessor, ptrs []SortPtr, cpLen, a, b int) {
	first := a
	lo := 0
	hi := b - a

	for i := (hi - 1) / 2; i >= 0; i-- {
		siftDown(acc, ptrs, cpLen, i, hi, first)
	}
	for i := hi - 1; i >= 0; i-- {
		swapPtrs(ptrs, first, first+i)
		siftDown(acc, ptrs, cpLen, lo, i, first)
	}
}

// medianOfThree returns the middle of the three indices a, b, c.
func medianOfThree(acc Accessor, ptrs []SortPtr, cpLen, a, b, c int) (med int) {
	c0, c1 := less(acc, ptrs, cpLen, a, b), less(acc, ptrs, cpLen, a, c)
	if c0 != c1 {
		return a
	}
	c2 := less(acc, ptrs, cpLen, b, c)
	if c1 != c2 {
		return c
	}
	return b
}

func swapRange(ptrs []SortPtr, a, b, n int) {
	for i := 0; i < n; i++ {
		swapPtrs(ptrs, a+i, b+i)
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func doPivot(acc Accessor, ptrs []SortPtr, cpLen, lo, hi int) (midlo, midhi int) {
	m := lo + (hi-lo)/2
	m1, m2, m3 := lo, m, hi-1
	if hi-lo > 40 {
		s := (hi - lo) / 8
		m1 = medianOfThree(acc, ptrs, cpLen, lo, lo+s, lo+2*s)
		m2 = medianOfThree(acc, ptrs, cpLen, m, m-s, m+s)
		m3 = medianOfThree(acc, ptrs, cpLen, hi-1, hi-1-s, hi-1-2*s)
	}
	swapPtrs(ptrs, lo, medianOfThree(acc, ptrs, cpLen, m1, m2, m3))

	pivot := lo
	a, b, c, d := lo+1, lo+1, hi, hi
	for {
		for b < c {
			if less(acc, ptrs, cpLen, b, pivot) {
				b++
			} else if !less(acc, ptrs, cpLen, pivot, b) {
				swapPtrs(ptrs, a, b)
				a++
				b++
			} else {
				break
			}
		}
		for b < c {
			if less(acc, ptrs, cpLen, pivot, c-1) {
				c--
			} else if !less(acc, ptrs, cpLen, c-1, pivot) {
				swapPtrs(ptrs, c-1, d-1)
				c--
				d--
			} else {
				break
			}
		}
		if b >= c {
			break
		}
		swapPtrs(ptrs, b, c-1)
		b++
		c--
	}

	n := minInt(b-a, a-lo)
	swapRange(ptrs, lo, b-n, n)

	n = minInt(hi-d, d-c)
	swapRange(ptrs, c, hi-n, n)

	return lo + b - a, hi - (d - c)
}

func quickSort(acc Accessor, ptrs []SortPtr, cpLen, a, b, maxDepth int) {
	for b-a > 7 {
		if maxDepth == 0 {
			heapSort(acc, ptrs, cpLen, a, b)
			return
		}
		maxDepth--
		mlo, mhi := doPivot(acc, ptrs, cpLen, a, b)
		if mlo-a < b-mhi {
			quickSort(acc, ptrs, cpLen, a, mlo, maxDepth)
			a = mhi
		} else {
			quickSort(acc, ptrs, cpLen, mhi, b, maxDepth)
			b = mlo
		}
	}
	if b-a > 1 {
		insertionSort(acc, ptrs, cpLen, a, b)
	}
}

// comparisonSort sorts ptrs[a:b] in place using the cache-aware comparator
// at the region's cpLen. Unstable, O(n log n) comparisons and swaps. A
// region that is already in order is left untouched.
func comparisonSort(acc Accessor, ptrs []SortPtr, cpLen, a, b int) {
	inOrder := true
	for i := a + 1; i < b; i++ {
		if less(acc, ptrs, cpLen, i, i-1) {
			inOrder = false
			break
		}
	}
	if inOrder {
		return
	}
	n := b - a
	maxDepth := 0
	for i := n; i > 0; i >>= 1 {
		maxDepth++
	}
	maxDepth *= 2
	quickSort(acc, ptrs, cpLen, a, b, maxDepth)
}
