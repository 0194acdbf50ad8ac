package keysort

import "sync"

const radixBuckets = 256

// histogram is the 256-entry frequency table used by the radix step's
// counting pass. It carries a trailing pad so that, however the allocator
// places it, the table doesn't share a cache line with unrelated data —
// the histogram is read and written in a tight loop over the whole region,
// and false sharing there would be a needless cache-coherency cost even in
// this single-threaded engine.
type histogram struct {
	counts [radixBuckets]int
	_      [64]byte
}

var histogramPool = sync.Pool{New: func() interface{} { return new(histogram) }}

// scratchPool recycles the permutation buffer the histogram pass swaps
// pointers through. Buffers are grown, never shrunk, and resliced to the
// current region's length on reuse.
var scratchPool = sync.Pool{New: func() interface{} { s := make([]SortPtr, 0); return &s }}

// radixStep is the Adaptive Quicksort-Radix (AQS) pass: a region whose
// caches are consistent with cpLen is advanced, one byte (or a whole
// block-skip's worth of bytes) at a time, via a 256-bucket MSD radix pass
// over the cached prefix, until buckets are small enough to hand to the
// CPS Sort Driver.
func radixStep(acc Accessor, ptrs []SortPtr, cpLen int, depth int) {
	bytesSinceLoad := 0

	for {
		commonBytes := commonBytesPrefix(ptrs)

		safeBytes := 0
		if commonBytes > 0 {
			anchor := ptrs[0].Cache
			for i := 0; i < commonBytes; i++ {
				shift := uint(56 - i*8)
				if byte(anchor>>shift) == 0 {
					break
				}
				safeBytes++
			}
		}

		if safeBytes > 0 {
			cpLen += safeBytes
			bytesSinceLoad += safeBytes
			if bytesSinceLoad >= 8 {
				reloadCaches(acc, ptrs, cpLen)
				bytesSinceLoad = 0
			} else {
				shiftCaches(ptrs, safeBytes)
			}
			continue
		}

		radixHistogramPass(acc, ptrs, cpLen, depth)
		return
	}
}

// radixHistogramPass runs one 256-bucket MSD pass on the top cached byte,
// stably permutes the region into bucket order via a scratch buffer, and
// recurses into the CPS Sort Driver on each non-empty bucket.
func radixHistogramPass(acc Accessor, ptrs []SortPtr, cpLen int, depth int) {
	n := len(ptrs)

	h := histogramPool.Get().(*histogram)
	counts := &h.counts
	for i := range counts {
		counts[i] = 0
	}
	defer histogramPool.Put(h)

	for _, p := range ptrs {
		counts[p.Cache>>56]++
	}

	var offsets [radixBuckets]int
	sum := 0
	for b, c := range counts {
		offsets[b] = sum
		sum += c
	}

	scratchPtr := scratchPool.Get().(*[]SortPtr)
	scratch := *scratchPtr
	if cap(scratch) < n {
		scratch = make([]SortPtr, n)
	} else {
		scratch = scratch[:n]
	}
	curOffsets := offsets
	for _, p := range ptrs {
		b := p.Cache >> 56
		scratch[curOffsets[b]] = p
		curOffsets[b]++
	}
	copy(ptrs, scratch)
	*scratchPtr = scratch
	scratchPool.Put(scratchPtr)

	start := 0
	for _, count := range counts {
		end := start + count
		if end > start {
			bucket := ptrs[start:end]
			newCP := cpLen + 1
			reloadCaches(acc, bucket, newCP)

			isDegenerate := (end - start) == n
			sortRegion(acc, bucket, newCP, !isDegenerate, depth+1)
		}
		start = end
	}
}
