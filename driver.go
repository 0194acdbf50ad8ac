package keysort

// smallThreshold is the region size at or below which the driver always
// hands the region to the comparison sort without considering the radix
// step, since radix bookkeeping and a cache reload don't amortize over so
// few rows. Recommended default
// per the design: 32. Package var (not const) so tests can force more or
// less of the radix path.
var smallThreshold = 32

// radixThreshold is the region size above which the driver prefers the
// radix step over the general comparison sort, when radix recursion is
// allowed for the region. Recommended default: 1024.
var radixThreshold = 1024

// maxRadixDepth bounds how many radix levels (block-skip's own cp_len
// advances don't count) the engine will recurse before falling back to
// comparison sort, guarding against runaway stack depth on adversarial
// input.
const maxRadixDepth = 1000

// sortRegion is the CPS Sort Driver: given a region of sort pointers whose
// caches are consistent with cpLen, it picks comparison sort, radix, or
// falls back to comparison sort again depending on region size and whether
// radix recursion is currently allowed.
func sortRegion(acc Accessor, ptrs []SortPtr, cpLen int, allowRadix bool, depth int) {
	n := len(ptrs)
	if n <= smallThreshold {
		comparisonSort(acc, ptrs, cpLen, 0, n)
		return
	}
	if allowRadix && n > radixThreshold && depth < maxRadixDepth {
		radixStep(acc, ptrs, cpLen, depth)
		return
	}
	comparisonSort(acc, ptrs, cpLen, 0, n)
}
