package keysort

// ApplyPermutation rearranges a caller's sequence so that it matches the
// order perm describes, using only element swaps supplied via swap(i, j).
// perm must be a permutation of [0, len(perm)); after ApplyPermutation
// returns, swap has been called such that the sequence's element i is what
// was at perm[i] beforehand. perm is mutated in the process (its entries
// are rewritten to the identity as each is placed) and should not be reused
// by the caller afterward.
//
// Standard cycle-walk: for each index, if it's already in place, skip;
// otherwise follow the cycle through perm, swapping each element into
// place and marking perm[current] = current so the walk terminates.
// O(n) swaps, no allocation proportional to the sequence being permuted.
func ApplyPermutation(perm []int, swap func(i, j int)) {
	for i := range perm {
		if perm[i] == i {
			continue
		}
		current := i
		for perm[current] != i {
			next := perm[current]
			swap(current, next)
			perm[current] = current
			current = next
		}
		perm[current] = current
	}
}
