// Copyright 2014-5 Randall Farmer. All rights reserved.

// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package keysort sorts large collections whose keys are arbitrary byte
// strings: strings, byte slices, dictionary-encoded columns, fixed-width
// rows. It combines a common-prefix-skipping comparison sort with a
// byte-wise MSD radix pass so that long shared prefixes and deep
// lexicographic comparisons don't dominate the run time the way they do
// with a naive comparison sort.
//
// The key idea is the sort pointer: a 16-byte record holding a row index
// and the next eight key bytes, cached as a big-endian uint64. Most
// comparisons resolve as a single integer comparison against that cache,
// never touching the key storage the row index refers to. The radix step
// buckets on the same cached byte, and a block-skip pass advances the
// common-prefix length across whole cache loads before ever building a
// histogram.
//
// Sorting is unstable: given equal keys, their relative order in the
// output is unspecified. There is no multi-key sort, no ascending/
// descending flag, no custom comparator, and no parallelism; ordering is
// always the unsigned lexicographic order of the key bytes, with a
// strictly shorter key ordering before a longer key that shares its
// prefix.
package keysort
