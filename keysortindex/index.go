// Copyright 2015 Randall Farmer. All rights reserved.

// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package keysortindex builds a sorted index over a keysort.Accessor and
// adds binary-search-style lookups on top of it: a plain sort.Search over
// the sorted key cache, or — for large indices — an implicit B-tree
// ("Summary") that trades a few percent of extra memory for fewer
// cache-line misses per lookup.
package keysortindex

import (
	"bytes"
	"sort"
	"strings"

	"github.com/cps-sort/keysort"
)

// Index pairs a keysort.Accessor with the permutation that sorts it and a
// cache of each sorted position's 8-byte key prefix, so repeated lookups
// don't need to re-run the sort or re-touch backing key storage for the
// coarse comparison.
type Index struct {
	Perm    []int    // Perm[i] is the original row at sorted position i.
	Keys    []uint64 // Keys[i] is the 8-byte prefix of Data.GetKey(Perm[i]).
	Summary []uint64 // implicit B-tree over Keys, if Summarize was called.
	Data    keysort.Accessor
}

// Build sorts data and returns an Index over the result. Keys are cached
// from the same 8-byte prefixes the sort itself used, so Build costs only
// the sort plus one GetU64Prefix call per row.
func Build(data keysort.Accessor) *Index {
	perm := keysort.SortIndices(data)
	keys := make([]uint64, len(perm))
	for i, row := range perm {
		keys[i] = data.GetU64Prefix(row, 0)
	}
	return &Index{Perm: perm, Keys: keys, Data: data}
}

// Len returns the number of indexed rows.
func (idx *Index) Len() int { return len(idx.Perm) }

// Row returns the original row index at sorted position i.
func (idx *Index) Row(i int) int { return idx.Perm[i] }

// levelBits and pageSize control the fan-out of Summary, the implicit
// B-tree. 6 won an informal bake-off; more would help if this were ever
// backed by block storage.
const levelBits = 6
const pageSize = 1 << levelBits

// Summarize builds an implicit B-tree over Keys to speed FindUint64 (and
// everything built on it) on large indices, at a few percent memory
// overhead on top of Keys itself.
func (idx *Index) Summarize() {
	l := idx.Len()
	sl := l>>levelBits + l>>levelBits*2 + l>>levelBits*3 + l>>((levelBits*4)-1)
	summary := make([]uint64, 0, sl)
	summarizing := idx.Keys
	for len(summarizing) > pageSize {
		start := len(summary)
		for i := 0; i < len(summarizing); i += pageSize {
			summary = append(summary, summarizing[i])
		}
		summarizing = summary[start:]
	}
	idx.Summary = summary
}

// FindUint64 finds the position of the first sorted entry whose key
// prefix is >= key, returning idx.Len() if there is none. When different
// rows share a key prefix, narrow further within the returned range by
// comparing full keys, or use FindUint64Range.
func (idx *Index) FindUint64(key uint64) int {
	if idx.Summary != nil {
		return idx.findUint64Summary(key)
	}
	return sort.Search(idx.Len(), func(i int) bool { return idx.Keys[i] >= key })
}

// FindUint64Range returns the range [a, b) of sorted positions whose key
// prefix equals key. Both a and b equal the insertion point if key isn't
// present.
func (idx *Index) FindUint64Range(key uint64) (a, b int) {
	a = idx.FindUint64(key)
	if a == len(idx.Keys) || idx.Keys[a] != key {
		return a, a
	}
	if key == ^uint64(0) {
		b = len(idx.Keys)
	} else {
		b = idx.FindUint64(key + 1)
	}
	return
}

// FindString finds the sorted position of the first row whose key is >=
// key, returning idx.Len() if there is none.
func (idx *Index) FindString(key string) int {
	a, b := idx.FindUint64Range(StringKey(key))
	return a + sort.Search(b-a, func(i int) bool {
		return strings.Compare(string(idx.Data.GetKey(idx.Perm[a+i])), key) >= 0
	})
}

// FindBytes finds the sorted position of the first row whose key is >=
// key, returning idx.Len() if there is none.
func (idx *Index) FindBytes(key []byte) int {
	a, b := idx.FindUint64Range(BytesKey(key))
	return a + sort.Search(b-a, func(i int) bool {
		return bytes.Compare(idx.Data.GetKey(idx.Perm[a+i]), key) >= 0
	})
}

// FindStringRange returns the range [a, b) of sorted positions whose key
// equals key exactly.
func (idx *Index) FindStringRange(key string) (int, int) {
	a, b := idx.FindUint64Range(StringKey(key))
	aa := a + sort.Search(b-a, func(i int) bool {
		return strings.Compare(string(idx.Data.GetKey(idx.Perm[a+i])), key) >= 0
	})
	bb := aa + sort.Search(b-aa, func(i int) bool {
		return strings.Compare(string(idx.Data.GetKey(idx.Perm[aa+i])), key) > 0
	})
	return aa, bb
}

// FindBytesRange returns the range [a, b) of sorted positions whose key
// equals key exactly.
func (idx *Index) FindBytesRange(key []byte) (int, int) {
	a, b := idx.FindUint64Range(BytesKey(key))
	aa := a + sort.Search(b-a, func(i int) bool {
		return bytes.Compare(idx.Data.GetKey(idx.Perm[a+i]), key) >= 0
	})
	bb := aa + sort.Search(b-aa, func(i int) bool {
		return bytes.Compare(idx.Data.GetKey(idx.Perm[aa+i]), key) > 0
	})
	return aa, bb
}

func (idx *Index) findUint64Summary(key uint64) int {
	summary := idx.Summary
	keys := idx.Keys

	levels, l := 0, len(keys)
	for l > 0 {
		levels++
		l >>= levelBits
	}
	levels--

	levelNum := levels
	levelEnd := len(summary)
	offset := 0
	for levelNum > 0 {
		thisLevelBits := uint(levelBits * levelNum)
		levelLen := len(keys) >> thisLevelBits
		if len(keys) > levelLen<<thisLevelBits {
			levelLen++
		}
		level := summary[levelEnd-levelLen : levelEnd]

		pageEnd := offset + pageSize
		if pageEnd > len(level) {
			pageEnd = len(level)
		}
		page := level[offset:pageEnd]

		i := 0
		for i < len(page) && page[i] < key {
			i++
		}
		if i > 0 {
			i--
		}

		offset += i
		offset <<= levelBits
		levelEnd -= levelLen
		levelNum--
	}

	pageEnd := offset + pageSize
	if pageEnd > len(keys) {
		pageEnd = len(keys)
	}
	page := keys[offset:pageEnd]
	i := 0
	for i < len(page) && page[i] < key {
		i++
	}
	return offset + i
}

// StringKey generates the same 8-byte big-endian prefix keysort.Accessor's
// GetU64Prefix would, from the first bytes of key.
func StringKey(key string) uint64 {
	k := uint64(0)
	for j := 0; j < 8 && j < len(key); j++ {
		k |= uint64(key[j]) << uint(56-8*j)
	}
	return k
}

// BytesKey generates the same 8-byte big-endian prefix keysort.Accessor's
// GetU64Prefix would, from the first bytes of key.
func BytesKey(key []byte) uint64 {
	k := uint64(0)
	for j := 0; j < 8 && j < len(key); j++ {
		k |= uint64(key[j]) << uint(56-8*j)
	}
	return k
}
