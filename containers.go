package keysort

// Copyright 2009 The Go Authors.
// Copyright 2014-5 Randall Farmer.
// All rights reserved.

// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Concrete Accessor/Sortable implementations for the container shapes the
// library is meant to cover: a plain contiguous slice, a double-ended
// random-access ring, a concatenated flat buffer for very large datasets,
// and a single string sorted byte-by-byte.

// StringSlice attaches Accessor and Sortable to []string.
type StringSlice []string

func (p StringSlice) Len() int             { return len(p) }
func (p StringSlice) GetKey(i int) []byte  { return []byte(p[i]) }
func (p StringSlice) GetU64Prefix(i, offset int) uint64 {
	return loadU64BE([]byte(p[i]), offset)
}
func (p StringSlice) Swap(i, j int) { p[i], p[j] = p[j], p[i] }

// Sort sorts p in place in increasing lexicographic order.
func (p StringSlice) Sort() { SortInPlace(p) }

// BytesSlice attaches Accessor and Sortable to [][]byte.
type BytesSlice [][]byte

func (p BytesSlice) Len() int                        { return len(p) }
func (p BytesSlice) GetKey(i int) []byte             { return p[i] }
func (p BytesSlice) GetU64Prefix(i, offset int) uint64 { return loadU64BE(p[i], offset) }
func (p BytesSlice) Swap(i, j int)                   { p[i], p[j] = p[j], p[i] }

// Sort sorts p in place in increasing lexicographic order.
func (p BytesSlice) Sort() { SortInPlace(p) }

// StringBytes sorts the individual bytes of a single string: GetKey(i)
// returns a one-byte slice of the i'th byte, so SortIndices on a
// StringBytes yields indices into the string's bytes, not into any
// substring structure. The engine is agnostic to UTF-8 validity here; it
// sorts by raw byte value.
type StringBytes string

func (s StringBytes) Len() int            { return len(s) }
func (s StringBytes) GetKey(i int) []byte { return []byte{s[i]} }
func (s StringBytes) GetU64Prefix(i, offset int) uint64 {
	if offset != 0 {
		return 0
	}
	return uint64(s[i]) << 56
}

// Deque is a double-ended, random-access Accessor/Sortable over a ring
// buffer of byte-convertible elements. Unlike container/ring (a circular
// list built for traversal, not indexing), Deque keeps its elements in a
// slice and maps logical index i to physical slot (start+i)%cap, giving
// O(1) GetKey/Swap the way a contiguous slice does, while still supporting
// cheap push at either end.
type Deque[T any] struct {
	buf   []T
	start int
	n     int
	key   func(T) []byte
}

// NewDeque creates a Deque seeded with items, using key to extract each
// element's sort key.
func NewDeque[T any](items []T, key func(T) []byte) *Deque[T] {
	buf := make([]T, len(items))
	copy(buf, items)
	return &Deque[T]{buf: buf, start: 0, n: len(items), key: key}
}

func (d *Deque[T]) slot(i int) int {
	return (d.start + i) % len(d.buf)
}

// Len returns the number of elements currently held.
func (d *Deque[T]) Len() int { return d.n }

// At returns the logical i'th element.
func (d *Deque[T]) At(i int) T { return d.buf[d.slot(i)] }

func (d *Deque[T]) GetKey(i int) []byte { return d.key(d.At(i)) }

func (d *Deque[T]) GetU64Prefix(i, offset int) uint64 {
	return DefaultU64Prefix(d, i, offset)
}

// Swap exchanges the logical i'th and j'th elements.
func (d *Deque[T]) Swap(i, j int) {
	si, sj := d.slot(i), d.slot(j)
	d.buf[si], d.buf[sj] = d.buf[sj], d.buf[si]
}

// PushBack appends v as the new last element, growing the backing buffer
// if it's full.
func (d *Deque[T]) PushBack(v T) {
	d.growIfFull()
	d.buf[d.slot(d.n)] = v
	d.n++
}

// PushFront inserts v as the new first element, growing the backing buffer
// if it's full.
func (d *Deque[T]) PushFront(v T) {
	d.growIfFull()
	d.start = (d.start - 1 + len(d.buf)) % len(d.buf)
	d.n++
	d.buf[d.slot(0)] = v
}

func (d *Deque[T]) growIfFull() {
	if d.n < len(d.buf) {
		return
	}
	newCap := len(d.buf)*2 + 1
	newBuf := make([]T, newCap)
	for i := 0; i < d.n; i++ {
		newBuf[i] = d.At(i)
	}
	d.buf = newBuf
	d.start = 0
}

// FlatBuffer is the canonical accessor for very large datasets with
// minimal per-row overhead: a concatenated Data byte array plus an Offsets
// array of row starts, one per row. Row i's key is Data[Offsets[i]:
// Offsets[i+1]] for all but the last row, and Data[Offsets[i]:] for the
// last. GetU64Prefix reads straight out of Data without constructing an
// intermediate key slice first.
type FlatBuffer struct {
	Data    []byte
	Offsets []int
}

// NewFlatBuffer builds a FlatBuffer by concatenating keys, recording each
// one's start offset.
func NewFlatBuffer(keys [][]byte) *FlatBuffer {
	offsets := make([]int, len(keys))
	var total int
	for _, k := range keys {
		total += len(k)
	}
	data := make([]byte, 0, total)
	for i, k := range keys {
		offsets[i] = len(data)
		data = append(data, k...)
	}
	return &FlatBuffer{Data: data, Offsets: offsets}
}

func (f *FlatBuffer) Len() int { return len(f.Offsets) }

func (f *FlatBuffer) rowBounds(i int) (start, end int) {
	start = f.Offsets[i]
	if i+1 < len(f.Offsets) {
		end = f.Offsets[i+1]
	} else {
		end = len(f.Data)
	}
	return
}

func (f *FlatBuffer) GetKey(i int) []byte {
	start, end := f.rowBounds(i)
	return f.Data[start:end]
}

func (f *FlatBuffer) GetU64Prefix(i, offset int) uint64 {
	start, end := f.rowBounds(i)
	pos := start + offset
	if pos >= end {
		return 0
	}
	remaining := end - pos
	if remaining >= 8 {
		k := f.Data[pos : pos+8]
		return uint64(k[0])<<56 | uint64(k[1])<<48 | uint64(k[2])<<40 | uint64(k[3])<<32 |
			uint64(k[4])<<24 | uint64(k[5])<<16 | uint64(k[6])<<8 | uint64(k[7])
	}
	var buf [8]byte
	copy(buf[:], f.Data[pos:end])
	return uint64(buf[0])<<56 | uint64(buf[1])<<48 | uint64(buf[2])<<40 | uint64(buf[3])<<32 |
		uint64(buf[4])<<24 | uint64(buf[5])<<16 | uint64(buf[6])<<8 | uint64(buf[7])
}

// Swap exchanges rows i and j by relocating their bytes within Data. This
// is O(key length), not O(1) — FlatBuffer trades cheap in-place Swap for
// minimal per-row overhead and zero-copy reads, so sorting a FlatBuffer
// directly is best done by consuming SortIndices rather than SortInPlace
// when rows are large; Swap is provided so small-row FlatBuffers still
// satisfy Sortable.
func (f *FlatBuffer) Swap(i, j int) {
	if i == j {
		return
	}
	ki := append([]byte(nil), f.GetKey(i)...)
	kj := append([]byte(nil), f.GetKey(j)...)
	si, ei := f.rowBounds(i)
	sj, ej := f.rowBounds(j)
	if len(ki) != (ei-si) || len(kj) != (ej-sj) {
		panic("keysort: FlatBuffer row bounds inconsistent with Offsets")
	}
	if len(ki) == len(kj) {
		copy(f.Data[si:ei], kj)
		copy(f.Data[sj:ej], ki)
		return
	}
	// Different lengths: rebuild Data with the two rows' bytes swapped,
	// shifting everything between them. Rare in practice (FlatBuffer rows
	// are typically fixed- or similar-width); correctness over cleverness.
	rebuilt := make([]byte, 0, len(f.Data))
	offsets := make([]int, len(f.Offsets))
	for idx := range f.Offsets {
		s, e := f.rowBounds(idx)
		offsets[idx] = len(rebuilt)
		switch idx {
		case i:
			rebuilt = append(rebuilt, kj...)
		case j:
			rebuilt = append(rebuilt, ki...)
		default:
			rebuilt = append(rebuilt, f.Data[s:e]...)
		}
	}
	f.Data = rebuilt
	f.Offsets = offsets
}

// Sort sorts f in place in increasing lexicographic order.
func (f *FlatBuffer) Sort() { SortInPlace(f) }
