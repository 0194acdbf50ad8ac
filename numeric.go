package keysort

import "math"

// Numeric convenience sorts. Rather than a second, shift-based radix engine
// dedicated to fixed-width numbers, these route through the same byte-key
// engine as everything else: each value is encoded into an 8-byte,
// order-preserving big-endian key (so unsigned lexicographic byte order on
// the encoding matches numeric order on the value), the encoded keys are
// packed into a stride-8 FlatBuffer, and the result is unpacked through the
// permutation SortIndices already knows how to produce.

// Uint64Key returns v's natural big-endian encoding, which is already
// order-preserving for unsigned integers.
func Uint64Key(v uint64) uint64 { return v }

// Int64Key returns an order-preserving encoding of v: flipping the sign bit
// maps the signed range onto the unsigned range in the same relative order,
// since two's-complement negative values already decrease correctly below
// zero once the sign bit no longer inverts the comparison.
func Int64Key(v int64) uint64 {
	return uint64(v) ^ (1 << 63)
}

// Float64Key returns an order-preserving encoding of v: positive floats
// (sign bit clear) get their sign bit set so they sort above all encoded
// negatives, and negative floats (sign bit set) get every bit flipped so
// their magnitude order reverses into ascending encoded order. NaNs, which
// have no defined numeric order, are collapsed to a single sentinel above
// every finite and infinite encoding, so they sort last and compare equal
// to one another.
func Float64Key(v float64) uint64 {
	if math.IsNaN(v) {
		return math.MaxUint64
	}
	bits := math.Float64bits(v)
	if bits>>63 == 1 {
		return ^bits
	}
	return bits | (1 << 63)
}

// Float32Key is Float64Key's 32-bit analog and returns a uint32.
// Float32Indices below places each encoding in the high 32 bits of a
// dedicated 8-byte slot per row, leaving the low 32 bits zero.
func Float32Key(v float32) uint32 {
	if v != v { // NaN
		return math.MaxUint32
	}
	bits := math.Float32bits(v)
	if bits>>31 == 1 {
		return ^bits
	}
	return bits | (1 << 31)
}

func encode64(n int, encode func(i int) uint64) *FlatBuffer {
	data := make([]byte, n*8)
	offsets := make([]int, n)
	for i := 0; i < n; i++ {
		offsets[i] = i * 8
		k := encode(i)
		b := data[i*8 : i*8+8]
		b[0] = byte(k >> 56)
		b[1] = byte(k >> 48)
		b[2] = byte(k >> 40)
		b[3] = byte(k >> 32)
		b[4] = byte(k >> 24)
		b[5] = byte(k >> 16)
		b[6] = byte(k >> 8)
		b[7] = byte(k)
	}
	return &FlatBuffer{Data: data, Offsets: offsets}
}

// Uint64Indices returns the permutation that sorts vs in ascending order.
func Uint64Indices(vs []uint64) []int {
	buf := encode64(len(vs), func(i int) uint64 { return Uint64Key(vs[i]) })
	return SortIndices(buf)
}

// Int64Indices returns the permutation that sorts vs in ascending order.
func Int64Indices(vs []int64) []int {
	buf := encode64(len(vs), func(i int) uint64 { return Int64Key(vs[i]) })
	return SortIndices(buf)
}

// Float64Indices returns the permutation that sorts vs in ascending order,
// with NaNs ordered last.
func Float64Indices(vs []float64) []int {
	buf := encode64(len(vs), func(i int) uint64 { return Float64Key(vs[i]) })
	return SortIndices(buf)
}

// Float32Indices returns the permutation that sorts vs in ascending order,
// with NaNs ordered last.
func Float32Indices(vs []float32) []int {
	buf := encode64(len(vs), func(i int) uint64 { return uint64(Float32Key(vs[i])) << 32 })
	return SortIndices(buf)
}

// Uint64s sorts vs in place in ascending order.
func Uint64s(vs []uint64) { permuteNumeric(vs, Uint64Indices(vs)) }

// Int64s sorts vs in place in ascending order.
func Int64s(vs []int64) { permuteNumeric(vs, Int64Indices(vs)) }

// Float64s sorts vs in place in ascending order, with NaNs ordered last.
func Float64s(vs []float64) { permuteNumeric(vs, Float64Indices(vs)) }

// Float32s sorts vs in place in ascending order, with NaNs ordered last.
func Float32s(vs []float32) { permuteNumeric(vs, Float32Indices(vs)) }

func permuteNumeric[T any](vs []T, indices []int) {
	ApplyPermutation(indices, func(i, j int) { vs[i], vs[j] = vs[j], vs[i] })
}
