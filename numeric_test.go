package keysort_test

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	. "github.com/cps-sort/keysort"
)

func TestUint64s(t *testing.T) {
	data := make([]uint64, 2000)
	for i := range data {
		data[i] = uint64(rand.Int63())
	}
	want := append([]uint64(nil), data...)
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })

	Uint64s(data)
	for i := range want {
		if data[i] != want[i] {
			t.Fatalf("mismatch at %d: want %d got %d", i, want[i], data[i])
		}
	}
}

func TestInt64s(t *testing.T) {
	data := make([]int64, 2000)
	for i := range data {
		data[i] = rand.Int63() - (1 << 62)
	}
	want := append([]int64(nil), data...)
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })

	Int64s(data)
	for i := range want {
		if data[i] != want[i] {
			t.Fatalf("mismatch at %d: want %d got %d", i, want[i], data[i])
		}
	}
}

// TestFloat64sNaNsLast checks the engine's NaN convention: since byte-key
// order has no natural place for "unordered", NaNs are collapsed to a
// single sentinel encoding above every other value, so they sort last
// (instead of, e.g., IEEE 754's "any comparison involving NaN is false").
func TestFloat64sNaNsLast(t *testing.T) {
	data := []float64{3.1, -2.5, math.NaN(), 0, math.Inf(1), math.Inf(-1), math.NaN(), -0.0, 7.2}
	Float64s(data)

	for i := 0; i < len(data)-2; i++ {
		if math.IsNaN(data[i]) {
			t.Fatalf("NaN found before the last 2 positions at index %d: %v", i, data)
		}
	}
	if !math.IsNaN(data[len(data)-1]) || !math.IsNaN(data[len(data)-2]) {
		t.Fatalf("expected the two NaNs last, got %v", data)
	}
	finite := data[:len(data)-2]
	for i := 1; i < len(finite); i++ {
		if finite[i] < finite[i-1] {
			t.Fatalf("finite prefix not sorted: %v", finite)
		}
	}
}

func TestFloat64sMatchesStdlibExcludingNaN(t *testing.T) {
	n := 2000
	data := make([]float64, n)
	for i := range data {
		data[i] = rand.NormFloat64() * 1e6
	}
	want := append([]float64(nil), data...)
	sort.Float64s(want)

	Float64s(data)
	for i := range want {
		if data[i] != want[i] {
			t.Fatalf("mismatch at %d: want %v got %v", i, want[i], data[i])
		}
	}
}

func TestFloat32sMatchesStdlibExcludingNaN(t *testing.T) {
	n := 2000
	data := make([]float32, n)
	for i := range data {
		data[i] = float32(rand.NormFloat64() * 1e3)
	}
	want := append([]float32(nil), data...)
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })

	Float32s(data)
	for i := range want {
		if data[i] != want[i] {
			t.Fatalf("mismatch at %d: want %v got %v", i, want[i], data[i])
		}
	}
}

func TestFloat64KeyOrderPreserving(t *testing.T) {
	vals := []float64{math.Inf(-1), -1e300, -1, -0.0001, 0, 0.0001, 1, 1e300, math.Inf(1)}
	for i := 1; i < len(vals); i++ {
		if Float64Key(vals[i-1]) >= Float64Key(vals[i]) {
			t.Fatalf("Float64Key not order-preserving between %v and %v", vals[i-1], vals[i])
		}
	}
	if Float64Key(math.NaN()) != math.MaxUint64 {
		t.Fatalf("expected NaN to encode to the max sentinel")
	}
}

func TestInt64KeyOrderPreserving(t *testing.T) {
	vals := []int64{math.MinInt64, -1 << 40, -1, 0, 1, 1 << 40, math.MaxInt64}
	for i := 1; i < len(vals); i++ {
		if Int64Key(vals[i-1]) >= Int64Key(vals[i]) {
			t.Fatalf("Int64Key not order-preserving between %v and %v", vals[i-1], vals[i])
		}
	}
}
