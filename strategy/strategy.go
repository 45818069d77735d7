// Package strategy defines the interchangeable algorithms that multiply every
// element of an integer slice by a scalar, and the catalog that resolves a
// user-facing identifier to one of them.
//
// All variants produce identical results and differ only in how they traverse
// the slice. Arithmetic is native Go int arithmetic: products that overflow
// wrap around with two's-complement semantics in every variant.
package strategy

import (
	"iter"
	"slices"
	"unsafe"
)

// Strategy transforms a slice in place by multiplying each element by k.
// Implementations are stateless and may be swapped at any time.
type Strategy interface {
	// Apply multiplies every element of s by k. An empty slice is a no-op.
	Apply(s []int, k int)
	// Name returns a human-readable name used in history and logs.
	Name() string
}

// Loop multiplies through a classic index loop.
type Loop struct{}

func (Loop) Apply(s []int, k int) {
	for i := 0; i < len(s); i++ {
		s[i] *= k
	}
}

func (Loop) Name() string { return "multiply via loop" }

// Pointer walks a pointer across the backing array, one element at a time.
type Pointer struct{}

func (Pointer) Apply(s []int, k int) {
	if len(s) == 0 {
		return
	}

	size := unsafe.Sizeof(s[0])
	ptr := unsafe.Pointer(unsafe.SliceData(s))

	// The pointer never advances past the last element.
	for i := range len(s) {
		if i > 0 {
			ptr = unsafe.Add(ptr, size)
		}
		*(*int)(ptr) *= k
	}
}

func (Pointer) Name() string { return "multiply via pointers" }

// Transform maps each element through a multiplication func using the
// slices iterator.
type Transform struct{}

func (Transform) Apply(s []int, k int) {
	transform(slices.All(s), s, func(x int) int { return x * k })
}

func (Transform) Name() string { return "multiply via transform" }

func transform(seq iter.Seq2[int, int], dst []int, fn func(int) int) {
	for i, v := range seq {
		dst[i] = fn(v)
	}
}

// Range multiplies through range-over-slice iteration.
type Range struct{}

func (Range) Apply(s []int, k int) {
	for i, v := range s {
		s[i] = v * k
	}
}

func (Range) Name() string { return "multiply via range" }
