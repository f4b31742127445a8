package tensor

import (
	"fmt"
	"math"
	"sort"

	"github.com/cwbudde/algo-vecmath"
	"github.com/viterin/vek"
)

// Sum returns the sum over all elements.
func (a *Array) Sum() float64 {
	return vek.Sum(a.data)
}

// SumFinite returns the sum over all finite elements, skipping NaN and
// ±Inf terms.
func (a *Array) SumFinite() float64 {
	var sum float64
	for _, v := range a.data {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			sum += v
		}
	}
	return sum
}

// Dot returns the inner product of the flat elements with w.
// Panics if len(w) differs from the element count.
func (a *Array) Dot(w []float64) float64 {
	if len(w) != len(a.data) {
		panic(fmt.Sprintf("tensor: dot length %d against %d elements", len(w), len(a.data)))
	}
	return vek.Dot(a.data, w)
}

// Mul returns the elementwise product with b as a new Array.
// The shapes must match exactly.
func (a *Array) Mul(b *Array) *Array {
	a.mustMatch(b)
	out := a.Clone()
	vecmath.MulBlock(out.data, a.data, b.data)
	return out
}

// MulInPlace multiplies the receiver elementwise by b.
func (a *Array) MulInPlace(b *Array) {
	a.mustMatch(b)
	vecmath.MulBlockInPlace(a.data, b.data)
}

// Div returns the elementwise quotient a/b as a new Array, with IEEE
// semantics for zero denominators (Inf, NaN).
func (a *Array) Div(b *Array) *Array {
	a.mustMatch(b)
	return &Array{
		shape: append([]int(nil), a.shape...),
		data:  vek.Div(a.data, b.data),
	}
}

// DivScalarInPlace divides every element by x.
func (a *Array) DivScalarInPlace(x float64) {
	vek.DivNumber_Inplace(a.data, x)
}

func (a *Array) mustMatch(b *Array) {
	if len(a.shape) != len(b.shape) {
		panic(fmt.Sprintf("tensor: shape %v against %v", a.shape, b.shape))
	}
	for k := range a.shape {
		if a.shape[k] != b.shape[k] {
			panic(fmt.Sprintf("tensor: shape %v against %v", a.shape, b.shape))
		}
	}
}

// ReverseAll reverses every axis simultaneously in place, mapping the
// multi-index i to shape-1-i. For a row-major buffer this is exactly a
// reversal of the flat data, which a swap loop performs without any
// partial-overwrite hazard.
func (a *Array) ReverseAll() {
	for i, j := 0, len(a.data)-1; i < j; i, j = i+1, j-1 {
		a.data[i], a.data[j] = a.data[j], a.data[i]
	}
}

// SumAxes sums over every axis NOT listed in keep and returns the
// reduced Array. The kept axes appear in their original order
// regardless of the order given. Keeping every axis returns a copy;
// keeping none collapses the array to a single-element total. Axes
// must be in range with no duplicates.
func (a *Array) SumAxes(keep []int) (*Array, error) {
	kept := append([]int(nil), keep...)
	sort.Ints(kept)
	for i, ax := range kept {
		if ax < 0 || ax >= len(a.shape) {
			return nil, fmt.Errorf("%w: axis %d of rank-%d array", ErrAxisRange, ax, len(a.shape))
		}
		if i > 0 && kept[i-1] == ax {
			return nil, fmt.Errorf("%w: axis %d repeated", ErrAxisRange, ax)
		}
	}

	outShape := make([]int, len(kept))
	for i, ax := range kept {
		outShape[i] = a.shape[ax]
	}
	if len(outShape) == 0 {
		outShape = []int{1}
	}
	out, err := Zeros(outShape...)
	if err != nil {
		return nil, err
	}

	idx := make([]int, len(a.shape))
	for _, v := range a.data {
		off := 0
		for _, ax := range kept {
			off = off*a.shape[ax] + idx[ax]
		}
		out.data[off] += v
		for k := len(idx) - 1; k >= 0; k-- {
			idx[k]++
			if idx[k] < a.shape[k] {
				break
			}
			idx[k] = 0
		}
	}
	return out, nil
}
