// Package tensor implements the dense n-dimensional float64 array that
// backs a site frequency spectrum: row-major storage, multi-index
// addressing, axis reductions, and SIMD-accelerated elementwise kernels.
package tensor

import (
	"errors"
	"fmt"
)

// Errors returned by tensor constructors and shape operations.
var (
	ErrShapeMismatch = errors.New("tensor: shape does not match element count")
	ErrEmptyShape    = errors.New("tensor: shape must have at least one positive dimension")
	ErrAxisRange     = errors.New("tensor: axis out of range")
)

// Array is a dense n-dimensional array of float64 in row-major order.
// The zero value is not usable; construct with New, Zeros, or Full.
type Array struct {
	shape []int
	data  []float64
}

func numElements(shape []int) (int, error) {
	if len(shape) == 0 {
		return 0, ErrEmptyShape
	}
	n := 1
	for _, d := range shape {
		if d <= 0 {
			return 0, fmt.Errorf("%w: dimension %d", ErrEmptyShape, d)
		}
		n *= d
	}
	return n, nil
}

// New builds an Array from a flat row-major slice. The data is copied,
// so the caller keeps ownership of its slice. With no shape given the
// array is one-dimensional with length len(data).
func New(data []float64, shape ...int) (*Array, error) {
	if len(shape) == 0 {
		shape = []int{len(data)}
	}
	n, err := numElements(shape)
	if err != nil {
		return nil, err
	}
	if n != len(data) {
		return nil, fmt.Errorf("%w: %v holds %d elements, data has %d", ErrShapeMismatch, shape, n, len(data))
	}
	a := &Array{
		shape: append([]int(nil), shape...),
		data:  append([]float64(nil), data...),
	}
	return a, nil
}

// Zeros returns a zero-filled Array with the given shape.
func Zeros(shape ...int) (*Array, error) {
	n, err := numElements(shape)
	if err != nil {
		return nil, err
	}
	return &Array{
		shape: append([]int(nil), shape...),
		data:  make([]float64, n),
	}, nil
}

// Full returns an Array with every element set to fill.
func Full(fill float64, shape ...int) (*Array, error) {
	a, err := Zeros(shape...)
	if err != nil {
		return nil, err
	}
	for i := range a.data {
		a.data[i] = fill
	}
	return a, nil
}

// Clone returns a deep copy sharing no state with the receiver.
func (a *Array) Clone() *Array {
	return &Array{
		shape: append([]int(nil), a.shape...),
		data:  append([]float64(nil), a.data...),
	}
}

// Shape returns a copy of the dimensions.
func (a *Array) Shape() []int {
	return append([]int(nil), a.shape...)
}

// Rank returns the number of dimensions.
func (a *Array) Rank() int { return len(a.shape) }

// Dim returns the length of axis k.
func (a *Array) Dim(k int) int { return a.shape[k] }

// Len returns the total number of elements.
func (a *Array) Len() int { return len(a.data) }

// Data exposes the flat row-major backing slice. Mutating it mutates
// the array.
func (a *Array) Data() []float64 { return a.data }

func (a *Array) offset(idx []int) int {
	if len(idx) != len(a.shape) {
		panic(fmt.Sprintf("tensor: index rank %d against shape %v", len(idx), a.shape))
	}
	off := 0
	for k, i := range idx {
		if i < 0 || i >= a.shape[k] {
			panic(fmt.Sprintf("tensor: index %v out of bounds for shape %v", idx, a.shape))
		}
		off = off*a.shape[k] + i
	}
	return off
}

// At returns the element at the given multi-index. Panics on a
// mis-ranked or out-of-bounds index, like a slice access.
func (a *Array) At(idx ...int) float64 {
	return a.data[a.offset(idx)]
}

// Set stores v at the given multi-index.
func (a *Array) Set(v float64, idx ...int) {
	a.data[a.offset(idx)] = v
}

// Reshape returns a new Array viewing a copy of the same elements under
// a different shape. The element count must be preserved.
func (a *Array) Reshape(shape ...int) (*Array, error) {
	n, err := numElements(shape)
	if err != nil {
		return nil, err
	}
	if n != len(a.data) {
		return nil, fmt.Errorf("%w: cannot reshape %v into %v", ErrShapeMismatch, a.shape, shape)
	}
	return &Array{
		shape: append([]int(nil), shape...),
		data:  append([]float64(nil), a.data...),
	}, nil
}

// ForEach calls fn for every element in row-major order with its
// multi-index. The idx slice is reused between calls; copy it if it
// must outlive fn.
func (a *Array) ForEach(fn func(idx []int, v float64)) {
	idx := make([]int, len(a.shape))
	for _, v := range a.data {
		fn(idx, v)
		for k := len(idx) - 1; k >= 0; k-- {
			idx[k]++
			if idx[k] < a.shape[k] {
				break
			}
			idx[k] = 0
		}
	}
}
