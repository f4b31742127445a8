package sfs

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/apmorgan/gosfs/internal/tensor"
)

// Spectrum is a site frequency spectrum: an n-dimensional table of
// site counts with one dimension per population. Index i along a
// population's axis counts sites with i derived alleles out of that
// population's haploid sample, so each axis is one longer than the
// sample size it describes.
//
// A Spectrum owns its counts. Structural operations (Marginalize,
// Reshape, MaskCorners) return new spectra sharing no state with the
// receiver; Repolarize, SetLength, and AssumeLength mutate in place and
// must not race with concurrent readers.
type Spectrum struct {
	arr       *tensor.Array
	length    float64
	hasLength bool
}

// New wraps flat row-major counts as a Spectrum. Options reshape the
// data into multiple populations, flip polarity, and record a total
// sequence length (in that order).
func New(data []float64, opts ...Option) (*Spectrum, error) {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	arr, err := tensor.New(data, cfg.dims...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrShape, err)
	}
	s := &Spectrum{arr: arr}
	if cfg.repolarize {
		s.Repolarize()
	}
	if cfg.hasLength {
		s.SetLength(cfg.length)
	}
	return s, nil
}

// Shape returns the table dimensions, one per population.
func (s *Spectrum) Shape() []int { return s.arr.Shape() }

// NumPops returns the number of populations (table dimensions).
func (s *Spectrum) NumPops() int { return s.arr.Rank() }

// Is1D reports whether the spectrum covers a single population.
func (s *Spectrum) Is1D() bool { return s.arr.Rank() == 1 }

// PopSizes returns the haploid sample size of each population, i.e.
// each axis length minus one.
func (s *Spectrum) PopSizes() []int {
	sizes := s.arr.Shape()
	for k := range sizes {
		sizes[k]--
	}
	return sizes
}

// Counts exposes the flat row-major count buffer. Mutating it mutates
// the spectrum.
func (s *Spectrum) Counts() []float64 { return s.arr.Data() }

// At returns the count at the given multi-index.
func (s *Spectrum) At(idx ...int) float64 { return s.arr.At(idx...) }

// Total returns the sum over all cells.
func (s *Spectrum) Total() float64 { return s.arr.Sum() }

// Length returns the recorded total sequence length, if any.
func (s *Spectrum) Length() (float64, bool) { return s.length, s.hasLength }

// SetLength records the total sequence length L and adds L minus the
// current total to the all-ancestral corner cell, so that the spectrum
// sums to L afterwards. No validation is done against L smaller than
// the observed total; that silently leaves a negative corner count.
func (s *Spectrum) SetLength(length float64) {
	anc, _ := s.CornerMask()
	delta := length - s.arr.Sum()
	s.arr.Set(s.arr.At(anc...)+delta, anc...)
	s.length = length
	s.hasLength = true
}

// ClearLength forgets any recorded sequence length without touching
// the counts.
func (s *Spectrum) ClearLength() {
	s.length = 0
	s.hasLength = false
}

// AssumeLength records the current total as the sequence length,
// without adjusting any cell.
func (s *Spectrum) AssumeLength() {
	s.length = s.arr.Sum()
	s.hasLength = true
}

// MatchDims reports whether a candidate shape is compatible with the
// spectrum: an exact per-axis match for multi-population spectra, or
// (for a one-population spectrum) any shape holding the same number of
// elements.
func (s *Spectrum) MatchDims(query []int) bool {
	shape := s.arr.Shape()
	if len(query) == len(shape) {
		for k := range shape {
			if query[k] != shape[k] {
				return false
			}
		}
		return true
	}
	if len(shape) != 1 {
		return false
	}
	prod := 1
	for _, d := range query {
		prod *= d
	}
	return prod == s.arr.Len()
}

// CornerMask returns the two monomorphic corner indices: all-zero
// (fixed ancestral) and all-(size) (fixed derived).
func (s *Spectrum) CornerMask() (anc, der []int) {
	shape := s.arr.Shape()
	anc = make([]int, len(shape))
	der = make([]int, len(shape))
	for k, d := range shape {
		der[k] = d - 1
	}
	return anc, der
}

// MaskCorners returns a copy of the spectrum with both monomorphic
// corner cells zeroed. The receiver is not modified.
func (s *Spectrum) MaskCorners() *Spectrum {
	anc, der := s.CornerMask()
	out := &Spectrum{arr: s.arr.Clone(), length: s.length, hasLength: s.hasLength}
	out.arr.Set(0, anc...)
	out.arr.Set(0, der...)
	return out
}

// Repolarize swaps the ancestral/derived orientation in place by
// reversing every axis simultaneously. Applying it twice restores the
// original spectrum.
func (s *Spectrum) Repolarize() {
	s.arr.ReverseAll()
}

// CountSegsites returns the number of segregating sites: the total
// count minus the two monomorphic corner cells.
func (s *Spectrum) CountSegsites() float64 {
	anc, der := s.CornerMask()
	return s.arr.Sum() - s.arr.At(anc...) - s.arr.At(der...)
}

// Marginalize sums the spectrum down to the given populations and
// returns the reduced spectrum. With no populations given every axis
// is summed out, leaving a single cell holding the total. The recorded
// length carries over; the result shares no state with the receiver.
func (s *Spectrum) Marginalize(keep ...int) (*Spectrum, error) {
	arr, err := s.arr.SumAxes(keep)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAxis, err)
	}
	return &Spectrum{arr: arr, length: s.length, hasLength: s.hasLength}, nil
}

// Reshape returns a copy of the spectrum under new dimensions. The
// element count must be preserved; fails with ErrShape otherwise.
func (s *Spectrum) Reshape(dims ...int) (*Spectrum, error) {
	arr, err := s.arr.Reshape(dims...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrShape, err)
	}
	return &Spectrum{arr: arr, length: s.length, hasLength: s.hasLength}, nil
}

// String renders the flat counts space-separated, the same layout the
// table format stores.
func (s *Spectrum) String() string {
	data := s.arr.Data()
	parts := make([]string, len(data))
	for i, v := range data {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, " ")
}
