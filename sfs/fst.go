package sfs

import (
	"fmt"
	"math"

	"github.com/apmorgan/gosfs/internal/tensor"
)

// Fst returns the two-population F_st built from per-cell
// ratio-of-variance estimators (the ANGSD formulation). Every allele
// count pair (a1, a2) contributes an alpha and alpha+beta term; the
// corner-zeroed, renormalized spectrum supplies the weights. With
// weighted set the result is the ratio of weighted sums; otherwise the
// weighted sum of per-cell ratios, finite terms only. Returns NaN when
// the corner-zeroed weight total is zero.
func (s *Spectrum) Fst(weighted bool) (float64, error) {
	if s.NumPops() != 2 {
		return 0, fmt.Errorf("%w: F_st needs a two-population spectrum, got %d", ErrDomain, s.NumPops())
	}

	shape := s.Shape()
	n1 := float64(shape[0] - 1)
	n2 := float64(shape[1] - 1)

	weights := s.MaskCorners()
	wTotal := weights.Total()
	if wTotal == 0 || math.IsNaN(wTotal) {
		return math.NaN(), nil
	}
	wArr := weights.arr
	wArr.DivScalarInPlace(wTotal)

	alpha, err := tensor.Zeros(shape...)
	if err != nil {
		return 0, err
	}
	alphaBeta, err := tensor.Zeros(shape...)
	if err != nil {
		return 0, err
	}

	varDenom := 4 * n1 * n2 * (n1 + n2 - 1)
	for a1 := 0; a1 <= int(n1); a1++ {
		for a2 := 0; a2 <= int(n2); a2++ {
			p1 := float64(a1) / n1
			p2 := float64(a2) / n2
			q1 := 1 - p1
			q2 := 1 - p2
			alpha1 := 1 - (p1*p1 + q1*q1)
			alpha2 := 1 - (p2*p2 + q2*q2)

			half := 0.5 * ((p1-p2)*(p1-p2) + (q1-q2)*(q1-q2))
			shared := (n1*alpha1 + n2*alpha2) / varDenom
			alpha.Set(half-(n1+n2)*shared, a1, a2)
			alphaBeta.Set(half+(4*n1*n2-n1-n2)*shared, a1, a2)
		}
	}

	if weighted {
		num := wArr.Mul(alpha)
		denom := wArr.Mul(alphaBeta)
		return num.SumFinite() / denom.SumFinite(), nil
	}
	gamma := wArr.Mul(alpha.Div(alphaBeta))
	return gamma.SumFinite(), nil
}

// WeirCockerhamFst returns the classic Weir & Cockerham (1984)
// estimator, kept for comparison against Fst. It works for any number
// of populations >= 2: each cell of the spectrum is treated as one
// locus with absolute allele counts given by its index, the a/b/c
// variance components are combined per cell, and the final value is
// the count-weighted average over all cells excluding the two
// monomorphic corners. Returns NaN when the included weight is ~0.
func (s *Spectrum) WeirCockerhamFst() (float64, error) {
	r := s.NumPops()
	if r < 2 {
		return 0, fmt.Errorf("%w: F_st needs at least two populations, got %d", ErrDomain, r)
	}

	sizes := s.PopSizes()
	rf := float64(r)
	var nbar, sumSq float64
	for _, n := range sizes {
		nbar += float64(n)
		sumSq += float64(n * n)
	}
	nbar /= rf
	nc := (rf*nbar - sumSq/(rf*nbar)) / (rf - 1)

	total := s.arr.Sum()
	cells := s.arr.Len()
	perCell := make([]float64, cells)
	weight := make([]float64, cells)
	freqs := make([]float64, r)

	cell := 0
	s.arr.ForEach(func(idx []int, v float64) {
		weight[cell] = v / total

		var pbar float64
		for k, i := range idx {
			freqs[k] = float64(i) / float64(sizes[k])
			pbar += freqs[k]
		}
		pbar /= rf
		var s2, hbar float64
		for _, p := range freqs {
			d := p - pbar
			s2 += d * d
			hbar += 1 - p*p
		}
		s2 /= rf
		hbar /= rf

		a := (nbar / nc) * (s2 - (1/(nbar-1))*(pbar*(1-pbar)-s2*(rf-1)/rf-hbar/4))
		b := (nbar / (nbar - 1)) * (pbar*(1-pbar) - s2*(rf-1)/rf - hbar*(2*nbar-1)/(4*nbar))
		c := hbar / 2
		perCell[cell] = a / (a + b + c)
		cell++
	})

	// The first and last cells in row-major order are exactly the two
	// monomorphic corners; they are left out of the average.
	var wSum, acc float64
	for i := 1; i < cells-1; i++ {
		wSum += weight[i]
		acc += perCell[i] * weight[i]
	}
	if wSum < 1e-9 {
		return math.NaN(), nil
	}
	return acc / wSum, nil
}
