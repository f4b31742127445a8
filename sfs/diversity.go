package sfs

import (
	"fmt"
	"math"
)

// The persite flag on an estimator divides the statistic by the
// recorded sequence length L. When no length is recorded the flag is
// silently a no-op rather than an error; downstream callers rely on
// that fallback.
func (s *Spectrum) persiteDenom(persite bool) float64 {
	if persite && s.hasLength {
		return s.length
	}
	return 1
}

func (s *Spectrum) want1D(stat string) error {
	if s.NumPops() > 1 {
		return fmt.Errorf("%w: %s needs a one-population spectrum, got %d", ErrDomain, stat, s.NumPops())
	}
	return nil
}

// DXY returns the average derived-allele count per sampled chromosome:
// sum over i of count[i]*i, divided by the sample size. One-population
// spectra only.
func (s *Spectrum) DXY(persite bool) (float64, error) {
	if err := s.want1D("d_xy"); err != nil {
		return 0, err
	}
	n := s.arr.Dim(0)
	w := make([]float64, n)
	for i := range w {
		w[i] = float64(i)
	}
	dxy := s.arr.Dot(w) / float64(n-1)
	return dxy / s.persiteDenom(persite), nil
}

// ThetaPi returns Tajima's estimator of theta from average pairwise
// differences: sum(count[i] * (n-i)*i) / C(n,2) for sample size n.
// With norm set the result is further divided by DXY. One-population
// spectra only.
func (s *Spectrum) ThetaPi(persite, norm bool) (float64, error) {
	if err := s.want1D("theta_pi"); err != nil {
		return 0, err
	}
	n := s.PopSizes()[0]
	w := make([]float64, n+1)
	for i := range w {
		w[i] = float64(n-i) * float64(i)
	}
	pihat := s.arr.Dot(w) / choose2(n)
	pihat /= s.persiteDenom(persite)
	if norm {
		dxy, err := s.DXY(persite)
		if err != nil {
			return 0, err
		}
		pihat /= dxy
	}
	return pihat, nil
}

// ThetaW returns Watterson's estimator of theta: segregating sites
// divided by the harmonic number a1(n). One-population spectra only.
func (s *Spectrum) ThetaW(persite bool) (float64, error) {
	if err := s.want1D("theta_w"); err != nil {
		return 0, err
	}
	n := s.PopSizes()[0]
	tw := s.CountSegsites() / harmonic(n)
	return tw / s.persiteDenom(persite), nil
}

// ThetaZeta returns the singleton-class estimator of theta: the count
// of sites with exactly one derived allele. One-population spectra
// only.
func (s *Spectrum) ThetaZeta(persite bool) (float64, error) {
	if err := s.want1D("theta_zeta"); err != nil {
		return 0, err
	}
	return s.arr.At(1) / s.persiteDenom(persite), nil
}

// BigDXY returns the average number of pairwise differences between
// two populations: sum(count[i,j] * ((nx-1-i)*j + i*(ny-1-j))) over
// the shape product. Two-population spectra only.
func (s *Spectrum) BigDXY(persite bool) (float64, error) {
	if s.NumPops() != 2 {
		return 0, fmt.Errorf("%w: D_xy needs a two-population spectrum, got %d", ErrDomain, s.NumPops())
	}
	nx, ny := s.arr.Dim(0), s.arr.Dim(1)
	w := make([]float64, nx*ny)
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			w[i*ny+j] = float64((nx-1-i)*j) + float64(i*(ny-1-j))
		}
	}
	pihat := s.arr.Dot(w) / float64(nx*ny)
	return pihat / s.persiteDenom(persite), nil
}

// TajimaD returns Tajima's D: the difference between the pairwise and
// Watterson estimates of theta, normalized by its sampling standard
// deviation. One-population spectra only. Degenerate spectra (no
// segregating sites, or sample size 3 where the variance coefficients
// vanish) yield NaN or Inf rather than an error.
func (s *Spectrum) TajimaD() (float64, error) {
	if err := s.want1D("tajima_D"); err != nil {
		return 0, err
	}
	tp, err := s.ThetaPi(false, false)
	if err != nil {
		return 0, err
	}
	tw, err := s.ThetaW(false)
	if err != nil {
		return 0, err
	}
	n := s.PopSizes()[0]
	seg := s.CountSegsites()
	denom := math.Sqrt(tajimaE1(n)*seg + tajimaE2(n)*seg*(seg-1))
	return (tp - tw) / denom, nil
}

// FuLiD returns Fu & Li's D, contrasting the singleton count with the
// total number of segregating sites. One-population spectra only.
func (s *Spectrum) FuLiD() (float64, error) {
	if err := s.want1D("fuli_D"); err != nil {
		return 0, err
	}
	n := s.PopSizes()[0]
	zeta, err := s.ThetaZeta(false)
	if err != nil {
		return 0, err
	}
	seg := s.CountSegsites()
	num := seg - zeta*harmonic(n)
	denom := math.Sqrt(seg*fuliU(n) + seg*seg*fuliNu(n))
	return num / denom, nil
}

// FuLiF is not implemented; it always returns NaN and false.
func (s *Spectrum) FuLiF() (float64, bool) {
	return math.NaN(), false
}
