package sfs_test

import (
	"fmt"

	"github.com/apmorgan/gosfs/sfs"
)

func ExampleNew() {
	s, _ := sfs.New([]float64{0, 3, 5, 2, 0})
	fmt.Printf("pops=%d n=%d segsites=%g\n", s.NumPops(), s.PopSizes()[0], s.CountSegsites())

	// Output:
	// pops=1 n=4 segsites=10
}

func ExampleSpectrum_ThetaW() {
	s, _ := sfs.New([]float64{0, 3, 5, 2, 0})
	tw, _ := s.ThetaW(false)
	fmt.Printf("theta_w=%.4f\n", tw)

	// Output:
	// theta_w=5.4545
}

func ExampleSpectrum_SetLength() {
	s, _ := sfs.New([]float64{0, 3, 5, 2, 0})
	s.SetLength(20)
	fmt.Printf("corner=%g total=%g\n", s.At(0), s.Total())

	// Output:
	// corner=10 total=20
}

func ExampleSpectrum_Marginalize() {
	s, _ := sfs.New([]float64{
		0, 2, 1, 0, 1,
		3, 4, 1, 0, 0,
		0, 2, 5, 1, 0,
		0, 0, 2, 3, 1,
		1, 0, 0, 2, 0,
	}, sfs.WithDims(5, 5))
	m, _ := s.Marginalize(0)
	fmt.Println(m)

	// Output:
	// 4 8 8 6 3
}

func ExampleSpectrum_BigSummary() {
	s, _ := sfs.New([]float64{0, 3, 5, 2, 0})
	vec, _ := s.BigSummary(false, false)
	fmt.Printf("len=%d L=%g\n", len(vec), vec[0])

	// Output:
	// len=7 L=10
}
