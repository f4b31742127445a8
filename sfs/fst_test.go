package sfs

import (
	"math"
	"testing"
)

func TestFst_Weighted(t *testing.T) {
	s := twoPop(t)
	got, err := s.Fst(true)
	if err != nil {
		t.Fatalf("Fst: %v", err)
	}
	if want := 0.14002828854314; !almostEqual(got, want, tolerance) {
		t.Errorf("Fst(weighted): got %g, want %g", got, want)
	}
}

func TestFst_Unweighted(t *testing.T) {
	s := twoPop(t)
	got, err := s.Fst(false)
	if err != nil {
		t.Fatalf("Fst: %v", err)
	}
	if want := 0.0640394088669951; !almostEqual(got, want, tolerance) {
		t.Errorf("Fst(unweighted): got %g, want %g", got, want)
	}
}

func TestFst_DoesNotMutateInput(t *testing.T) {
	s := twoPop(t)
	before := append([]float64(nil), s.Counts()...)
	if _, err := s.Fst(true); err != nil {
		t.Fatalf("Fst: %v", err)
	}
	for i, v := range s.Counts() {
		if v != before[i] {
			t.Fatalf("Fst mutated cell %d: got %g, want %g", i, v, before[i])
		}
	}
}

func TestFst_InRange(t *testing.T) {
	s := twoPop(t)
	for _, weighted := range []bool{true, false} {
		got, err := s.Fst(weighted)
		if err != nil {
			t.Fatalf("Fst(%v): %v", weighted, err)
		}
		if got < -1 || got > 1 {
			t.Errorf("Fst(%v)=%g outside [-1,1]", weighted, got)
		}
	}
}

func TestFst_DegenerateWeightsIsNaN(t *testing.T) {
	// Only the monomorphic corners carry counts, so the corner-zeroed
	// weight total is zero.
	counts := make([]float64, 25)
	counts[0] = 12
	counts[24] = 7
	s, err := New(counts, WithDims(5, 5))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for _, weighted := range []bool{true, false} {
		got, err := s.Fst(weighted)
		if err != nil {
			t.Fatalf("Fst(%v): %v", weighted, err)
		}
		if !math.IsNaN(got) {
			t.Errorf("Fst(%v) on corner-only spectrum: got %g, want NaN", weighted, got)
		}
	}
}

func TestWeirCockerhamFst(t *testing.T) {
	s := twoPop(t)
	got, err := s.WeirCockerhamFst()
	if err != nil {
		t.Fatalf("WeirCockerhamFst: %v", err)
	}
	if want := 0.133825944170772; !almostEqual(got, want, tolerance) {
		t.Errorf("WeirCockerhamFst: got %g, want %g", got, want)
	}
}

func TestWeirCockerhamFst_DegenerateWeightsIsNaN(t *testing.T) {
	counts := make([]float64, 25)
	counts[0] = 12
	counts[24] = 7
	s, err := New(counts, WithDims(5, 5))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got, err := s.WeirCockerhamFst()
	if err != nil {
		t.Fatalf("WeirCockerhamFst: %v", err)
	}
	if !math.IsNaN(got) {
		t.Errorf("got %g, want NaN", got)
	}
}
