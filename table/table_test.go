package table

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestSniffDims(t *testing.T) {
	cases := []struct {
		line string
		want []int
	}{
		{"#dims=4,5", []int{4, 5}},
		{"##dims=20", []int{20}},
		{"#dims=2, 3, 4", []int{2, 3, 4}},
		{"# a plain comment", nil},
		{"dims=4,5", nil},
		{"0 1 2", nil},
	}
	for _, tc := range cases {
		got, err := SniffDims(tc.line)
		if err != nil {
			t.Fatalf("SniffDims(%q): %v", tc.line, err)
		}
		if len(got) != len(tc.want) {
			t.Errorf("SniffDims(%q): got %v, want %v", tc.line, got, tc.want)
			continue
		}
		for i := range tc.want {
			if got[i] != tc.want[i] {
				t.Errorf("SniffDims(%q): got %v, want %v", tc.line, got, tc.want)
				break
			}
		}
	}
}

func TestSniffDims_Malformed(t *testing.T) {
	for _, line := range []string{"#dims=a,b", "#dims=4,", "#dims=0,3", "#dims=-2"} {
		if _, err := SniffDims(line); err == nil {
			t.Errorf("SniffDims(%q): expected error", line)
		}
	}
}

func TestReader_SkipsCommentsAndBlanks(t *testing.T) {
	in := "# header\n\n0 3 5 2 0\n"
	r := NewReader(strings.NewReader(in))
	rec, err := r.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	want := []float64{0, 3, 5, 2, 0}
	for i, v := range want {
		if rec.Values[i] != v {
			t.Errorf("Values[%d]: got %g, want %g", i, rec.Values[i], v)
		}
	}
	if rec.Dims != nil {
		t.Errorf("Dims: got %v, want nil", rec.Dims)
	}
	if _, err := r.Next(); !errors.Is(err, io.EOF) {
		t.Errorf("after last record: got %v, want io.EOF", err)
	}
}

func TestReader_DimsDirectiveFirstLineOnly(t *testing.T) {
	in := "#dims=2,3\n0 1 2 3 4 5\n6 7 8 9 10 11\n"
	r := NewReader(strings.NewReader(in))

	first, err := r.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if len(first.Dims) != 2 || first.Dims[0] != 2 || first.Dims[1] != 3 {
		t.Errorf("first Dims: got %v, want [2 3]", first.Dims)
	}

	second, err := r.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if second.Dims != nil {
		t.Errorf("second Dims: got %v, want nil", second.Dims)
	}
}

func TestReader_CustomComment(t *testing.T) {
	in := "; a remark\n1 2 3\n"
	r := NewReader(strings.NewReader(in), WithComment(";"))
	rec, err := r.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if len(rec.Values) != 3 {
		t.Errorf("Values: got %v", rec.Values)
	}
}

func TestReader_CustomDelimiter(t *testing.T) {
	in := "1,2.5,3\n"
	r := NewReader(strings.NewReader(in), WithDelimiter(","))
	rec, err := r.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	want := []float64{1, 2.5, 3}
	for i, v := range want {
		if rec.Values[i] != v {
			t.Errorf("Values[%d]: got %g, want %g", i, rec.Values[i], v)
		}
	}
}

func TestReader_BadToken(t *testing.T) {
	r := NewReader(strings.NewReader("1 2 x 4\n"))
	if _, err := r.Next(); !errors.Is(err, ErrBadToken) {
		t.Fatalf("got %v, want ErrBadToken", err)
	}
	// The reader stays failed.
	if _, err := r.Next(); !errors.Is(err, ErrBadToken) {
		t.Fatalf("second Next: got %v, want ErrBadToken", err)
	}
}

func TestReadFloats(t *testing.T) {
	in := "# two spectra\n0 1 2\n3 4 5\n"
	recs, err := ReadFloats(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadFloats: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("records: got %d, want 2", len(recs))
	}
	if recs[1].Values[2] != 5 {
		t.Errorf("recs[1].Values[2]: got %g, want 5", recs[1].Values[2])
	}
}
