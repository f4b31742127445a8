// Package table reads the whitespace-delimited text format that site
// frequency spectra are exchanged in: one flat spectrum per line,
// comment lines starting with a marker, and an optional leading
// "#dims=d1,d2,..." directive announcing the shape of the first data
// line.
package table

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// ErrBadToken reports a data token that does not parse as a number.
var ErrBadToken = errors.New("table: token is not numeric")

var dimsDirective = regexp.MustCompile(`^#+dims=`)

// SniffDims parses a "#dims=d1,d2,..." comment directive. It returns
// nil with no error for any line that is not a dims directive, and an
// error for a directive with non-integer or non-positive fields.
func SniffDims(line string) ([]int, error) {
	loc := dimsDirective.FindStringIndex(line)
	if loc == nil {
		return nil, nil
	}
	fields := strings.Split(line[loc[1]:], ",")
	dims := make([]int, len(fields))
	for i, f := range fields {
		d, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("table: bad dims directive %q: %w", line, err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("table: bad dims directive %q: dimension %d", line, d)
		}
		dims[i] = d
	}
	return dims, nil
}

// Record is one data line: its numeric values, and the dims a preceding
// directive announced for it. Dims is set only on the first data line
// after a directive; later lines carry nil.
type Record struct {
	Values []float64
	Dims   []int
}

// Reader scans data lines out of a comment-annotated numeric table.
type Reader struct {
	sc         *bufio.Scanner
	comment    string
	delimiter  string
	dims       []int
	seenValues bool
	err        error
}

// Option configures a Reader.
type Option func(*Reader)

// WithComment changes the comment marker from the default "#".
// Dims directives are still recognized by their own leading "#".
func WithComment(marker string) Option {
	return func(r *Reader) {
		if marker != "" {
			r.comment = marker
		}
	}
}

// WithDelimiter splits data lines on delim instead of on runs of
// whitespace.
func WithDelimiter(delim string) Option {
	return func(r *Reader) {
		r.delimiter = delim
	}
}

// NewReader wraps r for record-at-a-time scanning.
func NewReader(r io.Reader, opts ...Option) *Reader {
	tr := &Reader{
		sc:      bufio.NewScanner(r),
		comment: "#",
	}
	// Flat spectra for several populations can be long lines.
	tr.sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for _, opt := range opts {
		if opt != nil {
			opt(tr)
		}
	}
	return tr
}

// Next returns the next data record, or io.EOF when the input is
// exhausted. Comment lines are skipped, with dims directives recorded
// along the way; blank lines are skipped too.
func (r *Reader) Next() (Record, error) {
	if r.err != nil {
		return Record{}, r.err
	}
	for r.sc.Scan() {
		line := strings.TrimSpace(r.sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, r.comment) {
			dims, err := SniffDims(line)
			if err != nil {
				r.err = err
				return Record{}, err
			}
			if dims != nil {
				r.dims = dims
			}
			continue
		}

		var tokens []string
		if r.delimiter == "" {
			tokens = strings.Fields(line)
		} else {
			tokens = strings.Split(line, r.delimiter)
		}
		values := make([]float64, len(tokens))
		for i, tok := range tokens {
			v, err := strconv.ParseFloat(strings.TrimSpace(tok), 64)
			if err != nil {
				r.err = fmt.Errorf("%w: %q", ErrBadToken, tok)
				return Record{}, r.err
			}
			values[i] = v
		}

		rec := Record{Values: values}
		if r.dims != nil && !r.seenValues {
			rec.Dims = r.dims
		}
		r.seenValues = true
		return rec, nil
	}
	if err := r.sc.Err(); err != nil {
		r.err = err
		return Record{}, err
	}
	r.err = io.EOF
	return Record{}, io.EOF
}

// ReadAll drains the reader.
func (r *Reader) ReadAll() ([]Record, error) {
	var recs []Record
	for {
		rec, err := r.Next()
		if errors.Is(err, io.EOF) {
			return recs, nil
		}
		if err != nil {
			return recs, err
		}
		recs = append(recs, rec)
	}
}

// ReadFloats reads every data record from r in one call.
func ReadFloats(r io.Reader, opts ...Option) ([]Record, error) {
	return NewReader(r, opts...).ReadAll()
}
