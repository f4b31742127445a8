package sfs

type config struct {
	dims       []int
	length     float64
	hasLength  bool
	repolarize bool
}

// Option configures spectrum construction.
type Option func(*config)

// WithDims reshapes the raw data into the given dimensions, one per
// population. New fails with ErrShape if the product does not match the
// element count.
func WithDims(dims ...int) Option {
	return func(cfg *config) {
		cfg.dims = append([]int(nil), dims...)
	}
}

// WithLength records the total sequence length L and tops up the
// all-ancestral corner so the spectrum sums to L. Applied after any
// repolarization.
func WithLength(length float64) Option {
	return func(cfg *config) {
		cfg.length = length
		cfg.hasLength = true
	}
}

// Repolarized flips the polarity of the spectrum (full index reversal)
// before any length fixup.
func Repolarized() Option {
	return func(cfg *config) {
		cfg.repolarize = true
	}
}
