package sfs

import "errors"

// Errors returned by spectrum construction and estimators.
var (
	// ErrShape reports a reshape whose dimensions do not hold the
	// spectrum's element count.
	ErrShape = errors.New("sfs: dims do not match element count")

	// ErrDomain reports an estimator invoked on a spectrum with an
	// unsupported number of populations.
	ErrDomain = errors.New("sfs: statistic not defined for this many populations")

	// ErrAxis reports a population index outside the spectrum.
	ErrAxis = errors.New("sfs: population index out of range")
)
