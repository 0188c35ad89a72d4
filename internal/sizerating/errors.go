package sizerating

import "errors"

// Classification errors
var (
	ErrNegative     = errors.New("size metric cannot be negative")
	ErrNotFinite    = errors.New("size metric must be a finite number")
	ErrUnknownClass = errors.New("unknown size class (must be one of XS, S, M, L, XL)")
)
