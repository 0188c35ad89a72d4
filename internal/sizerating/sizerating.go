// Package sizerating maps a size metric such as lines of code onto one of
// five ordinal size classes.
package sizerating

import (
	"fmt"
	"math"
	"strings"
)

// SizeClass is an ordinal bucket for a size metric.
// The zero value means the metric fell outside every band.
type SizeClass string

const (
	None SizeClass = ""
	XS   SizeClass = "XS"
	S    SizeClass = "S"
	M    SizeClass = "M"
	L    SizeClass = "L"
	XL   SizeClass = "XL"
)

// Band is a half-open interval [Lower, Upper) that maps to a class.
type Band struct {
	Lower float64
	Upper float64 // +Inf for the last band
	Class SizeClass
}

// bands must stay ascending and contiguous
var bands = [...]Band{
	{Lower: 0, Upper: 1000, Class: XS},
	{Lower: 1000, Upper: 10000, Class: S},
	{Lower: 10000, Upper: 100000, Class: M},
	{Lower: 100000, Upper: 500000, Class: L},
	{Lower: 500000, Upper: math.Inf(1), Class: XL},
}

// Bands returns a copy of the classification table in ascending order.
func Bands() []Band {
	out := make([]Band, len(bands))
	copy(out, bands[:])
	return out
}

// Classes returns every size class from smallest to largest.
func Classes() []SizeClass {
	out := make([]SizeClass, 0, len(bands))
	for _, b := range bands {
		out = append(out, b.Class)
	}
	return out
}

// Classify returns the size class for value.
// Negative values and NaN match no band and yield None.
func Classify(value float64) SizeClass {
	for i, b := range bands {
		// written this way so NaN never matches
		if !(value >= b.Lower) {
			continue
		}
		// XL is open-ended, only its lower bound is checked
		if i == len(bands)-1 || value < b.Upper {
			return b.Class
		}
	}
	return None
}

// Validate reports whether value is a usable size metric.
func Validate(value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%w: got %v", ErrNotFinite, value)
	}
	if value < 0 {
		return fmt.Errorf("%w: got %v", ErrNegative, value)
	}
	return nil
}

// ClassifyStrict validates value before classifying it.
func ClassifyStrict(value float64) (SizeClass, error) {
	if err := Validate(value); err != nil {
		return None, err
	}
	return Classify(value), nil
}

// ParseSizeClass parses a class label, ignoring case and surrounding space.
func ParseSizeClass(s string) (SizeClass, error) {
	c := SizeClass(strings.ToUpper(strings.TrimSpace(s)))
	if !c.Valid() {
		return None, fmt.Errorf("%w: %q", ErrUnknownClass, s)
	}
	return c, nil
}

// Valid reports whether c is one of the five classes.
func (c SizeClass) Valid() bool {
	return c.Ordinal() >= 0
}

// Ordinal returns the position of c from 0 (XS) to 4 (XL), or -1.
func (c SizeClass) Ordinal() int {
	for i, b := range bands {
		if b.Class == c {
			return i
		}
	}
	return -1
}

// Bounds returns the interval covered by c.
func (c SizeClass) Bounds() (lower, upper float64, ok bool) {
	i := c.Ordinal()
	if i < 0 {
		return 0, 0, false
	}
	return bands[i].Lower, bands[i].Upper, true
}

func (c SizeClass) String() string {
	return string(c)
}
