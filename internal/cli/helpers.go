package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/thenoetrevino/sizerating/internal/config/tokens"
)

// Format is a badge output format
type Format string

const (
	FormatTerm Format = "term"
	FormatHTML Format = "html"
	FormatSVG  Format = "svg"
	FormatCSS  Format = "css"
)

// Formats lists every supported output format
func Formats() []Format {
	return []Format{FormatTerm, FormatHTML, FormatSVG, FormatCSS}
}

// ParseFormat maps a --format value to a Format
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// ParseValue parses a size metric such as "1200", "12,000", "12_000", "12k" or "1.5M".
// It does not check the range; see sizerating.Validate.
func ParseValue(s string) (float64, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: empty value", ErrInvalidValue)
	}

	plain := strings.NewReplacer(",", "", "_", "").Replace(trimmed)
	if v, err := strconv.ParseFloat(plain, 64); err == nil {
		return v, nil
	}

	if v, ok := parseSuffixed(plain); ok {
		return v, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidValue, s)
}

// valueSuffixes are the multipliers a metric may end with. Lowercase m would be
// milli to humanize, so it is not accepted at all.
const valueSuffixes = "kKMG"

// parseSuffixed reads "12k", "12K", "1.5M" or "2G". Anything after the
// multiplier makes the value invalid.
func parseSuffixed(s string) (float64, bool) {
	last := s[len(s)-1:]
	if !strings.Contains(valueSuffixes, last) {
		return 0, false
	}
	if last == "K" {
		s = s[:len(s)-1] + "k"
	}

	v, unit, err := humanize.ParseSI(s)
	if err != nil || unit != "" {
		return 0, false
	}
	return v, true
}

// FormatValue renders a metric with thousands separators
func FormatValue(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return humanize.Comma(int64(v))
	}
	return humanize.Commaf(v)
}

// LookupPreset returns the named theme preset
func LookupPreset(name string) (*tokens.ThemeTokens, error) {
	for _, known := range tokens.PresetNames() {
		if known == name {
			return tokens.GetPreset(name), nil
		}
	}
	return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownPreset, name, strings.Join(tokens.PresetNames(), ", "))
}
