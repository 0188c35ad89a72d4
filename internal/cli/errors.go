package cli

import "errors"

// CLI input errors
var (
	ErrInvalidValue  = errors.New("invalid size metric")
	ErrUnknownFormat = errors.New("unknown output format (must be one of term, html, svg, css)")
	ErrUnknownPreset = errors.New("unknown theme preset")
	ErrConfigExists  = errors.New("config file already exists")
)
