package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/sizerating/internal/config/tokens"
	"github.com/thenoetrevino/sizerating/internal/sizerating"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: file system errors or unexpected failures.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: unknown output formats, refusing to overwrite a config file.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: unknown theme presets.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: config or theme files with unusable tokens.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: negative, non-finite or unparseable size metrics.
	ExitValidation = 5
)

// CodedError carries the exit code a command failed with.
// Reported marks errors the OutputFormatter has already shown the user.
type CodedError struct {
	Code     int
	Err      error
	Reported bool
}

// NewExitError wraps an error the command already reported through its
// OutputFormatter
func NewExitError(code int, err error) *CodedError {
	return &CodedError{Code: code, Err: err, Reported: true}
}

// NewCodedError wraps an error that still has to be shown to the user
func NewCodedError(code int, err error) *CodedError {
	return &CodedError{Code: code, Err: err}
}

// NewUsageError wraps a bad argument or flag error with ExitUsage
func NewUsageError(err error) *CodedError {
	return NewCodedError(ExitUsage, err)
}

// UsageArgs makes a cobra argument validator fail with ExitUsage
func UsageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return NewUsageError(err)
		}
		return nil
	}
}

func (e *CodedError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *CodedError) Unwrap() error {
	return e.Err
}

// ExitCodeFor maps an error returned by a command to a process exit code
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var coded *CodedError
	if errors.As(err, &coded) {
		return coded.Code
	}

	switch {
	case errors.Is(err, sizerating.ErrNegative),
		errors.Is(err, sizerating.ErrNotFinite),
		errors.Is(err, ErrInvalidValue):
		return ExitValidation
	case errors.Is(err, tokens.ErrInvalidSize),
		errors.Is(err, tokens.ErrInvalidColor):
		return ExitDataErr
	case errors.Is(err, ErrUnknownPreset):
		return ExitNotFound
	case errors.Is(err, ErrUnknownFormat):
		return ExitUsage
	default:
		return ExitError
	}
}

// Report prints err to w unless a formatter already did, and returns the
// exit code for it
func Report(w io.Writer, err error) int {
	if err == nil {
		return ExitSuccess
	}

	var coded *CodedError
	if !errors.As(err, &coded) || !coded.Reported {
		fmt.Fprintf(w, "Error: %s\n", err)
	}
	return ExitCodeFor(err)
}
