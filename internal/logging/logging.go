package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
)

// Logger is the global slog instance for the application
var Logger = slog.New(slog.DiscardHandler)

// Options controls where log lines go
type Options struct {
	// Path of the log file; empty means ~/.sizerating/logs/sizerating.log
	Path string

	// Verbose also writes debug lines to stderr
	Verbose bool
}

// DefaultPath returns ~/.sizerating/logs/sizerating.log
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".sizerating", "logs", "sizerating.log"), nil
}

// Init initializes the logging system.
// Uses text format for human readability.
func Init(opts Options) (io.Closer, error) {
	logPath := opts.Path
	if logPath == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		logPath = p
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, err
	}

	// Open log file in append mode
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}

	var out io.Writer = file
	if opts.Verbose {
		out = io.MultiWriter(file, os.Stderr)
	}

	handler := slog.NewTextHandler(out, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})

	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	// Redirect standard log package output to the same file
	log.SetOutput(out)
	log.SetFlags(log.LstdFlags)

	return file, nil
}

// Discard drops all log output
func Discard() {
	Logger = slog.New(slog.DiscardHandler)
	slog.SetDefault(Logger)
	log.SetOutput(io.Discard)
}
