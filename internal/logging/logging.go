// Package logging wraps a charmbracelet/log logger. The TUI owns the
// terminal, so the logger is pointed at a file before the program starts.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	clog "github.com/charmbracelet/log"
)

// L is the package-level logger. Until Setup runs it discards output.
var L = clog.New(io.Discard)

// Options configures Setup
type Options struct {
	Path  string
	Debug bool
}

// Setup opens (or creates) the log file and routes L to it.
// The returned closer must be called on exit.
func Setup(opts Options) (io.Closer, error) {
	if opts.Path == "" {
		return io.NopCloser(nil), nil
	}
	if dir := filepath.Dir(opts.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}
	f, err := os.OpenFile(opts.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	L = clog.NewWithOptions(f, clog.Options{
		ReportTimestamp: true,
		Prefix:          "searchbox",
	})
	if opts.Debug {
		L.SetLevel(clog.DebugLevel)
	}
	return f, nil
}

// Debugf logs a debug-level formatted message.
func Debugf(format string, v ...interface{}) {
	L.Debug(fmt.Sprintf(format, v...))
}

// Infof logs an info-level formatted message.
func Infof(format string, v ...interface{}) {
	L.Info(fmt.Sprintf(format, v...))
}

// Warnf logs a warning-level formatted message.
func Warnf(format string, v ...interface{}) {
	L.Warn(fmt.Sprintf(format, v...))
}

// Errorf logs an error-level formatted message.
func Errorf(format string, v ...interface{}) {
	L.Error(fmt.Sprintf(format, v...))
}
