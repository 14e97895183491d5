// Package ui prints user-facing status lines for the tracklab CLI.
// Every line is prefixed with "tracklab:" so output interleaved with a
// training process is attributable. Diagnostics belong in internal/log.
package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
)

// Prefix is prepended to every status line.
const Prefix = "tracklab:"

var writer io.Writer = os.Stderr

// SetWriter overrides the output writer (for testing).
func SetWriter(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	writer = w
}

// --- Color detection ---

var colorEnabled = detectColor(os.Stderr)

func detectColor(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// SetColorEnabled overrides color detection (for testing).
func SetColorEnabled(enabled bool) {
	colorEnabled = enabled
}

// ColorEnabled reports whether color output is enabled.
func ColorEnabled() bool {
	return colorEnabled
}

func ansi(code, s string) string {
	if !colorEnabled {
		return s
	}
	return "\033[" + code + "m" + s + "\033[0m"
}

// Bold returns s wrapped in bold ANSI codes.
func Bold(s string) string { return ansi("1", s) }

// Yellow returns s wrapped in yellow ANSI codes.
func Yellow(s string) string { return ansi("33", s) }

// Green returns s wrapped in green ANSI codes.
func Green(s string) string { return ansi("32", s) }

// Red returns s wrapped in red ANSI codes.
func Red(s string) string { return ansi("31", s) }

// --- Status lines ---

// Log prints a prefixed status line.
func Log(msg string) {
	fmt.Fprintf(writer, "%s %s\n", Prefix, msg)
}

// Logf prints a formatted prefixed status line.
func Logf(format string, args ...any) {
	Log(fmt.Sprintf(format, args...))
}

var (
	onceMu   sync.Mutex
	onceSeen = map[string]bool{}
)

// LogOnce prints a prefixed status line at most once per process.
// Repeated login checks in the same process stay quiet after the first.
func LogOnce(msg string) {
	onceMu.Lock()
	seen := onceSeen[msg]
	onceSeen[msg] = true
	onceMu.Unlock()
	if !seen {
		Log(msg)
	}
}

// ResetOnce clears the repeat-suppression state (for testing).
func ResetOnce() {
	onceMu.Lock()
	onceSeen = map[string]bool{}
	onceMu.Unlock()
}

// Warn prints a prefixed user-facing warning.
func Warn(msg string) {
	fmt.Fprintf(writer, "%s %s %s\n", Prefix, ansi("33", "WARNING"), msg)
}

// Warnf prints a formatted user-facing warning.
func Warnf(format string, args ...any) {
	Warn(fmt.Sprintf(format, args...))
}

// Error prints a prefixed user-facing error.
func Error(msg string) {
	fmt.Fprintf(writer, "%s %s %s\n", Prefix, ansi("31", "ERROR"), msg)
}

// Errorf prints a formatted user-facing error.
func Errorf(format string, args ...any) {
	Error(fmt.Sprintf(format, args...))
}
