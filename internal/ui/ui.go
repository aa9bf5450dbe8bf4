package ui

import (
	"io"
	"os"

	"github.com/charmbracelet/colorprofile"
)

// Basic ANSI color codes (legacy - used by the logging package).
// New code should use lipgloss styles from styles.go instead.
const (
	Reset = "\033[0m"
	// LegacyBold is the raw ANSI code for bold text
	LegacyBold = "\033[1m"
	FgCyan     = "\033[36m"
	FgGreen    = "\033[32m"
	FgMagenta  = "\033[35m"
	FgYellow   = "\033[33m"
	FgRed      = "\033[31m"
)

var plain bool

// SetPlain disables the legacy ANSI codes (--no-color, non-terminal output).
func SetPlain(v bool) { plain = v }

// Color wraps a string with the given ANSI code.
// Deprecated: Use lipgloss styles from styles.go instead.
func Color(s string, code string) string {
	if plain || code == "" {
		return s
	}
	return code + s + Reset
}

// NewOutput wraps w so styled output is downsampled to what the terminal
// supports. Pipes and noColor strip all escape sequences.
func NewOutput(w io.Writer, noColor bool) io.Writer {
	out := colorprofile.NewWriter(w, os.Environ())
	if noColor {
		out.Profile = colorprofile.NoTTY
	}
	return out
}
