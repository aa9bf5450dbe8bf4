package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/yousci/yousci-cli/internal/ui"
)

// Logger is a tiny opt-in logger used across internal packages.
// When Writer is nil, logging is disabled.
//
// The output format is:
//
//	<ColoredPrefix> system=<metal/support> <formattedMessage>\n
//
// where the system defaults to "(none)". See SystemField for how the
// metal/support key is normalized.
type Logger struct {
	Writer io.Writer

	PrefixText  string
	PrefixColor string

	// OmitSystem controls whether the system field is written.
	// When false (default), output includes: "system=<metal/support>".
	OmitSystem bool
}

func (l *Logger) SetWriter(w io.Writer) { l.Writer = w }

func (l *Logger) Enabled() bool { return l != nil && l.Writer != nil }

func (l *Logger) Logf(system string, format string, args ...any) {
	if l == nil || l.Writer == nil {
		return
	}
	prefix := l.PrefixText
	if prefix == "" {
		prefix = "Log:"
	}
	if l.PrefixColor != "" {
		prefix = ui.Color(prefix, l.PrefixColor)
	}
	msg := fmt.Sprintf(format, args...)
	if l.OmitSystem {
		fmt.Fprintf(l.Writer, "%s %s\n", prefix, msg)
		return
	}

	fmt.Fprintf(l.Writer, "%s system=%s %s\n", prefix, SystemField(system), msg)
}

// SystemField normalizes a system key for the log line. Whitespace around
// the metal/support separator is dropped and an empty side becomes "?", so
// " Ni / " logs as Ni/?. Keys that still contain whitespace are quoted to
// keep the line splittable on spaces.
func SystemField(system string) string {
	s := strings.TrimSpace(system)
	if s == "" {
		return "(none)"
	}
	if metal, support, ok := strings.Cut(s, "/"); ok && !strings.Contains(support, "/") {
		metal, support = strings.TrimSpace(metal), strings.TrimSpace(support)
		if metal == "" {
			metal = "?"
		}
		if support == "" {
			support = "?"
		}
		s = metal + "/" + support
	}
	if strings.ContainsAny(s, " \t") {
		return fmt.Sprintf("%q", s)
	}
	return s
}
