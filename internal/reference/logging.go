package reference

import (
	"io"

	"github.com/yousci/yousci-cli/internal/logging"
	"github.com/yousci/yousci-cli/internal/ui"
)

var logger = &logging.Logger{PrefixText: "Reference:", PrefixColor: ui.FgMagenta}

// SetLogger sets an optional destination for lookup diagnostics.
// When set to nil, logging is disabled.
func SetLogger(w io.Writer) { logger.SetWriter(w) }

func logf(key string, format string, args ...any) {
	logger.Logf(key, format, args...)
}
