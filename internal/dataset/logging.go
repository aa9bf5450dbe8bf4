package dataset

import (
	"io"

	"github.com/yousci/yousci-cli/internal/logging"
	"github.com/yousci/yousci-cli/internal/ui"
)

var logger = &logging.Logger{PrefixText: "Dataset:", PrefixColor: ui.FgYellow}

// SetLogger sets an optional destination for join diagnostics.
// When set to nil, logging is disabled.
func SetLogger(w io.Writer) { logger.SetWriter(w) }

func logf(system string, format string, args ...any) {
	logger.Logf(system, format, args...)
}
