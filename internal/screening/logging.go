package screening

import (
	"io"

	"github.com/yousci/yousci-cli/internal/logging"
	"github.com/yousci/yousci-cli/internal/ui"
)

var logger = &logging.Logger{PrefixText: "Screening:", PrefixColor: ui.FgGreen}

// SetLogger sets an optional destination for screening output/logs.
// When set to nil, screening output/logs are disabled.
func SetLogger(w io.Writer) { logger.SetWriter(w) }

func logf(system string, format string, args ...any) {
	logger.Logf(system, format, args...)
}
