package audit

import (
	"io"

	"github.com/yousci/yousci-cli/internal/logging"
	"github.com/yousci/yousci-cli/internal/ui"
)

var logger = &logging.Logger{PrefixText: "Audit:", PrefixColor: ui.FgYellow, OmitSystem: true}

// SetLogger sets an optional destination for audit output/logs.
// When set to nil, audit output/logs are disabled.
func SetLogger(w io.Writer) { logger.SetWriter(w) }

func logf(format string, args ...any) {
	logger.Logf("", format, args...)
}
