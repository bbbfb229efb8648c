package reflow

import (
	"fmt"
	"os"
)

// globalDebug enables decision logging on stderr. Plain bool, no atomic —
// reflow is single-threaded like the host event loop it runs on.
var globalDebug bool

// SetDebugMode enables or disables debug logging. When enabled, layout
// passes log profile selection, canvas resizes, skipped notifications, and
// aborted passes to stderr.
func SetDebugMode(enabled bool) {
	globalDebug = enabled
}

func debugf(format string, args ...any) {
	if !globalDebug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[reflow] "+format+"\n", args...)
}
