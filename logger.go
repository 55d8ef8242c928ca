package rhodix

import (
	"io"
	"log"
)

var logger *log.Logger = log.New(io.Discard, "", log.LstdFlags)

// SetLogger routes decoder diagnostics to l. Output is discarded by default.
func SetLogger(l *log.Logger) {
	logger = l
}
