package cmd

import (
	"log"
	"os"
)

var (
	verbose     bool
	colorOutput bool
)

// logger is a tiny wrapper around the standard library's log.Logger: no
// timestamp prefix, stderr output, gated entirely by --verbose.
var logger = log.New(os.Stderr, "", 0)

// verbosef writes a progress line, but only when --verbose was passed.
func verbosef(format string, args ...any) {
	if verbose {
		logger.Printf(format, args...)
	}
}
