package cliconfig

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/bft-labs/callapi/pkg/log"
)

// Logger returns the CLI logger: console output on w, warnings and above
// unless verbose.
func Logger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return log.NewConsoleLogger(w, level)
}
