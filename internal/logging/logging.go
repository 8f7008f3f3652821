// Package logging provides debug logging utilities for termstream.
package logging

import (
	"log"
	"os"
)

// DebugEnabled controls whether Debug() produces output.
// Set programmatically or via TERMSTREAM_DEBUG=1 in the environment.
var DebugEnabled = os.Getenv("TERMSTREAM_DEBUG") == "1"

// Debug logs a message only when DebugEnabled is true.
func Debug(format string, args ...any) {
	if DebugEnabled {
		log.Printf("DEBUG: "+format, args...)
	}
}
