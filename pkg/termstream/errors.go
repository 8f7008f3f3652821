package termstream

import (
	"errors"
	"fmt"
)

// ErrClosed is returned when writing to a proxy that has been closed.
// Nothing is silently discarded.
var ErrClosed = errors.New("termstream: stream is closed")

// ConsoleError wraps a failed native console call. It is never swallowed
// internally: a console attribute failure can indicate a broken handle, so
// it propagates to the caller of Write or ResetAll. Plain text forwarded
// before the failing control token stays committed.
type ConsoleError struct {
	Call string
	Err  error
}

func (e *ConsoleError) Error() string {
	return fmt.Sprintf("termstream: console %s: %v", e.Call, e.Err)
}

func (e *ConsoleError) Unwrap() error { return e.Err }

// OptionError reports invalid construction options. A translator is never
// partially constructed.
type OptionError struct {
	Reason string
}

func (e *OptionError) Error() string {
	return "termstream: invalid options: " + e.Reason
}
