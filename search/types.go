package search

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// FatalError distinguishes the two non-recoverable error kinds of
// spec §A.7 (labeler contract violations and resource exhaustion) from
// ordinary input errors, so a caller (e.g. the CLI) can map it to a
// distinguished exit status without string-matching the message.
type FatalError struct {
	Err    error
	Detail string
}

func (e *FatalError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("search: fatal: %v", e.Err)
	}
	return fmt.Sprintf("search: fatal: %v: %s", e.Err, e.Detail)
}

func (e *FatalError) Unwrap() error { return e.Err }

func fatalf(err error, format string, args ...interface{}) *FatalError {
	return &FatalError{Err: err, Detail: fmt.Sprintf(format, args...)}
}

// Option configures an Engine via functional arguments, the same shape
// as the teacher's bfs.Option / flow.Option.
type Option func(*engineOptions)

type engineOptions struct {
	logger *log.Logger
}

func defaultOptions() engineOptions {
	return engineOptions{logger: log.NewWithOptions(io.Discard, log.Options{})}
}

// WithLogger injects a structured logger for diagnostic tracing of
// engine initialization and discarded candidates (spec §A.5 is silent on
// logging, so it is opt-in and never on the hot path when unset). A
// nil logger is ignored and the default discard logger is kept.
func WithLogger(l *log.Logger) Option {
	return func(o *engineOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// Record is one normalized emission: the canonicalized partial
// assignment plus the truncated automorphism-group size of the
// stabilizing graph it was derived from (spec §4.5e).
type Record struct {
	// Vars[i] is the i-th variable vertex of the normalized assignment.
	Vars []int

	// Values[i] is the value vertex assigned to Vars[i].
	Values []int

	// Aut is min(|Aut(H)|, 2^31-1).
	Aut int

	// Size is len(Vars) == len(Values).
	Size int
}
