// Package fault is the process-wide fatal-error collaborator of the containers.
//
// Every contract violation (out-of-range index, failed allocation) is reported
// through Fail, which never returns. The installed Handler decides what
// "terminate" means: Panic (the default) unwinds with the violation error so
// tests and harnesses can recover it, Abort writes the message to standard
// error and exits the process.
//
// Violation errors are marked with cockroachdb/errors assertion-failure
// metadata, so errors.HasAssertionFailure identifies them as programming
// defects rather than runtime conditions.
package fault

import (
	"github.com/cockroachdb/errors"

	"github.com/joshuapare/veckit/internal/logger"
)

// Handler terminates the current flow of control for a violation error.
// A handler that returns is treated as a bug; Fail panics in that case.
type Handler func(err error)

// ExitAbort is the exit status used by Abort (128 + SIGABRT).
const ExitAbort = 134

var handler Handler = Panic

// Panic panics with err.
func Panic(err error) {
	panic(err)
}

// SetHandler installs h as the process-wide handler and returns a func that
// restores the previous one. A nil h selects Panic.
func SetHandler(h Handler) (restore func()) {
	if h == nil {
		h = Panic
	}
	prev := handler
	handler = h
	return func() { handler = prev }
}

// Fail reports err as a contract violation. It does not return.
func Fail(err error) {
	err = errors.WithAssertionFailure(err)
	logger.Error("contract violation", "error", err)
	handler(err)
	panic(errors.Wrap(err, "fault handler returned"))
}

// IsViolation reports whether err carries contract-violation metadata.
func IsViolation(err error) bool {
	return errors.HasAssertionFailure(err)
}
