// Package errs provides error handling for shell-script-grade programs:
// contextual wrapping with captured stack traces, multi-error aggregation,
// scope guards for cleanup on failure, and fatal sugar for the common "this
// must work or the program is over" case.
//
// Wrapping and stack capture forward to github.com/pkg/errors; aggregation
// forwards to go.uber.org/multierr. Print a wrapped error with %+v to see
// the stack.
package errs

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// New returns an error with the supplied message and a captured stack trace.
var New = errors.New

// Errorf formats an error and captures a stack trace.
var Errorf = errors.Errorf

// Wrap annotates err with a message and a stack trace. Returns nil if err is
// nil.
var Wrap = errors.Wrap

// Wrapf annotates err with a formatted message and a stack trace.
var Wrapf = errors.Wrapf

// WithMessage annotates err with a message without capturing a new stack.
var WithMessage = errors.WithMessage

// WithStack annotates err with a stack trace at the point it was called.
var WithStack = errors.WithStack

// Cause returns the underlying cause of an error built by Wrap.
var Cause = errors.Cause

// Append combines two errors, keeping both messages. Either may be nil.
var Append = multierr.Append

// Combine flattens a list of errors into one, dropping nils.
var Combine = multierr.Combine

// OrFailedTo panics with a "Failed to <what> due to: <err>" message when err
// is not nil. It is the blunt instrument for program-level operations that
// have no meaningful recovery.
func OrFailedTo(err error, what string) {
	if err != nil {
		panic(fmt.Sprintf("Failed to %s due to: %s", what, err))
	}
}

// Fatal prints the error to stderr, with stack trace if one was captured,
// and exits with status 1.
func Fatal(err error) {
	fmt.Fprintf(os.Stderr, "%+v\n", err)
	os.Exit(1)
}
