package printfmt

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// Sentinel errors for programmatic error handling.
var (
	ErrMalformedSpec = errors.New("malformed spec")
	ErrArgumentCount = errors.New("argument count mismatch")
)

// SpecError describes a contract violation found while formatting. It wraps
// [ErrMalformedSpec] or [ErrArgumentCount].
type SpecError struct {
	// Offset is the byte offset in the template where the problem was found.
	Offset int
	// Directive is the directive text after '%', if one was being parsed.
	Directive string
	Err       error
}

func (e *SpecError) Error() string {
	if e.Directive != "" {
		return fmt.Sprintf("printfmt: %v (directive %q at offset %d)", e.Err, "%"+e.Directive, e.Offset)
	}
	return fmt.Sprintf("printfmt: %v (at offset %d)", e.Err, e.Offset)
}

func (e *SpecError) Unwrap() error { return e.Err }

// ErrorHandler is invoked with every contract violation before any further
// template processing happens. Handlers that return (instead of panicking or
// exiting) hand the returned error back to the caller of the format function.
type ErrorHandler func(err error) error

// Abort is the default handler. It panics with err, terminating the process
// unless the caller recovers.
func Abort(err error) error {
	panic(err)
}

// Return hands the violation back to the caller as an ordinary error value.
func Return(err error) error { return err }

var defaultHandler atomic.Pointer[ErrorHandler]

func init() {
	h := ErrorHandler(Abort)
	defaultHandler.Store(&h)
}

// SetErrorHandler replaces the process-wide handler used by formatters that
// were not given one with [WithErrorHandler]. A nil h restores [Abort]. It
// returns the previous handler.
func SetErrorHandler(h ErrorHandler) ErrorHandler {
	if h == nil {
		h = Abort
	}
	prev := defaultHandler.Swap(&h)
	return *prev
}

func currentHandler() ErrorHandler { return *defaultHandler.Load() }

func malformed(offset int, directive, reason string) *SpecError {
	return &SpecError{
		Offset:    offset,
		Directive: directive,
		Err:       fmt.Errorf("%w: %s", ErrMalformedSpec, reason),
	}
}

func countMismatch(offset int, reason string) *SpecError {
	return &SpecError{
		Offset: offset,
		Err:    fmt.Errorf("%w: %s", ErrArgumentCount, reason),
	}
}
