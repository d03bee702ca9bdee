package printfmt

import "io"

// Stream is an output sink carrying the formatting [Context] of the value
// being rendered. Between values the context always holds the caller's
// baseline: every render saves it, installs the directive's context, and
// restores it on return, including error and panic paths.
//
// A Stream is not safe for concurrent use.
type Stream struct {
	w   io.Writer
	ctx Context
}

// NewStream wraps w. The initial context is [Baseline].
func NewStream(w io.Writer) *Stream {
	if s, ok := w.(*Stream); ok {
		return s
	}
	return &Stream{w: w, ctx: Baseline()}
}

// Write implements io.Writer by writing p to the underlying writer unchanged.
func (s *Stream) Write(p []byte) (int, error) { return s.w.Write(p) }

// Context returns the stream's current formatting context. Inside a
// [Formatter] hook this is the directive's context; anywhere else it is the
// baseline.
func (s *Stream) Context() Context { return s.ctx }

// SetContext replaces the baseline context.
func (s *Stream) SetContext(ctx Context) { s.ctx = ctx }

// Printf formats to the stream using the package-level error handler.
func (s *Stream) Printf(template string, args ...any) error {
	return std.Fprintf(s, template, args...)
}
