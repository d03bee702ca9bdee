package printfmt

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Engine formats templates against argument lists. The zero value is ready
// to use and reports violations to the process-wide handler. An Engine is
// safe for concurrent use; the writers passed to it are not shared.
type Engine struct {
	handler ErrorHandler
	logger  *slog.Logger
}

// Option configures an [Engine].
type Option func(*Engine)

// WithErrorHandler sets the handler for contract violations, overriding the
// process-wide one set with [SetErrorHandler].
func WithErrorHandler(h ErrorHandler) Option {
	return func(e *Engine) { e.handler = h }
}

// WithLogger logs contract violations at error level and interpreted
// directives at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// New returns a configured Engine.
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var std = &Engine{}

// Fprintf formats args according to template and writes the result to w.
// The number of directives in template must equal len(args).
func (e *Engine) Fprintf(w io.Writer, template string, args ...any) error {
	return e.format(NewStream(w), template, args)
}

// Sprintf formats into a string. On a violation the text rendered before the
// offending directive is returned alongside the error.
func (e *Engine) Sprintf(template string, args ...any) (string, error) {
	var b strings.Builder
	err := e.Fprintf(&b, template, args...)
	return b.String(), err
}

// Printf formats to standard output.
func (e *Engine) Printf(template string, args ...any) error {
	return e.Fprintf(os.Stdout, template, args...)
}

// Fprintf formats with the package-level engine. See [Engine.Fprintf].
func Fprintf(w io.Writer, template string, args ...any) error {
	return std.Fprintf(w, template, args...)
}

// Sprintf formats with the package-level engine. See [Engine.Sprintf].
func Sprintf(template string, args ...any) (string, error) {
	return std.Sprintf(template, args...)
}

// Printf formats to standard output with the package-level engine.
func Printf(template string, args ...any) error {
	return std.Printf(template, args...)
}

// format walks template and args in lock-step, one directive per argument.
func (e *Engine) format(s *Stream, template string, args []any) error {
	pos := 0
	for i := 0; ; i++ {
		next, found, err := scanLiteral(s.w, template, pos)
		if err != nil {
			return err
		}
		if !found {
			if i < len(args) {
				return e.fail(countMismatch(len(template),
					fmt.Sprintf("too many arguments (%d directives, %d arguments)", i, len(args))))
			}
			return nil
		}

		end, err := findDirectiveEnd(template, next)
		if err != nil {
			return e.fail(err)
		}
		d, err := interpret(template[next:end], next-1)
		if err != nil {
			return e.fail(err)
		}
		if i >= len(args) {
			return e.fail(countMismatch(d.Offset,
				fmt.Sprintf("not enough arguments (%d supplied, directive %s needs another)", len(args), d)))
		}
		e.debug(d)

		if err := s.render(d, args[i]); err != nil {
			return err
		}
		pos = end
	}
}

// fail reports a violation. Formatting never resumes after one, so a handler
// returning nil still yields err to the caller.
func (e *Engine) fail(err error) error {
	if e.logger != nil {
		attrs := []any{"err", err}
		if se, ok := err.(*SpecError); ok {
			attrs = append(attrs, "offset", se.Offset, "directive", se.Directive)
		}
		e.logger.Error("format contract violated", attrs...)
	}
	h := e.handler
	if h == nil {
		h = currentHandler()
	}
	if herr := h(err); herr != nil {
		return herr
	}
	return err
}

func (e *Engine) debug(d Directive) {
	if e.logger == nil || !e.logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	e.logger.Debug("directive",
		"offset", d.Offset,
		"text", d.String(),
		"verb", string(d.Verb),
		"context", d.Context.String(),
		"flags", d.Flags.String(),
	)
}
