package printfmt

import (
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"
)

// --- Extension Interfaces ---

// Formatter is an escape hatch for values that render themselves. The value
// receives the stream (with the directive's context installed) and the
// interpreted directive, and is responsible for honoring width, precision and
// flags. Nothing else is applied to its output.
type Formatter interface {
	FormatDirective(w io.Writer, d Directive) error
}

// CharConverter is implemented by values that can render as a single
// character under %c.
type CharConverter interface {
	Char() rune
}

// Addresser is implemented by values that can render as an opaque address
// under %p. The address is printed, never dereferenced.
type Addresser interface {
	Address() uintptr
}

// Char is a character-typed value. Under integer conversions (d i u o x X)
// it renders as its code point; under every other conversion it renders as
// the character itself.
type Char rune

// render writes one value under d. The stream's context is restored to its
// prior state on every exit path.
func (s *Stream) render(d Directive, value any) error {
	saved := s.ctx
	defer func() { s.ctx = saved }()
	s.ctx = d.Context

	if f, ok := value.(Formatter); ok {
		return f.FormatDirective(s, d)
	}
	if d.Flags == 0 {
		_, err := io.WriteString(s.w, formatValue(s.ctx, d.Verb, value))
		return err
	}

	// Space-positive and truncation work on the rendered text, so render
	// into a local buffer first.
	ctx := s.ctx
	if d.Flags&FlagSpacePositive != 0 {
		ctx.ShowPos = true
	}
	truncate := d.Flags&FlagTruncate != 0
	if truncate {
		// Pad after truncating so the field keeps its width.
		ctx.Width = 0
	}

	var text string
	if t, ok := boundedText(value); ok && truncate {
		text = t[:min(len(t), ctx.Precision)]
	} else {
		text = formatValue(ctx, d.Verb, value)
	}
	if d.Flags&FlagSpacePositive != 0 {
		text = strings.ReplaceAll(text, "+", " ")
	}
	if truncate {
		if len(text) > s.ctx.Precision {
			text = text[:s.ctx.Precision]
		}
		text = s.ctx.pad("", text)
	}
	_, err := io.WriteString(s.w, text)
	return err
}

// boundedText reports the text of values whose length is known without
// rendering them.
func boundedText(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case []byte:
		return string(v), true
	}
	return "", false
}

// formatValue renders value under ctx, including width padding.
func formatValue(ctx Context, verb byte, value any) string {
	prefix, body := valueText(ctx, verb, value)
	return ctx.pad(prefix, body)
}

func valueText(ctx Context, verb byte, value any) (prefix, body string) {
	if c, ok := value.(Char); ok {
		if isIntegerVerb(verb) {
			return formatSigned(ctx, int64(c), 32)
		}
		return "", string(rune(c))
	}
	switch verb {
	case 'c':
		if r, ok := asChar(value); ok {
			return "", string(r)
		}
	case 'p':
		if addr, ok := asAddress(value); ok {
			return formatAddress(ctx, addr)
		}
	}
	return genericText(ctx, verb, value)
}

func genericText(ctx Context, verb byte, value any) (prefix, body string) {
	if value == nil {
		return "", "<nil>"
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return "", "<nil>"
	}

	// Methods win unless a numeric conversion meets a numeric value.
	if !isNumericVerb(verb) || !isNumericKind(rv.Kind()) {
		switch v := value.(type) {
		case error:
			return "", v.Error()
		case fmt.Stringer:
			return "", v.String()
		}
	}

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return formatSigned(ctx, rv.Int(), rv.Type().Bits())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return formatUnsigned(ctx, rv.Uint())
	case reflect.Float32, reflect.Float64:
		return formatFloat(ctx, rv.Float(), rv.Type().Bits())
	case reflect.Complex64, reflect.Complex128:
		return "", formatComplex(ctx, rv.Complex(), rv.Type().Bits())
	case reflect.Bool:
		return "", strconv.FormatBool(rv.Bool())
	case reflect.String:
		return "", rv.String()
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return "", string(rv.Bytes())
		}
	}
	return "", fmt.Sprint(value)
}

func asChar(value any) (rune, bool) {
	if c, ok := value.(CharConverter); ok {
		return c.Char(), true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return toRune(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if rv.Uint() > utf8.MaxRune {
			return utf8.RuneError, true
		}
		return rune(rv.Uint()), true
	}
	return 0, false
}

func toRune(v int64) rune {
	if v < 0 || v > utf8.MaxRune {
		return utf8.RuneError
	}
	return rune(v)
}

func asAddress(value any) (uintptr, bool) {
	if a, ok := value.(Addresser); ok {
		return a.Address(), true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Chan, reflect.Func, reflect.Slice:
		return rv.Pointer(), true
	}
	return 0, false
}

func isIntegerVerb(verb byte) bool {
	switch verb {
	case 'd', 'i', 'u', 'o', 'x', 'X':
		return true
	}
	return false
}

func isNumericVerb(verb byte) bool {
	return isIntegerVerb(verb) || strings.IndexByte("eEfFgG", verb) >= 0
}

func isNumericKind(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Complex128
}

// pad widens prefix+body to the context width with its fill character.
func (c Context) pad(prefix, body string) string {
	n := c.Width - len(prefix) - len(body)
	if n <= 0 {
		return prefix + body
	}
	fill := c.Fill
	if fill == 0 {
		fill = ' '
	}
	padding := strings.Repeat(string([]byte{fill}), n)
	switch c.Align {
	case AlignLeft:
		return prefix + body + padding
	case AlignInternal:
		return prefix + padding + body
	default:
		return padding + prefix + body
	}
}
