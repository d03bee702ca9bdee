package printfmt

import (
	"fmt"
	"math"
	"strings"
)

// Base selects the radix used for integers.
type Base int

const (
	BaseUnset Base = iota // renders as decimal
	BaseDecimal
	BaseOctal
	BaseHex
)

// FloatStyle selects the notation used for floating point values.
type FloatStyle int

const (
	FloatDefault    FloatStyle = iota // %g
	FloatFixed                        // %f
	FloatScientific                   // %e
)

// Align controls where fill characters go when a value is narrower than the
// field width.
type Align int

const (
	AlignRight    Align = iota
	AlignLeft           // fill after the value
	AlignInternal       // fill between sign or base prefix and digits
)

// Context is the resolved rendering state for one value.
type Context struct {
	Base      Base
	Float     FloatStyle
	Align     Align
	Fill      byte
	Width     int
	Precision int
	Upper     bool
	ShowBase  bool
	ShowPoint bool
	ShowPos   bool
}

// Baseline returns the state every directive starts from.
func Baseline() Context {
	return Context{Fill: ' ', Precision: 6}
}

func (b Base) String() string {
	switch b {
	case BaseDecimal:
		return "dec"
	case BaseOctal:
		return "oct"
	case BaseHex:
		return "hex"
	}
	return "unset"
}

func (f FloatStyle) String() string {
	switch f {
	case FloatFixed:
		return "fixed"
	case FloatScientific:
		return "scientific"
	}
	return "default"
}

func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignInternal:
		return "internal"
	}
	return "right"
}

// Toggles lists the boolean settings that are on, in a fixed order.
func (c Context) Toggles() []string {
	var out []string
	for _, t := range []struct {
		on   bool
		name string
	}{{c.Upper, "upper"}, {c.ShowBase, "showbase"}, {c.ShowPoint, "showpoint"}, {c.ShowPos, "showpos"}} {
		if t.on {
			out = append(out, t.name)
		}
	}
	return out
}

func (c Context) String() string {
	s := fmt.Sprintf("width=%d precision=%d fill=%q align=%s base=%s float=%s",
		c.Width, c.Precision, c.Fill, c.Align, c.Base, c.Float)
	if t := c.Toggles(); len(t) > 0 {
		s += " " + strings.Join(t, " ")
	}
	return s
}

// Flags holds behaviors that Context cannot express and that require
// post-processing the rendered text.
type Flags uint8

const (
	FlagTruncate      Flags = 1 << iota // cut rendered text to Precision
	FlagSpacePositive                   // render a '+' sign as ' '
)

func (f Flags) String() string {
	var parts []string
	if f&FlagTruncate != 0 {
		parts = append(parts, "truncate")
	}
	if f&FlagSpacePositive != 0 {
		parts = append(parts, "space-positive")
	}
	return strings.Join(parts, ",")
}

// Directive is one interpreted conversion specifier.
type Directive struct {
	// Text is the directive without its leading '%', e.g. "-08.3lf".
	Text string
	// Offset is the byte offset of the '%' in the template.
	Offset  int
	Verb    byte
	Context Context
	Flags   Flags
}

func (d Directive) String() string { return "%" + d.Text }

// interpret parses the directive text between '%' and the end of its
// conversion character.
func interpret(text string, offset int) (Directive, error) {
	d := Directive{Text: text, Offset: offset, Context: Baseline()}
	ctx := &d.Context
	c := 0

	for ; c < len(text); c++ {
		switch text[c] {
		case '#':
			ctx.ShowBase = true
			ctx.ShowPoint = true
			continue
		case '0':
			if ctx.Align != AlignLeft {
				ctx.Fill = '0'
				ctx.Align = AlignInternal
			}
			continue
		case '-':
			ctx.Fill = ' '
			ctx.Align = AlignLeft
			continue
		case ' ':
			if !ctx.ShowPos {
				d.Flags |= FlagSpacePositive
			}
			continue
		case '+':
			ctx.ShowPos = true
			d.Flags &^= FlagSpacePositive
			continue
		}
		break
	}

	widthSet := false
	if c < len(text) && isDigit(text[c]) {
		widthSet = true
		ctx.Width, c = parseInt(text, c)
	}
	if c < len(text) && text[c] == '*' {
		return d, malformed(offset, text, "dynamic width unsupported")
	}

	precisionSet := false
	if c < len(text) && text[c] == '.' {
		c++
		if c < len(text) && text[c] == '*' {
			return d, malformed(offset, text, "dynamic precision unsupported")
		}
		ctx.Precision = 0
		switch {
		case c < len(text) && isDigit(text[c]):
			ctx.Precision, c = parseInt(text, c)
		case c < len(text) && text[c] == '-':
			// Negative precision is accepted and treated as zero.
			_, c = parseInt(text, c+1)
		}
		precisionSet = true
	}

	for c < len(text) && isLengthModifier(text[c]) {
		c++
	}

	d.Verb = 's'
	if c < len(text) {
		d.Verb = text[c]
	}

	switch d.Verb {
	case 'u', 'd', 'i':
		ctx.Base = BaseDecimal
	case 'o':
		ctx.Base = BaseOctal
	case 'X':
		ctx.Upper = true
		ctx.Base = BaseHex
	case 'x', 'p':
		ctx.Base = BaseHex
	case 'E':
		ctx.Upper = true
		fallthrough
	case 'e':
		ctx.Float = FloatScientific
		ctx.Base = BaseDecimal
	case 'F':
		ctx.Upper = true
		fallthrough
	case 'f':
		ctx.Float = FloatFixed
	case 'G':
		ctx.Upper = true
		fallthrough
	case 'g':
		ctx.Base = BaseDecimal
		ctx.Float = FloatDefault
	case 'a', 'A':
		// Hexadecimal floating point is not implemented.
	case 'c':
		// Handled by the dispatcher.
	case 's':
		if precisionSet {
			d.Flags |= FlagTruncate
		}
	case 'n':
		return d, malformed(offset, text, "%n not supported")
	}

	// Precision on an integer is a minimum digit count. Emulate it with the
	// width when the width is free.
	if (isIntegerVerb(d.Verb) || d.Verb == 'p') && precisionSet && !widthSet {
		ctx.Width = ctx.Precision
		ctx.Align = AlignInternal
		ctx.Fill = '0'
	}
	return d, nil
}

// parseInt reads decimal digits starting at i, saturating at math.MaxInt32.
func parseInt(s string, i int) (int, int) {
	n := 0
	for ; i < len(s) && isDigit(s[i]); i++ {
		if n < math.MaxInt32/10 {
			n = 10*n + int(s[i]-'0')
		} else {
			n = math.MaxInt32
		}
	}
	return n, i
}
