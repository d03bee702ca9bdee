package printfmt

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errInternalWrite = errors.New("write failed")

type errWriterInternal struct{}

func (e *errWriterInternal) Write([]byte) (int, error) {
	return 0, errInternalWrite
}

func TestScanLiteral(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		template  string
		pos       int
		wantOut   string
		wantNext  int
		wantFound bool
	}{
		"no directive":       {template: "hello", wantOut: "hello", wantNext: 5},
		"empty":              {template: "", wantOut: "", wantNext: 0},
		"directive":          {template: "ab%dcd", wantOut: "ab", wantNext: 3, wantFound: true},
		"leading directive":  {template: "%d", wantOut: "", wantNext: 1, wantFound: true},
		"escape":             {template: "100%%", wantOut: "100%", wantNext: 5},
		"double escape":      {template: "%%%%", wantOut: "%%", wantNext: 4},
		"escape then spec":   {template: "a%%b%5d", wantOut: "a%b", wantNext: 5, wantFound: true},
		"trailing percent":   {template: "abc%", wantOut: "abc", wantNext: 4, wantFound: true},
		"start mid template": {template: "%d and %s", pos: 2, wantOut: " and ", wantNext: 8, wantFound: true},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			next, found, err := scanLiteral(&buf, tt.template, tt.pos)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOut, buf.String())
			assert.Equal(t, tt.wantNext, next)
			assert.Equal(t, tt.wantFound, found)
		})
	}
}

func TestScanLiteralWriteError(t *testing.T) {
	t.Parallel()
	for _, template := range []string{"abc", "a%d", "a%%"} {
		_, _, err := scanLiteral(&errWriterInternal{}, template, 0)
		assert.ErrorIs(t, err, errInternalWrite, template)
	}
}

func TestFindDirectiveEnd(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		template string
		pos      int
		want     int
	}{
		"simple":           {template: "%d", pos: 1, want: 2},
		"flags and width":  {template: "%-08.3f rest", pos: 1, want: 7},
		"length modifiers": {template: "%lld", pos: 1, want: 4},
		"all modifiers":    {template: "%hhjztLd", pos: 1, want: 8},
		"unknown letter":   {template: "%5q", pos: 1, want: 3},
		"punctuation":      {template: "%5!s", pos: 1, want: 4},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := findDirectiveEnd(tt.template, tt.pos)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindDirectiveEndErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		template string
		pos      int
		reason   string
	}{
		"missing conversion": {template: "abc%", pos: 4, reason: "missing conversion after '%'"},
		"unterminated":       {template: "%5", pos: 1, reason: "unterminated directive"},
		"only modifiers":     {template: "%ll", pos: 1, reason: "unterminated directive"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := findDirectiveEnd(tt.template, tt.pos)
			require.ErrorIs(t, err, ErrMalformedSpec)
			assert.Contains(t, err.Error(), tt.reason)
		})
	}
}

func TestInterpret(t *testing.T) {
	t.Parallel()
	base := Baseline()
	with := func(f func(*Context)) Context {
		c := base
		f(&c)
		return c
	}
	tests := map[string]struct {
		text      string
		wantVerb  byte
		wantCtx   Context
		wantFlags Flags
	}{
		"plain d": {
			text: "d", wantVerb: 'd',
			wantCtx: with(func(c *Context) { c.Base = BaseDecimal }),
		},
		"width": {
			text: "5d", wantVerb: 'd',
			wantCtx: with(func(c *Context) { c.Base = BaseDecimal; c.Width = 5 }),
		},
		"zero flag": {
			text: "05d", wantVerb: 'd',
			wantCtx: with(func(c *Context) {
				c.Base = BaseDecimal
				c.Width = 5
				c.Fill = '0'
				c.Align = AlignInternal
			}),
		},
		"minus overrides zero": {
			text: "0-5d", wantVerb: 'd',
			wantCtx: with(func(c *Context) { c.Base = BaseDecimal; c.Width = 5; c.Align = AlignLeft }),
		},
		"zero after minus ignored": {
			text: "-05d", wantVerb: 'd',
			wantCtx: with(func(c *Context) { c.Base = BaseDecimal; c.Width = 5; c.Align = AlignLeft }),
		},
		"space flag": {
			text: " d", wantVerb: 'd',
			wantCtx:   with(func(c *Context) { c.Base = BaseDecimal }),
			wantFlags: FlagSpacePositive,
		},
		"plus clears space": {
			text: " +d", wantVerb: 'd',
			wantCtx: with(func(c *Context) { c.Base = BaseDecimal; c.ShowPos = true }),
		},
		"space after plus ignored": {
			text: "+ d", wantVerb: 'd',
			wantCtx: with(func(c *Context) { c.Base = BaseDecimal; c.ShowPos = true }),
		},
		"alternate hex": {
			text: "#x", wantVerb: 'x',
			wantCtx: with(func(c *Context) { c.Base = BaseHex; c.ShowBase = true; c.ShowPoint = true }),
		},
		"upper hex": {
			text: "X", wantVerb: 'X',
			wantCtx: with(func(c *Context) { c.Base = BaseHex; c.Upper = true }),
		},
		"octal": {
			text: "o", wantVerb: 'o',
			wantCtx: with(func(c *Context) { c.Base = BaseOctal }),
		},
		"pointer": {
			text: "p", wantVerb: 'p',
			wantCtx: with(func(c *Context) { c.Base = BaseHex }),
		},
		"scientific upper": {
			text: "E", wantVerb: 'E',
			wantCtx: with(func(c *Context) { c.Float = FloatScientific; c.Base = BaseDecimal; c.Upper = true }),
		},
		"fixed with precision": {
			text: "8.2lf", wantVerb: 'f',
			wantCtx: with(func(c *Context) { c.Float = FloatFixed; c.Width = 8; c.Precision = 2 }),
		},
		"general upper": {
			text: "G", wantVerb: 'G',
			wantCtx: with(func(c *Context) { c.Base = BaseDecimal; c.Upper = true }),
		},
		"hex float gap": {
			text: "a", wantVerb: 'a',
			wantCtx: base,
		},
		"char": {
			text: "c", wantVerb: 'c',
			wantCtx: base,
		},
		"string": {
			text: "s", wantVerb: 's',
			wantCtx: base,
		},
		"string precision truncates": {
			text: ".3s", wantVerb: 's',
			wantCtx:   with(func(c *Context) { c.Precision = 3 }),
			wantFlags: FlagTruncate,
		},
		"bare point is zero precision": {
			text: ".s", wantVerb: 's',
			wantCtx:   with(func(c *Context) { c.Precision = 0 }),
			wantFlags: FlagTruncate,
		},
		"negative precision": {
			text: ".-4f", wantVerb: 'f',
			wantCtx: with(func(c *Context) { c.Float = FloatFixed; c.Precision = 0 }),
		},
		"integer precision is min digits": {
			text: ".4d", wantVerb: 'd',
			wantCtx: with(func(c *Context) {
				c.Base = BaseDecimal
				c.Precision = 4
				c.Width = 4
				c.Fill = '0'
				c.Align = AlignInternal
			}),
		},
		"integer precision with width": {
			text: "6.4d", wantVerb: 'd',
			wantCtx: with(func(c *Context) { c.Base = BaseDecimal; c.Precision = 4; c.Width = 6 }),
		},
		"length modifiers skipped": {
			text: "hhu", wantVerb: 'u',
			wantCtx: with(func(c *Context) { c.Base = BaseDecimal }),
		},
		"defaults to s": {
			text: "5l", wantVerb: 's',
			wantCtx: with(func(c *Context) { c.Width = 5 }),
		},
		"space and truncate": {
			text: " .2s", wantVerb: 's',
			wantCtx:   with(func(c *Context) { c.Precision = 2 }),
			wantFlags: FlagSpacePositive | FlagTruncate,
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			d, err := interpret(tt.text, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.wantVerb, d.Verb)
			assert.Equal(t, tt.wantCtx, d.Context)
			assert.Equal(t, tt.wantFlags, d.Flags)
			assert.Equal(t, tt.text, d.Text)
		})
	}
}

func TestInterpretErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		text   string
		reason string
	}{
		"dynamic width":           {text: "*d", reason: "dynamic width unsupported"},
		"dynamic width after num": {text: "5*d", reason: "dynamic width unsupported"},
		"dynamic precision":       {text: ".*f", reason: "dynamic precision unsupported"},
		"write back":              {text: "n", reason: "%n not supported"},
		"write back with flags":   {text: "-5ln", reason: "%n not supported"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := interpret(tt.text, 3)
			require.ErrorIs(t, err, ErrMalformedSpec)
			var se *SpecError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, 3, se.Offset)
			assert.Equal(t, tt.text, se.Directive)
			assert.Contains(t, err.Error(), tt.reason)
		})
	}
}

func TestParseIntSaturates(t *testing.T) {
	t.Parallel()
	n, end := parseInt("99999999999999999999d", 0)
	assert.Equal(t, 1<<31-1, n)
	assert.Equal(t, 20, end)
}

func TestPad(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		ctx    Context
		prefix string
		body   string
		want   string
	}{
		"no width":       {ctx: Context{Fill: ' '}, prefix: "-", body: "5", want: "-5"},
		"right":          {ctx: Context{Fill: ' ', Width: 4}, prefix: "-", body: "5", want: "  -5"},
		"left":           {ctx: Context{Fill: ' ', Width: 4, Align: AlignLeft}, prefix: "-", body: "5", want: "-5  "},
		"internal":       {ctx: Context{Fill: '0', Width: 6, Align: AlignInternal}, prefix: "0x", body: "ff", want: "0x00ff"},
		"too narrow":     {ctx: Context{Fill: ' ', Width: 1}, prefix: "", body: "abc", want: "abc"},
		"zero fill byte": {ctx: Context{Width: 3}, prefix: "", body: "a", want: "  a"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.ctx.pad(tt.prefix, tt.body))
		})
	}
}

func TestMask(t *testing.T) {
	t.Parallel()
	assert.Equal(t, uint64(0xff), mask(8))
	assert.Equal(t, uint64(0xffffffff), mask(32))
	assert.Equal(t, ^uint64(0), mask(64))
}

func TestRenderRestoresContextOnError(t *testing.T) {
	t.Parallel()
	s := NewStream(&errWriterInternal{})
	custom := Baseline()
	custom.Width = 42
	s.SetContext(custom)

	d, err := interpret("-10.2f", 0)
	require.NoError(t, err)
	err = s.render(d, 1.5)
	require.ErrorIs(t, err, errInternalWrite)
	assert.Equal(t, custom, s.Context())
}

type panicky struct{}

func (panicky) String() string { panic("boom") }

func TestRenderRestoresContextOnPanic(t *testing.T) {
	t.Parallel()
	s := NewStream(&bytes.Buffer{})
	before := s.Context()
	d, err := interpret("8s", 0)
	require.NoError(t, err)
	assert.Panics(t, func() { _ = s.render(d, panicky{}) })
	assert.Equal(t, before, s.Context())
}
