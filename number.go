package printfmt

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Numeric renderers return the text split in two: prefix holds the sign and
// any base prefix, body the digits. Internal alignment puts fill between them.

func formatSigned(ctx Context, v int64, bits int) (prefix, body string) {
	if ctx.Base == BaseOctal || ctx.Base == BaseHex {
		// Non-decimal bases show the bit pattern at the value's own width.
		return formatUnsigned(ctx, uint64(v)&mask(bits))
	}
	mag := uint64(v)
	switch {
	case v < 0:
		prefix = "-"
		mag = -mag
	case ctx.ShowPos:
		prefix = "+"
	}
	return prefix, strconv.FormatUint(mag, 10)
}

func formatUnsigned(ctx Context, u uint64) (prefix, body string) {
	switch ctx.Base {
	case BaseOctal:
		body = strconv.FormatUint(u, 8)
		if ctx.ShowBase && u != 0 {
			body = "0" + body
		}
	case BaseHex:
		body = strconv.FormatUint(u, 16)
		if ctx.ShowBase && u != 0 {
			prefix = "0x"
		}
		if ctx.Upper {
			prefix = strings.ToUpper(prefix)
			body = strings.ToUpper(body)
		}
	default:
		body = strconv.FormatUint(u, 10)
	}
	return prefix, body
}

func formatAddress(ctx Context, addr uintptr) (prefix, body string) {
	body = strconv.FormatUint(uint64(addr), 16)
	if ctx.Upper {
		body = strings.ToUpper(body)
	}
	return "0x", body
}

func mask(bits int) uint64 {
	if bits >= 64 {
		return math.MaxUint64
	}
	return 1<<uint(bits) - 1
}

func formatFloat(ctx Context, f float64, bits int) (prefix, body string) {
	switch {
	case math.Signbit(f) && !math.IsNaN(f):
		prefix = "-"
		f = -f
	case ctx.ShowPos:
		prefix = "+"
	}

	switch {
	case math.IsInf(f, 0):
		body = "inf"
	case math.IsNaN(f):
		body = "nan"
	default:
		verb := byte('g')
		switch ctx.Float {
		case FloatFixed:
			verb = 'f'
		case FloatScientific:
			verb = 'e'
		}
		if ctx.ShowPoint {
			// fmt keeps the point and trailing zeros under '#'.
			body = fmt.Sprintf("%#.*"+string(verb), ctx.Precision, f)
		} else {
			body = strconv.FormatFloat(f, verb, ctx.Precision, bits)
		}
	}
	if ctx.Upper {
		body = strings.ToUpper(body)
	}
	return prefix, body
}

func formatComplex(ctx Context, c complex128, bits int) string {
	rePrefix, re := formatFloat(ctx, real(c), bits/2)
	ctx.ShowPos = true
	imPrefix, im := formatFloat(ctx, imag(c), bits/2)
	return "(" + rePrefix + re + imPrefix + im + "i)"
}
