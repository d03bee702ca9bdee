package printfmt

import (
	"io"
	"strings"
)

// scanLiteral writes template text from pos up to the next directive to out,
// collapsing "%%" to "%". It returns the index just after the '%' that opens
// the next directive, or len(template) with found == false when none remains.
func scanLiteral(out io.Writer, template string, pos int) (next int, found bool, err error) {
	start := pos
	for pos < len(template) {
		i := strings.IndexByte(template[pos:], '%')
		if i < 0 {
			break
		}
		pos += i
		// Flush through the '%' for an escape, up to it otherwise.
		if pos+1 < len(template) && template[pos+1] == '%' {
			if _, err := io.WriteString(out, template[start:pos+1]); err != nil {
				return pos, false, err
			}
			pos += 2
			start = pos
			continue
		}
		if _, err := io.WriteString(out, template[start:pos]); err != nil {
			return pos, false, err
		}
		return pos + 1, true, nil
	}
	if start < len(template) {
		if _, err := io.WriteString(out, template[start:]); err != nil {
			return len(template), false, err
		}
	}
	return len(template), false, nil
}

// findDirectiveEnd returns the index one past the conversion character of the
// directive starting at pos, the byte after '%'.
func findDirectiveEnd(template string, pos int) (int, error) {
	if pos >= len(template) {
		return pos, malformed(pos-1, "", "missing conversion after '%'")
	}
	for c := pos; c < len(template); c++ {
		b := template[c]
		if isLengthModifier(b) {
			continue
		}
		if isLetter(b) {
			return c + 1, nil
		}
	}
	return len(template), malformed(pos-1, template[pos:], "unterminated directive")
}

func isLengthModifier(b byte) bool {
	switch b {
	case 'l', 'h', 'L', 'j', 'z', 't':
		return true
	}
	return false
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
