package printfmt

import (
	"io"
	"iter"
)

// Directives yields the directives of template in order without formatting
// anything. Iteration stops after the first malformed directive, which is
// yielded with its error. Violations found here are returned as values and
// never reach the error handler.
func Directives(template string) iter.Seq2[Directive, error] {
	return func(yield func(Directive, error) bool) {
		pos := 0
		for {
			next, found, _ := scanLiteral(io.Discard, template, pos)
			if !found {
				return
			}
			end, err := findDirectiveEnd(template, next)
			if err != nil {
				yield(Directive{Offset: next - 1, Text: template[next:]}, err)
				return
			}
			d, err := interpret(template[next:end], next-1)
			if !yield(d, err) || err != nil {
				return
			}
			pos = end
		}
	}
}

// Parse collects every directive of template. It returns the directives read
// before the first malformed one together with its error.
func Parse(template string) ([]Directive, error) {
	var out []Directive
	for d, err := range Directives(template) {
		if err != nil {
			return out, err
		}
		out = append(out, d)
	}
	return out, nil
}

// Count returns the number of arguments template expects.
func Count(template string) (int, error) {
	ds, err := Parse(template)
	return len(ds), err
}
