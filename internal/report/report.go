// Package report renders the CLI's inspection output as a table, JSON or
// YAML.
package report

import (
	"errors"
	"fmt"
	"io"
)

// ErrUnsupportedFormat is returned for unknown output formats.
var ErrUnsupportedFormat = errors.New("unsupported format")

// ErrMissingInterface is returned when items cannot be rendered as a table.
var ErrMissingInterface = errors.New("missing required interface")

// Format represents an output format.
type Format string

const (
	Table Format = "table"
	JSON  Format = "json"
	YAML  Format = "yaml"
)

var formats = []Format{Table, JSON, YAML}

func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Rower provides row data. Required for Table.
type Rower interface {
	Row() []string
}

// Headed provides column headers for Table.
type Headed interface {
	Header() []string
}

// Titled renders a title above the table.
type Titled interface {
	Title() string
}

// Bordered controls the table border style. Default: BorderRounded.
type Bordered interface {
	Border() BorderStyle
}

// Aligned sets per-column alignment. Default: AlignLeft.
type Aligned interface {
	Alignments() []Alignment
}

// BorderStyle controls table border characters.
type BorderStyle int

const (
	BorderRounded BorderStyle = iota // ╭─╮╰╯│┬┴├┤┼
	BorderNone                       // No borders, space-separated columns
	BorderASCII                      // +-+|
)

// Alignment controls column text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Write renders items to w in format f.
func Write[T any](w io.Writer, f Format, items ...T) error {
	switch f {
	case Table:
		return writeTable(w, items)
	case JSON:
		return writeJSON(w, items)
	case YAML:
		return writeYAML(w, items)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}
