package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

type borderChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	topTee, bottomTee, leftTee, rightTee       string
	cross                                      string
}

var borderSets = map[BorderStyle]borderChars{
	BorderRounded: {
		topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯",
		horizontal: "─", vertical: "│",
		topTee: "┬", bottomTee: "┴", leftTee: "├", rightTee: "┤",
		cross: "┼",
	},
	BorderASCII: {
		topLeft: "+", topRight: "+", bottomLeft: "+", bottomRight: "+",
		horizontal: "-", vertical: "|",
		topTee: "+", bottomTee: "+", leftTee: "+", rightTee: "+",
		cross: "+",
	},
}

// table is the resolved layout of one rendering.
type table struct {
	title  string
	header []string
	rows   [][]string
	widths []int
	aligns []Alignment
	border BorderStyle
}

func writeTable[T any](w io.Writer, items []T) error {
	if len(items) == 0 {
		return nil
	}
	first := any(items[0])
	if _, ok := first.(Rower); !ok {
		return fmt.Errorf("%w: format %q requires Rower, not implemented by %T", ErrMissingInterface, Table, items[0])
	}

	t := table{border: BorderRounded}
	t.rows = make([][]string, len(items))
	for i, item := range items {
		t.rows[i] = any(item).(Rower).Row()
	}
	if h, ok := first.(Headed); ok {
		t.header = h.Header()
	}
	if ti, ok := first.(Titled); ok {
		t.title = ti.Title()
	}
	if b, ok := first.(Bordered); ok {
		t.border = b.Border()
	}
	var aligns []Alignment
	if a, ok := first.(Aligned); ok {
		aligns = a.Alignments()
	}

	t.widths = computeWidths(t.header, t.rows)
	t.aligns = extendAligns(aligns, len(t.widths))

	if _, ok := borderSets[t.border]; !ok {
		return t.renderPlain(w)
	}
	return t.renderBordered(w)
}

func computeWidths(header []string, rows [][]string) []int {
	n := len(header)
	for _, row := range rows {
		n = max(n, len(row))
	}
	widths := make([]int, n)
	for i, h := range header {
		widths[i] = max(widths[i], runewidth.StringWidth(h))
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}
	return widths
}

func extendAligns(aligns []Alignment, numCols int) []Alignment {
	if len(aligns) >= numCols {
		return aligns[:numCols]
	}
	extended := make([]Alignment, numCols)
	copy(extended, aligns)
	return extended
}

// --- Plain table (BorderNone) ---

func (t table) renderPlain(w io.Writer) error {
	if t.title != "" {
		if _, err := fmt.Fprintln(w, t.title); err != nil {
			return err
		}
	}
	if len(t.header) > 0 {
		if err := t.writePlainRow(w, t.header); err != nil {
			return err
		}
		sep := make([]string, len(t.widths))
		for i, width := range t.widths {
			sep[i] = strings.Repeat("-", width)
		}
		if _, err := fmt.Fprintln(w, strings.Join(sep, "  ")); err != nil {
			return err
		}
	}
	for _, row := range t.rows {
		if err := t.writePlainRow(w, row); err != nil {
			return err
		}
	}
	return nil
}

func (t table) writePlainRow(w io.Writer, cells []string) error {
	parts := make([]string, len(t.widths))
	for i, width := range t.widths {
		parts[i] = alignCell(cellAt(cells, i), width, t.aligns[i])
	}
	_, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " "))
	return err
}

// --- Bordered table ---

func (t table) renderBordered(w io.Writer) error {
	bc := borderSets[t.border]

	if t.title != "" {
		if err := drawHLine(w, t.widths, bc.topLeft, bc.horizontal, bc.horizontal, bc.topRight); err != nil {
			return err
		}
		inner := tableInnerWidth(t.widths) - 2
		if _, err := fmt.Fprintf(w, "%s %s %s\n", bc.vertical, alignCell(t.title, inner, AlignCenter), bc.vertical); err != nil {
			return err
		}
		if err := drawHLine(w, t.widths, bc.leftTee, bc.horizontal, bc.topTee, bc.rightTee); err != nil {
			return err
		}
	} else if err := drawHLine(w, t.widths, bc.topLeft, bc.horizontal, bc.topTee, bc.topRight); err != nil {
		return err
	}

	if len(t.header) > 0 {
		if err := t.drawRow(w, t.header, bc.vertical); err != nil {
			return err
		}
		if err := drawHLine(w, t.widths, bc.leftTee, bc.horizontal, bc.cross, bc.rightTee); err != nil {
			return err
		}
	}
	for _, row := range t.rows {
		if err := t.drawRow(w, row, bc.vertical); err != nil {
			return err
		}
	}
	return drawHLine(w, t.widths, bc.bottomLeft, bc.horizontal, bc.bottomTee, bc.bottomRight)
}

// tableInnerWidth returns the width between the outer vertical borders: each
// cell plus one space of padding per side, and one separator between cells.
func tableInnerWidth(widths []int) int {
	n := 0
	for _, w := range widths {
		n += w + 2
	}
	if len(widths) > 1 {
		n += len(widths) - 1
	}
	return n
}

func drawHLine(w io.Writer, widths []int, left, fill, mid, right string) error {
	var sb strings.Builder
	sb.WriteString(left)
	for i, width := range widths {
		sb.WriteString(strings.Repeat(fill, width+2))
		if i < len(widths)-1 {
			sb.WriteString(mid)
		}
	}
	sb.WriteString(right)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func (t table) drawRow(w io.Writer, cells []string, vert string) error {
	var sb strings.Builder
	sb.WriteString(vert)
	for i, width := range t.widths {
		sb.WriteString(" ")
		sb.WriteString(alignCell(cellAt(cells, i), width, t.aligns[i]))
		sb.WriteString(" ")
		if i < len(t.widths)-1 {
			sb.WriteString(vert)
		}
	}
	sb.WriteString(vert)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func cellAt(cells []string, i int) string {
	if i < len(cells) {
		return cells[i]
	}
	return ""
}

func alignCell(s string, width int, align Alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
	default:
		return s + strings.Repeat(" ", pad)
	}
}
