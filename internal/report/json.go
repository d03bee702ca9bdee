package report

import (
	"encoding/json"
	"io"
)

// writeJSON always emits an array so consumers see the same shape for zero,
// one or many items.
func writeJSON[T any](w io.Writer, items []T) error {
	if items == nil {
		items = []T{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}
