// Package render writes command results as a table or JSON.
package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Format selects the output encoding.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// ParseFormat validates a --output flag value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatTable, FormatJSON:
		return Format(s), nil
	default:
		return "", fmt.Errorf("invalid --output %q (expected: json|table)", s)
	}
}

// KeyValue is a generic two-column row used by status-style commands.
type KeyValue struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// JSON writes v as indented JSON.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Table writes a rounded-corner table with the given header and rows.
func Table(w io.Writer, header table.Row, rows []table.Row) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(header)
	tw.AppendRows(rows)
	tw.Render()
}

// ShortenID abbreviates long opaque IDs for table cells while keeping enough
// context to match against JSON output. Full IDs stay untouched.
func ShortenID(id string) string {
	const max = 18
	if len(id) <= max {
		return id
	}
	const prefix, suffix = 8, 6
	return id[:prefix] + "…" + id[len(id)-suffix:]
}

// OrDash renders optional strings, using "-" for missing values.
func OrDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}
