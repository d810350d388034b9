package table

import (
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// LabelField is the key under which Format stores the indented display
// label.
const LabelField = "label"

// DefaultIndentWidth is the number of spaces prepended per depth level
// by the plain-text formatter. The spreadsheet writer represents depth
// as a style attribute instead and ignores this.
const DefaultIndentWidth = 2

// DefaultPlaceholder marks cells whose row legitimately has no value
// for a column, as opposed to the blank labels of total rows.
const DefaultPlaceholder = "-"

// FormatOptions configures the plain-text formatter. A nil
// *FormatOptions means all defaults; a non-nil value is taken
// literally.
type FormatOptions struct {
	// IndentWidth is the number of spaces per depth level.
	IndentWidth int
	// Placeholder is shown where a row lacks a column's value.
	Placeholder string
	// First and Last pin columns to the start and end of the display
	// order; columns not listed appear between them in first-seen
	// order.
	First, Last []string
}

// Columns derives the display column set from a row sequence: the
// explicit first columns, then every remaining key seen across the
// rows' values in first-seen order, then the explicit last columns.
func Columns(rows []Row, first, last []string) []string {
	pinned := map[string]bool{}
	for _, c := range first {
		pinned[c] = true
	}
	for _, c := range last {
		pinned[c] = true
	}
	out := append([]string(nil), first...)
	seen := map[string]bool{}
	for _, r := range rows {
		// Keys debuting in the same row sort alphabetically, since the
		// value map has no order of its own.
		var fresh []string
		for k := range r.Values {
			if !pinned[k] && !seen[k] {
				seen[k] = true
				fresh = append(fresh, k)
			}
		}
		sort.Strings(fresh)
		out = append(out, fresh...)
	}
	return append(out, last...)
}

// Format flattens a row sequence into display maps: depth and label
// are replaced by a single indentation-aware label under LabelField,
// and every derived column is present in every map, with the
// placeholder standing in for absent values. The second return value
// is the column order (LabelField excluded).
//
// Key order inside r.Values does not matter here; discovery order is
// fixed by walking rows in sequence, so repeated calls agree.
func Format(rows []Row, opts *FormatOptions) ([]map[string]string, []string) {
	o := FormatOptions{IndentWidth: DefaultIndentWidth, Placeholder: DefaultPlaceholder}
	if opts != nil {
		o = *opts
	}
	cols := Columns(rows, o.First, o.Last)
	out := make([]map[string]string, 0, len(rows))
	for _, r := range rows {
		m := make(map[string]string, len(cols)+1)
		m[LabelField] = strings.Repeat(" ", r.Depth*o.IndentWidth) + r.Label
		for _, c := range cols {
			if v, ok := r.Values[c]; ok {
				m[c] = FormatNumber(v)
			} else {
				m[c] = o.Placeholder
			}
		}
		out = append(out, m)
	}
	return out, cols
}

// FormatNumber renders a value without trailing zeros.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// WriteText writes the rows as a column-aligned text table: indented
// labels on the left, one column per derived key, placeholders for
// absent values.
func WriteText(w io.Writer, rows []Row, opts *FormatOptions) error {
	display, cols := Format(rows, opts)

	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader(append([]string{""}, cols...))
	tbl.SetAutoFormatHeaders(false)
	tbl.SetAutoWrapText(false)
	aligns := make([]int, len(cols)+1)
	aligns[0] = tablewriter.ALIGN_LEFT
	for i := range cols {
		aligns[i+1] = tablewriter.ALIGN_RIGHT
	}
	tbl.SetColumnAlignment(aligns)
	for _, m := range display {
		line := make([]string, 0, len(cols)+1)
		line = append(line, m[LabelField])
		for _, c := range cols {
			line = append(line, m[c])
		}
		tbl.Append(line)
	}
	tbl.Render()
	return nil
}
