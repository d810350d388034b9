// Package treetab renders labeled value trees as tabular documents:
// plain text, HTML, or .xlsx workbooks. A tree of leaves carrying
// sparse numeric maps is folded into aggregates and walked into a flat
// row sequence with synthesized header and total rows, then handed to
// one of the output backends.
//
// The tree, table, and xlsx packages expose each stage separately;
// this package is the one-call surface over all three.
package treetab

import (
	"io"
	"strings"

	"github.com/aerissecure/treetab/table"
	"github.com/aerissecure/treetab/tree"
	"github.com/aerissecure/treetab/xlsx"
)

// Options configures the one-call renderers. The zero value of every
// field means the package default (MinLeafDepth 2, IndentWidth 2,
// placeholder "-", sum aggregation, default render policy). Callers
// that need a literal zero minimum leaf depth use the table package
// directly.
type Options struct {
	// MinLeafDepth clamps how shallow leaf rows may display.
	MinLeafDepth int
	// IndentWidth is spaces per depth level in text output.
	IndentWidth int
	// Placeholder marks absent values in text and HTML output.
	Placeholder string
	// First and Last pin columns to the edges of the display order.
	First, Last []string
	// Render overrides the per-node row policy.
	Render table.RenderFunc
	// Aggregate overrides the header/total aggregation operator.
	Aggregate table.AggregateFunc
	// Title names the sheet (xlsx) or tags the table (HTML).
	Title string
}

func (o *Options) walkOptions() *table.WalkOptions {
	w := &table.WalkOptions{MinLeafDepth: table.DefaultMinLeafDepth}
	if o == nil {
		return w
	}
	if o.MinLeafDepth > 0 {
		w.MinLeafDepth = o.MinLeafDepth
	}
	w.Aggregate = o.Aggregate
	w.Render = o.Render
	return w
}

func (o *Options) formatOptions() *table.FormatOptions {
	f := &table.FormatOptions{
		IndentWidth: table.DefaultIndentWidth,
		Placeholder: table.DefaultPlaceholder,
	}
	if o == nil {
		return f
	}
	if o.IndentWidth > 0 {
		f.IndentWidth = o.IndentWidth
	}
	if o.Placeholder != "" {
		f.Placeholder = o.Placeholder
	}
	f.First = o.First
	f.Last = o.Last
	return f
}

func (o *Options) placeholder() string {
	if o == nil || o.Placeholder == "" {
		return table.DefaultPlaceholder
	}
	return o.Placeholder
}

func (o *Options) title() string {
	if o == nil {
		return ""
	}
	return o.Title
}

func (o *Options) columns(rows []table.Row) []string {
	if o == nil {
		return table.Columns(rows, nil, nil)
	}
	return table.Columns(rows, o.First, o.Last)
}

// TreeToText walks t and renders a column-aligned text table. A nil
// opts uses all defaults.
func TreeToText(t *tree.Node, opts *Options) (string, error) {
	rows, err := table.Walk(t, opts.walkOptions())
	if err != nil {
		return "", err
	}
	var buf strings.Builder
	if err := table.WriteText(&buf, rows, opts.formatOptions()); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// TreeToHTML walks t and renders an HTML table with depth shown as
// cell padding.
func TreeToHTML(t *tree.Node, opts *Options) (string, error) {
	rows, err := table.Walk(t, opts.walkOptions())
	if err != nil {
		return "", err
	}
	return RowsToHTML(rows, opts.columns(rows), opts.placeholder(), opts.title()), nil
}

// TreeToXlsx walks t and writes an .xlsx workbook to w, with depth
// expressed as a cell indent style.
func TreeToXlsx(t *tree.Node, w io.Writer, opts *Options) error {
	rows, err := table.Walk(t, opts.walkOptions())
	if err != nil {
		return err
	}
	return xlsx.WriteRows(w, rows, opts.columns(rows), opts.title())
}
