package treetab

import (
	"fmt"
	"html"
	"strings"

	"github.com/aerissecure/treetab/table"
)

// Indent per depth level in pixels, approximating one spreadsheet
// indent step.
const indentPx = 8.0

// RowsToHTML renders a walked row sequence as an HTML table. Labels
// are indented with left padding proportional to depth, header and
// total rows are bold, and cells without a value for a column show the
// placeholder. Numbers are right-aligned.
func RowsToHTML(rows []table.Row, columns []string, placeholder, title string) string {
	var builder strings.Builder

	builder.WriteString(`<style>
`)
	builder.WriteString(`.table { border-collapse: collapse; margin-bottom: 2em; }
`)
	builder.WriteString(`.table td, .table th { border: 1px solid #333; padding: 4px 8px; vertical-align: bottom; }
`)
	builder.WriteString(`.table td.num { text-align: right; }
`)
	builder.WriteString(`.table tr.header td, .table tr.total td { font-weight: bold; }
`)
	builder.WriteString(`</style>
`)

	builder.WriteString(fmt.Sprintf(`<div class="sheet" data-name="%s">
`, html.EscapeString(title)))
	builder.WriteString(`<table class="table">
`)

	builder.WriteString("  <tr>\n    <th></th>\n")
	for _, col := range columns {
		builder.WriteString(fmt.Sprintf("    <th>%s</th>\n", html.EscapeString(col)))
	}
	builder.WriteString("  </tr>\n")

	for _, r := range rows {
		builder.WriteString(fmt.Sprintf("  <tr class=\"%s\">\n", r.Role))

		labelStyle := ""
		if r.Depth > 0 {
			labelStyle = fmt.Sprintf(" style=\"padding-left:%.0fpx;\"", float64(r.Depth)*indentPx+8)
		}
		builder.WriteString(fmt.Sprintf("    <td%s>%s</td>\n", labelStyle, html.EscapeString(r.Label)))

		for _, col := range columns {
			val := placeholder
			if v, ok := r.Values[col]; ok {
				val = table.FormatNumber(v)
			}
			builder.WriteString(fmt.Sprintf("    <td class=\"num\">%s</td>\n", html.EscapeString(val)))
		}
		builder.WriteString("  </tr>\n")
	}

	builder.WriteString("</table>\n")
	builder.WriteString("</div>\n")
	return builder.String()
}
