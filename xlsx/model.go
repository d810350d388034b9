// Package xlsx writes rendered row grids into .xlsx workbooks using
// unioffice. The grid is the writer-facing contract: ordered rows of
// cells, each cell a bare value plus opaque display metadata (depth
// and role) that the writer maps to styles. Depth becomes a cell
// alignment indent, never literal spaces in the label.
package xlsx

import "github.com/aerissecure/treetab/table"

// Cell is one grid cell: a value plus display metadata. Value is a
// string, a float64, or nil for an empty cell.
type Cell struct {
	Value any
	Depth int // visual indentation hint; meaningful on label cells
	Role  table.Role
}

// Row is one ordered row of cells.
type Row struct {
	Cells []Cell
}

// Grid is what the writer consumes: a sheet title, value column
// headers in display order, and the data rows. The first cell of each
// row is the label cell.
type Grid struct {
	Title   string
	Columns []string
	Rows    []Row
}

// FromRows converts a rendered row sequence into a grid: label cell
// first (carrying the row's depth and role), then one cell per column,
// empty where the row has no value for it. Columns is typically
// table.Columns over the same rows.
func FromRows(rows []table.Row, columns []string) Grid {
	g := Grid{Columns: columns, Rows: make([]Row, 0, len(rows))}
	for _, r := range rows {
		cells := make([]Cell, 0, len(columns)+1)
		cells = append(cells, Cell{Value: r.Label, Depth: r.Depth, Role: r.Role})
		for _, c := range columns {
			cell := Cell{Role: r.Role}
			if v, ok := r.Values[c]; ok {
				cell.Value = v
			}
			cells = append(cells, cell)
		}
		g.Rows = append(g.Rows, Row{Cells: cells})
	}
	return g
}
