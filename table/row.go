// Package table turns trees into flat, ordered row sequences with
// synthesized header and total rows, and formats those rows for
// column-aligned display. The walk engine owns traversal; what each
// node contributes is decided by a pluggable render policy.
package table

import "github.com/aerissecure/treetab/tree"

// Role classifies an emitted row.
type Role uint8

const (
	// Header introduces a branch; it carries the branch label and,
	// under the combined-header policy, the branch's aggregate.
	Header Role = iota
	// Leaf is a data row holding one leaf's label and values.
	Leaf
	// Total is a synthesized aggregate row emitted after a branch's
	// children. Its label is blank.
	Total
)

func (r Role) String() string {
	switch r {
	case Header:
		return "header"
	case Leaf:
		return "leaf"
	case Total:
		return "total"
	}
	return "unknown"
}

// Row is one emitted table row. Depth is the nesting distance from the
// walked root along the display path; Values is nil for rows that
// carry no figures (plain headers). Rows are ephemeral: every walk
// produces a fresh sequence.
type Row struct {
	Depth  int
	Label  string
	Role   Role
	Values tree.Value
}
