package xlsx

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/unidoc/unioffice"
	"github.com/unidoc/unioffice/schema/soo/sml"
	"github.com/unidoc/unioffice/spreadsheet"

	"github.com/aerissecure/treetab/table"
)

// Write builds a workbook from the grid and serializes it to w. Header
// and total rows are bold; label cells are indented by their depth via
// the cell alignment indent attribute.
func Write(w io.Writer, g Grid) error {
	wb := spreadsheet.New()
	sheet := wb.AddSheet()
	if g.Title != "" {
		sheet.SetName(g.Title)
	}

	styles := newStyleSet(wb)

	hdr := sheet.AddRow()
	hdr.AddCell() // blank corner above the label column
	for _, col := range g.Columns {
		c := hdr.AddCell()
		c.SetString(col)
		c.SetStyle(styles.bold)
	}

	for _, row := range g.Rows {
		r := sheet.AddRow()
		for i, cell := range row.Cells {
			c := r.AddCell()
			switch v := cell.Value.(type) {
			case nil:
			case string:
				c.SetString(v)
			case float64:
				c.SetNumber(v)
			case int:
				c.SetNumber(float64(v))
			default:
				c.SetString(fmt.Sprint(v))
			}
			if st, ok := styles.cellStyle(cell, i == 0); ok {
				c.SetStyle(st)
			}
		}
	}

	if err := wb.Validate(); err != nil {
		return errors.Wrap(err, "validate workbook")
	}
	return wb.Save(w)
}

// WriteRows is Write over FromRows: render output straight to a
// workbook.
func WriteRows(w io.Writer, rows []table.Row, columns []string, title string) error {
	g := FromRows(rows, columns)
	g.Title = title
	return Write(w, g)
}

// styleSet caches the workbook cell styles the writer hands out.
// unioffice styles are registered on the stylesheet, so each distinct
// (bold, indent) pair is created once and reused.
type styleSet struct {
	wb       *spreadsheet.Workbook
	boldFont spreadsheet.Font
	bold     spreadsheet.CellStyle
	indent   map[int]spreadsheet.CellStyle // plain label cells by depth
	boldAt   map[int]spreadsheet.CellStyle // header/total label cells by depth
}

func newStyleSet(wb *spreadsheet.Workbook) *styleSet {
	font := wb.StyleSheet.AddFont()
	font.SetBold(true)
	bold := wb.StyleSheet.AddCellStyle()
	bold.SetFont(font)
	return &styleSet{
		wb:       wb,
		boldFont: font,
		bold:     bold,
		indent:   map[int]spreadsheet.CellStyle{},
		boldAt:   map[int]spreadsheet.CellStyle{},
	}
}

// cellStyle resolves the style for one grid cell, if it needs one.
func (s *styleSet) cellStyle(c Cell, label bool) (spreadsheet.CellStyle, bool) {
	emphasized := c.Role == table.Header || c.Role == table.Total
	if !label {
		if emphasized {
			return s.bold, true
		}
		return spreadsheet.CellStyle{}, false
	}
	if !emphasized && c.Depth == 0 {
		return spreadsheet.CellStyle{}, false
	}
	cache := s.indent
	if emphasized {
		cache = s.boldAt
	}
	if st, ok := cache[c.Depth]; ok {
		return st, true
	}
	st := s.newLabelStyle(c.Depth, emphasized)
	cache[c.Depth] = st
	return st, true
}

// newLabelStyle registers a left-aligned style whose indent attribute
// carries the row depth. There is no wrapper for indent, so the
// alignment is set on the raw Xf.
func (s *styleSet) newLabelStyle(depth int, emphasized bool) spreadsheet.CellStyle {
	st := s.wb.StyleSheet.AddCellStyle()
	if emphasized {
		st.SetFont(s.boldFont)
	}
	x := s.wb.StyleSheet.X().CellXfs.Xf[st.Index()]
	x.ApplyAlignmentAttr = unioffice.Bool(true)
	if x.Alignment == nil {
		x.Alignment = sml.NewCT_CellAlignment()
	}
	x.Alignment.HorizontalAttr = sml.ST_HorizontalAlignmentLeft
	if depth > 0 {
		x.Alignment.IndentAttr = unioffice.Uint32(uint32(depth))
	}
	return st
}
