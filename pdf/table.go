package pdf

// Column defines one column of a bordered table: header label, width in
// millimeters, text anchor, and whether cell values render bold.
type Column struct {
	Header string
	Width  float64
	Align  string
	Bold   bool
}

const (
	tableFontSize    = 8.5
	cellPad          = 2.0
	rowBorderWidth   = 0.2
	outerBorderWidth = 0.4
)

// drawTable draws a header row with a light fill followed by one row per
// data row, and returns the y coordinate immediately below the table.
//
// Cell text is clipped to a single line that fits the column; there is no
// wrapping and no ellipsis. A thin divider runs under every row and a
// single outer border frames the whole table. Empty rows are the caller's
// problem: whoever wants a placeholder row supplies one.
func drawTable(s Sink, startX, startY float64, cols []Column, rows [][]string, rowHeight float64) float64 {
	totalW := 0.0
	for _, c := range cols {
		totalW += c.Width
	}
	y := startY

	s.FillRect(startX, y, totalW, rowHeight, colorHeaderFill)
	headerStyle := Style{Size: tableFontSize, Bold: true, Color: colorBlack}
	cx := startX
	for _, col := range cols {
		st := headerStyle
		st.Align = col.Align
		s.PlaceText(cellAnchorX(cx, col), y+rowHeight-cellPad, col.Header, st)
		cx += col.Width
	}
	s.DrawLine(startX, y+rowHeight, startX+totalW, y+rowHeight, colorBorder, rowBorderWidth)
	y += rowHeight

	for _, row := range rows {
		s.FillRect(startX, y, totalW, rowHeight, colorWhite)
		cx = startX
		for ci, col := range cols {
			cell := ""
			if ci < len(row) {
				cell = row[ci]
			}
			st := Style{Size: tableFontSize, Bold: col.Bold, Color: colorBlack, Align: col.Align}
			clipped := clipToWidth(s, cell, col.Width-2*cellPad, st)
			s.PlaceText(cellAnchorX(cx, col), y+rowHeight-cellPad, clipped, st)
			cx += col.Width
		}
		s.DrawLine(startX, y+rowHeight, startX+totalW, y+rowHeight, colorBorder, rowBorderWidth)
		y += rowHeight
	}

	s.StrokeRect(startX, startY, totalW, y-startY, colorBorder, outerBorderWidth)
	return y
}

func cellAnchorX(cx float64, col Column) float64 {
	switch col.Align {
	case AlignRight:
		return cx + col.Width - cellPad
	case AlignCenter:
		return cx + col.Width/2
	}
	return cx + cellPad
}
