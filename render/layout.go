package render

// Layout partitions the terminal into the grid area, a separator line, the
// export text panel and a status line at the bottom.
type Layout struct {
	Width, Height int

	// CellWidth is the number of terminal columns per grid cell; 2 makes
	// cells roughly square in most fonts
	CellWidth int

	GridRows int
	GridCols int

	SeparatorY int // -1 when there is no room
	TextY      int
	TextRows   int
	StatusY    int
}

const maxTextRows = 6

// NewLayout computes the layout for a terminal of w x h cells
func NewLayout(w, h, cellWidth int) Layout {
	if cellWidth < 1 {
		cellWidth = 1
	}
	l := Layout{Width: max(w, 0), Height: max(h, 0), CellWidth: cellWidth, SeparatorY: -1}
	if l.Height == 0 || l.Width == 0 {
		return l
	}

	l.StatusY = l.Height - 1
	rest := l.Height - 1

	// Text panel takes about a fifth of what is left, only if the grid keeps
	// at least three rows
	if rest >= 5 {
		l.TextRows = min(max(rest/5, 1), maxTextRows)
		l.TextY = l.StatusY - l.TextRows
		l.SeparatorY = l.TextY - 1
		rest = l.SeparatorY
	}

	l.GridRows = rest
	l.GridCols = l.Width / l.CellWidth
	return l
}

// HitTest maps a screen position to a viewport-local cell.
// ok is false outside the grid area.
func (l Layout) HitTest(x, y int) (localRow, localCol int, ok bool) {
	if y < 0 || y >= l.GridRows || x < 0 || x >= l.GridCols*l.CellWidth {
		return 0, 0, false
	}
	return y, x / l.CellWidth, true
}
