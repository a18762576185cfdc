package engine

import "github.com/lixenwraith/gridpaint/grid"

// Direction is a discrete scroll step
type Direction uint8

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Viewport is the absolute coordinate rendered at the top-left cell.
// The zero value is anchored at (0,0). Scrolling is unbounded.
type Viewport struct {
	StartRow int
	StartCol int
}

// Scroll moves the viewport one cell in d
func (v *Viewport) Scroll(d Direction) {
	switch d {
	case DirUp:
		v.StartRow--
	case DirDown:
		v.StartRow++
	case DirLeft:
		v.StartCol--
	case DirRight:
		v.StartCol++
	}
}

// Reset anchors the viewport back at (0,0)
func (v *Viewport) Reset() {
	v.StartRow, v.StartCol = 0, 0
}

// ToAbsolute maps a viewport-local cell to its grid coordinate
func (v Viewport) ToAbsolute(localRow, localCol int) grid.Coord {
	return grid.Coord{Row: localRow + v.StartRow, Col: localCol + v.StartCol}
}

// ToLocal maps a grid coordinate to viewport-local cell indices, which may be
// negative or beyond the visible area
func (v Viewport) ToLocal(c grid.Coord) (localRow, localCol int) {
	return c.Row - v.StartRow, c.Col - v.StartCol
}

// Origin returns the top-left coordinate
func (v Viewport) Origin() grid.Coord {
	return grid.Coord{Row: v.StartRow, Col: v.StartCol}
}
