package grid

import "math"

// Bounds is an inclusive rectangle of rows and columns
type Bounds struct {
	MinRow, MaxRow int
	MinCol, MaxCol int
}

// Extend grows b to include c
func (b Bounds) Extend(c Coord) Bounds {
	b.MinRow = min(b.MinRow, c.Row)
	b.MaxRow = max(b.MaxRow, c.Row)
	b.MinCol = min(b.MinCol, c.Col)
	b.MaxCol = max(b.MaxCol, c.Col)
	return b
}

// Size returns the row and column counts of b. ok is false when either
// count does not fit in an int, which happens once a span covers more than
// half of the coordinate space.
func (b Bounds) Size() (rows, cols int, ok bool) {
	if rows, ok = span(b.MinRow, b.MaxRow); !ok {
		return 0, 0, false
	}
	if cols, ok = span(b.MinCol, b.MaxCol); !ok {
		return 0, 0, false
	}
	return rows, cols, true
}

// span returns hi-lo+1 for lo <= hi. The unsigned difference is exact for
// any pair of ints.
func span(lo, hi int) (int, bool) {
	d := uint(hi) - uint(lo)
	if d >= uint(math.MaxInt) {
		return 0, false
	}
	return int(d) + 1, true
}

// Contains reports whether c lies inside b
func (b Bounds) Contains(c Coord) bool {
	return c.Row >= b.MinRow && c.Row <= b.MaxRow && c.Col >= b.MinCol && c.Col <= b.MaxCol
}

// Origin returns the top-left coordinate
func (b Bounds) Origin() Coord {
	return Coord{Row: b.MinRow, Col: b.MinCol}
}
