package grid

import (
	"errors"
	"fmt"
)

// Dense is the exchanged form of a grid: a row-major array covering the
// bounding box of painted cells. An empty grid is [[]].
type Dense [][]int

// Empty returns the sentinel for a grid with no painted cells
func Empty() Dense {
	return Dense{{}}
}

// IsEmpty reports whether d carries no cells at all
func (d Dense) IsEmpty() bool {
	for _, row := range d {
		if len(row) > 0 {
			return false
		}
	}
	return true
}

// At returns the value at (row, col) relative to the dense origin, or 0 when
// outside the array
func (d Dense) At(row, col int) int {
	if row < 0 || row >= len(d) || col < 0 || col >= len(d[row]) {
		return 0
	}
	return d[row][col]
}

// ParseError reports dense input that cannot be imported.
// Row and Col are -1 when the failure is not tied to a single position.
type ParseError struct {
	Row, Col int
	Reason   string
}

func (e *ParseError) Error() string {
	switch {
	case e.Row < 0:
		return "parse error: " + e.Reason
	case e.Col < 0:
		return fmt.Sprintf("parse error at row %d: %s", e.Row, e.Reason)
	default:
		return fmt.Sprintf("parse error at [%d][%d]: %s", e.Row, e.Col, e.Reason)
	}
}

// MaxDenseCells bounds the area of a bounding box that can be exported
const MaxDenseCells = 1 << 22

// ErrTooLarge is returned when the painted bounding box cannot be exported
// as a dense array
var ErrTooLarge = errors.New("bounding box too large to export")

// Serialize exports the bounding box of painted cells in ascending row and
// column order. Unpainted cells inside the box are 0.
func Serialize(s *Store) (Dense, error) {
	b, ok := s.Bounds()
	if !ok {
		return Empty(), nil
	}
	return SerializeBounds(s, b)
}

// SerializeBounds exports an explicit rectangle of s. Boxes wider than the
// int range or larger than MaxDenseCells fail with ErrTooLarge.
func SerializeBounds(s *Store, b Bounds) (Dense, error) {
	rows, cols, ok := b.Size()
	if !ok || cols > MaxDenseCells/rows {
		return nil, fmt.Errorf("%w: rows [%d,%d] cols [%d,%d]", ErrTooLarge, b.MinRow, b.MaxRow, b.MinCol, b.MaxCol)
	}

	d := make(Dense, rows)
	for i := range d {
		d[i] = make([]int, cols)
	}
	// Offsets stay in range because the box size fits in an int
	for c, v := range s.cells {
		if b.Contains(c) {
			d[c.Row-b.MinRow][c.Col-b.MinCol] = v
		}
	}
	return d, nil
}

// Validate checks that every entry of d is an index of p.
// Rows may differ in length.
func Validate(d Dense, p Palette) error {
	if d == nil {
		return &ParseError{Row: -1, Col: -1, Reason: "expected an array of rows, got null"}
	}
	for r, row := range d {
		if row == nil {
			return &ParseError{Row: r, Col: -1, Reason: "expected an array, got null"}
		}
		for c, v := range row {
			if !p.Valid(v) {
				return &ParseError{Row: r, Col: c, Reason: fmt.Sprintf("palette index %d out of range [0,%d]", v, p.Len()-1)}
			}
		}
	}
	return nil
}

// Import replaces the contents of s with d anchored at (0,0).
// d is validated in full first; on error s is left untouched.
func Import(s *Store, d Dense, p Palette) error {
	if err := Validate(d, p); err != nil {
		return err
	}

	s.Clear()
	for r, row := range d {
		for c, v := range row {
			s.Set(r, c, v)
		}
	}
	return nil
}
