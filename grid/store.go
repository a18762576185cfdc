// Package grid implements the sparse infinite painting grid: a store keyed by
// cell coordinate where absence means background, the textual key codec, the
// palette, and conversion to and from the dense array form.
package grid

import (
	"fmt"
	"maps"
)

// Store maps painted coordinates to palette indices.
// A coordinate is present iff its value is non-zero, so memory is bounded by
// the number of painted cells rather than the addressable space.
// Store is not safe for concurrent use; a single owner mutates it.
type Store struct {
	cells map[Coord]int
}

// NewStore returns an empty store
func NewStore() *Store {
	return &Store{cells: make(map[Coord]int)}
}

// Get returns the palette index at (row, col), or 0 if unpainted
func (s *Store) Get(row, col int) int {
	return s.cells[Coord{Row: row, Col: col}]
}

// Set stores value at (row, col). A value of 0 removes the entry.
// Negative values are a caller bug and panic.
func (s *Store) Set(row, col, value int) {
	if value < 0 {
		panic(fmt.Sprintf("grid: negative palette index %d at %s", value, EncodeKey(row, col)))
	}

	c := Coord{Row: row, Col: col}
	if value == 0 {
		delete(s.cells, c)
		return
	}
	s.cells[c] = value
}

// Clear removes every entry
func (s *Store) Clear() {
	clear(s.cells)
}

// Len returns the painted cell count
func (s *Store) Len() int {
	return len(s.cells)
}

// Clone returns an independent copy of s
func (s *Store) Clone() *Store {
	return &Store{cells: maps.Clone(s.cells)}
}

// Keys returns painted coordinates in no defined order
func (s *Store) Keys() []Coord {
	keys := make([]Coord, 0, len(s.cells))
	for c := range s.cells {
		keys = append(keys, c)
	}
	return keys
}

// Bounds returns the inclusive bounding box of painted cells.
// ok is false for an empty store.
func (s *Store) Bounds() (b Bounds, ok bool) {
	for c := range s.cells {
		if !ok {
			b = Bounds{MinRow: c.Row, MaxRow: c.Row, MinCol: c.Col, MaxCol: c.Col}
			ok = true
			continue
		}
		b = b.Extend(c)
	}
	return b, ok
}
