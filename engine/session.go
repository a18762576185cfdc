// Package engine holds the painting session: the grid store, the viewport
// scrolled over it, and the paint cycle that connects them. A Session has a
// single owner; other goroutines read published Snapshots.
package engine

import (
	"github.com/lixenwraith/gridpaint/grid"
)

// Session owns the grid, its viewport and the palette
type Session struct {
	store    *grid.Store
	viewport Viewport
	palette  grid.Palette
}

// NewSession creates an empty session. A nil palette selects grid.DefaultPalette.
func NewSession(palette grid.Palette) *Session {
	if len(palette) < 2 {
		palette = grid.DefaultPalette
	}
	return &Session{
		store:   grid.NewStore(),
		palette: palette,
	}
}

// Store exposes the underlying grid
func (s *Session) Store() *grid.Store {
	return s.store
}

// Palette returns the session palette
func (s *Session) Palette() grid.Palette {
	return s.palette
}

// Viewport returns the current viewport offset
func (s *Session) Viewport() Viewport {
	return s.viewport
}

// Value reads the cell shown at a viewport-local position
func (s *Session) Value(localRow, localCol int) int {
	c := s.viewport.ToAbsolute(localRow, localCol)
	return s.store.Get(c.Row, c.Col)
}

// Paint advances the cell at a viewport-local position to the next palette
// index, wrapping back to background after the last color
func (s *Session) Paint(localRow, localCol int) (grid.Coord, int) {
	c := s.viewport.ToAbsolute(localRow, localCol)
	next := s.palette.Next(s.store.Get(c.Row, c.Col))
	s.store.Set(c.Row, c.Col, next)
	return c, next
}

// Scroll moves the viewport one step
func (s *Session) Scroll(d Direction) {
	s.viewport.Scroll(d)
}

// Import replaces the grid with d anchored at (0,0) and resets the viewport.
// Invalid input leaves both grid and viewport unchanged.
func (s *Session) Import(d grid.Dense) error {
	if err := grid.Import(s.store, d, s.palette); err != nil {
		return err
	}
	s.viewport.Reset()
	return nil
}

// ImportText parses and imports JSON text
func (s *Session) ImportText(text string) error {
	d, err := grid.ParseText([]byte(text))
	if err != nil {
		return err
	}
	return s.Import(d)
}

// Export serializes the painted bounding box. Boxes too large for a dense
// array fail with grid.ErrTooLarge.
func (s *Session) Export() (grid.Dense, error) {
	return grid.Serialize(s.store)
}

// ExportText serializes the painted bounding box as JSON
func (s *Session) ExportText() (string, error) {
	d, err := s.Export()
	if err != nil {
		return "", err
	}
	return grid.FormatText(d), nil
}

// Snapshot captures an immutable view for renderers and concurrent readers
func (s *Session) Snapshot() *Snapshot {
	snap := &Snapshot{
		Viewport: s.viewport,
		Palette:  s.palette,
		Painted:  s.store.Len(),
		cells:    s.store.Clone(),
	}
	if b, ok := s.store.Bounds(); ok {
		snap.Bounds = b
		snap.HasCells = true
		snap.Dense, snap.ExportErr = grid.SerializeBounds(s.store, b)
	} else {
		snap.Dense = grid.Empty()
	}
	if snap.ExportErr == nil {
		snap.Text = grid.FormatText(snap.Dense)
	}
	return snap
}
