package engine

import (
	"sync/atomic"

	"github.com/lixenwraith/gridpaint/grid"
)

// Snapshot is an immutable copy of session state. Dense covers Bounds when
// HasCells is set, otherwise it is the empty sentinel. When the box cannot be
// exported ExportErr is set and Dense and Text are empty; cell reads still work.
type Snapshot struct {
	Dense     grid.Dense
	Bounds    grid.Bounds
	HasCells  bool
	Text      string
	ExportErr error
	Viewport  Viewport
	Palette   grid.Palette
	Painted   int

	cells *grid.Store
}

// Get returns the palette index at an absolute coordinate
func (s *Snapshot) Get(row, col int) int {
	if s.cells == nil {
		return 0
	}
	return s.cells.Get(row, col)
}

// Value returns the palette index at a viewport-local position
func (s *Snapshot) Value(localRow, localCol int) int {
	c := s.Viewport.ToAbsolute(localRow, localCol)
	return s.Get(c.Row, c.Col)
}

// Publisher hands the latest snapshot from the owning goroutine to readers
type Publisher struct {
	ptr atomic.Pointer[Snapshot]
}

// Publish replaces the current snapshot
func (p *Publisher) Publish(s *Snapshot) {
	p.ptr.Store(s)
}

// Latest returns the most recent snapshot, or nil before the first publish
func (p *Publisher) Latest() *Snapshot {
	return p.ptr.Load()
}
