// Package status holds the painter's counters. The event loop writes the
// typed fields directly; the HTTP mirror reads them by name.
package status

import (
	"sync/atomic"
	"unicode/utf8"
)

// Metric names reported by Snapshot
const (
	PaintCount    = "paint.count"
	EraseCount    = "paint.erase"
	ScrollCount   = "scroll.count"
	ImportOK      = "import.ok"
	ImportFailed  = "import.failed"
	CellsPainted  = "cells.painted"
	FramesDrawn   = "render.frames"
	LastImportErr = "import.last_error"
)

// MaxMessageLen bounds LastImportErr in bytes
const MaxMessageLen = 120

// Registry is the set of painter metrics. The zero value is ready to use.
type Registry struct {
	Paints        atomic.Int64
	Erases        atomic.Int64
	Scrolls       atomic.Int64
	ImportsOK     atomic.Int64
	ImportsFailed atomic.Int64
	CellsPainted  atomic.Int64
	FramesDrawn   atomic.Int64
	LastImportErr Message
}

// NewRegistry returns an empty Registry
func NewRegistry() *Registry {
	return &Registry{}
}

// Snapshot returns every metric keyed by name
func (r *Registry) Snapshot() map[string]any {
	return map[string]any{
		PaintCount:    r.Paints.Load(),
		EraseCount:    r.Erases.Load(),
		ScrollCount:   r.Scrolls.Load(),
		ImportOK:      r.ImportsOK.Load(),
		ImportFailed:  r.ImportsFailed.Load(),
		CellsPainted:  r.CellsPainted.Load(),
		FramesDrawn:   r.FramesDrawn.Load(),
		LastImportErr: r.LastImportErr.Load(),
	}
}

// Message is an atomically replaced short string
type Message struct {
	v atomic.Pointer[string]
}

// Store replaces the message, cutting it to at most MaxMessageLen bytes on a
// rune boundary
func (m *Message) Store(s string) {
	if len(s) > MaxMessageLen {
		n := MaxMessageLen
		for n > 0 && !utf8.RuneStart(s[n]) {
			n--
		}
		s = s[:n]
	}
	m.v.Store(&s)
}

// Load returns the message, or "" if none was stored
func (m *Message) Load() string {
	if p := m.v.Load(); p != nil {
		return *p
	}
	return ""
}
