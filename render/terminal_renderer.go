// Package render draws session snapshots onto a tcell screen.
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/gridpaint/engine"
	"github.com/lixenwraith/gridpaint/grid"
)

// Overlay is the interaction state drawn on top of the grid
type Overlay struct {
	Prompting bool
	Prompt    string
	Message   string
	IsError   bool
}

// TerminalRenderer handles all terminal rendering
type TerminalRenderer struct {
	screen    tcell.Screen
	cellWidth int
	layout    Layout
}

// NewTerminalRenderer creates a renderer for screen
func NewTerminalRenderer(screen tcell.Screen, cellWidth int) *TerminalRenderer {
	r := &TerminalRenderer{screen: screen, cellWidth: cellWidth}
	r.Resize()
	return r
}

// Resize recomputes the layout from the current screen size
func (r *TerminalRenderer) Resize() {
	w, h := r.screen.Size()
	r.layout = NewLayout(w, h, r.cellWidth)
}

// Layout returns the current layout for hit testing
func (r *TerminalRenderer) Layout() Layout {
	return r.layout
}

// RenderFrame draws a full frame and shows it
func (r *TerminalRenderer) RenderFrame(snap *engine.Snapshot, ov Overlay) {
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	r.screen.SetStyle(defaultStyle)
	r.screen.Clear()

	r.drawCells(snap)
	r.drawTextPanel(snap, defaultStyle)
	r.drawStatusBar(snap, ov, defaultStyle)

	r.screen.Show()
}

func (r *TerminalRenderer) drawCells(snap *engine.Snapshot) {
	l := r.layout
	for row := 0; row < l.GridRows; row++ {
		for col := 0; col < l.GridCols; col++ {
			abs := snap.Viewport.ToAbsolute(row, col)
			v := snap.Get(abs.Row, abs.Col)
			rgb := cellColor(snap.Palette.Color(v).RGB, v == 0, abs.Row, abs.Col)
			style := tcell.StyleDefault.Background(rgb.Tcell())

			mark := ' '
			if abs == (grid.Coord{}) {
				mark = '+'
				if v == 0 {
					style = style.Foreground(RgbOriginMarker)
				} else {
					style = style.Foreground(rgb.Contrast().Tcell())
				}
			}

			x := col * l.CellWidth
			for i := 0; i < l.CellWidth; i++ {
				ch := ' '
				if i == 0 {
					ch = mark
				}
				r.screen.SetContent(x+i, row, ch, nil, style)
			}
		}
	}
}

func (r *TerminalRenderer) drawTextPanel(snap *engine.Snapshot, defaultStyle tcell.Style) {
	l := r.layout
	if l.SeparatorY < 0 {
		return
	}

	sepStyle := defaultStyle.Foreground(RgbSeparator)
	for x := 0; x < l.Width; x++ {
		r.screen.SetContent(x, l.SeparatorY, '─', nil, sepStyle)
	}

	text, textStyle := snap.Text, defaultStyle.Foreground(RgbTextPanel)
	if snap.ExportErr != nil {
		text, textStyle = snap.ExportErr.Error(), defaultStyle.Foreground(RgbStatusError)
	}
	lines := wrapText(text, l.Width, l.TextRows)
	for i, line := range lines {
		r.drawString(0, l.TextY+i, line, textStyle)
	}
}

func (r *TerminalRenderer) drawStatusBar(snap *engine.Snapshot, ov Overlay, defaultStyle tcell.Style) {
	l := r.layout
	if l.Height == 0 {
		return
	}

	if ov.Prompting {
		label := "import> "
		r.drawString(0, l.StatusY, label, defaultStyle.Foreground(RgbPrompt).Bold(true))

		// Keep the tail of long input visible
		room := l.Width - len(label) - 1
		text := []rune(ov.Prompt)
		if room > 0 && len(text) > room {
			text = text[len(text)-room:]
		}
		end := r.drawString(len(label), l.StatusY, string(text), defaultStyle.Foreground(RgbStatusBar))
		if end < l.Width {
			r.screen.SetContent(end, l.StatusY, ' ', nil, defaultStyle.Reverse(true))
		}
		return
	}

	info := fmt.Sprintf("origin %s  painted %d", snap.Viewport.Origin().Key(), snap.Painted)
	x := r.drawString(0, l.StatusY, info, defaultStyle.Foreground(RgbStatusDim))

	if ov.Message != "" {
		color := RgbStatusOK
		if ov.IsError {
			color = RgbStatusError
		}
		r.drawString(x+2, l.StatusY, ov.Message, defaultStyle.Foreground(color))
	}
}

// drawString writes s from (x, y), clipped at the screen edge, and returns the
// column after the last rune drawn
func (r *TerminalRenderer) drawString(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		if x >= r.layout.Width {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}

// wrapText hard-wraps s into at most rows lines of width runes, marking
// truncation with an ellipsis
func wrapText(s string, width, rows int) []string {
	if width <= 0 || rows <= 0 {
		return nil
	}

	runes := []rune(s)
	lines := make([]string, 0, rows)
	for len(runes) > 0 && len(lines) < rows {
		n := min(width, len(runes))
		lines = append(lines, string(runes[:n]))
		runes = runes[n:]
	}

	if len(runes) > 0 {
		last := []rune(lines[len(lines)-1])
		last[len(last)-1] = '…'
		lines[len(lines)-1] = string(last)
	}
	return lines
}
