package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/gridpaint/core"
)

// UI colors
var (
	RgbBackground   = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbStatusBar    = tcell.NewRGBColor(255, 255, 255) // White
	RgbStatusDim    = tcell.NewRGBColor(140, 140, 150)
	RgbStatusError  = tcell.NewRGBColor(255, 80, 80)
	RgbStatusOK     = tcell.NewRGBColor(80, 220, 120)
	RgbPrompt       = tcell.NewRGBColor(255, 165, 0) // Orange
	RgbTextPanel    = tcell.NewRGBColor(180, 180, 180)
	RgbSeparator    = tcell.NewRGBColor(60, 60, 75)
	RgbOriginMarker = tcell.NewRGBColor(255, 165, 0)
)

// checkerAlpha lifts every other background cell so the grid structure stays
// visible without drawing lines between cells
const checkerAlpha = 0.08

// cellColor returns the fill for a cell. Background cells alternate with a
// faint checker keyed on the absolute coordinate so the pattern scrolls with
// the grid.
func cellColor(rgb core.RGB, background bool, absRow, absCol int) core.RGB {
	if !background || (absRow+absCol)&1 == 0 {
		return rgb
	}
	return rgb.Blend(core.RGBWhite, checkerAlpha)
}
