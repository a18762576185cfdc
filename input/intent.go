package input

import "github.com/lixenwraith/gridpaint/engine"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit   // Normal mode only: q, Ctrl+C, Esc (in prompt mode these cancel or type)
	IntentResize // Terminal resize event

	// Grid
	IntentScroll // arrows, h/j/k/l
	IntentPaint  // Left-click press edge

	// Import prompt
	IntentPromptOpen    // i, : or start of a bracketed paste
	IntentPromptSeed    // c, open the prompt pre-filled with the current export
	IntentPromptEdit    // Buffer changed, redraw only
	IntentPromptConfirm // Enter, Text carries the buffer
	IntentPromptCancel  // Esc or Ctrl+C in prompt mode
)

// Intent is the parsed form of a terminal event
type Intent struct {
	Type IntentType
	Dir  engine.Direction // IntentScroll
	X, Y int              // IntentPaint, screen cell position
	Text string           // IntentPromptConfirm
}

// InputMode selects which key table applies
type InputMode uint8

const (
	ModeNormal InputMode = iota
	ModePrompt
)
