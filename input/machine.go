// Package input turns tcell events into semantic intents for the event loop.
package input

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/gridpaint/engine"
)

// Machine is the input state machine.
// It owns the import prompt buffer and the mouse button edge state.
type Machine struct {
	mode        InputMode
	prompt      []rune
	pasting     bool
	lastButtons tcell.ButtonMask
}

// NewMachine creates a machine in normal mode
func NewMachine() *Machine {
	return &Machine{
		mode:   ModeNormal,
		prompt: make([]rune, 0, 64),
	}
}

// Mode returns the active mode
func (m *Machine) Mode() InputMode {
	return m.mode
}

// Prompt returns the current prompt buffer
func (m *Machine) Prompt() string {
	return string(m.prompt)
}

// SeedPrompt replaces the prompt buffer and switches to prompt mode
func (m *Machine) SeedPrompt(text string) {
	m.prompt = append(m.prompt[:0], []rune(text)...)
	m.mode = ModePrompt
}

// Reset clears the prompt and returns to normal mode
func (m *Machine) Reset() {
	m.mode = ModeNormal
	m.prompt = m.prompt[:0]
	m.pasting = false
}

// Process parses a tcell event into an Intent
func (m *Machine) Process(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	case *tcell.EventPaste:
		return m.processPaste(ev)
	case *tcell.EventKey:
		if m.mode == ModePrompt {
			return m.processPrompt(ev)
		}
		return m.processNormal(ev)
	case *tcell.EventMouse:
		return m.processMouse(ev)
	}
	return Intent{}
}

func (m *Machine) processPaste(ev *tcell.EventPaste) Intent {
	if !ev.Start() {
		m.pasting = false
		return Intent{Type: IntentPromptEdit}
	}

	m.pasting = true
	if m.mode == ModeNormal {
		m.Reset()
		m.pasting = true
		m.mode = ModePrompt
		return Intent{Type: IntentPromptOpen}
	}
	return Intent{Type: IntentPromptEdit}
}

func (m *Machine) processNormal(ev *tcell.EventKey) Intent {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return Intent{Type: IntentQuit}
	case tcell.KeyUp:
		return Intent{Type: IntentScroll, Dir: engine.DirUp}
	case tcell.KeyDown:
		return Intent{Type: IntentScroll, Dir: engine.DirDown}
	case tcell.KeyLeft:
		return Intent{Type: IntentScroll, Dir: engine.DirLeft}
	case tcell.KeyRight:
		return Intent{Type: IntentScroll, Dir: engine.DirRight}
	case tcell.KeyRune:
	default:
		return Intent{}
	}

	switch ev.Rune() {
	case 'q':
		return Intent{Type: IntentQuit}
	case 'k':
		return Intent{Type: IntentScroll, Dir: engine.DirUp}
	case 'j':
		return Intent{Type: IntentScroll, Dir: engine.DirDown}
	case 'h':
		return Intent{Type: IntentScroll, Dir: engine.DirLeft}
	case 'l':
		return Intent{Type: IntentScroll, Dir: engine.DirRight}
	case 'i', ':':
		m.Reset()
		m.mode = ModePrompt
		return Intent{Type: IntentPromptOpen}
	case 'c':
		return Intent{Type: IntentPromptSeed}
	}
	return Intent{}
}

func (m *Machine) processPrompt(ev *tcell.EventKey) Intent {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		m.Reset()
		return Intent{Type: IntentPromptCancel}

	case tcell.KeyEnter, tcell.KeyLF:
		if m.pasting {
			m.prompt = append(m.prompt, ' ')
			return Intent{Type: IntentPromptEdit}
		}
		text := strings.TrimSpace(string(m.prompt))
		m.Reset()
		return Intent{Type: IntentPromptConfirm, Text: text}

	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if n := len(m.prompt); n > 0 {
			m.prompt = m.prompt[:n-1]
		}
		return Intent{Type: IntentPromptEdit}

	case tcell.KeyCtrlU:
		m.prompt = m.prompt[:0]
		return Intent{Type: IntentPromptEdit}

	case tcell.KeyTab:
		m.prompt = append(m.prompt, ' ')
		return Intent{Type: IntentPromptEdit}

	case tcell.KeyRune:
		m.prompt = append(m.prompt, ev.Rune())
		return Intent{Type: IntentPromptEdit}
	}
	return Intent{}
}

// processMouse reports a paint only on the press edge of the left button so a
// held button dragged across cells does not keep cycling them
func (m *Machine) processMouse(ev *tcell.EventMouse) Intent {
	buttons := ev.Buttons()
	pressed := buttons&tcell.Button1 != 0 && m.lastButtons&tcell.Button1 == 0
	m.lastButtons = buttons

	if !pressed || m.mode != ModeNormal {
		return Intent{}
	}
	x, y := ev.Position()
	return Intent{Type: IntentPaint, X: x, Y: y}
}
