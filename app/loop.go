// Package app runs the interactive painter: one goroutine owns the session,
// applies terminal input and queued imports in arrival order, and after each
// change renders a frame and publishes a snapshot for concurrent readers.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/gridpaint/core"
	"github.com/lixenwraith/gridpaint/engine"
	"github.com/lixenwraith/gridpaint/grid"
	"github.com/lixenwraith/gridpaint/input"
	"github.com/lixenwraith/gridpaint/render"
	"github.com/lixenwraith/gridpaint/status"
)

// ErrStopped is returned by Submit once the loop has exited
var ErrStopped = errors.New("app: loop stopped")

// Sounder plays feedback cues; *audio.SoundManager implements it
type Sounder interface {
	PlayPaint(v int)
	PlayError()
	PlayImport()
}

type silent struct{}

func (silent) PlayPaint(int) {}
func (silent) PlayError()    {}
func (silent) PlayImport()   {}

type importRequest struct {
	dense grid.Dense
	reply chan error
}

// Options configures a Loop
type Options struct {
	CellWidth int
	Sound     Sounder
	Metrics   *status.Registry
	Logger    logrus.FieldLogger
}

// Loop owns the session and the screen
type Loop struct {
	session  *engine.Session
	screen   tcell.Screen
	renderer *render.TerminalRenderer
	machine  *input.Machine
	sound    Sounder
	metrics  *status.Registry
	log      logrus.FieldLogger

	pub     engine.Publisher
	overlay render.Overlay

	imports chan importRequest
	done    chan struct{}
}

// NewLoop wires a loop around session and an initialized screen
func NewLoop(session *engine.Session, screen tcell.Screen, opts Options) *Loop {
	if opts.Sound == nil {
		opts.Sound = silent{}
	}
	if opts.Metrics == nil {
		opts.Metrics = status.NewRegistry()
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}

	l := &Loop{
		session:  session,
		screen:   screen,
		renderer: render.NewTerminalRenderer(screen, opts.CellWidth),
		machine:  input.NewMachine(),
		sound:    opts.Sound,
		metrics:  opts.Metrics,
		log:      opts.Logger,
		imports:  make(chan importRequest),
		done:     make(chan struct{}),
	}
	l.publish()
	return l
}

// Latest returns the most recently published snapshot. Safe for concurrent use.
func (l *Loop) Latest() *engine.Snapshot {
	return l.pub.Latest()
}

// Submit queues an import and waits until the loop has applied or rejected
// it. Safe for concurrent use.
func (l *Loop) Submit(ctx context.Context, d grid.Dense) error {
	req := importRequest{dense: d, reply: make(chan error, 1)}

	select {
	case l.imports <- req:
	case <-l.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-req.reply:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run processes events until Quit, ctx cancellation, or the screen closing
func (l *Loop) Run(ctx context.Context) error {
	defer close(l.done)

	events := make(chan tcell.Event, 64)
	core.Go(func() {
		for {
			ev := l.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-l.done:
				return
			}
		}
	})

	l.draw()
	l.log.Info("painter started")

	for {
		select {
		case <-ctx.Done():
			l.log.Info("painter stopped: context done")
			return nil

		case ev, ok := <-events:
			if !ok {
				l.log.Info("painter stopped: screen closed")
				return nil
			}
			if quit := l.handle(ev); quit {
				l.log.Info("painter stopped: quit")
				return nil
			}

		case req := <-l.imports:
			err := l.applyImport(req.dense, "http")
			l.publish()
			l.draw()
			req.reply <- err
			continue
		}

		l.publish()
		l.draw()
	}
}

// handle applies one terminal event and reports whether to quit
func (l *Loop) handle(ev tcell.Event) bool {
	intent := l.machine.Process(ev)

	switch intent.Type {
	case input.IntentQuit:
		return true

	case input.IntentResize:
		l.screen.Sync()
		l.renderer.Resize()

	case input.IntentScroll:
		l.session.Scroll(intent.Dir)
		l.metrics.Scrolls.Add(1)
		l.clearMessage()

	case input.IntentPaint:
		row, col, ok := l.renderer.Layout().HitTest(intent.X, intent.Y)
		if !ok {
			return false
		}
		c, v := l.session.Paint(row, col)
		l.sound.PlayPaint(v)
		if v == 0 {
			l.metrics.Erases.Add(1)
		}
		l.metrics.Paints.Add(1)
		l.log.WithFields(logrus.Fields{"row": c.Row, "col": c.Col, "value": v}).Debug("paint")
		l.clearMessage()

	case input.IntentPromptOpen:
		l.clearMessage()

	case input.IntentPromptSeed:
		text, err := l.session.ExportText()
		if err != nil {
			l.overlay.Message = err.Error()
			l.overlay.IsError = true
			l.log.WithError(err).Warn("export failed")
			break
		}
		l.machine.SeedPrompt(text)
		l.clearMessage()

	case input.IntentPromptConfirm:
		if intent.Text == "" {
			break
		}
		d, err := grid.ParseText([]byte(intent.Text))
		if err != nil {
			l.rejectImport(err, "prompt")
			break
		}
		_ = l.applyImport(d, "prompt")
	}

	l.overlay.Prompting = l.machine.Mode() == input.ModePrompt
	l.overlay.Prompt = l.machine.Prompt()
	return false
}

// applyImport replaces the grid; on failure the grid and viewport stay as they were
func (l *Loop) applyImport(d grid.Dense, source string) error {
	if err := l.session.Import(d); err != nil {
		l.rejectImport(err, source)
		return err
	}

	painted := l.session.Store().Len()
	l.metrics.ImportsOK.Add(1)
	l.sound.PlayImport()
	l.overlay.Message = fmt.Sprintf("imported %d cells", painted)
	l.overlay.IsError = false
	l.log.WithFields(logrus.Fields{"source": source, "painted": painted}).Info("import applied")
	return nil
}

func (l *Loop) rejectImport(err error, source string) {
	l.metrics.ImportsFailed.Add(1)
	l.metrics.LastImportErr.Store(err.Error())
	l.sound.PlayError()
	l.overlay.Message = err.Error()
	l.overlay.IsError = true
	l.log.WithError(err).WithField("source", source).Warn("import rejected")
}

func (l *Loop) clearMessage() {
	l.overlay.Message = ""
	l.overlay.IsError = false
}

func (l *Loop) publish() {
	snap := l.session.Snapshot()
	l.metrics.CellsPainted.Store(int64(snap.Painted))
	l.pub.Publish(snap)
}

func (l *Loop) draw() {
	l.renderer.RenderFrame(l.pub.Latest(), l.overlay)
	l.metrics.FramesDrawn.Add(1)
}
