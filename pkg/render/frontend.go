package render

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/opd-ai/go-flight/pkg/engine"
	"github.com/opd-ai/go-flight/pkg/input"
	"github.com/opd-ai/go-flight/pkg/logging"
)

// KeyIntent maps a terminal key to the intent it triggers
func KeyIntent(ev *tcell.EventKey) (input.Intent, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return input.TurnLeft, true
	case tcell.KeyRight:
		return input.TurnRight, true
	case tcell.KeyUp:
		return input.Climb, true
	case tcell.KeyDown:
		return input.Descend, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return input.Exit, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A':
			return input.TurnLeft, true
		case 'd', 'D':
			return input.TurnRight, true
		case 'w', 'W':
			return input.Climb, true
		case 's', 'S':
			return input.Descend, true
		case 'q', 'Q':
			return input.Exit, true
		}
	}
	return 0, false
}

// TerminalFrontEnd runs a session on a terminal. Terminals report key
// presses but never releases, so the session is switched to edge input:
// every key event is one intent for one frame.
type TerminalFrontEnd struct {
	session  *engine.Session
	renderer *TerminalRenderer
	logger   *logging.Logger
	interval time.Duration
	source   *input.EventSource
}

// NewTerminalFrontEnd wires session to the renderer's screen
func NewTerminalFrontEnd(session *engine.Session, renderer *TerminalRenderer, logger *logging.Logger) *TerminalFrontEnd {
	if logger == nil {
		logger = logging.NewLogger()
	}
	session.Sampler.Policy = input.EdgePolicy

	return &TerminalFrontEnd{
		session:  session,
		renderer: renderer,
		logger:   logger,
		interval: time.Second / time.Duration(session.Config.Physics.TickRate),
		source:   input.NewEventSource(),
	}
}

// Run plays frames until the player exits or ctx is cancelled
func (f *TerminalFrontEnd) Run(ctx context.Context) error {
	screen := f.renderer.Screen()
	events := make(chan tcell.Event, 16)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for {
			ev := screen.PollEvent()
			if ev == nil || ctx.Err() != nil {
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})

	g.Go(func() error {
		defer func() {
			cancel()
			// Wake the event reader blocked in PollEvent.
			_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
		}()
		return f.loop(ctx, events)
	})

	return g.Wait()
}

func (f *TerminalFrontEnd) loop(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	if err := f.renderer.Render(f.session.Snapshot()); err != nil {
		return fmt.Errorf("failed to render frame: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			f.session.Stop()
			return nil
		case ev := <-events:
			f.handle(ev)
		case <-ticker.C:
			f.drain(events)
			snap, running := f.session.Frame(f.source)
			f.source.EndFrame()
			if err := f.renderer.Render(snap); err != nil {
				return fmt.Errorf("failed to render frame: %w", err)
			}
			if !running {
				return nil
			}
		}
	}
}

func (f *TerminalFrontEnd) drain(events <-chan tcell.Event) {
	for {
		select {
		case ev := <-events:
			f.handle(ev)
		default:
			return
		}
	}
}

func (f *TerminalFrontEnd) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if intent, ok := KeyIntent(ev); ok {
			f.source.Tap(intent)
		}
	case *tcell.EventResize:
		f.renderer.Screen().Sync()
		f.logger.Debug(context.Background(), "terminal resized")
	}
}
