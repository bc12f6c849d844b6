// Package cell is the tcell backend. A Terminal is both the session's input
// source and its display, so the session loop can run unchanged on a real
// terminal or on tcell's simulation screen.
package cell

import (
	"context"
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/riverraid/internal/core"
)

// ErrClosed is returned by Poll once the screen has been finalized.
var ErrClosed = errors.New("cell: event stream closed")

// eventBuffer is how many terminal events may queue between polls.
const eventBuffer = 100

// Terminal adapts a tcell.Screen to session.InputSource and session.Display.
type Terminal struct {
	screen tcell.Screen
	events chan tcell.Event
}

// Open initialises the process terminal.
func Open() (*Terminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	return Attach(s), nil
}

// Attach wraps an already initialised screen and starts forwarding its events.
func Attach(s tcell.Screen) *Terminal {
	s.HideCursor()
	t := &Terminal{
		screen: s,
		events: make(chan tcell.Event, eventBuffer),
	}
	go t.forward()
	return t
}

func (t *Terminal) forward() {
	defer close(t.events)
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		t.events <- ev
	}
}

// Size returns the screen size in cells.
func (t *Terminal) Size() (cols, rows int) {
	return t.screen.Size()
}

// Poll waits up to timeout for a key press. Resize and other non-key events
// are consumed without ending the wait. A zero timeout never blocks.
func (t *Terminal) Poll(timeout time.Duration) (core.Action, bool, error) {
	var expired <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		expired = timer.C
	}

	for {
		var ev tcell.Event
		var open bool
		if expired == nil {
			select {
			case ev, open = <-t.events:
			default:
				return core.ActionNone, false, nil
			}
		} else {
			select {
			case ev, open = <-t.events:
			case <-expired:
				return core.ActionNone, false, nil
			}
		}
		if !open {
			return core.ActionNone, false, ErrClosed
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			return MapKey(ev), true, nil
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}
}

// WaitKey blocks until any key is pressed or ctx is done.
func (t *Terminal) WaitKey(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, open := <-t.events:
			if !open {
				return ErrClosed
			}
			if _, ok := ev.(*tcell.EventKey); ok {
				return nil
			}
		}
	}
}

// Draw paints a frame and flushes it with a single Show.
func (t *Terminal) Draw(frame []core.DrawCmd) error {
	for _, cmd := range frame {
		switch cmd.Op {
		case core.OpClear:
			t.screen.Clear()
		case core.OpText:
			style := styleFor(cmd.Color)
			x := cmd.X
			for _, r := range cmd.Text {
				t.screen.SetContent(x, cmd.Y, r, nil, style)
				x++
			}
		}
	}
	t.screen.Show()
	return nil
}

// Close restores the terminal.
func (t *Terminal) Close() {
	t.screen.Fini()
}
