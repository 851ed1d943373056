// Package tcellhost drives a retroterm screen terminal on a tcell
// screen: the grid is rendered on a fixed tick and translated
// keystrokes are fed back into the screen's input machine.
package tcellhost

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"pkt.systems/pslog"
	"pkt.systems/retroterm"
)

// drawInterval is the redraw tick, ~60 FPS.
const drawInterval = 16 * time.Millisecond

// Options configures a Host.
type Options struct {
	// Term is the screen terminal to drive. Required.
	Term *retroterm.Screen
	// Screen is the tcell screen to render on. A real screen is
	// created and initialized when nil; tests pass a simulation
	// screen.
	Screen tcell.Screen
	// Logger defaults to the environment logger.
	Logger pslog.Logger
}

// Host owns the tcell screen and implements retroterm.Surface.
type Host struct {
	term   *retroterm.Screen
	screen tcell.Screen
	logger pslog.Logger
}

// New constructs a Host and initializes its tcell screen.
func New(opts Options) (*Host, error) {
	if opts.Term == nil {
		return nil, fmt.Errorf("tcellhost: terminal is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = pslog.LoggerFromEnv()
	}

	screen := opts.Screen
	if screen == nil {
		var err error
		screen, err = tcell.NewScreen()
		if err != nil {
			return nil, err
		}
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	h := &Host{
		term:   opts.Term,
		screen: screen,
		logger: logger,
	}
	cols, rows := screen.Size()
	h.term.SetViewport(cols*retroterm.CellWidth, rows*retroterm.CellHeight)
	return h, nil
}

// Fini releases the tcell screen.
func (h *Host) Fini() {
	h.screen.Fini()
}

// SetCell implements retroterm.Surface.
func (h *Host) SetCell(col, row int, r rune, fg, bg retroterm.Color) {
	style := tcell.StyleDefault.
		Foreground(paletteColor(fg)).
		Background(paletteColor(bg))
	h.screen.SetContent(col, row, r, nil, style)
}

// Flush implements retroterm.Surface.
func (h *Host) Flush() {
	h.screen.Show()
}

// Run drives the redraw tick and the event loop until the context is
// canceled, the screen is finalized, or the user interrupts with
// Ctrl-C.
func (h *Host) Run(ctx context.Context) error {
	ticker := time.NewTicker(drawInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				// Screen finalized.
				close(events)
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC {
					h.logger.Debug("interrupt received, leaving host loop")
					return nil
				}
				if r, ok := TranslateKey(ev); ok {
					h.term.KeyPress(r)
				}
			case *tcell.EventResize:
				cols, rows := ev.Size()
				h.term.SetViewport(cols*retroterm.CellWidth, rows*retroterm.CellHeight)
				h.screen.Sync()
			}
		case <-ticker.C:
			h.term.Draw(h)
		}
	}
}

// TranslateKey maps a tcell key event onto the keystroke codes the
// screen input machine understands. Keys of no interest are dropped.
func TranslateKey(ev *tcell.EventKey) (rune, bool) {
	switch ev.Key() {
	case tcell.KeyEnter:
		return retroterm.KeyEnter, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return retroterm.KeyBackspace, true
	case tcell.KeyTab:
		return retroterm.KeyTab, true
	case tcell.KeyRune:
		if r := ev.Rune(); r >= ' ' {
			return r, true
		}
	}
	return 0, false
}

func paletteColor(c retroterm.Color) tcell.Color {
	if c >= retroterm.ColorNone {
		return tcell.ColorDefault
	}
	return tcell.NewHexColor(int32(c.RGB()))
}
