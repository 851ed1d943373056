// Package retroterm provides a dual-mode text terminal abstraction for
// text-adventure-style programs: a console terminal that emits ANSI
// escapes to a stream, and a screen terminal that renders a fixed
// character grid through a host Surface. Both expose the same color,
// cursor and input operations, and both interpret the {x} embedded
// color codes in output strings.
package retroterm

import (
	"context"
	"errors"

	"pkt.systems/pslog"
)

// Terminal is the operation surface shared by the console and screen
// variants. The façade and the output scanner drive it; implementations
// mutate their own state and emit to their own medium.
type Terminal interface {
	// WriteRune writes one literal glyph at the cursor.
	WriteRune(r rune)
	// LineAdvance moves to column 0 of the next row, scrolling at the
	// last row.
	LineAdvance()
	// Tab advances to column n, line-advancing first when already past
	// it (screen) or jumping the cursor column directly (console).
	Tab(n int)
	// Clear blanks the display and homes the cursor.
	Clear()
	// Reset restores the default colors and disables reverse video.
	Reset()
	// SetForeground sets the foreground color. ColorNone is a no-op.
	SetForeground(c Color)
	// SetBackground sets the background color. ColorNone is a no-op.
	SetBackground(c Color)
	// SetReverse enables or disables reverse video. The two variants
	// implement this differently on purpose: the console keeps a
	// persistent display attribute, the screen swaps its stored color
	// pair.
	SetReverse(on bool)
	// MoveTo places the cursor at a 0-based (col, row) position.
	MoveTo(col, row int)
	Home()
	CursorUp()
	CursorDown()
	CursorLeft()
	CursorRight()
	// Input writes the prompt and blocks until one full line of input
	// is available.
	Input(ctx context.Context, prompt string) (string, error)
}

// Keystroke codes for the non-printable keys the host key translator
// forwards to Screen.KeyPress.
const (
	KeyBackspace rune = 8
	KeyTab       rune = 9
	KeyEnter     rune = 13
)

// Cursor represents a cursor position.
type Cursor struct {
	X int
	Y int
}

// Cell represents one grid position's glyph and color pair.
type Cell struct {
	Rune rune
	FG   Color
	BG   Color
}

var (
	// ErrInputPending is returned when an input request is issued while
	// another one is still outstanding on the same terminal.
	ErrInputPending = errors.New("retroterm: input request already pending")

	// ErrNoLineReader is returned by console input when no line reader
	// is available.
	ErrNoLineReader = errors.New("retroterm: no line reader available")
)

func ensureLogger(logger pslog.Logger) pslog.Logger {
	if logger != nil {
		return logger
	}
	return pslog.LoggerFromEnv()
}
