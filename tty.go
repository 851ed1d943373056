package retroterm

import (
	"context"
	"strconv"
	"strings"
)

const delayMessage = "{w}-- press return --"

// TTY is the caller-facing façade over a terminal handle. All output
// passes through the embedded-code scanner, so strings may carry {x}
// color codes and "{{" literal braces.
type TTY struct {
	term Terminal
}

// New wraps a terminal in a TTY façade.
func New(term Terminal) *TTY {
	return &TTY{term: term}
}

// Terminal returns the underlying terminal handle.
func (t *TTY) Terminal() Terminal {
	return t.term
}

// Print writes the arguments in order, interpreting embedded codes.
func (t *TTY) Print(args ...string) {
	for _, s := range args {
		scan(t.term, s)
	}
}

// Println writes the arguments followed by a line advance.
func (t *TTY) Println(args ...string) {
	t.Print(args...)
	t.term.LineAdvance()
}

// ColorPair sets the foreground and background colors. Pass ColorNone
// to leave a channel unchanged.
func (t *TTY) ColorPair(fg, bg Color) {
	t.term.SetForeground(fg)
	t.term.SetBackground(bg)
}

// Reset restores the default colors and clears reverse video.
func (t *TTY) Reset() {
	t.term.Reset()
}

// Clear blanks the display and homes the cursor.
func (t *TTY) Clear() {
	t.term.Clear()
}

// XY moves the cursor to a 0-based (col, row) position.
func (t *TTY) XY(col, row int) {
	t.term.MoveTo(col, row)
}

// YX moves the cursor to a 0-based (row, col) position.
func (t *TTY) YX(row, col int) {
	t.term.MoveTo(col, row)
}

// Home moves the cursor to (0,0).
func (t *TTY) Home() {
	t.term.Home()
}

// Up moves the cursor up one row.
func (t *TTY) Up() {
	t.term.CursorUp()
}

// Down moves the cursor down one row.
func (t *TTY) Down() {
	t.term.CursorDown()
}

// Left moves the cursor left one column.
func (t *TTY) Left() {
	t.term.CursorLeft()
}

// Right moves the cursor right one column.
func (t *TTY) Right() {
	t.term.CursorRight()
}

// Reverse enables reverse video.
func (t *TTY) Reverse() {
	t.term.SetReverse(true)
}

// ReverseOff disables reverse video.
func (t *TTY) ReverseOff() {
	t.term.SetReverse(false)
}

// Tab advances the cursor to column n.
func (t *TTY) Tab(n int) {
	t.term.Tab(n)
}

// Input requests one line of input after printing the prompt.
func (t *TTY) Input(ctx context.Context, prompt string) (string, error) {
	return t.term.Input(ctx, prompt)
}

// InputYN asks until the response is exactly "y" or "n". Invalid
// responses re-prompt; there is no retry cap.
func (t *TTY) InputYN(ctx context.Context, prompt string) (bool, error) {
	for {
		line, err := t.term.Input(ctx, prompt)
		if err != nil {
			return false, err
		}
		switch line {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}
	}
}

// InputNumber asks until the response parses as an integer within
// [min, max] inclusive. Invalid responses re-prompt; there is no retry
// cap.
func (t *TTY) InputNumber(ctx context.Context, prompt string, min, max int) (int, error) {
	for {
		line, err := t.term.Input(ctx, prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			continue
		}
		if n < min || n > max {
			continue
		}
		return n, nil
	}
}

// Delay prints the continue message and waits for return.
func (t *TTY) Delay(ctx context.Context) error {
	_, err := t.term.Input(ctx, delayMessage)
	return err
}

// Hello prints the standard three-line program banner.
func (t *TTY) Hello(source, title, version string) {
	t.Println("{W}", title)
	t.Println("{w}", source, " ", version)
	t.Println()
}
