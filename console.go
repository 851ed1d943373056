package retroterm

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"pkt.systems/pslog"
)

const (
	ansiClearScreen = "\x1b[2J"
	ansiHome        = "\x1b[H"
	ansiReset       = "\x1b[0m"
	ansiReverseOn   = "\x1b[7m"
	ansiReverseOff  = "\x1b[27m"
)

// ConsoleOptions configures a console terminal.
type ConsoleOptions struct {
	// Output receives the ANSI byte stream. Defaults to os.Stdout.
	Output io.Writer
	// Input supplies line input. Defaults to os.Stdin.
	Input io.Reader
	// Logger receives startup warnings. Defaults to the environment
	// logger.
	Logger pslog.Logger
}

// Console drives an ANSI-capable terminal stream. Colors and reverse
// video are emitted as SGR sequences; cursor movement as direct
// escapes. Line input delegates to a buffered reader over the
// configured input.
type Console struct {
	out    io.Writer
	reader *bufio.Reader

	defFG Color
	defBG Color
	fg    Color
	bg    Color

	reverse bool

	logger pslog.Logger
}

// NewConsole constructs a console terminal. When the input stream is
// not a terminal that is reported once as a warning; canvas mode does
// not need a line reader, console input does.
func NewConsole(opts ConsoleOptions) *Console {
	logger := ensureLogger(opts.Logger)

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	in := opts.Input
	if in == nil {
		in = os.Stdin
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			logger.Warn("stdin is not a terminal; console line input may be unavailable")
		}
	}

	c := &Console{
		out:    out,
		defFG:  White,
		defBG:  Black,
		fg:     White,
		bg:     Black,
		logger: logger,
	}
	if in != nil {
		c.reader = bufio.NewReader(in)
	}
	return c
}

// WriteRune implements Terminal.
func (c *Console) WriteRune(r rune) {
	_, _ = io.WriteString(c.out, string(r))
}

// LineAdvance implements Terminal. The console relies on the stream's
// native newline handling.
func (c *Console) LineAdvance() {
	_, _ = io.WriteString(c.out, "\n")
}

// Tab implements Terminal: a direct cursor-column-set escape, no
// wrapping.
func (c *Console) Tab(n int) {
	if n < 0 {
		n = 0
	}
	_, _ = fmt.Fprintf(c.out, "\x1b[%dG", n+1)
}

// Clear implements Terminal.
func (c *Console) Clear() {
	_, _ = io.WriteString(c.out, ansiClearScreen+ansiHome)
}

// Reset implements Terminal: restores the recorded default colors and
// clears the reverse attribute.
func (c *Console) Reset() {
	c.fg = c.defFG
	c.bg = c.defBG
	c.reverse = false
	_, _ = io.WriteString(c.out, ansiReset+sgrForeground(c.fg)+sgrBackground(c.bg))
}

// SetForeground implements Terminal. ColorNone leaves the foreground
// untouched.
func (c *Console) SetForeground(col Color) {
	if col == ColorNone {
		return
	}
	c.fg = col
	_, _ = io.WriteString(c.out, sgrForeground(col))
}

// SetBackground implements Terminal. ColorNone leaves the background
// untouched.
func (c *Console) SetBackground(col Color) {
	if col == ColorNone {
		return
	}
	c.bg = col
	_, _ = io.WriteString(c.out, sgrBackground(col))
}

// SetReverse implements Terminal. The console keeps reverse video as a
// display attribute: it persists independently of later color changes.
func (c *Console) SetReverse(on bool) {
	c.reverse = on
	if on {
		_, _ = io.WriteString(c.out, ansiReverseOn)
		return
	}
	_, _ = io.WriteString(c.out, ansiReverseOff)
}

// MoveTo implements Terminal with a 0-based position.
func (c *Console) MoveTo(col, row int) {
	if col < 0 {
		col = 0
	}
	if row < 0 {
		row = 0
	}
	_, _ = fmt.Fprintf(c.out, "\x1b[%d;%dH", row+1, col+1)
}

// Home implements Terminal.
func (c *Console) Home() {
	_, _ = io.WriteString(c.out, ansiHome)
}

// CursorUp implements Terminal.
func (c *Console) CursorUp() {
	_, _ = io.WriteString(c.out, "\x1b[A")
}

// CursorDown implements Terminal.
func (c *Console) CursorDown() {
	_, _ = io.WriteString(c.out, "\x1b[B")
}

// CursorLeft implements Terminal.
func (c *Console) CursorLeft() {
	_, _ = io.WriteString(c.out, "\x1b[D")
}

// CursorRight implements Terminal.
func (c *Console) CursorRight() {
	_, _ = io.WriteString(c.out, "\x1b[C")
}

// Input implements Terminal: the prompt is scanned for embedded codes,
// then the call blocks on the line reader.
func (c *Console) Input(ctx context.Context, prompt string) (string, error) {
	if c.reader == nil {
		return "", ErrNoLineReader
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if prompt != "" {
		scan(c, prompt)
	}
	line, err := c.reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func sgrForeground(c Color) string {
	if c < BrightBlack {
		return fmt.Sprintf("\x1b[%dm", 30+c.Code())
	}
	return fmt.Sprintf("\x1b[%dm", 90+c.Code()-8)
}

func sgrBackground(c Color) string {
	if c < BrightBlack {
		return fmt.Sprintf("\x1b[%dm", 40+c.Code())
	}
	return fmt.Sprintf("\x1b[%dm", 100+c.Code()-8)
}
