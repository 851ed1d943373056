package retroterm

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func testConsole(in string) (*Console, *bytes.Buffer) {
	var buf bytes.Buffer
	c := NewConsole(ConsoleOptions{
		Output: &buf,
		Input:  strings.NewReader(in),
		Logger: discardLogger(),
	})
	return c, &buf
}

func TestConsoleForegroundEscapes(t *testing.T) {
	c, buf := testConsole("")
	c.SetForeground(Red)
	if got := buf.String(); got != "\x1b[31m" {
		t.Fatalf("output = %q, want %q", got, "\x1b[31m")
	}
	buf.Reset()
	c.SetForeground(BrightWhite)
	if got := buf.String(); got != "\x1b[97m" {
		t.Fatalf("output = %q, want %q", got, "\x1b[97m")
	}
}

func TestConsoleBackgroundEscapes(t *testing.T) {
	c, buf := testConsole("")
	c.SetBackground(Blue)
	if got := buf.String(); got != "\x1b[44m" {
		t.Fatalf("output = %q, want %q", got, "\x1b[44m")
	}
	buf.Reset()
	c.SetBackground(BrightCyan)
	if got := buf.String(); got != "\x1b[106m" {
		t.Fatalf("output = %q, want %q", got, "\x1b[106m")
	}
}

func TestConsoleSentinelEmitsNothing(t *testing.T) {
	c, buf := testConsole("")
	c.SetForeground(ColorNone)
	c.SetBackground(ColorNone)
	if buf.Len() != 0 {
		t.Fatalf("output = %q, want empty", buf.String())
	}
}

func TestConsoleReverseIsAnAttribute(t *testing.T) {
	c, buf := testConsole("")
	c.SetReverse(true)
	if got := buf.String(); got != "\x1b[7m" {
		t.Fatalf("output = %q, want %q", got, "\x1b[7m")
	}
	buf.Reset()
	// Color changes do not clear the attribute; only SetReverse(false)
	// does.
	c.SetForeground(Green)
	c.SetReverse(false)
	if got := buf.String(); got != "\x1b[32m\x1b[27m" {
		t.Fatalf("output = %q, want %q", got, "\x1b[32m\x1b[27m")
	}
}

func TestConsoleResetRestoresDefaults(t *testing.T) {
	c, buf := testConsole("")
	c.SetForeground(Red)
	c.SetBackground(Blue)
	buf.Reset()
	c.Reset()
	if got := buf.String(); got != "\x1b[0m\x1b[37m\x1b[40m" {
		t.Fatalf("output = %q, want reset plus default colors", got)
	}
}

func TestConsoleCursorEscapes(t *testing.T) {
	c, buf := testConsole("")
	c.MoveTo(4, 2)
	if got := buf.String(); got != "\x1b[3;5H" {
		t.Fatalf("MoveTo output = %q", got)
	}
	buf.Reset()
	c.Tab(10)
	if got := buf.String(); got != "\x1b[11G" {
		t.Fatalf("Tab output = %q", got)
	}
	buf.Reset()
	c.CursorUp()
	c.CursorDown()
	c.CursorLeft()
	c.CursorRight()
	if got := buf.String(); got != "\x1b[A\x1b[B\x1b[D\x1b[C" {
		t.Fatalf("cursor output = %q", got)
	}
}

func TestConsoleClear(t *testing.T) {
	c, buf := testConsole("")
	c.Clear()
	if got := buf.String(); got != ansiClearScreen+ansiHome {
		t.Fatalf("output = %q", got)
	}
}

func TestConsoleInputReadsLine(t *testing.T) {
	c, buf := testConsole("hello\r\nnext\n")
	line, err := c.Input(context.Background(), "{C}? {W}")
	if err != nil {
		t.Fatalf("Input: %v", err)
	}
	if line != "hello" {
		t.Fatalf("line = %q, want %q", line, "hello")
	}
	// The prompt was scanned: color escapes plus the literal text.
	if got := buf.String(); got != "\x1b[96m? \x1b[97m" {
		t.Fatalf("prompt output = %q", got)
	}

	line, err = c.Input(context.Background(), "")
	if err != nil {
		t.Fatalf("Input: %v", err)
	}
	if line != "next" {
		t.Fatalf("line = %q, want %q", line, "next")
	}
}

func TestConsoleInputLastLineWithoutNewline(t *testing.T) {
	c, _ := testConsole("partial")
	line, err := c.Input(context.Background(), "")
	if err != nil {
		t.Fatalf("Input: %v", err)
	}
	if line != "partial" {
		t.Fatalf("line = %q, want %q", line, "partial")
	}
}

func TestConsoleInputWithoutReader(t *testing.T) {
	var buf bytes.Buffer
	c := &Console{out: &buf, defFG: White, defBG: Black, fg: White, bg: Black}
	if _, err := c.Input(context.Background(), ""); err != ErrNoLineReader {
		t.Fatalf("err = %v, want ErrNoLineReader", err)
	}
}

func TestConsoleWriteAndNewline(t *testing.T) {
	c, buf := testConsole("")
	c.WriteRune('A')
	c.LineAdvance()
	if got := buf.String(); got != "A\n" {
		t.Fatalf("output = %q", got)
	}
}
