package retroterm

import (
	"context"
	"fmt"
	"strings"
	"testing"
)

// recorderTerm records every operation the scanner invokes, in order.
type recorderTerm struct {
	events []string
}

func (r *recorderTerm) WriteRune(ch rune)     { r.events = append(r.events, "w:"+string(ch)) }
func (r *recorderTerm) LineAdvance()          { r.events = append(r.events, "advance") }
func (r *recorderTerm) Tab(n int)             { r.events = append(r.events, fmt.Sprintf("tab:%d", n)) }
func (r *recorderTerm) Clear()                { r.events = append(r.events, "clear") }
func (r *recorderTerm) Reset()                { r.events = append(r.events, "reset") }
func (r *recorderTerm) SetForeground(c Color) { r.events = append(r.events, "fg:"+c.Name()) }
func (r *recorderTerm) SetBackground(c Color) { r.events = append(r.events, "bg:"+c.Name()) }
func (r *recorderTerm) SetReverse(on bool)    { r.events = append(r.events, fmt.Sprintf("rev:%t", on)) }
func (r *recorderTerm) MoveTo(col, row int)   { r.events = append(r.events, fmt.Sprintf("move:%d,%d", col, row)) }
func (r *recorderTerm) Home()                 { r.events = append(r.events, "home") }
func (r *recorderTerm) CursorUp()             { r.events = append(r.events, "up") }
func (r *recorderTerm) CursorDown()           { r.events = append(r.events, "down") }
func (r *recorderTerm) CursorLeft()           { r.events = append(r.events, "left") }
func (r *recorderTerm) CursorRight()          { r.events = append(r.events, "right") }

func (r *recorderTerm) Input(_ context.Context, _ string) (string, error) {
	return "", nil
}

func TestScanLiteralsAndCodesInOrder(t *testing.T) {
	rec := &recorderTerm{}
	scan(rec, "a{R}bc{_}d")

	want := []string{"w:a", "fg:bright-red", "w:b", "w:c", "reset", "w:d"}
	if got := strings.Join(rec.events, " "); got != strings.Join(want, " ") {
		t.Fatalf("events = %q, want %q", got, strings.Join(want, " "))
	}
}

func TestScanAllRegisteredCodes(t *testing.T) {
	rec := &recorderTerm{}
	scan(rec, "{_}{k}{r}{g}{y}{b}{m}{c}{w}{K}{R}{G}{Y}{B}{M}{C}{W}{V}{v}")

	want := []string{
		"reset",
		"fg:black", "fg:red", "fg:green", "fg:yellow",
		"fg:blue", "fg:magenta", "fg:cyan", "fg:white",
		"fg:bright-black", "fg:bright-red", "fg:bright-green", "fg:bright-yellow",
		"fg:bright-blue", "fg:bright-magenta", "fg:bright-cyan", "fg:bright-white",
		"rev:true", "rev:false",
	}
	if len(rec.events) != len(want) {
		t.Fatalf("got %d events, want %d", len(rec.events), len(want))
	}
	for i := range want {
		if rec.events[i] != want[i] {
			t.Fatalf("event[%d] = %q, want %q", i, rec.events[i], want[i])
		}
	}
}

func TestScanLiteralBraceEscape(t *testing.T) {
	rec := &recorderTerm{}
	scan(rec, "a{{b")

	want := "w:a w:{ w:b"
	if got := strings.Join(rec.events, " "); got != want {
		t.Fatalf("events = %q, want %q", got, want)
	}
}

func TestScanDoubleBraceNeverEntersCodeMode(t *testing.T) {
	rec := &recorderTerm{}
	scan(rec, "{{r}")

	// The '{' is literal, so "r}" stays literal text too.
	want := "w:{ w:r w:}"
	if got := strings.Join(rec.events, " "); got != want {
		t.Fatalf("events = %q, want %q", got, want)
	}
}

func TestScanNewlineTriggersLineAdvance(t *testing.T) {
	rec := &recorderTerm{}
	scan(rec, "a\nb\n")

	want := "w:a advance w:b advance"
	if got := strings.Join(rec.events, " "); got != want {
		t.Fatalf("events = %q, want %q", got, want)
	}
}

func TestScanUnknownCodePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for unknown code")
		}
	}()
	scan(&recorderTerm{}, "{q}")
}
