package retroterm

import (
	"context"
	"testing"
)

// scriptedTerm queues canned input responses and records prompts.
type scriptedTerm struct {
	recorderTerm
	responses []string
	prompts   []string
}

func (s *scriptedTerm) Input(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if len(s.responses) == 0 {
		return "", nil
	}
	line := s.responses[0]
	s.responses = s.responses[1:]
	return line, nil
}

func TestInputYNRetriesUntilValid(t *testing.T) {
	term := &scriptedTerm{responses: []string{"maybe", "Y", "y"}}
	tty := New(term)

	ok, err := tty.InputYN(context.Background(), "Continue? ")
	if err != nil {
		t.Fatalf("InputYN: %v", err)
	}
	if !ok {
		t.Fatalf("InputYN = false, want true")
	}
	// "maybe" and "Y" are both invalid; only exact "y" resolves.
	if len(term.prompts) != 3 {
		t.Fatalf("prompt count = %d, want 3", len(term.prompts))
	}
}

func TestInputYNNo(t *testing.T) {
	term := &scriptedTerm{responses: []string{"n"}}
	tty := New(term)

	ok, err := tty.InputYN(context.Background(), "")
	if err != nil {
		t.Fatalf("InputYN: %v", err)
	}
	if ok {
		t.Fatalf("InputYN = true, want false")
	}
}

func TestInputNumberRetriesUntilInRange(t *testing.T) {
	term := &scriptedTerm{responses: []string{"9", "2"}}
	tty := New(term)

	n, err := tty.InputNumber(context.Background(), "Pick 1-3", 1, 3)
	if err != nil {
		t.Fatalf("InputNumber: %v", err)
	}
	if n != 2 {
		t.Fatalf("InputNumber = %d, want 2", n)
	}
	if len(term.prompts) != 2 {
		t.Fatalf("prompt count = %d, want 2", len(term.prompts))
	}
}

func TestInputNumberRejectsGarbage(t *testing.T) {
	term := &scriptedTerm{responses: []string{"x", "", "3"}}
	tty := New(term)

	n, err := tty.InputNumber(context.Background(), "", 1, 3)
	if err != nil {
		t.Fatalf("InputNumber: %v", err)
	}
	if n != 3 {
		t.Fatalf("InputNumber = %d, want 3", n)
	}
}

func TestPrintlnAdvancesOnce(t *testing.T) {
	term := &scriptedTerm{}
	tty := New(term)
	tty.Println("ab")

	want := []string{"w:a", "w:b", "advance"}
	if len(term.events) != len(want) {
		t.Fatalf("events = %v, want %v", term.events, want)
	}
}

func TestColorPairSentinel(t *testing.T) {
	term := &scriptedTerm{}
	tty := New(term)
	tty.ColorPair(ColorNone, Blue)

	// Both channels are forwarded; the terminal ignores the sentinel.
	want := []string{"fg:none", "bg:blue"}
	for i := range want {
		if term.events[i] != want[i] {
			t.Fatalf("event[%d] = %q, want %q", i, term.events[i], want[i])
		}
	}
}

func TestDelayPromptsAndWaits(t *testing.T) {
	term := &scriptedTerm{responses: []string{""}}
	tty := New(term)
	if err := tty.Delay(context.Background()); err != nil {
		t.Fatalf("Delay: %v", err)
	}
	if len(term.prompts) != 1 || term.prompts[0] != delayMessage {
		t.Fatalf("prompts = %v, want the delay message", term.prompts)
	}
}

func TestHelloPrintsThreeLines(t *testing.T) {
	term := &scriptedTerm{}
	tty := New(term)
	tty.Hello("pkt.systems", "GUESS", "v1")

	advances := 0
	for _, e := range term.events {
		if e == "advance" {
			advances++
		}
	}
	if advances != 3 {
		t.Fatalf("line advances = %d, want 3", advances)
	}
}
