package retroterm

import "context"

// Input implements Terminal for the screen variant. The prompt is
// scanned for embedded codes, the accumulator is cleared, and the call
// blocks until the host delivers Enter through KeyPress. At most one
// request may be outstanding; a second concurrent request fails fast
// with ErrInputPending rather than overwriting the pending completion.
func (s *Screen) Input(ctx context.Context, prompt string) (string, error) {
	s.mu.Lock()
	if s.pending != nil {
		s.mu.Unlock()
		return "", ErrInputPending
	}
	s.mu.Unlock()

	if prompt != "" {
		scan(s, prompt)
	}

	s.mu.Lock()
	if s.pending != nil {
		s.mu.Unlock()
		return "", ErrInputPending
	}
	ch := make(chan string, 1)
	s.pending = ch
	s.accum = s.accum[:0]
	s.mu.Unlock()

	select {
	case text := <-ch:
		return text, nil
	case <-ctx.Done():
		s.mu.Lock()
		if s.pending == ch {
			s.pending = nil
			s.accum = s.accum[:0]
		}
		s.mu.Unlock()
		// Completion may have raced the cancellation.
		select {
		case text := <-ch:
			return text, nil
		default:
		}
		return "", ctx.Err()
	}
}

// InputPending reports whether an input request is outstanding.
func (s *Screen) InputPending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending != nil
}

// KeyPress feeds one translated keystroke into the input state
// machine. Keystrokes while no request is outstanding are ignored.
// Printable runes echo at the cursor and append to the accumulator;
// Backspace erases the last rune; Tab is taken as whitespace; Enter
// line-advances, captures the accumulator and completes the request.
func (s *Screen) KeyPress(r rune) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == nil {
		return
	}
	switch r {
	case KeyEnter:
		s.lineAdvanceLocked()
		text := string(s.accum)
		s.accum = s.accum[:0]
		ch := s.pending
		s.pending = nil
		ch <- text
	case KeyBackspace:
		if len(s.accum) == 0 {
			return
		}
		s.cursorLeftLocked()
		s.grid[s.cursor.Y][s.cursor.X] = s.blankCell()
		s.accum = s.accum[:len(s.accum)-1]
	case KeyTab:
		s.accum = append(s.accum, ' ')
		s.writeRuneLocked(' ')
	default:
		if r < ' ' {
			return
		}
		s.accum = append(s.accum, r)
		s.writeRuneLocked(r)
	}
}
