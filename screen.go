package retroterm

import (
	"fmt"
	"sync"

	"github.com/mattn/go-runewidth"

	"pkt.systems/pslog"
)

// Reference cell size in pixels. Hosts with a pixel-addressed surface
// derive their per-axis scale from it; cell-addressed hosts ignore it.
const (
	CellWidth  = 8
	CellHeight = 8
)

// blinkInterval is the number of Draw calls between cursor blink
// toggles (~0.5 s at a 16 ms tick).
const blinkInterval = 30

// Surface is the host rendering target for a Screen: a fixed-size grid
// of character cells. SetCell paints one cell, background first, then
// the glyph. Flush makes the frame visible.
type Surface interface {
	SetCell(col, row int, r rune, fg, bg Color)
	Flush()
}

// ScreenOptions configures a screen terminal.
type ScreenOptions struct {
	Cols   int
	Rows   int
	Logger pslog.Logger
}

// Screen is the canvas-style terminal: a fixed cols×rows grid of cells
// with a clamped cursor, scroll-by-row-rotation, a blinking draw
// cursor, and an asynchronous input-line accumulator fed by host
// keystroke events.
//
// The host driver goroutine (Draw, KeyPress) and the calling program's
// goroutine (output, Input) share the grid, so every operation takes
// the screen mutex.
type Screen struct {
	mu sync.Mutex

	cols int
	rows int
	grid [][]Cell

	cursor Cursor

	defFG Color
	defBG Color
	fg    Color
	bg    Color

	reversed bool

	pxWidth  int
	pxHeight int

	blinkCount int
	blinkOn    bool

	accum   []rune
	pending chan string

	logger pslog.Logger
}

// NewScreen constructs a screen terminal with the given grid size.
func NewScreen(opts ScreenOptions) *Screen {
	cols := opts.Cols
	if cols <= 0 {
		cols = DefaultCols
	}
	rows := opts.Rows
	if rows <= 0 {
		rows = DefaultRows
	}
	s := &Screen{
		cols:     cols,
		rows:     rows,
		defFG:    White,
		defBG:    Black,
		fg:       White,
		bg:       Black,
		pxWidth:  cols * CellWidth,
		pxHeight: rows * CellHeight,
		blinkOn:  true,
		logger:   ensureLogger(opts.Logger),
	}
	s.grid = newGrid(cols, rows, s.blankCell())
	return s
}

func newGrid(cols, rows int, fill Cell) [][]Cell {
	grid := make([][]Cell, rows)
	for y := range grid {
		row := make([]Cell, cols)
		for x := range row {
			row[x] = fill
		}
		grid[y] = row
	}
	return grid
}

func (s *Screen) blankCell() Cell {
	return Cell{Rune: ' ', FG: s.fg, BG: s.bg}
}

// Size returns the grid dimensions.
func (s *Screen) Size() (cols, rows int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cols, s.rows
}

// CursorPos returns the current cursor position.
func (s *Screen) CursorPos() Cursor {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor
}

// CellAt returns the cell at (col, row).
func (s *Screen) CellAt(col, row int) (Cell, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if col < 0 || row < 0 || col >= s.cols || row >= s.rows {
		return Cell{}, fmt.Errorf("cell out of range")
	}
	return s.grid[row][col], nil
}

// Reconfigure reallocates the grid with new dimensions and homes the
// cursor. Any outstanding content is discarded.
func (s *Screen) Reconfigure(cols, rows int) {
	if cols <= 0 || rows <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cols = cols
	s.rows = rows
	s.grid = newGrid(cols, rows, s.blankCell())
	s.cursor = Cursor{}
	s.pxWidth = cols * CellWidth
	s.pxHeight = rows * CellHeight
}

// SetViewport records the host surface's pixel dimensions, from which
// Scale derives the per-axis scale factors.
func (s *Screen) SetViewport(pxWidth, pxHeight int) {
	if pxWidth <= 0 || pxHeight <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pxWidth = pxWidth
	s.pxHeight = pxHeight
}

// Scale returns the per-axis scale factors: available pixels divided by
// grid cells times the reference cell size.
func (s *Screen) Scale() (sx, sy float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sx = float64(s.pxWidth) / float64(s.cols*CellWidth)
	sy = float64(s.pxHeight) / float64(s.rows*CellHeight)
	return sx, sy
}

// WriteRune implements Terminal: place the glyph at the cursor with the
// current colors, advance, and line-advance at the row end. Wide runes
// occupy two cells.
func (s *Screen) WriteRune(r rune) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writeRuneLocked(r)
}

func (s *Screen) writeRuneLocked(r rune) {
	width := runewidth.RuneWidth(r)
	if width <= 0 {
		width = 1
	}
	if width > s.cols {
		width = 1
	}
	if width == 2 && s.cursor.X == s.cols-1 {
		s.lineAdvanceLocked()
	}
	s.grid[s.cursor.Y][s.cursor.X] = Cell{Rune: r, FG: s.fg, BG: s.bg}
	if width == 2 && s.cursor.X+1 < s.cols {
		s.grid[s.cursor.Y][s.cursor.X+1] = s.blankCell()
	}
	s.cursor.X += width
	if s.cursor.X >= s.cols {
		s.lineAdvanceLocked()
	}
}

// LineAdvance implements Terminal.
func (s *Screen) LineAdvance() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lineAdvanceLocked()
}

func (s *Screen) lineAdvanceLocked() {
	s.cursor.X = 0
	if s.cursor.Y+1 >= s.rows {
		s.scrollLocked()
		s.cursor.Y = s.rows - 1
		return
	}
	s.cursor.Y++
}

// scrollLocked discards row 0 and shifts every other row up by one,
// reusing the vacated row's storage as the new blank last row. No
// allocation per scroll.
func (s *Screen) scrollLocked() {
	top := s.grid[0]
	copy(s.grid, s.grid[1:])
	blank := s.blankCell()
	for x := range top {
		top[x] = blank
	}
	s.grid[s.rows-1] = top
}

// Tab implements Terminal: line-advance first when already past column
// n, then emit spaces until the column reaches min(cols, n).
func (s *Screen) Tab(n int) {
	if n < 0 {
		n = 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cursor.X > n {
		s.lineAdvanceLocked()
	}
	limit := n
	if limit > s.cols {
		limit = s.cols
	}
	for s.cursor.X < limit {
		s.writeRuneLocked(' ')
		if s.cursor.X == 0 {
			// Wrapped at the last column.
			break
		}
	}
}

// Clear implements Terminal: every cell becomes a space in the current
// colors, cursor homes.
func (s *Screen) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	blank := s.blankCell()
	for y := range s.grid {
		for x := range s.grid[y] {
			s.grid[y][x] = blank
		}
	}
	s.cursor = Cursor{}
}

// Reset implements Terminal: restore the recorded default colors.
func (s *Screen) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fg = s.defFG
	s.bg = s.defBG
	s.reversed = false
}

// SetForeground implements Terminal. ColorNone leaves the foreground
// untouched.
func (s *Screen) SetForeground(c Color) {
	if c == ColorNone {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fg = c
}

// SetBackground implements Terminal. ColorNone leaves the background
// untouched.
func (s *Screen) SetBackground(c Color) {
	if c == ColorNone {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bg = c
}

// SetReverse implements Terminal. The screen swaps its stored color
// pair once per transition; later color changes operate on the swapped
// pair.
func (s *Screen) SetReverse(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if on == s.reversed {
		return
	}
	s.fg, s.bg = s.bg, s.fg
	s.reversed = on
}

// MoveTo implements Terminal with clamping to the grid bounds.
func (s *Screen) MoveTo(col, row int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursor.X = clamp(col, 0, s.cols-1)
	s.cursor.Y = clamp(row, 0, s.rows-1)
}

// Home implements Terminal.
func (s *Screen) Home() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursor = Cursor{}
}

// CursorUp implements Terminal.
func (s *Screen) CursorUp() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cursor.Y > 0 {
		s.cursor.Y--
	}
}

// CursorDown implements Terminal.
func (s *Screen) CursorDown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cursor.Y < s.rows-1 {
		s.cursor.Y++
	}
}

// CursorLeft implements Terminal: wraps to the end of the previous row
// on column underflow, clamped at (0,0).
func (s *Screen) CursorLeft() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursorLeftLocked()
}

func (s *Screen) cursorLeftLocked() {
	s.cursor.X--
	if s.cursor.X < 0 {
		s.cursor.X = s.cols - 1
		s.cursor.Y--
		if s.cursor.Y < 0 {
			s.cursor = Cursor{}
		}
	}
}

// CursorRight implements Terminal.
func (s *Screen) CursorRight() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cursor.X < s.cols-1 {
		s.cursor.X++
	}
}

// Draw renders the grid onto the surface: every cell, plus a filled
// cursor block while the blink flag is on. The blink flag toggles every
// blinkInterval draws. Draw never mutates grid, cursor or colors.
func (s *Screen) Draw(surface Surface) {
	s.mu.Lock()
	for y := 0; y < s.rows; y++ {
		for x := 0; x < s.cols; x++ {
			cell := s.grid[y][x]
			surface.SetCell(x, y, cell.Rune, cell.FG, cell.BG)
		}
	}
	if s.blinkOn {
		cell := s.grid[s.cursor.Y][s.cursor.X]
		surface.SetCell(s.cursor.X, s.cursor.Y, cell.Rune, cell.BG, s.fg)
	}
	s.blinkCount++
	if s.blinkCount >= blinkInterval {
		s.blinkCount = 0
		s.blinkOn = !s.blinkOn
	}
	s.mu.Unlock()
	surface.Flush()
}

func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
