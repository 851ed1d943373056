package retroterm

import "fmt"

// Color identifies one of the sixteen palette colors, or the ColorNone
// sentinel meaning "leave this channel unchanged".
type Color uint8

// The sixteen palette colors plus the sentinel. Codes 0-7 are the dark
// colors, 8-15 the bright variants.
const (
	Black Color = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
	// ColorNone leaves the current color untouched when passed to
	// SetForeground or SetBackground. It is never stored in a cell.
	ColorNone
)

var colorRGB = [16]uint32{
	0x000000, 0xaa0000, 0x00aa00, 0xaa5500,
	0x0000aa, 0xaa00aa, 0x00aaaa, 0xaaaaaa,
	0x555555, 0xff5555, 0x55ff55, 0xffff55,
	0x5555ff, 0xff55ff, 0x55ffff, 0xffffff,
}

var colorNames = [17]string{
	"black", "red", "green", "yellow",
	"blue", "magenta", "cyan", "white",
	"bright-black", "bright-red", "bright-green", "bright-yellow",
	"bright-blue", "bright-magenta", "bright-cyan", "bright-white",
	"none",
}

// Code returns the numeric palette code (0-16).
func (c Color) Code() int {
	return int(c)
}

// RGB returns the display value as 0xRRGGBB. ColorNone has no display
// value and returns 0.
func (c Color) RGB() uint32 {
	if c >= ColorNone {
		return 0
	}
	return colorRGB[c]
}

// Hex returns the display value as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%06x", c.RGB())
}

// Name returns the symbolic color name.
func (c Color) Name() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "invalid"
}

func (c Color) String() string {
	return c.Name()
}
