// Package background provides the scroll and window geometry of the
// Game Boy's background layers.
package background

const (
	// Size is the width and height of the background map in pixels.
	// It is made up of 32x32 tiles of 8x8 pixels, and as the display
	// only has 160x144 pixels, the background is scrolled to display
	// different parts of the map.
	Size = 256
	// TilesPerRow is the number of tile indexes in each map row.
	TilesPerRow = 32
	// WindowXOffset is the amount the WX register is offset by.
	WindowXOffset = 7
)

// Scroll returns the background coordinate shown at the given screen
// coordinate when scrolled by the given register value, wrapping
// around the 256 pixel map.
func Scroll(screen int, scroll uint8) int {
	return (screen + int(scroll)) % Size
}

// Window represents the window layer's position on screen, as derived
// from the WX and WY registers.
type Window struct {
	// X is the window's left edge. It may be negative when WX < 7.
	X int
	// Y is the window's top edge.
	Y int
}

// NewWindow returns the window for the given register values.
func NewWindow(wx, wy uint8) Window {
	return Window{
		X: int(wx) - WindowXOffset,
		Y: int(wy),
	}
}

// Visible reports whether the window covers the given screen line.
func (w Window) Visible(line int) bool {
	return line >= w.Y
}

// Left returns the first screen column covered by the window, clamped
// into [0, width]. A result of width means the window is entirely off
// screen for the line.
func (w Window) Left(width int) int {
	switch {
	case w.X < 0:
		return 0
	case w.X > width:
		return width
	}
	return w.X
}

// Source returns the window-relative coordinate for the given screen
// coordinate.
func (w Window) Source(x, line int) (int, int) {
	return x - w.X, line - w.Y
}
