package ppu

import "github.com/thelolagemann/gbvideo/internal/ppu/lcd"

// PriorityBuffer records, for every pixel of the screen, whether the
// background or window pixel drawn there takes priority over sprites.
// Accesses outside of the buffer are ignored.
type PriorityBuffer struct {
	width, height int
	cells         []bool
}

// NewPriorityBuffer returns a cleared buffer of the given size.
func NewPriorityBuffer(width, height int) *PriorityBuffer {
	return &PriorityBuffer{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
	}
}

// Width returns the width of the buffer.
func (b *PriorityBuffer) Width() int { return b.width }

// Height returns the height of the buffer.
func (b *PriorityBuffer) Height() int { return b.height }

// Contains reports whether (x, y) lies within the buffer.
func (b *PriorityBuffer) Contains(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set stores v at (x, y), reporting whether the cell exists.
func (b *PriorityBuffer) Set(x, y int, v bool) bool {
	if !b.Contains(x, y) {
		return false
	}
	b.cells[y*b.width+x] = v
	return true
}

// At returns the value stored at (x, y), or false outside the buffer.
func (b *PriorityBuffer) At(x, y int) bool {
	if !b.Contains(x, y) {
		return false
	}
	return b.cells[y*b.width+x]
}

// ClearLine resets every cell of line y.
func (b *PriorityBuffer) ClearLine(y int) {
	if y < 0 || y >= b.height {
		return
	}
	line := b.cells[y*b.width : (y+1)*b.width]
	for i := range line {
		line[i] = false
	}
}

// objAboveBG decides whether a sprite pixel is drawn over the background
// pixel beneath it.
//
// On the monochrome hardware a sprite is hidden only when it asked to be
// behind the background and the background pixel isn't colour 0. On the
// colour hardware LCDC bit 0 takes precedence over everything: when it is
// clear sprites are always drawn. Otherwise a background tile with its
// priority attribute set hides the sprite, and failing that the sprite's
// own priority bit decides.
func (s strategy) objAboveBG(c lcd.Controller, behindBG, bgPriority bool) bool {
	if !s.colour {
		return !behindBG || !bgPriority
	}
	if !c.BackgroundEnabled {
		return true
	}
	if bgPriority {
		return false
	}
	return !behindBG
}
