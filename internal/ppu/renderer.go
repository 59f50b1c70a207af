package ppu

import (
	"github.com/thelolagemann/gbvideo/internal/ppu/background"
	"github.com/thelolagemann/gbvideo/internal/ppu/palette"
)

// RenderBackground draws the background layer of line y from the
// current register state.
func (r *Renderer) RenderBackground(y int) {
	if !onScreen(y) {
		return
	}
	r.renderBackground(r.sample(), y)
}

// RenderWindow draws the window layer of line y from the current
// register state.
func (r *Renderer) RenderWindow(y int) {
	if !onScreen(y) {
		return
	}
	r.renderWindow(r.sample(), y)
}

func (r *Renderer) renderBackground(regs registers, y int) {
	if !r.hw.backgroundDisplayed(regs.lcd) {
		r.blankLine(y)
		return
	}
	if r.Debug.BackgroundDisabled.Load() {
		// nothing is drawn, but sprites still need a clean line
		r.priority.ClearLine(y)
		return
	}

	p := pixel{
		y:        y,
		srcY:     background.Scroll(y, regs.scy),
		mapBase:  r.hw.mapBase(regs.lcd.BackgroundTileMapAddress),
		unsigned: regs.lcd.UnsignedTileData,
	}
	for x := 0; x < ScreenWidth; x++ {
		r.emit(r.resolve(p.at(x, background.Scroll(x, regs.scx)), regs.bgp), x, y)
	}
}

func (r *Renderer) renderWindow(regs registers, y int) {
	if !r.hw.windowDisplayed(regs.lcd) || r.Debug.WindowDisabled.Load() {
		return
	}
	w := background.NewWindow(regs.wx, regs.wy)
	if !w.Visible(y) {
		return
	}

	_, srcY := w.Source(0, y)
	p := pixel{
		y:        y,
		srcY:     srcY,
		mapBase:  r.hw.mapBase(regs.lcd.WindowTileMapAddress),
		unsigned: regs.lcd.UnsignedTileData,
	}
	for x := w.Left(ScreenWidth); x < ScreenWidth; x++ {
		srcX, _ := w.Source(x, y)
		r.emit(r.resolve(p.at(x, srcX), regs.bgp), x, y)
	}
}

// emit records the priority of a resolved texel and draws it.
func (r *Renderer) emit(t texel, x, y int) {
	if !r.priority.Set(x, y, t.priority) {
		return
	}
	if r.hw.colour {
		r.drawRGB(t.rgb, x, y)
	} else {
		r.drawShade(t.shade, x, y)
	}
}

// blankLine paints line y with the colour shown when the background is
// off: the lightest shade, or black on the colour hardware.
func (r *Renderer) blankLine(y int) {
	r.priority.ClearLine(y)
	for x := 0; x < ScreenWidth; x++ {
		if r.hw.colour {
			r.drawRGB(palette.RGB{}, x, y)
		} else {
			r.drawShade(palette.Lightest, x, y)
		}
	}
}
