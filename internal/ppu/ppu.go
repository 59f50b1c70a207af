package ppu

import (
	"sync/atomic"

	"github.com/thelolagemann/gbvideo/internal/ppu/lcd"
	"github.com/thelolagemann/gbvideo/internal/ppu/palette"
	"github.com/thelolagemann/gbvideo/internal/types"
	"github.com/thelolagemann/gbvideo/pkg/log"
)

const (
	// ScreenWidth is the width of the screen in pixels.
	ScreenWidth = 160
	// ScreenHeight is the height of the screen in pixels.
	ScreenHeight = 144
)

// Bus is the read-only view of emulated memory the renderer draws
// from. Implementations are expected to clamp invalid addresses
// themselves.
type Bus interface {
	Read(address types.Address) uint8
}

// Screen receives the pixels produced by the renderer. Monochrome
// pixels are emitted as shades, colour pixels as RGB triples.
type Screen interface {
	OnPreDraw()
	OnPostDraw()
	DrawShade(shade palette.Shade, x, y int)
	DrawRGB(r, g, b uint8, x, y int)
	OnRefresh()
	OnClear()
}

// Renderer implements the Game Boy's picture generation, one scanline
// at a time, from the registers and VRAM visible on its Bus.
//
// A Renderer is not safe for concurrent use: RenderLine is expected to
// be called sequentially by the emulation loop.
//
// References:
//   - [Pan Docs](https://gbdev.io/pandocs/Graphics.html)
type Renderer struct {
	bus    Bus
	screen Screen
	log    log.Logger

	model       types.Model
	hw          strategy
	spriteLimit int

	priority *PriorityBuffer
	sprites  []SpriteEntry

	// Debug controls
	Debug struct {
		BackgroundDisabled atomic.Bool
		WindowDisabled     atomic.Bool
		SpritesDisabled    atomic.Bool
	}
}

// New returns a Renderer reading from bus. Unless configured otherwise
// with AsModel, it renders as the monochrome hardware.
func New(bus Bus, opts ...Opt) *Renderer {
	r := &Renderer{
		bus:      bus,
		log:      log.NewNullLogger(),
		model:    types.DMG,
		priority: NewPriorityBuffer(ScreenWidth, ScreenHeight),
		sprites:  make([]SpriteEntry, 0, spriteCount),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.hw = newStrategy(r.model)
	r.log.Debugf("ppu: rendering as %s (sprite limit %d)", r.model, r.spriteLimit)

	return r
}

// SetScreen replaces the screen pixels are emitted to. A nil screen
// discards them.
func (r *Renderer) SetScreen(s Screen) {
	r.screen = s
}

// Model returns the hardware model the renderer was created for.
func (r *Renderer) Model() types.Model {
	return r.model
}

// Priority returns the renderer's priority buffer.
func (r *Renderer) Priority() *PriorityBuffer {
	return r.priority
}

// RenderLine draws the given scanline: the sprite set for the line is
// rebuilt, then the background, window and sprites are drawn in that
// order between the screen's pre and post draw hooks.
func (r *Renderer) RenderLine(y int) {
	if !onScreen(y) {
		r.log.Debugf("ppu: ignoring render of line %d", y)
		return
	}
	if r.screen != nil {
		r.screen.OnPreDraw()
	}

	regs := r.sample()
	r.orderSprites(regs, y)
	r.renderBackground(regs, y)
	r.renderWindow(regs, y)
	r.renderSprites(regs, y)

	if r.screen != nil {
		r.screen.OnPostDraw()
	}
}

// RefreshFrame notifies the screen that a frame is complete.
func (r *Renderer) RefreshFrame() {
	if r.screen != nil {
		r.screen.OnRefresh()
	}
}

// ClearScreen notifies the screen that it should be cleared.
func (r *Renderer) ClearScreen() {
	if r.screen != nil {
		r.screen.OnClear()
	}
}

// registers is the register state a pass is drawn from, sampled once
// so that every pixel of a line sees the same values.
type registers struct {
	lcd             lcd.Controller
	scx, scy        uint8
	wx, wy          uint8
	bgp, obp0, obp1 palette.Shades
}

func (r *Renderer) sample() registers {
	return registers{
		lcd:  lcd.NewController(r.bus.Read(types.LCDC)),
		scx:  r.bus.Read(types.SCX),
		scy:  r.bus.Read(types.SCY),
		wx:   r.bus.Read(types.WX),
		wy:   r.bus.Read(types.WY),
		bgp:  palette.ByteToShades(r.bus.Read(types.BGP)),
		obp0: palette.ByteToShades(r.bus.Read(types.OBP0)),
		obp1: palette.ByteToShades(r.bus.Read(types.OBP1)),
	}
}

func onScreen(y int) bool {
	return y >= 0 && y < ScreenHeight
}

func (r *Renderer) drawShade(s palette.Shade, x, y int) {
	if r.screen == nil || !r.priority.Contains(x, y) {
		return
	}
	r.screen.DrawShade(s, x, y)
}

func (r *Renderer) drawRGB(c palette.RGB, x, y int) {
	if r.screen == nil || !r.priority.Contains(x, y) {
		return
	}
	r.screen.DrawRGB(c[0], c[1], c[2], x, y)
}
