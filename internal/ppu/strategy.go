package ppu

import (
	"github.com/thelolagemann/gbvideo/internal/ppu/lcd"
	"github.com/thelolagemann/gbvideo/internal/types"
)

// strategy holds everything that differs between the monochrome and
// colour hardware. It is resolved once, when the Renderer is created.
type strategy struct {
	colour bool
	// vram is the address that 0x8000 of VRAM bank 0 is visible at on
	// the bus.
	vram types.Address
}

func newStrategy(m types.Model) strategy {
	if m.IsColour() {
		return strategy{colour: true, vram: types.VRAMOffset}
	}
	return strategy{vram: types.TileData}
}

// mapBase rebases the tile map address selected by LCDC onto VRAM.
func (s strategy) mapBase(m types.Address) types.Address {
	return m - types.TileData + s.vram
}

// tileAddress returns the address of the first byte of the given tile in
// bank 0, using either the unsigned (0x8000) or signed (0x9000) method.
func (s strategy) tileAddress(index uint8, unsigned bool) types.Address {
	addr := types.TileData + types.Address(index)*16
	if !unsigned {
		addr = types.Address(int32(types.TileDataSigned) + int32(int8(index))*16)
	}
	return addr - types.TileData + s.vram
}

// bank returns the offset of the given VRAM bank. The monochrome
// hardware only has bank 0.
func (s strategy) bank(b uint8) types.Address {
	if s.colour && b&1 == 1 {
		return types.VRAMBankSize
	}
	return 0
}

// backgroundDisplayed reports whether the background is drawn from the
// tile map. When it isn't, the line is painted with the blank colour.
func (s strategy) backgroundDisplayed(c lcd.Controller) bool {
	return c.Enabled && (s.colour || c.BackgroundEnabled)
}

// windowDisplayed reports whether the window layer is drawn.
func (s strategy) windowDisplayed(c lcd.Controller) bool {
	return c.Enabled && c.WindowEnabled && (s.colour || c.BackgroundEnabled)
}
