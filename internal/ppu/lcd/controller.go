package lcd

import (
	"github.com/thelolagemann/gbvideo/internal/types"
)

// Controller is the decoded LCD control register. It is sampled once
// per pass from the LCDC register (0xFF40) and describes how the
// background, window and sprites should be drawn.
//
// Its value is stored in the LCD Control Register (0xFF40) as follows:
//
//	Bit 7 - LCD Enable             (0=Off, 1=On)
//	Bit 6 - Window Tile Map Display Select (0=9800-9BFF, 1=9C00-9FFF)
//	Bit 5 - Window Display Enable          (0=Off, 1=On)
//	Bit 4 - BG & Window Tile Data Select   (0=8800-97FF, 1=8000-8FFF)
//	Bit 3 - BG Tile Map Display Select     (0=9800-9BFF, 1=9C00-9FFF)
//	Bit 2 - OBJ (Sprite) Size              (0=8x8, 1=8x16)
//	Bit 1 - OBJ (Sprite) Display Enable    (0=Off, 1=On)
//	Bit 0 - BG/Window Display/Priority     (0=Off, 1=On)
type Controller struct {
	// Enabled is the LCD Enable bit. When set, the LCD is enabled.
	Enabled bool
	// WindowTileMapAddress represents the Window Tile Map Display Select bit.
	// For convenience, this is stored as the start address of the tile map
	// in the monochrome address space.
	//	(0=9800-9BFF)
	//  (1=9C00-9FFF)
	WindowTileMapAddress types.Address
	// WindowEnabled is the Window Display Enable bit.
	WindowEnabled bool
	// UnsignedTileData represents the BG & Window Tile Data Select bit.
	// When set, tile indexes are unsigned offsets from 0x8000. Otherwise
	// they are signed offsets from 0x9000.
	UnsignedTileData bool
	// BackgroundTileMapAddress represents the BG Tile Map Display Select bit.
	//	(0=9800-9BFF)
	//  (1=9C00-9FFF)
	BackgroundTileMapAddress types.Address
	// SpriteSize is the OBJ (Sprite) Size bit. It is 8 when the bit is
	// reset, and 16 when the bit is set.
	SpriteSize int
	// SpriteEnabled is the OBJ (Sprite) Display Enable bit.
	SpriteEnabled bool
	// BackgroundEnabled is the BG/Window Display/Priority bit. On the
	// monochrome hardware it blanks the background and window, on the
	// colour hardware it strips them of their priority over sprites.
	BackgroundEnabled bool
}

// NewController decodes the given LCDC value.
func NewController(value uint8) Controller {
	c := Controller{
		Enabled:                  types.Test(value, 7),
		WindowTileMapAddress:     types.TileMap0,
		WindowEnabled:            types.Test(value, 5),
		UnsignedTileData:         types.Test(value, 4),
		BackgroundTileMapAddress: types.TileMap0,
		SpriteSize:               8 + int(types.Val(value, 2))*8,
		SpriteEnabled:            types.Test(value, 1),
		BackgroundEnabled:        types.Test(value, 0),
	}
	if types.Test(value, 6) {
		c.WindowTileMapAddress = types.TileMap1
	}
	if types.Test(value, 3) {
		c.BackgroundTileMapAddress = types.TileMap1
	}
	return c
}

// Byte encodes the controller back into its register value.
func (c Controller) Byte() uint8 {
	var value uint8
	if c.Enabled {
		value |= types.Bit7
	}
	if c.WindowTileMapAddress == types.TileMap1 {
		value |= types.Bit6
	}
	if c.WindowEnabled {
		value |= types.Bit5
	}
	if c.UnsignedTileData {
		value |= types.Bit4
	}
	if c.BackgroundTileMapAddress == types.TileMap1 {
		value |= types.Bit3
	}
	if c.SpriteSize == 16 {
		value |= types.Bit2
	}
	if c.SpriteEnabled {
		value |= types.Bit1
	}
	if c.BackgroundEnabled {
		value |= types.Bit0
	}
	return value
}
