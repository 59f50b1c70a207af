package ppu

import (
	"github.com/thelolagemann/gbvideo/internal/ppu/background"
	"github.com/thelolagemann/gbvideo/internal/ppu/palette"
	"github.com/thelolagemann/gbvideo/internal/types"
)

// Tile represents a tile. Each tile has a size of 8x8 pixels and a color
// depth of 4 colors/gray shades. Tiles can be displayed as sprites or as
// background/window tiles.
type Tile [8][8]uint8

// NewTile decodes the 16 bytes of a tile into its colour indices.
func NewTile(b [16]uint8) *Tile {
	t := Tile{}
	for tileY := 0; tileY < 8; tileY++ {
		row := TileRow{Low: b[tileY*2], High: b[tileY*2+1]}
		for tileX := 0; tileX < 8; tileX++ {
			t[tileY][tileX] = row.Colour(tileX)
		}
	}

	return &t
}

// TileRow is a single row of a tile, stored as two bit planes. Bit 7 of
// each plane holds the leftmost pixel.
type TileRow struct {
	Low  uint8
	High uint8
}

// Colour returns the colour index (0-3) of the pixel at column x.
func (r TileRow) Colour(x int) uint8 {
	bit := uint(7 - x&7)
	return (r.High>>bit&1)<<1 | r.Low>>bit&1
}

// TileAttributes is the CGB attribute byte stored in VRAM bank 1 for
// each cell of a tile map.
type TileAttributes struct {
	// UseBGPriority is the BG Priority bit. When set, the tile is displayed
	// in front of sprites, regardless of the sprite's own priority.
	UseBGPriority bool
	// YFlip is the Y Flip bit. When set, the tile is flipped vertically.
	YFlip bool
	// XFlip is the X Flip bit. When set, the tile is flipped horizontally.
	XFlip bool
	// PaletteNumber is the Palette Number bit. It specifies the palette
	// number (0-7) that is used to determine the tile's colors.
	PaletteNumber uint8
	// VRAMBank is the VRAM Bank bit. It specifies the VRAM bank (0-1) that
	// is used to store the tile's data.
	VRAMBank uint8
}

// NewTileAttributes decodes an attribute byte.
func NewTileAttributes(value uint8) TileAttributes {
	return TileAttributes{
		UseBGPriority: types.Test(value, 7),
		YFlip:         types.Test(value, 6),
		XFlip:         types.Test(value, 5),
		PaletteNumber: value & 0b111,
		VRAMBank:      types.Val(value, 3),
	}
}

// Byte encodes the attributes back into their byte form.
func (t TileAttributes) Byte() uint8 {
	var val uint8
	if t.UseBGPriority {
		val |= types.Bit7
	}
	if t.YFlip {
		val |= types.Bit6
	}
	if t.XFlip {
		val |= types.Bit5
	}
	val |= t.PaletteNumber & 0b111
	val |= (t.VRAMBank & 1) << 3
	return val
}

// pixel is the input of the tile resolver for a single background or
// window pixel. It is passed by value and never modified once built.
type pixel struct {
	x, y       int // screen position
	srcX, srcY int // position within the 256x256 tile map

	mapBase  types.Address
	unsigned bool
}

// at returns a copy of p for screen column x, sampling map column srcX.
func (p pixel) at(x, srcX int) pixel {
	p.x, p.srcX = x, srcX
	return p
}

// texel is the result of resolving a pixel.
type texel struct {
	index    uint8
	shade    palette.Shade
	rgb      palette.RGB
	priority bool
}

// resolve finds the tile covering p, decodes its colour index and maps
// it through the palette in effect for the current model.
func (r *Renderer) resolve(p pixel, shades palette.Shades) texel {
	cell := p.mapBase + types.Address((p.srcY/8)*background.TilesPerRow+p.srcX/8)
	addr := r.hw.tileAddress(r.bus.Read(cell), p.unsigned)
	tileX, tileY := p.srcX%8, p.srcY%8

	if !r.hw.colour {
		index := r.tileRow(addr, tileY).Colour(tileX)
		return texel{index: index, shade: shades[index], priority: index > 0}
	}

	// the attributes live at the same cell in bank 1
	attr := NewTileAttributes(r.bus.Read(cell + types.VRAMBankSize))
	addr += r.hw.bank(attr.VRAMBank)
	if attr.XFlip {
		tileX = 7 - tileX
	}
	if attr.YFlip {
		tileY = 7 - tileY
	}

	index := r.tileRow(addr, tileY).Colour(tileX)
	return texel{
		index:    index,
		rgb:      palette.ReadCGBColour(r.bus, palette.BackgroundAddress(attr.PaletteNumber), index),
		priority: attr.UseBGPriority && index > 0,
	}
}

// tileRow reads row y of the tile starting at addr. Rows past 7 run into
// the following tile, as 8x16 sprites expect.
func (r *Renderer) tileRow(addr types.Address, y int) TileRow {
	addr += types.Address(y * 2)
	return TileRow{Low: r.bus.Read(addr), High: r.bus.Read(addr + 1)}
}
