package ppu

import (
	"github.com/thelolagemann/gbvideo/internal/ppu/palette"
	"github.com/thelolagemann/gbvideo/internal/types"
)

// Sprite is a decoded OAM entry.
type Sprite struct {
	// X and Y are the screen coordinates of the sprite's top left
	// corner, with the hardware's 8 and 16 pixel offsets removed.
	X, Y   int
	TileID uint8
	spriteAttributes
}

// spriteAttributes represents the attributes of a sprite.
type spriteAttributes struct {
	// Bit 7 - OBJ-to-BG priority (0=OBJ Above BG, 1=OBJ Behind BG color 1-3)
	// (Used for both BG and Window. BG color 0 is always behind OBJ)
	behindBG bool
	// Bit 6 - Y flip          (0=Normal, 1=Vertically mirrored)
	flipY bool
	// Bit 5 - X flip          (0=Normal, 1=Horizontally mirrored)
	flipX bool
	// Bit 4 - Palette number  **Non CGB mode Only** (0=OBP0, 1=OBP1)
	useSecondPalette bool
	// Bit 3 - Tile VRAM-Bank  **CGB mode Only**     (0=Bank 0, 1=Bank 1)
	vRAMBank uint8
	// Bit 0-2 - Palette number  **CGB mode Only**     (OBP0-7)
	cgbPalette uint8
}

// NewSprite decodes the 4 bytes of an OAM entry.
func NewSprite(b [4]uint8) Sprite {
	return Sprite{
		Y:      int(b[0]) - 16,
		X:      int(b[1]) - 8,
		TileID: b[2],
		spriteAttributes: spriteAttributes{
			behindBG:         types.Test(b[3], 7),
			flipY:            types.Test(b[3], 6),
			flipX:            types.Test(b[3], 5),
			useSecondPalette: types.Test(b[3], 4),
			vRAMBank:         types.Val(b[3], 3),
			cgbPalette:       b[3] & 0x07,
		},
	}
}

// readSprite decodes the OAM entry at address.
func (r *Renderer) readSprite(address types.Address) Sprite {
	var b [4]uint8
	for i := range b {
		b[i] = r.bus.Read(address + types.Address(i))
	}
	return NewSprite(b)
}

// RenderSprites draws the sprites selected by the last OrderSprites call
// on line y.
func (r *Renderer) RenderSprites(y int) {
	if !onScreen(y) {
		return
	}
	r.renderSprites(r.sample(), y)
}

func (r *Renderer) renderSprites(regs registers, y int) {
	if !regs.lcd.Enabled || !regs.lcd.SpriteEnabled || r.Debug.SpritesDisabled.Load() {
		return
	}

	// draw from the highest key down, so that the sprite with the
	// lowest key ends up on top
	for i := len(r.sprites) - 1; i >= 0; i-- {
		r.drawSprite(regs, r.readSprite(r.sprites[i].Address), y)
	}
}

func (r *Renderer) drawSprite(regs registers, s Sprite, y int) {
	// an X of 0 hides the sprite
	if s.X == -8 {
		return
	}
	height := regs.lcd.SpriteSize
	row := y - s.Y
	if row < 0 || row >= height {
		return
	}
	if s.flipY {
		row = height - 1 - row
	}

	tile := s.TileID
	if height == 16 {
		tile &= 0xFE
	}
	addr := r.hw.tileAddress(tile, true) + r.hw.bank(s.vRAMBank)
	line := r.tileRow(addr, row)

	var (
		shades palette.Shades
		cgb    palette.CGBPalette
	)
	if r.hw.colour {
		cgb = palette.ReadCGBPalette(r.bus, palette.ObjectAddress(s.cgbPalette))
	} else if s.useSecondPalette {
		shades = regs.obp1
	} else {
		shades = regs.obp0
	}

	start := s.X
	if start < 0 {
		start = 0
	}
	for x := start; x < s.X+8 && x < ScreenWidth; x++ {
		col := x - s.X
		if s.flipX {
			col = 7 - col
		}
		index := line.Colour(col)
		if index == 0 {
			continue // transparent
		}
		if !r.hw.objAboveBG(regs.lcd, s.behindBG, r.priority.At(x, y)) {
			continue
		}

		if r.hw.colour {
			r.drawRGB(cgb[index], x, y)
		} else {
			r.drawShade(shades[index], x, y)
		}
	}
}
