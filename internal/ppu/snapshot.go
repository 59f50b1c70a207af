package ppu

import "github.com/thelolagemann/gbvideo/internal/types"

const (
	// TileCount is the number of tiles in a VRAM bank.
	TileCount = 384
	// TileBytes is the size of a decoded tile: 8x8 pixels of 3 bytes.
	TileBytes = 8 * 8 * 3
)

// DecodeTile returns tile (0-383) of the given VRAM bank as 8 rows of 8
// grey RGB pixels, or nil if the tile doesn't exist.
func (r *Renderer) DecodeTile(tile, bank int) []byte {
	buf := make([]byte, TileBytes)
	if !r.DecodeTileInto(buf, 8*3, tile, bank) {
		return nil
	}
	return buf
}

// DecodeTileInto writes tile (0-383) of the given VRAM bank into buf as
// grey RGB pixels, stride bytes apart per row. Colour 0 is white and
// colour 3 black. It reports false, leaving buf untouched, if the tile
// doesn't exist or doesn't fit in buf.
func (r *Renderer) DecodeTileInto(buf []byte, stride, tile, bank int) bool {
	switch {
	case tile < 0 || tile >= TileCount:
		r.log.Debugf("ppu: tile %d out of range", tile)
		return false
	case bank < 0 || bank > 1:
		r.log.Debugf("ppu: bank %d out of range", bank)
		return false
	case bank == 1 && !r.hw.colour:
		r.log.Debugf("ppu: bank 1 requested from %s", r.model)
		return false
	case stride < 8*3 || len(buf) < stride*7+8*3:
		return false
	}

	addr := r.hw.vram + types.Address(tile*16) + r.hw.bank(uint8(bank))
	var raw [16]uint8
	for i := range raw {
		raw[i] = r.bus.Read(addr + types.Address(i))
	}

	t := NewTile(raw)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			grey := (3 - t[y][x]) * 85
			i := y*stride + x*3
			buf[i], buf[i+1], buf[i+2] = grey, grey, grey
		}
	}
	return true
}
