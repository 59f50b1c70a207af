package display

import (
	"errors"
	"fmt"
	"image"

	"github.com/thelolagemann/gbvideo/internal/ppu"
)

// ErrBankUnavailable is returned when a tile sheet is requested for a
// VRAM bank the renderer's model doesn't have.
var ErrBankUnavailable = errors.New("display: vram bank unavailable")

// TileSheet draws every tile of the given VRAM bank, tilesPerRow tiles
// wide, as a greyscale image.
func TileSheet(r *ppu.Renderer, bank, tilesPerRow int) (*image.RGBA, error) {
	if tilesPerRow < 1 {
		tilesPerRow = 16
	}
	rows := (ppu.TileCount + tilesPerRow - 1) / tilesPerRow
	width, height := tilesPerRow*8, rows*8

	stride := width * 3
	buf := make([]byte, stride*height)
	for tile := 0; tile < ppu.TileCount; tile++ {
		x, y := tile%tilesPerRow*8, tile/tilesPerRow*8
		if !r.DecodeTileInto(buf[y*stride+x*3:], stride, tile, bank) {
			return nil, fmt.Errorf("tile %d of bank %d on %s: %w", tile, bank, r.Model(), ErrBankUnavailable)
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < width*height; i++ {
		img.Pix[i*4] = buf[i*3]
		img.Pix[i*4+1] = buf[i*3+1]
		img.Pix[i*4+2] = buf[i*3+2]
		img.Pix[i*4+3] = 0xFF
	}
	return img, nil
}
