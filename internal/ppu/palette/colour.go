package palette

import "github.com/thelolagemann/gbvideo/internal/types"

// RGB is an 8-bit per channel colour.
type RGB [3]uint8

// CGBPalette is one of the eight 4-colour palettes stored in the
// colour hardware's palette memory.
type CGBPalette [4]RGB

// Reader is the byte-read interface palette memory is read through.
type Reader interface {
	Read(address types.Address) uint8
}

// DecodeRGB555 expands a little-endian 15-bit colour entry into 8-bit
// channels. Each 5-bit channel is only shifted left by 3, so the
// channels range over 0-248 in steps of 8.
//
//	lo: G2 G1 G0 R4 R3 R2 R1 R0
//	hi: -- B4 B3 B2 B1 B0 G4 G3
func DecodeRGB555(lo, hi uint8) RGB {
	r := lo & 0x1F
	g := (hi&0x03)<<3 | (lo&0xE0)>>5
	b := (hi & 0x7C) >> 2
	return RGB{r << 3, g << 3, b << 3}
}

// EncodeRGB555 packs 5-bit channels into the two bytes of a palette
// memory entry.
func EncodeRGB555(r, g, b uint8) (lo, hi uint8) {
	v := uint16(r&0x1F) | uint16(g&0x1F)<<5 | uint16(b&0x1F)<<10
	return uint8(v), uint8(v >> 8)
}

// ReadCGBPalette reads the 8 bytes of a palette starting at address.
func ReadCGBPalette(r Reader, address types.Address) CGBPalette {
	var p CGBPalette
	for i := range p {
		p[i] = DecodeRGB555(r.Read(address), r.Read(address+1))
		address += 2
	}
	return p
}

// ReadCGBColour reads a single colour of the palette at address.
func ReadCGBColour(r Reader, address types.Address, index uint8) RGB {
	address += types.Address(index&3) * 2
	return DecodeRGB555(r.Read(address), r.Read(address+1))
}

// BackgroundAddress returns the address of background palette n (0-7).
func BackgroundAddress(n uint8) types.Address {
	return types.BGPaletteRAM + types.Address(n&0x07)*8
}

// ObjectAddress returns the address of object palette n (0-7).
func ObjectAddress(n uint8) types.Address {
	return types.OBJPaletteRAM + types.Address(n&0x07)*8
}
