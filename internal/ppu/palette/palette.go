package palette

// Shade is a monochrome shade as produced by the video core. The
// convention is inverted relative to the register encoding: 0 is the
// darkest shade and 3 the lightest.
type Shade uint8

const (
	Darkest  Shade = 0
	Lightest Shade = 3
)

// Shades is a decoded monochrome palette register, indexed by the
// 2-bit colour number of a tile pixel.
type Shades [4]Shade

// ByteToShades unpacks a BGP/OBP0/OBP1 register value into its four
// 2-bit fields (bits 0-1, 2-3, 4-5, 6-7), inverting each so that the
// register's white (0) becomes shade 3.
func ByteToShades(b byte) Shades {
	var s Shades
	for i := range s {
		s[i] = invert((b >> (i * 2)) & 0x03)
	}
	return s
}

// Encode converts the shades back into a register value.
func (s Shades) Encode() byte {
	var b byte
	for i, shade := range s {
		b |= byte(invert(uint8(shade)&0x03)) << (i * 2)
	}
	return b
}

func invert(field uint8) Shade {
	if field > 3 {
		return 0
	}
	return Shade(3 - field)
}

const (
	// Greyscale is the default greyscale palette.
	Greyscale = iota
	// Green is the green palette which attempts to emulate
	// the original colour palette as it would have appeared
	// on the original Game Boy.
	Green
	// Red is a red palette.
	Red
	// Yellow is a yellow palette.
	Yellow
)

// Palette represents a colour scheme used to present monochrome
// shades. Colors is ordered from lightest to darkest, as the
// hardware orders its register fields.
type Palette struct {
	Colors [4][3]uint8
}

// Palettes is a list of all available palettes.
var Palettes = []Palette{
	// Greyscale
	{
		Colors: [4][3]uint8{
			{0xFF, 0xFF, 0xFF},
			{0xCC, 0xCC, 0xCC},
			{0x77, 0x77, 0x77},
			{0x00, 0x00, 0x00},
		},
	},
	// Green
	{
		Colors: [4][3]uint8{
			{0x9B, 0xBC, 0x0F},
			{0x8B, 0xAC, 0x0F},
			{0x30, 0x62, 0x30},
			{0x0F, 0x38, 0x0F},
		},
	},
	// Red
	{
		Colors: [4][3]uint8{
			{0xFF, 0x00, 0x00},
			{0xCC, 0x00, 0x00},
			{0x77, 0x00, 0x00},
			{0x00, 0x00, 0x00},
		},
	},
	// Yellow
	{
		Colors: [4][3]uint8{
			{0xFF, 0xFF, 0x00},
			{0xCC, 0xCC, 0x00},
			{0x77, 0x77, 0x00},
			{0x00, 0x00, 0x00},
		},
	},
}

// Scheme returns the palette with the given index, falling back to
// Greyscale for unknown indexes.
func Scheme(index int) Palette {
	if index < 0 || index >= len(Palettes) {
		return Palettes[Greyscale]
	}
	return Palettes[index]
}

// GetColour returns the RGB colour used to present the given shade.
func (p Palette) GetColour(s Shade) [3]uint8 {
	return p.Colors[3-(s&0x03)]
}
