package types

// Address is a location in the address space the video core reads
// from. It is wider than the CPU's 16-bit bus so that the colour
// hardware's second VRAM bank and palette memories can be reached
// through the same byte-read interface as the registers.
type Address = uint32

// HardwareAddress represents the address of a hardware
// register of the Game Boy. The hardware IO are mapped
// to memory addresses 0xFF00 - 0xFF7F & 0xFFFF.
type HardwareAddress = Address

const (
	// LCDC is the address of the LCDC hardware register. The LCDC
	// hardware register is used to control the LCD.
	//
	// The register is set as follows:
	//
	//  Bit 7: LCD Enable             (0=Off, 1=On)
	//  Bit 6: Window Tile Map Display Select (0=9800-9BFF, 1=9C00-9FFF)
	//  Bit 5: Window Display Enable          (0=Off, 1=On)
	//  Bit 4: BG & Window Tile Data Select   (0=8800-97FF, 1=8000-8FFF)
	//  Bit 3: BG Tile Map Display Select     (0=9800-9BFF, 1=9C00-9FFF)
	//  Bit 2: OBJ (Sprite) Size              (0=8x8, 1=8x16)
	//  Bit 1: OBJ (Sprite) Display Enable    (0=Off, 1=On)
	//  Bit 0: BG Display (for CGB see below) (0=Off, 1=On)
	LCDC HardwareAddress = 0xFF40
	// SCY is the address of the SCY hardware register. The SCY
	// hardware register is used to control the vertical scroll
	// position of the background.
	SCY HardwareAddress = 0xFF42
	// SCX is the address of the SCX hardware register. The SCX
	// hardware register is used to control the horizontal scroll
	// position of the background.
	SCX HardwareAddress = 0xFF43
	// BGP is the address of the BGP hardware register. The BGP
	// hardware register is used to set the shade of grey to use for
	// the background palette. BGP is only used in DMG mode.
	//
	// The palette is set as follows:
	//  Bit 7-6 - Shade for Color Number 3
	//  Bit 5-4 - Shade for Color Number 2
	//  Bit 3-2 - Shade for Color Number 1
	//  Bit 1-0 - Shade for Color Number 0
	BGP HardwareAddress = 0xFF47
	// OBP0 is the address of the OBP0 hardware register. The OBP0
	// hardware register is used to set the shade of grey to use for
	// sprite palette 0. OBP0 is only used in DMG mode.
	//
	// The palette is set as follows:
	//  Bit 7-6 - Shade for Color Number 3
	//  Bit 5-4 - Shade for Color Number 2
	//  Bit 3-2 - Shade for Color Number 1
	//  Bit 1-0 - Ignored (always transparent)
	OBP0 HardwareAddress = 0xFF48
	// OBP1 is the address of the OBP1 hardware register. The OBP1
	// hardware register is used to set the shade of grey to use for
	// sprite palette 1. OBP1 is only used in DMG mode.
	OBP1 HardwareAddress = 0xFF49
	// WY is the address of the WY hardware register. The WY
	// hardware register is used to set the Y position of the window.
	// Values WX=7 and WY=0 locates the window at the top left of the LCD.
	WY HardwareAddress = 0xFF4A
	// WX is the address of the WX hardware register. The WX
	// hardware register is used to set the X position of the window,
	// offset by 7.
	WX HardwareAddress = 0xFF4B
)

const (
	// TileData is the start of the unsigned tile data block
	// (0x8000-0x8FFF), used when LCDC.4 is set and always for sprites.
	TileData Address = 0x8000
	// TileDataSigned is the base of the signed tile data block. Tile
	// indexes are read as int8 and added to this base, covering
	// 0x8800-0x97FF.
	TileDataSigned Address = 0x9000
	// TileMap0 is the first tile map (0x9800-0x9BFF).
	TileMap0 Address = 0x9800
	// TileMap1 is the second tile map (0x9C00-0x9FFF).
	TileMap1 Address = 0x9C00
	// OAM is the start of object attribute memory, 40 entries of 4
	// bytes each.
	OAM Address = 0xFE00
	// OAMEnd is the address of the last OAM entry.
	OAMEnd Address = 0xFE9C
)

// The colour hardware exposes its banked memories in a shadow
// region above the CPU's address space:
//
//	0x10000-0x11FFF  VRAM bank 0 (same layout as 0x8000-0x9FFF)
//	0x12000-0x13FFF  VRAM bank 1 (tile data + tile map attributes)
//	0x14000-0x1403F  background palette memory (8 palettes x 4 colours x 2 bytes)
//	0x14040-0x1407F  object palette memory
const (
	// VRAMOffset is where VRAM bank 0 starts in colour mode.
	VRAMOffset Address = 0x10000
	// VRAMBankSize is the size of a single VRAM bank, and the
	// distance between a tile map entry and its attribute byte.
	VRAMBankSize Address = 0x2000
	// BGPaletteRAM is the start of the background palette memory.
	BGPaletteRAM Address = 0x14000
	// OBJPaletteRAM is the start of the object palette memory.
	OBJPaletteRAM Address = 0x14040
	// PaletteRAMSize is the size of each palette memory.
	PaletteRAMSize = 64
	// AddressSpaceSize is the size of the whole readable space.
	AddressSpaceSize = 0x14080
)
