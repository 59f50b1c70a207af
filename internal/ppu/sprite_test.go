package ppu

import (
	"testing"

	"github.com/go-test/deep"
	"github.com/thelolagemann/gbvideo/internal/ppu/lcd"
	"github.com/thelolagemann/gbvideo/internal/ppu/palette"
	"github.com/thelolagemann/gbvideo/internal/types"
)

func TestNewSprite(t *testing.T) {
	got := NewSprite([4]uint8{36, 18, 0x42, 0xFB})
	want := Sprite{
		Y:      20,
		X:      10,
		TileID: 0x42,
		spriteAttributes: spriteAttributes{
			behindBG:         true,
			flipY:            true,
			flipX:            true,
			useSecondPalette: true,
			vRAMBank:         1,
			cgbPalette:       3,
		},
	}
	if diff := deep.Equal(got, want); diff != nil {
		t.Error(diff)
	}
}

func TestRenderer_SpriteRow(t *testing.T) {
	r, mem, rec := newDMG(t)
	mem.Write(types.LCDC, 0x83)
	rows := solidTile(0)
	rows[0] = [2]uint8{0xA5, 0x3C} // 1 0 3 2 2 3 0 1
	writeTile(mem, 0x8010, rows)
	writeOAM(mem, 0, 20+16, 10+8, 1, 0)

	if got := r.OrderSprites(20); len(got) != 1 {
		t.Fatalf("expected 1 sprite on line 20, got %d", len(got))
	}
	r.RenderSprites(20)

	want := map[point]palette.Shade{
		{10, 20}: 2, {12, 20}: 0, {13, 20}: 1,
		{14, 20}: 1, {15, 20}: 0, {17, 20}: 2,
	}
	if diff := deep.Equal(rec.shades, want); diff != nil {
		t.Error(diff)
	}
}

func TestRenderer_SpritePalette(t *testing.T) {
	r, mem, rec := newDMG(t)
	mem.Write(types.LCDC, 0x83)
	writeTile(mem, 0x8010, solidTile(1))
	writeOAM(mem, 0, 16, 8, 1, types.Bit4)

	r.OrderSprites(0)
	r.RenderSprites(0)
	// OBP1 is 0x1B
	if rec.shades[point{0, 0}] != 1 {
		t.Errorf("expected OBP1 to be used, got shade %d", rec.shades[point{0, 0}])
	}
}

func TestRenderer_SpriteClipping(t *testing.T) {
	rows := solidTile(0)
	rows[0] = [2]uint8{0x0F, 0x00} // columns 4-7

	for _, tc := range []struct {
		name string
		x    uint8
		want []int
	}{
		{"hidden", 0, nil},
		{"left", 4, []int{0, 1, 2, 3}},
		{"right", 160 + 8 - 6, []int{158, 159}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			r, mem, rec := newDMG(t)
			mem.Write(types.LCDC, 0x83)
			writeTile(mem, 0x8010, rows)
			writeOAM(mem, 0, 16, tc.x, 1, 0)

			r.OrderSprites(0)
			r.RenderSprites(0)
			if len(rec.shades) != len(tc.want) {
				t.Fatalf("got %d pixels, want %d", len(rec.shades), len(tc.want))
			}
			for _, x := range tc.want {
				if _, ok := rec.shades[point{x, 0}]; !ok {
					t.Errorf("expected pixel at x=%d", x)
				}
			}
		})
	}
}

func TestRenderer_TallSprites(t *testing.T) {
	setup := func(t *testing.T, attr uint8) (*Renderer, *recorder) {
		r, mem, rec := newDMG(t)
		mem.Write(types.LCDC, 0x87)
		writeTile(mem, 0x8020, solidTile(1))
		writeTile(mem, 0x8030, solidTile(2))
		writeOAM(mem, 0, 16, 8, 3, attr) // tile 3 is forced to 2
		return r, rec
	}

	r, rec := setup(t, 0)
	for _, y := range []int{0, 8, 16} {
		r.RenderLine(y)
	}
	if rec.shades[point{0, 0}] != 2 || rec.shades[point{0, 8}] != 1 {
		t.Errorf("got shades %d %d, want 2 1", rec.shades[point{0, 0}], rec.shades[point{0, 8}])
	}
	if rec.shades[point{0, 16}] != palette.Lightest {
		t.Errorf("sprite drawn past its height")
	}

	r, rec = setup(t, types.Bit6)
	r.RenderLine(0)
	r.RenderLine(15)
	if rec.shades[point{0, 0}] != 1 || rec.shades[point{0, 15}] != 2 {
		t.Errorf("flipped: got shades %d %d, want 1 2", rec.shades[point{0, 0}], rec.shades[point{0, 15}])
	}
}

func TestRenderer_SpritePriorityDMG(t *testing.T) {
	for _, tc := range []struct {
		name string
		attr uint8
		want palette.Shade // at x=8, over an opaque background
	}{
		{"above", 0, 2},
		{"behind", types.Bit7, palette.Darkest},
	} {
		t.Run(tc.name, func(t *testing.T) {
			r, mem, rec := newDMG(t)
			mem.Write(types.LCDC, 0x93)
			mem.Write(types.TileMap0+1, 1)
			writeTile(mem, 0x8010, solidTile(3))
			writeTile(mem, 0x8020, solidTile(1))
			writeOAM(mem, 0, 16, 12, 2, tc.attr) // x 4-11

			r.RenderLine(0)
			if rec.shades[point{4, 0}] != 2 {
				t.Errorf("sprite should always cover colour 0, got %d", rec.shades[point{4, 0}])
			}
			if rec.shades[point{8, 0}] != tc.want {
				t.Errorf("got shade %d, want %d", rec.shades[point{8, 0}], tc.want)
			}
		})
	}
}

func TestRenderer_SpritePriorityCGB(t *testing.T) {
	white := palette.RGB{248, 248, 248}
	for _, tc := range []struct {
		name       string
		lcdc       uint8
		bgAttr     uint8
		spriteAttr uint8
		drawn      bool
	}{
		{"bg priority", 0x93, 0x80, 0, false},
		{"master priority off", 0x92, 0x80, 0x80, true},
		{"sprite behind", 0x93, 0, 0x80, false},
		{"sprite above", 0x93, 0, 0, true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			r, mem, rec := newCGB(t)
			mem.Write(types.LCDC, tc.lcdc)
			mapBase := r.hw.mapBase(types.TileMap0)
			mem.Write(mapBase, 1)
			mem.Write(mapBase+types.VRAMBankSize, tc.bgAttr)
			writeTile(mem, types.VRAMOffset+16, solidTile(3))
			writeTile(mem, types.VRAMOffset+32, solidTile(1))
			writeCGBColour(mem, palette.ObjectAddress(0), 1, 31, 31, 31)
			writeOAM(mem, 0, 16, 8, 2, tc.spriteAttr)

			r.RenderLine(0)
			if got := rec.rgb[point{0, 0}] == white; got != tc.drawn {
				t.Errorf("sprite drawn = %v, want %v", got, tc.drawn)
			}
		})
	}
}

// lcdcWith returns an enabled LCD with the given bit 0.
func lcdcWith(bit0 bool) lcd.Controller {
	if bit0 {
		return lcd.NewController(0x81)
	}
	return lcd.NewController(0x80)
}

func TestStrategy_ObjAboveBG(t *testing.T) {
	dmg, cgb := newStrategy(types.DMG), newStrategy(types.CGB)
	on, off := lcdcWith(true), lcdcWith(false)

	for _, tc := range []struct {
		s          strategy
		c          bool
		behind, bg bool
		want       bool
	}{
		{dmg, true, false, false, true},
		{dmg, true, false, true, true},
		{dmg, true, true, false, true},
		{dmg, true, true, true, false},
		{dmg, false, true, true, false},

		{cgb, false, true, true, true},
		{cgb, false, false, true, true},
		{cgb, true, false, true, false},
		{cgb, true, true, true, false},
		{cgb, true, false, false, true},
		{cgb, true, true, false, false},
	} {
		c := off
		if tc.c {
			c = on
		}
		if got := tc.s.objAboveBG(c, tc.behind, tc.bg); got != tc.want {
			t.Errorf("colour=%v bit0=%v behind=%v bg=%v: got %v, want %v",
				tc.s.colour, tc.c, tc.behind, tc.bg, got, tc.want)
		}
	}
}
