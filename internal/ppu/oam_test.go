package ppu

import (
	"testing"

	"github.com/go-test/deep"
	"github.com/thelolagemann/gbvideo/internal/ppu/palette"
	"github.com/thelolagemann/gbvideo/internal/ram"
	"github.com/thelolagemann/gbvideo/internal/types"
)

func TestRenderer_OrderSprites(t *testing.T) {
	t.Run("DMG", func(t *testing.T) {
		r, mem, _ := newDMG(t)
		mem.Write(types.LCDC, 0x83)
		writeOAM(mem, 0, 16, 50, 0, 0)
		writeOAM(mem, 1, 16, 30, 0, 0)
		writeOAM(mem, 2, 16, 30, 0, 0)
		writeOAM(mem, 3, 30, 10, 0, 0) // starts on line 14

		want := []SpriteEntry{
			{Key: 22, Address: types.OAM + 8},
			{Key: 22, Address: types.OAM + 4},
			{Key: 42, Address: types.OAM},
		}
		if diff := deep.Equal(r.OrderSprites(0), want); diff != nil {
			t.Error(diff)
		}
	})
	t.Run("CGB", func(t *testing.T) {
		r, mem, _ := newCGB(t)
		mem.Write(types.LCDC, 0x83)
		writeOAM(mem, 0, 16, 50, 0, 0)
		writeOAM(mem, 1, 16, 30, 0, 0)

		want := []SpriteEntry{
			{Key: 1, Address: types.OAM},
			{Key: 2, Address: types.OAM + 4},
		}
		if diff := deep.Equal(r.OrderSprites(0), want); diff != nil {
			t.Error(diff)
		}
	})
	t.Run("disabled", func(t *testing.T) {
		r, mem, _ := newDMG(t)
		mem.Write(types.LCDC, 0x81)
		writeOAM(mem, 0, 16, 50, 0, 0)
		if got := r.OrderSprites(0); len(got) != 0 {
			t.Errorf("expected no sprites, got %v", got)
		}
		if got := r.OrderSprites(ScreenHeight); got != nil {
			t.Errorf("expected nil for an off screen line, got %v", got)
		}
	})
	t.Run("tall", func(t *testing.T) {
		r, mem, _ := newDMG(t)
		mem.Write(types.LCDC, 0x87)
		writeOAM(mem, 0, 16, 8, 0, 0)
		if got := r.OrderSprites(15); len(got) != 1 {
			t.Errorf("expected an 8x16 sprite to cover line 15, got %v", got)
		}
		if got := r.OrderSprites(16); len(got) != 0 {
			t.Errorf("expected no sprites on line 16, got %v", got)
		}
	})
}

func TestRenderer_SpriteLimit(t *testing.T) {
	for _, tc := range []struct {
		limit, want int
	}{
		{0, 12},
		{10, 10},
		{20, 12},
	} {
		r, mem, _ := newDMG(t, WithSpriteLimit(tc.limit))
		mem.Write(types.LCDC, 0x83)
		for i := 0; i < 12; i++ {
			writeOAM(mem, i, 16, uint8(100-i), 0, 0)
		}
		got := r.OrderSprites(0)
		if len(got) != tc.want {
			t.Fatalf("limit %d: got %d sprites, want %d", tc.limit, len(got), tc.want)
		}
		// the lowest keys are kept
		if got[0].Key != 100-11-8 {
			t.Errorf("limit %d: first key = %d", tc.limit, got[0].Key)
		}
	}
}

func TestRenderer_SpriteOverlap(t *testing.T) {
	setup := func(t *testing.T, model types.Model) (*Renderer, *ram.Memory, *recorder) {
		r, mem, rec := newDMG(t, AsModel(model))
		mem.Write(types.LCDC, 0x83)
		writeTile(mem, r.hw.vram+16, solidTile(1))
		writeTile(mem, r.hw.vram+32, solidTile(2))
		writeCGBColour(mem, palette.ObjectAddress(0), 1, 31, 0, 0)
		writeCGBColour(mem, palette.ObjectAddress(1), 2, 0, 31, 0)
		return r, mem, rec
	}
	red, green := palette.RGB{248, 0, 0}, palette.RGB{0, 248, 0}

	t.Run("DMG lower X wins", func(t *testing.T) {
		r, mem, rec := setup(t, types.DMG)
		writeOAM(mem, 0, 16, 34, 1, 0)
		writeOAM(mem, 1, 16, 30, 2, 0)
		r.RenderLine(0)
		if rec.shades[point{26, 0}] != 1 {
			t.Errorf("got shade %d, want the sprite at X=30", rec.shades[point{26, 0}])
		}
	})
	t.Run("DMG tie later slot wins", func(t *testing.T) {
		r, mem, rec := setup(t, types.DMG)
		writeOAM(mem, 0, 16, 30, 1, 0)
		writeOAM(mem, 1, 16, 30, 2, 0)
		r.RenderLine(0)
		if rec.shades[point{22, 0}] != 1 {
			t.Errorf("got shade %d, want the sprite in slot 1", rec.shades[point{22, 0}])
		}
	})
	t.Run("CGB lower slot wins", func(t *testing.T) {
		r, mem, rec := setup(t, types.CGB)
		writeOAM(mem, 0, 16, 34, 1, 0)
		writeOAM(mem, 1, 16, 30, 2, 1)
		r.RenderLine(0)
		if rec.rgb[point{26, 0}] != red {
			t.Errorf("got %v, want the sprite in slot 0", rec.rgb[point{26, 0}])
		}
		if rec.rgb[point{22, 0}] != green {
			t.Errorf("got %v, want the sprite in slot 1", rec.rgb[point{22, 0}])
		}
	})
}
