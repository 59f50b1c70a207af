package display

import (
	"errors"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/thelolagemann/gbvideo/internal/ppu"
	"github.com/thelolagemann/gbvideo/internal/ppu/palette"
	"github.com/thelolagemann/gbvideo/internal/ram"
	"github.com/thelolagemann/gbvideo/internal/types"
)

func TestFramebuffer_Draw(t *testing.T) {
	f := NewFramebuffer()
	f.DrawShade(palette.Darkest, 1, 2)
	f.DrawRGB(10, 20, 30, 159, 143)
	f.DrawRGB(1, 1, 1, 160, 0)
	f.DrawRGB(1, 1, 1, -1, 0)

	// nothing is visible until the frame is refreshed
	if f.Frame()[2][1] != [3]uint8{0xFF, 0xFF, 0xFF} {
		t.Fatal("working frame leaked into the prepared frame")
	}
	f.OnRefresh()

	frame := f.Frame()
	if frame[2][1] != [3]uint8{0, 0, 0} {
		t.Errorf("darkest shade = %v, want black", frame[2][1])
	}
	if frame[143][159] != [3]uint8{10, 20, 30} {
		t.Errorf("rgb pixel = %v", frame[143][159])
	}
	if f.Frames() != 1 {
		t.Errorf("frames = %d, want 1", f.Frames())
	}
}

func TestFramebuffer_Scheme(t *testing.T) {
	f := NewFramebuffer(WithScheme(palette.Green))
	f.DrawShade(palette.Lightest, 0, 0)
	f.OnRefresh()
	if got, want := f.Frame()[0][0], palette.Scheme(palette.Green).Colors[0]; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFramebuffer_Hash(t *testing.T) {
	a, b := NewFramebuffer(), NewFramebuffer()
	if a.Hash() != b.Hash() {
		t.Fatal("blank frames should hash equally")
	}
	a.DrawRGB(1, 2, 3, 80, 72)
	if h := a.Hash(); h != b.Hash() {
		t.Fatal("hash changed before refresh")
	}
	a.OnRefresh()
	if a.Hash() == b.Hash() {
		t.Error("expected different hashes")
	}

	a.OnClear()
	if a.Hash() != b.Hash() {
		t.Error("clear should restore the blank frame")
	}
}

func TestFramebuffer_Subscribe(t *testing.T) {
	f := NewFramebuffer()
	frames := f.Subscribe(1)
	f.DrawRGB(9, 9, 9, 0, 0)
	f.OnRefresh()
	f.OnRefresh() // dropped, the subscriber is full

	b := <-frames
	if len(b) != FrameSize {
		t.Fatalf("got %d bytes, want %d", len(b), FrameSize)
	}
	if b[0] != 9 || b[3] != 0xFF {
		t.Errorf("unexpected pixels % X", b[:6])
	}
	select {
	case <-frames:
		t.Error("expected the second frame to be dropped")
	default:
	}
}

func TestFramebuffer_Image(t *testing.T) {
	f := NewFramebuffer()
	f.DrawRGB(1, 2, 3, 5, 6)
	f.OnRefresh()

	img := f.Image()
	if c := img.RGBAAt(5, 6); c.R != 1 || c.G != 2 || c.B != 3 || c.A != 0xFF {
		t.Errorf("pixel = %v", c)
	}

	scaled := f.Scaled(3)
	if b := scaled.Bounds(); b.Dx() != 480 || b.Dy() != 432 {
		t.Fatalf("scaled bounds = %v", b)
	}
	for _, p := range [][2]int{{15, 18}, {17, 20}} {
		if c := scaled.RGBAAt(p[0], p[1]); c.R != 1 {
			t.Errorf("scaled pixel %v = %v", p, c)
		}
	}
}

func TestFramebuffer_Renderer(t *testing.T) {
	mem := ram.New()
	mem.Write(types.LCDC, 0x91)
	mem.Write(types.BGP, 0xE4)
	mem.Fill(types.TileData, types.TileData+16, 0xFF)

	f := NewFramebuffer()
	r := ppu.New(mem, ppu.WithScreen(f))
	for y := 0; y < ppu.ScreenHeight; y++ {
		r.RenderLine(y)
	}
	r.RefreshFrame()

	frame := f.Frame()
	for y := range frame {
		for x := range frame[y] {
			if frame[y][x] != [3]uint8{0, 0, 0} {
				t.Fatalf("(%d,%d) = %v, want black\n%s", x, y, frame[y][x], spew.Sdump(frame[y][:8]))
			}
		}
	}
}

func TestTileSheet(t *testing.T) {
	mem := ram.New()
	// tile 17 is solid colour 3
	mem.Fill(types.TileData+17*16, types.TileData+18*16, 0xFF)

	r := ppu.New(mem)
	img, err := TileSheet(r, 0, 16)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 128 || b.Dy() != 192 {
		t.Fatalf("bounds = %v", b)
	}
	// tile 17 is the second tile of the second row
	if c := img.RGBAAt(8, 8); c.R != 0 {
		t.Errorf("tile 17 = %v, want black", c)
	}
	if c := img.RGBAAt(7, 8); c.R != 255 {
		t.Errorf("tile 16 = %v, want white", c)
	}

	if _, err := TileSheet(r, 1, 16); !errors.Is(err, ErrBankUnavailable) {
		t.Errorf("expected ErrBankUnavailable, got %v", err)
	}
}
