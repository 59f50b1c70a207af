// Package display provides the presentation side of the renderer: a
// Framebuffer that collects drawn pixels into frames, and the display
// drivers frames can be handed to.
package display

import (
	"image"
	"sync"

	"github.com/cespare/xxhash"
	"github.com/thelolagemann/gbvideo/internal/ppu"
	"github.com/thelolagemann/gbvideo/internal/ppu/palette"
	"github.com/thelolagemann/gbvideo/pkg/log"
	"golang.org/x/image/draw"
)

// FrameSize is the size of a packed RGB frame in bytes.
const FrameSize = ppu.ScreenWidth * ppu.ScreenHeight * 3

// Frame is a complete screen of RGB pixels, indexed [y][x].
type Frame [ppu.ScreenHeight][ppu.ScreenWidth][3]uint8

// Bytes packs the frame into rows of RGB triples.
func (f *Frame) Bytes() []byte {
	b := make([]byte, 0, FrameSize)
	for y := range f {
		for x := range f[y] {
			b = append(b, f[y][x][:]...)
		}
	}
	return b
}

// Framebuffer is a ppu.Screen that draws into a working frame, and
// publishes it as the prepared frame every time the renderer refreshes.
type Framebuffer struct {
	working  Frame
	prepared Frame
	scheme   palette.Palette
	log      log.Logger

	subscribers []chan []byte
	frames      uint64

	mu sync.RWMutex
}

// Opt configures a Framebuffer.
type Opt func(f *Framebuffer)

// WithScheme selects the colour scheme monochrome shades are presented
// with. See palette.Greyscale and friends.
func WithScheme(index int) Opt {
	return func(f *Framebuffer) {
		f.scheme = palette.Scheme(index)
	}
}

// WithLogger sets the logger of the framebuffer.
func WithLogger(l log.Logger) Opt {
	return func(f *Framebuffer) {
		f.log = l
	}
}

// NewFramebuffer returns a blank framebuffer.
func NewFramebuffer(opts ...Opt) *Framebuffer {
	f := &Framebuffer{
		scheme: palette.Scheme(palette.Greyscale),
		log:    log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.OnClear()

	return f
}

var _ ppu.Screen = (*Framebuffer)(nil)

func (f *Framebuffer) OnPreDraw()  {}
func (f *Framebuffer) OnPostDraw() {}

// DrawShade implements ppu.Screen.
func (f *Framebuffer) DrawShade(shade palette.Shade, x, y int) {
	c := f.scheme.GetColour(shade)
	f.DrawRGB(c[0], c[1], c[2], x, y)
}

// DrawRGB implements ppu.Screen.
func (f *Framebuffer) DrawRGB(r, g, b uint8, x, y int) {
	if x < 0 || x >= ppu.ScreenWidth || y < 0 || y >= ppu.ScreenHeight {
		return
	}
	f.working[y][x] = [3]uint8{r, g, b}
}

// OnRefresh publishes the working frame, sending a copy to every
// subscriber that is ready to receive it.
func (f *Framebuffer) OnRefresh() {
	f.mu.Lock()
	f.prepared = f.working
	f.frames++
	subscribers := f.subscribers
	f.mu.Unlock()

	if len(subscribers) == 0 {
		return
	}
	b := f.prepared.Bytes()
	for _, s := range subscribers {
		select {
		case s <- b:
		default:
			// the subscriber is behind, skip the frame
		}
	}
}

// OnClear fills both frames with the lightest colour of the scheme.
func (f *Framebuffer) OnClear() {
	white := f.scheme.GetColour(palette.Lightest)
	f.mu.Lock()
	defer f.mu.Unlock()
	for y := range f.working {
		for x := range f.working[y] {
			f.working[y][x] = white
		}
	}
	f.prepared = f.working
}

// Subscribe returns a channel that receives every published frame as
// packed RGB bytes. Frames are dropped while the channel is full.
func (f *Framebuffer) Subscribe(buffer int) <-chan []byte {
	c := make(chan []byte, buffer)
	f.mu.Lock()
	f.subscribers = append(f.subscribers, c)
	n := len(f.subscribers)
	f.mu.Unlock()
	f.log.Debugf("display: new subscriber (%d total)", n)
	return c
}

// Frame returns a copy of the prepared frame.
func (f *Framebuffer) Frame() Frame {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.prepared
}

// Frames returns the number of frames published so far.
func (f *Framebuffer) Frames() uint64 {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.frames
}

// Hash returns the xxhash digest of the prepared frame.
func (f *Framebuffer) Hash() uint64 {
	frame := f.Frame()
	return xxhash.Sum64(frame.Bytes())
}

// Image returns the prepared frame as an image.
func (f *Framebuffer) Image() *image.RGBA {
	frame := f.Frame()
	img := image.NewRGBA(image.Rect(0, 0, ppu.ScreenWidth, ppu.ScreenHeight))
	for y := range frame {
		for x, c := range frame[y] {
			i := img.PixOffset(x, y)
			img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c[0], c[1], c[2], 0xFF
		}
	}
	return img
}

// Scaled returns the prepared frame scaled up by factor, keeping the
// pixels sharp.
func (f *Framebuffer) Scaled(factor int) *image.RGBA {
	return Scale(f.Image(), factor)
}

// Scale scales img by factor with nearest neighbour sampling.
func Scale(img image.Image, factor int) *image.RGBA {
	if factor < 1 {
		factor = 1
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
