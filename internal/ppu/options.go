package ppu

import (
	"github.com/thelolagemann/gbvideo/internal/types"
	"github.com/thelolagemann/gbvideo/pkg/log"
)

// Opt is a function that modifies a Renderer during construction.
type Opt func(r *Renderer)

// AsModel selects the hardware behaviour to render with. The model is
// fixed for the lifetime of the Renderer.
func AsModel(m types.Model) Opt {
	return func(r *Renderer) {
		if m == types.Unset {
			m = types.DMG
		}
		r.model = m
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(l log.Logger) Opt {
	return func(r *Renderer) {
		r.log = l
	}
}

// WithScreen sets the screen pixels are emitted to.
func WithScreen(s Screen) Opt {
	return func(r *Renderer) {
		r.screen = s
	}
}

// WithSpriteLimit limits the number of sprites drawn on a single line,
// as the hardware does (10). A limit of 0 draws every sprite on the
// line.
func WithSpriteLimit(n int) Opt {
	return func(r *Renderer) {
		if n < 0 {
			n = 0
		}
		r.spriteLimit = n
	}
}
