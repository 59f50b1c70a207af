package ppu

import (
	"sort"

	"github.com/thelolagemann/gbvideo/internal/types"
)

// spriteCount is the number of entries in OAM (Object Attribute Memory).
// Each entry is 4 bytes long, describing a single sprite.
const spriteCount = 40

// SpriteEntry is a sprite selected for a line. Entries are drawn in
// descending Key order, so the entry with the lowest key ends up on top.
type SpriteEntry struct {
	// Key is the sprite's X coordinate on the monochrome hardware, and
	// its 1-based OAM slot on the colour hardware.
	Key int
	// Address is the address of the sprite's OAM entry.
	Address types.Address
}

// OrderSprites rebuilds and returns the set of sprites that cover line y.
// The returned slice is a copy, in ascending key order.
func (r *Renderer) OrderSprites(y int) []SpriteEntry {
	if !onScreen(y) {
		return nil
	}
	r.orderSprites(r.sample(), y)
	return append([]SpriteEntry(nil), r.sprites...)
}

func (r *Renderer) orderSprites(regs registers, y int) {
	r.sprites = r.sprites[:0]
	if !regs.lcd.SpriteEnabled {
		return
	}

	// OAM is walked from the last entry to the first; with a stable sort
	// this leaves the later slot on top when two keys tie
	for slot := spriteCount; slot > 0; slot-- {
		addr := types.OAM + types.Address(slot-1)*4
		top := int(r.bus.Read(addr)) - 16
		if y < top || y >= top+regs.lcd.SpriteSize {
			continue
		}

		key := slot
		if !r.hw.colour {
			key = int(r.bus.Read(addr+1)) - 8
		}
		r.sprites = append(r.sprites, SpriteEntry{Key: key, Address: addr})
	}

	sort.SliceStable(r.sprites, func(i, j int) bool {
		return r.sprites[i].Key < r.sprites[j].Key
	})
	if r.spriteLimit > 0 && len(r.sprites) > r.spriteLimit {
		r.sprites = r.sprites[:r.spriteLimit]
	}
}
