// Package ram provides a flat memory implementation of the address
// space read by the video core.
package ram

import (
	"errors"
	"fmt"

	"github.com/thelolagemann/gbvideo/internal/types"
)

// ErrDumpTooLarge is returned when a dump does not fit into memory.
var ErrDumpTooLarge = errors.New("ram: dump larger than address space")

// RAM represents a block of byte-addressed memory.
type RAM interface {
	Read(address types.Address) uint8
	Write(address types.Address, value uint8)
}

// Memory is a contiguous block of memory starting at address 0. Reads
// outside the block return 0xFF and writes outside it are dropped, as
// an unmapped bus would.
type Memory struct {
	data []uint8
}

// NewRAM returns a new Memory of the given size.
func NewRAM(size uint32) *Memory {
	return &Memory{
		data: make([]uint8, size),
	}
}

// New returns a Memory covering the whole address space, including the
// colour hardware's banked VRAM and palette memories.
func New() *Memory {
	return NewRAM(types.AddressSpaceSize)
}

// Read returns the value at the given address.
func (m *Memory) Read(address types.Address) uint8 {
	if int(address) >= len(m.data) {
		return 0xFF
	}
	return m.data[address]
}

// Write writes the value to the given address.
func (m *Memory) Write(address types.Address, value uint8) {
	if int(address) >= len(m.data) {
		return
	}
	m.data[address] = value
}

// WriteBlock copies values into memory starting at address.
func (m *Memory) WriteBlock(address types.Address, values []uint8) {
	for i, v := range values {
		m.Write(address+types.Address(i), v)
	}
}

// Fill sets every byte in [from, to) to value.
func (m *Memory) Fill(from, to types.Address, value uint8) {
	for a := from; a < to; a++ {
		m.Write(a, value)
	}
}

// Load replaces the start of memory with the given dump. Shorter dumps
// (such as a 64KiB monochrome dump) leave the rest of memory untouched.
func (m *Memory) Load(dump []byte) error {
	if len(dump) > len(m.data) {
		return fmt.Errorf("%w: %d > %d bytes", ErrDumpTooLarge, len(dump), len(m.data))
	}
	copy(m.data, dump)
	return nil
}

// Bytes returns the backing memory.
func (m *Memory) Bytes() []uint8 {
	return m.data
}
