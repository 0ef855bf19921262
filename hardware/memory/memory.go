// This file is part of EmuNes.
//
// EmuNes is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// EmuNes is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with EmuNes.  If not, see <https://www.gnu.org/licenses/>.

package memory

import (
	"fmt"
	"strings"

	"github.com/Lunatic6502/EmuNes/curated"
	"github.com/Lunatic6502/EmuNes/environment"
	"github.com/Lunatic6502/EmuNes/hardware/memory/addresses"
	"github.com/Lunatic6502/EmuNes/hardware/memory/bus"
	"github.com/Lunatic6502/EmuNes/hardware/memory/cartridge"
	"github.com/Lunatic6502/EmuNes/hardware/memory/cartridge/mapper"
	"github.com/Lunatic6502/EmuNes/hardware/memory/memorymap"
	"github.com/Lunatic6502/EmuNes/logger"
)

// Error patterns for the memory package.
const (
	ConfigurationError = "memory: configuration error: %v"
	UnpeekableError    = "memory: cannot peek or poke chip (%s) at %s"
)

// the number of addresses on the bus
const busSize = int(memorymap.Memtop) + 1

// Mirror describes one mirrored region of the address space.
type Mirror struct {
	Base   uint16
	Size   int
	Extent int
}

func (m Mirror) String() string {
	return fmt.Sprintf("%04x-%04x -> %04x-%04x", m.Base, int(m.Base)+m.Extent-1,
		m.Base, int(m.Base)+m.Size-1)
}

type chip struct {
	label  string
	origin uint16
	memtop uint16
	bus    bus.CPUBus
}

func (c chip) String() string {
	return fmt.Sprintf("%04x-%04x %s", c.origin, c.memtop, c.label)
}

// Memory is the address bus of the console. It implements the bus.CPUBus and
// bus.DebugBus interfaces.
type Memory struct {
	env *environment.Environment

	// RAM backing store. only addresses that resolve to RAM are ever used
	data []uint8

	// the canonical address for every address on the bus
	canonical []uint16

	// addresses that are part of a mirror. mirrored addresses are always
	// RAM, even in the cartridge area
	mirrored []bool

	mirrors []Mirror
	chips   []chip
	cart    *cartridge.Cartridge
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The returned bus has no mirrors configured and no cartridge attached. The
// environment can be nil.
func NewMemory(env *environment.Environment) *Memory {
	mem := &Memory{
		env:       env,
		data:      make([]uint8, busSize),
		canonical: make([]uint16, busSize),
		mirrored:  make([]bool, busSize),
	}
	mem.ResetConfiguration()
	return mem
}

// NewConsoleMemory returns a Memory instance with the mirrors of the console
// configured.
func NewConsoleMemory(env *environment.Environment) (*Memory, error) {
	mem := NewMemory(env)

	err := mem.ConfigureMirror(memorymap.OriginRAM, memorymap.RAMSize, int(memorymap.MemtopRAM-memorymap.OriginRAM)+1)
	if err != nil {
		return nil, err
	}

	err = mem.ConfigureMirror(memorymap.OriginVideo, memorymap.VideoSize, int(memorymap.MemtopVideo-memorymap.OriginVideo)+1)
	if err != nil {
		return nil, err
	}

	return mem, nil
}

func (mem *Memory) String() string {
	return mem.Summary()
}

func (mem *Memory) perm() logger.Permission {
	if mem.env == nil {
		return logger.Allow
	}
	return mem.env
}

func (mem *Memory) strict() bool {
	if mem.env == nil || mem.env.Prefs == nil {
		return true
	}
	return mem.env.Prefs.Strict.Get().(bool)
}

// ConfigureMirror adds a mirror to the address space. Every address from base
// to base+extent-1 will resolve to base + (address - base) % size.
func (mem *Memory) ConfigureMirror(base uint16, size int, extent int) error {
	if size <= 0 {
		return curated.Errorf(ConfigurationError, fmt.Sprintf("mirror size must be positive (%d)", size))
	}
	if extent < size {
		return curated.Errorf(ConfigurationError, fmt.Sprintf("mirror extent (%d) smaller than size (%d)", extent, size))
	}
	if int(base)+extent > busSize {
		return curated.Errorf(ConfigurationError, fmt.Sprintf("mirror extends beyond the end of memory (%s + %d)", addresses.Hex(base), extent))
	}

	for i := 0; i < extent; i++ {
		a := int(base) + i
		mem.canonical[a] = base + uint16(i%size)
		mem.mirrored[a] = true
	}

	mem.mirrors = append(mem.mirrors, Mirror{Base: base, Size: size, Extent: extent})

	logger.Logf(mem.perm(), "memory", "mirror: %s", mem.mirrors[len(mem.mirrors)-1])

	return nil
}

// ResetConfiguration removes all mirrors. Every address becomes its own
// canonical address. The content of RAM is not changed.
func (mem *Memory) ResetConfiguration() {
	for i := range mem.canonical {
		mem.canonical[i] = uint16(i)
		mem.mirrored[i] = false
	}
	mem.mirrors = mem.mirrors[:0]
}

// Mirrors returns a copy of the configured mirrors, in the order they were
// configured.
func (mem *Memory) Mirrors() []Mirror {
	m := make([]Mirror, len(mem.mirrors))
	copy(m, mem.mirrors)
	return m
}

// Wipe sets every byte of RAM to zero.
func (mem *Memory) Wipe() {
	clear(mem.data)
}

// Reset RAM to its power on state. If the RandomState preference is set then
// RAM is filled with random values, otherwise it is wiped.
func (mem *Memory) Reset() {
	if mem.env == nil || mem.env.Prefs == nil || !mem.env.Prefs.RandomState.Get().(bool) {
		mem.Wipe()
		return
	}
	for i := range mem.data {
		mem.data[i] = uint8(mem.env.Prefs.RandSrc.Intn(0x100))
	}
}

// AttachChip makes a device responsible for a range of canonical addresses.
// Chips attached later take precedence over chips attached earlier.
func (mem *Memory) AttachChip(label string, origin uint16, memtop uint16, b bus.CPUBus) error {
	if memtop < origin {
		return curated.Errorf(ConfigurationError, fmt.Sprintf("chip %s: memtop before origin", label))
	}
	mem.chips = append([]chip{{label: label, origin: origin, memtop: memtop, bus: b}}, mem.chips...)
	return nil
}

// AttachCartridge replaces any currently attached cartridge.
func (mem *Memory) AttachCartridge(cart *cartridge.Cartridge) {
	mem.cart = cart
	if cart != nil {
		logger.Logf(mem.perm(), "memory", "cartridge attached: %s", cart.ID())
	}
}

// EjectCartridge removes the cartridge and returns it. Returns nil if there
// was no cartridge attached.
func (mem *Memory) EjectCartridge() *cartridge.Cartridge {
	cart := mem.cart
	mem.cart = nil
	return cart
}

// Cartridge returns the attached cartridge or nil.
func (mem *Memory) Cartridge() *cartridge.Cartridge {
	return mem.cart
}

// MapAddress returns the canonical address and the area of memory for the
// address.
func (mem *Memory) MapAddress(address uint16) (uint16, memorymap.Area) {
	c := mem.canonical[address]
	_, area := memorymap.MapAddress(c)
	return c, area
}

func (mem *Memory) chipAt(address uint16) (chip, bool) {
	for _, c := range mem.chips {
		if address >= c.origin && address <= c.memtop {
			return c, true
		}
	}
	return chip{}, false
}

// the cartridge responds to the address
func (mem *Memory) isCart(address uint16, canonical uint16) bool {
	return mem.cart != nil && !mem.mirrored[address] && canonical >= memorymap.OriginCart
}

// filter mapper errors according to the strict preference. invalid mode
// errors are never filtered
func (mem *Memory) filter(err error) error {
	if err == nil || mem.strict() {
		return err
	}
	if curated.Is(err, mapper.IllegalWriteError) || curated.Is(err, mapper.WriteProtectedError) {
		logger.Log(mem.perm(), "memory", err.Error())
		return nil
	}
	return err
}

// Read implements the bus.CPUBus interface.
func (mem *Memory) Read(address uint16) (uint8, error) {
	c := mem.canonical[address]
	if ch, ok := mem.chipAt(c); ok {
		return ch.bus.Read(c)
	}
	if mem.isCart(address, c) {
		return mem.cart.Read(c)
	}
	return mem.data[c], nil
}

// Write implements the bus.CPUBus interface.
//
// Mapper errors for illegal writes and writes to protected memory are logged
// and ignored unless the Strict preference is set.
func (mem *Memory) Write(address uint16, data uint8) error {
	c := mem.canonical[address]
	if ch, ok := mem.chipAt(c); ok {
		return ch.bus.Write(c, data)
	}
	if mem.isCart(address, c) {
		return mem.filter(mem.cart.Write(c, data))
	}
	mem.data[c] = data
	return nil
}

// Peek implements the bus.DebugBus interface.
func (mem *Memory) Peek(address uint16) (uint8, error) {
	c := mem.canonical[address]
	if ch, ok := mem.chipAt(c); ok {
		if d, ok := ch.bus.(bus.DebugBus); ok {
			return d.Peek(c)
		}
		return 0, curated.Errorf(UnpeekableError, ch.label, addresses.Hex(c))
	}
	if mem.isCart(address, c) {
		return mem.cart.Peek(c)
	}
	return mem.data[c], nil
}

// Poke implements the bus.DebugBus interface.
func (mem *Memory) Poke(address uint16, data uint8) error {
	c := mem.canonical[address]
	if ch, ok := mem.chipAt(c); ok {
		if d, ok := ch.bus.(bus.DebugBus); ok {
			return d.Poke(c, data)
		}
		return curated.Errorf(UnpeekableError, ch.label, addresses.Hex(c))
	}
	if mem.isCart(address, c) {
		return mem.cart.Poke(c, data)
	}
	mem.data[c] = data
	return nil
}

// Summary returns a description of the current configuration of the bus.
func (mem *Memory) Summary() string {
	s := strings.Builder{}

	s.WriteString("mirrors:")
	if len(mem.mirrors) == 0 {
		s.WriteString(" none")
	}
	for _, m := range mem.mirrors {
		s.WriteString(fmt.Sprintf("\n  %s", m))
	}

	s.WriteString("\nchips:")
	if len(mem.chips) == 0 {
		s.WriteString(" none")
	}
	for _, c := range mem.chips {
		s.WriteString(fmt.Sprintf("\n  %s", c))
	}

	s.WriteString("\ncartridge: ")
	if mem.cart == nil {
		s.WriteString("none")
	} else {
		s.WriteString(mem.cart.ID())
	}

	return s.String()
}
