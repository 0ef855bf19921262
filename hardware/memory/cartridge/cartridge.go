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

package cartridge

import (
	"fmt"
	"strings"

	"github.com/Lunatic6502/EmuNes/curated"
	"github.com/Lunatic6502/EmuNes/environment"
	"github.com/Lunatic6502/EmuNes/hardware/memory/cartridge/mapper"
	"github.com/Lunatic6502/EmuNes/logger"
	"github.com/cespare/xxhash"
)

// Cartridge defines the information and operations for a loaded cartridge
// image.
type Cartridge struct {
	env *environment.Environment

	// Filename is set by whoever loaded the image data. it is not required
	Filename string

	// hash of the complete image, including the header
	Hash string

	Header Header

	PRG []uint8
	CHR []uint8

	// CHR is writable
	CHRRAM bool

	// the trainer is kept for inspection only. it is never mapped into the
	// address space
	Trainer []uint8

	SaveRAM *SaveRAM

	mirroring   mapper.Mirroring
	onMirroring func(mapper.Mirroring)

	mapper mapper.CartMapper
}

// Load creates a new Cartridge from iNES image data. The environment argument
// can be nil.
//
// Errors are curated errors using the FormatError and UnsupportedMapperError
// patterns. No partial cartridge is returned on error.
func Load(env *environment.Environment, data []uint8) (*Cartridge, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	create, ok := mapperTable[h.MapperID]
	if !ok {
		return nil, curated.Errorf(UnsupportedMapperError, h.MapperID)
	}

	if h.PRGBanks == 0 {
		return nil, curated.Errorf(FormatError, "no PRG banks")
	}
	if len(data) < h.Len() {
		return nil, curated.Errorf(FormatError, fmt.Sprintf("truncated (%d bytes, expected %d)", len(data), h.Len()))
	}

	cart := &Cartridge{
		env:       env,
		Hash:      fmt.Sprintf("%016x", xxhash.Sum64(data)),
		Header:    h,
		mirroring: h.Mirroring,
		SaveRAM:   NewSaveRAM(DefaultSaveRAMSize),
	}

	idx := HeaderLen

	if h.Trainer {
		cart.Trainer = make([]uint8, TrainerLen)
		copy(cart.Trainer, data[idx:])
		idx += TrainerLen
		logger.Log(cart.perm(), "cartridge", "trainer present but will not be mapped")
	}

	cart.PRG = make([]uint8, h.PRGBanks*PRGBankSize)
	copy(cart.PRG, data[idx:])
	idx += len(cart.PRG)

	if h.CHRBanks == 0 {
		cart.CHR = make([]uint8, CHRBankSize)
		cart.CHRRAM = true
	} else {
		cart.CHR = make([]uint8, h.CHRBanks*CHRBankSize)
		copy(cart.CHR, data[idx:])
	}

	cart.mapper = create(&board{
		prg:    cart.PRG,
		chr:    cart.CHR,
		chrRAM: cart.CHRRAM,
		sram:   cart.SaveRAM,
		mirror: cart.SetMirroring,
	})

	logger.Logf(cart.perm(), "cartridge", "%s: prg %dK: chr %dK: %s", cart.mapper.ID(),
		len(cart.PRG)/1024, len(cart.CHR)/1024, cart.mirroring)

	return cart, nil
}

func (cart *Cartridge) perm() logger.Permission {
	if cart.env == nil {
		return logger.Allow
	}
	return cart.env
}

func (cart *Cartridge) String() string {
	s := strings.Builder{}
	if cart.Filename != "" {
		s.WriteString(cart.Filename)
		s.WriteString("\n")
	}
	s.WriteString(fmt.Sprintf("%s [%s] %s", cart.mapper.ID(), cart.Hash, cart.mirroring))
	if cart.Header.Battery {
		s.WriteString(fmt.Sprintf(" battery %s", cart.SaveRAM))
	}
	return s.String()
}

// ID returns the ID of the cartridge mapper.
func (cart *Cartridge) ID() string {
	return cart.mapper.ID()
}

// Mapper returns the cartridge mapper. Useful for inspecting the state of
// the mapper.
func (cart *Cartridge) Mapper() mapper.CartMapper {
	return cart.mapper
}

// Mirroring returns the current nametable mirroring.
func (cart *Cartridge) Mirroring() mapper.Mirroring {
	return cart.mirroring
}

// SetMirroring changes the nametable mirroring. The function registered with
// OnMirroringChange() is called if the mirroring changes.
func (cart *Cartridge) SetMirroring(m mapper.Mirroring) {
	if m == cart.mirroring {
		return
	}
	cart.mirroring = m
	logger.Logf(cart.perm(), "cartridge", "mirroring: %s", m)
	if cart.onMirroring != nil {
		cart.onMirroring(m)
	}
}

// OnMirroringChange registers a function to be called whenever the mapper
// changes the nametable mirroring. Only one function can be registered. A nil
// value removes the registration.
func (cart *Cartridge) OnMirroringChange(f func(mapper.Mirroring)) {
	cart.onMirroring = f
}

// Read implements the bus.CPUBus interface.
func (cart *Cartridge) Read(address uint16) (uint8, error) {
	return cart.mapper.Read(address)
}

// Write implements the bus.CPUBus interface.
func (cart *Cartridge) Write(address uint16, data uint8) error {
	return cart.mapper.Write(address, data)
}

// Peek implements the bus.DebugBus interface. Unlike Read() the state of the
// mapper never changes.
func (cart *Cartridge) Peek(address uint16) (uint8, error) {
	if l, ok := cart.mapper.(locator); ok {
		if mem, idx := l.locate(address); mem != nil {
			return mem[idx], nil
		}
	}
	return cart.mapper.Read(address)
}

// Poke implements the bus.DebugBus interface. Poke changes the value in the
// ROM or RAM currently mapped to the address, including ROM. For addresses
// not backed by memory the poke is a normal write.
//
// Poking save RAM does not mark it as dirty.
func (cart *Cartridge) Poke(address uint16, data uint8) error {
	if l, ok := cart.mapper.(locator); ok {
		if mem, idx := l.locate(address); mem != nil {
			mem[idx] = data
			return nil
		}
	}
	return cart.mapper.Write(address, data)
}

// VideoCycle implements the bus.VideoBus interface.
func (cart *Cartridge) VideoCycle(scanline int, cycle int, showBackground bool, showSprites bool) {
	cart.mapper.VideoCycle(scanline, cycle, showBackground, showSprites)
}

// IRQ implements the bus.InterruptBus interface. Returns false if the mapper
// cannot raise interrupts.
func (cart *Cartridge) IRQ() bool {
	if irq, ok := cart.mapper.(mapper.InterruptSource); ok {
		return irq.IRQ()
	}
	return false
}

// AcknowledgeIRQ clears a pending interrupt request.
func (cart *Cartridge) AcknowledgeIRQ() {
	if irq, ok := cart.mapper.(mapper.InterruptSource); ok {
		irq.AcknowledgeIRQ()
	}
}

// Reset the mapper registers and the mirroring to their initial state.
func (cart *Cartridge) Reset() {
	cart.SetMirroring(cart.Header.Mirroring)
	cart.mapper.Reset()
}

// MappedBanks returns the banks currently mapped by the cartridge.
func (cart *Cartridge) MappedBanks() []mapper.BankInfo {
	return cart.mapper.MappedBanks()
}
