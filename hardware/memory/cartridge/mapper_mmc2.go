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

	"github.com/Lunatic6502/EmuNes/curated"
	"github.com/Lunatic6502/EmuNes/hardware/memory/addresses"
	"github.com/Lunatic6502/EmuNes/hardware/memory/cartridge/mapper"
	"github.com/Lunatic6502/EmuNes/hardware/memory/memorymap"
)

// mmc2 and mmc4 have two 4K CHR slots, each with two bank registers. a latch
// for each slot selects which of the two registers is used. the latch is
// changed by the video pipeline reading particular tiles from the pattern
// tables.
//
// the two mappers differ in the size of the switchable program bank and in
// the range of addresses that trigger the first latch.
type mmcLatch struct {
	*board
	mmc4 bool

	prg int

	// chr[0] and chr[1] are the $fd and $fe registers for the first slot.
	// chr[2] and chr[3] are the registers for the second slot
	chr   [4]int
	latch [2]uint8
}

const (
	latchFD = 0xfd
	latchFE = 0xfe
)

func newMMC2(b *board) mapper.CartMapper {
	m := &mmcLatch{board: b}
	m.Reset()
	return m
}

func newMMC4(b *board) mapper.CartMapper {
	m := &mmcLatch{board: b, mmc4: true}
	m.Reset()
	return m
}

// ID implements the mapper.CartMapper interface.
func (m *mmcLatch) ID() string {
	if m.mmc4 {
		return "MMC4"
	}
	return "MMC2"
}

// Registers implements the mapper.CartRegisters interface.
func (m *mmcLatch) Registers() string {
	return fmt.Sprintf("prg: %d\nchr: %v\nlatch: %02x %02x", m.prg, m.chr, m.latch[0], m.latch[1])
}

func (m *mmcLatch) chrSlot(slot int) int {
	if m.latch[slot] == latchFD {
		return m.chr[slot*2]
	}
	return m.chr[slot*2+1]
}

func (m *mmcLatch) prgSlot(address uint16) (int, int, uint16) {
	if m.mmc4 {
		if address < 0xc000 {
			return m.prg, mapper.Size16K, memorymap.OriginProgram
		}
		return m.lastBank(mapper.Size16K), mapper.Size16K, 0xc000
	}

	// the last three 8K banks are fixed
	slot := (address - memorymap.OriginProgram) / mapper.Size8K
	origin := memorymap.OriginProgram + slot*mapper.Size8K
	if slot == 0 {
		return m.prg, mapper.Size8K, origin
	}
	return m.lastBank(mapper.Size8K) - 3 + int(slot), mapper.Size8K, origin
}

func (m *mmcLatch) locate(address uint16) ([]uint8, int) {
	switch {
	case address < 0x1000:
		return m.chrAt(m.chrSlot(0), mapper.Size4K, address, memorymap.OriginPatterns)
	case address <= memorymap.MemtopPatterns:
		return m.chrAt(m.chrSlot(1), mapper.Size4K, address, 0x1000)
	case address >= memorymap.OriginSaveRAM && address <= memorymap.MemtopSaveRAM:
		return m.sramAt(address)
	case address >= memorymap.OriginProgram:
		bank, size, origin := m.prgSlot(address)
		return m.prgAt(bank, size, address, origin)
	}
	return nil, 0
}

// Read implements the mapper.CartMapper interface. Reading pattern table
// memory can change the state of the latches. The latches are changed after
// the data has been read.
func (m *mmcLatch) Read(address uint16) (uint8, error) {
	v, err := m.read(m, address)
	if address <= memorymap.MemtopPatterns {
		m.updateLatch(address)
	}
	return v, err
}

func (m *mmcLatch) updateLatch(address uint16) {
	switch {
	case address == 0x0fd8 || (m.mmc4 && address >= 0x0fd8 && address <= 0x0fdf):
		m.latch[0] = latchFD
	case address == 0x0fe8 || (m.mmc4 && address >= 0x0fe8 && address <= 0x0fef):
		m.latch[0] = latchFE
	case address >= 0x1fd8 && address <= 0x1fdf:
		m.latch[1] = latchFD
	case address >= 0x1fe8 && address <= 0x1fef:
		m.latch[1] = latchFE
	}
}

// Write implements the mapper.CartMapper interface.
func (m *mmcLatch) Write(address uint16, data uint8) error {
	return m.write(m.ID(), m, address, data, func(address uint16, data uint8) error {
		switch {
		case address <= 0x9fff:
			return curated.Errorf(mapper.IllegalWriteError, m.ID(), addresses.Hex(address))
		case address <= 0xafff:
			m.prg = int(data & 0x0f)
		case address <= 0xbfff:
			m.chr[0] = int(data & 0x1f)
		case address <= 0xcfff:
			m.chr[1] = int(data & 0x1f)
		case address <= 0xdfff:
			m.chr[2] = int(data & 0x1f)
		case address <= 0xefff:
			m.chr[3] = int(data & 0x1f)
		default:
			if data&0x01 == 0 {
				m.mirror(mapper.Vertical)
			} else {
				m.mirror(mapper.Horizontal)
			}
		}
		return nil
	})
}

// Reset implements the mapper.CartMapper interface.
func (m *mmcLatch) Reset() {
	m.prg = 0
	m.chr = [4]int{}
	m.latch = [2]uint8{latchFE, latchFE}
}

// MappedBanks implements the mapper.CartMapper interface.
func (m *mmcLatch) MappedBanks() []mapper.BankInfo {
	b := []mapper.BankInfo{
		m.chrBank(memorymap.OriginPatterns, m.chrSlot(0), mapper.Size4K),
		m.chrBank(0x1000, m.chrSlot(1), mapper.Size4K),
		m.sramBank(),
	}

	windows := []uint16{0x8000, 0xa000, 0xc000, 0xe000}
	if m.mmc4 {
		windows = []uint16{0x8000, 0xc000}
	}
	for _, a := range windows {
		bank, size, origin := m.prgSlot(a)
		b = append(b, m.prgBank(origin, bank, size))
	}

	return b
}
