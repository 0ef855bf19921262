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

	"github.com/Lunatic6502/EmuNes/hardware/memory/cartridge/mapper"
	"github.com/Lunatic6502/EmuNes/hardware/memory/memorymap"
)

// mmc1 registers are written one bit at a time through a serial port. the
// fifth write to the port transfers the collected value to the register
// selected by the address of that fifth write.
type mmc1 struct {
	*board

	// bit 4 of the initial shift value reaches bit 0 after four writes,
	// indicating that the next write completes the value
	shift uint8

	control uint8
	chr0    uint8
	chr1    uint8
	prg     uint8
}

const mmc1ShiftReset = 0x10

func newMMC1(b *board) mapper.CartMapper {
	m := &mmc1{board: b}
	m.Reset()
	return m
}

// ID implements the mapper.CartMapper interface.
func (m *mmc1) ID() string {
	return "MMC1"
}

// Registers implements the mapper.CartRegisters interface.
func (m *mmc1) Registers() string {
	return fmt.Sprintf("shift: %05b\ncontrol: %05b\nchr0: %02x\nchr1: %02x\nprg: %02x",
		m.shift, m.control, m.chr0, m.chr1, m.prg)
}

func (m *mmc1) prgMode() uint8 {
	return (m.control >> 2) & 0x03
}

func (m *mmc1) chrMode() uint8 {
	return (m.control >> 4) & 0x01
}

// the bank and origin of the bank mapped at the address
func (m *mmc1) prgWindow(address uint16) (int, int, uint16) {
	switch m.prgMode() {
	case 0, 1:
		return int(m.prg >> 1), mapper.Size32K, memorymap.OriginProgram
	case 2:
		if address < 0xc000 {
			return 0, mapper.Size16K, memorymap.OriginProgram
		}
		return int(m.prg), mapper.Size16K, 0xc000
	}
	if address < 0xc000 {
		return int(m.prg), mapper.Size16K, memorymap.OriginProgram
	}
	return m.lastBank(mapper.Size16K), mapper.Size16K, 0xc000
}

func (m *mmc1) chrWindow(address uint16) (int, int, uint16) {
	if m.chrMode() == 0 {
		return int(m.chr0 >> 1), mapper.Size8K, memorymap.OriginPatterns
	}
	if address < 0x1000 {
		return int(m.chr0), mapper.Size4K, memorymap.OriginPatterns
	}
	return int(m.chr1), mapper.Size4K, 0x1000
}

func (m *mmc1) locate(address uint16) ([]uint8, int) {
	switch {
	case address <= memorymap.MemtopPatterns:
		bank, size, origin := m.chrWindow(address)
		return m.chrAt(bank, size, address, origin)
	case address >= memorymap.OriginSaveRAM && address <= memorymap.MemtopSaveRAM:
		return m.sramAt(address)
	case address >= memorymap.OriginProgram:
		bank, size, origin := m.prgWindow(address)
		return m.prgAt(bank, size, address, origin)
	}
	return nil, 0
}

// Read implements the mapper.CartMapper interface.
func (m *mmc1) Read(address uint16) (uint8, error) {
	return m.read(m, address)
}

// Write implements the mapper.CartMapper interface.
func (m *mmc1) Write(address uint16, data uint8) error {
	return m.write(m.ID(), m, address, data, m.serial)
}

func (m *mmc1) serial(address uint16, data uint8) error {
	if data&0x80 == 0x80 {
		m.shift = mmc1ShiftReset
		m.control |= 0x0c
		return nil
	}

	complete := m.shift&0x01 == 0x01
	m.shift = (m.shift >> 1) | ((data & 0x01) << 4)
	if !complete {
		return nil
	}

	v := m.shift
	m.shift = mmc1ShiftReset

	switch {
	case address <= 0x9fff:
		m.writeControl(v)
	case address <= 0xbfff:
		m.chr0 = v
	case address <= 0xdfff:
		m.chr1 = v
	default:
		m.prg = v & 0x0f
	}

	return nil
}

func (m *mmc1) writeControl(v uint8) {
	m.control = v
	switch v & 0x03 {
	case 0:
		m.mirror(mapper.SingleLower)
	case 1:
		m.mirror(mapper.SingleUpper)
	case 2:
		m.mirror(mapper.Vertical)
	case 3:
		m.mirror(mapper.Horizontal)
	}
}

// Reset implements the mapper.CartMapper interface.
func (m *mmc1) Reset() {
	m.shift = mmc1ShiftReset
	m.control = 0x0c
	m.chr0 = 0
	m.chr1 = 0
	m.prg = 0
}

// MappedBanks implements the mapper.CartMapper interface.
func (m *mmc1) MappedBanks() []mapper.BankInfo {
	var b []mapper.BankInfo

	if m.chrMode() == 0 {
		bank, size, origin := m.chrWindow(0x0000)
		b = append(b, m.chrBank(origin, bank, size))
	} else {
		for _, a := range []uint16{0x0000, 0x1000} {
			bank, size, origin := m.chrWindow(a)
			b = append(b, m.chrBank(origin, bank, size))
		}
	}

	b = append(b, m.sramBank())

	if m.prgMode() <= 1 {
		bank, size, origin := m.prgWindow(0x8000)
		b = append(b, m.prgBank(origin, bank, size))
	} else {
		for _, a := range []uint16{0x8000, 0xc000} {
			bank, size, origin := m.prgWindow(a)
			b = append(b, m.prgBank(origin, bank, size))
		}
	}

	return b
}
