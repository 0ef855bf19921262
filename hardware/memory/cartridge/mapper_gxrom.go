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
	"github.com/Lunatic6502/EmuNes/hardware/memory/cartridge/mapper"
	"github.com/Lunatic6502/EmuNes/hardware/memory/memorymap"
)

// gxrom and colour dreams both have a single register selecting a 32K program
// bank and an 8K CHR bank. they differ only in the layout of the register.
type gxrom struct {
	*board
	id  string
	prg int
	chr int

	// split register value into prg and chr bank numbers
	decode func(data uint8) (int, int)
}

func newGxROM(b *board) mapper.CartMapper {
	return &gxrom{
		board: b,
		id:    "GxROM",
		decode: func(data uint8) (int, int) {
			return int(data>>4) & 0x03, int(data & 0x03)
		},
	}
}

func newColourDreams(b *board) mapper.CartMapper {
	return &gxrom{
		board: b,
		id:    "ColourDreams",
		decode: func(data uint8) (int, int) {
			return int(data & 0x03), int(data >> 4)
		},
	}
}

// ID implements the mapper.CartMapper interface.
func (m *gxrom) ID() string {
	return m.id
}

func (m *gxrom) locate(address uint16) ([]uint8, int) {
	switch {
	case address <= memorymap.MemtopPatterns:
		return m.chrAt(m.chr, mapper.Size8K, address, memorymap.OriginPatterns)
	case address >= memorymap.OriginSaveRAM && address <= memorymap.MemtopSaveRAM:
		return m.sramAt(address)
	case address >= memorymap.OriginProgram:
		return m.prgAt(m.prg, mapper.Size32K, address, memorymap.OriginProgram)
	}
	return nil, 0
}

// Read implements the mapper.CartMapper interface.
func (m *gxrom) Read(address uint16) (uint8, error) {
	return m.read(m, address)
}

// Write implements the mapper.CartMapper interface.
func (m *gxrom) Write(address uint16, data uint8) error {
	return m.write(m.ID(), m, address, data, func(_ uint16, data uint8) error {
		m.prg, m.chr = m.decode(data)
		return nil
	})
}

// Reset implements the mapper.CartMapper interface.
func (m *gxrom) Reset() {
	m.prg = 0
	m.chr = 0
}

// MappedBanks implements the mapper.CartMapper interface.
func (m *gxrom) MappedBanks() []mapper.BankInfo {
	return []mapper.BankInfo{
		m.chrBank(memorymap.OriginPatterns, m.chr, mapper.Size8K),
		m.sramBank(),
		m.prgBank(memorymap.OriginProgram, m.prg, mapper.Size32K),
	}
}
