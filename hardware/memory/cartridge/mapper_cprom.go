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

// cprom has 16K of CHR RAM on the cartridge, regardless of what the header
// says. the first 4K of the pattern tables is fixed to the first bank of CHR
// RAM. the second 4K is switchable.
type cprom struct {
	*board
	ram []uint8
	chr int
}

func newCPROM(b *board) mapper.CartMapper {
	return &cprom{
		board: b,
		ram:   make([]uint8, mapper.Size16K),
	}
}

// ID implements the mapper.CartMapper interface.
func (m *cprom) ID() string {
	return "CPROM"
}

func (m *cprom) locate(address uint16) ([]uint8, int) {
	switch {
	case address < 0x1000:
		return m.ram, int(address)
	case address <= memorymap.MemtopPatterns:
		return m.ram, mapper.Offset(m.chr, mapper.Size4K, len(m.ram), address, 0x1000)
	case address >= memorymap.OriginSaveRAM && address <= memorymap.MemtopSaveRAM:
		return m.sramAt(address)
	case address >= memorymap.OriginProgram:
		return m.prgAt(0, mapper.Size32K, address, memorymap.OriginProgram)
	}
	return nil, 0
}

// Read implements the mapper.CartMapper interface.
func (m *cprom) Read(address uint16) (uint8, error) {
	return m.read(m, address)
}

// Write implements the mapper.CartMapper interface.
func (m *cprom) Write(address uint16, data uint8) error {
	if address <= memorymap.MemtopPatterns {
		mem, idx := m.locate(address)
		mem[idx] = data
		return nil
	}
	return m.write(m.ID(), m, address, data, func(_ uint16, data uint8) error {
		m.chr = int(data & 0x03)
		return nil
	})
}

// Reset implements the mapper.CartMapper interface.
func (m *cprom) Reset() {
	m.chr = 0
}

// MappedBanks implements the mapper.CartMapper interface.
func (m *cprom) MappedBanks() []mapper.BankInfo {
	lo := mapper.NewBankInfo(memorymap.OriginPatterns, 0, mapper.Size4K, len(m.ram))
	lo.Character = true
	lo.IsRAM = true
	hi := mapper.NewBankInfo(0x1000, m.chr, mapper.Size4K, len(m.ram))
	hi.Character = true
	hi.IsRAM = true
	return []mapper.BankInfo{
		lo, hi,
		m.sramBank(),
		m.prgBank(memorymap.OriginProgram, 0, mapper.Size32K),
	}
}
