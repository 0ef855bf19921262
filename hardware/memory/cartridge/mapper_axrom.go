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

// axrom switches the whole of the program area in 32K banks. bit 4 of the
// bank register selects which nametable is used for single screen mirroring.
type axrom struct {
	*board
	bank int
}

func newAxROM(b *board) mapper.CartMapper {
	return &axrom{board: b}
}

// ID implements the mapper.CartMapper interface.
func (m *axrom) ID() string {
	return "AxROM"
}

func (m *axrom) locate(address uint16) ([]uint8, int) {
	switch {
	case address <= memorymap.MemtopPatterns:
		return m.chrAt(0, mapper.Size8K, address, memorymap.OriginPatterns)
	case address >= memorymap.OriginSaveRAM && address <= memorymap.MemtopSaveRAM:
		return m.sramAt(address)
	case address >= memorymap.OriginProgram:
		return m.prgAt(m.bank, mapper.Size32K, address, memorymap.OriginProgram)
	}
	return nil, 0
}

// Read implements the mapper.CartMapper interface.
func (m *axrom) Read(address uint16) (uint8, error) {
	return m.read(m, address)
}

// Write implements the mapper.CartMapper interface.
func (m *axrom) Write(address uint16, data uint8) error {
	return m.write(m.ID(), m, address, data, func(_ uint16, data uint8) error {
		m.bank = int(data & 0x07)
		if data&0x10 == 0x10 {
			m.mirror(mapper.SingleUpper)
		} else {
			m.mirror(mapper.SingleLower)
		}
		return nil
	})
}

// Reset implements the mapper.CartMapper interface.
func (m *axrom) Reset() {
	m.bank = 0
}

// MappedBanks implements the mapper.CartMapper interface.
func (m *axrom) MappedBanks() []mapper.BankInfo {
	return []mapper.BankInfo{
		m.chrBank(memorymap.OriginPatterns, 0, mapper.Size8K),
		m.sramBank(),
		m.prgBank(memorymap.OriginProgram, m.bank, mapper.Size32K),
	}
}
