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
	"github.com/Lunatic6502/EmuNes/curated"
	"github.com/Lunatic6502/EmuNes/hardware/memory/addresses"
	"github.com/Lunatic6502/EmuNes/hardware/memory/cartridge/mapper"
	"github.com/Lunatic6502/EmuNes/hardware/memory/memorymap"
)

// nrom has no bank switching. 16K images are mirrored into both halves of the
// program area.
type nrom struct {
	*board
}

func newNROM(b *board) mapper.CartMapper {
	return &nrom{board: b}
}

// ID implements the mapper.CartMapper interface.
func (m *nrom) ID() string {
	return "NROM"
}

func (m *nrom) locate(address uint16) ([]uint8, int) {
	switch {
	case address <= memorymap.MemtopPatterns:
		return m.chrAt(0, mapper.Size8K, address, memorymap.OriginPatterns)
	case address >= memorymap.OriginSaveRAM && address <= memorymap.MemtopSaveRAM:
		return m.sramAt(address)
	case address >= memorymap.OriginProgram:
		return m.prgAt(0, mapper.Size32K, address, memorymap.OriginProgram)
	}
	return nil, 0
}

// Read implements the mapper.CartMapper interface.
func (m *nrom) Read(address uint16) (uint8, error) {
	return m.read(m, address)
}

// Write implements the mapper.CartMapper interface.
func (m *nrom) Write(address uint16, data uint8) error {
	return m.write(m.ID(), m, address, data, func(address uint16, _ uint8) error {
		return curated.Errorf(mapper.IllegalWriteError, m.ID(), addresses.Hex(address))
	})
}

// Reset implements the mapper.CartMapper interface.
func (m *nrom) Reset() {
}

// MappedBanks implements the mapper.CartMapper interface.
func (m *nrom) MappedBanks() []mapper.BankInfo {
	return []mapper.BankInfo{
		m.chrBank(memorymap.OriginPatterns, 0, mapper.Size8K),
		m.sramBank(),
		m.prgBank(memorymap.OriginProgram, 0, mapper.Size32K),
	}
}
