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

// camerica71 is similar to uxrom except that the bank register is only at
// $c000 to $ffff. the Fire Hawk board also has a single screen mirroring
// register at $9000 to $9fff.
type camerica71 struct {
	*board
	bank int
}

func newCamerica71(b *board) mapper.CartMapper {
	return &camerica71{board: b}
}

// ID implements the mapper.CartMapper interface.
func (m *camerica71) ID() string {
	return "Camerica71"
}

func (m *camerica71) locate(address uint16) ([]uint8, int) {
	switch {
	case address <= memorymap.MemtopPatterns:
		return m.chrAt(0, mapper.Size8K, address, memorymap.OriginPatterns)
	case address >= memorymap.OriginSaveRAM && address <= memorymap.MemtopSaveRAM:
		return m.sramAt(address)
	case address >= 0xc000:
		return m.prgAt(m.lastBank(mapper.Size16K), mapper.Size16K, address, 0xc000)
	case address >= memorymap.OriginProgram:
		return m.prgAt(m.bank, mapper.Size16K, address, memorymap.OriginProgram)
	}
	return nil, 0
}

// Read implements the mapper.CartMapper interface.
func (m *camerica71) Read(address uint16) (uint8, error) {
	return m.read(m, address)
}

// Write implements the mapper.CartMapper interface.
func (m *camerica71) Write(address uint16, data uint8) error {
	return m.write(m.ID(), m, address, data, func(address uint16, data uint8) error {
		switch {
		case address >= 0xc000:
			m.bank = int(data & 0x0f)
		case address >= 0x9000 && address <= 0x9fff:
			if data&0x10 == 0x10 {
				m.mirror(mapper.SingleUpper)
			} else {
				m.mirror(mapper.SingleLower)
			}
		}
		return nil
	})
}

// Reset implements the mapper.CartMapper interface.
func (m *camerica71) Reset() {
	m.bank = 0
}

// MappedBanks implements the mapper.CartMapper interface.
func (m *camerica71) MappedBanks() []mapper.BankInfo {
	return []mapper.BankInfo{
		m.chrBank(memorymap.OriginPatterns, 0, mapper.Size8K),
		m.sramBank(),
		m.prgBank(memorymap.OriginProgram, m.bank, mapper.Size16K),
		m.prgBank(0xc000, m.lastBank(mapper.Size16K), mapper.Size16K),
	}
}
