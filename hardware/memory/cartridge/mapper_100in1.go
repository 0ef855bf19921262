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

// multicart100in1 is the mapper used by the "100-in-1 Contra Function 16"
// multicart. the low two bits of the write address select how the written
// value is interpreted:
//
//	mode 0: 32K bank at $8000
//	mode 1: 16K bank at $8000, the same bank with the low bits set at $c000
//	mode 2: 8K bank mirrored four times. bit 7 selects which half of the 16K bank
//	mode 3: 16K bank mirrored twice
//
// bits 0 to 5 of the value are the bank number in 16K units and bit 6 selects
// the mirroring.
type multicart100in1 struct {
	*board

	// 8K bank in each of the four program slots
	slots [4]int
}

func new100in1(b *board) mapper.CartMapper {
	m := &multicart100in1{board: b}
	m.Reset()
	return m
}

// ID implements the mapper.CartMapper interface.
func (m *multicart100in1) ID() string {
	return "100-in-1"
}

func (m *multicart100in1) String() string {
	return fmt.Sprintf("%s %v", m.ID(), m.slots)
}

func (m *multicart100in1) locate(address uint16) ([]uint8, int) {
	switch {
	case address <= memorymap.MemtopPatterns:
		return m.chrAt(0, mapper.Size8K, address, memorymap.OriginPatterns)
	case address >= memorymap.OriginSaveRAM && address <= memorymap.MemtopSaveRAM:
		return m.sramAt(address)
	case address >= memorymap.OriginProgram:
		slot := (address - memorymap.OriginProgram) / mapper.Size8K
		return m.prgAt(m.slots[slot], mapper.Size8K, address, memorymap.OriginProgram+slot*mapper.Size8K)
	}
	return nil, 0
}

// Read implements the mapper.CartMapper interface.
func (m *multicart100in1) Read(address uint16) (uint8, error) {
	return m.read(m, address)
}

// Write implements the mapper.CartMapper interface.
func (m *multicart100in1) Write(address uint16, data uint8) error {
	return m.write(m.ID(), m, address, data, m.bankswitch)
}

func (m *multicart100in1) bankswitch(address uint16, data uint8) error {
	p := int(data & 0x3f)
	s := int(data >> 7)

	switch address & 0x03 {
	case 0:
		lo := p &^ 1
		hi := p | 1
		m.slots = [4]int{lo * 2, lo*2 + 1, hi * 2, hi*2 + 1}
	case 1:
		hi := p | 0x07
		m.slots = [4]int{p * 2, p*2 + 1, hi * 2, hi*2 + 1}
	case 2:
		b := p*2 + s
		m.slots = [4]int{b, b, b, b}
	case 3:
		m.slots = [4]int{p * 2, p*2 + 1, p * 2, p*2 + 1}
	}

	if data&0x40 == 0x40 {
		m.mirror(mapper.Horizontal)
	} else {
		m.mirror(mapper.Vertical)
	}

	return nil
}

// Reset implements the mapper.CartMapper interface.
func (m *multicart100in1) Reset() {
	m.slots = [4]int{0, 1, 2, 3}
}

// MappedBanks implements the mapper.CartMapper interface.
func (m *multicart100in1) MappedBanks() []mapper.BankInfo {
	b := []mapper.BankInfo{
		m.chrBank(memorymap.OriginPatterns, 0, mapper.Size8K),
		m.sramBank(),
	}
	for i, s := range m.slots {
		b = append(b, m.prgBank(memorymap.OriginProgram+uint16(i)*mapper.Size8K, s, mapper.Size8K))
	}
	return b
}
