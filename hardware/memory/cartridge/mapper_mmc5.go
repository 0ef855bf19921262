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
	"github.com/Lunatic6502/EmuNes/hardware/memory/addresses"
	"github.com/Lunatic6502/EmuNes/hardware/memory/cartridge/mapper"
	"github.com/Lunatic6502/EmuNes/hardware/memory/memorymap"
)

// size of PRG RAM on an MMC5 cartridge. it is switched in 8K pages at $6000
// and can also be mapped into the program area
const mmc5PRGRAMSize = 0x10000

// mmc5 is the most capable of the mappers. the features emulated are:
//
//   - four PRG banking modes with RAM or ROM selectable for most windows
//   - two stage write protection of PRG RAM
//   - four CHR banking modes with separate register sets for sprites and
//     background
//   - 1K expansion RAM with four modes of operation
//   - 8 bit multiplier
//   - nametable selection and fill mode registers (state only)
//
// the scanline IRQ and the audio channels are not emulated.
type mmc5 struct {
	*board

	prgMode uint8
	chrMode uint8

	protect1 bool
	protect2 bool

	exramMode uint8
	exram     [0x400]uint8
	rendering bool

	// $5105. two bits for each of the four logical nametables
	nametables uint8

	fillTile uint8
	fillAttr uint8

	// 8K page of PRG RAM mapped at $6000
	ramBank int

	// $5114 to $5117. bit 7 selects ROM for the first three registers
	prgRegs [4]uint8

	chrBanks [12]int
	chrUpper int
	chrSize  int
	chrCount int

	// true if the background register set ($5128 to $512b) was written
	// more recently than the sprite register set
	chrBackground bool

	factor1 uint8
	factor2 uint8
	product uint16
}

func newMMC5(b *board) mapper.CartMapper {
	b.sram.Resize(mmc5PRGRAMSize)
	m := &mmc5{board: b}
	m.Reset()
	return m
}

// ID implements the mapper.CartMapper interface.
func (m *mmc5) ID() string {
	return "MMC5"
}

// Registers implements the mapper.CartRegisters interface.
func (m *mmc5) Registers() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("prg mode: %d\n", m.prgMode))
	s.WriteString(fmt.Sprintf("prg: %02x %02x %02x %02x\n", m.prgRegs[0], m.prgRegs[1], m.prgRegs[2], m.prgRegs[3]))
	s.WriteString(fmt.Sprintf("ram bank: %d\n", m.ramBank))
	s.WriteString(fmt.Sprintf("protect: %v %v\n", m.protect1, m.protect2))
	s.WriteString(fmt.Sprintf("chr mode: %d (%dK x %d)\n", m.chrMode, m.chrSize/mapper.Size1K, m.chrCount))
	s.WriteString(fmt.Sprintf("chr: %v upper %03x\n", m.chrBanks, m.chrUpper))
	s.WriteString(fmt.Sprintf("exram mode: %d\n", m.exramMode))
	s.WriteString(fmt.Sprintf("nametables: %08b\n", m.nametables))
	s.WriteString(fmt.Sprintf("fill: tile %02x attr %d\n", m.fillTile, m.fillAttr))
	s.WriteString(fmt.Sprintf("multiplier: %d x %d = %d", m.factor1, m.factor2, m.product))
	return s.String()
}

func (m *mmc5) protected() bool {
	return m.protect1 && m.protect2
}

// the register, bank, bank size and origin of the program window containing
// the address
func (m *mmc5) window(address uint16) (int, int, int, uint16, error) {
	switch m.prgMode {
	case 0:
		return 0, int(m.prgRegs[0] & 0x7f), mapper.Size32K, memorymap.OriginProgram, nil
	case 1:
		if address < 0xc000 {
			return 1, int(m.prgRegs[1] & 0x7f), mapper.Size16K, memorymap.OriginProgram, nil
		}
		return 3, int(m.prgRegs[3]), mapper.Size16K, 0xc000, nil
	case 2:
		if address < 0xc000 {
			return 1, int(m.prgRegs[1] & 0x7f), mapper.Size16K, memorymap.OriginProgram, nil
		}
		if address < 0xe000 {
			return 2, int(m.prgRegs[2] & 0x7f), mapper.Size8K, 0xc000, nil
		}
		return 3, int(m.prgRegs[3]), mapper.Size8K, 0xe000, nil
	case 3:
		reg := int((address - memorymap.OriginProgram) / mapper.Size8K)
		origin := memorymap.OriginProgram + uint16(reg)*mapper.Size8K
		return reg, int(m.prgRegs[reg] & 0x7f), mapper.Size8K, origin, nil
	}
	return 0, 0, 0, 0, curated.Errorf(mapper.InvalidModeError, m.ID(), "prg mode", m.prgMode)
}

// the CHR register used for the address depends on the bank size and on
// which register set was written last
func (m *mmc5) chrRegister(address uint16) int {
	if !m.chrBackground {
		n := mapper.Size8K / m.chrSize
		step := 8 / n
		return int(address)/m.chrSize*step + step - 1
	}

	if m.chrSize == mapper.Size8K {
		return 11
	}

	// the background set covers 4K and is repeated in both halves of the
	// pattern tables
	n := mapper.Size4K / m.chrSize
	step := 4 / n
	return 8 + int(address&0x0fff)/m.chrSize*step + step - 1
}

func (m *mmc5) chrOrigin(address uint16) uint16 {
	return address - address%uint16(m.chrSize)
}

func (m *mmc5) locate(address uint16) ([]uint8, int) {
	switch {
	case address <= memorymap.MemtopPatterns:
		return m.chrAt(m.chrBanks[m.chrRegister(address)], m.chrSize, address, m.chrOrigin(address))
	case address >= 0x5c00 && address <= 0x5fff:
		if m.exramMode >= 2 {
			return m.exram[:], int(address % 0x400)
		}
	case address >= memorymap.OriginSaveRAM && address <= memorymap.MemtopSaveRAM:
		return m.sram.data, mapper.Offset(m.ramBank, mapper.Size8K, len(m.sram.data), address, memorymap.OriginSaveRAM)
	case address >= memorymap.OriginProgram:
		_, bank, size, origin, err := m.window(address)
		if err != nil {
			return nil, 0
		}
		return m.prgAt(bank, size, address, origin)
	}
	return nil, 0
}

// Read implements the mapper.CartMapper interface.
func (m *mmc5) Read(address uint16) (uint8, error) {
	switch address {
	case 0x5205:
		return uint8(m.product), nil
	case 0x5206:
		return uint8(m.product >> 8), nil
	}

	if address >= memorymap.OriginProgram {
		if _, _, _, _, err := m.window(address); err != nil {
			return 0, err
		}
	}

	return m.read(m, address)
}

// Write implements the mapper.CartMapper interface.
func (m *mmc5) Write(address uint16, data uint8) error {
	switch {
	case address <= memorymap.MemtopPatterns:
		return m.writeCHR(m.ID(), m, address, data)
	case address >= 0x5000 && address < 0x5c00:
		m.writeRegister(address, data)
	case address >= 0x5c00 && address <= 0x5fff:
		return m.writeExram(address, data)
	case address >= memorymap.OriginSaveRAM && address <= memorymap.MemtopSaveRAM:
		if m.protected() {
			return curated.Errorf(mapper.WriteProtectedError, m.ID(), addresses.Hex(address))
		}
		m.sram.Write(mapper.Offset(m.ramBank, mapper.Size8K, m.sram.Len(), address, memorymap.OriginSaveRAM), data)
	case address >= memorymap.OriginProgram:
		return m.writeProgram(address, data)
	}
	return nil
}

func (m *mmc5) writeRegister(address uint16, data uint8) {
	switch {
	case address == 0x5100:
		m.prgMode = data & 0x03
	case address == 0x5101:
		m.chrMode = data & 0x03
		m.chrSize = mapper.Size8K >> m.chrMode
		m.chrCount = mapper.Banks(len(m.chr), m.chrSize)
	case address == 0x5102:
		m.protect1 = data == 0x02
	case address == 0x5103:
		m.protect2 = data == 0x01
	case address == 0x5104:
		m.exramMode = data & 0x03
	case address == 0x5105:
		m.nametables = data
		switch data {
		case 0x44:
			m.mirror(mapper.Vertical)
		case 0x50:
			m.mirror(mapper.Horizontal)
		case 0x00:
			m.mirror(mapper.SingleLower)
		case 0x55:
			m.mirror(mapper.SingleUpper)
		}
	case address == 0x5106:
		m.fillTile = data
	case address == 0x5107:
		m.fillAttr = data & 0x03
	case address == 0x5113:
		m.ramBank = int(data & 0x07)
	case address >= 0x5114 && address <= 0x5116:
		m.prgRegs[address-0x5114] = data
	case address == 0x5117:
		m.prgRegs[3] = data & 0x7f
	case address >= 0x5120 && address <= 0x512b:
		m.chrBanks[address-0x5120] = (int(data) | m.chrUpper) % m.chrCount
		m.chrBackground = address >= 0x5128
	case address == 0x5130:
		m.chrUpper = int(data&0x03) << 8
	case address == 0x5205:
		m.factor1 = data
		m.product = uint16(m.factor1) * uint16(m.factor2)
	case address == 0x5206:
		m.factor2 = data
		m.product = uint16(m.factor1) * uint16(m.factor2)
	}
}

func (m *mmc5) writeExram(address uint16, data uint8) error {
	switch m.exramMode {
	case 0, 1:
		if m.rendering {
			m.exram[address%0x400] = data
		} else {
			m.exram[address%0x400] = 0
		}
	case 2:
		m.exram[address%0x400] = data
	case 3:
		// read only
	default:
		return curated.Errorf(mapper.InvalidModeError, m.ID(), "exram mode", m.exramMode)
	}
	return nil
}

func (m *mmc5) writeProgram(address uint16, data uint8) error {
	reg, bank, size, origin, err := m.window(address)
	if err != nil {
		return err
	}

	// mode 0 and the $5117 windows are always ROM
	if m.prgMode == 0 || reg == 3 || m.prgRegs[reg]&0x80 == 0x80 {
		return curated.Errorf(mapper.IllegalWriteError, m.ID(), addresses.Hex(address))
	}

	if m.protected() {
		return curated.Errorf(mapper.WriteProtectedError, m.ID(), addresses.Hex(address))
	}

	m.sram.Write(mapper.Offset(bank, size, m.sram.Len(), address, origin), data)

	return nil
}

// VideoCycle implements the mapper.CartMapper interface.
func (m *mmc5) VideoCycle(scanline int, _ int, _ bool, _ bool) {
	m.rendering = scanline >= 0 && scanline < 240
}

// Reset implements the mapper.CartMapper interface.
func (m *mmc5) Reset() {
	m.prgMode = 0
	m.chrMode = 0
	m.chrSize = mapper.Size8K
	m.chrCount = mapper.Banks(len(m.chr), m.chrSize)
	m.chrBanks = [12]int{}
	m.chrUpper = 0
	m.chrBackground = false
	m.protect1 = false
	m.protect2 = false
	m.exramMode = 0
	m.rendering = false
	m.nametables = 0
	m.fillTile = 0
	m.fillAttr = 0
	m.ramBank = 0
	m.prgRegs = [4]uint8{0, 0, 0, 0x7f}
	m.factor1 = 0
	m.factor2 = 0
	m.product = 0
}

// MappedBanks implements the mapper.CartMapper interface.
func (m *mmc5) MappedBanks() []mapper.BankInfo {
	var b []mapper.BankInfo

	for a := 0; a < mapper.Size8K; a += m.chrSize {
		address := uint16(a)
		b = append(b, m.chrBank(address, m.chrBanks[m.chrRegister(address)], m.chrSize))
	}

	ram := mapper.NewBankInfo(memorymap.OriginSaveRAM, m.ramBank, mapper.Size8K, m.sram.Len())
	ram.IsRAM = true
	b = append(b, ram)

	for a := int(memorymap.OriginProgram); a <= int(memorymap.MemtopProgram); {
		_, bank, size, origin, err := m.window(uint16(a))
		if err != nil {
			break
		}
		b = append(b, m.prgBank(origin, bank, size))
		a += size
	}

	return b
}
