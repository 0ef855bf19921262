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

// mmc3 has four 8K program slots and eight 1K CHR slots, configured by eight
// bank registers and two mode bits. it also has a scanline counter that can
// raise an interrupt.
type mmc3 struct {
	*board

	// register selected for the next write to the bank data port
	index     uint8
	registers [8]int
	prgMode   uint8
	chrMode   uint8

	reload  uint8
	counter uint8
	enabled bool
	pending bool
}

// the cycle of a scanline on which the counter is clocked
const mmc3CounterCycle = 280

func newMMC3(b *board) mapper.CartMapper {
	m := &mmc3{board: b}
	m.Reset()
	return m
}

// ID implements the mapper.CartMapper interface.
func (m *mmc3) ID() string {
	return "MMC3"
}

// Registers implements the mapper.CartRegisters interface.
func (m *mmc3) Registers() string {
	return fmt.Sprintf("select: %d\nbanks: %v\nprg mode: %d\nchr mode: %d\nirq: reload %d counter %d enabled %v pending %v",
		m.index, m.registers, m.prgMode, m.chrMode, m.reload, m.counter, m.enabled, m.pending)
}

func (m *mmc3) prgSlots() [4]int {
	last := m.lastBank(mapper.Size8K)
	if m.prgMode == 0 {
		return [4]int{m.registers[6], m.registers[7], last - 1, last}
	}
	return [4]int{last - 1, m.registers[7], m.registers[6], last}
}

func (m *mmc3) chrSlots() [8]int {
	r := m.registers
	s := [8]int{r[0] &^ 1, r[0] | 1, r[1] &^ 1, r[1] | 1, r[2], r[3], r[4], r[5]}
	if m.chrMode == 1 {
		s = [8]int{s[4], s[5], s[6], s[7], s[0], s[1], s[2], s[3]}
	}
	return s
}

func (m *mmc3) locate(address uint16) ([]uint8, int) {
	switch {
	case address <= memorymap.MemtopPatterns:
		slot := address / mapper.Size1K
		return m.chrAt(m.chrSlots()[slot], mapper.Size1K, address, slot*mapper.Size1K)
	case address >= memorymap.OriginSaveRAM && address <= memorymap.MemtopSaveRAM:
		return m.sramAt(address)
	case address >= memorymap.OriginProgram:
		slot := (address - memorymap.OriginProgram) / mapper.Size8K
		return m.prgAt(m.prgSlots()[slot], mapper.Size8K, address, memorymap.OriginProgram+slot*mapper.Size8K)
	}
	return nil, 0
}

// Read implements the mapper.CartMapper interface.
func (m *mmc3) Read(address uint16) (uint8, error) {
	return m.read(m, address)
}

// Write implements the mapper.CartMapper interface.
func (m *mmc3) Write(address uint16, data uint8) error {
	return m.write(m.ID(), m, address, data, m.writeRegister)
}

func (m *mmc3) writeRegister(address uint16, data uint8) error {
	even := address&0x01 == 0

	switch {
	case address <= 0x9fff:
		if even {
			m.prgMode = (data >> 6) & 0x01
			m.chrMode = (data >> 7) & 0x01
			m.index = data & 0x07
		} else {
			m.registers[m.index] = int(data)
		}
	case address <= 0xbfff:
		// odd addresses are the PRG RAM protect register, which is not
		// emulated
		if even {
			if data&0x01 == 0 {
				m.mirror(mapper.Vertical)
			} else {
				m.mirror(mapper.Horizontal)
			}
		}
	case address <= 0xdfff:
		if even {
			m.reload = data
		} else {
			m.counter = 0
		}
	default:
		if even {
			m.enabled = false
			m.pending = false
		} else {
			m.enabled = true
		}
	}

	return nil
}

// VideoCycle implements the mapper.CartMapper interface.
func (m *mmc3) VideoCycle(scanline int, cycle int, showBackground bool, showSprites bool) {
	if cycle != mmc3CounterCycle {
		return
	}
	if scanline > 239 && scanline < 261 {
		return
	}
	if !showBackground && !showSprites {
		return
	}

	if m.counter == 0 {
		m.counter = m.reload
		return
	}

	m.counter--
	if m.counter == 0 && m.enabled {
		m.pending = true
	}
}

// IRQ implements the mapper.InterruptSource interface.
func (m *mmc3) IRQ() bool {
	return m.pending
}

// AcknowledgeIRQ implements the mapper.InterruptSource interface.
func (m *mmc3) AcknowledgeIRQ() {
	m.pending = false
}

// Reset implements the mapper.CartMapper interface.
func (m *mmc3) Reset() {
	m.index = 0
	m.registers = [8]int{0, 2, 4, 5, 6, 7, 0, 1}
	m.prgMode = 0
	m.chrMode = 0
	m.reload = 0
	m.counter = 0
	m.enabled = false
	m.pending = false
}

// MappedBanks implements the mapper.CartMapper interface.
func (m *mmc3) MappedBanks() []mapper.BankInfo {
	var b []mapper.BankInfo
	for i, s := range m.chrSlots() {
		b = append(b, m.chrBank(uint16(i)*mapper.Size1K, s, mapper.Size1K))
	}
	b = append(b, m.sramBank())
	for i, s := range m.prgSlots() {
		b = append(b, m.prgBank(memorymap.OriginProgram+uint16(i)*mapper.Size8K, s, mapper.Size8K))
	}
	return b
}
