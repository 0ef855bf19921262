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

package memorymap

// Area represents the different areas of memory
type Area int

func (a Area) String() string {
	switch a {
	case RAM:
		return "RAM"
	case Video:
		return "Video"
	case APU:
		return "APU/IO"
	case Test:
		return "Test"
	case Expansion:
		return "Expansion"
	case SaveRAM:
		return "SaveRAM"
	case Program:
		return "Program"
	}

	return "undefined"
}

// The different memory areas in the console's CPU address space.
const (
	Undefined Area = iota
	RAM
	Video
	APU
	Test
	Expansion
	SaveRAM
	Program
)

// The origin and memory top for each area of memory in the CPU address
// space.
const (
	OriginRAM       = uint16(0x0000)
	MemtopRAM       = uint16(0x1fff)
	OriginVideo     = uint16(0x2000)
	MemtopVideo     = uint16(0x3fff)
	OriginAPU       = uint16(0x4000)
	MemtopAPU       = uint16(0x4017)
	OriginTest      = uint16(0x4018)
	MemtopTest      = uint16(0x401f)
	OriginCart      = uint16(0x4020)
	OriginExpansion = uint16(0x4020)
	MemtopExpansion = uint16(0x5fff)
	OriginSaveRAM   = uint16(0x6000)
	MemtopSaveRAM   = uint16(0x7fff)
	OriginProgram   = uint16(0x8000)
	MemtopProgram   = uint16(0xffff)
	MemtopCart      = uint16(0xffff)
)

// Memtop is the top most address of memory.
const Memtop = uint16(0xffff)

// The size of the physical memory behind the mirrored RAM and video register
// areas.
const (
	RAMSize   = 0x0800
	VideoSize = 0x0008
)

// The CPU vectors at the top of program memory.
const (
	NMI   = uint16(0xfffa)
	Reset = uint16(0xfffc)
	IRQ   = uint16(0xfffe)
)

// The video address space as seen by the cartridge. Pattern tables are
// always supplied by the cartridge. Nametables are inside the console but
// their layout is selected by the cartridge's mirroring.
const (
	OriginPatterns   = uint16(0x0000)
	MemtopPatterns   = uint16(0x1fff)
	OriginNametables = uint16(0x2000)
	MemtopNametables = uint16(0x3eff)
)

// MapAddress translates the address argument from mirror space to primary
// space according to the console's fixed wiring. Cartridge addresses are
// returned unchanged.
func MapAddress(address uint16) (uint16, Area) {
	switch {
	case address <= MemtopRAM:
		return address & (RAMSize - 1), RAM
	case address <= MemtopVideo:
		return OriginVideo | (address & (VideoSize - 1)), Video
	case address <= MemtopAPU:
		return address, APU
	case address <= MemtopTest:
		return address, Test
	case address <= MemtopExpansion:
		return address, Expansion
	case address <= MemtopSaveRAM:
		return address, SaveRAM
	}
	return address, Program
}

// IsArea returns true if the address is in the specified area.
func IsArea(address uint16, area Area) bool {
	_, a := MapAddress(address)
	return area == a
}
