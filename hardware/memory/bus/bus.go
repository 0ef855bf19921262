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

package bus

// CPUBus defines the operations for the memory system when accessed from the
// CPU. The console memory implements this interface and maps the address to
// the correct memory area, meaning that CPU access need not care which part of
// memory it is writing to. Cartridge mappers also implement this interface.
type CPUBus interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}

// DebugBus defines the meta-operations for all memory areas. Think of these
// functions as "debugging" functions, that is operations outside of the normal
// operation of the machine.
type DebugBus interface {
	Peek(address uint16) (uint8, error)
	Poke(address uint16, value uint8) error
}

// VideoBus is implemented by devices that need to be notified of every tick
// of the video pipeline's pixel clock.
type VideoBus interface {
	VideoCycle(scanline int, cycle int, showBackground bool, showSprites bool)
}

// InterruptBus is implemented by devices that can raise an interrupt request
// on the CPU's IRQ line.
type InterruptBus interface {
	IRQ() bool
}
