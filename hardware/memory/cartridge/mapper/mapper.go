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

package mapper

// CartMapper implementations hold the bank switching state of a cartridge and
// translate addresses in the CPU and video address spaces into offsets in the
// cartridge's ROM and RAM.
//
// The CPU address space is seen from OriginCart upwards. The video address
// space is seen below 0x2000 (the pattern tables). The two spaces do not
// overlap in the area a cartridge responds to.
type CartMapper interface {
	// short name of the mapper chip. for example, "MMC1"
	ID() string

	// read the cartridge at the specified address. only the MMC2 and MMC4
	// mappers change state on a read
	Read(address uint16) (uint8, error)

	// write to the cartridge at the specified address. a write to a
	// register changes the bank switching state
	Write(address uint16, data uint8) error

	// VideoCycle is called by the video pipeline once for every pixel
	// clock. for most mappers this does nothing
	VideoCycle(scanline int, cycle int, showBackground bool, showSprites bool)

	// reset the registers of the mapper to their power on state. ROM and
	// save RAM are not affected
	Reset()

	// list of the banks currently mapped into each window
	MappedBanks() []BankInfo
}

// InterruptSource is implemented by mappers that can raise an interrupt
// request. The request remains pending until it is acknowledged.
type InterruptSource interface {
	IRQ() bool
	AcknowledgeIRQ()
}

// CartRegisters is implemented by mappers that can describe the state of
// their registers in more detail than is possible with MappedBanks().
type CartRegisters interface {
	Registers() string
}
