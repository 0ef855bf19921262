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

// Package memory implements the CPU address bus of the console. It sits
// between the CPU and the devices that respond to addresses on the bus:
//
//	                             debug bus
//
//	                                 |
//	                                 |
//
//	    CPU ---- cpu bus ---- * ---- MEMORY ---- RAM
//	                                        \
//	                                         |---- chips (video, APU/IO)
//	                                         |
//	                                          ---- Cartridge
//
// The asterisk indicates that addresses used by the CPU are first resolved to
// a canonical address. The resolution is configured at runtime with
// ConfigureMirror(). A mirror of size S beginning at base, with an extent E,
// causes every address in the range base to base+E-1 to resolve to
// base + (address - base) % S. Where mirrors overlap, the mirror configured
// last takes precedence.
//
// Reads and writes through any alias of an address therefore refer to the
// same byte. Neither the chips nor the cartridge ever see an unresolved
// address.
//
// Resolved addresses are dispatched in the following order:
//
//  1. chips attached with AttachChip() claiming the address
//  2. the cartridge, for addresses from memorymap.OriginCart upwards that are
//     not part of a configured mirror
//  3. the RAM backing store
//
// With no cartridge attached the entire address space is RAM.
//
// The console layout (2K of RAM mirrored four times and the eight video
// registers mirrored through to $3fff) is created by NewConsoleMemory().
// NewMemory() creates a bus with no mirrors configured.
package memory
