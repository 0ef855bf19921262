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

// Package cartridge fully implements loading of iNES cartridge images and the
// bank switching schemes (mappers) used by cartridges of the console.
//
// Cartridge images are loaded with the Load() function. The header is decoded
// and the mapper number selects the mapper from the table in mappers.go. A
// cartridge is either returned complete or not at all.
//
// The Cartridge type implements the bus.CPUBus and bus.DebugBus interfaces.
// Addresses must be canonical, meaning that any mirroring performed by the
// console's address bus must already have been resolved. Addresses below
// 0x2000 are pattern table addresses in the video address space. Addresses
// from memorymap.OriginCart upwards are CPU addresses.
//
// Battery backed RAM is represented by the SaveRAM type. Persisting the
// contents of SaveRAM between sessions is the responsibility of the saves
// package.
package cartridge
