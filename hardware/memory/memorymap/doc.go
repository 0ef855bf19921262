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

// Package memorymap describes the layout of the console's CPU address space
// and of the video address space as seen by a cartridge mapper.
//
// MapAddress() returns the canonical address and the area of any CPU address
// according to the console's fixed wiring: the 2K of internal RAM repeated
// four times in the first 8K and the eight video registers repeated across
// the following 8K. Addresses from OriginCart upwards belong to the
// cartridge. The memory package uses these constants to configure its
// default mirror windows.
//
// Summary() returns a table of areas and is useful for reference.
package memorymap
