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

// Package monitor is an interactive command line for inspecting and
// modifying the memory of a running console. Commands are entered one per
// line, for example:
//
//	PEEK $6000 $8000
//	POKE $0000 $ff
//	DUMP $c000 32
//	CYCLE 2
//	BANKS
//
// Addresses and values can be given in hex with a leading $ or 0x, or in
// decimal. Commands are not case sensitive.
package monitor
