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

// Package mapper contains the CartMapper interface implemented by every
// cartridge mapper, together with the types and helper functions shared by
// those implementations and by the parts of the emulator that inspect them.
//
// The concrete mappers live in the cartridge package. They are selected by
// the mapper number in the cartridge header and are never created directly.
//
// All mappers calculate the offset into their ROM or RAM with the Offset()
// function. The bank number is reduced modulo the number of banks of that
// size before it is used, so a bank register can never index out of range.
//
// Errors raised by mappers are curated errors (see the curated package) using
// one of the patterns exported by this package. The caller decides whether
// an IllegalWriteError or WriteProtectedError should halt emulation. An
// InvalidModeError always indicates a fault in the emulator.
package mapper
