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

// Error patterns for errors raised by cartridge mappers. The first value in
// each case is the ID of the mapper.
const (
	// a write to an address that is mapped to ROM
	IllegalWriteError = "mapper: %s: illegal write: %s"

	// a write to RAM while the RAM is write protected
	WriteProtectedError = "mapper: %s: write protected: %s"

	// a mode register is outside its defined range. this indicates a bug in
	// the emulation and should never happen
	InvalidModeError = "mapper: %s: invalid mode: %s = %d"
)
