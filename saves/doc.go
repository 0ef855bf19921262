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

// Package saves persists the battery backed RAM of cartridges between
// sessions.
//
// Save files are stored in a single directory, one file per cartridge. The
// name of the file is the hash of the cartridge image followed by the .sav
// extension. The file contains the raw content of the cartridge's SaveRAM and
// nothing else.
//
// Files are never written in place. The content is first written to a
// temporary file in the same directory, which is then renamed over the
// existing save file. A crash during a flush therefore never leaves a
// partially written save file.
package saves
