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

// Package archivefs allows paths that pass through archive files to be used
// as though they were ordinary paths. For example:
//
//	roms/collection.zip/europe/game.nes
//
// Zip and 7z archives are supported. The root of an archive is treated as a
// directory. Archives inside archives are not supported.
package archivefs
