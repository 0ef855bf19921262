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

// Package cartridgeloader is used to specify the data that is to be attached
// to the emulated console.
//
// When the cartridge is ready to be loaded into the emulator, the Load()
// function should be used. The Load() function handles loading of data from
// different sources. Local files, files inside zip and 7z archives, and data
// over HTTP are supported.
//
// The simplest instance of the Loader type:
//
//	cl := cartridgeloader.NewLoader("roms/game.nes")
//
// If the filename refers to an archive, or to a directory inside an archive,
// then the first file with the .nes extension (sorted by name) is loaded:
//
//	cl := cartridgeloader.NewLoader("roms/collection.zip")
//
// A specific file inside an archive can be named by treating the archive as a
// directory:
//
//	cl := cartridgeloader.NewLoader("roms/collection.zip/europe/game.nes")
package cartridgeloader
