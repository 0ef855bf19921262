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

// Package resources contains functions to prepare paths for emulator
// resources: the preferences file and the battery backed save files.
//
// The JoinPath() function returns the path to the resource specified in the
// arguments, prefixed with the base resource directory. Directories are
// created as required but files are never touched.
//
// The base directory is ".emunes" in the current working directory if such a
// directory exists. Otherwise it is "emunes" in the user's configuration
// directory. On a modern Linux system that would be:
//
//	/home/user/.config/emunes/
package resources
