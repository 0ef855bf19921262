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

// Package prefs holds the typed preference values used throughout the
// emulator and the means to save them to disk.
//
// Preference values are declared as fields of a struct and registered with a
// Disk instance under a dotted key:
//
//	dsk, err := prefs.NewDisk(pth)
//	err = dsk.Add("hardware.strict", &p.Strict)
//	err = dsk.Load()
//
// The file written by Save() is a plain text list of "key :: value" lines.
// Lines for keys that have not been registered with the Disk instance are
// preserved so that more than one part of the program can share the same
// file.
//
// Values can also be set from the command line with a preferences string of
// the form "key::value; key::value". PushCommandLineStack() parses the
// string. Values in the stack take priority over the values in the file and
// are consumed as they are used.
package prefs
