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

// Package modalflag wraps the flag package of the standard library. It adds
// program modes (and sub-modes), each of which can have its own set of flags.
//
// Arguments are given with NewArgs() and then processed with Parse(). Flags
// are added before each call to Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	strict := md.AddBool("strict", true, "halt on illegal writes")
//	md.AddSubModes("INFO", "MONITOR", "STATE", "MAP")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
// The first sub-mode is the default. Sub-mode comparisons are not case
// sensitive and Mode() always returns the upper case name:
//
//	switch md.Mode() {
//	case "INFO":
//		md.NewMode()
//		json := md.AddBool("json", false, "output as JSON")
//		_, _ = md.Parse()
//		info(md.GetArg(0), *json)
//	}
//
// NewMode() begins a new set of flags and sub-modes. The path of modes
// selected so far is returned by Path(), for example "MONITOR".
package modalflag
