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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. The first argument
// is a pattern string rather than a format string because the pattern is
// what identifies the error in later calls to Is() and Has():
//
//	e := curated.Errorf("mapper: illegal write: %04x", address)
//
//	if curated.Is(e, "mapper: illegal write: %04x") {
//		fmt.Println("true")
//	}
//
// Packages that raise errors of a particular kind export the pattern as a
// constant. For example, the mapper package exports IllegalWriteError and the
// bus checks for it with curated.Has() before deciding whether the error
// should halt emulation.
//
// Has() is similar to Is() but searches the chain of curated errors passed as
// values to Errorf().
//
// The Error() function normalises the message so that duplicate adjacent
// parts are removed. This means the question of whether to wrap an error at
// each level of a call stack does not need much thought:
//
//	return curated.Errorf("cartridge: %v", err)
//
// will not produce "cartridge: cartridge: ..." if err was itself created with
// a "cartridge: " prefix.
//
// Curated errors support the Unwrap() convention of the errors package. Any
// error value passed to Errorf() can be found with errors.Is() and errors.As().
package curated
