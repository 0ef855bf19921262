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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect*() functions report a failure with t.Errorf() and allow the test
// to continue. The Demand*() functions report with t.Fatalf() and should be
// used when the value is needed by later parts of the test. For example,
// demanding that a cartridge loaded without error before reading from it.
//
// ExpectSuccess() and ExpectFailure() understand bool and error values. The
// nil value is considered a success, in the same way that a nil error means
// no error.
//
// The Writer type implements io.Writer and should be used to capture output.
// The Compare() function can then be used to test for equality.
package test
