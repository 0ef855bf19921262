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

//go:build windows

package easyterm

import (
	"fmt"
	"os"
)

// Terminal on windows reads lines without any editing and has no geometry.
type Terminal struct {
	input  *os.File
	output *os.File
}

// Initialise the fields in the Terminal struct.
func (pt *Terminal) Initialise(inputFile, outputFile *os.File) error {
	if inputFile == nil || outputFile == nil {
		return fmt.Errorf("easyterm: terminal requires an input and an output file")
	}
	pt.input = inputFile
	pt.output = outputFile
	return nil
}

// CleanUp does nothing on windows.
func (pt *Terminal) CleanUp() {}

// CanonicalMode does nothing on windows.
func (pt *Terminal) CanonicalMode() {}

// IsTerminal always returns false on windows.
func (pt *Terminal) IsTerminal() bool {
	return false
}

// Print writes the formatted string to the output file.
func (pt *Terminal) Print(s string, a ...interface{}) {
	pt.output.WriteString(fmt.Sprintf(s, a...))
}

// Write implements the io.Writer interface.
func (pt *Terminal) Write(p []byte) (int, error) {
	return pt.output.Write(p)
}

// Geometry is not known on windows.
func (pt *Terminal) Geometry() (int, int) {
	return 0, 0
}

// ReadLine prints the prompt and returns the next line of input.
func (pt *Terminal) ReadLine(prompt string) (string, error) {
	pt.Print("%s", prompt)
	return readPlainLine(pt.input)
}
