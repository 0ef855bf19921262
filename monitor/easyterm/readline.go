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

//go:build !windows

package easyterm

import (
	"io"
	"strings"
)

// ReadLine prints the prompt and returns the next line of input, without the
// line ending. The terminal is put into cbreak mode for the duration.
//
// Backspace and Ctrl-U are handled. Cursor keys are ignored. Ctrl-D on an
// empty line returns io.EOF. If the input is not a terminal then the line is
// read without any editing.
func (pt *Terminal) ReadLine(prompt string) (string, error) {
	pt.Print("%s", prompt)

	if !pt.isTerm {
		return readPlainLine(pt.input)
	}

	pt.CBreakMode()
	defer pt.CanonicalMode()

	var line []byte
	b := make([]byte, 1)

	for {
		_, err := pt.input.Read(b)
		if err != nil {
			return "", err
		}

		switch b[0] {
		case KeyCarriageReturn, KeyLineFeed:
			pt.Print("\n")
			return string(line), nil

		case KeyCtrlD:
			if len(line) == 0 {
				pt.Print("\n")
				return "", io.EOF
			}

		case KeyBackspace, KeyDelete:
			if len(line) > 0 {
				line = line[:len(line)-1]
				pt.Print("\b \b")
			}

		case KeyCtrlU:
			pt.Print("%s", strings.Repeat("\b \b", len(line)))
			line = line[:0]

		case KeyEsc:
			// discard the remainder of the escape sequence
			_, err = pt.input.Read(b)
			if err != nil {
				return "", err
			}
			if b[0] == EscCursor {
				_, err = pt.input.Read(b)
				if err != nil {
					return "", err
				}
			}

		default:
			if b[0] >= 32 && b[0] < KeyDelete {
				line = append(line, b[0])
				pt.Print("%c", b[0])
			}
		}
	}
}
