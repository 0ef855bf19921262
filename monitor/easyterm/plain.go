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

package easyterm

import (
	"io"
	"strings"
)

// read a single line one byte at a time so that nothing beyond the line
// ending is consumed
func readPlainLine(r io.Reader) (string, error) {
	var s strings.Builder
	b := make([]byte, 1)
	for {
		n, err := r.Read(b)
		if n == 1 {
			if b[0] == '\n' {
				return strings.TrimSuffix(s.String(), "\r"), nil
			}
			s.WriteByte(b[0])
			continue
		}
		if err != nil {
			if err == io.EOF && s.Len() > 0 {
				return s.String(), nil
			}
			return "", err
		}
	}
}
