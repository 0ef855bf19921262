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

package archivefs

import (
	"fmt"
	"io"
)

// Open the file at filename and return an io.ReadSeeker for it, along with
// the size of the file. The filename can pass through an archive.
func Open(filename string) (io.ReadSeeker, int, error) {
	var afs Path
	if err := afs.Set(filename); err != nil {
		return nil, 0, err
	}
	defer afs.Close()
	return afs.Open()
}

// ReadFile returns the entire contents of the file at filename. The filename
// can pass through an archive.
func ReadFile(filename string) ([]byte, error) {
	r, size, err := Open(filename)
	if err != nil {
		return nil, err
	}
	if c, ok := r.(io.Closer); ok {
		defer c.Close()
	}

	b := make([]byte, size)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, fmt.Errorf("archivefs: read: %w", err)
	}

	return b, nil
}
