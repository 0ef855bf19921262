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

package cartridge

import (
	"fmt"
	"io"
)

// DefaultSaveRAMSize is the size of SaveRAM for most mappers.
const DefaultSaveRAMSize = 0x2000

// SaveRAM is the RAM on the cartridge that is mapped into the CPU address
// space, usually at $6000. If the cartridge has a battery then the contents
// should be preserved between sessions.
type SaveRAM struct {
	data  []uint8
	dirty bool
}

// NewSaveRAM is the preferred method of initialisation for the SaveRAM type.
func NewSaveRAM(size int) *SaveRAM {
	if size <= 0 {
		size = DefaultSaveRAMSize
	}
	return &SaveRAM{
		data: make([]uint8, size),
	}
}

func (s *SaveRAM) String() string {
	if s.dirty {
		return fmt.Sprintf("%dK (dirty)", len(s.data)/1024)
	}
	return fmt.Sprintf("%dK", len(s.data)/1024)
}

// Len returns the size of SaveRAM in bytes.
func (s *SaveRAM) Len() int {
	return len(s.data)
}

// Read value at offset. The offset wraps around the size of SaveRAM.
func (s *SaveRAM) Read(offset int) uint8 {
	return s.data[offset%len(s.data)]
}

// Write value at offset. The offset wraps around the size of SaveRAM.
func (s *SaveRAM) Write(offset int, value uint8) {
	s.data[offset%len(s.data)] = value
	s.dirty = true
}

// Resize changes the size of SaveRAM. Existing content that fits in the new
// size is preserved.
func (s *SaveRAM) Resize(size int) {
	if size <= 0 || size == len(s.data) {
		return
	}
	d := make([]uint8, size)
	copy(d, s.data)
	s.data = d
}

// Dirty returns true if SaveRAM has been written to since it was last loaded
// or saved.
func (s *SaveRAM) Dirty() bool {
	return s.dirty
}

// Bytes returns a copy of the contents of SaveRAM.
func (s *SaveRAM) Bytes() []uint8 {
	d := make([]uint8, len(s.data))
	copy(d, s.data)
	return d
}

// Load replaces the contents of SaveRAM with data from the reader. The reader
// must supply exactly the number of bytes returned by Len().
func (s *SaveRAM) Load(r io.Reader) error {
	d := make([]uint8, len(s.data))
	if _, err := io.ReadFull(r, d); err != nil {
		return fmt.Errorf("save ram: %w", err)
	}

	// anything left over means the data is for a different cartridge
	var extra [1]uint8
	if n, _ := r.Read(extra[:]); n > 0 {
		return fmt.Errorf("save ram: data is longer than %d bytes", len(s.data))
	}

	s.data = d
	s.dirty = false
	return nil
}

// Save writes the contents of SaveRAM to the writer.
func (s *SaveRAM) Save(w io.Writer) error {
	if _, err := w.Write(s.data); err != nil {
		return fmt.Errorf("save ram: %w", err)
	}
	s.dirty = false
	return nil
}
