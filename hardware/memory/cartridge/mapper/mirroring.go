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

package mapper

// Mirroring describes how the four logical nametables in the video address
// space map onto the console's nametable memory.
type Mirroring int

// List of valid Mirroring values.
const (
	Horizontal Mirroring = iota
	Vertical
	SingleLower
	SingleUpper
	FourScreen
)

func (m Mirroring) String() string {
	switch m {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case SingleLower:
		return "single lower"
	case SingleUpper:
		return "single upper"
	case FourScreen:
		return "four screen"
	}
	return "unknown"
}

// the physical nametable for each of the four logical nametables
var nametableLayout = [...][4]uint16{
	Horizontal:  {0, 0, 1, 1},
	Vertical:    {0, 1, 0, 1},
	SingleLower: {0, 0, 0, 0},
	SingleUpper: {1, 1, 1, 1},
	FourScreen:  {0, 1, 2, 3},
}

// Nametable returns the offset into nametable memory for an address in the
// nametable area of the video address space ($2000 to $3eff). Nametable
// memory must be 2K or, for FourScreen mirroring, 4K.
func (m Mirroring) Nametable(address uint16) uint16 {
	if m < Horizontal || m > FourScreen {
		m = Horizontal
	}
	a := (address - 0x2000) % 0x1000
	return nametableLayout[m][a/0x0400]*0x0400 + a%0x0400
}
