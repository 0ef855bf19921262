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
	"github.com/Lunatic6502/EmuNes/hardware/memory/cartridge/mapper"
)

// the mapper number in the header selects the mapper constructor
var mapperTable = map[int]func(*board) mapper.CartMapper{
	0:  newNROM,
	1:  newMMC1,
	2:  newUxROM,
	3:  newCNROM,
	4:  newMMC3,
	5:  newMMC5,
	7:  newAxROM,
	9:  newMMC2,
	10: newMMC4,
	11: newColourDreams,
	13: newCPROM,
	15: new100in1,
	66: newGxROM,
	71: newCamerica71,
}

var mapperNames = map[int]string{
	0:  "NROM",
	1:  "MMC1",
	2:  "UxROM",
	3:  "CNROM",
	4:  "MMC3",
	5:  "MMC5",
	7:  "AxROM",
	9:  "MMC2",
	10: "MMC4",
	11: "Colour Dreams",
	13: "CPROM",
	15: "100-in-1",
	66: "GxROM",
	71: "Camerica",
}

// Supported returns true if the mapper number is supported.
func Supported(id int) bool {
	_, ok := mapperTable[id]
	return ok
}
