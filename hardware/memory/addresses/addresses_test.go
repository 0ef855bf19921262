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

package addresses_test

import (
	"testing"

	"github.com/Lunatic6502/EmuNes/hardware/memory/addresses"
	"github.com/Lunatic6502/EmuNes/test"
)

func TestFormatting(t *testing.T) {
	test.ExpectEquality(t, addresses.Hex(0x4020), "$4020")
	test.ExpectEquality(t, addresses.HexData(0x9c), "$9c")
	test.ExpectEquality(t, addresses.Describe(0x5205, true), "$5205 (MMC5_MULLO)")
	test.ExpectEquality(t, addresses.Describe(0x5205, false), "$5205 (MMC5_MULA)")
	test.ExpectEquality(t, addresses.Describe(0x8000, false), "$8000")
}

func TestParse(t *testing.T) {
	a, err := addresses.ParseAddress("$8000")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, a, uint16(0x8000))

	a, err = addresses.ParseAddress("0x5c00")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, a, uint16(0x5c00))

	a, err = addresses.ParseAddress("16")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, a, uint16(16))

	a, err = addresses.ParseAddress("mmc5_prgmode")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, a, uint16(0x5100))

	_, err = addresses.ParseAddress("$10000")
	test.ExpectFailure(t, err)

	d, err := addresses.ParseData("$ff")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, d, uint8(0xff))

	_, err = addresses.ParseData("256")
	test.ExpectFailure(t, err)
}
