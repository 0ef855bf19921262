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

package mapper_test

import (
	"testing"

	"github.com/Lunatic6502/EmuNes/hardware/memory/cartridge/mapper"
	"github.com/Lunatic6502/EmuNes/test"
)

func TestOffset(t *testing.T) {
	// four 16K banks
	const length = 4 * mapper.Size16K

	test.ExpectEquality(t, mapper.Offset(0, mapper.Size16K, length, 0x8000, 0x8000), 0)
	test.ExpectEquality(t, mapper.Offset(1, mapper.Size16K, length, 0x8001, 0x8000), 0x4001)
	test.ExpectEquality(t, mapper.Offset(3, mapper.Size16K, length, 0xbfff, 0x8000), 0xffff)

	// bank numbers are reduced modulo the number of banks
	test.ExpectEquality(t, mapper.Offset(5, mapper.Size16K, length, 0x8000, 0x8000), 0x4000)
	test.ExpectEquality(t, mapper.Offset(-1, mapper.Size16K, length, 0x8000, 0x8000), 0xc000)

	// data smaller than the window is repeated
	test.ExpectEquality(t, mapper.Offset(0, mapper.Size32K, mapper.Size16K, 0xc123, 0x8000), 0x0123)
}

func TestBanks(t *testing.T) {
	test.ExpectEquality(t, mapper.Banks(0x20000, mapper.Size8K), 16)
	test.ExpectEquality(t, mapper.Banks(0x4000, mapper.Size32K), 1)
}

func TestBankInfo(t *testing.T) {
	b := mapper.NewBankInfo(0xc000, 9, mapper.Size16K, 8*mapper.Size16K)
	test.ExpectEquality(t, b.Number, 1)
	test.ExpectEquality(t, b.Memtop, uint16(0xffff))
	test.ExpectEquality(t, b.String(), "c000-ffff PRG 16K 1")

	b = mapper.NewBankInfo(0x6000, 2, mapper.Size8K, 0x10000)
	b.IsRAM = true
	test.ExpectEquality(t, b.String(), "6000-7fff PRG 8K 2R")

	b = mapper.NewBankInfo(0x1000, 3, mapper.Size4K, 0x8000)
	b.Character = true
	test.ExpectEquality(t, b.String(), "1000-1fff CHR 4K 3")
}

func TestNametable(t *testing.T) {
	test.ExpectEquality(t, mapper.Horizontal.Nametable(0x2000), uint16(0x0000))
	test.ExpectEquality(t, mapper.Horizontal.Nametable(0x2400), uint16(0x0000))
	test.ExpectEquality(t, mapper.Horizontal.Nametable(0x2800), uint16(0x0400))
	test.ExpectEquality(t, mapper.Vertical.Nametable(0x2400), uint16(0x0400))
	test.ExpectEquality(t, mapper.Vertical.Nametable(0x2c05), uint16(0x0405))
	test.ExpectEquality(t, mapper.SingleUpper.Nametable(0x2000), uint16(0x0400))
	test.ExpectEquality(t, mapper.FourScreen.Nametable(0x2c00), uint16(0x0c00))

	// nametable mirror at $3000
	test.ExpectEquality(t, mapper.Vertical.Nametable(0x3401), uint16(0x0401))
}
