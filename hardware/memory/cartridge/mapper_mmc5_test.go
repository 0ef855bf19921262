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

package cartridge_test

import (
	"testing"

	"github.com/Lunatic6502/EmuNes/curated"
	"github.com/Lunatic6502/EmuNes/hardware/memory/cartridge"
	"github.com/Lunatic6502/EmuNes/hardware/memory/cartridge/mapper"
	"github.com/Lunatic6502/EmuNes/test"
)

// 128K of PRG and 128K of CHR
func mmc5(t *testing.T) *cartridge.Cartridge {
	t.Helper()
	cart := load(t, image(5, 8, 16, 0x00))
	test.DemandEquality(t, cart.ID(), "MMC5")
	return cart
}

func TestMMC5PRGModes(t *testing.T) {
	cart := mmc5(t)

	// PRG RAM is 64K
	test.ExpectEquality(t, cart.SaveRAM.Len(), 0x10000)

	// mode 0
	test.ExpectEquality(t, read(t, cart, 0x8000), uint8(0))
	write(t, cart, 0x5114, 0x02)
	test.ExpectEquality(t, read(t, cart, 0x8000), uint8(64))
	test.ExpectEquality(t, read(t, cart, 0xffff), uint8(95))

	// bank number reduced by the number of 32K banks
	write(t, cart, 0x5114, 0x06)
	test.ExpectEquality(t, read(t, cart, 0x8000), uint8(64))

	// mode 1
	write(t, cart, 0x5100, 0x01)
	write(t, cart, 0x5115, 0x83)
	write(t, cart, 0x5117, 0x05)
	test.ExpectEquality(t, read(t, cart, 0x8000), uint8(48))
	test.ExpectEquality(t, read(t, cart, 0xc000), uint8(80))

	// mode 2
	write(t, cart, 0x5100, 0x02)
	write(t, cart, 0x5115, 0x81)
	write(t, cart, 0x5116, 0x85)
	write(t, cart, 0x5117, 0x0f)
	test.ExpectEquality(t, read(t, cart, 0x8000), uint8(16))
	test.ExpectEquality(t, read(t, cart, 0xc000), uint8(40))
	test.ExpectEquality(t, read(t, cart, 0xe000), uint8(120))

	// mode 3
	write(t, cart, 0x5100, 0x03)
	write(t, cart, 0x5114, 0x81)
	write(t, cart, 0x5115, 0x82)
	write(t, cart, 0x5116, 0x83)
	write(t, cart, 0x5117, 0x04)
	test.ExpectEquality(t, read(t, cart, 0x8000), uint8(8))
	test.ExpectEquality(t, read(t, cart, 0xa000), uint8(16))
	test.ExpectEquality(t, read(t, cart, 0xc000), uint8(24))
	test.ExpectEquality(t, read(t, cart, 0xe000), uint8(32))
}

func TestMMC5IllegalWrites(t *testing.T) {
	cart := mmc5(t)

	// everything in the program area is ROM in mode 0
	for a := 0x8000; a <= 0xffff; a += 0x100 {
		err := cart.Write(uint16(a), 0x00)
		test.ExpectEquality(t, curated.Is(err, mapper.IllegalWriteError), true, a)
	}

	// mode 1. $8000 window is RAM and the $c000 window is ROM
	write(t, cart, 0x5100, 0x01)
	write(t, cart, 0x5115, 0x01)
	write(t, cart, 0x8010, 0x77)
	test.ExpectEquality(t, cart.SaveRAM.Read(0x4010), uint8(0x77))
	err := cart.Write(0xc000, 0x00)
	test.ExpectEquality(t, curated.Is(err, mapper.IllegalWriteError), true)

	// ROM bit set
	write(t, cart, 0x5115, 0x81)
	err = cart.Write(0x8010, 0x00)
	test.ExpectEquality(t, curated.Is(err, mapper.IllegalWriteError), true)

	// reads are always from ROM
	write(t, cart, 0x5115, 0x01)
	test.ExpectEquality(t, read(t, cart, 0x8010), uint8(16))

	// mode 3. the $e000 window is always ROM
	write(t, cart, 0x5100, 0x03)
	write(t, cart, 0x5116, 0x02)
	write(t, cart, 0xc001, 0x66)
	test.ExpectEquality(t, cart.SaveRAM.Read(0x4001), uint8(0x66))
	err = cart.Write(0xe000, 0x00)
	test.ExpectEquality(t, curated.Is(err, mapper.IllegalWriteError), true)
}

func TestMMC5Protect(t *testing.T) {
	cart := mmc5(t)
	write(t, cart, 0x5100, 0x03)
	write(t, cart, 0x5114, 0x00)

	// both protect registers must be set
	write(t, cart, 0x5102, 0x02)
	write(t, cart, 0x8000, 0x01)
	write(t, cart, 0x6000, 0x01)

	write(t, cart, 0x5103, 0x01)
	err := cart.Write(0x8000, 0x00)
	test.ExpectEquality(t, curated.Is(err, mapper.WriteProtectedError), true)
	err = cart.Write(0x6000, 0x00)
	test.ExpectEquality(t, curated.Is(err, mapper.WriteProtectedError), true)

	// ROM takes precedence over protection
	write(t, cart, 0x5114, 0x80)
	err = cart.Write(0x8000, 0x00)
	test.ExpectEquality(t, curated.Is(err, mapper.IllegalWriteError), true)

	write(t, cart, 0x5103, 0x00)
	write(t, cart, 0x6000, 0x02)
	test.ExpectEquality(t, read(t, cart, 0x6000), uint8(0x02))
}

func TestMMC5RAMBank(t *testing.T) {
	cart := mmc5(t)
	write(t, cart, 0x5113, 0x03)
	write(t, cart, 0x6005, 0xaa)
	test.ExpectEquality(t, cart.SaveRAM.Read(3*0x2000+5), uint8(0xaa))
	test.ExpectEquality(t, read(t, cart, 0x6005), uint8(0xaa))

	write(t, cart, 0x5113, 0x00)
	test.ExpectEquality(t, read(t, cart, 0x6005), uint8(0x00))

	// only the low three bits select the page
	write(t, cart, 0x5113, 0x0b)
	test.ExpectEquality(t, read(t, cart, 0x6005), uint8(0xaa))
}

func TestMMC5Multiplier(t *testing.T) {
	cart := mmc5(t)

	write(t, cart, 0x5205, 12)
	write(t, cart, 0x5206, 12)
	test.ExpectEquality(t, read(t, cart, 0x5205), uint8(144))
	test.ExpectEquality(t, read(t, cart, 0x5206), uint8(0))

	write(t, cart, 0x5205, 200)
	write(t, cart, 0x5206, 200)
	test.ExpectEquality(t, read(t, cart, 0x5205), uint8(0x40))
	test.ExpectEquality(t, read(t, cart, 0x5206), uint8(0x9c))

	// product is updated on every write
	write(t, cart, 0x5205, 1)
	test.ExpectEquality(t, read(t, cart, 0x5205), uint8(200))
}

func TestMMC5ExpansionRAM(t *testing.T) {
	cart := mmc5(t)

	// mode 0 reads open bus and writes zero when not rendering
	write(t, cart, 0x5c10, 0x07)
	test.ExpectEquality(t, read(t, cart, 0x5c10), uint8(0x5c))
	write(t, cart, 0x5104, 0x02)
	test.ExpectEquality(t, read(t, cart, 0x5c10), uint8(0x00))

	// mode 2 is ordinary RAM
	write(t, cart, 0x5c10, 0x07)
	test.ExpectEquality(t, read(t, cart, 0x5c10), uint8(0x07))

	// mode 1 writes the value while rendering
	write(t, cart, 0x5104, 0x01)
	cart.VideoCycle(10, 0, true, true)
	write(t, cart, 0x5c11, 0x09)
	cart.VideoCycle(241, 0, true, true)
	write(t, cart, 0x5c12, 0x09)
	write(t, cart, 0x5104, 0x02)
	test.ExpectEquality(t, read(t, cart, 0x5c11), uint8(0x09))
	test.ExpectEquality(t, read(t, cart, 0x5c12), uint8(0x00))

	// mode 3 is read only
	write(t, cart, 0x5104, 0x03)
	write(t, cart, 0x5c10, 0x08)
	test.ExpectEquality(t, read(t, cart, 0x5c10), uint8(0x07))
}

func TestMMC5CHRModes(t *testing.T) {
	cart := mmc5(t)

	// 8K
	write(t, cart, 0x5127, 0x03)
	test.ExpectEquality(t, read(t, cart, 0x0000), uint8(24))
	test.ExpectEquality(t, read(t, cart, 0x1c00), uint8(31))

	// 4K
	write(t, cart, 0x5101, 0x01)
	write(t, cart, 0x5123, 0x02)
	write(t, cart, 0x5127, 0x05)
	test.ExpectEquality(t, read(t, cart, 0x0000), uint8(8))
	test.ExpectEquality(t, read(t, cart, 0x1000), uint8(20))

	// 1K
	write(t, cart, 0x5101, 0x03)
	for i := uint16(0); i < 8; i++ {
		write(t, cart, 0x5120+i, uint8(i*2))
	}
	for i := uint16(0); i < 8; i++ {
		test.ExpectEquality(t, read(t, cart, i*0x400), uint8(i*2), i)
	}

	// writing to the background registers selects the background set,
	// which is repeated in both halves of the pattern tables
	write(t, cart, 0x5128, 10)
	write(t, cart, 0x512b, 20)
	test.ExpectEquality(t, read(t, cart, 0x0000), uint8(10))
	test.ExpectEquality(t, read(t, cart, 0x1000), uint8(10))
	test.ExpectEquality(t, read(t, cart, 0x0c00), uint8(20))

	// bank numbers are reduced by the number of banks
	write(t, cart, 0x5120, 130)
	test.ExpectEquality(t, read(t, cart, 0x0000), uint8(2))
}

func TestMMC5Nametables(t *testing.T) {
	cart := mmc5(t)
	write(t, cart, 0x5105, 0x44)
	test.ExpectEquality(t, cart.Mirroring(), mapper.Vertical)
	write(t, cart, 0x5105, 0x55)
	test.ExpectEquality(t, cart.Mirroring(), mapper.SingleUpper)
	write(t, cart, 0x5105, 0x50)
	test.ExpectEquality(t, cart.Mirroring(), mapper.Horizontal)

	// non-canonical layouts do not change the mirroring
	write(t, cart, 0x5105, 0xe4)
	test.ExpectEquality(t, cart.Mirroring(), mapper.Horizontal)
}
