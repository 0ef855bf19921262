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

func TestHeader(t *testing.T) {
	cart := load(t, image(4, 2, 1, 0x03))

	test.ExpectEquality(t, cart.Header.MapperID, 4)
	test.ExpectEquality(t, cart.Header.PRGBanks, 2)
	test.ExpectEquality(t, cart.Header.CHRBanks, 1)
	test.ExpectEquality(t, cart.Header.Battery, true)
	test.ExpectEquality(t, cart.Header.Trainer, false)
	test.ExpectEquality(t, cart.Mirroring(), mapper.Vertical)
	test.ExpectEquality(t, cart.ID(), "MMC3")
	test.ExpectEquality(t, len(cart.PRG), 2*cartridge.PRGBankSize)
	test.ExpectEquality(t, len(cart.CHR), cartridge.CHRBankSize)
	test.ExpectEquality(t, cart.CHRRAM, false)
	test.ExpectEquality(t, len(cart.Hash), 16)
}

func TestMapperNumber(t *testing.T) {
	// the high nibble of the mapper number is in the second control byte
	cart := load(t, image(66, 2, 1, 0x00))
	test.ExpectEquality(t, cart.Header.MapperID, 66)
	test.ExpectEquality(t, cart.ID(), "GxROM")
	test.ExpectEquality(t, cart.Mirroring(), mapper.Horizontal)

	cart = load(t, image(71, 2, 1, 0x00))
	test.ExpectEquality(t, cart.ID(), "Camerica71")
}

func TestFourScreen(t *testing.T) {
	// the four screen bit overrides the mirroring bit
	cart := load(t, image(0, 1, 1, 0x09))
	test.ExpectEquality(t, cart.Mirroring(), mapper.FourScreen)
}

func TestCHRRAM(t *testing.T) {
	cart := load(t, image(0, 1, 0, 0x00))
	test.ExpectEquality(t, cart.CHRRAM, true)
	test.ExpectEquality(t, len(cart.CHR), cartridge.CHRBankSize)
	test.ExpectEquality(t, read(t, cart, 0x1234), uint8(0))

	write(t, cart, 0x1234, 0x56)
	test.ExpectEquality(t, read(t, cart, 0x1234), uint8(0x56))
}

func TestTrainer(t *testing.T) {
	cart := load(t, image(0, 1, 1, 0x04))
	test.ExpectEquality(t, cart.Header.Trainer, true)
	test.ExpectEquality(t, len(cart.Trainer), cartridge.TrainerLen)
	test.ExpectEquality(t, cart.Trainer[0], uint8(0xff))

	// PRG data begins after the trainer
	test.ExpectEquality(t, read(t, cart, 0x8000), uint8(0))
	test.ExpectEquality(t, read(t, cart, 0x8400), uint8(1))
}

func TestFormatError(t *testing.T) {
	data := image(0, 1, 1, 0x00)
	data[3] = 0x00
	_, err := cartridge.Load(nil, data)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, cartridge.FormatError), true)

	// truncated header
	_, err = cartridge.Load(nil, []uint8{'N', 'E', 'S', 0x1a, 1})
	test.ExpectEquality(t, curated.Is(err, cartridge.FormatError), true)

	// truncated data
	data = image(0, 2, 1, 0x00)
	_, err = cartridge.Load(nil, data[:len(data)-1])
	test.ExpectEquality(t, curated.Is(err, cartridge.FormatError), true)

	// no PRG data
	_, err = cartridge.Load(nil, image(0, 0, 1, 0x00))
	test.ExpectEquality(t, curated.Is(err, cartridge.FormatError), true)
}

func TestUnsupportedMapper(t *testing.T) {
	cart, err := cartridge.Load(nil, image(99, 1, 1, 0x00))
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, cartridge.UnsupportedMapperError), true)
	test.ExpectEquality(t, cart == nil, true)

	// the mapper is checked before the length of the data
	_, err = cartridge.Load(nil, image(99, 1, 1, 0x00)[:cartridge.HeaderLen])
	test.ExpectEquality(t, curated.Is(err, cartridge.UnsupportedMapperError), true)

	test.ExpectEquality(t, cartridge.Supported(5), true)
	test.ExpectEquality(t, cartridge.Supported(6), false)
}

func TestMirroringHook(t *testing.T) {
	cart := load(t, image(7, 2, 1, 0x00))

	var changes []mapper.Mirroring
	cart.OnMirroringChange(func(m mapper.Mirroring) {
		changes = append(changes, m)
	})

	write(t, cart, 0x8000, 0x10)
	write(t, cart, 0x8000, 0x11)
	write(t, cart, 0x8000, 0x00)
	test.ExpectEquality(t, len(changes), 2)
	test.ExpectEquality(t, changes[0], mapper.SingleUpper)
	test.ExpectEquality(t, changes[1], mapper.SingleLower)
	test.ExpectEquality(t, cart.Mirroring(), mapper.SingleLower)

	// reset returns to the mirroring in the header
	cart.Reset()
	test.ExpectEquality(t, cart.Mirroring(), mapper.Horizontal)
}

func TestPeekPoke(t *testing.T) {
	cart := load(t, image(0, 1, 1, 0x00))

	// poke can change ROM
	test.ExpectSuccess(t, cart.Poke(0x8010, 0xaa))
	v, err := cart.Peek(0x8010)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0xaa))

	// 16K of PRG is mirrored
	test.ExpectEquality(t, read(t, cart, 0xc010), uint8(0xaa))

	// write to ROM is not allowed
	err = cart.Write(0x8010, 0xbb)
	test.ExpectEquality(t, curated.Is(err, mapper.IllegalWriteError), true)
}

func TestOpenBus(t *testing.T) {
	cart := load(t, image(0, 1, 1, 0x00))
	test.ExpectEquality(t, read(t, cart, 0x5123), uint8(0x51))
	test.ExpectSuccess(t, cart.Write(0x5123, 0x00))
}

func TestSaveRAM(t *testing.T) {
	cart := load(t, image(1, 2, 1, 0x02))
	write(t, cart, 0x6010, 0x99)
	test.ExpectEquality(t, read(t, cart, 0x6010), uint8(0x99))
	test.ExpectEquality(t, cart.SaveRAM.Read(0x10), uint8(0x99))
	test.ExpectEquality(t, cart.SaveRAM.Dirty(), true)
}

func TestMappedBanks(t *testing.T) {
	cart := load(t, image(2, 4, 1, 0x00))
	write(t, cart, 0x8000, 0x02)

	b := cart.MappedBanks()
	test.DemandEquality(t, len(b), 4)
	test.ExpectEquality(t, b[0].String(), "0000-1fff CHR 8K 0")
	test.ExpectEquality(t, b[1].String(), "6000-7fff PRG 8K 0R")
	test.ExpectEquality(t, b[2].String(), "8000-bfff PRG 16K 2")
	test.ExpectEquality(t, b[3].String(), "c000-ffff PRG 16K 3")
}
