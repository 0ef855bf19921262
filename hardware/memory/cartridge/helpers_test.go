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

	"github.com/Lunatic6502/EmuNes/hardware/memory/cartridge"
	"github.com/Lunatic6502/EmuNes/test"
)

// create an iNES image. every byte of PRG and CHR data is the number of the 1K
// block it is in, making it easy to see which bank is mapped
func image(mapperID int, prgBanks int, chrBanks int, ctrl1 uint8) []uint8 {
	data := []uint8{'N', 'E', 'S', 0x1a, uint8(prgBanks), uint8(chrBanks),
		ctrl1 | uint8(mapperID&0x0f)<<4, uint8(mapperID & 0xf0),
		0, 0, 0, 0, 0, 0, 0, 0}

	if ctrl1&0x04 == 0x04 {
		for i := 0; i < cartridge.TrainerLen; i++ {
			data = append(data, 0xff)
		}
	}
	for i := 0; i < prgBanks*cartridge.PRGBankSize; i++ {
		data = append(data, uint8(i/0x400))
	}
	for i := 0; i < chrBanks*cartridge.CHRBankSize; i++ {
		data = append(data, uint8(i/0x400))
	}

	return data
}

func load(t *testing.T, data []uint8) *cartridge.Cartridge {
	t.Helper()
	cart, err := cartridge.Load(nil, data)
	test.DemandSuccess(t, err)
	return cart
}

func read(t *testing.T, cart *cartridge.Cartridge, address uint16) uint8 {
	t.Helper()
	v, err := cart.Read(address)
	test.DemandSuccess(t, err)
	return v
}

func write(t *testing.T, cart *cartridge.Cartridge, address uint16, data uint8) {
	t.Helper()
	test.DemandSuccess(t, cart.Write(address, data))
}
