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

package memory_test

import (
	"testing"

	"github.com/Lunatic6502/EmuNes/curated"
	"github.com/Lunatic6502/EmuNes/environment"
	"github.com/Lunatic6502/EmuNes/hardware/memory"
	"github.com/Lunatic6502/EmuNes/hardware/memory/cartridge"
	"github.com/Lunatic6502/EmuNes/hardware/memory/cartridge/mapper"
	"github.com/Lunatic6502/EmuNes/hardware/memory/memorymap"
	"github.com/Lunatic6502/EmuNes/hardware/preferences"
	"github.com/Lunatic6502/EmuNes/test"
)

func readData(t *testing.T, mem *memory.Memory, address uint16, expectedData uint8) {
	t.Helper()
	d, err := mem.Read(address)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, d, expectedData, address)
}

func TestReadWrite(t *testing.T) {
	mem := memory.NewMemory(nil)

	// with no mirroring and no cartridge every address is RAM
	for _, a := range []uint16{0x0000, 0x1000, 0x4020, 0x8000, 0xffff} {
		test.ExpectSuccess(t, mem.Write(a, uint8(a>>8)+1))
	}
	for _, a := range []uint16{0x0000, 0x1000, 0x4020, 0x8000, 0xffff} {
		readData(t, mem, a, uint8(a>>8)+1)
	}

	mem.Wipe()
	readData(t, mem, 0x1000, 0x00)
}

func TestMirroring(t *testing.T) {
	mem := memory.NewMemory(nil)
	test.DemandSuccess(t, mem.ConfigureMirror(0x1000, 0x0800, 0x3000))

	test.ExpectSuccess(t, mem.Write(0x1000, 0x12))
	readData(t, mem, 0x1000, 0x12)

	// a write is visible through every alias
	test.ExpectSuccess(t, mem.Write(0x1100, 0x34))
	readData(t, mem, 0x1900, 0x34)
	readData(t, mem, 0x2100, 0x34)
	readData(t, mem, 0x2900, 0x34)
	readData(t, mem, 0x3900, 0x34)

	// and writes through an alias are visible at the base
	test.ExpectSuccess(t, mem.Write(0x3fff, 0x56))
	readData(t, mem, 0x17ff, 0x56)

	// addresses outside the mirror are not affected
	readData(t, mem, 0x0100, 0x00)
	readData(t, mem, 0x4100, 0x00)

	c, area := mem.MapAddress(0x2900)
	test.ExpectEquality(t, c, uint16(0x1100))
	test.ExpectEquality(t, area, memorymap.RAM)

	// removing the mirror leaves the content at the canonical address
	mem.ResetConfiguration()
	readData(t, mem, 0x1100, 0x34)
	readData(t, mem, 0x1900, 0x00)
	test.ExpectEquality(t, len(mem.Mirrors()), 0)
}

func TestMirrorPrecedence(t *testing.T) {
	mem := memory.NewMemory(nil)
	test.DemandSuccess(t, mem.ConfigureMirror(0x0000, 0x0100, 0x1000))
	test.DemandSuccess(t, mem.ConfigureMirror(0x0800, 0x0010, 0x0100))

	// the most recently configured mirror wins
	c, _ := mem.MapAddress(0x0855)
	test.ExpectEquality(t, c, uint16(0x0805))

	// the earlier mirror still applies elsewhere
	c, _ = mem.MapAddress(0x0955)
	test.ExpectEquality(t, c, uint16(0x0055))
}

func TestConfigurationErrors(t *testing.T) {
	mem := memory.NewMemory(nil)

	err := mem.ConfigureMirror(0x0000, 0, 0x100)
	test.ExpectEquality(t, curated.Is(err, memory.ConfigurationError), true)

	err = mem.ConfigureMirror(0x0000, 0x100, 0x80)
	test.ExpectEquality(t, curated.Is(err, memory.ConfigurationError), true)

	err = mem.ConfigureMirror(0xff00, 0x100, 0x200)
	test.ExpectEquality(t, curated.Is(err, memory.ConfigurationError), true)

	// the highest address can be part of a mirror
	test.ExpectSuccess(t, mem.ConfigureMirror(0xff00, 0x100, 0x100))
}

func TestConsoleMemory(t *testing.T) {
	mem, err := memory.NewConsoleMemory(nil)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, mem.Write(0x0001, 0xab))
	readData(t, mem, 0x0801, 0xab)
	readData(t, mem, 0x1001, 0xab)
	readData(t, mem, 0x1801, 0xab)

	c, area := mem.MapAddress(0x3ffa)
	test.ExpectEquality(t, c, uint16(0x2002))
	test.ExpectEquality(t, area, memorymap.Video)
}

// register file standing in for one of the console's chips
type registers struct {
	data   [8]uint8
	reads  int
	writes int
}

func (r *registers) Read(address uint16) (uint8, error) {
	r.reads++
	return r.data[address&0x07], nil
}

func (r *registers) Write(address uint16, data uint8) error {
	r.writes++
	r.data[address&0x07] = data
	return nil
}

func TestChips(t *testing.T) {
	mem, err := memory.NewConsoleMemory(nil)
	test.DemandSuccess(t, err)

	video := &registers{}
	test.DemandSuccess(t, mem.AttachChip("video", 0x2000, 0x2007, video))

	// the chip sees the canonical address
	test.ExpectSuccess(t, mem.Write(0x3ff9, 0x77))
	test.ExpectEquality(t, video.data[1], uint8(0x77))
	readData(t, mem, 0x2001, 0x77)
	test.ExpectEquality(t, video.reads, 1)
	test.ExpectEquality(t, video.writes, 1)

	// chips are not necessarily peekable
	_, err = mem.Peek(0x2001)
	test.ExpectEquality(t, curated.Is(err, memory.UnpeekableError), true)
	test.ExpectEquality(t, video.reads, 1)

	err = mem.AttachChip("bad", 0x4017, 0x4000, video)
	test.ExpectEquality(t, curated.Is(err, memory.ConfigurationError), true)
}

// NROM image with 16K of PRG. the first byte of PRG is 0xea
func nrom() []uint8 {
	data := []uint8{'N', 'E', 'S', 0x1a, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	prg := make([]uint8, cartridge.PRGBankSize)
	prg[0] = 0xea
	data = append(data, prg...)
	return append(data, make([]uint8, cartridge.CHRBankSize)...)
}

func TestCartridge(t *testing.T) {
	mem, err := memory.NewConsoleMemory(nil)
	test.DemandSuccess(t, err)

	cart, err := cartridge.Load(nil, nrom())
	test.DemandSuccess(t, err)
	mem.AttachCartridge(cart)

	readData(t, mem, 0x8000, 0xea)
	readData(t, mem, 0xc000, 0xea)

	// save RAM is on the cartridge
	test.ExpectSuccess(t, mem.Write(0x6000, 0x11))
	test.ExpectEquality(t, cart.SaveRAM.Read(0), uint8(0x11))

	// strict mode is the default with no environment
	err = mem.Write(0x8000, 0x00)
	test.ExpectEquality(t, curated.Is(err, mapper.IllegalWriteError), true)

	// poke changes the ROM
	test.ExpectSuccess(t, mem.Poke(0x8000, 0x60))
	v, err := mem.Peek(0xc000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x60))

	test.ExpectEquality(t, mem.EjectCartridge(), cart)
	test.ExpectEquality(t, mem.Cartridge() == nil, true)

	// with the cartridge ejected the area is RAM again
	test.ExpectSuccess(t, mem.Write(0x8000, 0x00))
	readData(t, mem, 0x8000, 0x00)
}

func TestLenient(t *testing.T) {
	prefs := preferences.NewDefaults()
	test.DemandSuccess(t, prefs.Strict.Set(false))
	env, err := environment.NewEnvironment(environment.MainEmulation, prefs)
	test.DemandSuccess(t, err)

	mem, err := memory.NewConsoleMemory(env)
	test.DemandSuccess(t, err)

	cart, err := cartridge.Load(env, nrom())
	test.DemandSuccess(t, err)
	mem.AttachCartridge(cart)

	// illegal writes are ignored
	test.ExpectSuccess(t, mem.Write(0x8000, 0x00))
	readData(t, mem, 0x8000, 0xea)
}

func TestRandomState(t *testing.T) {
	prefs := preferences.NewDefaults()
	test.DemandSuccess(t, prefs.RandomState.Set(true))
	prefs.Reseed(1)
	env, err := environment.NewEnvironment(environment.MainEmulation, prefs)
	test.DemandSuccess(t, err)

	mem := memory.NewMemory(env)
	mem.Reset()

	nonzero := false
	for a := 0; a < 0x100; a++ {
		v, _ := mem.Peek(uint16(a))
		if v != 0 {
			nonzero = true
			break
		}
	}
	test.ExpectEquality(t, nonzero, true)

	test.DemandSuccess(t, prefs.RandomState.Set(false))
	mem.Reset()
	readData(t, mem, 0x0000, 0x00)
}

func TestSummary(t *testing.T) {
	mem, err := memory.NewConsoleMemory(nil)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, mem.AttachChip("video", 0x2000, 0x2007, &registers{}))

	expected := `mirrors:
  0000-1fff -> 0000-07ff
  2000-3fff -> 2000-2007
chips:
  2000-2007 video
cartridge: none`
	test.ExpectEquality(t, mem.Summary(), expected)
}
