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

package monitor_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/Lunatic6502/EmuNes/hardware"
	"github.com/Lunatic6502/EmuNes/hardware/memory/cartridge"
	"github.com/Lunatic6502/EmuNes/monitor"
	"github.com/Lunatic6502/EmuNes/test"
)

// iNES image with one 16K PRG bank and one 8K CHR bank. every byte of PRG is
// the number of the 1K block it is in
func image(mapperID int) []uint8 {
	data := []uint8{'N', 'E', 'S', 0x1a, 1, 1, uint8(mapperID&0x0f) << 4, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	for i := 0; i < cartridge.PRGBankSize; i++ {
		data = append(data, uint8(i/0x400))
	}
	return append(data, make([]uint8, cartridge.CHRBankSize)...)
}

func newMonitor(t *testing.T, mapperID int) (*monitor.Monitor, *hardware.Console, *test.Writer) {
	t.Helper()

	con, err := hardware.NewConsole(nil, nil)
	test.DemandSuccess(t, err)

	if mapperID >= 0 {
		cart, err := cartridge.Load(nil, image(mapperID))
		test.DemandSuccess(t, err)
		test.DemandSuccess(t, con.AttachCartridge(cart))
	}

	tw := &test.Writer{}
	return monitor.NewMonitor(con, tw), con, tw
}

func command(t *testing.T, mon *monitor.Monitor, tw *test.Writer, input string) string {
	t.Helper()
	tw.Clear()
	quit, err := mon.Command(input)
	test.DemandSuccess(t, err, input)
	test.ExpectFailure(t, quit, input)
	return tw.String()
}

func TestPeekPoke(t *testing.T) {
	mon, con, tw := newMonitor(t, 0)

	command(t, mon, tw, "wipe")
	command(t, mon, tw, "poke $0000 $12 0x34 86")

	v, err := con.Mem.Peek(0x0001)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x34)

	test.ExpectEquality(t, command(t, mon, tw, "PEEK $0002"), "$0002 -> $56 :: RAM\n")
	test.ExpectEquality(t, command(t, mon, tw, "peek $0800"), "$0800 = $0000 -> $12 :: RAM\n")
	test.ExpectEquality(t, command(t, mon, tw, "peek $8400 $c400"),
		"$8400 -> $01 :: Program\n$c400 -> $01 :: Program\n")
}

func TestDump(t *testing.T) {
	mon, _, tw := newMonitor(t, 0)
	mon.SetWidth(40)
	test.ExpectEquality(t, mon.Columns, 8)

	s := command(t, mon, tw, "dump $83fc 12")
	test.ExpectEquality(t, s, "$83fc: 00 00 00 00 01 01 01 01\n$8404: 01 01 01 01\n")
}

func TestMirrors(t *testing.T) {
	mon, con, tw := newMonitor(t, -1)

	command(t, mon, tw, "resetmirrors")
	test.ExpectEquality(t, len(con.Mem.Mirrors()), 0)

	command(t, mon, tw, "mirror $0000 $0800 $2000")
	test.ExpectEquality(t, len(con.Mem.Mirrors()), 1)

	s := command(t, mon, tw, "map")
	test.ExpectSuccess(t, strings.HasPrefix(s, "mirrors:\n  0000-1fff -> 0000-07ff"))

	// invalid mirror
	_, err := mon.Command("mirror $0000 0 $2000")
	test.ExpectFailure(t, err)
}

func TestCartridgeCommands(t *testing.T) {
	mon, _, tw := newMonitor(t, 4)

	s := command(t, mon, tw, "cart")
	test.ExpectSuccess(t, strings.HasPrefix(s, "MMC3"))

	s = command(t, mon, tw, "banks")
	test.ExpectEquality(t, strings.Count(s, "\n"), 13)

	s = command(t, mon, tw, "regs")
	test.ExpectInequality(t, s, "")

	s = command(t, mon, tw, "cycle 1")
	test.ExpectSuccess(t, strings.HasPrefix(s, "frame 1 scanline 0 cycle 0"), s)

	// NROM has no registers
	mon, _, _ = newMonitor(t, 0)
	_, err := mon.Command("regs")
	test.ExpectFailure(t, err)

	// no cartridge
	mon, _, _ = newMonitor(t, -1)
	_, err = mon.Command("banks")
	test.ExpectFailure(t, err)
}

func TestErrors(t *testing.T) {
	mon, _, _ := newMonitor(t, 0)

	for _, c := range []string{"foo", "peek", "peek $10000", "poke $0000", "poke $0000 $100", "wipe 1", "help foo"} {
		_, err := mon.Command(c)
		test.ExpectFailure(t, err, c)
	}

	quit, err := mon.Command("quit")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, quit)

	// empty input does nothing
	quit, err = mon.Command("   ")
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, quit)
}

type lines []string

func (l *lines) ReadLine(_ string) (string, error) {
	if len(*l) == 0 {
		return "", fmt.Errorf("unexpected end of input")
	}
	s := (*l)[0]
	*l = (*l)[1:]
	return s, nil
}

func TestRun(t *testing.T) {
	mon, con, tw := newMonitor(t, 0)

	input := &lines{"poke $0010 $aa", "foo", "help peek", "quit", "poke $0010 $bb"}
	test.ExpectSuccess(t, mon.Run(input))

	// the command after QUIT has not been read
	test.ExpectEquality(t, len(*input), 1)

	v, _ := con.Mem.Peek(0x0010)
	test.ExpectEquality(t, v, 0xaa)

	test.ExpectSuccess(t, strings.Contains(tw.String(), "* unrecognised command: FOO\n"))
	test.ExpectSuccess(t, strings.Contains(tw.String(), "PEEK <address>"))
}
