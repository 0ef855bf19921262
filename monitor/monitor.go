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

package monitor

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Lunatic6502/EmuNes/hardware"
	"github.com/Lunatic6502/EmuNes/hardware/memory/addresses"
	"github.com/Lunatic6502/EmuNes/hardware/memory/cartridge"
	"github.com/Lunatic6502/EmuNes/hardware/memory/cartridge/mapper"
	"github.com/Lunatic6502/EmuNes/logger"
)

// LineReader is the source of commands for the Run() function.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// Monitor executes commands against a console.
type Monitor struct {
	con    *hardware.Console
	output io.Writer

	// number of bytes per line in the output of DUMP
	Columns int
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
func NewMonitor(con *hardware.Console, output io.Writer) *Monitor {
	return &Monitor{
		con:     con,
		output:  output,
		Columns: 16,
	}
}

// SetWidth sets the number of bytes per line in the output of DUMP to suit
// a terminal of the specified width.
func (mon *Monitor) SetWidth(width int) {
	switch {
	case width <= 0:
		mon.Columns = 16
	case width < 60:
		mon.Columns = 8
	case width < 110:
		mon.Columns = 16
	default:
		mon.Columns = 32
	}
}

func (mon *Monitor) print(s string, a ...interface{}) {
	fmt.Fprintf(mon.output, s, a...)
	if !strings.HasSuffix(s, "\n") {
		io.WriteString(mon.output, "\n")
	}
}

// Run reads commands from the LineReader until QUIT or the end of the
// input. Errors from commands are printed and do not end the loop.
func (mon *Monitor) Run(input LineReader) error {
	for {
		line, err := input.ReadLine("> ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		quit, err := mon.Command(line)
		if err != nil {
			mon.print("* %v", err)
		}
		if quit {
			return nil
		}
	}
}

// Command executes a single command. The first return value is true if the
// command was QUIT.
func (mon *Monitor) Command(input string) (bool, error) {
	tk := tokeniseInput(input)

	cmd, ok := tk.get()
	if !ok {
		return false, nil
	}
	cmd = strings.ToUpper(cmd)

	switch cmd {
	case cmdQuit:
		return true, nil

	case cmdHelp:
		c, _ := tk.get()
		h, err := help(c)
		if err != nil {
			return false, err
		}
		mon.print("%s", h)

	case cmdPeek:
		if tk.remaining() == 0 {
			return false, fmt.Errorf("%s requires at least one address", cmdPeek)
		}
		for tk.remaining() > 0 {
			a, err := tk.address()
			if err != nil {
				return false, err
			}
			if err := mon.peek(a); err != nil {
				return false, err
			}
		}

	case cmdPoke:
		a, err := tk.address()
		if err != nil {
			return false, err
		}
		if tk.remaining() == 0 {
			return false, fmt.Errorf("%s requires at least one value", cmdPoke)
		}
		for tk.remaining() > 0 {
			v, err := tk.value()
			if err != nil {
				return false, err
			}
			if err := mon.con.Mem.Poke(a, v); err != nil {
				return false, err
			}
			a++
		}

	case cmdDump:
		a, err := tk.address()
		if err != nil {
			return false, err
		}
		length := uint64(64)
		if tk.remaining() > 0 {
			length, err = tk.number(16)
			if err != nil {
				return false, err
			}
		}
		mon.dump(a, int(length))

	case cmdMirror:
		base, err := tk.address()
		if err != nil {
			return false, err
		}
		size, err := tk.number(17)
		if err != nil {
			return false, err
		}
		extent, err := tk.number(17)
		if err != nil {
			return false, err
		}
		if err := mon.con.Mem.ConfigureMirror(base, int(size), int(extent)); err != nil {
			return false, err
		}

	case cmdResetMirrors:
		mon.con.Mem.ResetConfiguration()

	case cmdWipe:
		mon.con.Mem.Wipe()

	case cmdCycle:
		frames := uint64(1)
		if tk.remaining() > 0 {
			var err error
			frames, err = tk.number(16)
			if err != nil {
				return false, err
			}
		}
		irqs := 0
		err := mon.con.RunFrames(int(frames), true, true, nil, func(_ int) {
			irqs++
		})
		if err != nil {
			return false, err
		}
		mon.print("%s (%d IRQ)", mon.con, irqs)

	case cmdCart:
		cart, err := mon.cartridge()
		if err != nil {
			return false, err
		}
		mon.print("%s\n%s", cart, cart.Header)

	case cmdBanks:
		cart, err := mon.cartridge()
		if err != nil {
			return false, err
		}
		for _, b := range cart.MappedBanks() {
			mon.print("%s", b)
		}

	case cmdRegs:
		cart, err := mon.cartridge()
		if err != nil {
			return false, err
		}
		r, ok := cart.Mapper().(mapper.CartRegisters)
		if !ok {
			return false, fmt.Errorf("%s has no registers to show", cart.ID())
		}
		mon.print("%s", r.Registers())

	case cmdMap:
		mon.print("%s", mon.con.Mem.Summary())

	case cmdReset:
		if err := mon.con.Reset(); err != nil {
			return false, err
		}

	case cmdFlush:
		if err := mon.con.Flush(); err != nil {
			return false, err
		}

	case cmdLog:
		n := uint64(10)
		if tk.remaining() > 0 {
			var err error
			n, err = tk.number(16)
			if err != nil {
				return false, err
			}
		}
		logger.Tail(mon.output, int(n))

	default:
		return false, fmt.Errorf("unrecognised command: %s", cmd)
	}

	if tk.remaining() > 0 {
		return false, fmt.Errorf("too many arguments for %s", cmd)
	}

	return false, nil
}

func (mon *Monitor) cartridge() (*cartridge.Cartridge, error) {
	if mon.con.Cart == nil {
		return nil, fmt.Errorf("no cartridge attached")
	}
	return mon.con.Cart, nil
}

func (mon *Monitor) peek(address uint16) error {
	v, err := mon.con.Mem.Peek(address)
	if err != nil {
		return err
	}

	msg := addresses.Hex(address)
	mapped, area := mon.con.Mem.MapAddress(address)
	if mapped != address {
		msg = fmt.Sprintf("%s = %s", msg, addresses.Hex(mapped))
	}
	mon.print("%s -> $%02x :: %s", msg, v, area)

	return nil
}

func (mon *Monitor) dump(address uint16, length int) {
	s := strings.Builder{}

	for i := 0; i < length; i++ {
		a := address + uint16(i)
		if i%mon.Columns == 0 {
			if i > 0 {
				s.WriteString("\n")
			}
			s.WriteString(fmt.Sprintf("%s:", addresses.Hex(a)))
		}

		// addresses that cannot be peeked are shown as blanks
		v, err := mon.con.Mem.Peek(a)
		if err != nil {
			s.WriteString(" --")
		} else {
			s.WriteString(fmt.Sprintf(" %02x", v))
		}
	}

	mon.print("%s", s.String())
}
