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

package hardware

import (
	"fmt"

	"github.com/Lunatic6502/EmuNes/environment"
	"github.com/Lunatic6502/EmuNes/hardware/memory"
	"github.com/Lunatic6502/EmuNes/hardware/memory/cartridge"
	"github.com/Lunatic6502/EmuNes/logger"
	"github.com/Lunatic6502/EmuNes/saves"
)

// Video timing of the console.
const (
	CyclesPerScanline   = 341
	ScanlinesPerFrame   = 262
	VisibleScanlines    = 240
	PreRenderScanline   = ScanlinesPerFrame - 1
	FirstVBlankScanline = VisibleScanlines + 1
)

// Console is the main container for the emulated components of the console.
type Console struct {
	env *environment.Environment

	Mem  *memory.Memory
	Cart *cartridge.Cartridge

	// saves can be nil, in which case battery backed RAM is not persisted
	saves *saves.Store

	// position of the video pipeline
	Scanline int
	Cycle    int
	Frame    int
}

// NewConsole creates a new Console with the console's memory layout. The
// store argument can be nil.
func NewConsole(env *environment.Environment, store *saves.Store) (*Console, error) {
	mem, err := memory.NewConsoleMemory(env)
	if err != nil {
		return nil, fmt.Errorf("console: %w", err)
	}

	con := &Console{
		env:   env,
		Mem:   mem,
		saves: store,
	}

	con.Mem.Reset()

	return con, nil
}

func (con *Console) String() string {
	if con.Cart == nil {
		return fmt.Sprintf("frame %d scanline %d cycle %d: no cartridge", con.Frame, con.Scanline, con.Cycle)
	}
	return fmt.Sprintf("frame %d scanline %d cycle %d: %s", con.Frame, con.Scanline, con.Cycle, con.Cart.ID())
}

func (con *Console) perm() logger.Permission {
	if con.env == nil {
		return logger.Allow
	}
	return con.env
}

// AttachCartridge inserts the cartridge into the console, replacing any
// existing cartridge. Battery backed RAM is restored from the save store and
// the console is reset.
func (con *Console) AttachCartridge(cart *cartridge.Cartridge) error {
	if err := con.EjectCartridge(); err != nil {
		return err
	}

	if con.saves != nil {
		if err := con.saves.Restore(cart); err != nil {
			return fmt.Errorf("console: %w", err)
		}
	}

	con.Cart = cart
	con.Mem.AttachCartridge(cart)

	return con.Reset()
}

// EjectCartridge removes the cartridge from the console. Battery backed RAM
// is flushed to the save store if the AutoFlush preference is set.
func (con *Console) EjectCartridge() error {
	cart := con.Mem.EjectCartridge()
	con.Cart = nil
	if cart == nil {
		return nil
	}

	if con.autoFlush() {
		if err := con.saves.Flush(cart); err != nil {
			return fmt.Errorf("console: %w", err)
		}
	}

	logger.Logf(con.perm(), "console", "ejected %s", cart.ID())

	return nil
}

func (con *Console) autoFlush() bool {
	if con.saves == nil {
		return false
	}
	if con.env == nil || con.env.Prefs == nil {
		return true
	}
	return con.env.Prefs.AutoFlush.Get().(bool)
}

// Flush writes battery backed RAM to the save store regardless of the
// AutoFlush preference.
func (con *Console) Flush() error {
	if con.Cart == nil || con.saves == nil {
		return nil
	}
	if err := con.saves.Flush(con.Cart); err != nil {
		return fmt.Errorf("console: %w", err)
	}
	return nil
}

// Reset the console to its power on state. RAM is reset according to the
// RandomState preference and the cartridge mapper is reset.
func (con *Console) Reset() error {
	con.Mem.Reset()
	con.Scanline = 0
	con.Cycle = 0
	con.Frame = 0
	if con.Cart != nil {
		con.Cart.Reset()
	}
	return nil
}

// VideoCycle advances the position of the video pipeline by one pixel clock
// and notifies the cartridge.
func (con *Console) VideoCycle(showBackground bool, showSprites bool) {
	if con.Cart != nil {
		con.Cart.VideoCycle(con.Scanline, con.Cycle, showBackground, showSprites)
	}

	con.Cycle++
	if con.Cycle >= CyclesPerScanline {
		con.Cycle = 0
		con.Scanline++
		if con.Scanline >= ScanlinesPerFrame {
			con.Scanline = 0
			con.Frame++
		}
	}
}

// IRQ returns true if the cartridge is requesting an interrupt.
func (con *Console) IRQ() bool {
	if con.Cart == nil {
		return false
	}
	return con.Cart.IRQ()
}
