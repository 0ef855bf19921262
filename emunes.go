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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"

	"github.com/Lunatic6502/EmuNes/cartridgeloader"
	"github.com/Lunatic6502/EmuNes/environment"
	"github.com/Lunatic6502/EmuNes/hardware"
	"github.com/Lunatic6502/EmuNes/hardware/memory"
	"github.com/Lunatic6502/EmuNes/hardware/memory/cartridge"
	"github.com/Lunatic6502/EmuNes/hardware/memory/cartridge/mapper"
	"github.com/Lunatic6502/EmuNes/hardware/memory/memorymap"
	"github.com/Lunatic6502/EmuNes/logger"
	"github.com/Lunatic6502/EmuNes/modalflag"
	"github.com/Lunatic6502/EmuNes/monitor"
	"github.com/Lunatic6502/EmuNes/monitor/easyterm"
	"github.com/Lunatic6502/EmuNes/prefs"
	"github.com/Lunatic6502/EmuNes/saves"
	"github.com/Lunatic6502/EmuNes/statsview"
	"github.com/Lunatic6502/EmuNes/version"
	"github.com/bradleyjkemp/memviz"
)

// exit values
const (
	exitOK        = 0
	exitParse     = 10
	exitMode      = 20
	exitInterrupt = 30
)

// functions to be called if the program is interrupted. used to return the
// terminal to canonical mode
var interruptCleanup struct {
	sync.Mutex
	fns []func()
}

func onInterrupt(f func()) {
	interruptCleanup.Lock()
	defer interruptCleanup.Unlock()
	interruptCleanup.fns = append(interruptCleanup.fns, f)
}

func main() {
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	done := make(chan int)
	go func() {
		done <- launch(os.Args[1:], os.Stdout)
	}()

	var exitVal int

	select {
	case <-intChan:
		interruptCleanup.Lock()
		for _, f := range interruptCleanup.fns {
			f()
		}
		interruptCleanup.Unlock()
		fmt.Println("\r")
		exitVal = exitInterrupt
	case exitVal = <-done:
	}

	os.Exit(exitVal)
}

// launch the program with the command line arguments. returns the exit value
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("INFO", "MONITOR", "STATE", "MAP", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParse
	}

	switch md.Mode() {
	case "INFO":
		err = info(md, output)
	case "MONITOR":
		err = monitorMode(md, output)
	case "STATE":
		err = state(md, output)
	case "MAP":
		err = memoryMap(md, output)
	case "VERSION":
		fmt.Fprintln(output, version.String())
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %v\n", md, err)
		return exitMode
	}

	return exitOK
}

// flags shared by the modes that emulate a console
type emulationFlags struct {
	strict  *bool
	saveDir *string
	log     *bool
	prefs   *string
}

func addEmulationFlags(md *modalflag.Modes) emulationFlags {
	return emulationFlags{
		strict:  md.AddBool("strict", true, "illegal and write-protected writes are errors"),
		saveDir: md.AddString("savedir", "", "directory for battery backed RAM"),
		log:     md.AddBool("log", false, "echo log to stdout"),
		prefs:   md.AddString("prefs", "", "preferences for this run. for example \"hardware.randomState::true\""),
	}
}

// create the environment for the emulation. preferences are loaded from disk
// and then amended by the command line
func (fl emulationFlags) environment(md *modalflag.Modes, output io.Writer) (*environment.Environment, error) {
	if *fl.log {
		logger.SetEcho(output)
	} else {
		logger.SetEcho(nil)
	}

	prefs.PushCommandLineStack(*fl.prefs)
	defer func() {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "emunes", "unused preferences: %s", unused)
		}
	}()

	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	if err != nil {
		return nil, err
	}

	// only flags that have been set explicitly override the preferences
	md.Visit(func(flag string) {
		if err != nil {
			return
		}
		switch flag {
		case "strict":
			err = env.Prefs.Strict.Set(*fl.strict)
		case "savedir":
			err = env.Prefs.SaveDir.Set(*fl.saveDir)
		}
	})
	if err != nil {
		return nil, err
	}

	return env, nil
}

// load the cartridge named by the filename
func loadCartridge(env *environment.Environment, filename string) (*cartridge.Cartridge, error) {
	cl := cartridgeloader.NewLoader(filename)
	if err := cl.Load(); err != nil {
		return nil, err
	}

	cart, err := cartridge.Load(env, cl.Data)
	if err != nil {
		return nil, err
	}
	cart.Filename = cl.Resolved

	return cart, nil
}

func info(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	log := md.AddBool("log", false, "echo log to stdout")
	banks := md.AddBool("banks", true, "list the banks mapped after reset")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(output)
	} else {
		logger.SetEcho(nil)
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("one cartridge required for %s mode", md)
	}

	// the info mode does not need the preferences on disk
	cart, err := loadCartridge(nil, md.GetArg(0))
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "%s\nhash: %s\n%s\n", cart.Filename, cart.Hash, cart.Header)

	if *banks {
		cart.Reset()
		fmt.Fprintln(output, "banks:")
		for _, b := range cart.MappedBanks() {
			fmt.Fprintf(output, "  %s\n", b)
		}
	}

	return nil
}

func newConsole(env *environment.Environment, filename string) (*hardware.Console, error) {
	store, err := saves.NewStore(env)
	if err != nil {
		return nil, err
	}

	con, err := hardware.NewConsole(env, store)
	if err != nil {
		return nil, err
	}

	if filename != "" {
		cart, err := loadCartridge(env, filename)
		if err != nil {
			return nil, err
		}
		if err := con.AttachCartridge(cart); err != nil {
			return nil, err
		}
	}

	return con, nil
}

func monitorMode(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	fl := addEmulationFlags(md)
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	md.AdditionalHelp("the cartridge argument is optional. type HELP at the monitor prompt for a list of commands")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 1 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	env, err := fl.environment(md, output)
	if err != nil {
		return err
	}

	if *stats {
		stop := statsview.Launch(output)
		defer stop()
	}

	con, err := newConsole(env, md.GetArg(0))
	if err != nil {
		return err
	}

	var term easyterm.Terminal
	if err := term.Initialise(os.Stdin, os.Stdout); err != nil {
		return err
	}
	defer term.CleanUp()
	onInterrupt(term.CanonicalMode)

	mon := monitor.NewMonitor(con, &term)
	_, cols := term.Geometry()
	mon.SetWidth(cols)

	term.Print("%s\n%s\n", version.String(), con)

	if err := mon.Run(&term); err != nil {
		return err
	}

	return con.EjectCartridge()
}

// the mapper state included in the output of the STATE mode
type mapperState struct {
	Filename  string
	ID        string
	Mirroring string
	IRQ       bool
	Banks     []mapper.BankInfo
	Registers string
	SaveRAM   bool
	Frame     int
	Scanline  int
}

func state(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	fl := addEmulationFlags(md)
	frames := md.AddInt("frames", 0, "number of frames to run before taking the state")
	out := md.AddString("out", "", "write graphviz output to file rather than stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("one cartridge required for %s mode", md)
	}

	env, err := fl.environment(md, output)
	if err != nil {
		return err
	}

	con, err := newConsole(env, md.GetArg(0))
	if err != nil {
		return err
	}

	if *frames > 0 {
		if err := con.RunFrames(*frames, true, true, nil, nil); err != nil {
			return err
		}
	}

	s := &mapperState{
		Filename:  con.Cart.Filename,
		ID:        con.Cart.ID(),
		Mirroring: con.Cart.Mirroring().String(),
		IRQ:       con.IRQ(),
		Banks:     con.Cart.MappedBanks(),
		SaveRAM:   con.Cart.Header.Battery,
		Frame:     con.Frame,
		Scanline:  con.Scanline,
	}
	if r, ok := con.Cart.Mapper().(mapper.CartRegisters); ok {
		s.Registers = r.Registers()
	}

	w := output
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	memviz.Map(w, s)

	return con.EjectCartridge()
}

func memoryMap(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	mem, err := memory.NewConsoleMemory(nil)
	if err != nil {
		return err
	}

	fmt.Fprintln(output, strings.TrimSpace(memorymap.Summary()))
	fmt.Fprintln(output)
	fmt.Fprintln(output, mem.Summary())

	return nil
}
