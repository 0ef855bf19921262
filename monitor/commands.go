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
	"fmt"
	"sort"
	"strings"
)

// list of monitor commands.
const (
	cmdPeek         = "PEEK"
	cmdPoke         = "POKE"
	cmdDump         = "DUMP"
	cmdMirror       = "MIRROR"
	cmdResetMirrors = "RESETMIRRORS"
	cmdWipe         = "WIPE"
	cmdCycle        = "CYCLE"
	cmdCart         = "CART"
	cmdBanks        = "BANKS"
	cmdRegs         = "REGS"
	cmdMap          = "MAP"
	cmdReset        = "RESET"
	cmdFlush        = "FLUSH"
	cmdLog          = "LOG"
	cmdHelp         = "HELP"
	cmdQuit         = "QUIT"
)

var commandHelp = map[string]string{
	cmdPeek:         "PEEK <address> {<address>}\n\tread memory without side effects",
	cmdPoke:         "POKE <address> <value> {<value>}\n\twrite to memory without side effects. values are written to consecutive addresses",
	cmdDump:         "DUMP <address> [<length>]\n\tpeek a block of memory. the default length is 64 bytes",
	cmdMirror:       "MIRROR <base> <size> <extent>\n\tmirror the block at base every size bytes up to extent",
	cmdResetMirrors: "RESETMIRRORS\n\tremove all mirrors",
	cmdWipe:         "WIPE\n\tclear console RAM",
	cmdCycle:        "CYCLE [<frames>]\n\tclock the video pipeline for a number of frames. the default is one frame",
	cmdCart:         "CART\n\tsummary of the attached cartridge",
	cmdBanks:        "BANKS\n\tthe bank currently mapped into each cartridge window",
	cmdRegs:         "REGS\n\tthe registers of the cartridge mapper",
	cmdMap:          "MAP\n\tthe configuration of the memory bus",
	cmdReset:        "RESET\n\treset the console",
	cmdFlush:        "FLUSH\n\twrite battery backed RAM to disk",
	cmdLog:          "LOG [<number>]\n\tthe most recent log entries. the default is ten entries",
	cmdHelp:         "HELP [<command>]\n\tlist commands or show help for a command",
	cmdQuit:         "QUIT\n\tleave the monitor",
}

func commandList() string {
	cmds := make([]string, 0, len(commandHelp))
	for c := range commandHelp {
		cmds = append(cmds, c)
	}
	sort.Strings(cmds)
	return strings.Join(cmds, " ")
}

func help(cmd string) (string, error) {
	if cmd == "" {
		return commandList(), nil
	}
	h, ok := commandHelp[strings.ToUpper(cmd)]
	if !ok {
		return "", fmt.Errorf("no such command: %s", cmd)
	}
	return h, nil
}
