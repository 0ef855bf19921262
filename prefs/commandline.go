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

package prefs

import (
	"fmt"
	"sort"
	"strings"
)

// a group of preferences from a single command line preferences string
type commandLineGroup map[string]Value

func (grp commandLineGroup) String() string {
	keys := make([]string, 0, len(grp))
	for k := range grp {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := make([]string, 0, len(keys))
	for _, k := range keys {
		s = append(s, fmt.Sprintf("%s::%v", k, grp[k]))
	}
	return strings.Join(s, "; ")
}

var commandLineStack []commandLineGroup

// PushCommandLineStack parses a preferences string and adds it to the stack
// as a new group. Entries that are not of the form "key::value" are ignored.
func PushCommandLineStack(prefs string) {
	grp := make(commandLineGroup)
	for _, p := range strings.Split(prefs, ";") {
		kv := strings.Split(p, "::")
		if len(kv) == 2 {
			grp[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
		}
	}
	commandLineStack = append(commandLineStack, grp)
}

// PopCommandLineStack forgets the most recent group and returns the entries
// in that group that were never used, as a preferences string.
func PopCommandLineStack() string {
	if len(commandLineStack) == 0 {
		return ""
	}
	grp := commandLineStack[len(commandLineStack)-1]
	commandLineStack = commandLineStack[:len(commandLineStack)-1]
	return grp.String()
}

// SizeCommandLineStack returns the number of groups in the stack.
func SizeCommandLineStack() int {
	return len(commandLineStack)
}

// GetCommandLinePref returns the value for key from the top group of the
// stack. The value is removed from the group.
func GetCommandLinePref(key string) (bool, Value) {
	if len(commandLineStack) == 0 {
		return false, nil
	}
	grp := commandLineStack[len(commandLineStack)-1]
	if v, ok := grp[key]; ok {
		delete(grp, key)
		return true, v
	}
	return false, nil
}
