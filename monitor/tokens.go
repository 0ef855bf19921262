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
	"strconv"
	"strings"
)

type tokens struct {
	tokens []string
	curr   int
}

func (tk tokens) remaining() int {
	return len(tk.tokens) - tk.curr
}

func (tk *tokens) get() (string, bool) {
	if tk.curr >= len(tk.tokens) {
		return "", false
	}
	tk.curr++
	return tk.tokens[tk.curr-1], true
}

// the next token as a number of the specified bit size
func (tk *tokens) number(bitSize int) (uint64, error) {
	s, ok := tk.get()
	if !ok {
		return 0, fmt.Errorf("missing argument")
	}
	v, err := strconv.ParseUint(s, 0, bitSize)
	if err != nil {
		return 0, fmt.Errorf("not a valid %d bit number: %s", bitSize, s)
	}
	return v, nil
}

func (tk *tokens) address() (uint16, error) {
	v, err := tk.number(16)
	return uint16(v), err
}

func (tk *tokens) value() (uint8, error) {
	v, err := tk.number(8)
	return uint8(v), err
}

func tokeniseInput(input string) *tokens {
	tk := &tokens{
		tokens: strings.Fields(strings.TrimSpace(input)),
	}

	// normalise hex notation
	for i := range tk.tokens {
		if tk.tokens[i][0] == '$' {
			tk.tokens[i] = fmt.Sprintf("0x%s", tk.tokens[i][1:])
		}
	}

	return tk
}
