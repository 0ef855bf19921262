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

package addresses

import (
	"fmt"
	"strconv"
	"strings"
)

// Hex formats an address in the form used throughout the emulator: four hex
// digits with a leading dollar sign.
func Hex(address uint16) string {
	return fmt.Sprintf("$%04x", address)
}

// HexData formats a data value as two hex digits with a leading dollar sign.
func HexData(data uint8) string {
	return fmt.Sprintf("$%02x", data)
}

// Describe formats an address and adds the register name if it has one.
func Describe(address uint16, read bool) string {
	if s := Symbol(address, read); s != "" {
		return fmt.Sprintf("%s (%s)", Hex(address), s)
	}
	return Hex(address)
}

// ParseAddress parses a string as an address. Accepted forms are a register
// symbol, a hex number with a leading "$" or "0x", or a decimal number.
func ParseAddress(s string) (uint16, error) {
	s = strings.TrimSpace(s)

	if a, ok := Lookup(strings.ToUpper(s)); ok {
		return a, nil
	}

	v, err := parseNumber(s, 16)
	if err != nil {
		return 0, fmt.Errorf("addresses: %q is not an address", s)
	}
	return uint16(v), nil
}

// ParseData parses a string as an 8-bit data value. Accepted forms are a hex
// number with a leading "$" or "0x", or a decimal number.
func ParseData(s string) (uint8, error) {
	v, err := parseNumber(strings.TrimSpace(s), 8)
	if err != nil {
		return 0, fmt.Errorf("addresses: %q is not a data value", s)
	}
	return uint8(v), nil
}

func parseNumber(s string, bits int) (uint64, error) {
	switch {
	case strings.HasPrefix(s, "$"):
		return strconv.ParseUint(s[1:], 16, bits)
	case strings.HasPrefix(strings.ToLower(s), "0x"):
		return strconv.ParseUint(s[2:], 16, bits)
	}
	return strconv.ParseUint(s, 10, bits)
}
