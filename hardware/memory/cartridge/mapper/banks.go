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

package mapper

import (
	"fmt"
)

// Standard bank sizes.
const (
	Size1K  = 0x0400
	Size2K  = 0x0800
	Size4K  = 0x1000
	Size8K  = 0x2000
	Size16K = 0x4000
	Size32K = 0x8000
)

// Banks returns the number of banks of the given size in a block of data of
// the given length. Data smaller than a single bank counts as one bank.
func Banks(length int, size int) int {
	n := length / size
	if n < 1 {
		return 1
	}
	return n
}

// Offset returns the index into a block of data of the given length, for the
// address in a window beginning at origin, with the selected bank of the
// given size.
//
// The bank number is reduced modulo the number of available banks. If the
// data is smaller than a single bank then it is repeated across the window.
func Offset(bank int, size int, length int, address uint16, origin uint16) int {
	n := length / size
	if n < 1 {
		return int(address-origin) % length
	}

	bank %= n
	if bank < 0 {
		bank += n
	}

	return bank*size + int(address-origin)%size
}

// BankInfo describes the bank mapped into a single window of the cartridge.
type BankInfo struct {
	// first and last address of the window
	Origin uint16
	Memtop uint16

	// the bank number is in units of the bank size. it has already been
	// reduced by the number of available banks
	Number int
	Size   int

	// the bank is in character (pattern table) memory rather than program
	// memory
	Character bool

	// the bank is RAM rather than ROM
	IsRAM bool
}

func (b BankInfo) String() string {
	s := fmt.Sprintf("%04x-%04x ", b.Origin, b.Memtop)
	if b.Character {
		s = fmt.Sprintf("%sCHR %dK ", s, b.Size/Size1K)
	} else {
		s = fmt.Sprintf("%sPRG %dK ", s, b.Size/Size1K)
	}
	if b.IsRAM {
		return fmt.Sprintf("%s%dR", s, b.Number)
	}
	return fmt.Sprintf("%s%d", s, b.Number)
}

// NewBankInfo creates a BankInfo for a window of the given size beginning at
// origin. The bank number is reduced in the same way as Offset().
func NewBankInfo(origin uint16, bank int, size int, length int) BankInfo {
	n := Banks(length, size)
	bank %= n
	if bank < 0 {
		bank += n
	}
	return BankInfo{
		Origin: origin,
		Memtop: origin + uint16(size-1),
		Number: bank,
		Size:   size,
	}
}
