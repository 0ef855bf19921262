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

package cartridge

import (
	"fmt"
	"strings"

	"github.com/Lunatic6502/EmuNes/curated"
	"github.com/Lunatic6502/EmuNes/hardware/memory/cartridge/mapper"
)

// Sizes of the fixed parts of an iNES image.
const (
	HeaderLen   = 16
	TrainerLen  = 512
	PRGBankSize = 0x4000
	CHRBankSize = 0x2000
)

// "NES" followed by the MS-DOS end-of-file character
var signature = [4]uint8{'N', 'E', 'S', 0x1a}

// the bits of the first control byte
const (
	ctrl1Mirroring  = 0x01
	ctrl1Battery    = 0x02
	ctrl1Trainer    = 0x04
	ctrl1FourScreen = 0x08
)

// Header is the decoded 16 byte iNES header.
type Header struct {
	// number of 16K PRG banks and 8K CHR banks. a CHR bank count of zero
	// indicates that the cartridge has CHR RAM
	PRGBanks int
	CHRBanks int

	Control1 uint8
	Control2 uint8

	// PRG RAM size in 8K units. this is informational only
	PRGRAMSize uint8

	MapperID  int
	Mirroring mapper.Mirroring
	Battery   bool
	Trainer   bool
}

// ParseHeader decodes the first HeaderLen bytes of data.
func ParseHeader(data []uint8) (Header, error) {
	if len(data) < len(signature) || [4]uint8(data[:4]) != signature {
		return Header{}, curated.Errorf(FormatError, "missing iNES signature")
	}
	if len(data) < HeaderLen {
		return Header{}, curated.Errorf(FormatError, "truncated header")
	}

	h := Header{
		PRGBanks:   int(data[4]),
		CHRBanks:   int(data[5]),
		Control1:   data[6],
		Control2:   data[7],
		PRGRAMSize: data[8],
	}

	h.MapperID = int(h.Control2>>4)<<4 | int(h.Control1>>4)

	if h.Control1&ctrl1FourScreen == ctrl1FourScreen {
		h.Mirroring = mapper.FourScreen
	} else if h.Control1&ctrl1Mirroring == ctrl1Mirroring {
		h.Mirroring = mapper.Vertical
	} else {
		h.Mirroring = mapper.Horizontal
	}

	h.Battery = h.Control1&ctrl1Battery == ctrl1Battery
	h.Trainer = h.Control1&ctrl1Trainer == ctrl1Trainer

	return h, nil
}

// Len returns the number of bytes an image with this header should contain.
func (h Header) Len() int {
	n := HeaderLen + h.PRGBanks*PRGBankSize + h.CHRBanks*CHRBankSize
	if h.Trainer {
		n += TrainerLen
	}
	return n
}

func (h Header) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("mapper: %d", h.MapperID))
	if n, ok := mapperNames[h.MapperID]; ok {
		s.WriteString(fmt.Sprintf(" (%s)", n))
	}
	s.WriteString(fmt.Sprintf("\nprg: %d x 16K", h.PRGBanks))
	if h.CHRBanks == 0 {
		s.WriteString("\nchr: 8K RAM")
	} else {
		s.WriteString(fmt.Sprintf("\nchr: %d x 8K", h.CHRBanks))
	}
	s.WriteString(fmt.Sprintf("\nmirroring: %s", h.Mirroring))
	if h.Battery {
		s.WriteString("\nbattery")
	}
	if h.Trainer {
		s.WriteString("\ntrainer")
	}
	return s.String()
}
