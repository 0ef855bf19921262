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

// ReadSymbols lists the readable register addresses along with their
// canonical names.
var ReadSymbols = map[uint16]string{
	// video
	0x2002: "PPUSTATUS",
	0x2004: "OAMDATA",
	0x2007: "PPUDATA",

	// APU and IO
	0x4015: "SND_CHN",
	0x4016: "JOY1",
	0x4017: "JOY2",

	// MMC5
	0x5204: "MMC5_IRQSTATUS",
	0x5205: "MMC5_MULLO",
	0x5206: "MMC5_MULHI",
}

// WriteSymbols lists the writable register addresses along with their
// canonical names.
var WriteSymbols = map[uint16]string{
	// video
	0x2000: "PPUCTRL",
	0x2001: "PPUMASK",
	0x2003: "OAMADDR",
	0x2004: "OAMDATA",
	0x2005: "PPUSCROLL",
	0x2006: "PPUADDR",
	0x2007: "PPUDATA",

	// APU and IO
	0x4000: "SQ1_VOL",
	0x4001: "SQ1_SWEEP",
	0x4002: "SQ1_LO",
	0x4003: "SQ1_HI",
	0x4004: "SQ2_VOL",
	0x4005: "SQ2_SWEEP",
	0x4006: "SQ2_LO",
	0x4007: "SQ2_HI",
	0x4008: "TRI_LINEAR",
	0x400a: "TRI_LO",
	0x400b: "TRI_HI",
	0x400c: "NOISE_VOL",
	0x400e: "NOISE_LO",
	0x400f: "NOISE_HI",
	0x4010: "DMC_FREQ",
	0x4011: "DMC_RAW",
	0x4012: "DMC_START",
	0x4013: "DMC_LEN",
	0x4014: "OAMDMA",
	0x4015: "SND_CHN",
	0x4016: "JOY1",
	0x4017: "FRAMECNT",

	// MMC5
	0x5100: "MMC5_PRGMODE",
	0x5101: "MMC5_CHRMODE",
	0x5102: "MMC5_PRGRAMPROTECT1",
	0x5103: "MMC5_PRGRAMPROTECT2",
	0x5104: "MMC5_EXRAMMODE",
	0x5105: "MMC5_NAMETABLES",
	0x5106: "MMC5_FILLTILE",
	0x5107: "MMC5_FILLATTR",
	0x5113: "MMC5_PRGRAMBANK",
	0x5114: "MMC5_PRGBANK0",
	0x5115: "MMC5_PRGBANK1",
	0x5116: "MMC5_PRGBANK2",
	0x5117: "MMC5_PRGBANK3",
	0x5120: "MMC5_CHRBANK0",
	0x5121: "MMC5_CHRBANK1",
	0x5122: "MMC5_CHRBANK2",
	0x5123: "MMC5_CHRBANK3",
	0x5124: "MMC5_CHRBANK4",
	0x5125: "MMC5_CHRBANK5",
	0x5126: "MMC5_CHRBANK6",
	0x5127: "MMC5_CHRBANK7",
	0x5128: "MMC5_CHRBANKB0",
	0x5129: "MMC5_CHRBANKB1",
	0x512a: "MMC5_CHRBANKB2",
	0x512b: "MMC5_CHRBANKB3",
	0x5130: "MMC5_CHRUPPER",
	0x5205: "MMC5_MULA",
	0x5206: "MMC5_MULB",
}

// Symbol returns the canonical name for the address. The empty string is
// returned if the address has no name.
//
// Addresses in the video register area should have been normalised with
// memorymap.MapAddress() before calling this function.
func Symbol(address uint16, read bool) string {
	if read {
		return ReadSymbols[address]
	}
	return WriteSymbols[address]
}

// Lookup returns the address for the canonical name. Names are searched for
// in the write symbols first. The search is case sensitive.
func Lookup(symbol string) (uint16, bool) {
	for a, s := range WriteSymbols {
		if s == symbol {
			return a, true
		}
	}
	for a, s := range ReadSymbols {
		if s == symbol {
			return a, true
		}
	}
	return 0, false
}
