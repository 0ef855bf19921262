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
	"github.com/Lunatic6502/EmuNes/curated"
	"github.com/Lunatic6502/EmuNes/hardware/memory/addresses"
	"github.com/Lunatic6502/EmuNes/hardware/memory/cartridge/mapper"
	"github.com/Lunatic6502/EmuNes/hardware/memory/memorymap"
)

// board is the view of the cartridge given to a mapper. the mapper does not
// own any of the memory referenced by the board
type board struct {
	prg    []uint8
	chr    []uint8
	chrRAM bool
	sram   *SaveRAM

	// change the mirroring of the nametables
	mirror func(mapper.Mirroring)
}

// locator is implemented by all mappers. it returns the memory and the index
// into that memory for an address. the memory is nil if the address is not
// backed by ROM or RAM in the current mapping (for example, a register)
//
// locate must never change the state of the mapper
type locator interface {
	locate(address uint16) ([]uint8, int)
}

// open bus value for addresses that are not driven by the cartridge
func openBus(address uint16) uint8 {
	return uint8(address >> 8)
}

func (b *board) lastBank(size int) int {
	return mapper.Banks(len(b.prg), size) - 1
}

func (b *board) prgAt(bank int, size int, address uint16, origin uint16) ([]uint8, int) {
	return b.prg, mapper.Offset(bank, size, len(b.prg), address, origin)
}

func (b *board) chrAt(bank int, size int, address uint16, origin uint16) ([]uint8, int) {
	return b.chr, mapper.Offset(bank, size, len(b.chr), address, origin)
}

func (b *board) sramAt(address uint16) ([]uint8, int) {
	return b.sram.data, int(address-memorymap.OriginSaveRAM) % len(b.sram.data)
}

// read is the Read() implementation for mappers that don't change state when
// read
func (b *board) read(l locator, address uint16) (uint8, error) {
	if mem, idx := l.locate(address); mem != nil {
		return mem[idx], nil
	}
	return openBus(address), nil
}

// writeCHR writes to pattern table memory. only possible if the cartridge has
// CHR RAM
func (b *board) writeCHR(id string, l locator, address uint16, data uint8) error {
	if !b.chrRAM {
		return curated.Errorf(mapper.IllegalWriteError, id, addresses.Hex(address))
	}
	if mem, idx := l.locate(address); mem != nil {
		mem[idx] = data
	}
	return nil
}

// writeSRAM writes to the save RAM at $6000
func (b *board) writeSRAM(address uint16, data uint8) {
	_, idx := b.sramAt(address)
	b.sram.Write(idx, data)
}

// write is the Write() implementation common to most mappers. writes to the
// pattern tables and save RAM are handled here. the registers function is
// called for writes at or above $8000
func (b *board) write(id string, l locator, address uint16, data uint8, registers func(uint16, uint8) error) error {
	switch {
	case address <= memorymap.MemtopPatterns:
		return b.writeCHR(id, l, address, data)
	case address >= memorymap.OriginSaveRAM && address <= memorymap.MemtopSaveRAM:
		b.writeSRAM(address, data)
		return nil
	case address >= memorymap.OriginProgram:
		return registers(address, data)
	}
	return nil
}

func (b *board) prgBank(origin uint16, bank int, size int) mapper.BankInfo {
	return mapper.NewBankInfo(origin, bank, size, len(b.prg))
}

func (b *board) chrBank(origin uint16, bank int, size int) mapper.BankInfo {
	bi := mapper.NewBankInfo(origin, bank, size, len(b.chr))
	bi.Character = true
	bi.IsRAM = b.chrRAM
	return bi
}

func (b *board) sramBank() mapper.BankInfo {
	return mapper.BankInfo{
		Origin: memorymap.OriginSaveRAM,
		Memtop: memorymap.MemtopSaveRAM,
		Size:   mapper.Size8K,
		IsRAM:  true,
	}
}

// VideoCycle implements the mapper.CartMapper interface. Mappers that need to
// observe the video pipeline provide their own implementation.
func (b *board) VideoCycle(_ int, _ int, _ bool, _ bool) {
}
