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

// Package hardware is the base package for the console emulation. It and its
// sub-packages contain everything required for an emulation of the
// cartridge and memory subsystem.
//
// The Console type ties together the address bus, the attached cartridge and
// the store used to persist battery backed RAM. It also keeps track of the
// position of the video pipeline so that mappers that watch the video
// pipeline can be clocked without a full video emulation.
//
// The CPU, video, audio and input hardware are not part of this package.
// Those components interact with the Console through the memory bus
// (Console.Mem), through VideoCycle() and through IRQ().
package hardware
