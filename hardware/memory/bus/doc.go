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

// Package bus defines the memory bus concept. A bus is the set of operations
// available to one side of a connection. The CPU side of the console sees
// the CPUBus. Debugging tools see the DebugBus, which reads and writes without
// side effects where the hardware allows it. The video pipeline notifies the
// cartridge of each pixel clock through the VideoBus.
package bus
