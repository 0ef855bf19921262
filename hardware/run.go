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

package hardware

// RunFrames clocks the video pipeline for the number of frames. The
// continueCheck function is called at the end of every scanline and can stop
// the run early by returning false. It can be nil.
//
// The onIRQ function is called whenever the cartridge raises an interrupt. The
// interrupt is acknowledged after onIRQ() returns. It can be nil.
func (con *Console) RunFrames(frames int, showBackground bool, showSprites bool,
	continueCheck func() (bool, error), onIRQ func(scanline int)) error {

	target := con.Frame + frames

	for con.Frame < target {
		for cycle := con.Cycle; cycle < CyclesPerScanline; cycle++ {
			con.VideoCycle(showBackground, showSprites)

			if con.IRQ() {
				if onIRQ != nil {
					onIRQ(con.Scanline)
				}
				con.Cart.AcknowledgeIRQ()
			}
		}

		if continueCheck != nil {
			cont, err := continueCheck()
			if err != nil {
				return err
			}
			if !cont {
				return nil
			}
		}
	}

	return nil
}
