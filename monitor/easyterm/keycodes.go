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

package easyterm

// list of ASCII codes for non-alphanumeric characters.
const (
	KeyCtrlC          = 3
	KeyCtrlD          = 4
	KeyCtrlU          = 21
	KeyTab            = 9
	KeyCarriageReturn = 13
	KeyLineFeed       = 10
	KeyEsc            = 27
	KeyBackspace      = 8
	KeyDelete         = 127
)

// EscCursor is the ASCII code that follows KeyEsc in a cursor sequence.
const EscCursor = '['

// list of ASCII codes for characters that can follow EscCursor.
const (
	CursorUp       = 'A'
	CursorDown     = 'B'
	CursorForward  = 'C'
	CursorBackward = 'D'
)
