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

package archivefs

import (
	"path/filepath"
	"strings"
)

// ArchiveExtensions lists the file extensions of the supported archive types.
// Extensions are in upper case.
var ArchiveExtensions = [...]string{".ZIP", ".7Z"}

// HasArchiveExt returns true if the filename ends with the extension of a
// supported archive type. The comparison is not case sensitive.
func HasArchiveExt(filename string) bool {
	ext := strings.ToUpper(filepath.Ext(filename))
	for _, a := range ArchiveExtensions {
		if ext == a {
			return true
		}
	}
	return false
}

// RemoveArchiveExt removes the first archive extension found anywhere in the
// path. This is useful for turning a path through an archive into a path
// that does not mention the archive.
func RemoveArchiveExt(pth string) string {
	upper := strings.ToUpper(pth)
	for _, a := range ArchiveExtensions {
		if i := strings.Index(upper, a); i >= 0 {
			return pth[:i] + pth[i+len(a):]
		}
	}
	return pth
}

// TrimArchiveExt removes the archive extension from the end of the filename.
// The filename is returned unchanged if it does not end with an archive
// extension.
func TrimArchiveExt(filename string) string {
	if !HasArchiveExt(filename) {
		return filename
	}
	return strings.TrimSuffix(filename, filepath.Ext(filename))
}
