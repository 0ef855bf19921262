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
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
)

// returned by openArchive() when the file is not a recognised archive
var errNotArchive = errors.New("not an archive")

type archiveFile struct {
	// slash separated path of the file inside the archive
	name  string
	isDir bool
	open  func() (io.ReadCloser, error)
}

type archive interface {
	files() []archiveFile
	close() error
}

type zipArchive struct {
	rc *zip.ReadCloser
}

func (z zipArchive) files() []archiveFile {
	var fs []archiveFile
	for _, f := range z.rc.File {
		fs = append(fs, archiveFile{
			name:  strings.TrimSuffix(path.Clean(f.Name), "/"),
			isDir: f.FileInfo().IsDir(),
			open:  f.Open,
		})
	}
	return fs
}

func (z zipArchive) close() error {
	return z.rc.Close()
}

type sevenZipArchive struct {
	f *os.File
	r *sevenzip.Reader
}

func (z sevenZipArchive) files() []archiveFile {
	var fs []archiveFile
	for _, f := range z.r.File {
		fs = append(fs, archiveFile{
			name:  strings.TrimSuffix(path.Clean(filepath.ToSlash(f.Name)), "/"),
			isDir: f.FileInfo().IsDir(),
			open:  f.Open,
		})
	}
	return fs
}

func (z sevenZipArchive) close() error {
	return z.f.Close()
}

// open the file at filename as an archive. 7z archives are identified by the
// file extension. zip archives are identified by their content
func openArchive(filename string) (archive, error) {
	if strings.EqualFold(filepath.Ext(filename), ".7z") {
		f, err := os.Open(filename)
		if err != nil {
			return nil, err
		}

		fi, err := f.Stat()
		if err != nil {
			f.Close()
			return nil, err
		}

		r, err := sevenzip.NewReader(f, fi.Size())
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("7z: %w", err)
		}

		return sevenZipArchive{f: f, r: r}, nil
	}

	zf, err := zip.OpenReader(filename)
	if err == nil {
		return zipArchive{rc: zf}, nil
	}
	if errors.Is(err, zip.ErrFormat) {
		return nil, errNotArchive
	}
	return nil, err
}

// find the entry in the archive. directories do not need to have an explicit
// entry in the archive
func find(arc archive, name string) (archiveFile, bool) {
	for _, f := range arc.files() {
		if f.name == name {
			return f, true
		}
		if strings.HasPrefix(f.name, name+"/") {
			return archiveFile{name: name, isDir: true}, true
		}
	}
	return archiveFile{}, false
}
