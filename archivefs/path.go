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
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// Node represents a single part of a full path
type Node struct {
	Name string

	// a directory has the the field of IsDir set to true
	IsDir bool

	// a recognised archive file has InArchive set to true. note that an archive
	// file is also considered to be directory
	IsArchive bool
}

func (e Node) String() string {
	return e.Name
}

// Path represents a single destination in the file system
type Path struct {
	current string
	isDir   bool

	arc archive

	// if the path is inside an archive, the slash separated path inside the
	// archive. empty if the path is the root of the archive
	inArchive string
}

// String returns the current path
func (afs Path) String() string {
	return afs.current
}

// Base returns the last element of the current path
func (afs Path) Base() string {
	return filepath.Base(afs.current)
}

// Dir returns all but the last element of path
func (afs Path) Dir() string {
	if afs.isDir {
		return afs.current
	}
	return filepath.Dir(afs.current)
}

// IsDir returns true if Path is currently set to a directory. For the purposes
// of archivefs, the root of an archive is treated as a directory
func (afs Path) IsDir() bool {
	return afs.isDir
}

// InArchive returns true if path is currently inside an archive
func (afs Path) InArchive() bool {
	return afs.arc != nil
}

// Open and return an io.ReadSeeker for the filename previously set by the Set()
// function.
//
// Returns the io.ReadSeeker, the size of the data behind the ReadSeeker and any
// errors.
func (afs Path) Open() (io.ReadSeeker, int, error) {
	if afs.isDir {
		return nil, 0, fmt.Errorf("archivefs: open: %s is a directory", afs.current)
	}

	if afs.arc != nil {
		af, ok := find(afs.arc, afs.inArchive)
		if !ok || af.open == nil {
			return nil, 0, fmt.Errorf("archivefs: open: %s not found", afs.current)
		}

		f, err := af.open()
		if err != nil {
			return nil, 0, fmt.Errorf("archivefs: open: %w", err)
		}
		defer f.Close()

		b, err := io.ReadAll(f)
		if err != nil {
			return nil, 0, fmt.Errorf("archivefs: open: %w", err)
		}

		return bytes.NewReader(b), len(b), nil
	}

	f, err := os.Open(afs.current)
	if err != nil {
		return nil, 0, fmt.Errorf("archivefs: open: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, fmt.Errorf("archivefs: open: %w", err)
	}

	return f, int(info.Size()), nil
}

// Close any open archive files and reset path
func (afs *Path) Close() {
	afs.current = ""
	afs.isDir = false
	afs.inArchive = ""
	if afs.arc != nil {
		_ = afs.arc.close()
		afs.arc = nil
	}
}

// List returns the child entries for the current path location. If the current
// path is a file then the list will be the contents of the containing directory
// of that file
func (afs *Path) List() ([]Node, error) {
	var ent []Node

	if afs.arc != nil {
		dir := afs.inArchive
		if !afs.isDir {
			dir = path.Dir(dir)
			if dir == "." {
				dir = ""
			}
		}

		prefix := ""
		if dir != "" {
			prefix = dir + "/"
		}

		seen := make(map[string]bool)

		for _, f := range afs.arc.files() {
			if !strings.HasPrefix(f.name, prefix) || f.name == dir {
				continue
			}

			// the first part of the path after the current directory. if
			// there is more than one part then the first part is a
			// directory, even if the archive has no entry for it
			rel := strings.TrimPrefix(f.name, prefix)
			parts := strings.SplitN(rel, "/", 2)
			if seen[parts[0]] {
				continue
			}
			seen[parts[0]] = true

			ent = append(ent, Node{
				Name:  parts[0],
				IsDir: f.isDir || len(parts) > 1,
			})
		}
	} else {
		pth := afs.current
		if !afs.isDir {
			pth = filepath.Dir(pth)
		}

		dir, err := os.ReadDir(pth)
		if err != nil {
			return []Node{}, fmt.Errorf("archivefs: entries: %w", err)
		}

		for _, d := range dir {
			// using os.Stat() to get file information otherwise links to
			// directories do not have the IsDir() property
			fi, err := os.Stat(filepath.Join(pth, d.Name()))
			if err != nil {
				continue
			}

			if fi.IsDir() {
				ent = append(ent, Node{
					Name:  d.Name(),
					IsDir: true,
				})
				continue
			}

			arc, err := openArchive(filepath.Join(pth, d.Name()))
			if err == nil {
				_ = arc.close()
				ent = append(ent, Node{
					Name:      d.Name(),
					IsDir:     true,
					IsArchive: true,
				})
			} else {
				ent = append(ent, Node{
					Name: d.Name(),
				})
			}
		}
	}

	Sort(ent)

	return ent, nil
}

// Sort nodes according to the archivefs rules, which are simply: case
// insensitive and directories at the top of the listing.
func Sort(ent []Node) {
	sort.SliceStable(ent, func(i int, j int) bool {
		if ent[i].IsDir != ent[j].IsDir {
			return ent[i].IsDir
		}
		return strings.ToLower(ent[i].Name) < strings.ToLower(ent[j].Name)
	})
}

// Search returns the full path of every file, below the current path, with
// the specified extension. The search is case insensitive. Directories inside
// archives are searched but directories outside of archives are not.
func (afs *Path) Search(ext string) []string {
	var found []string

	if afs.arc == nil {
		if afs.isDir {
			if ent, err := afs.List(); err == nil {
				for _, e := range ent {
					if !e.IsDir && strings.EqualFold(filepath.Ext(e.Name), ext) {
						found = append(found, filepath.Join(afs.current, e.Name))
					}
				}
			}
		} else if strings.EqualFold(filepath.Ext(afs.current), ext) {
			found = append(found, afs.current)
		}
		return found
	}

	// the path of the archive file itself
	root := afs.current
	if afs.inArchive != "" {
		root = strings.TrimSuffix(afs.current, string(filepath.Separator)+filepath.FromSlash(afs.inArchive))
	}

	for _, f := range afs.arc.files() {
		if f.isDir || !strings.EqualFold(path.Ext(f.name), ext) {
			continue
		}
		if afs.inArchive != "" && f.name != afs.inArchive && !strings.HasPrefix(f.name, afs.inArchive+"/") {
			continue
		}
		found = append(found, filepath.Join(root, filepath.FromSlash(f.name)))
	}

	sort.Strings(found)

	return found
}

// Set the path. The path can pass through a supported archive file.
func (afs *Path) Set(pth string) error {
	afs.Close()

	// clean path and split into parts
	pth = filepath.Clean(pth)
	lst := strings.Split(pth, string(filepath.Separator))

	// strings.Split will remove a leading filepath.Separator. we need to add
	// one back so that filepath.Join() works as expected
	if lst[0] == "" {
		lst[0] = string(filepath.Separator)
	}

	// reuse path string
	pth = ""

	for _, l := range lst {
		pth = filepath.Join(pth, l)

		if afs.arc != nil {
			p := path.Join(afs.inArchive, l)

			af, ok := find(afs.arc, p)
			if !ok {
				afs.Close()
				return fmt.Errorf("archivefs: set: %s not found in archive", p)
			}

			afs.isDir = af.isDir
			afs.inArchive = p

			continue
		}

		fi, err := os.Stat(pth)
		if err != nil {
			afs.Close()
			return fmt.Errorf("archivefs: set: %w", err)
		}

		afs.isDir = fi.IsDir()
		if afs.isDir {
			continue
		}

		arc, err := openArchive(pth)
		if err == nil {
			// the root of an archive file is considered to be a directory
			afs.arc = arc
			afs.isDir = true
			continue
		}

		if !errors.Is(err, errNotArchive) {
			afs.Close()
			return fmt.Errorf("archivefs: set: %w", err)
		}
	}

	// make sure path is clean
	afs.current = filepath.Clean(pth)

	return nil
}
