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

package cartridgeloader

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/Lunatic6502/EmuNes/archivefs"
	"github.com/Lunatic6502/EmuNes/curated"
	"github.com/cespare/xxhash"
)

// Sentinal error patterns for the cartridgeloader package.
const (
	LoadError      = "cartridgeloader: %v"
	NotFoundError  = "cartridgeloader: no cartridge file in %s"
	HashMismatch   = "cartridgeloader: unexpected hash value (%s)"
	SchemeNotFound = "cartridgeloader: unsupported URL scheme (%s)"
)

// FileExtensions is the list of file extensions that are recognised as
// cartridge files when searching an archive.
var FileExtensions = [...]string{".NES"}

// Loader is used to specify the cartridge to use when attaching to the
// console.
type Loader struct {
	// filename of cartridge to load. the filename can be a URL or a path that
	// passes through an archive file
	Filename string

	// the name of the file that was actually loaded. this will be different to
	// Filename if Filename refers to an archive
	Resolved string

	// expected hash of the loaded cartridge. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: strings.TrimSpace(filename),
	}
}

// ShortName returns a shortened version of the Loader filename. Archive
// extensions and the .nes extension are removed.
func (cl Loader) ShortName() string {
	n := cl.Resolved
	if n == "" {
		n = cl.Filename
	}
	n = filepath.Base(archivefs.TrimArchiveExt(n))
	return strings.TrimSuffix(n, filepath.Ext(n))
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// Hash returns the hash value used by the cartridgeloader package for the
// data.
func Hash(data []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}

// Load the cartridge data. Loader filenames with a valid scheme will use that
// method to load the data. Currently supported schemes are HTTP(S) and local
// files.
//
// Calling Load() on a Loader that has already loaded does nothing.
func (cl *Loader) Load() error {
	if len(cl.Data) > 0 {
		return nil
	}

	scheme := "file"

	u, err := url.Parse(cl.Filename)
	if err == nil {
		scheme = u.Scheme
	}

	// a windows drive letter is parsed as a single character scheme
	if len(scheme) == 1 {
		scheme = "file"
	}

	switch scheme {
	case "http", "https":
		err = cl.loadHTTP()
	case "file", "":
		err = cl.loadFile()
	default:
		return curated.Errorf(SchemeNotFound, scheme)
	}

	if err != nil {
		cl.Data = nil
		return err
	}

	hash := Hash(cl.Data)

	// check for hash consistency
	if cl.Hash != "" && cl.Hash != hash {
		cl.Data = nil
		return curated.Errorf(HashMismatch, hash)
	}

	cl.Hash = hash

	return nil
}

func (cl *Loader) loadHTTP() error {
	resp, err := http.Get(cl.Filename)
	if err != nil {
		return curated.Errorf(LoadError, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return curated.Errorf(LoadError, resp.Status)
	}

	cl.Data, err = io.ReadAll(resp.Body)
	if err != nil {
		return curated.Errorf(LoadError, err)
	}

	cl.Resolved = cl.Filename

	return nil
}

func (cl *Loader) loadFile() error {
	fn, err := resolve(strings.TrimPrefix(cl.Filename, "file://"))
	if err != nil {
		return err
	}

	cl.Data, err = archivefs.ReadFile(fn)
	if err != nil {
		return curated.Errorf(LoadError, err)
	}

	cl.Resolved = fn

	return nil
}

// resolve the filename to a cartridge file. if the filename is an archive, or
// a directory inside an archive, then the first cartridge file found in the
// archive is used
func resolve(fn string) (string, error) {
	var afs archivefs.Path
	defer afs.Close()

	err := afs.Set(fn)
	if err != nil {
		return "", curated.Errorf(LoadError, err)
	}

	if !afs.IsDir() {
		return fn, nil
	}

	// directories are only searched if they are in an archive
	if !afs.InArchive() {
		return "", curated.Errorf(NotFoundError, fn)
	}

	var found []string
	for _, ext := range FileExtensions {
		found = append(found, afs.Search(ext)...)
	}
	if len(found) == 0 {
		return "", curated.Errorf(NotFoundError, fn)
	}

	return found[0], nil
}
