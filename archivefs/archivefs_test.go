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

package archivefs_test

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/Lunatic6502/EmuNes/archivefs"
	"github.com/Lunatic6502/EmuNes/test"
)

// creates the following structure in a temporary directory:
//
//	testdir/testfile
//	testdir/testarchive.zip/archivefile
//	testdir/testarchive.zip/sub/game.nes
func testdir(t *testing.T) string {
	t.Helper()

	dir := filepath.Join(t.TempDir(), "testdir")
	test.DemandSuccess(t, os.Mkdir(dir, 0o755))
	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "testfile"), []byte("hello world\n"), 0o644))

	f, err := os.Create(filepath.Join(dir, "testarchive.zip"))
	test.DemandSuccess(t, err)
	defer f.Close()

	z := zip.NewWriter(f)

	w, err := z.Create("archivefile")
	test.DemandSuccess(t, err)
	_, err = w.Write([]byte("inside archive\n"))
	test.DemandSuccess(t, err)

	// no explicit entry for the sub directory
	w, err = z.Create("sub/game.nes")
	test.DemandSuccess(t, err)
	_, err = w.Write([]byte("NES\x1a"))
	test.DemandSuccess(t, err)

	test.DemandSuccess(t, z.Close())

	return dir
}

func TestArchivefsPath(t *testing.T) {
	dir := testdir(t)

	var afs archivefs.Path
	var path string
	var entries []archivefs.Node
	var err error

	// non-existant file
	err = afs.Set(filepath.Join(dir, "..", "foo"))
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, afs.String(), "")

	// a real directory
	err = afs.Set(dir)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, afs.String(), dir)
	test.ExpectSuccess(t, afs.IsDir())
	test.ExpectFailure(t, afs.InArchive())

	// entries in a directory. the archive is listed first because it is
	// treated as a directory
	entries, err = afs.List()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(entries), 2)
	test.ExpectEquality(t, fmt.Sprintf("%s", entries), "[testarchive.zip testfile]")
	test.ExpectSuccess(t, entries[0].IsArchive)

	// non-existant file in directory
	err = afs.Set(filepath.Join(dir, "foo"))
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, afs.String(), "")

	// a real file in directory
	path = filepath.Join(dir, "testfile")
	err = afs.Set(path)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, afs.String(), path)
	test.ExpectFailure(t, afs.IsDir())
	test.ExpectFailure(t, afs.InArchive())
	test.ExpectEquality(t, afs.Base(), "testfile")
	test.ExpectEquality(t, afs.Dir(), dir)

	// open file and read contents
	r, sz, err := afs.Open()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, sz, 12)
	b, err := io.ReadAll(r)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(b), "hello world\n")
	if c, ok := r.(io.Closer); ok {
		c.Close()
	}

	// entries in a directory when path is a file
	entries, err = afs.List()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(entries), 2)

	// the root of an archive
	path = filepath.Join(dir, "testarchive.zip")
	err = afs.Set(path)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, afs.String(), path)
	test.ExpectSuccess(t, afs.IsDir())
	test.ExpectSuccess(t, afs.InArchive())

	// opening a directory is an error
	_, _, err = afs.Open()
	test.ExpectFailure(t, err)

	// implicit directories are listed
	entries, err = afs.List()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, fmt.Sprintf("%s", entries), "[sub archivefile]")
	test.ExpectSuccess(t, entries[0].IsDir)

	// a file inside an archive
	path = filepath.Join(dir, "testarchive.zip", "archivefile")
	err = afs.Set(path)
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, afs.IsDir())
	test.ExpectSuccess(t, afs.InArchive())

	r, sz, err = afs.Open()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, sz, 15)
	b, err = io.ReadAll(r)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(b), "inside archive\n")

	// implicit directory inside archive
	path = filepath.Join(dir, "testarchive.zip", "sub")
	err = afs.Set(path)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, afs.IsDir())
	entries, err = afs.List()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, fmt.Sprintf("%s", entries), "[game.nes]")

	// non-existant file inside archive
	err = afs.Set(filepath.Join(dir, "testarchive.zip", "foo"))
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, afs.String(), "")
	test.ExpectFailure(t, afs.InArchive())

	afs.Close()
}

func TestArchivefsSearch(t *testing.T) {
	dir := testdir(t)

	var afs archivefs.Path
	defer afs.Close()

	err := afs.Set(filepath.Join(dir, "testarchive.zip"))
	test.DemandSuccess(t, err)

	found := afs.Search(".NES")
	test.ExpectEquality(t, len(found), 1)
	test.ExpectEquality(t, found[0], filepath.Join(dir, "testarchive.zip", "sub", "game.nes"))

	// the found path can be opened directly
	r, sz, err := archivefs.Open(found[0])
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, sz, 4)
	b, _ := io.ReadAll(r)
	test.ExpectEquality(t, string(b), "NES\x1a")

	// search outside of an archive does not look inside archives
	err = afs.Set(dir)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(afs.Search(".nes")), 0)
}

func TestArchiveExtensions(t *testing.T) {
	test.ExpectEquality(t, archivefs.RemoveArchiveExt("roms/games.zip/game.nes"), "roms/games/game.nes")
	test.ExpectEquality(t, archivefs.RemoveArchiveExt("roms/games.7Z/game.nes"), "roms/games/game.nes")
	test.ExpectEquality(t, archivefs.RemoveArchiveExt("game.nes"), "game.nes")
	test.ExpectEquality(t, archivefs.TrimArchiveExt("games.zip"), "games")
	test.ExpectEquality(t, archivefs.TrimArchiveExt("games.zip/game.nes"), "games.zip/game.nes")
	test.ExpectSuccess(t, archivefs.HasArchiveExt("games.Zip"))
	test.ExpectFailure(t, archivefs.HasArchiveExt("game.nes"))
}

func TestReadFile(t *testing.T) {
	dir := testdir(t)

	b, err := archivefs.ReadFile(filepath.Join(dir, "testarchive.zip", "archivefile"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(b), "inside archive\n")

	b, err = archivefs.ReadFile(filepath.Join(dir, "testfile"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(b), "hello world\n")

	_, err = archivefs.ReadFile(filepath.Join(dir, "testarchive.zip"))
	test.ExpectFailure(t, err)
}
