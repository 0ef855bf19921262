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

package saves

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Lunatic6502/EmuNes/environment"
	"github.com/Lunatic6502/EmuNes/hardware/memory/cartridge"
	"github.com/Lunatic6502/EmuNes/logger"
	"github.com/Lunatic6502/EmuNes/resources"
)

// Extension of save files.
const Extension = ".sav"

// Store is a directory of save files.
type Store struct {
	env *environment.Environment
	dir string
}

// NewStore returns a Store for the directory named by the SaveDir preference.
// The directory is relative to the resources directory.
func NewStore(env *environment.Environment) (*Store, error) {
	dir, err := resources.JoinPath(env.Prefs.SaveDir.String(), "")
	if err != nil {
		return nil, fmt.Errorf("saves: %w", err)
	}
	return NewStoreAt(env, dir), nil
}

// NewStoreAt returns a Store for the specified directory. The directory is
// created when the first file is flushed. The environment can be nil.
func NewStoreAt(env *environment.Environment, dir string) *Store {
	return &Store{
		env: env,
		dir: dir,
	}
}

func (s *Store) String() string {
	return s.dir
}

func (s *Store) perm() logger.Permission {
	if s.env == nil {
		return logger.Allow
	}
	return s.env
}

// Path returns the path of the save file for the cartridge.
func (s *Store) Path(cart *cartridge.Cartridge) string {
	return filepath.Join(s.dir, cart.Hash+Extension)
}

// Restore loads the save file for the cartridge into the cartridge's SaveRAM.
// Cartridges without a battery are ignored. It is not an error for the save
// file to not exist.
func (s *Store) Restore(cart *cartridge.Cartridge) error {
	if !cart.Header.Battery {
		return nil
	}

	pth := s.Path(cart)

	f, err := os.Open(pth)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("saves: %w", err)
	}
	defer f.Close()

	if err := cart.SaveRAM.Load(f); err != nil {
		return fmt.Errorf("saves: %s: %w", pth, err)
	}

	logger.Logf(s.perm(), "saves", "restored %s", pth)

	return nil
}

// Flush writes the cartridge's SaveRAM to the save file. Cartridges without a
// battery are ignored, as are cartridges whose SaveRAM has not changed since
// it was last restored or flushed.
func (s *Store) Flush(cart *cartridge.Cartridge) error {
	if !cart.Header.Battery || !cart.SaveRAM.Dirty() {
		return nil
	}

	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("saves: %w", err)
	}

	pth := s.Path(cart)

	f, err := os.CreateTemp(s.dir, fmt.Sprintf("%s.*", filepath.Base(pth)))
	if err != nil {
		return fmt.Errorf("saves: %w", err)
	}

	err = cart.SaveRAM.Save(f)
	if err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return fmt.Errorf("saves: %w", err)
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return fmt.Errorf("saves: %w", err)
	}

	if err := os.Rename(f.Name(), pth); err != nil {
		_ = os.Remove(f.Name())
		return fmt.Errorf("saves: %w", err)
	}

	logger.Logf(s.perm(), "saves", "flushed %s", pth)

	return nil
}
