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

package preferences

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/Lunatic6502/EmuNes/prefs"
	"github.com/Lunatic6502/EmuNes/resources"
)

// Preferences defines and collates all the preference values used by the
// hardware packages.
type Preferences struct {
	dsk *prefs.Disk

	// illegal and write-protected writes halt emulation when Strict is true.
	// otherwise they are logged and ignored
	Strict prefs.Bool

	// directory, relative to the resources directory, in which battery backed
	// save RAM is stored
	SaveDir prefs.String

	// flush save RAM to disk when a cartridge is ejected
	AutoFlush prefs.Bool

	// initialise console RAM to an unknown state on reset
	RandomState prefs.Bool

	// random values generated in the hardware package should use the following
	// number source
	RandSrc *rand.Rand
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return fmt.Sprintf("hardware.strict :: %s\nhardware.saveDir :: %s\nhardware.autoFlush :: %s\nhardware.randomState :: %s\n",
			&p.Strict, &p.SaveDir, &p.AutoFlush, &p.RandomState)
	}
	return p.dsk.String()
}

// NewDefaults returns preferences with default values that are not backed
// by a file on disk. Useful for testing and for secondary emulations.
func NewDefaults() *Preferences {
	p := &Preferences{}
	p.SetDefaults()
	return p
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the preferences file in the
// resources directory.
func NewPreferences() (*Preferences, error) {
	p := NewDefaults()

	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	if err := p.dsk.Add("hardware.strict", &p.Strict); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("hardware.saveDir", &p.SaveDir); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("hardware.autoFlush", &p.AutoFlush); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("hardware.randomState", &p.RandomState); err != nil {
		return nil, err
	}

	if err := p.dsk.Load(); err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	p.Strict.Set(true)
	p.SaveDir.Set("saves")
	p.AutoFlush.Set(true)
	p.RandomState.Set(false)
	p.Reseed(0)
}

// Reseed the random number source. A seed value of zero uses the current
// time.
func (p *Preferences) Reseed(seed int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	p.RandSrc = rand.New(rand.NewSource(seed))
}

// Save current preferences to disk. Preferences created with NewDefaults()
// have nowhere to save to and the function does nothing.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}

// Load preferences from disk. Preferences created with NewDefaults() have
// nowhere to load from and the function does nothing.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Load()
}
