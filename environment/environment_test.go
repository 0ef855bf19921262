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

package environment_test

import (
	"testing"

	"github.com/Lunatic6502/EmuNes/environment"
	"github.com/Lunatic6502/EmuNes/hardware/preferences"
	"github.com/Lunatic6502/EmuNes/logger"
	"github.com/Lunatic6502/EmuNes/test"
)

func TestPermission(t *testing.T) {
	main, err := environment.NewEnvironment(environment.MainEmulation, preferences.NewDefaults())
	test.DemandSuccess(t, err)
	other, err := environment.NewEnvironment("preview", main.Prefs)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, main.IsMainEmulation())
	test.ExpectFailure(t, other.IsMainEmulation())

	log := logger.NewLogger(10)
	log.Log(other, "test", "not logged")
	test.ExpectEquality(t, log.Len(), 0)
	log.Log(main, "test", "logged")
	test.ExpectEquality(t, log.Len(), 1)
}

func TestNormalise(t *testing.T) {
	env, err := environment.NewEnvironment(environment.MainEmulation, preferences.NewDefaults())
	test.DemandSuccess(t, err)
	env.Prefs.Strict.Set(false)
	env.Normalise()
	test.ExpectEquality(t, env.Prefs.Strict.Get().(bool), true)
}
