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

// Package logger is the central log for the emulation. Entries are tagged
// with the name of the component that created them and identical consecutive
// entries are folded into one with a repeat count.
//
// The package level functions Log() and Logf() add to the central log. The
// first argument to both is a Permission value. The environment type
// implements Permission so that secondary emulations can be silenced:
//
//	logger.Logf(env, "mmc5", "mirroring changed to %s", m)
//
// The Allow value can be used when a log entry should always be made.
//
// Instances of Logger can also be created with NewLogger(). This is useful
// for tests that need an empty log.
package logger
