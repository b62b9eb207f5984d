// This file is part of c64core.
//
// c64core is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// c64core is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with c64core.  If not, see <https://www.gnu.org/licenses/>.

// Package config collects the handful of knobs an embedder configures
// before constructing a drive: whether the native job dispatcher stands
// in for the original firmware IRQ routine, where the floppy ROM image
// is read from, and the random source used for power-on memory
// randomisation. Unlike the teacher's disk-backed preferences database,
// this is a plain struct with a constructor: this module is a library
// embedded into a larger shell, not the shell itself, so there is no
// prefs file of its own to load or save.
package config

import (
	"io/fs"
	"math/rand"
	"time"
)

// Config holds the embedder-facing settings for a drive.
type Config struct {
	// NativeDiskController selects whether extension opcode 0x100 runs
	// the native Go job dispatcher, mirroring the original
	// isEmulateDiskController() switch. Most embedders leave this true;
	// false is a debugging aid for comparing against the firmware path
	// the trap replaces.
	NativeDiskController bool

	// ROMFS and ROMPath together locate the floppy ROM image: ROMFS is
	// opened at ROMPath and expected to yield exactly the drive's ROM
	// size. Accepting an fs.FS rather than a bare path lets an embedder
	// supply an embedded FS, a directory FS, or a test FS uniformly.
	ROMFS   fs.FS
	ROMPath string

	// RandSrc, when set, is used by drive.NewFromConfig to fill the
	// drive's RAM with random values after the drive has been reset,
	// standing in for the unknown power-on contents of real RAM. With
	// RandSrc nil the RAM is left zeroed. New always sets RandSrc (see
	// Reseed).
	RandSrc *rand.Rand

	// RandSeed is the seed used to construct RandSrc, recorded for
	// reproducing a run.
	RandSeed int64
}

// New returns a Config with native disk-controller emulation enabled and
// a random source seeded from the current time.
func New(romfs fs.FS, romPath string) *Config {
	c := &Config{
		NativeDiskController: true,
		ROMFS:                romfs,
		ROMPath:              romPath,
	}
	c.Reseed(0)
	return c
}

// Reseed reinitialises RandSrc. A seed of 0 seeds from the current time;
// any other value is used directly, letting a test reproduce a specific
// randomised run.
func (c *Config) Reseed(seed int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	c.RandSeed = seed
	c.RandSrc = rand.New(rand.NewSource(seed))
}

// LoadROM reads the configured ROM image from ROMFS.
func (c *Config) LoadROM() ([]byte, error) {
	return fs.ReadFile(c.ROMFS, c.ROMPath)
}
