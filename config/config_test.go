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

package config_test

import (
	"testing"
	"testing/fstest"

	"github.com/finnhauge/c64core/config"
	"github.com/finnhauge/c64core/test"
)

func TestNewDefaultsToNativeDiskController(t *testing.T) {
	c := config.New(fstest.MapFS{}, "drive.rom")
	test.DemandEquality(t, c.NativeDiskController, true)
}

func TestReseedIsReproducible(t *testing.T) {
	c := config.New(fstest.MapFS{}, "drive.rom")
	c.Reseed(42)
	a := c.RandSrc.Intn(1000)

	c.Reseed(42)
	b := c.RandSrc.Intn(1000)

	test.DemandEquality(t, a, b)
}

func TestReseedZeroDerivesANonzeroSeed(t *testing.T) {
	c := config.New(fstest.MapFS{}, "drive.rom")
	if c.RandSeed == 0 {
		t.Fatalf("expected a time-derived seed, got 0")
	}
}

func TestLoadROMReadsFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"drive.rom": &fstest.MapFile{Data: []byte{1, 2, 3}},
	}
	c := config.New(fsys, "drive.rom")
	data, err := c.LoadROM()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(data), 3)
}
