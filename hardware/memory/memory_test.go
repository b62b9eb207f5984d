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

package memory_test

import (
	"testing"

	"github.com/finnhauge/c64core/hardware/memory"
	"github.com/finnhauge/c64core/test"
)

func TestOutOfRangeReadsYieldZero(t *testing.T) {
	m := memory.New(8, 8)
	test.DemandEquality(t, m.Peek(-1), uint8(0))
	test.DemandEquality(t, m.Peek(999), uint8(0))
}

func TestOutOfRangeWritesAreIgnored(t *testing.T) {
	m := memory.New(4, 4)
	m.Poke(-1, 0xff)
	m.Poke(999, 0xff)
	// nothing to assert directly; the point is that this must not panic
}

func TestLoadROMAndPeek(t *testing.T) {
	m := memory.New(4, 4)
	m.LoadROM(4, []byte{0x11, 0x22, 0x33, 0x44})
	test.DemandEquality(t, m.Peek(4), uint8(0x11))
	test.DemandEquality(t, m.Peek(7), uint8(0x44))
}

func TestClear(t *testing.T) {
	m := memory.New(4, 0)
	m.Poke(0, 1)
	m.Poke(1, 2)
	m.Poke(2, 3)
	m.Clear(0, 2)
	test.DemandEquality(t, m.Peek(0), uint8(0))
	test.DemandEquality(t, m.Peek(1), uint8(0))
	test.DemandEquality(t, m.Peek(2), uint8(3))
}

func TestSnapshotRoundTrip(t *testing.T) {
	m := memory.New(4, 4)
	m.Poke(0, 0xaa)
	m.Poke(7, 0xbb)

	snap := m.Snapshot()

	m2 := memory.New(4, 4)
	m2.Restore(snap)

	test.DemandEquality(t, m2.Peek(0), uint8(0xaa))
	test.DemandEquality(t, m2.Peek(7), uint8(0xbb))
}
