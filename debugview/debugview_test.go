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

package debugview_test

import (
	"bytes"
	"testing"

	"github.com/finnhauge/c64core/debugview"
	"github.com/finnhauge/c64core/hardware/diskbackend"
	"github.com/finnhauge/c64core/hardware/drive"
	"github.com/finnhauge/c64core/test"
)

func newTestDrive(t *testing.T) *drive.Drive {
	t.Helper()
	rom := make([]byte, 0x4000)
	rom[0x3FFC] = 0x00
	rom[0x3FFD] = 0xC0
	d, err := drive.New(rom, diskbackend.NewMemoryBackend())
	test.DemandSuccess(t, err)
	return d
}

func TestWriteComponentGraphProducesOutput(t *testing.T) {
	d := newTestDrive(t)
	var buf bytes.Buffer
	debugview.WriteComponentGraph(&buf, d)
	if buf.Len() == 0 {
		t.Fatalf("expected non-empty graph output")
	}
}

func TestNewStatsServerDefaultsAddressAndNotRunning(t *testing.T) {
	d := newTestDrive(t)
	m := drive.NewMachine(d)
	s := debugview.NewStatsServer(m)
	test.DemandEquality(t, s.Address, debugview.DefaultAddress)
	test.DemandEquality(t, s.Running(), false)
}

func TestStatsServerStopBeforeStartIsSafe(t *testing.T) {
	d := newTestDrive(t)
	m := drive.NewMachine(d)
	s := debugview.NewStatsServer(m)
	s.Stop()
	test.DemandEquality(t, s.Running(), false)
}
