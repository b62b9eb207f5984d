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

package drive_test

import (
	"bytes"
	"testing"

	"github.com/finnhauge/c64core/hardware/diskbackend"
	"github.com/finnhauge/c64core/test"
)

// TestDriveSnapshotRoundTrip matches spec §8's "Snapshot round-trip" law
// for the drive CPU: base CPU state, RAM, and reconnected IRQ/NMI tags.
func TestDriveSnapshotRoundTrip(t *testing.T) {
	d := newTestDrive(t, 0xC000, diskbackend.NewMemoryBackend())
	d.WriteByte(0x0010, 0x77)
	_, _, err := d.CPU.Step()
	test.DemandSuccess(t, err)

	var buf bytes.Buffer
	test.DemandSuccess(t, d.WriteSnapshot(&buf))

	restored := newTestDrive(t, 0xC000, diskbackend.NewMemoryBackend())
	test.DemandSuccess(t, restored.ReadSnapshot(&buf))

	test.DemandEquality(t, restored.CPU.PC, d.CPU.PC)
	test.DemandEquality(t, restored.CPU.A, d.CPU.A)
	test.DemandEquality(t, restored.CPU.X, d.CPU.X)
	test.DemandEquality(t, restored.CPU.Y, d.CPU.Y)
	test.DemandEquality(t, restored.CPU.SP, d.CPU.SP)
	test.DemandEquality(t, restored.CPU.Cycles, d.CPU.Cycles)
	test.DemandEquality(t, restored.ReadByte(0x0010), uint8(0x77))
	test.DemandEquality(t, len(restored.CPU.IRQs), 2)
	test.DemandEquality(t, len(restored.CPU.NMIs), 0)

	// The reconnected IRQ sources must be this drive's own VIA instances,
	// not fresh copies, so that VIA state changes remain observable
	// through the CPU's polling.
	restored.VIA0.WriteRegister(0, 0)
	if restored.CPU.IRQs[0] != restored.VIA0 && restored.CPU.IRQs[1] != restored.VIA0 {
		t.Fatalf("restored IRQs do not include this drive's VIA0")
	}
}

func TestDriveSnapshotRejectsUnknownTag(t *testing.T) {
	var buf bytes.Buffer
	buf.Write([]byte{0, 0, 0xC0, 0x00}) // PC
	buf.WriteByte(0)                    // A
	buf.WriteByte(0)                    // X
	buf.WriteByte(0)                    // Y
	buf.WriteByte(0)                    // SP
	buf.WriteByte(0x20)                 // status
	buf.Write([]byte{0, 0, 0, 0})       // cycles
	buf.Write([]byte{0, 0, 0x08, 0x00}) // RAM length (0x0800)
	buf.Write(make([]byte, 0x0800))
	buf.WriteByte(0) // Stopped
	buf.WriteByte(0) // NativeEmulation
	buf.WriteByte(0) // driveActive
	buf.Write([]byte{0, 0, 0, 1})    // IRQ count
	buf.Write([]byte{0, 0, 0, 7})    // tag length
	buf.Write([]byte("bogus!!"))     // unknown tag

	d := newTestDrive(t, 0xC000, diskbackend.NewMemoryBackend())
	err := d.ReadSnapshot(&buf)
	test.DemandFailure(t, err)
}
