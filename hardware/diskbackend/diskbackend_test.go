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

package diskbackend_test

import (
	"context"
	"testing"

	"github.com/finnhauge/c64core/hardware/diskbackend"
	"github.com/finnhauge/c64core/test"
)

func TestSectorsPerTrackZones(t *testing.T) {
	test.DemandEquality(t, diskbackend.SectorsPerTrack[1], 21)
	test.DemandEquality(t, diskbackend.SectorsPerTrack[17], 21)
	test.DemandEquality(t, diskbackend.SectorsPerTrack[18], 19)
	test.DemandEquality(t, diskbackend.SectorsPerTrack[24], 19)
	test.DemandEquality(t, diskbackend.SectorsPerTrack[25], 18)
	test.DemandEquality(t, diskbackend.SectorsPerTrack[30], 18)
	test.DemandEquality(t, diskbackend.SectorsPerTrack[31], 17)
	test.DemandEquality(t, diskbackend.SectorsPerTrack[35], 17)
}

func TestMemoryBackendReadWriteRoundTrip(t *testing.T) {
	ctx := context.Background()
	b := diskbackend.NewMemoryBackend()

	var data [diskbackend.BlockSize]byte
	for i := range data {
		data[i] = byte(i)
	}

	test.DemandSuccess(t, b.GotoBlock(ctx, 18, 1))
	test.DemandSuccess(t, b.WriteBlock(ctx, data))

	test.DemandSuccess(t, b.GotoBlock(ctx, 18, 1))
	got, err := b.ReadBlock(ctx)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, got, data)
}

func TestMemoryBackendUnreadBlockIsZeroed(t *testing.T) {
	ctx := context.Background()
	b := diskbackend.NewMemoryBackend()
	test.DemandSuccess(t, b.GotoBlock(ctx, 1, 0))
	got, err := b.ReadBlock(ctx)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, got, [diskbackend.BlockSize]byte{})
}

func TestMemoryBackendRejectsOutOfRangeSector(t *testing.T) {
	ctx := context.Background()
	b := diskbackend.NewMemoryBackend()
	err := b.GotoBlock(ctx, 18, 19) // zone 18-24 has only 19 sectors, 0-18
	test.DemandFailure(t, err)
}

func TestMemoryBackendWriteProtect(t *testing.T) {
	ctx := context.Background()
	b := diskbackend.NewMemoryBackend()
	b.SetWriteProtected(true)
	test.DemandSuccess(t, b.GotoBlock(ctx, 1, 0))

	err := b.WriteBlock(ctx, [diskbackend.BlockSize]byte{})
	test.DemandFailure(t, err)
	if err != diskbackend.ErrWriteProtect {
		t.Fatalf("expected ErrWriteProtect, got %v", err)
	}
}
