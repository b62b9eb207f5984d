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

package diskbackend

import "context"

// MemoryBackend is an in-memory Backend, useful for tests and for
// scratch disks that never need to persist. It stores one 256-byte
// block per (track, sector) pair, allocated lazily.
type MemoryBackend struct {
	writeProtected bool
	blocks         map[[2]int][BlockSize]byte

	track, sector int
}

// NewMemoryBackend creates an empty, writable in-memory disk.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{blocks: make(map[[2]int][BlockSize]byte)}
}

// SetWriteProtected controls whether WriteBlock fails with
// ErrWriteProtect, simulating the disk's write-protect notch.
func (m *MemoryBackend) SetWriteProtected(protected bool) {
	m.writeProtected = protected
}

// Seed pre-populates a block, for setting up test fixtures.
func (m *MemoryBackend) Seed(track, sector int, data [BlockSize]byte) {
	m.blocks[[2]int{track, sector}] = data
}

// GotoBlock implements Backend.
func (m *MemoryBackend) GotoBlock(ctx context.Context, track, sector int) error {
	if track < 1 || track > 35 {
		return ErrNotFound
	}
	if sector < 0 || sector >= SectorsPerTrack[track] {
		return ErrNotFound
	}
	m.track, m.sector = track, sector
	return nil
}

// ReadBlock implements Backend.
func (m *MemoryBackend) ReadBlock(ctx context.Context) ([BlockSize]byte, error) {
	data, ok := m.blocks[[2]int{m.track, m.sector}]
	if !ok {
		return [BlockSize]byte{}, nil
	}
	return data, nil
}

// WriteBlock implements Backend.
func (m *MemoryBackend) WriteBlock(ctx context.Context, data [BlockSize]byte) error {
	if m.writeProtected {
		return ErrWriteProtect
	}
	m.blocks[[2]int{m.track, m.sector}] = data
	return nil
}

var _ Backend = (*MemoryBackend)(nil)
