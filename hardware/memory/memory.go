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

// Package memory implements the flat backing cell array shared by a CPU
// core and any sprite engine reading DMA data out of it. Unlike the
// cartridge-mapped memory of a full C64, this is deliberately simple: RAM
// and ROM live contiguously in one array, addressed by a fixed decode map
// owned by the caller (see the drive package for the 1541's decode rules).
package memory

// Cells is the backing array type: RAM and ROM cells side by side, RAM
// first. Component readers (sprite DMA, CPU fetch) index into it directly;
// nothing here enforces the RAM/ROM boundary. That's the address-decode
// layer's job: Memory has no decoding read/write of its own, so a caller
// such as the drive CPU does its own decoding.
type Cells []uint8

// Memory is a flat cell array of a fixed RAM size followed by a fixed ROM
// size. Reads past the end of either region, or writes into the ROM
// region, are the caller's responsibility to avoid; Memory itself only
// guards against addressing past the end of the whole array.
type Memory struct {
	cells   Cells
	ramSize int
}

// New allocates a Memory with ramSize bytes of RAM followed by romSize
// bytes of (initially zeroed) ROM.
func New(ramSize, romSize int) *Memory {
	return &Memory{
		cells:   make(Cells, ramSize+romSize),
		ramSize: ramSize,
	}
}

// RAMSize returns the number of RAM cells at the front of the array.
func (m *Memory) RAMSize() int {
	return m.ramSize
}

// Len returns the total number of cells (RAM + ROM).
func (m *Memory) Len() int {
	return len(m.cells)
}

// Cells exposes the backing array for components (sprite DMA, ROM
// loaders) that need direct, unchecked indexed access. Callers must not
// resize the returned slice.
func (m *Memory) Cells() Cells {
	return m.cells
}

// Peek reads a cell without any address decoding, for debugging/snapshot
// use. Out-of-range indices return 0, matching the "unmapped read yields
// 0" invariant used throughout the address-decoded read path.
func (m *Memory) Peek(index int) uint8 {
	if index < 0 || index >= len(m.cells) {
		return 0
	}
	return m.cells[index]
}

// Poke writes a cell without any address decoding or ROM protection. It is
// meant for ROM loading and snapshot restore, not for emulated CPU writes
// (those go through the caller's address-decode logic, which is
// responsible for dropping writes into ROM windows).
func (m *Memory) Poke(index int, value uint8) {
	if index < 0 || index >= len(m.cells) {
		return
	}
	m.cells[index] = value
}

// Clear zeroes count cells starting at index, clamped to the array bounds.
// Used by RAM-clearing resets.
func (m *Memory) Clear(index, count int) {
	end := index + count
	if index < 0 {
		index = 0
	}
	if end > len(m.cells) {
		end = len(m.cells)
	}
	for i := index; i < end; i++ {
		m.cells[i] = 0
	}
}

// LoadROM copies data into the cell array starting at offset, for ROM
// image loading. It does not check that offset falls within the ROM
// region; that invariant belongs to the caller's memory map.
func (m *Memory) LoadROM(offset int, data []byte) {
	for i, b := range data {
		idx := offset + i
		if idx < 0 || idx >= len(m.cells) {
			continue
		}
		m.cells[idx] = b
	}
}

// Snapshot returns a copy of the backing array, safe for a caller to
// retain independently of further mutation of m.
func (m *Memory) Snapshot() Cells {
	c := make(Cells, len(m.cells))
	copy(c, m.cells)
	return c
}

// Restore replaces the backing array wholesale, e.g. from a snapshot. The
// length of cells must match the memory's original allocation; a mismatch
// is silently truncated/zero-padded rather than treated as an error, since
// this is meant to be called with data this package itself produced.
func (m *Memory) Restore(cells Cells) {
	n := copy(m.cells, cells)
	for i := n; i < len(m.cells); i++ {
		m.cells[i] = 0
	}
}
