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

package via

import "github.com/finnhauge/c64core/hardware/iochip"

// bytePeriod is the amount syncCycle advances on each Update once a sync
// mark has been seen. GCR-level timing is explicitly out of scope (see
// spec Non-goals): byte ready is not timed per byte but raised on every
// Update after a sync mark, which is enough for the drive CPU's SO-pin
// polling loop to observe it without modelling flux transitions.
const bytePeriod = 32

// DiskController is VIA1: the register file wired to the read/write head.
// It adds the three operations the drive CPU's ROM traps call directly
// (§4.3), none of which have a register-mapped equivalent.
type DiskController struct {
	RegisterFile

	// syncCycle advances by bytePeriod on each Update after a sync mark;
	// byteReady is raised on every such Update and stays raised until
	// WriteSync or Reset.
	syncCycle uint64
	sawSync   bool
	byteReady bool
}

// NewDiskController creates VIA1 in its post-reset state.
func NewDiskController() *DiskController {
	dc := &DiskController{}
	dc.Reset()
	return dc
}

// Reset implements iochip.Chip.
func (dc *DiskController) Reset() {
	dc.RegisterFile.Reset()
	dc.syncCycle = 0
	dc.sawSync = false
	dc.byteReady = false
}

// Update advances the generic register file and, once a sync mark has
// been seen, raises byte ready; before that it holds byte ready low.
func (dc *DiskController) Update(currentCycles uint64) {
	dc.RegisterFile.Update(currentCycles)

	if !dc.sawSync {
		dc.byteReady = false
		return
	}

	dc.syncCycle += bytePeriod
	dc.byteReady = true
}

// IsByteReady reports whether a byte has just been clocked off the GCR
// stream, i.e. the state of the hardware's BYTE READY line. The drive CPU
// ORs this into its overflow flag before every instruction (§4.3).
func (dc *DiskController) IsByteReady() bool {
	return dc.byteReady
}

// ProceedToNextSync is called by ROM trap 0x104 in place of the firmware
// routine it replaces. It lets the next Update raise byte ready without
// requiring a fresh sync mark to be found first, matching the trap's role of skipping
// past a write-sync wait loop the emulator has no GCR stream to satisfy.
func (dc *DiskController) ProceedToNextSync() {
	dc.sawSync = true
	dc.syncCycle = 0
}

// WriteSync is called by ROM traps 0x105 and 0x106 in place of the
// firmware routine that writes a sync mark to the disk. Since disk-image
// GCR encoding is out of scope, this only updates the controller's own
// sync-tracking state so that subsequent byte-ready polling behaves as if
// a sync mark had been written and found.
func (dc *DiskController) WriteSync() {
	dc.sawSync = true
	dc.syncCycle = 0
	dc.byteReady = false
}

var _ iochip.Chip = (*DiskController)(nil)
