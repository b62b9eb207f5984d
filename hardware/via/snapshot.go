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

import "github.com/finnhauge/c64core/snapshot"

// WriteState writes r's register state field by field: orb, ora, ddrb,
// ddra, t1Counter, t1Latch, t2Counter, t2Latch, shiftRegister, auxCtrl,
// periphCtrl, ifr, ier, lastUpdate.
func (r *RegisterFile) WriteState(w *snapshot.Writer) {
	w.WriteUint8(r.orb)
	w.WriteUint8(r.ora)
	w.WriteUint8(r.ddrb)
	w.WriteUint8(r.ddra)
	w.WriteUint32(uint32(r.t1Counter))
	w.WriteUint32(uint32(r.t1Latch))
	w.WriteUint32(uint32(r.t2Counter))
	w.WriteUint32(uint32(r.t2Latch))
	w.WriteUint8(r.shiftRegister)
	w.WriteUint8(r.auxCtrl)
	w.WriteUint8(r.periphCtrl)
	w.WriteUint8(r.ifr)
	w.WriteUint8(r.ier)
	w.WriteUint32(uint32(r.lastUpdate))
}

// ReadState reads a register file's state in the order WriteState wrote
// it and restores it into r.
func (r *RegisterFile) ReadState(rd *snapshot.Reader) {
	r.orb = rd.ReadUint8()
	r.ora = rd.ReadUint8()
	r.ddrb = rd.ReadUint8()
	r.ddra = rd.ReadUint8()
	r.t1Counter = uint16(rd.ReadUint32())
	r.t1Latch = uint16(rd.ReadUint32())
	r.t2Counter = uint16(rd.ReadUint32())
	r.t2Latch = uint16(rd.ReadUint32())
	r.shiftRegister = rd.ReadUint8()
	r.auxCtrl = rd.ReadUint8()
	r.periphCtrl = rd.ReadUint8()
	r.ifr = rd.ReadUint8()
	r.ier = rd.ReadUint8()
	r.lastUpdate = uint64(rd.ReadUint32())
}

// WriteState writes the disk controller's full state: the embedded
// register file, then syncCycle, sawSync, byteReady.
func (dc *DiskController) WriteState(w *snapshot.Writer) {
	dc.RegisterFile.WriteState(w)
	w.WriteUint32(uint32(dc.syncCycle))
	w.WriteBool(dc.sawSync)
	w.WriteBool(dc.byteReady)
}

// ReadState reads a disk controller's state in the order WriteState wrote
// it and restores it into dc.
func (dc *DiskController) ReadState(rd *snapshot.Reader) {
	dc.RegisterFile.ReadState(rd)
	dc.syncCycle = uint64(rd.ReadUint32())
	dc.sawSync = rd.ReadBool()
	dc.byteReady = rd.ReadBool()
}
