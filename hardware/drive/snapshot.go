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

package drive

import (
	"io"

	"github.com/finnhauge/c64core/curated"
	"github.com/finnhauge/c64core/hardware/cpu"
	"github.com/finnhauge/c64core/snapshot"
)

// tagBusController and tagDiskController are the short symbolic tags
// written in place of a fully-qualified class name (see DESIGN.md's
// resolution of the "runtime class-name tags in snapshots" design note).
const (
	tagBusController  = "bus"
	tagDiskController = "disk"
)

// tagFor maps a live IRQ source to its snapshot tag.
func (d *Drive) tagFor(src cpu.IRQSource) (string, error) {
	switch src {
	case d.VIA0:
		return tagBusController, nil
	case d.VIA1:
		return tagDiskController, nil
	}
	return "", curated.KindErrorf(curated.KindUnknownSnapshotTag, "drive: snapshot cannot tag unknown IRQ source %T", src)
}

// sourceForTag is the deserialise-side inverse of tagFor: it reconnects
// a tag to the VIA instance it names. An unrecognised tag is fatal, per
// spec's "unknown snapshot tag" error case.
func (d *Drive) sourceForTag(tag string) (cpu.IRQSource, error) {
	switch tag {
	case tagBusController:
		return d.VIA0, nil
	case tagDiskController:
		return d.VIA1, nil
	}
	return nil, curated.KindErrorf(curated.KindUnknownSnapshotTag, "drive: unknown snapshot tag %q", tag)
}

// WriteSnapshot serialises the drive's complete mutable state: base CPU
// state (registers, flags, cycle counter, RAM contents) followed by the
// IRQ-source count and tags, then the NMI-source count and tags, per
// spec's snapshot format.
func (d *Drive) WriteSnapshot(out io.Writer) error {
	w := snapshot.NewWriter(out)

	w.WriteUint32(uint32(d.CPU.PC))
	w.WriteUint8(d.CPU.A)
	w.WriteUint8(d.CPU.X)
	w.WriteUint8(d.CPU.Y)
	w.WriteUint8(d.CPU.SP)
	w.WriteUint8(d.CPU.Status.ToByte())
	w.WriteUint32(uint32(d.CPU.Cycles))
	w.WriteBytes(d.mem.Snapshot()[:ramSize])
	w.WriteBool(d.Stopped)
	w.WriteBool(bool(d.NativeEmulation))
	w.WriteBool(d.driveActive)

	if err := d.writeSourceTags(w, d.CPU.IRQs); err != nil {
		return err
	}
	if err := d.writeSourceTags(w, d.CPU.NMIs); err != nil {
		return err
	}

	d.VIA0.WriteState(w)
	d.VIA1.WriteState(w)

	return w.Err()
}

func (d *Drive) writeSourceTags(w *snapshot.Writer, sources []cpu.IRQSource) error {
	w.WriteUint32(uint32(len(sources)))
	for _, src := range sources {
		tag, err := d.tagFor(src)
		if err != nil {
			return err
		}
		w.WriteBytes([]byte(tag))
	}
	return nil
}

// ReadSnapshot restores the drive's state from a stream written by
// WriteSnapshot. IRQ and NMI source lists are rebuilt by reconnecting
// each tag to d.VIA0 or d.VIA1, never by trusting a source list embedded
// in the stream.
func (d *Drive) ReadSnapshot(in io.Reader) error {
	r := snapshot.NewReader(in)

	pc := r.ReadUint32()
	a := r.ReadUint8()
	x := r.ReadUint8()
	y := r.ReadUint8()
	sp := r.ReadUint8()
	statusByte := r.ReadUint8()
	cycles := r.ReadUint32()
	ram := r.ReadBytes(ramSize)
	stopped := r.ReadBool()
	nativeEmulation := r.ReadBool()
	driveActive := r.ReadBool()

	irqs, err := d.readSourceTags(r)
	if err != nil {
		return err
	}
	nmis, err := d.readSourceTags(r)
	if err != nil {
		return err
	}

	d.VIA0.ReadState(r)
	d.VIA1.ReadState(r)

	if r.Err() != nil {
		return r.Err()
	}

	d.CPU.PC = uint16(pc)
	d.CPU.A, d.CPU.X, d.CPU.Y, d.CPU.SP = a, x, y, sp
	d.CPU.Status.FromByte(statusByte)
	d.CPU.Cycles = uint64(cycles)
	full := d.mem.Snapshot()
	copy(full, ram)
	d.mem.Restore(full)
	d.Stopped = stopped
	d.NativeEmulation = NativeEmulation(nativeEmulation)
	d.driveActive = driveActive
	d.CPU.IRQs = irqs
	d.CPU.NMIs = nmis

	return nil
}

func (d *Drive) readSourceTags(r *snapshot.Reader) ([]cpu.IRQSource, error) {
	n := r.ReadUint32()
	sources := make([]cpu.IRQSource, 0, n)
	for i := uint32(0); i < n; i++ {
		tag := string(r.ReadBytes(64))
		if r.Err() != nil {
			return nil, r.Err()
		}
		src, err := d.sourceForTag(tag)
		if err != nil {
			return nil, err
		}
		sources = append(sources, src)
	}
	return sources, nil
}
