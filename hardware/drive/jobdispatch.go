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
	"context"

	"github.com/finnhauge/c64core/curated"
	"github.com/finnhauge/c64core/hardware/diskbackend"
	"github.com/finnhauge/c64core/hardware/via"
)

// Job commands, top nibble of a slot's command byte (§3, §4.4).
const (
	jobRead            = 0x80
	jobWrite           = 0x90
	jobVerify          = 0xA0
	jobBump            = 0xC0
	jobSearch          = 0xB0
	jobExecute         = 0xD0
	jobExecuteStartup  = 0xE0
)

// Status codes written back into a slot's command byte on completion.
const (
	statusOK           = 0x01
	statusNotFound     = 0x04
	statusWriteProtect = 0x08
	statusNoDisk       = 0x0F
)

// Job slot addresses (§3): five slots, m = 0..4.
const (
	slotCurrentReg     = 0x3F
	trackReg           = 0x22
	sectorsPerTrackReg = 0x43
	searchSectorReg    = 0x4D
	lastSectorReg      = 0x4C
)

func jobSlotTrackAddr(m int) uint16  { return uint16(0x06 + 2*m) }
func jobSlotSectorAddr(m int) uint16 { return uint16(0x07 + 2*m) }
func jobSlotBufferAddr(m int) uint16 { return uint16(0x0300 + 0x100*m) }

// dispatchJobs implements §4.4's native disk-controller IRQ routine,
// invoked in place of the firmware sequence trap 0x100 replaces.
func (d *Drive) dispatchJobs(ctx context.Context) error {
	d.ReadByte(uint16(0x1c00 | via.RegT1CL)) // clear the pending IRQ from VIA1

	for m := 0; m < 5; m++ {
		cmdByte := d.ReadByte(uint16(m))
		cmd := cmdByte & 0xF0
		track := d.ReadByte(jobSlotTrackAddr(m))
		sector := d.ReadByte(jobSlotSectorAddr(m))
		bufferAddr := jobSlotBufferAddr(m)

		if cmd > 0 {
			d.driveActive = true
		}
		d.WriteByte(slotCurrentReg, uint8(m))

		switch cmd {
		case jobRead:
			if err := d.runRead(ctx, m, track, sector, bufferAddr); err != nil {
				return err
			}
		case jobWrite:
			if err := d.runWrite(ctx, m, track, sector, bufferAddr); err != nil {
				return err
			}
		case jobVerify, jobBump:
			d.WriteByte(uint16(m), statusOK)
		case jobSearch:
			if track < 1 || int(track) >= len(diskbackend.SectorsPerTrack) {
				d.WriteByte(uint16(m), statusNotFound)
				continue
			}
			d.WriteByte(trackReg, track)
			d.WriteByte(sectorsPerTrackReg, uint8(diskbackend.SectorsPerTrack[track]))
			d.WriteByte(searchSectorReg, sector)
			d.WriteByte(uint16(m), statusOK)
		case jobExecute, jobExecuteStartup:
			return curated.KindErrorf(curated.KindUnimplementedJob, "drive: job slot %d requested unimplemented JOB_EXECUTE (cmd 0x%02x)", m, cmd)
		}
	}

	return nil
}

func (d *Drive) runRead(ctx context.Context, m int, track, sector uint8, bufferAddr uint16) error {
	if err := d.Backend.GotoBlock(ctx, int(track), int(sector)); err != nil {
		return d.writeJobStatus(m, err)
	}
	data, err := d.Backend.ReadBlock(ctx)
	if err != nil {
		return d.writeJobStatus(m, err)
	}
	for i, b := range data {
		d.WriteByte(bufferAddr+uint16(i), b)
	}
	d.WriteByte(lastSectorReg, sector)
	d.WriteByte(uint16(m), statusOK)
	return nil
}

func (d *Drive) runWrite(ctx context.Context, m int, track, sector uint8, bufferAddr uint16) error {
	if err := d.Backend.GotoBlock(ctx, int(track), int(sector)); err != nil {
		return d.writeJobStatus(m, err)
	}
	var data [diskbackend.BlockSize]byte
	for i := range data {
		data[i] = d.ReadByte(bufferAddr + uint16(i))
	}
	if err := d.Backend.WriteBlock(ctx, data); err != nil {
		return d.writeJobStatus(m, err)
	}
	d.WriteByte(lastSectorReg, sector)
	d.WriteByte(uint16(m), statusOK)
	return nil
}

// writeJobStatus maps a backend error onto the job's status byte per
// §4.4's failure mapping. If it isn't one of the three recognised
// disk-I/O conditions it returns a KindDiskIO error wrapping it (fatal)
// and writes no status.
func (d *Drive) writeJobStatus(m int, err error) error {
	var status uint8
	switch err {
	case diskbackend.ErrNotFound:
		status = statusNotFound
	case diskbackend.ErrWriteProtect:
		status = statusWriteProtect
	case diskbackend.ErrNoDisk:
		status = statusNoDisk
	default:
		return curated.KindErrorf(curated.KindDiskIO, "drive: unrecognised disk I/O error: %v", err)
	}
	d.WriteByte(uint16(m), status)
	return nil
}
