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

// Package diskbackend defines the boundary between the drive's native
// job dispatcher and whatever actually stores a disk image. Disk-image
// format parsing (D64 sector interleaving, G64 GCR streams, and so on)
// is an external collaborator's job; this package only names the
// block-level contract the dispatcher drives it through.
package diskbackend

import "context"

// BlockSize is the fixed transfer unit of every 1541 disk operation.
const BlockSize = 256

// SectorsPerTrack gives the number of 256-byte sectors on each of a
// 1541 disk's 35 tracks, indexed 1-35 (index 0 is unused). The 1541
// packs more sectors onto the outer, physically longer tracks, in four
// zones.
var SectorsPerTrack = [36]int{
	0,
	21, 21, 21, 21, 21, 21, 21, 21, 21, 21, 21, 21, 21, 21, 21, 21, 21, // 1-17
	19, 19, 19, 19, 19, 19, 19, // 18-24
	18, 18, 18, 18, 18, 18, // 25-30
	17, 17, 17, 17, 17, // 31-35
}

// Backend is the abstract disk image a drive's job dispatcher talks to.
// A goto/read or goto/write pair is always issued together within a
// single job; Backend does not need to be safe for concurrent use.
type Backend interface {
	// GotoBlock seeks to the given track and sector. Track is 1-35;
	// sector is 0-based and must be less than SectorsPerTrack[track].
	GotoBlock(ctx context.Context, track, sector int) error

	// ReadBlock reads the BlockSize bytes at the current head position.
	ReadBlock(ctx context.Context) ([BlockSize]byte, error)

	// WriteBlock writes BlockSize bytes at the current head position.
	WriteBlock(ctx context.Context, data [BlockSize]byte) error
}

// Sentinel errors a Backend implementation returns to let the job
// dispatcher map them onto the firmware's status byte values (§4.4).
var (
	ErrNotFound      = errorString("diskbackend: sector not found")
	ErrWriteProtect  = errorString("diskbackend: disk is write-protected")
	ErrNoDisk        = errorString("diskbackend: no disk in drive")
)

type errorString string

func (e errorString) Error() string { return string(e) }
