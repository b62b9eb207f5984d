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

package curated

// Kind categorises a curated error into one of this module's error
// taxonomy, letting a caller branch on KindOf/HasKind instead of
// matching against a formatted message.
type Kind int

const (
	// KindNone marks an error with no particular category; the
	// message itself is the only useful information.
	KindNone Kind = iota

	// KindUnimplementedJob marks a disk-controller job the native
	// dispatcher does not implement (EXECUTE/EXECUTE-WITH-STARTUP).
	// Fatal: emulation cannot continue past it.
	KindUnimplementedJob

	// KindUnknownSnapshotTag marks a VIA class tag encountered during
	// snapshot deserialisation, or while writing one, that cannot be
	// resolved to a live instance. Fatal on deserialise.
	KindUnknownSnapshotTag

	// KindDiskIO marks a disk backend failure the job dispatcher could
	// not map onto one of the firmware's own status-byte codes, so it
	// propagates instead of being folded into job state.
	KindDiskIO

	// KindROMLoad marks a failure loading or validating the floppy ROM
	// image handed to a drive at construction.
	KindROMLoad
)

func (k Kind) String() string {
	switch k {
	case KindUnimplementedJob:
		return "unimplemented job"
	case KindUnknownSnapshotTag:
		return "unknown snapshot tag"
	case KindDiskIO:
		return "disk I/O"
	case KindROMLoad:
		return "ROM load"
	}
	return "none"
}
