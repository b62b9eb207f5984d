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

// Package via implements the 6522 VIA peripheral register file used twice
// per 1541 drive: once as the bus controller (VIA0, talking to the C64 over
// the serial bus) and once as the disk controller (VIA1, talking to the
// read/write head). Both instances share the same 16-register layout;
// VIA1's disk-specific extensions live in diskcontroller.go.
package via

import "github.com/finnhauge/c64core/hardware/iochip"

// Register offsets within the 16-register 6522 map, addressed as
// address&0xF by the drive CPU's address decoder.
const (
	RegORB = iota
	RegORA
	RegDDRB
	RegDDRA
	RegT1CL
	RegT1CH
	RegT1LL
	RegT1LH
	RegT2CL
	RegT2CH
	RegSR
	RegACR
	RegPCR
	RegIFR
	RegIER
	RegORANoHandshake
)

const numRegisters = 16

// interrupt flag bits within RegIFR/RegIER.
const (
	IFTimer1 = 1 << 6
	IFTimer2 = 1 << 5
	IFCA1    = 1 << 1
)

// RegisterFile is one 6522 VIA's register state. It implements
// iochip.Chip so the master tick loop can schedule it alongside the
// other VIA.
type RegisterFile struct {
	orb, ora   uint8
	ddrb, ddra uint8

	t1Counter, t1Latch uint16
	t2Counter, t2Latch uint16

	shiftRegister uint8
	auxCtrl       uint8
	periphCtrl    uint8

	ifr, ier uint8

	lastUpdate uint64
}

// New creates a VIA register file in its post-reset state.
func New() *RegisterFile {
	r := &RegisterFile{}
	r.Reset()
	return r
}

// Reset zeroes every register, per §4.2's Reset contract.
func (r *RegisterFile) Reset() {
	*r = RegisterFile{}
}

// ReadRegister implements iochip.Chip.
func (r *RegisterFile) ReadRegister(register int) uint8 {
	switch register & 0xF {
	case RegORB:
		return r.orb
	case RegORA, RegORANoHandshake:
		return r.ora
	case RegDDRB:
		return r.ddrb
	case RegDDRA:
		return r.ddra
	case RegT1CL:
		r.ifr &^= IFTimer1
		return uint8(r.t1Counter)
	case RegT1CH:
		return uint8(r.t1Counter >> 8)
	case RegT1LL:
		return uint8(r.t1Latch)
	case RegT1LH:
		return uint8(r.t1Latch >> 8)
	case RegT2CL:
		r.ifr &^= IFTimer2
		return uint8(r.t2Counter)
	case RegT2CH:
		return uint8(r.t2Counter >> 8)
	case RegSR:
		return r.shiftRegister
	case RegACR:
		return r.auxCtrl
	case RegPCR:
		return r.periphCtrl
	case RegIFR:
		return r.ifr
	case RegIER:
		return r.ier | 0x80
	}
	return 0
}

// WriteRegister implements iochip.Chip.
func (r *RegisterFile) WriteRegister(register int, data uint8) {
	switch register & 0xF {
	case RegORB:
		r.orb = data
	case RegORA, RegORANoHandshake:
		r.ora = data
	case RegDDRB:
		r.ddrb = data
	case RegDDRA:
		r.ddra = data
	case RegT1CL, RegT1LL:
		r.t1Latch = (r.t1Latch & 0xFF00) | uint16(data)
	case RegT1CH:
		r.t1Latch = (r.t1Latch & 0x00FF) | uint16(data)<<8
		r.t1Counter = r.t1Latch
		r.ifr &^= IFTimer1
	case RegT1LH:
		r.t1Latch = (r.t1Latch & 0x00FF) | uint16(data)<<8
	case RegT2CL:
		r.t2Latch = (r.t2Latch & 0xFF00) | uint16(data)
	case RegT2CH:
		r.t2Latch = (r.t2Latch & 0x00FF) | uint16(data)<<8
		r.t2Counter = r.t2Latch
		r.ifr &^= IFTimer2
	case RegSR:
		r.shiftRegister = data
	case RegACR:
		r.auxCtrl = data
	case RegPCR:
		r.periphCtrl = data
	case RegIFR:
		r.ifr &^= data
	case RegIER:
		if data&0x80 != 0 {
			r.ier |= data & 0x7F
		} else {
			r.ier &^= data & 0x7F
		}
	}
}

// NextUpdate implements iochip.Chip: the register file next needs
// attention when either free-running timer underflows.
func (r *RegisterFile) NextUpdate() uint64 {
	next := r.t1Counter
	if r.t2Counter < next {
		next = r.t2Counter
	}
	return r.lastUpdate + uint64(next)
}

// Update implements iochip.Chip, decrementing both timers by the number
// of cycles elapsed since the last Update and setting the corresponding
// interrupt flag on underflow.
func (r *RegisterFile) Update(currentCycles uint64) {
	if currentCycles <= r.lastUpdate {
		return
	}
	elapsed := currentCycles - r.lastUpdate
	r.lastUpdate = currentCycles

	r.t1Counter, r.ifr = tick(r.t1Counter, r.t1Latch, elapsed, r.ifr, IFTimer1)
	r.t2Counter, r.ifr = tick(r.t2Counter, r.t2Latch, elapsed, r.ifr, IFTimer2)
}

// tick decrements a 16-bit free-running counter by elapsed cycles,
// reloading from latch and raising flag on each underflow.
func tick(counter, latch uint16, elapsed uint64, ifr, flag uint8) (uint16, uint8) {
	c := uint32(counter)
	e := elapsed
	for e > 0 {
		if e >= uint64(c)+1 {
			e -= uint64(c) + 1
			ifr |= flag
			c = uint32(latch)
		} else {
			c -= uint32(e)
			e = 0
		}
	}
	return uint16(c), ifr
}

// IRQPending reports whether any enabled interrupt flag is set, i.e.
// whether this chip is currently asserting the shared IRQ line.
func (r *RegisterFile) IRQPending() bool {
	return r.ifr&r.ier&0x7F != 0
}

// Snapshot returns a value copy of the register file's mutable state.
func (r *RegisterFile) Snapshot() RegisterFile {
	return *r
}

// Restore replaces the register file's state wholesale.
func (r *RegisterFile) Restore(s RegisterFile) {
	*r = s
}

var _ iochip.Chip = (*RegisterFile)(nil)
