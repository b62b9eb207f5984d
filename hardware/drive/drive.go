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

// Package drive implements the 1541 disk drive's own 6502 core: its
// address decode, its two 6522s, the ROM trap table that short-circuits
// slow firmware paths, and the native job dispatcher that stands in for
// the firmware routine those traps replace.
package drive

import (
	"context"

	"github.com/finnhauge/c64core/curated"
	"github.com/finnhauge/c64core/hardware/cpu"
	"github.com/finnhauge/c64core/hardware/diskbackend"
	"github.com/finnhauge/c64core/hardware/memory"
	"github.com/finnhauge/c64core/hardware/via"
	"github.com/finnhauge/c64core/logger"
)

const (
	ramSize = 0x0800 // 2KB, mirrored across the 0x0000 block
	romSize = 0x4000 // 16KB floppy ROM

	romOffset = ramSize // ROM begins immediately after RAM in the backing array
	resetPC   = 0xFFFC
)

// Address decode constants from §4.3.
const (
	blockRAM = 0x0000
	blockIO  = 0x1000
	via0Page = 0x1800
	via1Page = 0x1c00
)

// NativeEmulation selects whether extension 0x100 runs the native job
// dispatcher (true) or falls back to the original firmware opcode it
// replaced (false), per the table in §4.3.
type NativeEmulation bool

// Drive is one emulated 1541: its CPU, its two VIAs, its RAM+ROM
// backing array, and the trap table patched into that ROM at
// initialization.
type Drive struct {
	CPU  *cpu.CPU
	VIA0 *via.RegisterFile  // bus controller
	VIA1 *via.DiskController // disk controller

	mem *memory.Memory

	Backend diskbackend.Backend

	traps map[int]uint16

	NativeEmulation NativeEmulation

	// Stopped is set by the 0x102 trap and observed by the master tick
	// loop to skip further ticks until Resume is called.
	Stopped bool

	// driveActive mirrors the firmware's own activity indicator: set
	// whenever the native job dispatcher sees a nonzero command in any
	// slot (§4.4 step 2).
	driveActive bool

	ctx context.Context
}

// New creates a drive with rom (exactly romSize bytes of raw floppy
// ROM) loaded and patched, wired to backend for disk I/O. The drive is
// left in its post-reset state.
func New(rom []byte, backend diskbackend.Backend) (*Drive, error) {
	if len(rom) != romSize {
		return nil, curated.KindErrorf(curated.KindROMLoad, "drive: floppy ROM must be exactly %d bytes, got %d", romSize, len(rom))
	}

	d := &Drive{
		mem:             memory.New(ramSize, romSize),
		VIA0:            via.New(),
		VIA1:            via.NewDiskController(),
		Backend:         backend,
		traps:           map[int]uint16{},
		NativeEmulation: true,
		ctx:             context.Background(),
	}
	d.mem.LoadROM(romOffset, rom)
	d.patchROMs()

	d.CPU = cpu.New(d)
	d.CPU.IRQs = []cpu.IRQSource{d.VIA0, d.VIA1}
	d.installExtensions()
	d.CPU.BeforeInstruction = func(c *cpu.CPU) {
		if d.VIA1.IsByteReady() {
			c.Status.Overflow = true
		}
	}

	d.Reset()
	return d, nil
}

// Reset clears RAM, resets both VIAs, and resets the CPU (which loads
// PC from the reset vector), per §4.3's Reset contract.
func (d *Drive) Reset() {
	d.mem.Clear(0, ramSize)
	d.VIA0.Reset()
	d.VIA1.Reset()
	d.CPU.Reset()
	d.Stopped = false
	d.driveActive = false
}

// Stop is invoked by the 0x102 trap. It sets a flag the owning Machine
// checks before ticking this drive further.
func (d *Drive) Stop() {
	d.Stopped = true
}

// Resume clears the flag set by Stop, letting the master loop tick this
// drive again. There is no equivalent operation named in spec.md; a
// 1541 can be re-attached without a fresh Reset, so this is supplied
// alongside Stop.
func (d *Drive) Resume() {
	d.Stopped = false
}

// DriveActive reports whether the native job dispatcher has seen a
// pending job since the last Reset, mirroring the firmware's activity
// indicator.
func (d *Drive) DriveActive() bool {
	return d.driveActive
}

// PC returns the CPU's program counter projected the way an external
// observer sees it: values in ROM space (0xC000 and up) are reported as
// logical-0xC000+romOffset, so the result indexes directly into the
// backing array. Internal CPU logic always uses the logical 16-bit PC.
func (d *Drive) PC() int {
	return d.projectPC(d.CPU.PC)
}

func (d *Drive) projectPC(logical uint16) int {
	if logical >= 0xC000 {
		return int(logical) - 0xC000 + romOffset
	}
	return int(logical)
}

// decode maps a logical 16-bit address to a physical index into the
// backing array, or -1 if it falls in an I/O or VIA window (those never
// touch the memory array). It implements §4.3's address-decode table.
func (d *Drive) decode(address uint16) int {
	switch address & 0xF000 {
	case blockRAM:
		return int(address & 0x07FF)
	case blockIO:
		return -1
	case 0xC000, 0xD000, 0xE000, 0xF000:
		return int(address) - 0xC000 + romOffset
	}
	return -1
}

// ReadByte implements cpu.Bus.
func (d *Drive) ReadByte(address uint16) uint8 {
	if address&0xF000 == blockIO {
		return d.readIO(address)
	}
	idx := d.decode(address)
	if idx < 0 {
		return 0
	}
	return d.mem.Peek(idx)
}

// WriteByte implements cpu.Bus.
func (d *Drive) WriteByte(address uint16, data uint8) {
	if address&0xF000 == blockIO {
		d.writeIO(address, data)
		return
	}
	idx := d.decode(address)
	if idx < 0 || idx >= romOffset {
		return // ROM writes are silently dropped
	}
	d.mem.Poke(idx, data)
}

func (d *Drive) readIO(address uint16) uint8 {
	switch address & 0xFF00 {
	case via0Page:
		return d.VIA0.ReadRegister(int(address & 0xF))
	case via1Page:
		return d.VIA1.ReadRegister(int(address & 0xF))
	}
	return 0
}

func (d *Drive) writeIO(address uint16, data uint8) {
	switch address & 0xFF00 {
	case via0Page:
		d.VIA0.WriteRegister(int(address&0xF), data)
	case via1Page:
		d.VIA1.WriteRegister(int(address&0xF), data)
	}
}

// FetchOpcode implements cpu.Bus: it consults the trap table installed
// by patchROMs before falling back to the genuine cell value.
func (d *Drive) FetchOpcode(address uint16) uint16 {
	idx := d.decode(address)
	if idx >= 0 {
		if op, ok := d.traps[idx]; ok {
			return op
		}
	}
	return uint16(d.ReadByte(address))
}

var _ cpu.Bus = (*Drive)(nil)

func logf(tag, format string, args ...any) {
	logger.Logf(logger.Allow, tag, format, args...)
}
