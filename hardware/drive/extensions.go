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

import "github.com/finnhauge/c64core/hardware/cpu"

// Synthetic opcodes installed over the real 6502 range, per §4.3.
const (
	opTrapJobDispatch    = 0x100
	opTrapSkipSelfTest   = 0x101
	opTrapStop           = 0x102
	opTrapLogFilename    = 0x103
	opTrapProceedToSync  = 0x104
	opTrapWriteSync      = 0x105
	opTrapWriteSyncSkip  = 0x106
)

// trapSite pairs a synthetic opcode with the logical ROM address it
// replaces.
type trapSite struct {
	opcode  uint16
	address uint16
}

var trapTable = []trapSite{
	{opTrapJobDispatch, 0xF2B0},
	{opTrapSkipSelfTest, 0xEAC9},
	{opTrapStop, 0xEBFF},
	{opTrapLogFilename, 0xD7B4},
	{opTrapProceedToSync, 0xF58C},
	{opTrapWriteSync, 0xF5A3},
	{opTrapWriteSyncSkip, 0xFCB1},
	{opTrapWriteSyncSkip, 0xFCDC},
}

// patchROMs records each trap table entry's synthetic opcode against the
// physical backing-array index of the ROM address it replaces, per §4.5.
// The genuine ROM
// byte at each address is left untouched in the backing array; the
// trap is a side table consulted by FetchOpcode, never smuggled through
// the 8-bit cell itself (§9's design note).
func (d *Drive) patchROMs() {
	for _, site := range trapTable {
		idx := d.decode(site.address)
		d.traps[idx] = site.opcode
	}
}

// installExtensions registers the handlers for every synthetic opcode
// in trapTable.
func (d *Drive) installExtensions() {
	d.CPU.AddInstruction(cpu.Definition{OpCode: opTrapJobDispatch, Mnemonic: "TRAP.DISPATCH"}, d.execJobDispatch)
	d.CPU.AddInstruction(cpu.Definition{OpCode: opTrapSkipSelfTest, Mnemonic: "TRAP.SKIPSELFTEST"}, d.execSkipSelfTest)
	d.CPU.AddInstruction(cpu.Definition{OpCode: opTrapStop, Mnemonic: "TRAP.STOP"}, d.execStop)
	d.CPU.AddInstruction(cpu.Definition{OpCode: opTrapLogFilename, Mnemonic: "TRAP.LOGFILENAME"}, d.execLogFilename)
	d.CPU.AddInstruction(cpu.Definition{OpCode: opTrapProceedToSync, Mnemonic: "TRAP.PROCEEDTOSYNC"}, d.execProceedToSync)
	d.CPU.AddInstruction(cpu.Definition{OpCode: opTrapWriteSync, Mnemonic: "TRAP.WRITESYNC"}, d.execWriteSync)
	d.CPU.AddInstruction(cpu.Definition{OpCode: opTrapWriteSyncSkip, Mnemonic: "TRAP.WRITESYNCSKIP"}, d.execWriteSyncSkip)
}

// execJobDispatch implements trap 0x100: run the native job dispatcher
// if native emulation is selected, else fall back to the real firmware
// opcode (0xBA, TSX) this trap shadows.
func (d *Drive) execJobDispatch(c *cpu.CPU) int {
	if !d.NativeEmulation {
		cycles, _ := c.Execute(0xBA)
		return cycles
	}
	if err := d.dispatchJobs(d.ctx); err != nil {
		c.Fault(err)
		return 0
	}
	c.PC = 0xFAC6
	return 0
}

// execSkipSelfTest implements trap 0x101: skip the ROM's power-on
// memory self-test by jumping straight past it.
func (d *Drive) execSkipSelfTest(c *cpu.CPU) int {
	c.PC = 0xEAEA
	return 0
}

// execStop implements trap 0x102: run the real CLI it shadows, then
// stop the drive.
func (d *Drive) execStop(c *cpu.CPU) int {
	cycles, _ := c.Execute(0x58)
	d.Stop()
	return cycles
}

// execLogFilename implements trap 0x103: run the real LDA zp it
// shadows, then read a null-terminated filename out of the buffer the
// firmware would have used and log it.
func (d *Drive) execLogFilename(c *cpu.CPU) int {
	cycles, _ := c.Execute(0xA5)

	var name []byte
	for addr := uint16(0x0200); addr <= 0x020F; addr++ {
		b := d.ReadByte(addr)
		if b == 0 {
			break
		}
		name = append(name, b)
	}
	logf("drive", "opening file %q", string(name))

	return cycles
}

// execProceedToSync implements trap 0x104.
func (d *Drive) execProceedToSync(c *cpu.CPU) int {
	d.VIA1.ProceedToNextSync()
	c.PC = 0xF594
	return 0
}

// execWriteSync implements trap 0x105.
func (d *Drive) execWriteSync(c *cpu.CPU) int {
	d.VIA1.WriteSync()
	c.PC = 0xF5B1
	return 0
}

// execWriteSyncSkip implements trap 0x106, installed at both 0xFCB1
// and 0xFCDC.
func (d *Drive) execWriteSyncSkip(c *cpu.CPU) int {
	d.VIA1.WriteSync()
	c.PC += 11
	return 0
}
