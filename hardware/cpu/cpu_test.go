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

package cpu_test

import (
	"testing"

	"github.com/finnhauge/c64core/hardware/cpu"
	"github.com/finnhauge/c64core/test"
)

// flatBus is a 64KB flat address space with an optional opcode trap
// table, standing in for a real embedder's address-decoded Bus.
type flatBus struct {
	mem   [65536]uint8
	traps map[uint16]uint16
}

func newFlatBus() *flatBus {
	return &flatBus{traps: map[uint16]uint16{}}
}

func (b *flatBus) ReadByte(address uint16) uint8       { return b.mem[address] }
func (b *flatBus) WriteByte(address uint16, data uint8) { b.mem[address] = data }

func (b *flatBus) FetchOpcode(address uint16) uint16 {
	if op, ok := b.traps[address]; ok {
		return op
	}
	return uint16(b.mem[address])
}

func (b *flatBus) setResetVector(addr uint16) {
	b.mem[0xFFFC] = uint8(addr)
	b.mem[0xFFFD] = uint8(addr >> 8)
}

func TestResetLoadsVectorAndFlags(t *testing.T) {
	bus := newFlatBus()
	bus.setResetVector(0x1234)
	c := cpu.New(bus)
	c.Reset()

	test.DemandEquality(t, c.PC, uint16(0x1234))
	test.DemandEquality(t, c.Status.InterruptDisable, true)
	test.DemandEquality(t, c.Cycles, uint64(0))
}

func TestNOPAdvancesPCAndCycles(t *testing.T) {
	bus := newFlatBus()
	bus.setResetVector(0x0800)
	bus.mem[0x0800] = 0xEA
	c := cpu.New(bus)
	c.Reset()

	opcode, cycles, err := c.Step()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, opcode, uint16(0xEA))
	test.DemandEquality(t, cycles, 2)
	test.DemandEquality(t, c.PC, uint16(0x0801))
	test.DemandEquality(t, c.Cycles, uint64(2))
}

func TestLDAImmediateSetsZeroFlag(t *testing.T) {
	bus := newFlatBus()
	bus.setResetVector(0x0800)
	bus.mem[0x0800] = 0xA9
	bus.mem[0x0801] = 0x00
	c := cpu.New(bus)
	c.Reset()

	_, _, err := c.Step()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, c.A, uint8(0))
	test.DemandEquality(t, c.Status.Zero, true)
	test.DemandEquality(t, c.Status.Sign, false)
}

func TestBranchTakenAddsOffset(t *testing.T) {
	bus := newFlatBus()
	bus.setResetVector(0x0800)
	bus.mem[0x0800] = 0xA9 // LDA #0
	bus.mem[0x0801] = 0x00
	bus.mem[0x0802] = 0xF0 // BEQ +5
	bus.mem[0x0803] = 0x05
	c := cpu.New(bus)
	c.Reset()

	c.Step() // LDA
	_, _, err := c.Step()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, c.PC, uint16(0x0809))
}

func TestBranchNotTakenFallsThrough(t *testing.T) {
	bus := newFlatBus()
	bus.setResetVector(0x0800)
	bus.mem[0x0800] = 0xA9 // LDA #1
	bus.mem[0x0801] = 0x01
	bus.mem[0x0802] = 0xF0 // BEQ +5, not taken since A != 0
	bus.mem[0x0803] = 0x05
	c := cpu.New(bus)
	c.Reset()

	c.Step()
	c.Step()
	test.DemandEquality(t, c.PC, uint16(0x0804))
}

func TestBRKAndRTIRoundTripState(t *testing.T) {
	bus := newFlatBus()
	bus.setResetVector(0x0800)
	bus.mem[0x0800] = 0x00 // BRK
	bus.mem[0xFFFE] = 0x00
	bus.mem[0xFFFF] = 0x90 // IRQ/BRK vector -> 0x9000
	bus.mem[0x9000] = 0x40 // RTI
	c := cpu.New(bus)
	c.Reset()

	c.Step() // BRK
	test.DemandEquality(t, c.PC, uint16(0x9000))
	test.DemandEquality(t, c.Status.InterruptDisable, true)

	c.Step() // RTI
	test.DemandEquality(t, c.PC, uint16(0x0802))
}

type fakeIRQSource struct{ pending bool }

func (f *fakeIRQSource) IRQPending() bool { return f.pending }

func TestIRQServicedOnlyWhenEnabled(t *testing.T) {
	bus := newFlatBus()
	bus.setResetVector(0x0800)
	bus.mem[0x0800] = 0x58 // CLI
	bus.mem[0x0801] = 0xEA // NOP
	bus.mem[0xFFFE] = 0x00
	bus.mem[0xFFFF] = 0xA0 // IRQ vector -> 0xA000
	c := cpu.New(bus)
	c.Reset()
	src := &fakeIRQSource{pending: true}
	c.IRQs = []cpu.IRQSource{src}

	c.Step() // CLI, still services no IRQ this instruction
	_, _, err := c.Step()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, c.PC, uint16(0xA000))
}

func TestNMIIsEdgeTriggeredOnce(t *testing.T) {
	bus := newFlatBus()
	bus.setResetVector(0x0800)
	bus.mem[0x0800] = 0xEA
	bus.mem[0x0801] = 0xEA
	bus.mem[0xFFFA] = 0x00
	bus.mem[0xFFFB] = 0xB0 // NMI vector -> 0xB000
	bus.mem[0xB000] = 0xEA // NOP in the NMI handler
	c := cpu.New(bus)
	c.Reset()
	src := &fakeIRQSource{pending: true}
	c.NMIs = []cpu.IRQSource{src}

	_, _, err := c.Step()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, c.PC, uint16(0xB000))

	// the source is still pending, but with no new edge no second NMI fires
	_, _, err = c.Step()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, c.PC, uint16(0xB001))
}

func TestUnknownOpcodeIsAnError(t *testing.T) {
	bus := newFlatBus()
	bus.setResetVector(0x0800)
	bus.mem[0x0800] = 0x02 // not installed
	c := cpu.New(bus)
	c.Reset()

	_, _, err := c.Step()
	if err == nil {
		t.Fatal("expected an error for an unimplemented opcode")
	}
}

func TestExtensionOpcodeDispatchesLikeAnyOther(t *testing.T) {
	bus := newFlatBus()
	bus.setResetVector(0x0800)
	bus.traps[0x0800] = 0x100
	c := cpu.New(bus)
	c.Reset()

	fired := false
	c.AddInstruction(cpu.Definition{OpCode: 0x100, Mnemonic: "TRAP"}, func(c *cpu.CPU) int {
		fired = true
		c.PC = 0x1234
		return 5
	})

	opcode, cycles, err := c.Step()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, opcode, uint16(0x100))
	test.DemandEquality(t, cycles, 5)
	test.DemandEquality(t, fired, true)
	test.DemandEquality(t, c.PC, uint16(0x1234))
}

func TestTrapInvarianceInstructionTableUnchangedAfterExecution(t *testing.T) {
	bus := newFlatBus()
	bus.setResetVector(0x0800)
	bus.mem[0x0800] = 0xEA
	c := cpu.New(bus)
	c.Reset()

	before, _ := c.Lookup(0xEA)
	c.Step()
	after, ok := c.Lookup(0xEA)
	test.DemandEquality(t, ok, true)
	test.DemandEquality(t, before.Mnemonic, after.Mnemonic)
	test.DemandEquality(t, before.OpCode, after.OpCode)
}
