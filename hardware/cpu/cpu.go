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

package cpu

import "github.com/finnhauge/c64core/curated"

const numOpcodes = 0x200

// InstructionFunc executes one instruction and returns the number of
// cycles it consumed. It is responsible for advancing PC by the
// instruction's operand bytes; the fetch step has already consumed the
// opcode byte itself.
type InstructionFunc func(c *CPU) int

type instructionEntry struct {
	def  Definition
	exec InstructionFunc
}

// CPU is a 6502 core wired to a Bus. It carries no notion of address
// decoding, ROM protection, or IRQ/NMI vector layout beyond the
// standard 6502 interrupt sequence: all of that is the Bus's job.
//
// The instruction table is shared across the real 0x00-0xFF range and
// the synthetic 0x100-0x1FF trap range described in package doc; both
// are populated by AddInstruction and dispatched identically.
type CPU struct {
	PC     uint16
	A, X, Y uint8
	SP     uint8
	Status Status
	Cycles uint64

	Bus Bus

	// IRQs and NMIs are polled once per instruction boundary; any
	// source reporting IRQPending true and, for IRQs, Status.InterruptDisable
	// false, drives the corresponding interrupt sequence before the
	// next opcode fetch.
	IRQs []IRQSource
	NMIs []IRQSource

	// BeforeInstruction, if set, runs immediately before each fetch,
	// ahead of interrupt polling. The drive CPU uses this to fold the
	// disk controller's byte-ready line into the overflow flag.
	BeforeInstruction func(c *CPU)

	instructions [numOpcodes]*instructionEntry

	nmiLatch bool
	fault    error
}

// New creates a CPU wired to bus with the base 6502 instruction subset
// installed. Extension opcodes (0x100-0x1FF) are left for the embedder
// to install via AddInstruction.
func New(bus Bus) *CPU {
	c := &CPU{Bus: bus}
	installBaseInstructions(c)
	return c
}

// AddInstruction installs or replaces the handler for def.OpCode. It is
// how both the base real-opcode table and an embedder's synthetic
// trap handlers are populated; there is no distinction in storage
// between the two ranges.
func (c *CPU) AddInstruction(def Definition, exec InstructionFunc) {
	c.instructions[def.OpCode] = &instructionEntry{def: def, exec: exec}
}

// Lookup returns the definition installed for opcode, if any.
func (c *CPU) Lookup(opcode uint16) (Definition, bool) {
	e := c.instructions[opcode]
	if e == nil {
		return Definition{}, false
	}
	return e.def, true
}

// Execute runs the handler installed for opcode directly, without a
// fetch or a PC advance for the opcode byte itself. A trap handler uses
// this to fall back to the real instruction it shadows, e.g. trap 0x100
// executing the original 0xBA (TSX) it replaced.
func (c *CPU) Execute(opcode uint16) (int, bool) {
	e := c.instructions[opcode]
	if e == nil {
		return 0, false
	}
	return e.exec(c), true
}

// Reset sets PC from the reset vector at 0xFFFC, clears A, X, Y, the
// cycle counter and every flag except InterruptDisable (which it sets),
// and sets SP to 0xFD. It does not touch memory contents; RAM clearing and ROM
// loading are the embedder's responsibility, done before Reset via the
// Bus.
func (c *CPU) Reset() {
	c.A, c.X, c.Y = 0, 0, 0
	c.SP = 0xFD
	c.Status.Reset()
	c.Status.InterruptDisable = true
	c.Cycles = 0
	c.nmiLatch = false
	c.PC = c.readWord(0xFFFC)
}

// Step executes exactly one instruction: interrupt polling, then fetch,
// dispatch, and execute. It returns the number of cycles the
// instruction consumed and the opcode that was dispatched.
func (c *CPU) Step() (uint16, int, error) {
	if c.BeforeInstruction != nil {
		c.BeforeInstruction(c)
	}

	if c.pollNMI() {
		c.serviceInterrupt(0xFFFA, false)
		return 0, 7, nil
	}
	if !c.Status.InterruptDisable && c.pollIRQ() {
		c.serviceInterrupt(0xFFFE, false)
		return 0, 7, nil
	}

	opcode := c.Bus.FetchOpcode(c.PC)
	entry := c.instructions[opcode]
	if entry == nil {
		return opcode, 0, curated.Errorf("cpu: no instruction installed for opcode 0x%03x at PC 0x%04x", opcode, c.PC)
	}

	c.PC++
	c.fault = nil
	cycles := entry.exec(c)
	c.Cycles += uint64(cycles)
	return opcode, cycles, c.fault
}

// Fault lets an instruction handler (typically a synthetic trap) report
// a fatal error instead of returning a cycle count. Step surfaces it as
// the error result for the Step call in which it occurred; execution
// still records whatever cycle count the handler returned.
func (c *CPU) Fault(err error) {
	c.fault = err
}

// pollNMI reports whether an edge-triggered NMI should fire, latching
// on the first source found pending and clearing once every source has
// gone low, matching real 6502 edge (not level) sensitivity.
func (c *CPU) pollNMI() bool {
	pending := false
	for _, src := range c.NMIs {
		if src.IRQPending() {
			pending = true
			break
		}
	}
	if pending && !c.nmiLatch {
		c.nmiLatch = true
		return true
	}
	c.nmiLatch = pending
	return false
}

func (c *CPU) pollIRQ() bool {
	for _, src := range c.IRQs {
		if src.IRQPending() {
			return true
		}
	}
	return false
}

// serviceInterrupt pushes PC and status and jumps to the vector at
// vectorAddr, matching the real 6502 BRK/IRQ/NMI sequence. brk
// distinguishes a software BRK (status pushed with the break flag set)
// from a hardware IRQ/NMI (break flag clear).
func (c *CPU) serviceInterrupt(vectorAddr uint16, brk bool) {
	c.pushWord(c.PC)
	s := c.Status
	s.Break = brk
	c.pushByte(s.ToByte())
	c.Status.InterruptDisable = true
	c.PC = c.readWord(vectorAddr)
}

func (c *CPU) readWord(address uint16) uint16 {
	lo := uint16(c.Bus.ReadByte(address))
	hi := uint16(c.Bus.ReadByte(address + 1))
	return lo | hi<<8
}

func (c *CPU) pushByte(v uint8) {
	c.Bus.WriteByte(0x0100+uint16(c.SP), v)
	c.SP--
}

func (c *CPU) popByte() uint8 {
	c.SP++
	return c.Bus.ReadByte(0x0100 + uint16(c.SP))
}

func (c *CPU) pushWord(v uint16) {
	c.pushByte(uint8(v >> 8))
	c.pushByte(uint8(v))
}

func (c *CPU) popWord() uint16 {
	lo := uint16(c.popByte())
	hi := uint16(c.popByte())
	return lo | hi<<8
}
