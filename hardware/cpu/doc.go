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

// Package cpu implements a 6502 instruction dispatcher extensible with
// synthetic opcodes beyond the real 0x00-0xFF range. The genuine opcode
// table is intentionally small: this package's concern is the dispatch
// and trap mechanism, not exhaustive 6502 coverage, so it carries only
// the handful of real instructions an embedding CPU (such as the 1541
// drive core) actually needs its ROM to execute around its traps.
//
// A CPU never touches memory directly. It is handed a Bus at
// construction and every read, write, and instruction fetch goes
// through it, so the address decode, ROM protection, and trap-table
// lookup are entirely the embedder's responsibility.
package cpu

import "fmt"

// AddressingMode describes how an instruction's operand is fetched.
type AddressingMode int

// Addressing modes used by the real opcodes this package implements.
// The full 6502 addressing-mode set is not needed at this scope.
const (
	Implied AddressingMode = iota
	Immediate
	Relative
	Absolute
	ZeroPage
)

func (m AddressingMode) String() string {
	switch m {
	case Implied:
		return "implied"
	case Immediate:
		return "immediate"
	case Relative:
		return "relative"
	case Absolute:
		return "absolute"
	case ZeroPage:
		return "zeropage"
	}
	return "unknown"
}

// Definition describes one instruction table entry: a real opcode
// (0x00-0xFF) or a synthetic trap opcode (0x100-0x1FF).
type Definition struct {
	OpCode         uint16
	Mnemonic       string
	Bytes          int
	Cycles         int
	AddressingMode AddressingMode
}

func (d Definition) String() string {
	if d.Mnemonic == "" {
		return "undecoded instruction"
	}
	return fmt.Sprintf("%03x %s +%dbytes (%d cycles) [%s]", d.OpCode, d.Mnemonic, d.Bytes, d.Cycles, d.AddressingMode)
}
