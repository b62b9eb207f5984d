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

// installBaseInstructions installs the subset of the real 6502 opcode
// table this package implements: the handful of instructions the 1541
// firmware executes around the trap addresses of §4.3, plus enough of
// the general table (loads, stores, branches, flag ops) to drive a
// boot sequence in tests. The rest of the 6502 opcode table is out of
// scope; Step reports an error for any opcode without an installed
// handler rather than silently treating it as a NOP.
func installBaseInstructions(c *CPU) {
	c.AddInstruction(Definition{OpCode: 0xEA, Mnemonic: "NOP", Bytes: 1, Cycles: 2, AddressingMode: Implied}, opNOP)
	c.AddInstruction(Definition{OpCode: 0xA9, Mnemonic: "LDA", Bytes: 2, Cycles: 2, AddressingMode: Immediate}, opLDAImmediate)
	c.AddInstruction(Definition{OpCode: 0xA5, Mnemonic: "LDA", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage}, opLDAZeroPage)
	c.AddInstruction(Definition{OpCode: 0x85, Mnemonic: "STA", Bytes: 2, Cycles: 3, AddressingMode: ZeroPage}, opSTAZeroPage)
	c.AddInstruction(Definition{OpCode: 0xAA, Mnemonic: "TAX", Bytes: 1, Cycles: 2, AddressingMode: Implied}, opTAX)
	c.AddInstruction(Definition{OpCode: 0xBA, Mnemonic: "TSX", Bytes: 1, Cycles: 2, AddressingMode: Implied}, opTSX)
	c.AddInstruction(Definition{OpCode: 0x9A, Mnemonic: "TXS", Bytes: 1, Cycles: 2, AddressingMode: Implied}, opTXS)
	c.AddInstruction(Definition{OpCode: 0x18, Mnemonic: "CLC", Bytes: 1, Cycles: 2, AddressingMode: Implied}, opCLC)
	c.AddInstruction(Definition{OpCode: 0x38, Mnemonic: "SEC", Bytes: 1, Cycles: 2, AddressingMode: Implied}, opSEC)
	c.AddInstruction(Definition{OpCode: 0x58, Mnemonic: "CLI", Bytes: 1, Cycles: 2, AddressingMode: Implied}, opCLI)
	c.AddInstruction(Definition{OpCode: 0x78, Mnemonic: "SEI", Bytes: 1, Cycles: 2, AddressingMode: Implied}, opSEI)
	c.AddInstruction(Definition{OpCode: 0x4C, Mnemonic: "JMP", Bytes: 3, Cycles: 3, AddressingMode: Absolute}, opJMPAbsolute)
	c.AddInstruction(Definition{OpCode: 0xD0, Mnemonic: "BNE", Bytes: 2, Cycles: 2, AddressingMode: Relative}, opBNE)
	c.AddInstruction(Definition{OpCode: 0xF0, Mnemonic: "BEQ", Bytes: 2, Cycles: 2, AddressingMode: Relative}, opBEQ)
	c.AddInstruction(Definition{OpCode: 0x00, Mnemonic: "BRK", Bytes: 1, Cycles: 7, AddressingMode: Implied}, opBRK)
	c.AddInstruction(Definition{OpCode: 0x40, Mnemonic: "RTI", Bytes: 1, Cycles: 6, AddressingMode: Implied}, opRTI)
	c.AddInstruction(Definition{OpCode: 0xE8, Mnemonic: "INX", Bytes: 1, Cycles: 2, AddressingMode: Implied}, opINX)
	c.AddInstruction(Definition{OpCode: 0xC8, Mnemonic: "INY", Bytes: 1, Cycles: 2, AddressingMode: Implied}, opINY)
	c.AddInstruction(Definition{OpCode: 0xCA, Mnemonic: "DEX", Bytes: 1, Cycles: 2, AddressingMode: Implied}, opDEX)
}

func (c *CPU) fetchOperandByte() uint8 {
	v := c.Bus.ReadByte(c.PC)
	c.PC++
	return v
}

func (c *CPU) fetchOperandWord() uint16 {
	lo := uint16(c.fetchOperandByte())
	hi := uint16(c.fetchOperandByte())
	return lo | hi<<8
}

func opNOP(c *CPU) int { return 2 }

func opLDAImmediate(c *CPU) int {
	c.A = c.fetchOperandByte()
	c.Status.setNZ(c.A)
	return 2
}

func opLDAZeroPage(c *CPU) int {
	addr := uint16(c.fetchOperandByte())
	c.A = c.Bus.ReadByte(addr)
	c.Status.setNZ(c.A)
	return 3
}

func opSTAZeroPage(c *CPU) int {
	addr := uint16(c.fetchOperandByte())
	c.Bus.WriteByte(addr, c.A)
	return 3
}

func opTAX(c *CPU) int {
	c.X = c.A
	c.Status.setNZ(c.X)
	return 2
}

func opTSX(c *CPU) int {
	c.X = c.SP
	c.Status.setNZ(c.X)
	return 2
}

func opTXS(c *CPU) int {
	c.SP = c.X
	return 2
}

func opCLC(c *CPU) int { c.Status.Carry = false; return 2 }
func opSEC(c *CPU) int { c.Status.Carry = true; return 2 }
func opCLI(c *CPU) int { c.Status.InterruptDisable = false; return 2 }
func opSEI(c *CPU) int { c.Status.InterruptDisable = true; return 2 }

func opJMPAbsolute(c *CPU) int {
	c.PC = c.fetchOperandWord()
	return 3
}

func opBNE(c *CPU) int { return branch(c, !c.Status.Zero) }
func opBEQ(c *CPU) int { return branch(c, c.Status.Zero) }

func branch(c *CPU, take bool) int {
	offset := int8(c.fetchOperandByte())
	if !take {
		return 2
	}
	c.PC = uint16(int32(c.PC) + int32(offset))
	return 3
}

func opBRK(c *CPU) int {
	c.PC++ // skip the padding byte real 6502 BRK reserves
	c.pushWord(c.PC)
	s := c.Status
	s.Break = true
	c.pushByte(s.ToByte())
	c.Status.InterruptDisable = true
	c.PC = c.readWord(0xFFFE)
	return 7
}

func opRTI(c *CPU) int {
	c.Status.FromByte(c.popByte())
	c.PC = c.popWord()
	return 6
}

func opINX(c *CPU) int { c.X++; c.Status.setNZ(c.X); return 2 }
func opINY(c *CPU) int { c.Y++; c.Status.setNZ(c.Y); return 2 }
func opDEX(c *CPU) int { c.X--; c.Status.setNZ(c.X); return 2 }
