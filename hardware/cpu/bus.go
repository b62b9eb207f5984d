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

// Bus is the address space a CPU is wired to. It owns address decoding,
// ROM write-protection, and the mapping from a fetched cell to an
// opcode number, so a single CPU implementation serves both a plain
// flat-memory owner and one that layers a synthetic trap table over
// its ROM (see FetchOpcode).
type Bus interface {
	ReadByte(address uint16) uint8
	WriteByte(address uint16, data uint8)

	// FetchOpcode returns the opcode to dispatch for the instruction at
	// address: either the genuine cell value (0x00-0xFF) or, where the
	// owner has installed a trap, a synthetic value in 0x100-0x1FF.
	FetchOpcode(address uint16) uint16
}

// IRQSource is anything that can assert the shared IRQ or NMI line.
// VIA register files implement it via IRQPending.
type IRQSource interface {
	IRQPending() bool
}
