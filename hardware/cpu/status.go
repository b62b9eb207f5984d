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

import "strings"

// Status is the 6502 flag register.
type Status struct {
	Sign             bool
	Overflow         bool
	Break            bool
	DecimalMode      bool
	InterruptDisable bool
	Zero             bool
	Carry            bool
}

// Reset clears every flag.
func (s *Status) Reset() {
	*s = Status{}
}

// FromByte loads all seven flags from the packed 6502 representation.
// Bit 5 (the unused flag) is ignored on load and always reported set on
// ToByte.
func (s *Status) FromByte(b uint8) {
	s.Sign = b&0x80 != 0
	s.Overflow = b&0x40 != 0
	s.Break = b&0x10 != 0
	s.DecimalMode = b&0x08 != 0
	s.InterruptDisable = b&0x04 != 0
	s.Zero = b&0x02 != 0
	s.Carry = b&0x01 != 0
}

// ToByte packs the flags into the 6502's single-byte representation,
// with the unused bit 5 always set.
func (s Status) ToByte() uint8 {
	var b uint8 = 0x20
	if s.Sign {
		b |= 0x80
	}
	if s.Overflow {
		b |= 0x40
	}
	if s.Break {
		b |= 0x10
	}
	if s.DecimalMode {
		b |= 0x08
	}
	if s.InterruptDisable {
		b |= 0x04
	}
	if s.Zero {
		b |= 0x02
	}
	if s.Carry {
		b |= 0x01
	}
	return b
}

// setNZ sets Sign and Zero to match v, as most data-moving instructions do.
func (s *Status) setNZ(v uint8) {
	s.Sign = v&0x80 != 0
	s.Zero = v == 0
}

func (s Status) String() string {
	f := strings.Builder{}
	flag := func(set bool, c byte) {
		if set {
			f.WriteByte(c)
		} else {
			f.WriteByte(c - 'A' + 'a')
		}
	}
	flag(s.Sign, 'S')
	flag(s.Overflow, 'V')
	f.WriteByte('-')
	flag(s.Break, 'B')
	flag(s.DecimalMode, 'D')
	flag(s.InterruptDisable, 'I')
	flag(s.Zero, 'Z')
	flag(s.Carry, 'C')
	return f.String()
}
