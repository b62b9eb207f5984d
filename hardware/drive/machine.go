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

import (
	"context"

	"github.com/finnhauge/c64core/hardware/iochip"
)

// Machine is the single-threaded cooperative master tick loop of §5:
// it owns a Drive's CPU and advances it one instruction at a time,
// updating every IOChip at or before its requested deadline.
type Machine struct {
	Drive *Drive
	chips []iochip.Chip
}

// NewMachine creates a Machine driving d.
func NewMachine(d *Drive) *Machine {
	return &Machine{
		Drive: d,
		chips: []iochip.Chip{d.VIA0, d.VIA1},
	}
}

// Run executes up to cycles emulated CPU cycles, or until ctx is
// cancelled. If the drive is Stopped, ticks are skipped (but ctx is
// still observed) until Resume is called; this lets a caller keep
// calling Run without checking Stopped itself.
//
// Disk backend calls made by the native job dispatcher (trap 0x100)
// receive ctx, so a cancellation reaches synchronous backend I/O too.
func (m *Machine) Run(ctx context.Context, cycles int) error {
	d := m.Drive
	d.ctx = ctx

	spent := 0
	for spent < cycles {
		if err := ctx.Err(); err != nil {
			return err
		}

		if d.Stopped {
			return nil
		}

		_, stepCycles, err := d.CPU.Step()
		if err != nil {
			return err
		}
		spent += stepCycles

		for _, chip := range m.chips {
			if chip.NextUpdate() <= d.CPU.Cycles {
				chip.Update(d.CPU.Cycles)
			}
		}
	}
	return nil
}
