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
	"github.com/finnhauge/c64core/config"
	"github.com/finnhauge/c64core/hardware/diskbackend"
)

// NewFromConfig loads the ROM image named by cfg, constructs a Drive
// wired to backend, and applies cfg's settings: NativeEmulation from
// NativeDiskController, and RAM randomised from RandSrc if set (real
// 1541 RAM powers on in an unknown state; a caller that leaves RandSrc
// unset gets the zeroed RAM New already leaves behind).
func NewFromConfig(cfg *config.Config, backend diskbackend.Backend) (*Drive, error) {
	rom, err := cfg.LoadROM()
	if err != nil {
		return nil, err
	}

	d, err := New(rom, backend)
	if err != nil {
		return nil, err
	}
	d.NativeEmulation = NativeEmulation(cfg.NativeDiskController)

	if cfg.RandSrc != nil {
		for i := 0; i < ramSize; i++ {
			d.mem.Poke(i, uint8(cfg.RandSrc.Intn(256)))
		}
	}

	return d, nil
}
