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

package debugview

import (
	"io"

	"github.com/bradleyjkemp/memviz"

	"github.com/finnhauge/c64core/hardware/drive"
)

// WriteComponentGraph writes a Graphviz dot rendering of d's live
// component-ownership graph (CPU, VIA0, VIA1, the shared memory array)
// to w. It exists to make the cyclic ownership between the CPU and the
// Bus it calls back into (see the design note on that cycle) visible to
// a developer without hand-drawing it: memviz walks the actual pointer
// graph rather than a description of it, so it stays accurate as the
// drive's internals change.
func WriteComponentGraph(w io.Writer, d *drive.Drive) {
	memviz.Map(w, d)
}
