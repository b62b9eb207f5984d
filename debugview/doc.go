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

// Package debugview holds developer-facing instrumentation over a live
// drive: a Graphviz dump of its component-ownership graph, and an
// optional local HTTP dashboard showing the statsview library's default
// Go runtime charts (it reports none of the tick loop's own counters).
// Neither is reachable from emulation itself; both are inert until an
// embedder calls them, so neither one is the "user-facing shell" spec.md
// places out of scope.
package debugview
