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

// Package test bundles small helper functions used by this module's
// own test suites, removing common boilerplate around the standard
// testing package.
//
// The DemandEquality, DemandSuccess, DemandFailure, and
// DemandImplements functions each fail the test immediately (via
// t.Fatalf) when their condition doesn't hold, which is appropriate
// when a later part of the same test depends on the value being
// correct.
//
// CappedWriter, CompareWriter, and RingWriter (writers.go) implement
// io.Writer and exist to capture output for comparison against this
// module's own logger.Logger: CompareWriter for an exact match,
// CappedWriter for the stable leading portion of a longer stream, and
// RingWriter for its most recently written tail.
package test
