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

package logger_test

import (
	"strings"
	"testing"

	"github.com/finnhauge/c64core/logger"
	"github.com/finnhauge/c64core/test"
)

func TestLoggerBasics(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Write(w)
	test.DemandEquality(t, w.String(), "")

	log.Log(logger.Allow, "drive", "opening file 'GAME'")
	w.Reset()
	log.Write(w)
	test.DemandEquality(t, w.String(), "drive: opening file 'GAME'\n")
}

func TestLoggerDeduplication(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "job", "slot 0 read")
	log.Log(logger.Allow, "job", "slot 0 read")
	log.Log(logger.Allow, "job", "slot 0 read")
	log.Write(w)

	test.DemandEquality(t, w.String(), "job: slot 0 read (repeat x3)\n")
}

func TestLoggerMaxEntries(t *testing.T) {
	log := logger.NewLogger(2)
	w := &strings.Builder{}

	log.Log(logger.Allow, "a", "1")
	log.Log(logger.Allow, "b", "2")
	log.Log(logger.Allow, "c", "3")
	log.Write(w)

	test.DemandEquality(t, w.String(), "b: 2\nc: 3\n")
}

func TestLoggerTail(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "a", "1")
	log.Log(logger.Allow, "b", "2")
	log.Log(logger.Allow, "c", "3")

	log.Tail(w, 2)
	test.DemandEquality(t, w.String(), "b: 2\nc: 3\n")

	w.Reset()
	log.Tail(w, 100)
	test.DemandEquality(t, w.String(), "a: 1\nb: 2\nc: 3\n")
}

func TestLoggerDeniedPermission(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(deny{}, "a", "1")
	log.Write(w)
	test.DemandEquality(t, w.String(), "")
}

type deny struct{}

func (deny) AllowLogging() bool { return false }

func TestLoggerWriteWithCompareWriter(t *testing.T) {
	log := logger.NewLogger(100)
	w := &test.CompareWriter{}

	log.Log(logger.Allow, "drive", "opening file 'GAME'")
	log.Write(w)

	if !w.Compare("drive: opening file 'GAME'\n") {
		t.Fatalf("unexpected log output: %s", w.String())
	}
}

func TestLoggerWriteTruncatesAtCappedWriterSize(t *testing.T) {
	log := logger.NewLogger(100)
	w, err := test.NewCappedWriter(len("drive: open"))
	test.DemandSuccess(t, err)

	log.Log(logger.Allow, "drive", "opening file 'GAME'")
	log.Write(w)

	test.DemandEquality(t, w.String(), "drive: open")
}

func TestLoggerWriteKeepsMostRecentBytesInRingWriter(t *testing.T) {
	log := logger.NewLogger(100)
	w, err := test.NewRingWriter(len("c: 3\n"))
	test.DemandSuccess(t, err)

	log.Log(logger.Allow, "a", "1")
	log.Log(logger.Allow, "b", "2")
	log.Log(logger.Allow, "c", "3")
	log.Write(w)

	test.DemandEquality(t, w.String(), "c: 3\n")
}
