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
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"

	"github.com/finnhauge/c64core/hardware/drive"
)

// DefaultAddress is the local address NewStatsServer sets as a
// StatsServer's Address.
const DefaultAddress = "localhost:12641"

// StatsServer is an optional local HTTP dashboard, following the
// teacher's own statsview wrapper: a thin start/stop shell around the
// library's own goroutine, inert until Start is called. It serves the
// library's default Go runtime charts; the Machine it is created with is
// held but none of its counters are reported. It is not part of the
// emulation path itself; Run never consults it.
type StatsServer struct {
	Address string

	machine *drive.Machine
	mgr     *statsview.ViewManager
}

// NewStatsServer creates a StatsServer that will report on m once
// started. Address is set to DefaultAddress; change it before Start to
// listen elsewhere.
func NewStatsServer(m *drive.Machine) *StatsServer {
	return &StatsServer{Address: DefaultAddress, machine: m}
}

// Start launches the dashboard in a background goroutine and writes its
// URL to output, matching the teacher's Launch(output io.Writer)
// convention. Calling Start twice is a no-op.
func (s *StatsServer) Start(output io.Writer) {
	if s.mgr != nil {
		return
	}

	viewer.SetConfiguration(viewer.WithAddr(s.Address))
	s.mgr = statsview.New()

	go s.mgr.Start()

	fmt.Fprintf(output, "stats server available at %s/debug/statsview\n", s.Address)
}

// Stop marks the dashboard as no longer in use. The underlying library
// exposes no graceful shutdown hook (the teacher's own statsview.go
// never stops what it starts either), so the background HTTP listener
// keeps running; Stop only affects Running and permits a later Start to
// launch a fresh Manager. It is safe to call on a StatsServer that was
// never started.
func (s *StatsServer) Stop() {
	s.mgr = nil
}

// Running reports whether Start has been called without a matching Stop.
func (s *StatsServer) Running() bool {
	return s.mgr != nil
}
