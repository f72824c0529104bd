// This file is part of sat6502.
//
// sat6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// sat6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with sat6502.  If not, see <https://www.gnu.org/licenses/>.

package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"

	"github.com/jetsetilly/sat6502/logger"
)

// DefaultAddress of the viewer.
const DefaultAddress = "localhost:12600"

const url = "/debug/statsview"

// Viewer is a running instance of the runtime viewer.
type Viewer struct {
	Address string
	mgr     *statsview.ViewManager
}

// Launch the viewer at the address and print the URL to output. An empty
// address means DefaultAddress.
func Launch(output io.Writer, address string) *Viewer {
	if address == "" {
		address = DefaultAddress
	}

	viewer.SetConfiguration(viewer.WithAddr(address))
	v := &Viewer{
		Address: address,
		mgr:     statsview.New(),
	}

	go func() {
		if err := v.mgr.Start(); err != nil {
			logger.Log(logger.Allow, "statsview", err)
		}
	}()

	fmt.Fprintf(output, "stats viewer available at http://%s%s\n", address, url)
	return v
}

// Stop the viewer.
func (v *Viewer) Stop() {
	v.mgr.Stop()
}
