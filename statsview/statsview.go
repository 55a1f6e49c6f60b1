// This file is part of Retrogate.
//
// Retrogate is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Retrogate is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Retrogate.  If not, see <https://www.gnu.org/licenses/>.
//go:build statsview

package statsview

import (
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/jetsetilly/retrogate/logger"
)

// sample interval of the graphs in milliseconds. the emulation and
// presentation threads are the interesting part so a short interval is used
const interval = 500

// Launch the statsview server on the address in a new goroutine. An empty
// address means DefaultAddress. The returned function stops the server.
func Launch(addr string) func() {
	if addr == "" {
		addr = DefaultAddress
	}

	viewer.SetConfiguration(viewer.WithAddr(addr), viewer.WithInterval(interval))
	mgr := statsview.New()
	go mgr.Start()

	logger.Logf(logger.Allow, "statsview", "available at %s%s", addr, path)

	return func() {
		mgr.Stop()
		logger.Logf(logger.Allow, "statsview", "stopped")
	}
}

// Available returns true if the statsview server can be launched.
func Available() bool {
	return true
}
