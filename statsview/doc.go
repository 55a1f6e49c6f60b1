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
// Package statsview serves runtime statistics over HTTP. It is only
// available when built with the statsview build tag:
//
//	go build -tags statsview
//
// Once launched, graphs are viewable at:
//
//	localhost:12600/debug/statsview
//
// and the standard pprof statistics at:
//
//	localhost:12600/debug/pprof/
//
// A different address can be given to Launch().
package statsview

// DefaultAddress of the HTTP server.
const DefaultAddress = "localhost:12600"

const path = "/debug/statsview"
