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

// Package emulation defines the interfaces through which the front-end
// drives the emulated machine. The semantics of the machine itself are not
// defined here.
package emulation

// Core is the emulated machine as seen by the scheduler. All functions are
// called only from the scheduler's thread, which has the graphics context
// current.
type Core interface {
	// execute until the next natural yield point, usually the end of a
	// frame. should not block for an unbounded length of time
	RunLoop() error

	// execute exactly one unit of work
	SingleStep() error

	// release all resources. called once and only after the final RunLoop()
	// or SingleStep()
	Shutdown()
}

// Presenter is implemented by the presentation surface and gives the core
// access to the framebuffer. Swap() is called from the scheduler's thread.
type Presenter interface {
	Swap() error
	Draw(func()) error
}
