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

// Package scheduler runs the emulated core on a dedicated thread.
//
// The presentation thread controls the scheduler through the Control type,
// which holds the run, step and stop flags. The scheduler loop reads the
// flags at the top of every iteration and does one of four things:
//
//	Stopping:            leave the loop
//	Running:             call the core's RunLoop()
//	SingleStepRequested: clear the step flag and call SingleStep()
//	Idle:                block until there is work
//
// The Idle state blocks on a condition variable and never polls.
//
// Before a span of active execution begins the listener's DebugModeLeft() is
// called. When a span ends DebugModeEntered() is called, unless the span
// ended because a stop was requested. Both are called on the scheduler's
// thread. Listeners that need to update the user interface should forward
// the signal to the presentation thread.
//
// The graphics context is moved to the scheduler's thread by Start() and is
// returned to the presentation thread when the loop ends, after the core has
// been shut down.
package scheduler
