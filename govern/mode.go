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

package govern

// Mode indicates what the presentation thread has asked of the scheduler. It
// is derived from the run, step and stop flags and Stopping always takes
// precedence.
type Mode int

// List of defined modes.
const (
	Idle Mode = iota
	SingleStepRequested
	Running
	Stopping
)

func (m Mode) String() string {
	switch m {
	case Idle:
		return "Idle"
	case SingleStepRequested:
		return "SingleStepRequested"
	case Running:
		return "Running"
	case Stopping:
		return "Stopping"
	}
	return ""
}

// State indicates what the scheduler loop is currently doing.
type State int

// List of possible scheduler states. StateIdle is the initial state and
// StateStopped is terminal.
const (
	StateIdle State = iota
	StateRunning
	StateStepping
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateRunning:
		return "Running"
	case StateStepping:
		return "Stepping"
	case StateStopped:
		return "Stopped"
	}
	return ""
}

// Signal is raised by the scheduler or the presentation surface. Signals are
// edge events and never describe a level.
type Signal int

// List of signals.
const (
	// the scheduler is about to begin a span of active execution
	DebugModeLeft Signal = iota

	// the scheduler has finished a span of active execution
	DebugModeEntered

	// the presentation surface has been closed
	Closed
)

func (s Signal) String() string {
	switch s {
	case DebugModeLeft:
		return "DebugModeLeft"
	case DebugModeEntered:
		return "DebugModeEntered"
	case Closed:
		return "Closed"
	}
	return ""
}
