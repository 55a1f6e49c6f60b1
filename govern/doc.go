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

// Package govern defines the types that describe the current condition of the
// emulation scheduler: the Mode as requested by the presentation thread, the
// State of the scheduler's loop and the Signals raised when the scheduler
// moves between active and inactive execution.
//
// The Activity type is the automaton that decides when those signals are
// raised. It is kept separate from the scheduler so that the edge-triggered
// nature of the signals can be tested in isolation.
package govern
