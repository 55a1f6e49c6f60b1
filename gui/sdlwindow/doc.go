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

// Package sdlwindow is the presentation surface. It owns the SDL window and
// the OpenGL context, polls SDL for input and window events, and hands the
// context to the emulation scheduler while emulation is running.
//
// All exported functions other than Swap(), Draw(), MotionStatus(),
// DebugModeLeft() and DebugModeEntered() must be called on the thread that
// called NewRenderWindow(). That thread should be locked to its OS thread
// for the lifetime of the program.
//
// Scheduler signals arrive on the emulation thread. They are queued and
// acted upon the next time PollEvents() is called.
package sdlwindow
