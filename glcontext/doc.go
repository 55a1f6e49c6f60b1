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

// Package glcontext tracks ownership of a single graphics context shared by
// the presentation thread and the emulation thread.
//
// A graphics context can be current on at most one thread at a time. The
// underlying windowing library keeps that fact as hidden global state; the
// Ownership type makes it observable. It records which thread currently has
// the context current and which thread is permitted to make it current next
// (the affinity). Moving the context from one thread to another is a strict
// sequence:
//
//	releasing thread: DoneCurrent() then TransferTo(target)
//	acquiring thread: MakeCurrent()
//
// Nothing may be drawn into the context between the DoneCurrent() and the
// MakeCurrent() of the new owner. The Draw() function enforces this by
// refusing to run unless the caller is the current thread.
//
// MoveContext() is the single routine used both when starting the emulation
// thread (presentation to worker) and when stopping it (worker to
// presentation). The target is decided by who is calling and whether a
// worker has been attached.
//
// Thread identities are goroutine identities. Goroutines that make a context
// current must have called runtime.LockOSThread().
package glcontext
