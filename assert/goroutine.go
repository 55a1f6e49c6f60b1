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

// Package assert contains helpers for checking which goroutine code is running
// on. Goroutines that own an OS resource (the windowing system, a graphics
// context) lock themselves to an OS thread with runtime.LockOSThread() and so
// the goroutine identity is also the identity of the thread.
package assert

import (
	"bytes"
	"runtime"
	"strconv"
	"sync/atomic"
)

// GetGoRoutineID returns an identity for a goroutine. It returns a result that
// is (a) different between goroutines and (b) consistent for a given
// goroutine. The value zero is never returned for a running goroutine.
func GetGoRoutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	b = b[:bytes.IndexByte(b, ' ')]
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

var mainThread atomic.Uint64

// RegisterMainThread notes the calling goroutine as the main (presentation)
// thread. It also locks the goroutine to the current OS thread and never
// unlocks it.
func RegisterMainThread() {
	runtime.LockOSThread()
	mainThread.Store(GetGoRoutineID())
}

// IsMainThread returns true if called from the goroutine that called
// RegisterMainThread().
func IsMainThread() bool {
	return mainThread.Load() == GetGoRoutineID()
}
