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

// Package console controls the emulation scheduler from the terminal. The
// terminal is put into cbreak mode so that each key press is acted upon
// immediately:
//
//	r	run
//	h	halt
//	s	single step
//	v	write the key mapping to a graphviz file
//	q	quit
//	?	help
//
// The console runs in its own goroutine and only uses the flag operations
// of the scheduler's Control.
package console
