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

//go:build !windows

package console

import (
	"os"
	"syscall"

	"github.com/jetsetilly/retrogate/curated"
	"github.com/pkg/term/termios"
)

// CBreakMode puts the terminal into cbreak mode. The returned function
// restores the terminal to the mode it was in before.
func CBreakMode(f *os.File) (func(), error) {
	var canAttr syscall.Termios
	var cbreakAttr syscall.Termios

	err := termios.Tcgetattr(f.Fd(), &canAttr)
	if err != nil {
		return func() {}, curated.Errorf("console: %v", err)
	}

	cbreakAttr = canAttr
	termios.Cfmakecbreak(&cbreakAttr)

	err = termios.Tcsetattr(f.Fd(), termios.TCIFLUSH, &cbreakAttr)
	if err != nil {
		return func() {}, curated.Errorf("console: %v", err)
	}

	return func() {
		_ = termios.Tcsetattr(f.Fd(), termios.TCIFLUSH, &canAttr)
	}, nil
}
