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

package console

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/retrogate/curated"
	"github.com/jetsetilly/retrogate/keymap"
	"github.com/jetsetilly/retrogate/logger"
	"github.com/jetsetilly/retrogate/paths"
)

// Control is the part of scheduler.Control used by the console.
type Control interface {
	SetRunning(running bool)
	RequestStep()
	IsRunning() bool
}

// Console reads key presses and forwards them to the scheduler.
type Console struct {
	in   *bufio.Reader
	out  io.Writer
	ctrl Control
	km   *keymap.KeyMap

	// called when the quit key is pressed
	quit func()
}

// NewConsole is the preferred method of initialisation for the Console type.
func NewConsole(in io.Reader, out io.Writer, ctrl Control, km *keymap.KeyMap, quit func()) *Console {
	return &Console{
		in:   bufio.NewReader(in),
		out:  out,
		ctrl: ctrl,
		km:   km,
		quit: quit,
	}
}

const help = "r: run  h: halt  s: step  v: dump keymap  q: quit\n"

// Run reads keys until the quit key is pressed or the input is exhausted.
// It should be run in its own goroutine.
func (con *Console) Run() {
	con.print(help)

	for {
		b, err := con.in.ReadByte()
		if err != nil {
			if err != io.EOF {
				logger.Logf(logger.Allow, "console", "%v", err)
			}
			return
		}

		if !con.handle(b) {
			return
		}
	}
}

// returns false if the console should stop reading
func (con *Console) handle(b byte) bool {
	switch b {
	case 'r', 'R':
		con.ctrl.SetRunning(true)
		con.print("running\n")
	case 'h', 'H':
		if con.ctrl.IsRunning() {
			con.ctrl.SetRunning(false)
			con.print("halted\n")
		}
	case 's', 'S':
		if con.ctrl.IsRunning() {
			con.print("cannot step while running\n")
		} else {
			con.ctrl.RequestStep()
		}
	case 'v', 'V':
		fn, err := con.dumpKeyMap()
		if err != nil {
			con.print(fmt.Sprintf("%v\n", err))
		} else {
			con.print(fmt.Sprintf("keymap written to %s\n", fn))
		}
	case 'q', 'Q':
		if con.quit != nil {
			con.quit()
		}
		return false
	case '?':
		con.print(help)
	}
	return true
}

func (con *Console) print(s string) {
	_, _ = io.WriteString(con.out, s)
}

// DumpKeyMap writes a graphviz representation of the current key mapping.
func (con *Console) DumpKeyMap(w io.Writer) {
	m := con.km.Mapping()
	memviz.Map(w, &m)
}

func (con *Console) dumpKeyMap() (string, error) {
	fn, err := paths.ResourcePath("", fmt.Sprintf("%s.dot", paths.UniqueFilename("keymap", "")))
	if err != nil {
		return "", curated.Errorf("console: %v", err)
	}

	f, err := os.Create(fn)
	if err != nil {
		return "", curated.Errorf("console: %v", err)
	}
	defer f.Close()

	con.DumpKeyMap(f)
	logger.Logf(logger.Allow, "console", "keymap written to %s", fn)

	return fn, nil
}
