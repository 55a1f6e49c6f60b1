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

package modalflag

import (
	"fmt"
	"io"
	"strings"
)

// helpWriter collects the output of the flag package so that it can be
// amended with the list of modes.
type helpWriter struct {
	buffer strings.Builder
}

func (hw *helpWriter) Write(p []byte) (int, error) {
	return hw.buffer.Write(p)
}

func (hw *helpWriter) help(output io.Writer, modes []string) {
	if output == nil {
		return
	}

	s := hw.buffer.String()
	hw.buffer.Reset()

	if s == "Usage:\n" && len(modes) == 0 {
		fmt.Fprintln(output, "No help available")
		return
	}

	fmt.Fprint(output, s)

	if len(modes) > 0 {
		if s != "Usage:\n" {
			fmt.Fprintln(output)
		}
		fmt.Fprintf(output, "  available modes: %s\n", strings.Join(modes, ", "))
		fmt.Fprintf(output, "    default: %s\n", modes[0])
	}
}
