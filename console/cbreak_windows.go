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

//go:build windows

package console

import (
	"os"
)

// CBreakMode is not supported on windows. Keys are acted upon when the
// return key is pressed.
func CBreakMode(f *os.File) (func(), error) {
	return func() {}, nil
}
