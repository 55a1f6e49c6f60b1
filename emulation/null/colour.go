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

package null

import (
	"math/bits"

	"github.com/jetsetilly/retrogate/keymap"
	"github.com/jetsetilly/retrogate/motion"
)

// topColour returns the colour of the top screen for the pad state. The red
// component pulses with the frame count and brightens with the number of
// buttons pressed. The green and blue components follow the circle pad, or
// the tilt of the machine if the circle pad is centred.
func topColour(ps keymap.PadState, frame int64, tilt motion.Vec3) (float32, float32, float32) {
	pulse := float32(frame%60) / 240
	r := clamp(pulse + float32(bits.OnesCount32(ps.Buttons))*0.1)

	x, y := ps.CircleX, ps.CircleY
	if x == 0 && y == 0 {
		x = float32(tilt.X)
		y = float32(tilt.Z)
	}

	g := clamp(0.5 + x*0.5)
	b := clamp(0.5 + y*0.5)

	return r, g, b
}

func clamp(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
