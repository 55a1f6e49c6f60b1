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

package keymap

import "strings"

// Target is a logical input slot of the emulated machine.
type Target int

// List of logical input slots.
const (
	A Target = iota
	B
	X
	Y
	L
	R
	ZL
	ZR
	Start
	Select
	Home
	DUp
	DDown
	DLeft
	DRight
	CUp
	CDown
	CLeft
	CRight
	CircleUp
	CircleDown
	CircleLeft
	CircleRight
	CircleModifier

	// the number of targets. not a valid target
	NumTargets
)

var targetNames = [NumTargets]string{
	"a", "b", "x", "y", "l", "r", "zl", "zr",
	"start", "select", "home",
	"dup", "ddown", "dleft", "dright",
	"cup", "cdown", "cleft", "cright",
	"circleup", "circledown", "circleleft", "circleright",
	"circlemod",
}

func (t Target) String() string {
	if t < 0 || t >= NumTargets {
		return "unknown"
	}
	return targetNames[t]
}

// TargetFromString is the inverse of the Target.String() function. Returns
// false if the string is not the name of a target.
func TargetFromString(s string) (Target, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range targetNames {
		if n == s {
			return Target(i), true
		}
	}
	return NumTargets, false
}
