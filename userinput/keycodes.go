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

package userinput

// Host key codes used by the default bindings and the controller button
// table. Printable keys use their lower case character value. The arrow
// keys have the same value as the equivalent SDL key code.
const (
	KeyRight = 1<<30 | 79
	KeyLeft  = 1<<30 | 80
	KeyDown  = 1<<30 | 81
	KeyUp    = 1<<30 | 82
)

// Virtual key codes for the directions of the left thumbstick. These do not
// collide with any host key code and are always bound to the circle pad.
const (
	virtualKeyBase = 0x01000000

	VirtualLeft  = virtualKeyBase | 0x12
	VirtualUp    = virtualKeyBase | 0x13
	VirtualRight = virtualKeyBase | 0x14
	VirtualDown  = virtualKeyBase | 0x15
)
