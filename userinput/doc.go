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

// Package userinput handles input from real hardware that the user of the
// emulator is using to control the emulated machine.
//
// It can be thought of as a translation layer between the GUI implementation
// and the keymap package. Three sources of input are normalised into key
// presses and releases on a single keyboard device:
//
//   - keyboard events are forwarded as they are, including repeats
//   - gamepad buttons are looked up in the ControllerButtons() table and
//     forwarded as the equivalent keyboard key
//   - the left thumbstick's horizontal and vertical axes are each treated as
//     a pair of virtual keys, one for each direction
//
// The GUI implementation in use during development was SDL and so there will
// be a bias towards that system. Key codes are SDL key codes and gamepad
// button and axis values are the same as the SDL game controller values.
package userinput
