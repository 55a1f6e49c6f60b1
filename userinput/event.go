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

// Event represents all the different types of events that can occur. The set
// of events is closed; only the types in this package implement Event.
type Event interface {
	isEvent()
}

// EventKeyboard is a key press or release. Key is the host key code.
type EventKeyboard struct {
	Key    int
	Down   bool
	Repeat bool
}

// GamepadButton identifies a button on a gamepad.
type GamepadButton int

// List of gamepad buttons. Values are the same as the SDL game controller
// button values.
const (
	GamepadButtonA             GamepadButton = 0
	GamepadButtonB             GamepadButton = 1
	GamepadButtonX             GamepadButton = 2
	GamepadButtonY             GamepadButton = 3
	GamepadButtonBack          GamepadButton = 4
	GamepadButtonGuide         GamepadButton = 5
	GamepadButtonStart         GamepadButton = 6
	GamepadButtonLeftStick     GamepadButton = 7
	GamepadButtonRightStick    GamepadButton = 8
	GamepadButtonLeftShoulder  GamepadButton = 9
	GamepadButtonRightShoulder GamepadButton = 10
	GamepadButtonDPadUp        GamepadButton = 11
	GamepadButtonDPadDown      GamepadButton = 12
	GamepadButtonDPadLeft      GamepadButton = 13
	GamepadButtonDPadRight     GamepadButton = 14
)

// EventGamepadButton is a button press or release on the gamepad identified
// by ID.
type EventGamepadButton struct {
	ID     int
	Button GamepadButton
	Down   bool
}

// GamepadAxis identifies an analogue axis on a gamepad.
type GamepadAxis int

// List of gamepad axes. Values are the same as the SDL game controller axis
// values.
const (
	GamepadAxisLeftX        GamepadAxis = 0
	GamepadAxisLeftY        GamepadAxis = 1
	GamepadAxisRightX       GamepadAxis = 2
	GamepadAxisRightY       GamepadAxis = 3
	GamepadAxisTriggerLeft  GamepadAxis = 4
	GamepadAxisTriggerRight GamepadAxis = 5
)

// EventGamepadAxis is the new value of an axis on the gamepad identified by
// ID. The value is in the range -32768 to 32767.
type EventGamepadAxis struct {
	ID    int
	Axis  GamepadAxis
	Value int16
}

func (EventKeyboard) isEvent()      {}
func (EventGamepadButton) isEvent() {}
func (EventGamepadAxis) isEvent()   {}
