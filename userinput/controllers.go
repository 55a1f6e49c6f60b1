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

import (
	"github.com/jetsetilly/retrogate/keymap"
)

// StickDeadzone is the magnitude of the thumbstick's dead zone. An axis value
// with a magnitude equal to or greater than this value is treated as a key
// press in that direction.
const StickDeadzone = 8000

// ControllerButton pairs a gamepad button with the host key code it is
// translated to.
type ControllerButton struct {
	Button GamepadButton
	Key    int
}

// the order of the table is the order of lookup. the first match wins
var controllerButtons = [...]ControllerButton{
	{Button: GamepadButtonA, Key: 'a'},
	{Button: GamepadButtonB, Key: 's'},
	{Button: GamepadButtonX, Key: 'z'},
	{Button: GamepadButtonY, Key: 'x'},
	{Button: GamepadButtonStart, Key: 'm'},
	{Button: GamepadButtonBack, Key: 'n'},
	{Button: GamepadButtonDPadDown, Key: 'g'},
	{Button: GamepadButtonDPadLeft, Key: 'f'},
	{Button: GamepadButtonDPadRight, Key: 'h'},
	{Button: GamepadButtonDPadUp, Key: 't'},
}

// ControllerButtons returns a copy of the controller button table.
func ControllerButtons() []ControllerButton {
	return append([]ControllerButton{}, controllerButtons[:]...)
}

// lookupButton returns the key code for the first entry in the controller
// button table that matches.
func lookupButton(button GamepadButton) (int, bool) {
	for _, b := range controllerButtons {
		if b.Button == button {
			return b.Key, true
		}
	}
	return 0, false
}

// HandleInput is implemented by the keymap. The Normalizer is its only
// writer.
type HandleInput interface {
	NewDeviceID() int
	SetKeyMapping(key keymap.HostDeviceKey, target keymap.Target)
	ClearKeyMapping(deviceID int)
	PressKey(key keymap.HostDeviceKey)
	ReleaseKey(key keymap.HostDeviceKey)
}

// Normalizer translates events into key presses and releases on the keyboard
// device.
type Normalizer struct {
	handle     HandleInput
	keyboardID int
}

// NewNormalizer is the preferred method of initialisation for the Normalizer
// type. A new device identity is allocated for the keyboard.
func NewNormalizer(handle HandleInput) *Normalizer {
	return &Normalizer{
		handle:     handle,
		keyboardID: handle.NewDeviceID(),
	}
}

// KeyboardID returns the device identity used for all input.
func (n *Normalizer) KeyboardID() int {
	return n.keyboardID
}

func (n *Normalizer) key(code int, down bool) {
	k := keymap.HostDeviceKey{KeyCode: code, DeviceID: n.keyboardID}
	if down {
		n.handle.PressKey(k)
	} else {
		n.handle.ReleaseKey(k)
	}
}

func (n *Normalizer) keyboard(ev EventKeyboard) bool {
	n.key(ev.Key, ev.Down)
	return true
}

func (n *Normalizer) gamepadButton(ev EventGamepadButton) bool {
	code, ok := lookupButton(ev.Button)
	if !ok {
		return false
	}
	n.key(code, ev.Down)
	return true
}

// each direction of an axis is decided only by the value in the event. a
// value inside the dead zone releases both directions
func (n *Normalizer) gamepadAxis(ev EventGamepadAxis) bool {
	switch ev.Axis {
	case GamepadAxisLeftX:
		n.key(VirtualLeft, ev.Value <= -StickDeadzone)
		n.key(VirtualRight, ev.Value >= StickDeadzone)
	case GamepadAxisLeftY:
		n.key(VirtualUp, ev.Value <= -StickDeadzone)
		n.key(VirtualDown, ev.Value >= StickDeadzone)
	default:
		return false
	}
	return true
}

// HandleUserInput deciphers the Event and forwards the input to the keymap.
// Returns false if the event was ignored. Ignored events are not errors.
func (n *Normalizer) HandleUserInput(ev Event) bool {
	switch ev := ev.(type) {
	case EventKeyboard:
		return n.keyboard(ev)
	case EventGamepadButton:
		return n.gamepadButton(ev)
	case EventGamepadAxis:
		return n.gamepadAxis(ev)
	}
	return false
}

// ReloadSetKeymaps clears all mappings for the keyboard device and rebuilds
// them from the bindings. The virtual thumbstick keys are always bound to
// the circle pad.
func (n *Normalizer) ReloadSetKeymaps(bindings Bindings) {
	n.handle.ClearKeyMapping(n.keyboardID)

	for t := keymap.Target(0); t < keymap.NumTargets; t++ {
		n.handle.SetKeyMapping(keymap.HostDeviceKey{KeyCode: bindings[t], DeviceID: n.keyboardID}, t)
	}

	n.handle.SetKeyMapping(keymap.HostDeviceKey{KeyCode: VirtualLeft, DeviceID: n.keyboardID}, keymap.CircleLeft)
	n.handle.SetKeyMapping(keymap.HostDeviceKey{KeyCode: VirtualRight, DeviceID: n.keyboardID}, keymap.CircleRight)
	n.handle.SetKeyMapping(keymap.HostDeviceKey{KeyCode: VirtualUp, DeviceID: n.keyboardID}, keymap.CircleUp)
	n.handle.SetKeyMapping(keymap.HostDeviceKey{KeyCode: VirtualDown, DeviceID: n.keyboardID}, keymap.CircleDown)
}
