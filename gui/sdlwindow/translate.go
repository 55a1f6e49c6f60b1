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

package sdlwindow

import (
	"github.com/jetsetilly/retrogate/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

// translateEvent converts SDL input events to the userinput event types.
// Returns false if the event is not one handled by the userinput package.
func translateEvent(ev sdl.Event) (userinput.Event, bool) {
	switch ev := ev.(type) {
	case *sdl.KeyboardEvent:
		return userinput.EventKeyboard{
			Key:    int(ev.Keysym.Sym),
			Down:   ev.Type == sdl.KEYDOWN,
			Repeat: ev.Repeat != 0,
		}, true

	case *sdl.ControllerButtonEvent:
		return userinput.EventGamepadButton{
			ID:     int(ev.Which),
			Button: userinput.GamepadButton(ev.Button),
			Down:   ev.State == sdl.PRESSED,
		}, true

	case *sdl.ControllerAxisEvent:
		return userinput.EventGamepadAxis{
			ID:    int(ev.Which),
			Axis:  userinput.GamepadAxis(ev.Axis),
			Value: ev.Value,
		}, true
	}

	return nil, false
}

// displayChange reports whether the event may mean a change in the scale
// factor of the display the window is on. If the window has moved to a
// known display then the index of that display is also returned, otherwise
// the index is -1.
func displayChange(ev sdl.Event) (bool, int) {
	switch ev := ev.(type) {
	case *sdl.WindowEvent:
		if ev.Event == sdl.WINDOWEVENT_DISPLAY_CHANGED {
			return true, int(ev.Data1)
		}
	case *sdl.DisplayEvent:
		return true, -1
	}
	return false, -1
}
