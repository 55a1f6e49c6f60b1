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

package userinput_test

import (
	"fmt"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/jetsetilly/retrogate/keymap"
	"github.com/jetsetilly/retrogate/prefs"
	"github.com/jetsetilly/retrogate/test"
	"github.com/jetsetilly/retrogate/userinput"
)

func newNormalizer() (*keymap.KeyMap, *userinput.Normalizer) {
	km := keymap.NewKeyMap()
	n := userinput.NewNormalizer(km)
	n.ReloadSetKeymaps(userinput.DefaultBindings())
	return km, n
}

func TestAxisScenario(t *testing.T) {
	km, n := newNormalizer()

	test.ExpectSuccess(t, n.HandleUserInput(userinput.EventGamepadAxis{Axis: userinput.GamepadAxisLeftX, Value: -10000}))
	ps := km.State()
	test.ExpectSuccess(t, ps.Pressed(keymap.CircleLeft))
	test.ExpectFailure(t, ps.Pressed(keymap.CircleRight))

	test.ExpectSuccess(t, n.HandleUserInput(userinput.EventGamepadAxis{Axis: userinput.GamepadAxisLeftX, Value: 0}))
	ps = km.State()
	test.ExpectFailure(t, ps.Pressed(keymap.CircleLeft))
	test.ExpectFailure(t, ps.Pressed(keymap.CircleRight))
}

func TestAxisDeadzone(t *testing.T) {
	type expectation struct {
		value int16
		neg   bool
		pos   bool
	}

	expectations := []expectation{
		{value: -32768, neg: true, pos: false},
		{value: -userinput.StickDeadzone, neg: true, pos: false},
		{value: -userinput.StickDeadzone + 1, neg: false, pos: false},
		{value: 0, neg: false, pos: false},
		{value: userinput.StickDeadzone - 1, neg: false, pos: false},
		{value: userinput.StickDeadzone, neg: false, pos: true},
		{value: 32767, neg: false, pos: true},
	}

	axes := []struct {
		axis userinput.GamepadAxis
		neg  keymap.Target
		pos  keymap.Target
	}{
		{axis: userinput.GamepadAxisLeftX, neg: keymap.CircleLeft, pos: keymap.CircleRight},
		{axis: userinput.GamepadAxisLeftY, neg: keymap.CircleUp, pos: keymap.CircleDown},
	}

	for _, a := range axes {
		km, n := newNormalizer()
		for _, e := range expectations {
			n.HandleUserInput(userinput.EventGamepadAxis{Axis: a.axis, Value: e.value})
			ps := km.State()
			test.ExpectEquality(t, ps.Pressed(a.neg), e.neg, a.axis, e.value)
			test.ExpectEquality(t, ps.Pressed(a.pos), e.pos, a.axis, e.value)
		}
	}
}

func TestAxisIndependence(t *testing.T) {
	km, n := newNormalizer()

	n.HandleUserInput(userinput.EventGamepadAxis{Axis: userinput.GamepadAxisLeftY, Value: 20000})
	n.HandleUserInput(userinput.EventGamepadAxis{Axis: userinput.GamepadAxisLeftX, Value: 20000})
	ps := km.State()
	test.ExpectSuccess(t, ps.Pressed(keymap.CircleDown))
	test.ExpectSuccess(t, ps.Pressed(keymap.CircleRight))

	// a neutral value on one axis does not affect the other axis
	n.HandleUserInput(userinput.EventGamepadAxis{Axis: userinput.GamepadAxisLeftX, Value: 0})
	ps = km.State()
	test.ExpectSuccess(t, ps.Pressed(keymap.CircleDown))
	test.ExpectFailure(t, ps.Pressed(keymap.CircleRight))

	// untracked axes are ignored
	test.ExpectFailure(t, n.HandleUserInput(userinput.EventGamepadAxis{Axis: userinput.GamepadAxisRightY, Value: 0}))
	test.ExpectSuccess(t, km.State().Pressed(keymap.CircleDown))
}

func TestButtons(t *testing.T) {
	km, n := newNormalizer()

	for _, b := range userinput.ControllerButtons() {
		test.ExpectSuccess(t, n.HandleUserInput(userinput.EventGamepadButton{Button: b.Button, Down: true}))
	}

	ps := km.State()
	for _, tgt := range []keymap.Target{keymap.A, keymap.B, keymap.X, keymap.Y, keymap.Start, keymap.Select,
		keymap.DUp, keymap.DDown, keymap.DLeft, keymap.DRight} {
		test.ExpectSuccess(t, ps.Pressed(tgt), tgt)
	}

	// buttons are aliased onto the keyboard. releasing the key releases the
	// button
	n.HandleUserInput(userinput.EventKeyboard{Key: 'a', Down: false})
	test.ExpectFailure(t, km.State().Pressed(keymap.A))

	// unmapped buttons are ignored
	test.ExpectFailure(t, n.HandleUserInput(userinput.EventGamepadButton{Button: userinput.GamepadButtonGuide, Down: true}))
	test.ExpectFailure(t, km.State().Pressed(keymap.Home))
}

func TestControllerButtonTable(t *testing.T) {
	tbl := userinput.ControllerButtons()
	test.DemandEquality(t, len(tbl), 10)
	test.ExpectEquality(t, tbl[0], userinput.ControllerButton{Button: userinput.GamepadButtonA, Key: 'a'})

	// the table returned is a copy
	tbl[0].Key = 'q'
	test.ExpectEquality(t, userinput.ControllerButtons()[0].Key, int('a'))
}

// mockHandle records every call made to it.
type mockHandle struct {
	calls []string
}

func (h *mockHandle) NewDeviceID() int {
	return 7
}

func (h *mockHandle) SetKeyMapping(key keymap.HostDeviceKey, target keymap.Target) {
}

func (h *mockHandle) ClearKeyMapping(deviceID int) {
	h.calls = append(h.calls, fmt.Sprintf("clear %d", deviceID))
}

func (h *mockHandle) PressKey(key keymap.HostDeviceKey) {
	h.calls = append(h.calls, fmt.Sprintf("press %d %d", key.KeyCode, key.DeviceID))
}

func (h *mockHandle) ReleaseKey(key keymap.HostDeviceKey) {
	h.calls = append(h.calls, fmt.Sprintf("release %d %d", key.KeyCode, key.DeviceID))
}

func TestKeyboardVerbatim(t *testing.T) {
	h := &mockHandle{}
	n := userinput.NewNormalizer(h)
	test.ExpectEquality(t, n.KeyboardID(), 7)

	// repeats are forwarded
	n.HandleUserInput(userinput.EventKeyboard{Key: 'q', Down: true})
	n.HandleUserInput(userinput.EventKeyboard{Key: 'q', Down: true, Repeat: true})
	n.HandleUserInput(userinput.EventKeyboard{Key: 'q', Down: false})

	expected := []string{
		"press 113 7",
		"press 113 7",
		"release 113 7",
	}
	test.ExpectSuccess(t, reflect.DeepEqual(h.calls, expected))
}

func TestReloadIdempotent(t *testing.T) {
	km, n := newNormalizer()
	a := km.Mapping()

	n.ReloadSetKeymaps(userinput.DefaultBindings())
	b := km.Mapping()
	test.ExpectSuccess(t, reflect.DeepEqual(a, b))

	// a changed binding replaces the old entry
	bnd := userinput.DefaultBindings()
	bnd[keymap.A] = 'p'
	n.ReloadSetKeymaps(bnd)
	c := km.Mapping()
	test.ExpectEquality(t, len(c), len(a))

	_, ok := c[keymap.HostDeviceKey{KeyCode: 'a', DeviceID: n.KeyboardID()}]
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, c[keymap.HostDeviceKey{KeyCode: 'p', DeviceID: n.KeyboardID()}], keymap.A)

	// virtual keys are always bound to the circle pad
	test.ExpectEquality(t, c[keymap.HostDeviceKey{KeyCode: userinput.VirtualLeft, DeviceID: n.KeyboardID()}], keymap.CircleLeft)
	test.ExpectEquality(t, c[keymap.HostDeviceKey{KeyCode: userinput.VirtualDown, DeviceID: n.KeyboardID()}], keymap.CircleDown)
}

func TestPreferences(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	p, err := userinput.NewPreferences(dsk)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Bindings(), userinput.DefaultBindings())

	test.ExpectSuccess(t, p.Keys[keymap.Home].Set('v'))
	test.ExpectSuccess(t, p.Save())

	// a new instance loads the changed binding
	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	q, err := userinput.NewPreferences(dsk)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, q.Load())
	test.ExpectEquality(t, q.Bindings()[keymap.Home], int('v'))
	test.ExpectEquality(t, q.Bindings()[keymap.A], int('a'))

	q.SetDefaults()
	test.ExpectEquality(t, q.Bindings(), userinput.DefaultBindings())
}
