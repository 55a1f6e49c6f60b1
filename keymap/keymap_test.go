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

package keymap_test

import (
	"sync"
	"testing"

	"github.com/jetsetilly/retrogate/keymap"
	"github.com/jetsetilly/retrogate/test"
)

func TestDeviceIDs(t *testing.T) {
	km := keymap.NewKeyMap()
	test.ExpectEquality(t, km.NewDeviceID(), 0)
	test.ExpectEquality(t, km.NewDeviceID(), 1)
	test.ExpectEquality(t, km.NewDeviceID(), 2)
}

func TestMappingReplaces(t *testing.T) {
	km := keymap.NewKeyMap()
	kbd := km.NewDeviceID()
	key := keymap.HostDeviceKey{KeyCode: 'a', DeviceID: kbd}

	km.SetKeyMapping(key, keymap.A)
	km.SetKeyMapping(key, keymap.B)

	m := km.Mapping()
	test.ExpectEquality(t, len(m), 1)
	test.ExpectEquality(t, m[key], keymap.B)

	// the same key code on another device is a different key
	other := keymap.HostDeviceKey{KeyCode: 'a', DeviceID: km.NewDeviceID()}
	km.SetKeyMapping(other, keymap.X)
	test.ExpectEquality(t, len(km.Mapping()), 2)

	km.ClearKeyMapping(kbd)
	m = km.Mapping()
	test.ExpectEquality(t, len(m), 1)
	_, ok := m[key]
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, m[other], keymap.X)

	// out of range targets are not added
	km.SetKeyMapping(key, keymap.NumTargets)
	_, ok = km.Lookup(key)
	test.ExpectFailure(t, ok)
}

func TestPressRelease(t *testing.T) {
	km := keymap.NewKeyMap()
	kbd := km.NewDeviceID()
	a := keymap.HostDeviceKey{KeyCode: 'a', DeviceID: kbd}
	km.SetKeyMapping(a, keymap.A)

	km.PressKey(a)
	test.ExpectSuccess(t, km.State().Pressed(keymap.A))
	test.ExpectFailure(t, km.State().Pressed(keymap.B))

	// unmapped keys are ignored
	km.PressKey(keymap.HostDeviceKey{KeyCode: 'q', DeviceID: kbd})
	test.ExpectEquality(t, km.State().Buttons, uint32(1))

	km.ReleaseKey(a)
	test.ExpectFailure(t, km.State().Pressed(keymap.A))
	test.ExpectEquality(t, km.State().Buttons, uint32(0))
}

func TestCirclePad(t *testing.T) {
	km := keymap.NewKeyMap()
	kbd := km.NewDeviceID()

	up := keymap.HostDeviceKey{KeyCode: 1, DeviceID: kbd}
	right := keymap.HostDeviceKey{KeyCode: 2, DeviceID: kbd}
	mod := keymap.HostDeviceKey{KeyCode: 3, DeviceID: kbd}
	km.SetKeyMapping(up, keymap.CircleUp)
	km.SetKeyMapping(right, keymap.CircleRight)
	km.SetKeyMapping(mod, keymap.CircleModifier)

	km.PressKey(up)
	ps := km.State()
	test.ExpectEquality(t, ps.CircleX, float32(0))
	test.ExpectEquality(t, ps.CircleY, float32(1))

	km.PressKey(right)
	ps = km.State()
	test.ExpectApproximate(t, float64(ps.CircleX), 0.7071, 0.001)
	test.ExpectApproximate(t, float64(ps.CircleY), 0.7071, 0.001)

	km.ReleaseKey(up)
	km.PressKey(mod)
	ps = km.State()
	test.ExpectEquality(t, ps.CircleX, float32(keymap.DefaultCircleModifierScale))
	test.ExpectEquality(t, ps.CircleY, float32(0))
}

func TestTouch(t *testing.T) {
	km := keymap.NewKeyMap()
	km.Touch(10, 20)
	ps := km.State()
	test.ExpectSuccess(t, ps.Touching)
	test.ExpectEquality(t, ps.TouchX, float32(10))
	test.ExpectEquality(t, ps.TouchY, float32(20))
	km.ReleaseTouch()
	test.ExpectFailure(t, km.State().Touching)
}

func TestTargetNames(t *testing.T) {
	for i := keymap.Target(0); i < keymap.NumTargets; i++ {
		n, ok := keymap.TargetFromString(i.String())
		test.ExpectSuccess(t, ok, i)
		test.ExpectEquality(t, n, i)
	}
	_, ok := keymap.TargetFromString("nothing")
	test.ExpectFailure(t, ok)
}

func TestConcurrentAccess(t *testing.T) {
	km := keymap.NewKeyMap()
	kbd := km.NewDeviceID()
	key := keymap.HostDeviceKey{KeyCode: 'a', DeviceID: kbd}
	km.SetKeyMapping(key, keymap.A)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			km.PressKey(key)
			km.ReleaseKey(key)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			_ = km.State()
		}
	}()
	wg.Wait()

	test.ExpectFailure(t, km.State().Pressed(keymap.A))
}
