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

// Package keymap holds the mapping from host input to the logical inputs of
// the emulated machine, and the state of those logical inputs.
//
// A host input is identified by a HostDeviceKey: the raw key code and the
// identity of the device that produced it. Device identities are allocated
// with NewDeviceID(). A HostDeviceKey maps to at most one Target and setting
// a new mapping for a key replaces the existing one.
//
// The KeyMap is written by the presentation thread (key presses and
// rebinding) and read by the emulated core on the emulation thread. It has
// its own lock which is not shared with the scheduler.
package keymap

import (
	"math"
	"sync"

	"github.com/jetsetilly/retrogate/logger"
)

// HostDeviceKey identifies a key on a host input device.
type HostDeviceKey struct {
	KeyCode  int
	DeviceID int
}

// DefaultCircleModifierScale is the amount the circle pad is scaled by when
// the CircleModifier target is held.
const DefaultCircleModifierScale = 0.5

// KeyMap maps host keys to logical targets and records which targets are
// currently pressed.
type KeyMap struct {
	crit sync.RWMutex

	nextDeviceID int
	mapping      map[HostDeviceKey]Target

	// pressed state of every target
	pressed [NumTargets]bool

	modifierScale float32

	touching bool
	touchX   float32
	touchY   float32
}

// NewKeyMap is the preferred method of initialisation for the KeyMap type.
func NewKeyMap() *KeyMap {
	return &KeyMap{
		mapping:       make(map[HostDeviceKey]Target),
		modifierScale: DefaultCircleModifierScale,
	}
}

// NewDeviceID allocates a new device identity. The first identity allocated
// is zero.
func (km *KeyMap) NewDeviceID() int {
	km.crit.Lock()
	defer km.crit.Unlock()
	id := km.nextDeviceID
	km.nextDeviceID++
	return id
}

// SetKeyMapping maps the key to the target, replacing any existing mapping
// for that key.
func (km *KeyMap) SetKeyMapping(key HostDeviceKey, target Target) {
	if target < 0 || target >= NumTargets {
		logger.Logf(logger.Allow, "keymap", "ignoring mapping of %v to unknown target %d", key, target)
		return
	}

	km.crit.Lock()
	defer km.crit.Unlock()
	km.mapping[key] = target
}

// ClearKeyMapping removes all mappings for the device.
func (km *KeyMap) ClearKeyMapping(deviceID int) {
	km.crit.Lock()
	defer km.crit.Unlock()
	for k := range km.mapping {
		if k.DeviceID == deviceID {
			delete(km.mapping, k)
		}
	}
}

// PressKey sets the target mapped to the key as pressed. Keys that are not
// mapped are ignored.
func (km *KeyMap) PressKey(key HostDeviceKey) {
	km.setKey(key, true)
}

// ReleaseKey sets the target mapped to the key as released. Keys that are
// not mapped are ignored.
func (km *KeyMap) ReleaseKey(key HostDeviceKey) {
	km.setKey(key, false)
}

func (km *KeyMap) setKey(key HostDeviceKey, pressed bool) {
	km.crit.Lock()
	defer km.crit.Unlock()
	if t, ok := km.mapping[key]; ok {
		km.pressed[t] = pressed
	}
}

// Mapping returns a copy of the current mapping.
func (km *KeyMap) Mapping() map[HostDeviceKey]Target {
	km.crit.RLock()
	defer km.crit.RUnlock()
	m := make(map[HostDeviceKey]Target, len(km.mapping))
	for k, v := range km.mapping {
		m[k] = v
	}
	return m
}

// Lookup returns the target mapped to the key.
func (km *KeyMap) Lookup(key HostDeviceKey) (Target, bool) {
	km.crit.RLock()
	defer km.crit.RUnlock()
	t, ok := km.mapping[key]
	return t, ok
}

// SetCircleModifierScale changes the amount the circle pad is scaled by when
// the modifier is held.
func (km *KeyMap) SetCircleModifierScale(scale float32) {
	km.crit.Lock()
	defer km.crit.Unlock()
	km.modifierScale = scale
}

// Touch sets the touch point. Coordinates are in the emulated screen's pixel
// space.
func (km *KeyMap) Touch(x, y float32) {
	km.crit.Lock()
	defer km.crit.Unlock()
	km.touching = true
	km.touchX = x
	km.touchY = y
}

// ReleaseTouch clears the touch point.
func (km *KeyMap) ReleaseTouch() {
	km.crit.Lock()
	defer km.crit.Unlock()
	km.touching = false
}

// PadState is a snapshot of the logical input state.
type PadState struct {
	// bit n is set if Target(n) is pressed. circle pad targets are included
	Buttons uint32

	// position of the circle pad in the range -1.0 to 1.0. positive Y is up
	CircleX float32
	CircleY float32

	Touching bool
	TouchX   float32
	TouchY   float32
}

// Pressed returns true if the target was pressed when the snapshot was made.
func (ps PadState) Pressed(t Target) bool {
	return ps.Buttons&(1<<uint(t)) != 0
}

// State returns a snapshot of the logical input state. Safe to call from the
// emulation thread.
func (km *KeyMap) State() PadState {
	km.crit.RLock()
	defer km.crit.RUnlock()

	var ps PadState
	for t, p := range km.pressed {
		if p {
			ps.Buttons |= 1 << uint(t)
		}
	}

	var x, y float32
	if km.pressed[CircleRight] {
		x++
	}
	if km.pressed[CircleLeft] {
		x--
	}
	if km.pressed[CircleUp] {
		y++
	}
	if km.pressed[CircleDown] {
		y--
	}

	// diagonals are kept inside the unit circle
	if x != 0 && y != 0 {
		x *= math.Sqrt2 / 2
		y *= math.Sqrt2 / 2
	}

	if km.pressed[CircleModifier] {
		x *= km.modifierScale
		y *= km.modifierScale
	}

	ps.CircleX = x
	ps.CircleY = y

	ps.Touching = km.touching
	ps.TouchX = km.touchX
	ps.TouchY = km.touchY

	return ps
}
