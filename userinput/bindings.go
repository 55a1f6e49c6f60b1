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
	"fmt"

	"github.com/jetsetilly/retrogate/keymap"
	"github.com/jetsetilly/retrogate/prefs"
)

// Bindings is the host key code bound to each logical input slot.
type Bindings [keymap.NumTargets]int

// DefaultBindings returns the default key for every slot.
func DefaultBindings() Bindings {
	return Bindings{
		keymap.A:              'a',
		keymap.B:              's',
		keymap.X:              'z',
		keymap.Y:              'x',
		keymap.L:              'q',
		keymap.R:              'w',
		keymap.ZL:             '1',
		keymap.ZR:             '2',
		keymap.Start:          'm',
		keymap.Select:         'n',
		keymap.Home:           'b',
		keymap.DUp:            't',
		keymap.DDown:          'g',
		keymap.DLeft:          'f',
		keymap.DRight:         'h',
		keymap.CUp:            'i',
		keymap.CDown:          'k',
		keymap.CLeft:          'j',
		keymap.CRight:         'l',
		keymap.CircleUp:       KeyUp,
		keymap.CircleDown:     KeyDown,
		keymap.CircleLeft:     KeyLeft,
		keymap.CircleRight:    KeyRight,
		keymap.CircleModifier: 'd',
	}
}

// Preferences stores the bindings on disk. Each slot is saved under the key
// "input.<slot>".
type Preferences struct {
	dsk *prefs.Disk

	Keys [keymap.NumTargets]prefs.Int
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. The default bindings are set before any values are
// loaded from disk.
func NewPreferences(dsk *prefs.Disk) (*Preferences, error) {
	p := &Preferences{dsk: dsk}
	p.SetDefaults()

	for t := keymap.Target(0); t < keymap.NumTargets; t++ {
		err := dsk.Add(fmt.Sprintf("input.%s", t), &p.Keys[t])
		if err != nil {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all slots to the default bindings.
func (p *Preferences) SetDefaults() {
	def := DefaultBindings()
	for t := range p.Keys {
		_ = p.Keys[t].Set(def[t])
	}
}

// Bindings returns the current bindings.
func (p *Preferences) Bindings() Bindings {
	var b Bindings
	for t := range p.Keys {
		b[t] = p.Keys[t].Get().(int)
	}
	return b
}

// Load bindings from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save bindings to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
