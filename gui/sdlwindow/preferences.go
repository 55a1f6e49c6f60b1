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
	"github.com/jetsetilly/retrogate/curated"
	"github.com/jetsetilly/retrogate/paths"
	"github.com/jetsetilly/retrogate/prefs"
	"github.com/jetsetilly/retrogate/userinput"
)

// default size of the client area. enough for both screens at native
// resolution
const (
	defaultMinWidth  = 400
	defaultMinHeight = 480
)

// Preferences for the window.
type Preferences struct {
	dsk *prefs.Disk

	// the swap interval is set when the context is created. changing the
	// value has no effect until the next time the window is opened
	VSync prefs.Bool

	MinWidth  prefs.Int
	MinHeight prefs.Int

	// input bindings share the same file
	Input *userinput.Preferences
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the default preferences file. A
// missing file is not an error.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, curated.Errorf("sdlwindow: preferences: %v", err)
	}

	dsk, err := prefs.NewDisk(pth)
	if err != nil {
		return nil, curated.Errorf("sdlwindow: preferences: %v", err)
	}

	return newPreferences(dsk)
}

func newPreferences(dsk *prefs.Disk) (*Preferences, error) {
	p := &Preferences{dsk: dsk}
	p.SetDefaults()

	err := dsk.Add("video.vsync", &p.VSync)
	if err != nil {
		return nil, curated.Errorf("sdlwindow: preferences: %v", err)
	}
	err = dsk.Add("video.minwidth", &p.MinWidth)
	if err != nil {
		return nil, curated.Errorf("sdlwindow: preferences: %v", err)
	}
	err = dsk.Add("video.minheight", &p.MinHeight)
	if err != nil {
		return nil, curated.Errorf("sdlwindow: preferences: %v", err)
	}

	p.Input, err = userinput.NewPreferences(dsk)
	if err != nil {
		return nil, curated.Errorf("sdlwindow: preferences: %v", err)
	}

	err = p.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to the default values.
func (p *Preferences) SetDefaults() {
	_ = p.VSync.Set(true)
	_ = p.MinWidth.Set(defaultMinWidth)
	_ = p.MinHeight.Set(defaultMinHeight)
	if p.Input != nil {
		p.Input.SetDefaults()
	}
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	err := p.dsk.Load()
	if err != nil && !curated.Is(err, prefs.NoPrefsFile) {
		return curated.Errorf("sdlwindow: preferences: %v", err)
	}
	return nil
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	err := p.dsk.Save()
	if err != nil {
		return curated.Errorf("sdlwindow: preferences: %v", err)
	}
	return nil
}
