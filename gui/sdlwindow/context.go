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
	"github.com/veandco/go-sdl2/sdl"
)

// sdlContext is the backend for glcontext.Ownership. SDL make-current and
// swap act on the calling thread.
type sdlContext struct {
	window *sdl.Window
	ctx    sdl.GLContext
}

func (c *sdlContext) MakeCurrent() error {
	return c.window.GLMakeCurrent(c.ctx)
}

func (c *sdlContext) DoneCurrent() error {
	return c.window.GLMakeCurrent(nil)
}

func (c *sdlContext) Swap() {
	c.window.GLSwap()
}

// sdlGeometry implements the glcontext.Geometry interface.
type sdlGeometry struct {
	window *sdl.Window
}

func (g sdlGeometry) Size() (int, int) {
	w, h := g.window.GetSize()
	return int(w), int(h)
}

// the drawable size of a high-DPI window is larger than the logical size
func (g sdlGeometry) PixelRatio() float64 {
	w, _ := g.window.GetSize()
	if w == 0 {
		return 1.0
	}
	dw, _ := g.window.GLGetDrawableSize()
	return float64(dw) / float64(w)
}
