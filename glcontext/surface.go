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

package glcontext

import "sync"

// LayoutUpdater is implemented by the framebuffer layout collaborator. The
// dimensions are in physical pixels.
type LayoutUpdater interface {
	UpdateLayout(width, height int)
}

// Geometry is implemented by the window that the context draws into.
type Geometry interface {
	// size of the client area in logical units
	Size() (int, int)

	// ratio of physical pixels to logical units. may be fractional
	PixelRatio() float64
}

// Surface re-derives the physical size of the rendering surface whenever
// the logical size or the display scale changes, and pushes the result to
// the layout.
type Surface struct {
	crit   sync.Mutex
	geom   Geometry
	layout LayoutUpdater

	width  int
	height int
}

// NewSurface is the preferred method of initialisation for the Surface type.
func NewSurface(geom Geometry, layout LayoutUpdater) *Surface {
	return &Surface{
		geom:   geom,
		layout: layout,
	}
}

// Resized should be called when the logical size of the surface changes.
func (srf *Surface) Resized(width, height int) {
	srf.crit.Lock()
	defer srf.crit.Unlock()

	ratio := srf.geom.PixelRatio()
	if ratio <= 0 {
		ratio = 1.0
	}

	srf.width = int(float64(width) * ratio)
	srf.height = int(float64(height) * ratio)
	srf.layout.UpdateLayout(srf.width, srf.height)
}

// ScaleChanged should be called when the scale of the display showing the
// surface changes. The layout is updated even if the logical size has not
// changed.
func (srf *Surface) ScaleChanged() {
	w, h := srf.geom.Size()
	srf.Resized(w, h)
}

// Size returns the physical size last sent to the layout.
func (srf *Surface) Size() (int, int) {
	srf.crit.Lock()
	defer srf.crit.Unlock()
	return srf.width, srf.height
}
