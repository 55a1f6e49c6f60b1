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

package glcontext_test

import (
	"testing"

	"github.com/jetsetilly/retrogate/glcontext"
	"github.com/jetsetilly/retrogate/test"
)

type mockGeometry struct {
	w, h  int
	ratio float64
}

func (g *mockGeometry) Size() (int, int) {
	return g.w, g.h
}

func (g *mockGeometry) PixelRatio() float64 {
	return g.ratio
}

type mockLayout struct {
	updates [][2]int
}

func (l *mockLayout) UpdateLayout(width, height int) {
	l.updates = append(l.updates, [2]int{width, height})
}

func TestSurface(t *testing.T) {
	geom := &mockGeometry{w: 400, h: 480, ratio: 1.5}
	lay := &mockLayout{}
	srf := glcontext.NewSurface(geom, lay)

	srf.Resized(400, 480)
	w, h := srf.Size()
	test.ExpectEquality(t, w, 600)
	test.ExpectEquality(t, h, 720)

	// the scale changes without a resize
	geom.ratio = 2.0
	srf.ScaleChanged()
	w, h = srf.Size()
	test.ExpectEquality(t, w, 800)
	test.ExpectEquality(t, h, 960)

	test.DemandEquality(t, len(lay.updates), 2)
	test.ExpectEquality(t, lay.updates[0], [2]int{600, 720})
	test.ExpectEquality(t, lay.updates[1], [2]int{800, 960})

	// a bad ratio is treated as one
	geom.ratio = 0
	srf.Resized(100, 100)
	w, h = srf.Size()
	test.ExpectEquality(t, w, 100)
	test.ExpectEquality(t, h, 100)
}
