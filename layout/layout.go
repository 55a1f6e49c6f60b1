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

// Package layout decides where the two screens of the emulated machine are
// drawn in the framebuffer. It is told the physical size of the framebuffer
// whenever the window is resized or the display scale changes.
package layout

import (
	"fmt"
	"sync"
)

// Native sizes of the emulated screens.
const (
	TopWidth     = 400
	TopHeight    = 240
	BottomWidth  = 320
	BottomHeight = 240
)

// Rect is a rectangle in framebuffer pixels. Right and Bottom are exclusive.
type Rect struct {
	Left, Top, Right, Bottom int
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", r.Left, r.Top, r.Right, r.Bottom)
}

// Width of rectangle.
func (r Rect) Width() int {
	return r.Right - r.Left
}

// Height of rectangle.
func (r Rect) Height() int {
	return r.Bottom - r.Top
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.Left && x < r.Right && y >= r.Top && y < r.Bottom
}

// FrameLayout is the position of each screen in a framebuffer of the given
// size.
type FrameLayout struct {
	Width  int
	Height int
	Top    Rect
	Bottom Rect
}

// DefaultFrameLayout places the top screen above the bottom screen. The
// screens are scaled to fill as much of the framebuffer as possible without
// changing the aspect ratio and are centred.
func DefaultFrameLayout(width, height int) FrameLayout {
	fl := FrameLayout{
		Width:  width,
		Height: height,
	}

	if width <= 0 || height <= 0 {
		return fl
	}

	const totalHeight = TopHeight + BottomHeight

	// scale so that the stacked screens fit the smaller dimension
	scale := float64(width) / TopWidth
	if float64(height)/float64(width) < float64(totalHeight)/TopWidth {
		scale = float64(height) / totalHeight
	}

	topW := int(TopWidth * scale)
	topH := int(TopHeight * scale)
	botW := int(BottomWidth * scale)
	botH := int(BottomHeight * scale)

	y := (height - topH - botH) / 2

	fl.Top = Rect{
		Left:   (width - topW) / 2,
		Top:    y,
		Right:  (width-topW)/2 + topW,
		Bottom: y + topH,
	}
	fl.Bottom = Rect{
		Left:   (width - botW) / 2,
		Top:    y + topH,
		Right:  (width-botW)/2 + botW,
		Bottom: y + topH + botH,
	}

	return fl
}

// Holder keeps the current layout. It implements the glcontext.LayoutUpdater
// interface and is safe to use from any thread.
type Holder struct {
	crit   sync.RWMutex
	layout FrameLayout
}

// UpdateLayout recalculates the layout for the new framebuffer size.
func (h *Holder) UpdateLayout(width, height int) {
	fl := DefaultFrameLayout(width, height)

	h.crit.Lock()
	h.layout = fl
	h.crit.Unlock()
}

// Layout returns the current layout.
func (h *Holder) Layout() FrameLayout {
	h.crit.RLock()
	defer h.crit.RUnlock()
	return h.layout
}

// MapTouch converts a framebuffer position to a position on the bottom
// screen, in the bottom screen's native pixels. Returns false if the
// position is not on the bottom screen.
func (h *Holder) MapTouch(x, y int) (float32, float32, bool) {
	h.crit.RLock()
	defer h.crit.RUnlock()

	b := h.layout.Bottom
	if !b.Contains(x, y) {
		return 0, 0, false
	}

	tx := float32(x-b.Left) * BottomWidth / float32(b.Width())
	ty := float32(y-b.Top) * BottomHeight / float32(b.Height())

	return tx, ty, true
}
