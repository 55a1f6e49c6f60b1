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
	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/jetsetilly/retrogate/govern"
	"github.com/jetsetilly/retrogate/logger"
	"github.com/jetsetilly/retrogate/version"
	"github.com/veandco/go-sdl2/sdl"
)

// time in milliseconds that PollEvents() will wait for the first event
const pollTimeout = 10

// PollEvents services queued scheduler signals and all pending SDL events.
// It waits briefly if there are no events.
func (win *RenderWindow) PollEvents() {
	win.serviceSignals()

	for ev := sdl.WaitEventTimeout(pollTimeout); ev != nil; ev = sdl.PollEvent() {
		win.handleEvent(ev)
	}

	win.paint()
}

func (win *RenderWindow) handleEvent(ev sdl.Event) {
	if inp, ok := translateEvent(ev); ok {
		win.input.HandleUserInput(inp)
		return
	}

	if ok, idx := displayChange(ev); ok {
		win.scaleChanged(idx)
		return
	}

	switch ev := ev.(type) {
	case *sdl.QuitEvent:
		win.Close()

	case *sdl.WindowEvent:
		switch ev.Event {
		case sdl.WINDOWEVENT_SIZE_CHANGED:
			win.surface.Resized(int(ev.Data1), int(ev.Data2))
			win.dirty = true
		case sdl.WINDOWEVENT_MOVED:
			win.checkDisplay()
		case sdl.WINDOWEVENT_EXPOSED:
			win.dirty = true
		case sdl.WINDOWEVENT_CLOSE:
			win.Close()
		}

	case *sdl.MouseButtonEvent:
		x, y := int(ev.X), int(ev.Y)
		switch ev.Button {
		case sdl.BUTTON_LEFT:
			if ev.State == sdl.PRESSED {
				win.touching = win.touch(x, y)
			} else if win.touching {
				win.touching = false
				win.km.ReleaseTouch()
			}
		case sdl.BUTTON_RIGHT:
			win.motionCrit.Lock()
			if win.motion != nil {
				if ev.State == sdl.PRESSED {
					win.motion.BeginTilt(x, y)
				} else {
					win.motion.EndTilt()
				}
			}
			win.motionCrit.Unlock()
		}

	case *sdl.MouseMotionEvent:
		x, y := int(ev.X), int(ev.Y)
		if win.touching {
			// dragging off the bottom screen releases the touch
			win.touching = win.touch(x, y)
			if !win.touching {
				win.km.ReleaseTouch()
			}
		}
		win.motionCrit.Lock()
		if win.motion != nil {
			win.motion.Tilt(x, y)
		}
		win.motionCrit.Unlock()
	}
}

// touch converts the mouse position to the physical framebuffer and then to
// the bottom screen. returns false if the position is not on the bottom
// screen
func (win *RenderWindow) touch(x, y int) bool {
	ratio := sdlGeometry{window: win.window}.PixelRatio()
	tx, ty, ok := win.layout.MapTouch(int(float64(x)*ratio), int(float64(y)*ratio))
	if !ok {
		return false
	}
	win.km.Touch(tx, ty)
	return true
}

// the scale factor of the display may have changed. idx is the display the
// window is now on or -1 if it is unknown
func (win *RenderWindow) scaleChanged(idx int) {
	if idx >= 0 && idx != win.displayIndex {
		win.displayIndex = idx
		logger.Logf(logger.Allow, "sdl", "moved to display %d", idx)
	}
	win.surface.ScaleChanged()
	win.dirty = true
}

// moving the window to another display may change the pixel ratio. not all
// platforms send a display changed event
func (win *RenderWindow) checkDisplay() {
	idx, err := win.window.GetDisplayIndex()
	if err != nil {
		return
	}
	if idx != win.displayIndex {
		win.scaleChanged(idx)
	}
}

// paint the window while the presentation thread has the context
func (win *RenderWindow) paint() {
	if !win.painting || !win.dirty {
		return
	}
	win.dirty = false

	err := win.own.MakeCurrent()
	if err != nil {
		logger.Logf(logger.Allow, "sdl", "paint: %v", err)
		return
	}

	err = win.own.Draw(func() {
		if !win.glReady {
			if err := gl.Init(); err != nil {
				logger.Logf(logger.Allow, "sdl", "paint: %v", err)
				return
			}
			win.glReady = true
		}
		w, h := win.surface.Size()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0, 0, 0, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)
	})
	if err != nil {
		logger.Logf(logger.Allow, "sdl", "paint: %v", err)
		return
	}

	win.SwapBuffers()
}

// queue a scheduler signal for the presentation thread
func (win *RenderWindow) pushSignal(sig govern.Signal) {
	win.signalsCrit.Lock()
	defer win.signalsCrit.Unlock()
	win.signals = append(win.signals, sig)
}

func (win *RenderWindow) serviceSignals() {
	win.signalsCrit.Lock()
	signals := win.signals
	win.signals = nil
	win.signalsCrit.Unlock()

	for _, sig := range signals {
		switch sig {
		case govern.DebugModeLeft:
			win.debugMode = false
		case govern.DebugModeEntered:
			win.debugMode = true
		}
		win.updateTitle()
	}
}

func (win *RenderWindow) updateTitle() {
	if win.debugMode && win.sch != nil {
		win.window.SetTitle(version.Title() + " [halted]")
	} else {
		win.window.SetTitle(version.Title())
	}
}

// DebugModeLeft implements the scheduler.Listener interface. It is called on
// the emulation thread.
func (win *RenderWindow) DebugModeLeft() {
	win.pushSignal(govern.DebugModeLeft)
}

// DebugModeEntered implements the scheduler.Listener interface. It is called
// on the emulation thread.
func (win *RenderWindow) DebugModeEntered() {
	win.pushSignal(govern.DebugModeEntered)
}

// DebugMode returns true if the most recently serviced signal was
// DebugModeEntered. It is true before the first signal.
func (win *RenderWindow) DebugMode() bool {
	return win.debugMode
}
