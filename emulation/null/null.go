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

// Package null implements a demonstration emulation.Core. It has no emulated
// machine; each frame it clears the two screen areas of the framebuffer with
// colours derived from the logical input state. It is useful for checking
// the scheduler, the context handoff and the input pipeline.
package null

import (
	"sync/atomic"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/jetsetilly/retrogate/curated"
	"github.com/jetsetilly/retrogate/emulation"
	"github.com/jetsetilly/retrogate/keymap"
	"github.com/jetsetilly/retrogate/layout"
	"github.com/jetsetilly/retrogate/limiter"
	"github.com/jetsetilly/retrogate/logger"
	"github.com/jetsetilly/retrogate/motion"
)

// FrameRate of the null core when running.
const FrameRate = 60

// Sensors is implemented by the presentation surface when it has a motion
// emulator. The ok value is false if there is no motion emulator.
type Sensors interface {
	MotionStatus() (gravity motion.Vec3, angularRate motion.Vec3, ok bool)
}

// Core is the null emulation.
type Core struct {
	input   *keymap.KeyMap
	present emulation.Presenter
	layout  *layout.Holder
	sensors Sensors

	lim *limiter.FpsLimiter

	// gl functions are loaded on first use, on the scheduler's thread
	glReady bool

	frames atomic.Int64
}

// NewCore is the preferred method of initialisation for the Core type. The
// sensors argument can be nil.
func NewCore(input *keymap.KeyMap, present emulation.Presenter, lay *layout.Holder, sensors Sensors) (*Core, error) {
	lim, err := limiter.NewFPSLimiter(FrameRate)
	if err != nil {
		return nil, curated.Errorf("null: %v", err)
	}

	return &Core{
		input:   input,
		present: present,
		layout:  lay,
		sensors: sensors,
		lim:     lim,
	}, nil
}

// Frames returns the number of frames that have been drawn.
func (c *Core) Frames() int64 {
	return c.frames.Load()
}

// RunLoop implements the emulation.Core interface. One frame is drawn each
// call, paced to FrameRate.
func (c *Core) RunLoop() error {
	c.lim.Wait()
	return c.frame()
}

// SingleStep implements the emulation.Core interface. One frame is drawn
// without waiting.
func (c *Core) SingleStep() error {
	return c.frame()
}

// Shutdown implements the emulation.Core interface.
func (c *Core) Shutdown() {
	c.lim.Close()
	logger.Logf(logger.Allow, "null", "shutdown after %d frames", c.Frames())
}

func (c *Core) frame() error {
	if !c.glReady {
		if err := gl.Init(); err != nil {
			return curated.Errorf("null: %v", err)
		}
		c.glReady = true
		logger.Logf(logger.Allow, "null", "GL version %s", gl.GoStr(gl.GetString(gl.VERSION)))
	}

	ps := c.input.State()
	fl := c.layout.Layout()
	n := c.frames.Add(1)

	var tilt motion.Vec3
	if c.sensors != nil {
		if g, _, ok := c.sensors.MotionStatus(); ok {
			tilt = g
		}
	}

	err := c.present.Draw(func() {
		gl.Viewport(0, 0, int32(fl.Width), int32(fl.Height))
		gl.ClearColor(0.0, 0.0, 0.0, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		gl.Enable(gl.SCISSOR_TEST)
		defer gl.Disable(gl.SCISSOR_TEST)

		// top screen shows the digital buttons and the circle pad
		r, g, b := topColour(ps, n, tilt)
		scissor(fl.Top, fl.Height)
		gl.ClearColor(r, g, b, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		// bottom screen lights up when touched
		scissor(fl.Bottom, fl.Height)
		if ps.Touching {
			gl.ClearColor(ps.TouchX/layout.BottomWidth, ps.TouchY/layout.BottomHeight, 1.0, 1.0)
		} else {
			gl.ClearColor(0.2, 0.2, 0.2, 1.0)
		}
		gl.Clear(gl.COLOR_BUFFER_BIT)
	})
	if err != nil {
		return curated.Errorf("null: %v", err)
	}

	return c.present.Swap()
}

// gl has its origin in the bottom left corner
func scissor(r layout.Rect, height int) {
	gl.Scissor(int32(r.Left), int32(height-r.Bottom), int32(r.Width()), int32(r.Height()))
}
