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
	"github.com/jetsetilly/retrogate/logger"
	"github.com/jetsetilly/retrogate/motion"
	"github.com/jetsetilly/retrogate/scheduler"
)

// OnEmulationStarting should be called before the scheduler is started. The
// motion emulator is created and painting by the presentation thread stops.
func (win *RenderWindow) OnEmulationStarting(sch *scheduler.Scheduler) {
	win.motionCrit.Lock()
	if win.motion == nil {
		win.motion = motion.NewMotionEmu(motion.DefaultSensitivity, motion.DefaultUpdatePeriod)
	}
	win.motionCrit.Unlock()

	win.sch = sch
	win.painting = false
	win.updateTitle()

	logger.Log(logger.Allow, "sdl", "emulation starting")
}

// OnEmulationStopping should be called after the scheduler has stopped and
// the context has been returned.
func (win *RenderWindow) OnEmulationStopping() {
	win.closeMotion()

	win.sch = nil
	win.painting = true
	win.dirty = true

	// any signals still queued are of no interest
	win.signalsCrit.Lock()
	win.signals = nil
	win.signalsCrit.Unlock()
	win.debugMode = true
	win.updateTitle()

	logger.Log(logger.Allow, "sdl", "emulation stopping")
}

func (win *RenderWindow) closeMotion() {
	win.motionCrit.Lock()
	defer win.motionCrit.Unlock()
	if win.motion != nil {
		win.motion.Close()
		win.motion = nil
	}
}

// MotionStatus returns the values of the emulated motion sensors. The ok
// value is false if emulation is not running. It is safe to call from the
// emulation thread.
func (win *RenderWindow) MotionStatus() (gravity motion.Vec3, angularRate motion.Vec3, ok bool) {
	win.motionCrit.Lock()
	defer win.motionCrit.Unlock()
	if win.motion == nil {
		return gravity, angularRate, false
	}
	gravity, angularRate = win.motion.Status()
	return gravity, angularRate, true
}
