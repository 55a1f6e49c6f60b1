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

// Package motion emulates the accelerometer and gyroscope of the emulated
// machine using the mouse. Dragging the mouse tilts the machine in the
// direction of the drag, by an amount proportional to the length of the
// drag.
//
// A MotionEmu is only present while the emulation is running. The
// presentation surface creates it when emulation starts and closes it when
// emulation stops or the window is closed.
package motion

import (
	"math"
	"sync"
	"time"

	"github.com/jetsetilly/retrogate/logger"
)

// DefaultUpdatePeriod is the frequency at which the sensor values are
// updated.
const DefaultUpdatePeriod = 100 * time.Millisecond

// DefaultSensitivity is the amount of tilt (in radians) per pixel of mouse
// movement.
const DefaultSensitivity = 0.01

// the maximum tilt in radians
const tiltClamp = math.Pi / 2

// gravity when the machine is lying flat
var restingGravity = Vec3{Y: -1}

// MotionEmu converts mouse drags into sensor values.
type MotionEmu struct {
	crit sync.Mutex

	sensitivity float64

	tilting   bool
	originX   int
	originY   int
	direction Vec3
	angle     float64

	gravity     Vec3
	angularRate Vec3

	quit chan bool
	done chan bool
}

// NewMotionEmu is the preferred method of initialisation for the MotionEmu
// type. The sensor values are updated in a separate goroutine at the
// specified period. Close() must be called when the MotionEmu is no longer
// needed.
func NewMotionEmu(sensitivity float64, period time.Duration) *MotionEmu {
	if sensitivity <= 0 {
		sensitivity = DefaultSensitivity
	}
	if period <= 0 {
		period = DefaultUpdatePeriod
	}

	m := &MotionEmu{
		sensitivity: sensitivity,
		gravity:     restingGravity,
		quit:        make(chan bool),
		done:        make(chan bool),
	}

	go m.run(period)

	logger.Logf(logger.Allow, "motion", "started (sensitivity %.3f)", sensitivity)

	return m
}

// BeginTilt notes the position of the mouse at the start of the drag.
func (m *MotionEmu) BeginTilt(x, y int) {
	m.crit.Lock()
	defer m.crit.Unlock()
	m.tilting = true
	m.originX = x
	m.originY = y
}

// Tilt updates the tilt from the current mouse position. Has no effect
// unless BeginTilt() has been called.
func (m *MotionEmu) Tilt(x, y int) {
	m.crit.Lock()
	defer m.crit.Unlock()

	if !m.tilting {
		return
	}

	m.direction = Vec3{X: float64(x - m.originX), Y: float64(y - m.originY)}
	m.angle = math.Min(m.direction.length()*m.sensitivity, tiltClamp)
}

// EndTilt returns the machine to rest.
func (m *MotionEmu) EndTilt() {
	m.crit.Lock()
	defer m.crit.Unlock()
	m.tilting = false
	m.angle = 0
}

// Status returns the most recent gravity vector and the angular rate in
// degrees per second.
func (m *MotionEmu) Status() (gravity Vec3, angularRate Vec3) {
	m.crit.Lock()
	defer m.crit.Unlock()
	return m.gravity, m.angularRate
}

// Close stops the update goroutine.
func (m *MotionEmu) Close() {
	close(m.quit)
	<-m.done
	logger.Log(logger.Allow, "motion", "stopped")
}

func (m *MotionEmu) run(period time.Duration) {
	defer close(m.done)

	tck := time.NewTicker(period)
	defer tck.Stop()

	q := identity
	seconds := period.Seconds()

	for {
		select {
		case <-m.quit:
			return
		case <-tck.C:
		}

		m.crit.Lock()

		invQ := q.inverse()

		// rotate about the axis perpendicular to the drag direction
		q = makeQuaternion(Vec3{X: -m.direction.Y, Z: m.direction.X}, m.angle)

		dq := q.mul(invQ)
		m.angularRate = dq.xyz.scale(2 / seconds * 180 / math.Pi)
		m.gravity = q.inverse().rotate(restingGravity)

		m.crit.Unlock()
	}
}
