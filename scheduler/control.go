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

package scheduler

import (
	"sync"

	"github.com/jetsetilly/retrogate/govern"
)

// Control is the state shared by the presentation thread and the scheduler.
// It is safe for use from any thread. Stop is one-way and once requested is
// never cleared.
type Control struct {
	crit sync.Mutex
	cond *sync.Cond

	running bool
	step    bool
	stop    bool

	// number of times WaitForWork() has woken from the condition variable
	wakeups int
}

// NewControl is the preferred method of initialisation for the Control type.
func NewControl() *Control {
	ctrl := &Control{}
	ctrl.cond = sync.NewCond(&ctrl.crit)
	return ctrl
}

// SetRunning sets or clears the run flag.
func (ctrl *Control) SetRunning(running bool) {
	ctrl.crit.Lock()
	defer ctrl.crit.Unlock()
	ctrl.running = running
	ctrl.cond.Broadcast()
}

// RequestRun is the same as SetRunning(true).
func (ctrl *Control) RequestRun() {
	ctrl.SetRunning(true)
}

// RequestStep asks the scheduler to execute a single step of the core.
// Requesting a step while one is already pending has no further effect.
func (ctrl *Control) RequestStep() {
	ctrl.crit.Lock()
	defer ctrl.crit.Unlock()
	ctrl.step = true
	ctrl.cond.Broadcast()
}

// RequestStop asks the scheduler to finish.
func (ctrl *Control) RequestStop() {
	ctrl.crit.Lock()
	defer ctrl.crit.Unlock()
	ctrl.stop = true
	ctrl.cond.Broadcast()
}

// IsRunning returns the state of the run flag.
func (ctrl *Control) IsRunning() bool {
	ctrl.crit.Lock()
	defer ctrl.crit.Unlock()
	return ctrl.running
}

// StepPending returns true if a step has been requested but not yet taken.
func (ctrl *Control) StepPending() bool {
	ctrl.crit.Lock()
	defer ctrl.crit.Unlock()
	return ctrl.step
}

// Stopping returns true if a stop has been requested.
func (ctrl *Control) Stopping() bool {
	ctrl.crit.Lock()
	defer ctrl.crit.Unlock()
	return ctrl.stop
}

func (ctrl *Control) mode() govern.Mode {
	switch {
	case ctrl.stop:
		return govern.Stopping
	case ctrl.running:
		return govern.Running
	case ctrl.step:
		return govern.SingleStepRequested
	}
	return govern.Idle
}

// Mode returns the mode derived from the flags. Stopping takes precedence
// over Running, which takes precedence over SingleStepRequested.
func (ctrl *Control) Mode() govern.Mode {
	ctrl.crit.Lock()
	defer ctrl.crit.Unlock()
	return ctrl.mode()
}

// WaitForWork blocks until the run flag is set, a step is requested or a
// stop is requested. The mode at the time of waking is returned. Spurious
// wakeups are tolerated because the condition is checked again before
// returning.
func (ctrl *Control) WaitForWork() govern.Mode {
	ctrl.crit.Lock()
	defer ctrl.crit.Unlock()
	for !(ctrl.running || ctrl.step || ctrl.stop) {
		ctrl.cond.Wait()
		ctrl.wakeups++
	}
	return ctrl.mode()
}

// takeStep clears the step flag.
func (ctrl *Control) takeStep() {
	ctrl.crit.Lock()
	defer ctrl.crit.Unlock()
	ctrl.step = false
}

// active returns true if the core should be considered to be actively
// executing.
func (ctrl *Control) active() bool {
	ctrl.crit.Lock()
	defer ctrl.crit.Unlock()
	return ctrl.running || ctrl.step
}
