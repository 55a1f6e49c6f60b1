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
	"runtime"
	"sync/atomic"

	"github.com/jetsetilly/retrogate/curated"
	"github.com/jetsetilly/retrogate/emulation"
	"github.com/jetsetilly/retrogate/glcontext"
	"github.com/jetsetilly/retrogate/govern"
	"github.com/jetsetilly/retrogate/logger"
)

// Sentinel error patterns.
const (
	AlreadyStarted = "scheduler: already started"
	CoreError      = "scheduler: core: %v"
	ContextError   = "scheduler: context: %v"
)

// Listener is notified when the scheduler begins and ends a span of active
// execution. The functions are called on the scheduler's thread.
type Listener interface {
	DebugModeLeft()
	DebugModeEntered()
}

// Context is the part of glcontext.Ownership used by the scheduler.
type Context interface {
	MakeCurrent() error
	MoveContext() (glcontext.Owner, error)
	AttachWorker(glcontext.ThreadID)
	DetachWorker()
}

// Scheduler runs the core on its own thread.
type Scheduler struct {
	core     emulation.Core
	own      Context
	listener Listener
	ctrl     *Control

	activity govern.Activity
	state    atomic.Int32
	started  atomic.Bool

	// closed when the worker has finished. err is not valid until then
	finished chan bool
	err      error
}

// NewScheduler is the preferred method of initialisation for the Scheduler
// type. The listener may be nil.
func NewScheduler(core emulation.Core, own Context, listener Listener) *Scheduler {
	sch := &Scheduler{
		core:     core,
		own:      own,
		listener: listener,
		ctrl:     NewControl(),
		finished: make(chan bool),
	}

	if listener != nil {
		sch.activity.OnActivate = listener.DebugModeLeft
		sch.activity.OnDeactivate = listener.DebugModeEntered
	}

	sch.state.Store(int32(govern.StateIdle))

	return sch
}

// Control returns the Control instance for the scheduler. Flags can be set
// before Start() is called.
func (sch *Scheduler) Control() *Control {
	return sch.ctrl
}

// State returns the current state of the scheduler loop.
func (sch *Scheduler) State() govern.State {
	return govern.State(sch.state.Load())
}

func (sch *Scheduler) setState(state govern.State) {
	sch.state.Store(int32(state))
}

// Start the scheduler. Must be called on the thread that currently owns the
// graphics context (the presentation thread). The context is moved to the
// scheduler's thread before Start() returns.
func (sch *Scheduler) Start() error {
	if sch.started.Swap(true) {
		return curated.Errorf(AlreadyStarted)
	}

	ready := make(chan glcontext.ThreadID)
	proceed := make(chan error)

	go sch.run(ready, proceed)

	sch.own.AttachWorker(<-ready)
	_, err := sch.own.MoveContext()
	if err != nil {
		sch.own.DetachWorker()
		proceed <- err
		<-sch.finished
		return curated.Errorf(ContextError, err)
	}
	close(proceed)

	logger.Log(logger.Allow, "scheduler", "started")

	return nil
}

// Stop requests the scheduler to finish and waits for it to do so. The
// graphics context will have been returned to the presentation thread.
//
// Returns immediately if the scheduler was never started.
func (sch *Scheduler) Stop() error {
	sch.ctrl.RequestStop()
	return sch.Wait()
}

// Wait blocks until the scheduler has finished. Returns the error that
// caused the scheduler to end, if any. Can be called more than once.
//
// Returns immediately if the scheduler was never started.
func (sch *Scheduler) Wait() error {
	if !sch.started.Load() {
		return nil
	}
	<-sch.finished
	return sch.err
}

// Finished returns a channel that is closed when the scheduler has finished.
func (sch *Scheduler) Finished() <-chan bool {
	return sch.finished
}

func (sch *Scheduler) run(ready chan glcontext.ThreadID, proceed chan error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	defer close(sch.finished)
	defer sch.setState(govern.StateStopped)

	ready <- glcontext.CurrentThread()
	if err := <-proceed; err != nil {
		return
	}

	// the one and only point where the scheduler takes the context
	if err := sch.own.MakeCurrent(); err != nil {
		sch.err = curated.Errorf(ContextError, err)
		logger.Logf(logger.Allow, "scheduler", "%v", sch.err)
		sch.core.Shutdown()
		if _, err := sch.own.MoveContext(); err != nil {
			logger.Logf(logger.Allow, "scheduler", "release: %v", err)
		}
		sch.own.DetachWorker()
		return
	}

	sch.err = sch.loop()
	sch.setState(govern.StateStopped)
	if sch.err != nil {
		logger.Logf(logger.Allow, "scheduler", "%v", sch.err)
	}

	sch.core.Shutdown()

	// return context to the presentation thread
	if _, err := sch.own.MoveContext(); err != nil {
		logger.Logf(logger.Allow, "scheduler", "release: %v", err)
		if sch.err == nil {
			sch.err = curated.Errorf(ContextError, err)
		}
	}

	// the worker thread is about to end. the presentation thread must not
	// send the context back to it
	sch.own.DetachWorker()

	logger.Log(logger.Allow, "scheduler", "stopped")
}

func (sch *Scheduler) loop() error {
	for {
		switch sch.ctrl.Mode() {
		case govern.Stopping:
			return nil

		case govern.Running:
			sch.setState(govern.StateRunning)
			sch.activity.Activate()

			if err := sch.core.RunLoop(); err != nil {
				return curated.Errorf(CoreError, err)
			}

			if !sch.ctrl.active() {
				sch.activity.Deactivate(!sch.ctrl.Stopping())
			}

		case govern.SingleStepRequested:
			sch.setState(govern.StateStepping)
			sch.activity.Activate()

			sch.ctrl.takeStep()
			err := sch.core.SingleStep()
			sch.activity.Deactivate(true)
			if err != nil {
				return curated.Errorf(CoreError, err)
			}

			// stepping in a tight loop can starve other threads
			runtime.Gosched()

		case govern.Idle:
			sch.setState(govern.StateIdle)
			sch.ctrl.WaitForWork()
		}
	}
}
