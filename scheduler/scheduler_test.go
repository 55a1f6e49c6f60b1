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

package scheduler_test

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jetsetilly/retrogate/curated"
	"github.com/jetsetilly/retrogate/glcontext"
	"github.com/jetsetilly/retrogate/govern"
	"github.com/jetsetilly/retrogate/scheduler"
	"github.com/jetsetilly/retrogate/test"
)

const timeout = 2 * time.Second

// mockBackend is a graphics context that does nothing but record the calls
// made to it.
type mockBackend struct {
	crit sync.Mutex
	ops  []string
}

func (ctx *mockBackend) record(op string) {
	ctx.crit.Lock()
	defer ctx.crit.Unlock()
	ctx.ops = append(ctx.ops, fmt.Sprintf("%v:%s", glcontext.CurrentThread(), op))
}

func (ctx *mockBackend) MakeCurrent() error {
	ctx.record("make")
	return nil
}

func (ctx *mockBackend) DoneCurrent() error {
	ctx.record("done")
	return nil
}

func (ctx *mockBackend) Swap() {
	ctx.record("swap")
}

// mockCore counts the calls made to it. every RunLoop() and SingleStep() is
// reported on the corresponding channel.
type mockCore struct {
	own *glcontext.Ownership

	crit     sync.Mutex
	runs     int
	steps    int
	shutdown int
	offside  bool

	// if not nil RunLoop() waits for a value on the gate before returning. the
	// value on the ran channel is sent before waiting
	gate chan bool

	// returned by RunLoop() if not nil
	err error

	ran     chan int
	stepped chan int
}

func newMockCore(own *glcontext.Ownership) *mockCore {
	return &mockCore{
		own:     own,
		ran:     make(chan int, 1000),
		stepped: make(chan int, 1000),
	}
}

// checks that the core is being called on the thread that has the context
func (core *mockCore) check() {
	if core.own.Owner().Current != glcontext.CurrentThread() {
		core.offside = true
	}
}

func (core *mockCore) RunLoop() error {
	core.crit.Lock()
	core.check()
	core.runs++
	n := core.runs
	core.crit.Unlock()
	core.ran <- n

	// a quantum of work
	if core.gate != nil {
		<-core.gate
	} else {
		time.Sleep(time.Millisecond)
	}

	return core.err
}

func (core *mockCore) SingleStep() error {
	core.crit.Lock()
	core.check()
	core.steps++
	n := core.steps
	core.crit.Unlock()
	core.stepped <- n
	return nil
}

func (core *mockCore) Shutdown() {
	core.crit.Lock()
	defer core.crit.Unlock()
	core.shutdown++
}

func (core *mockCore) counts() (int, int, int) {
	core.crit.Lock()
	defer core.crit.Unlock()
	return core.runs, core.steps, core.shutdown
}

// mockListener records the signals it receives in order.
type mockListener struct {
	crit    sync.Mutex
	signals []string
	entered chan bool
}

func newMockListener() *mockListener {
	return &mockListener{
		entered: make(chan bool, 100),
	}
}

func (l *mockListener) DebugModeLeft() {
	l.crit.Lock()
	defer l.crit.Unlock()
	l.signals = append(l.signals, "L")
}

func (l *mockListener) DebugModeEntered() {
	l.crit.Lock()
	l.signals = append(l.signals, "E")
	l.crit.Unlock()
	l.entered <- true
}

func (l *mockListener) String() string {
	l.crit.Lock()
	defer l.crit.Unlock()
	return strings.Join(l.signals, "")
}

func waitFor[T any](t *testing.T, ch chan T, what string) T {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(timeout):
		t.Fatalf("timed out waiting for %s", what)
	}
	var z T
	return z
}

func setup(t *testing.T) (*glcontext.Ownership, *mockBackend, *mockCore, *mockListener, *scheduler.Scheduler) {
	t.Helper()
	backend := &mockBackend{}
	own := glcontext.NewOwnership(backend)
	test.DemandSuccess(t, own.MakeCurrent())
	core := newMockCore(own)
	listener := newMockListener()
	sch := scheduler.NewScheduler(core, own, listener)
	return own, backend, core, listener, sch
}

func TestIdleStep(t *testing.T) {
	own, _, core, listener, sch := setup(t)
	ctrl := sch.Control()

	test.DemandSuccess(t, sch.Start())
	test.ExpectInequality(t, own.Owner().Affinity, glcontext.CurrentThread())

	// the scheduler blocks and does not spin
	time.Sleep(50 * time.Millisecond)
	test.ExpectEquality(t, sch.State(), govern.StateIdle)
	test.ExpectEquality(t, ctrl.Wakeups(), 0)
	runs, steps, _ := core.counts()
	test.ExpectEquality(t, runs, 0)
	test.ExpectEquality(t, steps, 0)
	test.ExpectEquality(t, listener.String(), "")

	ctrl.RequestStep()
	waitFor(t, core.stepped, "step")
	waitFor(t, listener.entered, "entered signal")

	test.ExpectEquality(t, listener.String(), "LE")
	test.ExpectFailure(t, ctrl.StepPending())
	runs, steps, _ = core.counts()
	test.ExpectEquality(t, runs, 0)
	test.ExpectEquality(t, steps, 1)

	// a second step produces a second pair of signals
	ctrl.RequestStep()
	waitFor(t, listener.entered, "entered signal")
	test.ExpectEquality(t, listener.String(), "LELE")

	test.ExpectSuccess(t, sch.Stop())
	test.ExpectFailure(t, core.offside)
}

func TestRunning(t *testing.T) {
	_, _, core, listener, sch := setup(t)
	ctrl := sch.Control()
	ctrl.RequestRun()
	test.ExpectEquality(t, ctrl.Mode(), govern.Running)

	test.DemandSuccess(t, sch.Start())

	for i := 0; i < 10; i++ {
		waitFor(t, core.ran, "run loop")
	}
	test.ExpectEquality(t, listener.String(), "L")
	test.ExpectEquality(t, sch.State(), govern.StateRunning)

	ctrl.SetRunning(false)
	waitFor(t, listener.entered, "entered signal")
	test.ExpectEquality(t, listener.String(), "LE")

	// the core is no longer called
	for len(core.ran) > 0 {
		<-core.ran
	}
	time.Sleep(20 * time.Millisecond)
	test.ExpectEquality(t, len(core.ran), 0)
	test.ExpectEquality(t, sch.State(), govern.StateIdle)

	// run again followed by a step while running. the step does not produce
	// a new left signal because the scheduler is already active
	ctrl.RequestRun()
	waitFor(t, core.ran, "run loop")
	ctrl.RequestStep()
	ctrl.SetRunning(false)
	waitFor(t, core.stepped, "step")
	waitFor(t, listener.entered, "entered signal")
	test.ExpectEquality(t, listener.String(), "LELE")

	test.ExpectSuccess(t, sch.Stop())
	test.ExpectFailure(t, core.offside)
}

func TestStopWhileRunning(t *testing.T) {
	own, backend, core, listener, sch := setup(t)
	ctrl := sch.Control()
	core.gate = make(chan bool)
	ctrl.RequestRun()

	test.DemandSuccess(t, sch.Start())

	// RunLoop() is waiting on the gate. request the stop and let the run loop
	// finish
	waitFor(t, core.ran, "run loop")
	ctrl.RequestStop()
	core.gate <- true

	done := make(chan error)
	go func() {
		done <- sch.Wait()
	}()
	test.ExpectSuccess(t, waitFor(t, done, "scheduler to finish"))

	test.ExpectEquality(t, sch.State(), govern.StateStopped)
	test.ExpectEquality(t, listener.String(), "L")

	runs, _, shutdown := core.counts()
	test.ExpectEquality(t, runs, 1)
	test.ExpectEquality(t, shutdown, 1)

	// context has been returned to the presentation thread
	ui := glcontext.CurrentThread()
	o := own.Owner()
	test.ExpectEquality(t, o.Affinity, ui)
	test.ExpectEquality(t, o.Current, glcontext.NoThread)
	test.ExpectSuccess(t, own.MakeCurrent())

	backend.crit.Lock()
	ops := append([]string{}, backend.ops...)
	backend.crit.Unlock()
	test.DemandEquality(t, len(ops), 5)
	test.ExpectEquality(t, ops[0], fmt.Sprintf("%v:make", ui))
	test.ExpectEquality(t, ops[1], fmt.Sprintf("%v:done", ui))
	test.ExpectEquality(t, ops[4], fmt.Sprintf("%v:make", ui))
	test.ExpectSuccess(t, strings.HasSuffix(ops[2], ":make"))
	test.ExpectSuccess(t, strings.HasSuffix(ops[3], ":done"))

	// stop is one way
	test.ExpectSuccess(t, ctrl.Stopping())
	test.ExpectSuccess(t, sch.Stop())
}

func TestStopAndHaltTogether(t *testing.T) {
	_, _, core, listener, sch := setup(t)
	ctrl := sch.Control()
	core.gate = make(chan bool)
	ctrl.RequestRun()

	test.DemandSuccess(t, sch.Start())

	// the run flag is cleared at the same time as the stop is requested. no
	// entered signal is raised
	waitFor(t, core.ran, "run loop")
	ctrl.SetRunning(false)
	ctrl.RequestStop()
	core.gate <- true

	test.ExpectSuccess(t, sch.Wait())
	test.ExpectEquality(t, listener.String(), "L")
}

func TestCoreError(t *testing.T) {
	own, _, core, _, sch := setup(t)
	core.err = errors.New("test error")
	sch.Control().RequestRun()

	test.DemandSuccess(t, sch.Start())
	err := sch.Wait()
	test.ExpectSuccess(t, curated.Is(err, scheduler.CoreError))

	select {
	case <-sch.Finished():
	default:
		t.Errorf("finished channel is not closed after Wait()")
	}

	// shutdown and context release still happen
	_, _, shutdown := core.counts()
	test.ExpectEquality(t, shutdown, 1)
	test.ExpectEquality(t, own.Owner().Affinity, glcontext.CurrentThread())
}

func TestStartTwice(t *testing.T) {
	_, _, _, _, sch := setup(t)
	test.DemandSuccess(t, sch.Start())
	test.ExpectSuccess(t, curated.Is(sch.Start(), scheduler.AlreadyStarted))
	test.ExpectSuccess(t, sch.Stop())
}

func TestStartFromWrongThread(t *testing.T) {
	own, _, core, _, sch := setup(t)

	// the context is current on this thread but Start() is called from
	// another. the context can not be released
	done := make(chan error)
	go func() {
		done <- sch.Start()
	}()
	err := waitFor(t, done, "start")
	test.ExpectSuccess(t, curated.Is(err, scheduler.ContextError))
	test.ExpectEquality(t, own.Owner().Current, glcontext.CurrentThread())

	_, _, shutdown := core.counts()
	test.ExpectEquality(t, shutdown, 0)
}

func TestControl(t *testing.T) {
	ctrl := scheduler.NewControl()
	test.ExpectEquality(t, ctrl.Mode(), govern.Idle)

	ctrl.RequestStep()
	test.ExpectEquality(t, ctrl.Mode(), govern.SingleStepRequested)
	test.ExpectEquality(t, ctrl.WaitForWork(), govern.SingleStepRequested)

	ctrl.RequestRun()
	test.ExpectEquality(t, ctrl.Mode(), govern.Running)
	test.ExpectSuccess(t, ctrl.IsRunning())

	ctrl.RequestStop()
	test.ExpectEquality(t, ctrl.Mode(), govern.Stopping)
	ctrl.SetRunning(false)
	test.ExpectEquality(t, ctrl.Mode(), govern.Stopping)
}

func TestWaitForWorkWakes(t *testing.T) {
	for _, f := range []func(*scheduler.Control){
		func(c *scheduler.Control) { c.RequestRun() },
		func(c *scheduler.Control) { c.RequestStep() },
		func(c *scheduler.Control) { c.RequestStop() },
	} {
		ctrl := scheduler.NewControl()
		woken := make(chan govern.Mode)
		go func() {
			woken <- ctrl.WaitForWork()
		}()

		select {
		case <-woken:
			t.Fatalf("WaitForWork() returned without work")
		case <-time.After(20 * time.Millisecond):
		}

		f(ctrl)
		test.ExpectInequality(t, waitFor(t, woken, "wake"), govern.Idle)
	}
}

func TestWorkerDetachedAfterStop(t *testing.T) {
	own, _, _, _, sch := setup(t)
	test.DemandSuccess(t, sch.Start())
	test.ExpectInequality(t, own.Owner().Worker, glcontext.NoThread)
	test.ExpectSuccess(t, sch.Stop())

	ui := glcontext.CurrentThread()
	o := own.Owner()
	test.ExpectEquality(t, o.Worker, glcontext.NoThread)
	test.ExpectEquality(t, o.Affinity, ui)

	// with no scheduler the presentation thread keeps the context
	test.DemandSuccess(t, own.MakeCurrent())
	o, err := own.MoveContext()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, o.Affinity, ui)
	test.ExpectSuccess(t, own.MakeCurrent())
}

func TestWorkerDetachedAfterCoreError(t *testing.T) {
	own, _, core, _, sch := setup(t)
	core.err = errors.New("test error")
	sch.Control().RequestRun()

	test.DemandSuccess(t, sch.Start())
	test.ExpectSuccess(t, curated.Is(sch.Wait(), scheduler.CoreError))
	test.ExpectEquality(t, own.Owner().Worker, glcontext.NoThread)
}

func TestStopWithoutStart(t *testing.T) {
	_, _, core, _, sch := setup(t)

	done := make(chan error)
	go func() {
		done <- sch.Stop()
	}()
	test.ExpectSuccess(t, waitFor(t, done, "stop"))
	test.ExpectSuccess(t, sch.Wait())

	_, _, shutdown := core.counts()
	test.ExpectEquality(t, shutdown, 0)
}

// failingContext refuses to make the context current on the worker thread.
type failingContext struct {
	*glcontext.Ownership
}

func (ctx failingContext) MakeCurrent() error {
	return errors.New("make current refused")
}

func TestWorkerDetachedAfterContextFailure(t *testing.T) {
	own, _, core, _, _ := setup(t)
	sch := scheduler.NewScheduler(core, failingContext{own}, nil)

	test.DemandSuccess(t, sch.Start())
	test.ExpectSuccess(t, curated.Is(sch.Wait(), scheduler.ContextError))

	_, _, shutdown := core.counts()
	test.ExpectEquality(t, shutdown, 1)

	o := own.Owner()
	test.ExpectEquality(t, o.Worker, glcontext.NoThread)
	test.ExpectEquality(t, o.Affinity, glcontext.CurrentThread())
	test.ExpectSuccess(t, own.MakeCurrent())
}
