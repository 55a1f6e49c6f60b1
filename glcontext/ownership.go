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

import (
	"fmt"
	"sync"

	"github.com/jetsetilly/retrogate/assert"
	"github.com/jetsetilly/retrogate/curated"
)

// ThreadID identifies the thread (goroutine locked to an OS thread) that is
// interacting with the context.
type ThreadID uint64

// NoThread is the ThreadID used when the context is not current anywhere or
// when no worker is attached.
const NoThread ThreadID = 0

func (id ThreadID) String() string {
	if id == NoThread {
		return "none"
	}
	return fmt.Sprintf("%d", uint64(id))
}

// CurrentThread returns the ThreadID of the caller.
func CurrentThread() ThreadID {
	return ThreadID(assert.GetGoRoutineID())
}

// Context is the backend graphics context. The functions act on the calling
// thread, in the same way as the underlying windowing library.
type Context interface {
	MakeCurrent() error
	DoneCurrent() error
	Swap()
}

// Sentinel error patterns.
const (
	WrongThread      = "glcontext: %s: called from thread %v but context belongs to thread %v"
	CurrentElsewhere = "glcontext: %s: context is current on thread %v"
	NotCurrent       = "glcontext: %s: context is not current on thread %v"
	BackendError     = "glcontext: %s: %v"
)

// Owner is a snapshot of the ownership state.
type Owner struct {
	// the presentation thread. this is the thread that created the Ownership
	UI ThreadID

	// the emulation thread. NoThread if no worker is attached
	Worker ThreadID

	// the thread that has the context current. NoThread if none
	Current ThreadID

	// the thread permitted to call MakeCurrent()
	Affinity ThreadID
}

func (o Owner) String() string {
	return fmt.Sprintf("ui=%v worker=%v current=%v affinity=%v", o.UI, o.Worker, o.Current, o.Affinity)
}

// Ownership wraps a Context and enforces the rules of the handoff protocol.
// It is safe to use from any thread.
type Ownership struct {
	crit sync.Mutex
	ctx  Context

	ui       ThreadID
	worker   ThreadID
	current  ThreadID
	affinity ThreadID
}

// NewOwnership is the preferred method of initialisation for the Ownership
// type. It must be called on the presentation thread, which becomes the
// initial affinity for the context. The context is assumed to not be current
// anywhere.
func NewOwnership(ctx Context) *Ownership {
	id := CurrentThread()
	return &Ownership{
		ctx:      ctx,
		ui:       id,
		affinity: id,
	}
}

func (own *Ownership) snapshot() Owner {
	return Owner{
		UI:       own.ui,
		Worker:   own.worker,
		Current:  own.current,
		Affinity: own.affinity,
	}
}

// Owner returns a snapshot of the current ownership state.
func (own *Ownership) Owner() Owner {
	own.crit.Lock()
	defer own.crit.Unlock()
	return own.snapshot()
}

// AttachWorker notes the thread of the emulation worker. It does not move
// the context.
func (own *Ownership) AttachWorker(id ThreadID) {
	own.crit.Lock()
	defer own.crit.Unlock()
	own.worker = id
}

// DetachWorker forgets the emulation worker. Should be called once the
// context has been moved back to the presentation thread.
func (own *Ownership) DetachWorker() {
	own.crit.Lock()
	defer own.crit.Unlock()
	own.worker = NoThread
}

func (own *Ownership) makeCurrent(op string, id ThreadID) error {
	if own.affinity != id {
		return curated.Errorf(WrongThread, op, id, own.affinity)
	}
	if own.current != NoThread && own.current != id {
		return curated.Errorf(CurrentElsewhere, op, own.current)
	}

	// a redundant make-current on the thread that already has the context is
	// passed to the backend anyway
	if err := own.ctx.MakeCurrent(); err != nil {
		return curated.Errorf(BackendError, op, err)
	}
	own.current = id

	return nil
}

// MakeCurrent makes the context current on the calling thread. Only the
// thread with affinity may do this and only if the context is not current on
// another thread.
func (own *Ownership) MakeCurrent() error {
	own.crit.Lock()
	defer own.crit.Unlock()
	return own.makeCurrent("make current", CurrentThread())
}

func (own *Ownership) doneCurrent(op string, id ThreadID) error {
	if own.current == NoThread {
		return nil
	}
	if own.current != id {
		return curated.Errorf(WrongThread, op, id, own.current)
	}
	if err := own.ctx.DoneCurrent(); err != nil {
		return curated.Errorf(BackendError, op, err)
	}
	own.current = NoThread
	return nil
}

// DoneCurrent releases the context from the calling thread. It is not an
// error to call DoneCurrent() when the context is not current anywhere.
func (own *Ownership) DoneCurrent() error {
	own.crit.Lock()
	defer own.crit.Unlock()
	return own.doneCurrent("done current", CurrentThread())
}

// Swap presents the back buffer. The context is made current on the calling
// thread immediately before the swap, even if it is already current.
func (own *Ownership) Swap() error {
	own.crit.Lock()
	defer own.crit.Unlock()

	if err := own.makeCurrent("swap", CurrentThread()); err != nil {
		return err
	}
	own.ctx.Swap()

	return nil
}

func (own *Ownership) transferTo(op string, target ThreadID) (Owner, error) {
	if own.current != NoThread {
		return own.snapshot(), curated.Errorf(CurrentElsewhere, op, own.current)
	}
	own.affinity = target
	return own.snapshot(), nil
}

// TransferTo hands the context to the target thread. The context must not
// be current anywhere; the releasing thread should have called
// DoneCurrent() first. The target must then call MakeCurrent().
func (own *Ownership) TransferTo(target ThreadID) (Owner, error) {
	own.crit.Lock()
	defer own.crit.Unlock()
	return own.transferTo("transfer", target)
}

// MoveContext releases the context from the calling thread and transfers it.
// If the caller is the presentation thread and a worker is attached then the
// target is the worker. In every other case the target is the presentation
// thread.
//
// Calling MoveContext() twice from the same thread has no further effect.
func (own *Ownership) MoveContext() (Owner, error) {
	own.crit.Lock()
	defer own.crit.Unlock()

	id := CurrentThread()

	if err := own.doneCurrent("move context", id); err != nil {
		return own.snapshot(), err
	}

	target := own.ui
	if id == own.ui && own.worker != NoThread {
		target = own.worker
	}

	return own.transferTo("move context", target)
}

// Draw runs the function only if the calling thread has the context current.
// No drawing may take place on a thread that has released the context.
func (own *Ownership) Draw(f func()) error {
	own.crit.Lock()
	id := CurrentThread()
	if own.current != id {
		own.crit.Unlock()
		return curated.Errorf(NotCurrent, "draw", id)
	}
	own.crit.Unlock()

	// the context can only be released by the thread that has it current so
	// it is safe to call f() outside of the critical section
	f()

	return nil
}
