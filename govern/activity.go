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

package govern

// Activity is a two state automaton (inactive and active) with an action on
// each transition. The action for the transition into the active state is
// the "debug mode left" signal and the action for the transition out of it is
// the "debug mode entered" signal.
//
// The zero value is inactive with no actions. Activity is not safe for use
// from more than one goroutine; it belongs to the scheduler's own thread.
type Activity struct {
	active bool

	// called on the inactive to active transition
	OnActivate func()

	// called on the active to inactive transition when notification has been
	// asked for
	OnDeactivate func()
}

// Active returns true if the automaton is in the active state.
func (a *Activity) Active() bool {
	return a.active
}

// Activate moves the automaton to the active state. The OnActivate action is
// performed only if the automaton was inactive.
func (a *Activity) Activate() {
	if a.active {
		return
	}
	a.active = true
	if a.OnActivate != nil {
		a.OnActivate()
	}
}

// Deactivate moves the automaton to the inactive state. The OnDeactivate
// action is performed only if the automaton was active and notify is true.
func (a *Activity) Deactivate(notify bool) {
	if !a.active {
		return
	}
	a.active = false
	if notify && a.OnDeactivate != nil {
		a.OnDeactivate()
	}
}
