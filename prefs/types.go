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

package prefs

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/jetsetilly/retrogate/curated"
)

// CannotConvert is returned by Set() when the value is of the wrong type.
const CannotConvert = "prefs: cannot convert %T to %s"

// Value represents the actual Go preference value.
type Value interface{}

// types supported by the prefs system must implement the pref interface.
type pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
	Reset() error
}

// hooks are called before and after a value is stored, even if the value
// has not changed. An error from the pre hook prevents the value from being
// stored.
type hooks struct {
	pre  func(value Value) error
	post func(value Value) error
}

// SetHookPre sets the function to be called just before the value is
// updated.
func (h *hooks) SetHookPre(f func(value Value) error) {
	h.pre = f
}

// SetHookPost sets the function to be called just after the value is
// updated.
func (h *hooks) SetHookPost(f func(value Value) error) {
	h.post = f
}

func (h *hooks) store(v *atomic.Value, nv Value) error {
	if h.pre != nil {
		if err := h.pre(nv); err != nil {
			return err
		}
	}
	v.Store(nv)
	if h.post != nil {
		return h.post(nv)
	}
	return nil
}

// Bool implements a boolean type in the prefs system.
type Bool struct {
	hooks
	value atomic.Value
}

func (p *Bool) String() string {
	return strconv.FormatBool(p.Get().(bool))
}

// Set new value to Bool type. New value must be of type bool or string. A
// string value of anything other than "true" (case insensitive) sets the
// value to false.
func (p *Bool) Set(v Value) error {
	switch v := v.(type) {
	case bool:
		return p.store(&p.value, v)
	case string:
		return p.store(&p.value, strings.EqualFold(strings.TrimSpace(v), "true"))
	}
	return curated.Errorf(CannotConvert, v, "prefs.Bool")
}

// Get returns the raw pref value.
func (p *Bool) Get() Value {
	if v, ok := p.value.Load().(bool); ok {
		return v
	}
	return false
}

// Reset sets the value to false.
func (p *Bool) Reset() error {
	return p.Set(false)
}

// String implements a string type in the prefs system.
type String struct {
	hooks
	value  atomic.Value
	maxLen int
}

func (p *String) String() string {
	return p.Get().(string)
}

// SetMaxLen sets the maximum length of the string. A value of zero or less
// means no limit. The existing string is cropped if necessary.
func (p *String) SetMaxLen(max int) {
	p.maxLen = max
	if s := p.String(); p.maxLen > 0 && len(s) > p.maxLen {
		p.value.Store(s[:p.maxLen])
	}
}

// Set new value to String type. Values of any type are formatted with %v.
func (p *String) Set(v Value) error {
	nv := fmt.Sprintf("%v", v)
	if p.maxLen > 0 && len(nv) > p.maxLen {
		nv = nv[:p.maxLen]
	}
	return p.store(&p.value, nv)
}

// Get returns the raw pref value.
func (p *String) Get() Value {
	if v, ok := p.value.Load().(string); ok {
		return v
	}
	return ""
}

// Reset sets the value to the empty string.
func (p *String) Reset() error {
	return p.Set("")
}

// Int implements an integer type in the prefs system.
type Int struct {
	hooks
	value atomic.Value
}

func (p *Int) String() string {
	return strconv.Itoa(p.Get().(int))
}

// Set new value to Int type. New value can be an integer type or a string.
func (p *Int) Set(v Value) error {
	switch v := v.(type) {
	case int:
		return p.store(&p.value, v)
	case int32:
		return p.store(&p.value, int(v))
	case int64:
		return p.store(&p.value, int(v))
	case string:
		nv, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return curated.Errorf(CannotConvert, v, "prefs.Int")
		}
		return p.store(&p.value, nv)
	}
	return curated.Errorf(CannotConvert, v, "prefs.Int")
}

// Get returns the raw pref value.
func (p *Int) Get() Value {
	if v, ok := p.value.Load().(int); ok {
		return v
	}
	return 0
}

// Reset sets the value to zero.
func (p *Int) Reset() error {
	return p.Set(0)
}

// Float implements a floating point type in the prefs system.
type Float struct {
	hooks
	value atomic.Value
}

func (p *Float) String() string {
	return fmt.Sprintf("%.3f", p.Get().(float64))
}

// Set new value to Float type. New value can be a float, an int or a string.
func (p *Float) Set(v Value) error {
	switch v := v.(type) {
	case float64:
		return p.store(&p.value, v)
	case float32:
		return p.store(&p.value, float64(v))
	case int:
		return p.store(&p.value, float64(v))
	case string:
		nv, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return curated.Errorf(CannotConvert, v, "prefs.Float")
		}
		return p.store(&p.value, nv)
	}
	return curated.Errorf(CannotConvert, v, "prefs.Float")
}

// Get returns the raw pref value.
func (p *Float) Get() Value {
	if v, ok := p.value.Load().(float64); ok {
		return v
	}
	return 0.0
}

// Reset sets the value to zero.
func (p *Float) Reset() error {
	return p.Set(0.0)
}

// Generic is a preferences type for values that are not held in a single
// live value. It must be created with NewGeneric(). Generic has no hooks.
type Generic struct {
	crit sync.Mutex
	set  func(string) error
	get  func() string
}

// NewGeneric is the preferred method of initialisation for the Generic type.
func NewGeneric(set func(string) error, get func() string) *Generic {
	return &Generic{
		set: set,
		get: get,
	}
}

func (p *Generic) String() string {
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.get()
}

// Set calls the set function with the value formatted as a string.
func (p *Generic) Set(v Value) error {
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.set(fmt.Sprintf("%v", v))
}

// Get calls the get function.
func (p *Generic) Get() Value {
	return p.String()
}

// Reset sets the value to the empty string.
func (p *Generic) Reset() error {
	return p.Set("")
}
