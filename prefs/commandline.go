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
	"sort"
	"strings"
)

// the command line stack holds groups of preference values given on the
// command line. only the top group is consulted
var commandLineStack []map[string]Value

// SizeCommandLineStack returns the number of groups on the stack.
func SizeCommandLineStack() int {
	return len(commandLineStack)
}

// PushCommandLineStack parses a preferences string and adds it to the stack
// as a new group. The string is a list of "key::value" pairs separated by
// semi-colons. Malformed pairs are ignored.
func PushCommandLineStack(prefs string) {
	group := make(map[string]Value)

	for _, p := range strings.Split(prefs, ";") {
		kv := strings.Split(p, "::")
		if len(kv) == 2 {
			group[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
		}
	}

	commandLineStack = append(commandLineStack, group)
}

// PopCommandLineStack removes the top group from the stack. Returns the
// values in the group that were never used, as a sorted preferences string.
func PopCommandLineStack() string {
	if len(commandLineStack) == 0 {
		return ""
	}

	top := commandLineStack[len(commandLineStack)-1]
	commandLineStack = commandLineStack[:len(commandLineStack)-1]

	unused := make([]string, 0, len(top))
	for k, v := range top {
		unused = append(unused, fmt.Sprintf("%s::%v", k, v))
	}
	sort.Strings(unused)

	return strings.Join(unused, "; ")
}

// GetCommandLinePref returns the value for the key in the top group. The
// value is removed from the group when it is returned.
func GetCommandLinePref(key string) (bool, Value) {
	if len(commandLineStack) == 0 {
		return false, nil
	}

	top := commandLineStack[len(commandLineStack)-1]
	v, ok := top[key]
	if ok {
		delete(top, key)
	}
	return ok, v
}
