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
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/retrogate/curated"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is inserted at the beginning of a preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// KeySep separates the key from the value in the preferences file.
const KeySep = " :: "

// Sentinel error patterns.
const (
	NoPrefsFile    = "prefs: no prefs file (%s)"
	InvalidFile    = "prefs: not a valid prefs file (%s)"
	DiskError      = "prefs: %v"
	DuplicateEntry = "prefs: duplicate entry (%s)"
)

type entryMap map[string]pref

func (em entryMap) String() string {
	keys := make([]string, 0, len(em))
	for k := range em {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, KeySep, em[k]))
	}

	return s.String()
}

// Disk represents preference values as stored on disk. A single file can be
// shared by more than one Disk instance; entries not added to an instance are
// preserved when it is saved.
type Disk struct {
	path    string
	entries entryMap

	// values from the command line stack. they take precedence over values
	// loaded from the file
	overrides map[string]Value
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	dsk := &Disk{
		path:      path,
		entries:   make(entryMap),
		overrides: make(map[string]Value),
	}
	return dsk, nil
}

// Add preference value to list of values to store/load from Disk. If the
// key is present in the top-most command line group then the value is set
// immediately.
func (dsk *Disk) Add(key string, p pref) error {
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateEntry, key)
	}

	dsk.entries[key] = p

	if ok, v := GetCommandLinePref(key); ok {
		err := p.Set(v)
		if err != nil {
			return curated.Errorf(DiskError, err)
		}
		dsk.overrides[key] = v
	}

	return nil
}

// Save current preference values to disk. Values in the file belonging to
// other Disk instances are kept.
func (dsk *Disk) Save() (rerr error) {
	// load all existing entries to a temporary entryMap
	entries := make(entryMap)
	err := load(dsk.path, entries, false)
	if err != nil && !curated.Is(err, NoPrefsFile) {
		return err
	}

	// copy live entries over the entries that were loaded
	for k, v := range dsk.entries {
		entries[k] = v
	}

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf(DiskError, err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf(DiskError, err)
		}
	}()

	// add warning label
	_, err = fmt.Fprintf(f, "%s\n", WarningBoilerPlate)
	if err != nil {
		return curated.Errorf(DiskError, err)
	}

	// write entries (combination of old and live entries) to disk
	_, err = f.WriteString(entries.String())
	if err != nil {
		return curated.Errorf(DiskError, err)
	}

	return nil
}

// Load preference values from disk. Only values that have been added to the
// Disk are updated. A missing file results in a NoPrefsFile error, which
// can usually be ignored.
//
// Values that were set from the command line stack are not changed.
func (dsk *Disk) Load() error {
	err := load(dsk.path, dsk.entries, true)

	for k, v := range dsk.overrides {
		if serr := dsk.entries[k].Set(v); serr != nil {
			return curated.Errorf(DiskError, serr)
		}
	}

	return err
}

// load the file into the entryMap. if limit is true then only keys already
// in the map are set. otherwise unknown keys are added to the map as String
// values.
func load(path string, entries entryMap, limit bool) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return curated.Errorf(NoPrefsFile, path)
		}
		return curated.Errorf(DiskError, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Split(bufio.ScanLines)

	// check validity of file by checking the first line
	scanner.Scan()
	if len(scanner.Text()) > 0 && scanner.Text() != WarningBoilerPlate {
		return curated.Errorf(InvalidFile, path)
	}

	for scanner.Scan() {
		spt := strings.SplitN(scanner.Text(), KeySep, 2)
		if len(spt) != 2 {
			continue
		}

		k := spt[0]
		v := spt[1]

		if p, ok := entries[k]; ok {
			err = p.Set(v)
			if err != nil {
				return curated.Errorf(DiskError, err)
			}
		} else if !limit {
			var dummy String
			_ = dummy.Set(v)
			entries[k] = &dummy
		}
	}

	if err := scanner.Err(); err != nil {
		return curated.Errorf(DiskError, err)
	}

	return nil
}
