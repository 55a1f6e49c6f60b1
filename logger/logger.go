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

// Package logger is the central log for the front-end. There is only ever one
// log and it is shared by every goroutine: the presentation thread, the
// emulation scheduler and the terminal console.
//
// Entries are made with Log() and Logf(). Each entry has a tag, normally the
// name of the package or subsystem making the entry, and the detail. A
// detail that is identical to the previous entry is not added again, instead
// the previous entry is marked as being repeated.
//
// Entries can be echoed to an io.Writer as they are made with SetEcho().
package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// Permission implementations indicate whether the environment making a log
// request is allowed to create new log entries.
type Permission interface {
	AllowLogging() bool
}

type allow struct{}

func (_ allow) AllowLogging() bool {
	return true
}

// Allow indicates that the logging request should always be allowed.
var Allow Permission = allow{}

// Entry represents a single line in the log.
type Entry struct {
	Timestamp time.Time
	Tag       string
	Detail    string
	repeated  int
}

func (e Entry) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s: %s", e.Tag, e.Detail))
	if e.repeated > 0 {
		s.WriteString(fmt.Sprintf(" (repeat x%d)", e.repeated+1))
	}
	s.WriteString("\n")
	return s.String()
}

// maximum number of entries in the central logger.
const maxCentral = 256

type logger struct {
	crit       sync.Mutex
	maxEntries int
	entries    []Entry
	echo       io.Writer
}

var central = &logger{
	maxEntries: maxCentral,
	entries:    make([]Entry, 0, maxCentral),
}

func (l *logger) log(tag, detail string) {
	l.crit.Lock()
	defer l.crit.Unlock()

	tag = strings.ReplaceAll(tag, "\n", "")
	detail = strings.ReplaceAll(detail, "\n", "")

	var e *Entry
	if len(l.entries) > 0 {
		e = &l.entries[len(l.entries)-1]
	}

	if e == nil || e.Detail != detail || e.Tag != tag {
		l.entries = append(l.entries, Entry{Timestamp: time.Now(), Tag: tag, Detail: detail})
		e = &l.entries[len(l.entries)-1]
	} else {
		e.repeated++
		e.Timestamp = time.Now()
	}

	if l.echo != nil {
		io.WriteString(l.echo, e.String())
	}

	if len(l.entries) > l.maxEntries {
		l.entries = l.entries[len(l.entries)-l.maxEntries:]
	}
}

// Log adds an entry to the central logger.
func Log(perm Permission, tag, detail string) {
	if perm == Allow || perm.AllowLogging() {
		central.log(tag, detail)
	}
}

// Logf adds a formatted entry to the central logger.
func Logf(perm Permission, tag, detail string, args ...interface{}) {
	if perm == Allow || perm.AllowLogging() {
		central.log(tag, fmt.Sprintf(detail, args...))
	}
}

// Clear all entries from central logger.
func Clear() {
	central.crit.Lock()
	defer central.crit.Unlock()
	central.entries = central.entries[:0]
}

// Write contents of central logger to io.Writer.
func Write(output io.Writer) {
	central.crit.Lock()
	defer central.crit.Unlock()
	for _, e := range central.entries {
		io.WriteString(output, e.String())
	}
}

// Tail writes the last N entries to io.Writer.
func Tail(output io.Writer, number int) {
	central.crit.Lock()
	defer central.crit.Unlock()

	if number > len(central.entries) {
		number = len(central.entries)
	}
	for _, e := range central.entries[len(central.entries)-number:] {
		io.WriteString(output, e.String())
	}
}

// SetEcho prints new log entries to io.Writer as they are made. A nil writer
// turns echoing off.
func SetEcho(output io.Writer) {
	central.crit.Lock()
	defer central.crit.Unlock()
	central.echo = output
}
