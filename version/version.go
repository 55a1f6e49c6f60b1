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

// Package version reports the version of the program. The version number is
// set at build time with:
//
//	go build -ldflags "-X github.com/jetsetilly/retrogate/version.number=v0.1.0"
//
// The revision comes from the build information embedded by the Go
// toolchain.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the program.
const ApplicationName = "Retrogate"

// set with -ldflags
var number string

var version string
var revision string

// Version returns the version string, the revision string and whether this is
// a numbered release.
//
// The version string is "unreleased" if there is no version number but there
// is revision information. It is "local" if there is neither.
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// Title returns the string to use as the title of the main window.
func Title() string {
	if number != "" {
		return fmt.Sprintf("%s | %s", ApplicationName, version)
	}
	return fmt.Sprintf("%s | %s-%s", ApplicationName, version, shortRevision(revision))
}

func shortRevision(r string) string {
	if len(r) > 8 {
		return r[:8]
	}
	return r
}

func init() {
	version, revision = fromBuildInfo(number, debug.ReadBuildInfo)
}

func fromBuildInfo(number string, read func() (*debug.BuildInfo, bool)) (string, string) {
	var vcs bool
	var rev string
	var modified bool

	if info, ok := read(); ok {
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				rev = v.Value
			case "vcs.modified":
				modified = v.Value == "true"
			}
		}
	}

	if rev == "" {
		rev = "norev"
	} else if modified {
		rev = fmt.Sprintf("%s+dirty", rev)
	}

	switch {
	case number != "":
		return number, rev
	case vcs:
		return "unreleased", rev
	}
	return "local", rev
}
