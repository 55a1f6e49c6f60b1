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

package modalflag

import (
	"flag"
	"io"
	"strings"
)

// Modes handles the command line arguments. The Output field should be set
// before calling Parse() or help messages will not be seen.
type Modes struct {
	Output io.Writer

	flags *flag.FlagSet
	args  []string
	modes []string
	mode  string
}

// NewArgs sets the arguments to parse and clears any previously added flags
// and modes.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.modes = md.modes[:0]
	md.mode = ""
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
}

// AddSubModes adds to the list of modes. The first mode added is the default.
func (md *Modes) AddSubModes(modes ...string) {
	for _, m := range modes {
		md.modes = append(md.modes, strings.ToUpper(m))
	}
}

// AddBool flag for the next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddString flag for the next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// AddInt flag for the next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// ParseResult is returned by Parse().
type ParseResult int

// List of valid ParseResult values.
const (
	// continue with the program
	ParseContinue ParseResult = iota

	// help was requested and has been printed
	ParseHelp

	// the arguments were not valid. the error is returned as the second
	// return value
	ParseError
)

// Parse the arguments. Help is printed automatically.
func (md *Modes) Parse() (ParseResult, error) {
	hw := &helpWriter{}
	md.flags.SetOutput(hw)

	err := md.flags.Parse(md.args)
	if err != nil {
		if err == flag.ErrHelp {
			hw.help(md.Output, md.modes)
			return ParseHelp, nil
		}
		return ParseError, err
	}

	if len(md.modes) == 0 {
		return ParseContinue, nil
	}

	md.mode = md.modes[0]
	arg := strings.ToUpper(md.flags.Arg(0))
	for _, m := range md.modes {
		if m == arg {
			md.mode = m

			// remove the mode from the remaining arguments
			err = md.flags.Parse(md.flags.Args()[1:])
			if err != nil {
				return ParseError, err
			}
			break // for loop
		}
	}

	return ParseContinue, nil
}

// Mode returns the mode selected by Parse(). It is the empty string if no
// modes were added.
func (md *Modes) Mode() string {
	return md.mode
}

// RemainingArgs returns the arguments after the flags and the mode.
func (md *Modes) RemainingArgs() []string {
	return md.flags.Args()
}

// Visit calls fn for every flag that was set on the command line.
func (md *Modes) Visit(fn func(flag string)) {
	md.flags.Visit(func(f *flag.Flag) {
		fn(f.Name)
	})
}
