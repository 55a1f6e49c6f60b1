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

package main

import (
	"fmt"
	"os"
	"os/signal"
	"runtime"

	"github.com/jetsetilly/retrogate/assert"
	"github.com/jetsetilly/retrogate/console"
	"github.com/jetsetilly/retrogate/emulation/null"
	"github.com/jetsetilly/retrogate/gui/sdlwindow"
	"github.com/jetsetilly/retrogate/keymap"
	"github.com/jetsetilly/retrogate/logger"
	"github.com/jetsetilly/retrogate/modalflag"
	"github.com/jetsetilly/retrogate/prefs"
	"github.com/jetsetilly/retrogate/scheduler"
	"github.com/jetsetilly/retrogate/statsview"
	"github.com/jetsetilly/retrogate/version"
)

// SDL window events and the initial GL context must be handled on the main
// thread
func init() {
	runtime.LockOSThread()
}

// #mainthread
func main() {
	assert.RegisterMainThread()
	os.Exit(launch())
}

// exit values
const (
	exitOK         = 0
	exitParseError = 10
	exitInitError  = 1
	exitRunError   = 20
)

func launch() int {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "DEBUG")

	echo := md.AddBool("log", false, "echo log to stdout")
	vsync := md.AddBool("vsync", true, "synchronise with the monitor refresh")
	prefsOverride := md.AddString("prefs", "", "preferences to override for this session: \"key::value; key::value\"")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run runtime statistics server (available: %v)", statsview.Available()))
	statsAddr := md.AddString("statsaddr", statsview.DefaultAddress, "address of the runtime statistics server")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		return exitParseError
	}

	if *echo {
		logger.SetEcho(os.Stdout)
	}

	v, r, _ := version.Version()
	logger.Logf(logger.Allow, "retrogate", "%s %s (%s)", version.ApplicationName, v, r)

	if *stats {
		stop := statsview.Launch(*statsAddr)
		defer stop()
	}

	// the -vsync flag is applied through the command line stack, but only if
	// it was set explicitly
	md.Visit(func(f string) {
		if f == "vsync" {
			prefs.PushCommandLineStack(fmt.Sprintf("video.vsync::%v", *vsync))
		}
	})
	if *prefsOverride != "" {
		prefs.PushCommandLineStack(*prefsOverride)
	}

	prf, err := sdlwindow.NewPreferences()
	if err != nil {
		fmt.Printf("* error: %v\n", err)
		return exitInitError
	}

	km := keymap.NewKeyMap()

	win, err := sdlwindow.NewRenderWindow(prf, km)
	if err != nil {
		logger.Log(logger.Allow, "retrogate", err.Error())
		fmt.Printf("* error: %v\n", err)
		return exitInitError
	}
	defer win.Destroy()

	core, err := null.NewCore(km, win, win.Layout(), win)
	if err != nil {
		fmt.Printf("* error: %v\n", err)
		return exitInitError
	}

	sch := scheduler.NewScheduler(core, win.Ownership(), win)

	// quit requests from the console goroutine
	quit := make(chan bool, 1)

	switch md.Mode() {
	case "RUN":
		sch.Control().SetRunning(true)
	case "DEBUG":
		restore, err := console.CBreakMode(os.Stdin)
		if err != nil {
			logger.Log(logger.Allow, "retrogate", err.Error())
		}
		defer restore()

		con := console.NewConsole(os.Stdin, os.Stdout, sch.Control(), km, func() {
			quit <- true
		})
		go con.Run()
	}

	win.OnEmulationStarting(sch)

	err = sch.Start()
	if err != nil {
		win.OnEmulationStopping()
		fmt.Printf("* error: %v\n", err)
		return exitRunError
	}

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	done := false
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true
		case <-quit:
			done = true
		case <-win.Closed():
			done = true
		case <-sch.Finished():
			// the scheduler has ended on its own because of an error
			done = true
		default:
			win.PollEvents()
		}
	}

	err = sch.Stop()
	win.OnEmulationStopping()

	if err != nil {
		logger.Log(logger.Allow, "retrogate", err.Error())
		fmt.Printf("* error: %v\n", err)
		return exitRunError
	}

	return exitOK
}
