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

package sdlwindow

import (
	"runtime"
	"sync"

	"github.com/jetsetilly/retrogate/curated"
	"github.com/jetsetilly/retrogate/glcontext"
	"github.com/jetsetilly/retrogate/govern"
	"github.com/jetsetilly/retrogate/keymap"
	"github.com/jetsetilly/retrogate/layout"
	"github.com/jetsetilly/retrogate/logger"
	"github.com/jetsetilly/retrogate/motion"
	"github.com/jetsetilly/retrogate/scheduler"
	"github.com/jetsetilly/retrogate/userinput"
	"github.com/jetsetilly/retrogate/version"
	"github.com/veandco/go-sdl2/sdl"
)

// InitError is returned by NewRenderWindow() if the input subsystem can not
// be started. The program should not continue.
const InitError = "sdl: %v"

// the XInput mapping is added before any controllers are opened
const xinputMapping = "78696e70757401000000000000000000,XInput Controller,a:b0,b:b1,back:b6,dpdown:h0.4,dpleft:h0.8,dpright:h0.2,dpup:h0.1,guide:b10,leftshoulder:b4,leftstick:b8,lefttrigger:a2,leftx:a0,lefty:a1,rightshoulder:b5,rightstick:b9,righttrigger:a5,rightx:a3,righty:a4,start:b7,x:b2,y:b3,"

// the closeController interface is implemented by SDL joysticks and gamepads.
// we only need to close them when we are done
type closeController interface {
	Close()
}

// RenderWindow is the presentation surface.
type RenderWindow struct {
	prefs *Preferences

	window *sdl.Window
	glctx  sdl.GLContext

	own     *glcontext.Ownership
	surface *glcontext.Surface
	layout  *layout.Holder

	km    *keymap.KeyMap
	input *userinput.Normalizer

	// one entry for every joystick index probed. an entry is nil if there
	// was no controller at that index
	controllers []closeController
	joysticks   []closeController

	// the display showing the window. a change of display can mean a change
	// of pixel ratio
	displayIndex int

	// painting by the presentation thread is disabled while the emulation
	// thread has the context
	painting bool
	glReady  bool
	dirty    bool

	// the scheduler between OnEmulationStarting() and OnEmulationStopping()
	sch *scheduler.Scheduler

	// debugMode is true when the scheduler is not executing the core
	debugMode bool

	// signals from the scheduler are queued here until the next PollEvents()
	signalsCrit sync.Mutex
	signals     []govern.Signal

	// motion is accessed by the emulation thread through MotionStatus()
	motionCrit sync.Mutex
	motion     *motion.MotionEmu

	// mouse button state
	touching bool

	closed     chan bool
	closedOnce sync.Once
}

// NewRenderWindow is the preferred method of initialisation for the
// RenderWindow type. It must be called on the thread that will service the
// window. Failure to start the input subsystem is returned as an InitError.
func NewRenderWindow(prf *Preferences, km *keymap.KeyMap) (*RenderWindow, error) {
	// the SDL package calls LockOSThread() but we call it here too. we never
	// unlock it
	runtime.LockOSThread()

	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_JOYSTICK | sdl.INIT_GAMECONTROLLER | sdl.INIT_HAPTIC)
	if err != nil {
		logger.Logf(logger.Allow, "sdl", "failed to initialise SDL: %v", err)
		return nil, curated.Errorf(InitError, err)
	}

	win := &RenderWindow{
		prefs:     prf,
		km:        km,
		layout:    &layout.Holder{},
		painting:  true,
		debugMode: true,
		closed:    make(chan bool),
	}

	win.setGamepadMappings()

	err = win.createWindow()
	if err != nil {
		win.destroyControllers()
		sdl.Quit()
		return nil, curated.Errorf(InitError, err)
	}

	win.input = userinput.NewNormalizer(km)
	win.ReloadSetKeymaps()

	return win, nil
}

func (win *RenderWindow) setGamepadMappings() {
	if sdl.GameControllerAddMapping(xinputMapping) < 0 {
		logger.Logf(logger.Allow, "sdl", "gamepad mapping: %v", sdl.GetError())
	}

	// the joystick count is probed one past the end. we keep the nil entries
	// so that the slice index is the joystick index
	n := sdl.NumJoysticks() + 1
	for i := 0; i < n; i++ {
		pad := sdl.GameControllerOpen(i)
		if pad == nil {
			win.controllers = append(win.controllers, nil)
		} else {
			logger.Logf(logger.Allow, "sdl", "gamepad: %s", pad.Name())
			win.controllers = append(win.controllers, pad)
		}

		stick := sdl.JoystickOpen(i)
		if stick == nil {
			win.joysticks = append(win.joysticks, nil)
		} else {
			win.joysticks = append(win.joysticks, stick)
		}
	}
}

func (win *RenderWindow) destroyControllers() {
	for _, c := range win.controllers {
		if c != nil {
			c.Close()
		}
	}
	for _, j := range win.joysticks {
		if j != nil {
			j.Close()
		}
	}
	win.controllers = nil
	win.joysticks = nil
}

func (win *RenderWindow) createWindow() error {
	var err error

	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 3)
	if err != nil {
		return err
	}
	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 2)
	if err != nil {
		return err
	}
	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG)
	if err != nil {
		return err
	}
	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	if err != nil {
		return err
	}

	win.window, err = sdl.CreateWindow(version.Title(),
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		layout.TopWidth, layout.TopHeight+layout.BottomHeight,
		sdl.WINDOW_OPENGL|sdl.WINDOW_RESIZABLE|sdl.WINDOW_ALLOW_HIGHDPI|sdl.WINDOW_SHOWN)
	if err != nil {
		return err
	}

	win.glctx, err = win.window.GLCreateContext()
	if err != nil {
		_ = win.window.Destroy()
		return err
	}

	// the new context is current on this thread. release it so that the
	// Ownership instance starts in a known state
	backend := &sdlContext{window: win.window, ctx: win.glctx}
	err = backend.DoneCurrent()
	if err != nil {
		sdl.GLDeleteContext(win.glctx)
		_ = win.window.Destroy()
		return err
	}

	win.own = glcontext.NewOwnership(backend)
	err = win.own.MakeCurrent()
	if err != nil {
		sdl.GLDeleteContext(win.glctx)
		_ = win.window.Destroy()
		return err
	}

	win.setSwapInterval()

	win.window.SetMinimumSize(int32(win.prefs.MinWidth.Get().(int)), int32(win.prefs.MinHeight.Get().(int)))

	win.displayIndex, err = win.window.GetDisplayIndex()
	if err != nil {
		logger.Logf(logger.Allow, "sdl", "display index: %v", err)
	}

	win.surface = glcontext.NewSurface(sdlGeometry{window: win.window}, win.layout)
	win.surface.ScaleChanged()

	w, h := win.surface.Size()
	logger.Logf(logger.Allow, "sdl", "window created (framebuffer %dx%d)", w, h)

	return nil
}

// the swap interval is only set when the context is created
func (win *RenderWindow) setSwapInterval() {
	interval := 0
	if win.prefs.VSync.Get().(bool) {
		interval = 1
	}

	err := sdl.GLSetSwapInterval(interval)
	if err != nil {
		logger.Logf(logger.Allow, "sdl", "swap interval: %v", err)
		return
	}

	if interval == 1 {
		logger.Log(logger.Allow, "sdl", "vsync enabled")
	} else {
		logger.Log(logger.Allow, "sdl", "vsync disabled")
	}
}

// Destroy the window and release SDL. Should only be called once the
// scheduler has stopped.
func (win *RenderWindow) Destroy() {
	win.closeMotion()
	win.destroyControllers()

	err := win.own.DoneCurrent()
	if err != nil {
		logger.Logf(logger.Allow, "sdl", "destroy: %v", err)
	}
	sdl.GLDeleteContext(win.glctx)

	err = win.window.Destroy()
	if err != nil {
		logger.Logf(logger.Allow, "sdl", "destroy: %v", err)
	}

	sdl.Quit()
}

// Ownership returns the context ownership. The scheduler uses it for the
// handoff.
func (win *RenderWindow) Ownership() *glcontext.Ownership {
	return win.own
}

// Layout returns the framebuffer layout. It is updated whenever the surface
// is resized.
func (win *RenderWindow) Layout() *layout.Holder {
	return win.layout
}

// Swap presents the back buffer. It implements the emulation.Presenter
// interface and is called on the thread that has the context.
func (win *RenderWindow) Swap() error {
	return win.own.Swap()
}

// Draw implements the emulation.Presenter interface.
func (win *RenderWindow) Draw(f func()) error {
	return win.own.Draw(f)
}

// SwapBuffers presents the back buffer. Errors are logged.
func (win *RenderWindow) SwapBuffers() {
	err := win.own.Swap()
	if err != nil {
		logger.Log(logger.Allow, "sdl", err.Error())
	}
}

// ReloadSetKeymaps rebinds the keyboard from the input preferences.
func (win *RenderWindow) ReloadSetKeymaps() {
	win.input.ReloadSetKeymaps(win.prefs.Input.Bindings())
}

// Closed returns a channel that is closed when the window is closed.
func (win *RenderWindow) Closed() <-chan bool {
	return win.closed
}

// Close the window as though the user had closed it.
func (win *RenderWindow) Close() {
	win.closedOnce.Do(func() {
		win.closeMotion()
		close(win.closed)
		logger.Log(logger.Allow, "sdl", "window closed")
	})
}
