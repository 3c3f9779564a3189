// This file is part of Glowmask.
//
// Glowmask is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Glowmask is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Glowmask.  If not, see <https://www.gnu.org/licenses/>.

package sdlimgui

import (
	"fmt"
	"runtime"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/jetsetilly/glowmask/logger"
	"github.com/jetsetilly/glowmask/version"
	"github.com/veandco/go-sdl2/sdl"
)

type platform struct {
	window    *sdl.Window
	glContext sdl.GLContext
	mode      sdl.DisplayMode
}

// newPlatform is the preferred method of initialisation for the platform type.
// The window is created hidden and is shown with show() once the pipeline has
// been setup.
func newPlatform(width int32, height int32) (*platform, error) {
	// the SDL package calls LockOSThread() but we call it here too. it can't
	// hurt and we never unlock it in any case
	runtime.LockOSThread()

	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	for _, a := range []struct {
		attr  sdl.GLattr
		value int
	}{
		{sdl.GL_CONTEXT_MAJOR_VERSION, 3},
		{sdl.GL_CONTEXT_MINOR_VERSION, 2},
		{sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG},
		{sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE},
		{sdl.GL_DOUBLEBUFFER, 1},
	} {
		err = sdl.GLSetAttribute(a.attr, a.value)
		if err != nil {
			sdl.Quit()
			return nil, fmt.Errorf("sdl: %w", err)
		}
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	plt := &platform{}

	plt.mode, err = sdl.GetCurrentDisplayMode(0)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl: %w", err)
	}
	logger.Logf(logger.Allow, "sdl", "refresh rate: %dHz", plt.mode.RefreshRate)

	plt.setKeyMapping()

	plt.window, err = sdl.CreateWindow(version.Title(),
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		width, height,
		sdl.WINDOW_OPENGL|sdl.WINDOW_ALLOW_HIGHDPI|sdl.WINDOW_RESIZABLE|sdl.WINDOW_HIDDEN)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	plt.glContext, err = plt.window.GLCreateContext()
	if err != nil {
		_ = plt.destroy()
		return nil, fmt.Errorf("sdl: %w", err)
	}
	err = plt.window.GLMakeCurrent(plt.glContext)
	if err != nil {
		_ = plt.destroy()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	major, _ := sdl.GLGetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION)
	minor, _ := sdl.GLGetAttribute(sdl.GL_CONTEXT_MINOR_VERSION)
	logger.Logf(logger.Allow, "sdl", "using GL version %d.%d core", major, minor)

	return plt, nil
}

// list of swap interval values. these are the values defined and expected by
// the SDL.GLSetSwapInterval() function
const (
	syncImmediateUpdate     = 0
	syncWithVerticalRetrace = 1
)

func (plt *platform) setSwapInterval(i int) {
	err := sdl.GLSetSwapInterval(i)
	if err != nil {
		logger.Logf(logger.Allow, "sdl", "GLSetSwapInterval(%d): %s", i, err.Error())
	}
}

func (plt *platform) show() {
	plt.window.Show()
	plt.window.Raise()
}

// destroy cleans up the resources.
func (plt *platform) destroy() error {
	if plt.glContext != nil {
		sdl.GLDeleteContext(plt.glContext)
		plt.glContext = nil
	}

	if plt.window != nil {
		err := plt.window.Destroy()
		if err != nil {
			return err
		}
		plt.window = nil
	}
	sdl.Quit()

	return nil
}

// displaySize returns the dimension of the display.
func (plt *platform) displaySize() [2]float32 {
	w, h := plt.window.GetSize()
	return [2]float32{float32(w), float32(h)}
}

// framebufferSize returns the dimension of the framebuffer.
func (plt *platform) framebufferSize() [2]float32 {
	w, h := plt.window.GLGetDrawableSize()
	return [2]float32{float32(w), float32(h)}
}

// newFrame marks the begin of a render pass. It forwards all current state to imgui.CurrentIO().
func (plt *platform) newFrame() {
	// Setup display size (every frame to accommodate for window resizing)
	displaySize := plt.displaySize()
	imgui.CurrentIO().SetDisplaySize(imgui.Vec2{X: displaySize[0], Y: displaySize[1]})

	x, y, state := sdl.GetMouseState()
	imgui.CurrentIO().SetMousePosition(imgui.Vec2{X: float32(x), Y: float32(y)})
	for i, button := range []uint32{sdl.BUTTON_LEFT, sdl.BUTTON_RIGHT, sdl.BUTTON_MIDDLE} {
		imgui.CurrentIO().SetMouseButtonDown(i, (state&sdl.Button(button)) != 0)
	}
}

// postRender performs a buffer swap.
func (plt *platform) postRender() {
	plt.window.GLSwap()
}

// map sdl scancodes to imgui keys.
func (plt *platform) setKeyMapping() {
	keys := map[int]int{
		imgui.KeyTab:        int(sdl.SCANCODE_TAB),
		imgui.KeyLeftArrow:  int(sdl.SCANCODE_LEFT),
		imgui.KeyRightArrow: int(sdl.SCANCODE_RIGHT),
		imgui.KeyUpArrow:    int(sdl.SCANCODE_UP),
		imgui.KeyDownArrow:  int(sdl.SCANCODE_DOWN),
		imgui.KeyPageUp:     int(sdl.SCANCODE_PAGEUP),
		imgui.KeyPageDown:   int(sdl.SCANCODE_PAGEDOWN),
		imgui.KeyHome:       int(sdl.SCANCODE_HOME),
		imgui.KeyEnd:        int(sdl.SCANCODE_END),
		imgui.KeyInsert:     int(sdl.SCANCODE_INSERT),
		imgui.KeyDelete:     int(sdl.SCANCODE_DELETE),
		imgui.KeyBackspace:  int(sdl.SCANCODE_BACKSPACE),
		imgui.KeySpace:      int(sdl.SCANCODE_SPACE),
		imgui.KeyEnter:      int(sdl.SCANCODE_RETURN),
		imgui.KeyEscape:     int(sdl.SCANCODE_ESCAPE),
	}

	for imguiKey, nativeKey := range keys {
		imgui.CurrentIO().KeyMap(imguiKey, nativeKey)
	}
}
