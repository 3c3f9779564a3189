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
	"github.com/jetsetilly/glowmask/imageload"
	"github.com/jetsetilly/glowmask/logger"
	"github.com/jetsetilly/glowmask/pipeline"
	"github.com/veandco/go-sdl2/sdl"
)

// serviceEvents drains the SDL event queue.
func (img *SdlImgui) serviceEvents() {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			img.quit(nil)

		case *sdl.TextInputEvent:
			img.io.AddInputCharacters(ev.GetText())

		case *sdl.KeyboardEvent:
			img.serviceKeyboard(ev)

		case *sdl.MouseWheelEvent:
			var deltaX, deltaY float32
			if ev.X > 0 {
				deltaX++
			} else if ev.X < 0 {
				deltaX--
			}
			if ev.Y > 0 {
				deltaY++
			} else if ev.Y < 0 {
				deltaY--
			}
			img.io.AddMouseWheelDelta(-deltaX/4, deltaY/4)

		case *sdl.DropEvent:
			if ev.Type != sdl.DROPFILE {
				break
			}
			if !imageload.IsSupported(ev.File) {
				logger.Logf(logger.Allow, "sdlimgui", "unsupported file: %s", ev.File)
				break
			}
			if err := img.loadImage(ev.File); err != nil {
				logger.Log(logger.Allow, "sdlimgui", err)
			}
		}
	}
}

func (img *SdlImgui) serviceKeyboard(ev *sdl.KeyboardEvent) {
	// forward all key events to imgui
	switch ev.Type {
	case sdl.KEYDOWN:
		img.io.KeyPress(int(ev.Keysym.Scancode))
	case sdl.KEYUP:
		img.io.KeyRelease(int(ev.Keysym.Scancode))
	}
	img.io.KeyShift(int(sdl.SCANCODE_LSHIFT), int(sdl.SCANCODE_RSHIFT))
	img.io.KeyCtrl(int(sdl.SCANCODE_LCTRL), int(sdl.SCANCODE_RCTRL))
	img.io.KeyAlt(int(sdl.SCANCODE_LALT), int(sdl.SCANCODE_RALT))

	// shortcuts only on key up and not if imgui wants the keyboard
	if ev.Type != sdl.KEYUP || ev.Repeat == 1 || img.io.WantCaptureKeyboard() {
		return
	}

	var err error

	switch ev.Keysym.Scancode {
	case sdl.SCANCODE_ESCAPE:
		img.quit(nil)

	case sdl.SCANCODE_M, sdl.SCANCODE_TAB:
		if img.prefs.DisplayMode() == pipeline.Pipeline {
			err = img.prefs.setDisplayMode(pipeline.RawThreshold)
		} else {
			err = img.prefs.setDisplayMode(pipeline.Pipeline)
		}

	case sdl.SCANCODE_R:
		if img.drv.Status() == pipeline.LoadFailed {
			err = img.retry()
		}

	case sdl.SCANCODE_O:
		err = img.prefs.overlay.Set(!img.prefs.overlay.Get().(bool))

	case sdl.SCANCODE_V:
		err = img.prefs.vsync.Set(!img.prefs.vsync.Get().(bool))

	case sdl.SCANCODE_F12:
		err = img.screenshot("")
	}

	if err != nil {
		logger.Log(logger.Allow, "sdlimgui", err)
	}
}
