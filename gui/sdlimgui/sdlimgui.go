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
	"io"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/jetsetilly/glowmask/assert"
	"github.com/jetsetilly/glowmask/curated"
	"github.com/jetsetilly/glowmask/imageload"
	"github.com/jetsetilly/glowmask/logger"
	"github.com/jetsetilly/glowmask/paths"
	"github.com/jetsetilly/glowmask/pipeline"
	"github.com/jetsetilly/glowmask/pipeline/opengl"
)

// imguiIniFile is where imgui will store the coordinates of the overlay window
const imguiIniFile = "overlay_imgui.ini"

// SdlImgui presents the pipeline in an SDL window with an imgui overlay.
type SdlImgui struct {
	// the mechanical requirements for the gui
	io      imgui.IO
	context *imgui.Context
	plt     *platform
	glsl    *glsl

	// the pipeline and the device it runs on
	dev *opengl.Device
	drv *pipeline.Driver

	// image loading. loading is nil when no request is outstanding
	loader  *imageload.Loader
	loading <-chan imageload.Result
	watcher *imageload.Watcher

	// the path of the current image and the path of an image requested while
	// another request was outstanding
	path   string
	queued string

	prefs   *preferences
	polling *polling

	// the goroutine that created the gui. this must be the main thread
	mainThread assert.Goroutine

	// the gui has been asked to quit. the error (which may be nil) is sent
	// on the ended channel once only
	quitting bool
	ended    chan error
}

// NewSdlImgui is the preferred method of initialisation for type SdlImgui.
//
// MUST ONLY be called from the main thread.
func NewSdlImgui() (*SdlImgui, error) {
	img := &SdlImgui{
		context: imgui.CreateContext(nil),
		io:      imgui.CurrentIO(),
		loader:  imageload.NewLoader(pipeline.Dimension),
		polling: newPolling(),
		ended:   make(chan error, 1),

		mainThread: assert.CurrentGoroutine(),
	}

	iniPath, err := paths.ResourcePath("", imguiIniFile)
	if err != nil {
		img.context.Destroy()
		return nil, curated.Errorf("sdlimgui: %v", err)
	}
	img.io.SetIniFilename(iniPath)

	img.plt, err = newPlatform(pipeline.Dimension, pipeline.Dimension)
	if err != nil {
		img.context.Destroy()
		return nil, curated.Errorf(pipeline.SetupFatal, err)
	}

	img.glsl, err = newGlsl(img.plt)
	if err != nil {
		img.Destroy(nil)
		return nil, curated.Errorf(pipeline.SetupFatal, err)
	}

	img.dev, err = opengl.NewDevice()
	if err != nil {
		img.Destroy(nil)
		return nil, err
	}

	img.prefs, err = newPreferences(img)
	if err != nil {
		img.Destroy(nil)
		return nil, curated.Errorf("sdlimgui: %v", err)
	}

	img.drv = pipeline.NewDriver(img.dev, img.prefs)
	err = img.drv.Setup()
	if err != nil {
		img.Destroy(nil)
		return nil, err
	}

	img.plt.show()

	return img, nil
}

// Destroy implements GuiCreator interface. Errors are written to the output
// writer if it is not nil.
//
// MUST ONLY be called from the main thread.
func (img *SdlImgui) Destroy(output io.Writer) {
	report := func(err error) {
		if err == nil {
			return
		}
		logger.Log(logger.Allow, "sdlimgui", err)
		if output != nil {
			fmt.Fprintln(output, err)
		}
	}

	if img.prefs != nil {
		report(img.prefs.save())
	}

	if img.watcher != nil {
		report(img.watcher.Close())
		img.watcher = nil
	}

	if img.drv != nil {
		img.drv.Destroy()
	}

	if img.dev != nil {
		img.dev.Destroy()
	}

	if img.glsl != nil {
		img.glsl.destroy()
	}

	if img.plt != nil {
		report(img.plt.destroy())
	}

	img.context.Destroy()
}

// Ended returns the channel on which the result of the gui is sent when it
// has been asked to quit. A nil error means the user asked to quit. Any
// other error is a pipeline error that could not be recovered from.
func (img *SdlImgui) Ended() <-chan error {
	return img.ended
}

// quit is called from the service loop. only the first call has any effect.
func (img *SdlImgui) quit(err error) {
	if img.quitting {
		return
	}
	img.quitting = true
	if err != nil {
		logger.Log(logger.Allow, "sdlimgui", err)
	}
	img.ended <- err
}

// loadImage requests the image at the named path. if a request is already
// outstanding the path is queued and requested when the outstanding request
// has completed.
func (img *SdlImgui) loadImage(path string) error {
	if img.loading != nil {
		img.queued = path
		return nil
	}

	err := img.drv.RequestImage()
	if err != nil {
		return err
	}

	if path != img.path {
		img.path = path
		if img.watcher != nil {
			_ = img.watcher.Close()
			img.watcher = nil
		}
		err = img.setWatch(img.prefs.watch.Get().(bool))
		if err != nil {
			logger.Log(logger.Allow, "sdlimgui", err)
		}
	}

	img.loading = img.loader.Request(path)

	return nil
}

// retry the most recent image request. only valid if the request failed.
func (img *SdlImgui) retry() error {
	err := img.drv.Retry()
	if err != nil {
		return err
	}
	img.loading = img.loader.Request(img.path)
	return nil
}

// setWatch starts or stops watching the current image file.
func (img *SdlImgui) setWatch(watch bool) error {
	if !watch {
		if img.watcher != nil {
			err := img.watcher.Close()
			img.watcher = nil
			return err
		}
		return nil
	}

	if img.watcher != nil || img.path == "" {
		return nil
	}

	var err error
	img.watcher, err = imageload.NewWatcher(img.path)
	return err
}

// serviceLoading checks for the completion of an image request and for
// changes to the watched image file.
func (img *SdlImgui) serviceLoading() {
	if img.loading != nil {
		select {
		case res := <-img.loading:
			img.loading = nil

			err := img.drv.Complete(res.Image, res.Err)
			if err != nil && !curated.Is(err, pipeline.ImageLoadFailure) {
				img.quit(err)
				return
			}

			if img.queued != "" {
				path := img.queued
				img.queued = ""
				if err := img.loadImage(path); err != nil {
					logger.Log(logger.Allow, "sdlimgui", err)
				}
			}
		default:
		}
	}

	if img.watcher != nil {
		select {
		case <-img.watcher.Changed():
			switch img.drv.Status() {
			case pipeline.LoadFailed:
				err := img.retry()
				if err != nil {
					logger.Log(logger.Allow, "sdlimgui", err)
				}
			case pipeline.Running:
				err := img.loadImage(img.path)
				if err != nil {
					logger.Log(logger.Allow, "sdlimgui", err)
				}
			}
		default:
		}
	}
}

// Service implements GuiCreator interface.
//
// MUST ONLY be called from the main thread.
func (img *SdlImgui) Service() {
	img.serviceEvents()
	img.serviceRequests()

	if img.quitting {
		return
	}

	img.serviceLoading()

	// the surface is the default framebuffer, which may have been resized
	fb := img.plt.framebufferSize()
	img.dev.SetSurfaceSize(int32(fb[0]), int32(fb[1]))

	img.glsl.preRender()

	err := img.drv.RenderFrame()
	if err != nil {
		img.quit(err)
		return
	}

	img.plt.newFrame()
	imgui.NewFrame()
	img.drawOverlay()
	imgui.Render()
	img.glsl.render()

	img.plt.postRender()
}
