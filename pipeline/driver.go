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

package pipeline

import (
	"image"

	"github.com/jetsetilly/glowmask/curated"
	"github.com/jetsetilly/glowmask/logger"
)

// Driver runs the passes of the pipeline on a Device. Driver functions must
// all be called from the same goroutine as the Device functions.
type Driver struct {
	dev Device
	sel ModeSelector
	xf  Transform

	state  *PipelineState
	status Status

	// the most recent image load error. reset on the next request
	loadErr error
}

// NewDriver is the preferred method of initialisation for the Driver type.
// The ModeSelector is read once every frame.
func NewDriver(dev Device, sel ModeSelector) *Driver {
	return &Driver{
		dev:    dev,
		sel:    sel,
		xf:     NewTransform(),
		status: Uninitialized,
	}
}

// Status returns the current status of the driver.
func (drv *Driver) Status() Status {
	return drv.status
}

// LoadErr returns the error from the most recent image load, if any.
func (drv *Driver) LoadErr() error {
	return drv.loadErr
}

// State returns the pipeline state. Returns nil if the driver is
// Uninitialized.
func (drv *Driver) State() *PipelineState {
	return drv.state
}

func (drv *Driver) transition(to Status) error {
	if !drv.status.canTransition(to) {
		return curated.Errorf(InvalidTransition, drv.status, to)
	}
	if drv.status != to {
		logger.Logf(logger.Allow, "pipeline", "%s -> %s", drv.status, to)
	}
	drv.status = to
	return nil
}

// Setup creates the pipeline state. The driver moves from Uninitialized to
// Ready. Errors are curated SetupFatal errors.
func (drv *Driver) Setup() error {
	if !drv.status.canTransition(Ready) {
		return curated.Errorf(InvalidTransition, drv.status, Ready)
	}

	st, err := NewPipelineState(drv.dev)
	if err != nil {
		return err
	}
	drv.state = st

	return drv.transition(Ready)
}

// RequestImage indicates that an image has been requested. Nothing is
// rendered until the image has been received with Complete(). When the
// driver is already Running the current image continues to be rendered
// until the new image arrives.
func (drv *Driver) RequestImage() error {
	drv.loadErr = nil
	if drv.status == Running {
		return nil
	}
	return drv.transition(Loading)
}

// Retry moves the driver from LoadFailed back to Loading. The caller is
// responsible for making the new request of the image loader.
func (drv *Driver) Retry() error {
	if drv.status != LoadFailed {
		return curated.Errorf(InvalidTransition, drv.status, Loading)
	}
	return drv.RequestImage()
}

// Complete is called with the result of an image load request. A load error
// is returned as a curated ImageLoadFailure error. If the driver is not yet
// Running the driver moves to LoadFailed. If it is Running the previous image
// continues to be rendered.
func (drv *Driver) Complete(img image.Image, loadErr error) error {
	if drv.status != Loading && drv.status != Running {
		return curated.Errorf(InvalidTransition, drv.status, Running)
	}

	if loadErr != nil {
		drv.loadErr = curated.Errorf(ImageLoadFailure, loadErr)
		logger.Log(logger.Allow, "pipeline", drv.loadErr)
		if drv.status == Loading {
			if err := drv.transition(LoadFailed); err != nil {
				return err
			}
		}
		return drv.loadErr
	}

	var err error
	if drv.state.Source == nil {
		drv.state.Source, err = drv.dev.CreateTexture(img)
	} else {
		err = drv.dev.UpdateTexture(drv.state.Source, img)
	}
	if err != nil {
		return curated.Errorf(FrameFatal, err)
	}

	return drv.transition(Running)
}

// RenderFrame runs the passes required by the current display mode. Nothing
// is rendered unless the driver is Running. Errors are curated FrameFatal or
// FeedbackLoop errors.
func (drv *Driver) RenderFrame() error {
	if drv.status != Running {
		return nil
	}
	return drv.render(drv.sel.DisplayMode().LastPass())
}

// RenderPass runs the passes up to and including the specified pass. The
// result of that pass is written to the surface. The driver must be
// Running.
func (drv *Driver) RenderPass(last Pass) error {
	if drv.status != Running {
		return curated.Errorf(FrameFatal, "no source image")
	}
	if last < Threshold || last >= NumPasses {
		return curated.Errorf(FrameFatal, last)
	}
	return drv.render(last)
}

// the offscreen target written by each pass when it is not the final pass.
// VerticalBlur is always the final pass.
var passTarget = [NumPasses - 1]int{
	Threshold:      targetA,
	HorizontalBlur: targetB,
}

func (drv *Driver) render(last Pass) error {
	src := drv.state.Source

	for p := Threshold; p <= last; p++ {
		// the final pass writes to the surface
		var dest Target
		if p < last {
			dest = drv.state.Targets[passTarget[p]]
		}

		if dest != nil && dest.Texture() == src {
			return curated.Errorf(FeedbackLoop, p, dest.ID())
		}

		err := drv.dev.Execute(drv.state.Programs[p], src, dest, drv.state.Geometry, drv.xf)
		if err != nil {
			return curated.Errorf(FrameFatal, err)
		}

		if dest != nil {
			src = dest.Texture()
		}
	}

	if err := drv.dev.Err(); err != nil {
		return curated.Errorf(FrameFatal, err)
	}

	return nil
}

// Destroy the pipeline state. The driver returns to Uninitialized.
func (drv *Driver) Destroy() {
	if drv.state != nil {
		drv.state.Destroy()
		drv.state = nil
	}
	drv.status = Uninitialized
	drv.loadErr = nil
}
