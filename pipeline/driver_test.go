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

package pipeline_test

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/jetsetilly/glowmask/curated"
	"github.com/jetsetilly/glowmask/pipeline"
	"github.com/jetsetilly/glowmask/pipeline/cpu"
	"github.com/jetsetilly/glowmask/test"
)

// recorder wraps a device and records the passes executed.
type recorder struct {
	pipeline.Device
	passes []pipeline.Pass
	dests  []pipeline.Target

	// errors to return
	compileErr error
	deviceErr  error

	// the source texture returned by CreateTexture() will be the texture of
	// the first target
	feedback bool
	targets  []pipeline.Target
}

func (rec *recorder) CompileProgram(pass pipeline.Pass, vertex string, fragment string) (pipeline.Program, error) {
	if rec.compileErr != nil && pass == pipeline.VerticalBlur {
		return nil, rec.compileErr
	}
	return rec.Device.CompileProgram(pass, vertex, fragment)
}

func (rec *recorder) AllocateTargets(count int, dimension int) ([]pipeline.Target, error) {
	var err error
	rec.targets, err = rec.Device.AllocateTargets(count, dimension)
	return rec.targets, err
}

func (rec *recorder) CreateTexture(img image.Image) (pipeline.Texture, error) {
	if rec.feedback {
		return rec.targets[0].Texture(), nil
	}
	return rec.Device.CreateTexture(img)
}

func (rec *recorder) Execute(prog pipeline.Program, src pipeline.Texture, dest pipeline.Target, geom pipeline.Geometry, xf pipeline.Transform) error {
	rec.passes = append(rec.passes, prog.Pass())
	rec.dests = append(rec.dests, dest)
	return nil
}

func (rec *recorder) Err() error {
	return rec.deviceErr
}

func (rec *recorder) reset() {
	rec.passes = rec.passes[:0]
	rec.dests = rec.dests[:0]
}

func newRecorder() *recorder {
	dev := cpu.NewDevice(pipeline.Dimension, pipeline.Dimension)
	dev.SetQuiet(true)
	return &recorder{Device: dev}
}

type selector struct {
	mode pipeline.DisplayMode
}

func (sel *selector) DisplayMode() pipeline.DisplayMode {
	return sel.mode
}

func sourceImage() image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	img.Set(1, 1, color.Black)
	return img
}

func TestStatus(t *testing.T) {
	rec := newRecorder()
	drv := pipeline.NewDriver(rec, pipeline.FixedMode(pipeline.Pipeline))
	test.ExpectEquality(t, drv.Status(), pipeline.Uninitialized)

	// nothing is rendered before setup
	test.ExpectSuccess(t, drv.RenderFrame())
	test.ExpectEquality(t, len(rec.passes), 0)

	// an image cannot be requested or received before setup
	err := drv.RequestImage()
	test.ExpectSuccess(t, curated.Is(err, pipeline.InvalidTransition))
	err = drv.Complete(sourceImage(), nil)
	test.ExpectSuccess(t, curated.Is(err, pipeline.InvalidTransition))

	test.ExpectSuccess(t, drv.Setup())
	test.ExpectEquality(t, drv.Status(), pipeline.Ready)
	test.ExpectEquality(t, len(drv.State().Targets), pipeline.NumTargets)

	// setup only once
	err = drv.Setup()
	test.ExpectSuccess(t, curated.Is(err, pipeline.InvalidTransition))

	test.ExpectSuccess(t, drv.RequestImage())
	test.ExpectEquality(t, drv.Status(), pipeline.Loading)

	// nothing is rendered while loading
	test.ExpectSuccess(t, drv.RenderFrame())
	test.ExpectEquality(t, len(rec.passes), 0)

	// retry is only possible after a failure
	err = drv.Retry()
	test.ExpectSuccess(t, curated.Is(err, pipeline.InvalidTransition))

	// load failure
	err = drv.Complete(nil, errors.New("bad file"))
	test.ExpectSuccess(t, curated.Is(err, pipeline.ImageLoadFailure))
	test.ExpectEquality(t, drv.Status(), pipeline.LoadFailed)
	test.ExpectSuccess(t, curated.Is(drv.LoadErr(), pipeline.ImageLoadFailure))
	test.ExpectEquality(t, drv.LoadErr().Error(), "image load: bad file")

	// nothing is rendered after a failure
	test.ExpectSuccess(t, drv.RenderFrame())
	test.ExpectEquality(t, len(rec.passes), 0)

	test.ExpectSuccess(t, drv.Retry())
	test.ExpectEquality(t, drv.Status(), pipeline.Loading)
	test.ExpectSuccess(t, drv.LoadErr())

	test.ExpectSuccess(t, drv.Complete(sourceImage(), nil))
	test.ExpectEquality(t, drv.Status(), pipeline.Running)
	test.ExpectInequality(t, drv.State().Source, nil)

	// a reload while running keeps the driver running
	test.ExpectSuccess(t, drv.RequestImage())
	test.ExpectEquality(t, drv.Status(), pipeline.Running)
	err = drv.Complete(nil, errors.New("bad file"))
	test.ExpectSuccess(t, curated.Is(err, pipeline.ImageLoadFailure))
	test.ExpectEquality(t, drv.Status(), pipeline.Running)
	test.ExpectSuccess(t, drv.RenderFrame())
	test.ExpectEquality(t, len(rec.passes), 3)

	drv.Destroy()
	test.ExpectEquality(t, drv.Status(), pipeline.Uninitialized)
	test.ExpectEquality(t, drv.State(), (*pipeline.PipelineState)(nil))
}

func TestPassOrder(t *testing.T) {
	rec := newRecorder()
	sel := &selector{mode: pipeline.Pipeline}
	drv := pipeline.NewDriver(rec, sel)
	defer drv.Destroy()

	test.DemandSuccess(t, drv.Setup())
	test.DemandSuccess(t, drv.RequestImage())
	test.DemandSuccess(t, drv.Complete(sourceImage(), nil))

	st := drv.State()

	test.ExpectSuccess(t, drv.RenderFrame())
	test.ExpectEquality(t, len(rec.passes), 3)
	test.ExpectEquality(t, rec.passes[0], pipeline.Threshold)
	test.ExpectEquality(t, rec.passes[1], pipeline.HorizontalBlur)
	test.ExpectEquality(t, rec.passes[2], pipeline.VerticalBlur)
	test.ExpectEquality(t, rec.dests[0], st.Targets[0])
	test.ExpectEquality(t, rec.dests[1], st.Targets[1])
	test.ExpectEquality(t, rec.dests[2], nil)

	// a change of display mode takes effect on the next frame
	rec.reset()
	sel.mode = pipeline.RawThreshold
	test.ExpectSuccess(t, drv.RenderFrame())
	test.ExpectEquality(t, len(rec.passes), 1)
	test.ExpectEquality(t, rec.passes[0], pipeline.Threshold)
	test.ExpectEquality(t, rec.dests[0], nil)

	rec.reset()
	sel.mode = pipeline.Pipeline
	test.ExpectSuccess(t, drv.RenderFrame())
	test.ExpectEquality(t, len(rec.passes), 3)

	// rendering a pass explicitly
	rec.reset()
	test.ExpectSuccess(t, drv.RenderPass(pipeline.HorizontalBlur))
	test.ExpectEquality(t, len(rec.passes), 2)
	test.ExpectEquality(t, rec.dests[0], st.Targets[0])
	test.ExpectEquality(t, rec.dests[1], nil)
}

func TestSetupFatal(t *testing.T) {
	rec := newRecorder()
	rec.compileErr = errors.New("syntax error")
	drv := pipeline.NewDriver(rec, pipeline.FixedMode(pipeline.Pipeline))

	err := drv.Setup()
	test.ExpectSuccess(t, curated.Is(err, pipeline.SetupFatal))
	test.ExpectEquality(t, err.Error(), "setup: vertical program: syntax error")
	test.ExpectEquality(t, drv.Status(), pipeline.Uninitialized)
}

func TestFrameFatal(t *testing.T) {
	rec := newRecorder()
	drv := pipeline.NewDriver(rec, pipeline.FixedMode(pipeline.Pipeline))
	defer drv.Destroy()

	test.DemandSuccess(t, drv.Setup())
	test.DemandSuccess(t, drv.RequestImage())
	test.DemandSuccess(t, drv.Complete(sourceImage(), nil))

	rec.deviceErr = errors.New("out of memory")
	err := drv.RenderFrame()
	test.ExpectSuccess(t, curated.Is(err, pipeline.FrameFatal))
	test.ExpectEquality(t, err.Error(), "frame: out of memory")
}

func TestFeedbackLoop(t *testing.T) {
	rec := newRecorder()
	rec.feedback = true
	drv := pipeline.NewDriver(rec, pipeline.FixedMode(pipeline.Pipeline))

	test.DemandSuccess(t, drv.Setup())
	test.DemandSuccess(t, drv.RequestImage())
	test.DemandSuccess(t, drv.Complete(sourceImage(), nil))

	err := drv.RenderFrame()
	test.ExpectSuccess(t, curated.Is(err, pipeline.FeedbackLoop))

	// nothing was executed
	test.ExpectEquality(t, len(rec.passes), 0)
}
