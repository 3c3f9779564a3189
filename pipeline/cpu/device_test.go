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

package cpu_test

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/jetsetilly/glowmask/curated"
	"github.com/jetsetilly/glowmask/pipeline"
	"github.com/jetsetilly/glowmask/pipeline/cpu"
	"github.com/jetsetilly/glowmask/test"
)

var (
	opaqueBlack = color.RGBA{A: 255}
	opaqueRed   = color.RGBA{R: 255, A: 255}
	opaqueWhite = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// selector allows the display mode to be changed between frames.
type selector struct {
	mode pipeline.DisplayMode
}

func (sel *selector) DisplayMode() pipeline.DisplayMode {
	return sel.mode
}

func solidImage(c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, pipeline.Dimension, pipeline.Dimension))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

// runningDriver returns a driver in the Running state with the image as the
// source.
func runningDriver(t *testing.T, img image.Image, sel pipeline.ModeSelector) (*pipeline.Driver, *cpu.Device) {
	t.Helper()

	dev := cpu.NewDevice(pipeline.Dimension, pipeline.Dimension)
	dev.SetQuiet(true)

	drv := pipeline.NewDriver(dev, sel)
	test.DemandSuccess(t, drv.Setup())
	test.DemandSuccess(t, drv.RequestImage())
	test.DemandSuccess(t, drv.Complete(img, nil))
	test.DemandEquality(t, drv.Status(), pipeline.Running)

	return drv, dev
}

// expectUniform checks that every pixel in the image is the colour.
func expectUniform(t *testing.T, img *image.RGBA, c color.RGBA, tags ...any) {
	t.Helper()
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if !test.ExpectEquality(t, img.RGBAAt(x, y), c, append(tags, x, y)...) {
				return
			}
		}
	}
}

func TestSolidWhite(t *testing.T) {
	sel := &selector{mode: pipeline.Pipeline}
	drv, dev := runningDriver(t, solidImage(color.White), sel)
	defer drv.Destroy()

	test.ExpectSuccess(t, drv.RenderFrame())

	a, err := dev.ReadPixels(drv.State().Targets[0])
	test.DemandSuccess(t, err)
	expectUniform(t, a, opaqueBlack, "threshold")

	b, err := dev.ReadPixels(drv.State().Targets[1])
	test.DemandSuccess(t, err)
	expectUniform(t, b, opaqueBlack, "horizontal")

	s, err := dev.ReadPixels(nil)
	test.DemandSuccess(t, err)
	expectUniform(t, s, opaqueBlack, "surface")
}

func TestSolidBlack(t *testing.T) {
	sel := &selector{mode: pipeline.Pipeline}
	drv, dev := runningDriver(t, solidImage(color.Black), sel)
	defer drv.Destroy()

	test.ExpectSuccess(t, drv.RenderFrame())
	s, err := dev.ReadPixels(nil)
	test.DemandSuccess(t, err)
	expectUniform(t, s, opaqueRed, "pipeline")

	sel.mode = pipeline.RawThreshold
	test.ExpectSuccess(t, drv.RenderFrame())
	s, err = dev.ReadPixels(nil)
	test.DemandSuccess(t, err)
	expectUniform(t, s, opaqueRed, "raw")
}

// the position of the single foreground pixel.
const cx, cy = 384, 384

func singlePixelImage() *image.NRGBA {
	img := solidImage(color.White)
	img.Set(cx, cy, color.Black)
	return img
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestSinglePixel(t *testing.T) {
	sel := &selector{mode: pipeline.Pipeline}
	drv, dev := runningDriver(t, singlePixelImage(), sel)
	defer drv.Destroy()

	test.ExpectSuccess(t, drv.RenderFrame())

	// threshold. a single red pixel on a black field
	a, err := dev.ReadPixels(drv.State().Targets[0])
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, a.RGBAAt(cx, cy), opaqueRed)
	test.ExpectEquality(t, a.RGBAAt(cx+1, cy), opaqueBlack)
	test.ExpectEquality(t, a.RGBAAt(cx, cy+1), opaqueBlack)
	test.ExpectEquality(t, a.RGBAAt(0, 0), opaqueBlack)

	// horizontal blur. linear decay along the row up to the sample radius.
	// odd distances fall on a rounding boundary so allow a difference of one
	b, err := dev.ReadPixels(drv.State().Targets[1])
	test.DemandSuccess(t, err)
	for dx := -pipeline.SampleRadius - 5; dx <= pipeline.SampleRadius+5; dx++ {
		expected := 0
		if abs(dx) < pipeline.SampleRadius {
			expected = 255 * (pipeline.SampleRadius - abs(dx)) / pipeline.SampleRadius
		}
		c := b.RGBAAt(cx+dx, cy)
		test.ExpectSuccess(t, abs(int(c.R)-expected) <= 1, dx, c.R, expected)
		test.ExpectEquality(t, c.A, uint8(255), dx)

		// no spread vertically
		test.ExpectEquality(t, b.RGBAAt(cx+dx, cy-1), opaqueBlack, dx)
	}

	// vertical blur on the surface
	s, err := dev.ReadPixels(nil)
	test.DemandSuccess(t, err)

	// full strength at the centre
	test.ExpectEquality(t, s.RGBAAt(cx, cy), opaqueRed)

	// the halo band
	test.ExpectEquality(t, s.RGBAAt(cx, cy+1), opaqueWhite)
	test.ExpectEquality(t, s.RGBAAt(cx+6, cy), opaqueWhite)
	test.ExpectEquality(t, s.RGBAAt(cx-6, cy), opaqueWhite)
	test.ExpectEquality(t, s.RGBAAt(cx+10, cy-10), opaqueWhite)

	// below the halo band. a third of full strength
	test.ExpectEquality(t, s.RGBAAt(cx, cy+20), color.RGBA{R: 85, A: 255})
	test.ExpectEquality(t, s.RGBAAt(cx, cy-20), color.RGBA{R: 85, A: 255})
	test.ExpectEquality(t, s.RGBAAt(cx+20, cy), color.RGBA{R: 85, A: 255})

	// two thirds of a third
	test.ExpectEquality(t, s.RGBAAt(cx+20, cy+10), color.RGBA{R: 57, A: 255})

	// beyond the radius
	test.ExpectEquality(t, s.RGBAAt(cx+pipeline.SampleRadius, cy), opaqueBlack)
	test.ExpectEquality(t, s.RGBAAt(cx, cy-pipeline.SampleRadius), opaqueBlack)
	test.ExpectEquality(t, s.RGBAAt(cx+pipeline.SampleRadius, cy+pipeline.SampleRadius), opaqueBlack)
	test.ExpectEquality(t, s.RGBAAt(0, 0), opaqueBlack)

	// raw mode shows the threshold pass only
	sel.mode = pipeline.RawThreshold
	test.ExpectSuccess(t, drv.RenderFrame())
	s, err = dev.ReadPixels(nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.RGBAAt(cx, cy), opaqueRed)
	test.ExpectEquality(t, s.RGBAAt(cx, cy+1), opaqueBlack)
	test.ExpectEquality(t, s.RGBAAt(cx+6, cy), opaqueBlack)
}

func TestRenderPass(t *testing.T) {
	drv, dev := runningDriver(t, singlePixelImage(), pipeline.FixedMode(pipeline.Pipeline))
	defer drv.Destroy()

	// the result of the horizontal blur on the surface
	test.ExpectSuccess(t, drv.RenderPass(pipeline.HorizontalBlur))
	s, err := dev.ReadPixels(nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.RGBAAt(cx, cy), opaqueRed)
	test.ExpectEquality(t, s.RGBAAt(cx+20, cy), color.RGBA{R: 85, A: 255})
	test.ExpectEquality(t, s.RGBAAt(cx, cy+1), opaqueBlack)

	err = drv.RenderPass(pipeline.NumPasses)
	test.ExpectSuccess(t, curated.Is(err, pipeline.FrameFatal))
}

func TestImageOrientation(t *testing.T) {
	// an image smaller than the targets with a foreground pixel in the top
	// left corner
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	img.Set(0, 0, color.Black)

	drv, dev := runningDriver(t, img, pipeline.FixedMode(pipeline.RawThreshold))
	defer drv.Destroy()

	test.ExpectSuccess(t, drv.RenderFrame())
	s, err := dev.ReadPixels(nil)
	test.DemandSuccess(t, err)

	// each source pixel covers a 192x192 block of the surface
	test.ExpectEquality(t, s.RGBAAt(0, 0), opaqueRed)
	test.ExpectEquality(t, s.RGBAAt(191, 191), opaqueRed)
	test.ExpectEquality(t, s.RGBAAt(192, 0), opaqueBlack)
	test.ExpectEquality(t, s.RGBAAt(0, 192), opaqueBlack)
	test.ExpectEquality(t, s.RGBAAt(767, 767), opaqueBlack)
}

func TestTargets(t *testing.T) {
	dev := cpu.NewDevice(16, 16)
	dev.SetQuiet(true)

	targets, err := dev.AllocateTargets(2, 8)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(targets), 2)
	test.ExpectInequality(t, targets[0].ID(), targets[1].ID())
	test.ExpectEquality(t, targets[0].Texture().Bounds(), image.Rect(0, 0, 8, 8))

	// new targets are transparent black
	img, err := dev.ReadPixels(targets[0])
	test.DemandSuccess(t, err)
	expectUniform(t, img, color.RGBA{})

	// destroying a target twice is an error reported by Err()
	test.ExpectSuccess(t, dev.Err())
	targets[0].Destroy()
	test.ExpectSuccess(t, dev.Err())
	targets[0].Destroy()
	test.ExpectFailure(t, dev.Err())

	// the error is only reported once
	test.ExpectSuccess(t, dev.Err())

	// a destroyed target cannot be read
	_, err = dev.ReadPixels(targets[0])
	test.ExpectFailure(t, err)

	_, err = dev.AllocateTargets(1, 0)
	test.ExpectFailure(t, err)
}

func TestCompileProgram(t *testing.T) {
	dev := cpu.NewDevice(16, 16)

	_, err := dev.CompileProgram(pipeline.Threshold, "void main() {}", "void main() {}")
	test.ExpectSuccess(t, err)

	_, err = dev.CompileProgram(pipeline.Threshold, "", "void main() {}")
	test.ExpectFailure(t, err)

	_, err = dev.CompileProgram(pipeline.NumPasses, "void main() {}", "void main() {}")
	test.ExpectFailure(t, err)
}

func TestGeometry(t *testing.T) {
	dev := cpu.NewDevice(16, 16)

	geom, err := dev.CreateGeometry(pipeline.NewQuad())
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, geom.Count(), 6)

	// indices must describe a list of triangles
	quad := pipeline.NewQuad()
	quad.Indices = quad.Indices[:4]
	_, err = dev.CreateGeometry(quad)
	test.ExpectFailure(t, err)

	quad.Indices = nil
	_, err = dev.CreateGeometry(quad)
	test.ExpectFailure(t, err)

	// index out of range
	quad = pipeline.NewQuad()
	quad.Indices = []uint16{0, 1, 4}
	_, err = dev.CreateGeometry(quad)
	test.ExpectFailure(t, err)
}

func TestFeedback(t *testing.T) {
	dev := cpu.NewDevice(16, 16)
	dev.SetQuiet(true)

	prog, err := dev.CompileProgram(pipeline.HorizontalBlur, "void main() {}", "void main() {}")
	test.DemandSuccess(t, err)
	geom, err := dev.CreateGeometry(pipeline.NewQuad())
	test.DemandSuccess(t, err)
	targets, err := dev.AllocateTargets(1, 16)
	test.DemandSuccess(t, err)

	// the device refuses to read and write the same texture
	err = dev.Execute(prog, targets[0].Texture(), targets[0], geom, pipeline.NewTransform())
	test.ExpectFailure(t, err)
}
