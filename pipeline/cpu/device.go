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

package cpu

import (
	"fmt"
	"image"
	"runtime"
	"strings"
	"sync"

	"github.com/jetsetilly/glowmask/curated"
	"github.com/jetsetilly/glowmask/logger"
	"github.com/jetsetilly/glowmask/pipeline"
	"golang.org/x/sync/errgroup"
)

// Device is a software implementation of the pipeline.Device interface.
type Device struct {
	surface *texture

	// the number of targets allocated. used for target IDs
	numTargets int

	// the first error reported by Destroy() functions. reset by Err()
	crit sync.Mutex
	err  error

	// the number of goroutines used to shade the rows of a pass
	workers int

	// whether the device should create log entries
	quiet bool
}

// NewDevice is the preferred method of initialisation for the Device type.
// The surface is created with the width and height.
func NewDevice(width int, height int) *Device {
	dev := &Device{
		workers: runtime.NumCPU(),
	}
	dev.surface = newTexture(dev, width, height)
	return dev
}

// SetQuiet stops the device from creating log entries.
func (dev *Device) SetQuiet(quiet bool) {
	dev.quiet = quiet
}

// AllowLogging implements the logger.Permission interface.
func (dev *Device) AllowLogging() bool {
	return !dev.quiet
}

func (dev *Device) setErr(detail string) {
	dev.crit.Lock()
	defer dev.crit.Unlock()
	if dev.err == nil {
		dev.err = curated.Errorf("cpu: %v", detail)
	}
}

// Err implements the pipeline.Device interface.
func (dev *Device) Err() error {
	dev.crit.Lock()
	defer dev.crit.Unlock()
	err := dev.err
	dev.err = nil
	return err
}

type program struct {
	dev       *Device
	pass      pipeline.Pass
	destroyed bool
}

func (prog *program) Destroy() {
	if prog.destroyed {
		prog.dev.setErr("program destroyed twice")
	}
	prog.destroyed = true
}

func (prog *program) Pass() pipeline.Pass {
	return prog.pass
}

// CompileProgram implements the pipeline.Device interface. The sources are
// not compiled but they are checked for an entry point.
func (dev *Device) CompileProgram(pass pipeline.Pass, vertex string, fragment string) (pipeline.Program, error) {
	if pass < pipeline.Threshold || pass >= pipeline.NumPasses {
		return nil, curated.Errorf("cpu: compile: %v", pass)
	}
	if !strings.Contains(vertex, "void main") {
		return nil, curated.Errorf("cpu: compile: %v", "vertex source has no main()")
	}
	if !strings.Contains(fragment, "void main") {
		return nil, curated.Errorf("cpu: compile: %v", "fragment source has no main()")
	}
	return &program{dev: dev, pass: pass}, nil
}

type geometry struct {
	dev       *Device
	quad      pipeline.Quad
	destroyed bool
}

func (geom *geometry) Destroy() {
	if geom.destroyed {
		geom.dev.setErr("geometry destroyed twice")
	}
	geom.destroyed = true
}

func (geom *geometry) Count() int {
	return len(geom.quad.Indices)
}

// CreateGeometry implements the pipeline.Device interface.
func (dev *Device) CreateGeometry(quad pipeline.Quad) (pipeline.Geometry, error) {
	if quad.NumVertices() < 3 || len(quad.TexCoords) != quad.NumVertices()*2 {
		return nil, curated.Errorf("cpu: geometry: %v", "mismatched vertex data")
	}
	for _, i := range quad.Indices {
		if int(i) >= quad.NumVertices() {
			return nil, curated.Errorf("cpu: geometry: %v", fmt.Sprintf("index out of range (%d)", i))
		}
	}
	geom := &geometry{dev: dev, quad: quad}
	if geom.Count() == 0 || geom.Count()%3 != 0 {
		return nil, curated.Errorf("cpu: geometry: %v", fmt.Sprintf("not a triangle list (%d indices)", geom.Count()))
	}
	return geom, nil
}

type target struct {
	id  int
	tex *texture
}

func (t *target) Destroy() {
	t.tex.Destroy()
}

func (t *target) ID() int {
	return t.id
}

func (t *target) Texture() pipeline.Texture {
	return t.tex
}

// AllocateTargets implements the pipeline.Device interface.
func (dev *Device) AllocateTargets(count int, dimension int) ([]pipeline.Target, error) {
	if dimension <= 0 {
		return nil, curated.Errorf("cpu: allocate: %v", fmt.Sprintf("invalid dimension (%d)", dimension))
	}

	targets := make([]pipeline.Target, count)
	for i := range targets {
		targets[i] = &target{
			id:  dev.numTargets,
			tex: newTexture(dev, dimension, dimension),
		}
		dev.numTargets++
	}

	logger.Logf(dev, "cpu", "allocated %d targets (%dx%d)", count, dimension, dimension)

	return targets, nil
}

// CreateTexture implements the pipeline.Device interface.
func (dev *Device) CreateTexture(img image.Image) (pipeline.Texture, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, curated.Errorf("cpu: texture: %v", "empty image")
	}
	tex := &texture{dev: dev}
	tex.upload(img)
	return tex, nil
}

// UpdateTexture implements the pipeline.Device interface.
func (dev *Device) UpdateTexture(t pipeline.Texture, img image.Image) error {
	tex, ok := t.(*texture)
	if !ok || tex.destroyed {
		return curated.Errorf("cpu: texture: %v", "not a valid texture")
	}
	if img == nil || img.Bounds().Empty() {
		return curated.Errorf("cpu: texture: %v", "empty image")
	}
	tex.upload(img)
	return nil
}

// ReadPixels implements the pipeline.Device interface.
func (dev *Device) ReadPixels(t pipeline.Target) (*image.RGBA, error) {
	if t == nil {
		return dev.surface.rgba(), nil
	}
	tgt, ok := t.(*target)
	if !ok || tgt.tex.destroyed {
		return nil, curated.Errorf("cpu: read: %v", "not a valid target")
	}
	return tgt.tex.rgba(), nil
}

// Execute implements the pipeline.Device interface.
func (dev *Device) Execute(p pipeline.Program, s pipeline.Texture, d pipeline.Target, g pipeline.Geometry, xf pipeline.Transform) error {
	prog, ok := p.(*program)
	if !ok || prog.destroyed {
		return curated.Errorf("cpu: execute: %v", "not a valid program")
	}
	src, ok := s.(*texture)
	if !ok || src.destroyed {
		return curated.Errorf("cpu: execute: %v", "not a valid source texture")
	}
	geom, ok := g.(*geometry)
	if !ok || geom.destroyed {
		return curated.Errorf("cpu: execute: %v", "not valid geometry")
	}

	dest := dev.surface
	if d != nil {
		tgt, ok := d.(*target)
		if !ok || tgt.tex.destroyed {
			return curated.Errorf("cpu: execute: %v", "not a valid destination")
		}
		dest = tgt.tex
	}

	if dest == src {
		return curated.Errorf("cpu: execute: %v", "source and destination are the same texture")
	}

	rect, err := project(geom.quad, xf)
	if err != nil {
		return curated.Errorf("cpu: execute: %v", err)
	}

	return dev.shade(kernels[prog.pass], src, dest, rect)
}

// shade every texel of the destination covered by the rectangle.
func (dev *Device) shade(k kernel, src *texture, dest *texture, rect rectangle) error {
	b := dest.pix.Bounds()
	width := float32(b.Dx())
	height := float32(b.Dy())

	var g errgroup.Group
	g.SetLimit(dev.workers)

	for y := 0; y < b.Dy(); y++ {
		y := y
		g.Go(func() error {
			// centre of the texel in normalised device coordinates
			ndcY := (float32(y)+0.5)/height*2.0 - 1.0
			if !rect.coversY(ndcY) {
				return nil
			}
			for x := 0; x < b.Dx(); x++ {
				ndcX := (float32(x)+0.5)/width*2.0 - 1.0
				if !rect.coversX(ndcX) {
					continue
				}
				u, v := rect.texCoord(ndcX, ndcY)
				dest.set(x, y, k(src, u, v))
			}
			return nil
		})
	}

	return g.Wait()
}
