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

package opengl

import (
	"fmt"
	"image"
	"strings"

	"github.com/go-gl/gl/v3.2-core/gl"

	"github.com/jetsetilly/glowmask/curated"
	"github.com/jetsetilly/glowmask/logger"
	"github.com/jetsetilly/glowmask/pipeline"
	"github.com/jetsetilly/glowmask/pipeline/opengl/framebuffer"
)

// Device is the OpenGL implementation of the pipeline.Device interface.
type Device struct {
	// size of the default framebuffer
	surfaceWidth  int32
	surfaceHeight int32

	// offscreen targets are allocated from sequences
	sequences []*framebuffer.Sequence
}

// NewDevice initialises the OpenGL bindings. An OpenGL context must be
// current on the calling thread. Errors are curated SetupFatal errors.
func NewDevice() (*Device, error) {
	if err := gl.Init(); err != nil {
		return nil, curated.Errorf(pipeline.SetupFatal, curated.Errorf("opengl: %v", err))
	}

	logger.Logf(logger.Allow, "opengl", "version: %s", gl.GoStr(gl.GetString(gl.VERSION)))
	logger.Logf(logger.Allow, "opengl", "renderer: %s", gl.GoStr(gl.GetString(gl.RENDERER)))
	logger.Logf(logger.Allow, "opengl", "glsl: %s", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)))

	return &Device{}, nil
}

// SetSurfaceSize must be called whenever the size of the default
// framebuffer changes.
func (dev *Device) SetSurfaceSize(width int32, height int32) {
	dev.surfaceWidth = width
	dev.surfaceHeight = height
}

// Destroy resources that were not destroyed through the pipeline.Resource
// interface.
func (dev *Device) Destroy() {
	for _, seq := range dev.sequences {
		seq.Destroy()
	}
	dev.sequences = nil
}

// Err implements the pipeline.Device interface. All pending OpenGL errors
// are collected into one error.
func (dev *Device) Err() error {
	var codes []string
	for e := gl.GetError(); e != gl.NO_ERROR; e = gl.GetError() {
		codes = append(codes, glErrorString(e))
	}
	if len(codes) == 0 {
		return nil
	}
	return curated.Errorf("opengl: %v", strings.Join(codes, ", "))
}

func glErrorString(e uint32) string {
	switch e {
	case gl.INVALID_ENUM:
		return "invalid enum"
	case gl.INVALID_VALUE:
		return "invalid value"
	case gl.INVALID_OPERATION:
		return "invalid operation"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "invalid framebuffer operation"
	case gl.OUT_OF_MEMORY:
		return "out of memory"
	}
	return fmt.Sprintf("error %#04x", e)
}

type geometry struct {
	vao       uint32
	positions uint32
	texCoords uint32
	elements  uint32
	count     int32
}

func (geom *geometry) Destroy() {
	if geom.vao == 0 {
		return
	}
	buffers := []uint32{geom.positions, geom.texCoords, geom.elements}
	gl.DeleteBuffers(int32(len(buffers)), &buffers[0])
	gl.DeleteVertexArrays(1, &geom.vao)
	geom.vao = 0
}

func (geom *geometry) Count() int {
	return int(geom.count)
}

// CreateGeometry implements the pipeline.Device interface.
func (dev *Device) CreateGeometry(quad pipeline.Quad) (pipeline.Geometry, error) {
	geom := &geometry{
		count: int32(len(quad.Indices)),
	}

	gl.GenVertexArrays(1, &geom.vao)
	gl.BindVertexArray(geom.vao)
	defer gl.BindVertexArray(0)

	gl.GenBuffers(1, &geom.positions)
	gl.BindBuffer(gl.ARRAY_BUFFER, geom.positions)
	gl.BufferData(gl.ARRAY_BUFFER, len(quad.Positions)*4, gl.Ptr(quad.Positions), gl.STATIC_DRAW)

	gl.GenBuffers(1, &geom.texCoords)
	gl.BindBuffer(gl.ARRAY_BUFFER, geom.texCoords)
	gl.BufferData(gl.ARRAY_BUFFER, len(quad.TexCoords)*4, gl.Ptr(quad.TexCoords), gl.STATIC_DRAW)

	gl.GenBuffers(1, &geom.elements)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, geom.elements)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(quad.Indices)*2, gl.Ptr(quad.Indices), gl.STATIC_DRAW)

	if err := dev.Err(); err != nil {
		geom.Destroy()
		return nil, err
	}

	return geom, nil
}

type texture struct {
	id     uint32
	bounds image.Rectangle

	// targets textures are owned by the sequence
	owned bool
}

func (tex *texture) Destroy() {
	if tex.owned && tex.id != 0 {
		gl.DeleteTextures(1, &tex.id)
	}
	tex.id = 0
}

func (tex *texture) Bounds() image.Rectangle {
	return tex.bounds
}

// upload the image to the texture. the rows are reversed so that the first
// row of the image is the top of the texture.
func (tex *texture) upload(img image.Image) {
	pix := pipeline.StraightRGBA(img)
	b := pix.Bounds()

	gl.BindTexture(gl.TEXTURE_2D, tex.id)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	gl.TexImage2D(gl.TEXTURE_2D, 0,
		gl.RGBA8, int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE,
		gl.Ptr(pix.Pix))

	tex.bounds = b
}


// CreateTexture implements the pipeline.Device interface.
func (dev *Device) CreateTexture(img image.Image) (pipeline.Texture, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, curated.Errorf("opengl: texture: %v", "empty image")
	}

	tex := &texture{owned: true}
	gl.GenTextures(1, &tex.id)
	gl.BindTexture(gl.TEXTURE_2D, tex.id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAX_LEVEL, 0)
	tex.upload(img)

	if err := dev.Err(); err != nil {
		tex.Destroy()
		return nil, err
	}

	return tex, nil
}

// UpdateTexture implements the pipeline.Device interface.
func (dev *Device) UpdateTexture(t pipeline.Texture, img image.Image) error {
	tex, ok := t.(*texture)
	if !ok || tex.id == 0 {
		return curated.Errorf("opengl: texture: %v", "not a valid texture")
	}
	if img == nil || img.Bounds().Empty() {
		return curated.Errorf("opengl: texture: %v", "empty image")
	}
	tex.upload(img)
	return dev.Err()
}

type target struct {
	id  int
	seq *framebuffer.Sequence
	idx int
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
	seq := framebuffer.NewSequence(count)
	if err := seq.Setup(int32(dimension), int32(dimension)); err != nil {
		seq.Destroy()
		return nil, curated.Errorf("opengl: %v", err)
	}
	for i := 0; i < seq.Len(); i++ {
		seq.Clear(i)
	}
	if err := dev.Err(); err != nil {
		seq.Destroy()
		return nil, err
	}
	dev.sequences = append(dev.sequences, seq)

	// target IDs are unique across all sequences
	base := 0
	for _, s := range dev.sequences[:len(dev.sequences)-1] {
		base += s.Len()
	}

	targets := make([]pipeline.Target, count)
	for i := range targets {
		targets[i] = &target{
			id:  base + i,
			seq: seq,
			idx: i,
			tex: &texture{
				id:     seq.Texture(i),
				bounds: image.Rect(0, 0, dimension, dimension),
			},
		}
	}

	logger.Logf(logger.Allow, "opengl", "allocated %d targets (%dx%d)", count, dimension, dimension)

	return targets, nil
}

// bind the destination for drawing. a nil target binds the default
// framebuffer.
func (dev *Device) bind(t *target) {
	if t == nil {
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
		gl.Viewport(0, 0, dev.surfaceWidth, dev.surfaceHeight)
		return
	}
	t.seq.Bind(t.idx)
}

// Execute implements the pipeline.Device interface.
func (dev *Device) Execute(p pipeline.Program, s pipeline.Texture, d pipeline.Target, g pipeline.Geometry, xf pipeline.Transform) error {
	prog, ok := p.(*program)
	if !ok || prog.handle == 0 {
		return curated.Errorf("opengl: execute: %v", "not a valid program")
	}
	src, ok := s.(*texture)
	if !ok || src.id == 0 {
		return curated.Errorf("opengl: execute: %v", "not a valid source texture")
	}
	geom, ok := g.(*geometry)
	if !ok || geom.vao == 0 {
		return curated.Errorf("opengl: execute: %v", "not valid geometry")
	}

	var dest *target
	if d != nil {
		dest, ok = d.(*target)
		if !ok || dest.tex.id == 0 {
			return curated.Errorf("opengl: execute: %v", "not a valid destination")
		}
	}

	dev.bind(dest)

	gl.Disable(gl.BLEND)
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.SCISSOR_TEST)
	gl.Disable(gl.CULL_FACE)

	gl.UseProgram(prog.handle)
	gl.UniformMatrix4fv(prog.projection, 1, false, &xf.Projection[0])
	gl.UniformMatrix4fv(prog.modelView, 1, false, &xf.ModelView[0])

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, src.id)
	gl.BindSampler(0, 0)
	gl.Uniform1i(prog.sampler, 0)

	gl.BindVertexArray(geom.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, geom.positions)
	gl.EnableVertexAttribArray(uint32(prog.position))
	gl.VertexAttribPointerWithOffset(uint32(prog.position), 3, gl.FLOAT, false, 0, 0)

	gl.BindBuffer(gl.ARRAY_BUFFER, geom.texCoords)
	gl.EnableVertexAttribArray(uint32(prog.texCoord))
	gl.VertexAttribPointerWithOffset(uint32(prog.texCoord), 2, gl.FLOAT, false, 0, 0)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, geom.elements)
	gl.DrawElementsWithOffset(gl.TRIANGLES, int32(geom.Count()), gl.UNSIGNED_SHORT, 0)

	gl.BindVertexArray(0)

	return nil
}

// ReadPixels implements the pipeline.Device interface.
func (dev *Device) ReadPixels(t pipeline.Target) (*image.RGBA, error) {
	var raw *image.RGBA

	if t == nil {
		raw = image.NewRGBA(image.Rect(0, 0, int(dev.surfaceWidth), int(dev.surfaceHeight)))
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
		gl.ReadBuffer(gl.BACK)
		gl.PixelStorei(gl.PACK_ALIGNMENT, 4)
		gl.ReadPixels(0, 0, dev.surfaceWidth, dev.surfaceHeight, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(raw.Pix))
	} else {
		tgt, ok := t.(*target)
		if !ok || tgt.tex.id == 0 {
			return nil, curated.Errorf("opengl: read: %v", "not a valid target")
		}
		raw = tgt.seq.Read(tgt.idx)
	}

	if err := dev.Err(); err != nil {
		return nil, err
	}

	img := image.NewRGBA(raw.Bounds())
	pipeline.FlipRows(img.Pix, raw.Pix, raw.Stride, raw.Bounds().Dy())
	return img, nil
}
