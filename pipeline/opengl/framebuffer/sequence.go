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

package framebuffer

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v3.2-core/gl"
)

// Sequence of textures, each with its own framebuffer object.
type Sequence struct {
	textures []uint32
	fbos     []uint32
	width    int32
	height   int32

	// empty pixels used by Clear()
	emptyPixels []uint8
}

// NewSequence is the preferred method of initialisation for the Sequence
// type.
func NewSequence(numTextures int) *Sequence {
	seq := &Sequence{
		textures: make([]uint32, numTextures),
		fbos:     make([]uint32, numTextures),
	}
	if numTextures > 0 {
		gl.GenFramebuffers(int32(numTextures), &seq.fbos[0])
	}
	return seq
}

// Destroy framebuffers and textures.
func (seq *Sequence) Destroy() {
	if len(seq.fbos) == 0 {
		return
	}
	gl.DeleteFramebuffers(int32(len(seq.fbos)), &seq.fbos[0])
	gl.DeleteTextures(int32(len(seq.textures)), &seq.textures[0])
	seq.fbos = nil
	seq.textures = nil
}

// Setup creates the textures and attaches them to the framebuffers. Setup()
// can only be called once. The previously bound framebuffer is restored
// before returning.
func (seq *Sequence) Setup(width int32, height int32) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("framebuffer: invalid dimensions (%dx%d)", width, height)
	}
	if seq.width != 0 || seq.height != 0 {
		return fmt.Errorf("framebuffer: sequence already setup")
	}

	var previous int32
	gl.GetIntegerv(gl.FRAMEBUFFER_BINDING, &previous)
	defer gl.BindFramebuffer(gl.FRAMEBUFFER, uint32(previous))

	seq.width = width
	seq.height = height
	seq.emptyPixels = make([]uint8, width*height*4)

	for i := range seq.textures {
		gl.GenTextures(1, &seq.textures[i])
		gl.BindTexture(gl.TEXTURE_2D, seq.textures[i])
		gl.TexImage2D(gl.TEXTURE_2D, 0,
			gl.RGBA8, seq.width, seq.height, 0,
			gl.RGBA, gl.UNSIGNED_BYTE,
			nil)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAX_LEVEL, 0)

		gl.BindFramebuffer(gl.FRAMEBUFFER, seq.fbos[i])
		gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, seq.textures[i], 0)

		if status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER); status != gl.FRAMEBUFFER_COMPLETE {
			return fmt.Errorf("framebuffer: %d is incomplete (%#04x)", i, status)
		}
	}

	return nil
}

// Len returns the number of textures in the sequence.
func (seq *Sequence) Len() int {
	return len(seq.textures)
}

// Texture returns the texture ID of the indexed texture.
func (seq *Sequence) Texture(idxTexture int) uint32 {
	return seq.textures[idxTexture]
}

// Bind the framebuffer of the indexed texture and set the viewport to cover
// the whole texture.
func (seq *Sequence) Bind(idxTexture int) uint32 {
	gl.BindFramebuffer(gl.FRAMEBUFFER, seq.fbos[idxTexture])
	gl.Viewport(0, 0, seq.width, seq.height)
	return seq.textures[idxTexture]
}

// Clear the indexed texture to transparent black.
func (seq *Sequence) Clear(idxTexture int) {
	gl.BindTexture(gl.TEXTURE_2D, seq.textures[idxTexture])
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0,
		seq.width, seq.height,
		gl.RGBA, gl.UNSIGNED_BYTE,
		gl.Ptr(seq.emptyPixels))
}

// Read the contents of the indexed texture. The rows of the returned image
// are in the order they are stored by OpenGL, with the first row being the
// bottom of the texture.
func (seq *Sequence) Read(idxTexture int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, int(seq.width), int(seq.height)))
	seq.Bind(idxTexture)
	gl.ReadPixels(0, 0, seq.width, seq.height, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	return img
}
