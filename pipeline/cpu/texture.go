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
	"image"

	"github.com/chewxy/math32"

	"github.com/jetsetilly/glowmask/pipeline"
)

// texture is the storage for both source textures and target textures.
// pixels are stored with the first row being the bottom of the texture.
type texture struct {
	dev       *Device
	pix       *image.NRGBA
	destroyed bool
}

func newTexture(dev *Device, width int, height int) *texture {
	return &texture{
		dev: dev,
		pix: image.NewNRGBA(image.Rect(0, 0, width, height)),
	}
}

// Destroy implements the pipeline.Resource interface.
func (tex *texture) Destroy() {
	if tex.destroyed {
		tex.dev.setErr("texture destroyed twice")
		return
	}
	tex.destroyed = true
	tex.pix = nil
}

// Bounds implements the pipeline.Texture interface.
func (tex *texture) Bounds() image.Rectangle {
	if tex.pix == nil {
		return image.Rectangle{}
	}
	return tex.pix.Bounds()
}

// upload copies the image into the texture, reversing the order of the rows.
// the texture is resized to match the image.
func (tex *texture) upload(img image.Image) {
	tex.pix = pipeline.StraightRGBA(img)
}

// texel returns the colour of the texel at the coordinates. coordinates
// outside the texture are clamped to the edge.
func (tex *texture) texel(x int, y int) [4]float32 {
	b := tex.pix.Bounds()
	x = min(max(x, 0), b.Dx()-1)
	y = min(max(y, 0), b.Dy()-1)
	i := tex.pix.PixOffset(x, y)
	p := tex.pix.Pix[i : i+4 : i+4]
	return [4]float32{
		float32(p[0]) / 255.0,
		float32(p[1]) / 255.0,
		float32(p[2]) / 255.0,
		float32(p[3]) / 255.0,
	}
}

// sample the texture at the normalised texture coordinates with nearest
// filtering.
func (tex *texture) sample(u float32, v float32) [4]float32 {
	b := tex.pix.Bounds()
	x := int(math32.Floor(u * float32(b.Dx())))
	y := int(math32.Floor(v * float32(b.Dy())))
	return tex.texel(x, y)
}

// set the texel to the colour. channel values are clamped to the range 0 to
// 1 and rounded to the nearest eighth bit value.
func (tex *texture) set(x int, y int, c [4]float32) {
	i := tex.pix.PixOffset(x, y)
	p := tex.pix.Pix[i : i+4 : i+4]
	for j := range c {
		p[j] = uint8(math32.Round(math32.Min(math32.Max(c[j], 0.0), 1.0) * 255.0))
	}
}

// rgba returns a copy of the texture as an image.RGBA with the first row
// being the top of the texture. every texel in a target has an alpha of one
// or is transparent black so the bytes do not need converting.
func (tex *texture) rgba() *image.RGBA {
	b := tex.pix.Bounds()
	img := image.NewRGBA(b)
	pipeline.FlipRows(img.Pix, tex.pix.Pix, tex.pix.Stride, b.Dy())
	return img
}
