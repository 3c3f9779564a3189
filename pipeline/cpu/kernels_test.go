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
	"image/color"
	"math/rand"
	"testing"

	"github.com/jetsetilly/glowmask/pipeline"
	"github.com/jetsetilly/glowmask/test"
)

func TestThreshold(t *testing.T) {
	// white is background because its length is sqrt(3)
	test.ExpectEquality(t, threshold([4]float32{1, 1, 1, 1}), background)

	// black is foreground
	test.ExpectEquality(t, threshold([4]float32{0, 0, 0, 1}), foreground)

	// either side of the threshold length. 0.98 * sqrt(3) is 1.697 and 0.99 *
	// sqrt(3) is 1.715
	test.ExpectEquality(t, threshold([4]float32{0.98, 0.98, 0.98, 1}), foreground)
	test.ExpectEquality(t, threshold([4]float32{0.99, 0.99, 0.99, 1}), background)

	// a single dark channel is enough
	test.ExpectEquality(t, threshold([4]float32{1, 1, 0.5, 1}), foreground)

	// fully transparent pixels are blended to white whatever the colour
	test.ExpectEquality(t, threshold([4]float32{0, 0, 0, 0}), background)

	// half transparent black is blended to mid grey
	test.ExpectEquality(t, threshold([4]float32{0, 0, 0, 0.5}), foreground)
}

func TestThresholdOpaque(t *testing.T) {
	// for opaque colours the classification depends only on the length of
	// the RGB vector
	for i := 0; i < 1000; i++ {
		c := [4]float32{rand.Float32(), rand.Float32(), rand.Float32(), 1}
		l := c[0]*c[0] + c[1]*c[1] + c[2]*c[2]
		if l < pipeline.ThresholdLength*pipeline.ThresholdLength {
			test.ExpectEquality(t, threshold(c), foreground, c)
		} else {
			test.ExpectEquality(t, threshold(c), background, c)
		}
	}
}

// fieldTexture returns a target sized texture with every texel having the
// red value.
func fieldTexture(red uint8) *texture {
	tex := newTexture(nil, pipeline.Dimension, pipeline.Dimension)
	for i := 0; i < len(tex.pix.Pix); i += 4 {
		tex.pix.Pix[i] = red
		tex.pix.Pix[i+3] = 255
	}
	return tex
}

// centre of the texel in texture coordinates.
func centre(x int, y int) (float32, float32) {
	return (float32(x) + 0.5) / pipeline.Dimension, (float32(y) + 0.5) / pipeline.Dimension
}

func TestBlurUniformField(t *testing.T) {
	for _, red := range []uint8{0, 1, 100, 128, 254, 255} {
		tex := fieldTexture(red)
		for _, p := range [][2]int{{0, 0}, {10, 700}, {384, 384}, {767, 767}} {
			u, v := centre(p[0], p[1])
			h := horizontalBlurKernel(tex, u, v)
			test.ExpectApproximate(t, h[0], float32(red)/255.0, 0.0001, red, p)
			w := blur(tex, u, v, 0, 1)
			test.ExpectApproximate(t, w, float32(red)/255.0, 0.0001, red, p)
		}
	}
}

func TestBlurMonotonic(t *testing.T) {
	// random mask
	tex := newTexture(nil, pipeline.Dimension, pipeline.Dimension)
	for i := 0; i < len(tex.pix.Pix); i += 4 {
		tex.pix.Pix[i] = uint8(rand.Intn(256))
		tex.pix.Pix[i+3] = 255
	}

	for i := 0; i < 500; i++ {
		x := rand.Intn(pipeline.Dimension)
		y := rand.Intn(pipeline.Dimension)
		u, v := centre(x, y)
		before := tex.texel(x, y)[0]
		test.ExpectSuccess(t, blur(tex, u, v, 1, 0) >= before)
		test.ExpectSuccess(t, blur(tex, u, v, 0, 1) >= before)
	}
}

func TestBlurDecay(t *testing.T) {
	tex := fieldTexture(0)
	tex.set(100, 200, foreground)

	// linear decay along the axis of the filter
	for k := 0; k < pipeline.SampleRadius; k++ {
		expected := 1.0 - float32(k)/pipeline.SampleRadius
		u, v := centre(100+k, 200)
		test.ExpectApproximate(t, blur(tex, u, v, 1, 0), expected, 0.0001, k)
		u, v = centre(100-k, 200)
		test.ExpectApproximate(t, blur(tex, u, v, 1, 0), expected, 0.0001, k)
	}

	// nothing at or beyond the sample radius
	u, v := centre(100+pipeline.SampleRadius, 200)
	test.ExpectEquality(t, blur(tex, u, v, 1, 0), 0.0)
	u, v = centre(100-pipeline.SampleRadius-10, 200)
	test.ExpectEquality(t, blur(tex, u, v, 1, 0), 0.0)

	// nothing perpendicular to the axis of the filter
	u, v = centre(100, 201)
	test.ExpectEquality(t, blur(tex, u, v, 1, 0), 0.0)
}

func TestBlurClampToEdge(t *testing.T) {
	tex := fieldTexture(0)
	tex.set(0, 10, foreground)

	// the edge texel is repeated so the texel next to the edge sees the
	// foreground texel at distance one on both sides
	u, v := centre(1, 10)
	test.ExpectApproximate(t, blur(tex, u, v, 1, 0), 1.0-1.0/pipeline.SampleRadius, 0.0001)

	// the edge texel itself is unchanged
	u, v = centre(0, 10)
	test.ExpectApproximate(t, blur(tex, u, v, 1, 0), 1.0, 0.0001)

	// sampling well outside the texture returns the edge texel
	test.ExpectEquality(t, tex.sample(-0.5, v), foreground)
	test.ExpectEquality(t, tex.sample(1.5, v), background)
}

func TestHaloBand(t *testing.T) {
	// uniform fields go through the vertical kernel unchanged unless they are
	// in the halo band
	for _, c := range []struct {
		red      uint8
		expected [4]float32
	}{
		{red: 0, expected: [4]float32{0, 0, 0, 1}},
		{red: 101, expected: [4]float32{101.0 / 255.0, 0, 0, 1}},
		{red: 103, expected: halo},
		{red: 200, expected: halo},
		{red: 254, expected: halo},
		{red: 255, expected: foreground},
	} {
		tex := fieldTexture(c.red)
		u, v := centre(300, 300)
		r := verticalBlurKernel(tex, u, v)
		for i := range r {
			test.ExpectApproximate(t, r[i], c.expected[i], 0.0001, c.red, i)
		}
	}
}

func TestTextureUpload(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 3))
	img.SetNRGBA(0, 0, color.NRGBA{R: 10, A: 255})
	img.SetNRGBA(1, 2, color.NRGBA{G: 20, A: 128})

	tex := &texture{}
	tex.upload(img)

	// the first row of the image is the last row of the texture
	test.ExpectEquality(t, tex.pix.NRGBAAt(0, 2), color.NRGBA{R: 10, A: 255})
	test.ExpectEquality(t, tex.pix.NRGBAAt(1, 0), color.NRGBA{G: 20, A: 128})

	// and the readback is the right way up
	rgba := tex.rgba()
	test.ExpectEquality(t, rgba.Pix[0], uint8(10))
	test.ExpectEquality(t, rgba.Bounds(), img.Bounds())

	// an image with a non-zero origin
	sub := img.SubImage(image.Rect(1, 1, 2, 3))
	tex.upload(sub)
	test.ExpectEquality(t, tex.Bounds(), image.Rect(0, 0, 1, 2))
	test.ExpectEquality(t, tex.pix.NRGBAAt(0, 0), color.NRGBA{G: 20, A: 128})
}
