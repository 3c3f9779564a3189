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
	"github.com/chewxy/math32"

	"github.com/jetsetilly/glowmask/pipeline"
)

// the colours output by the threshold pass.
var (
	foreground = [4]float32{1.0, 0.0, 0.0, 1.0}
	background = [4]float32{0.0, 0.0, 0.0, 1.0}
	halo       = [4]float32{1.0, 1.0, 1.0, 1.0}
)

// kernel is the per-texel function of a pass. u and v are the coordinates of
// the texel in the source texture.
type kernel func(src *texture, u float32, v float32) [4]float32

var kernels = [pipeline.NumPasses]kernel{
	pipeline.Threshold:      thresholdKernel,
	pipeline.HorizontalBlur: horizontalBlurKernel,
	pipeline.VerticalBlur:   verticalBlurKernel,
}

// threshold classifies the colour as foreground or background. the colour is
// blended towards white by its alpha value before the classification.
func threshold(c [4]float32) [4]float32 {
	a := c[3]
	r := c[0]*a + (1.0 - a)
	g := c[1]*a + (1.0 - a)
	b := c[2]*a + (1.0 - a)
	if math32.Sqrt(r*r+g*g+b*b) < pipeline.ThresholdLength {
		return foreground
	}
	return background
}

func thresholdKernel(src *texture, u float32, v float32) [4]float32 {
	return threshold(src.sample(u, v))
}

// blur is the directional max-filter over the red channel. du and dv give
// the direction of the filter and must have a length of one.
func blur(src *texture, u float32, v float32, du float32, dv float32) float32 {
	const texel = float32(1.0) / pipeline.Dimension
	const limit = texel * pipeline.SampleRadius

	sum := src.sample(u, v)[0]
	for k := 1; k < pipeline.SampleRadius; k++ {
		i := float32(k) * texel
		weight := 1.0 - (i / limit)
		a := src.sample(u+i*du, v+i*dv)
		b := src.sample(u-i*du, v-i*dv)
		sum = math32.Max(sum, a[0]*weight)
		sum = math32.Max(sum, b[0]*weight)
	}

	return sum
}

func horizontalBlurKernel(src *texture, u float32, v float32) [4]float32 {
	return [4]float32{blur(src, u, v, 1.0, 0.0), 0.0, 0.0, 1.0}
}

func verticalBlurKernel(src *texture, u float32, v float32) [4]float32 {
	sum := blur(src, u, v, 0.0, 1.0)
	if sum > pipeline.HaloLow && sum < pipeline.HaloHigh {
		return halo
	}
	return [4]float32{sum, 0.0, 0.0, 1.0}
}
