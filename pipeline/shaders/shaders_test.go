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

package shaders_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/glowmask/pipeline/shaders"
	"github.com/jetsetilly/glowmask/test"
)

func TestAssemble(t *testing.T) {
	defs := shaders.Definitions{
		Dimension:    768,
		SampleRadius: 30,
		Threshold:    1.71,
		HaloLow:      0.4,
		HaloHigh:     1.0,
	}

	s := shaders.Assemble(shaders.VerticalBlurFragment, defs)
	lines := strings.Split(s, "\n")

	// the version directive must be the first line
	test.ExpectEquality(t, lines[0], shaders.Version)
	test.ExpectEquality(t, lines[1], "#define DIMENSION 768.0")
	test.ExpectEquality(t, lines[2], "#define SAMPLE_RADIUS 30")
	test.ExpectEquality(t, lines[3], "#define THRESHOLD 1.710000")
	test.ExpectEquality(t, lines[4], "#define HALO_LOW 0.400000")
	test.ExpectEquality(t, lines[5], "#define HALO_HIGH 1.000000")
	test.ExpectEquality(t, lines[6], "#line 1")
	test.ExpectSuccess(t, strings.HasSuffix(s, shaders.VerticalBlurFragment))
}

func TestSources(t *testing.T) {
	test.ExpectSuccess(t, strings.Contains(shaders.Vertex, shaders.AttribVertexPosition))
	test.ExpectSuccess(t, strings.Contains(shaders.Vertex, shaders.AttribTextureCoord))
	test.ExpectSuccess(t, strings.Contains(shaders.Vertex, shaders.UniformProjection))
	test.ExpectSuccess(t, strings.Contains(shaders.Vertex, shaders.UniformModelView))

	for _, f := range []string{shaders.ThresholdFragment, shaders.HorizontalBlurFragment, shaders.VerticalBlurFragment} {
		test.ExpectSuccess(t, strings.Contains(f, shaders.UniformSampler))
		test.ExpectSuccess(t, strings.Contains(f, shaders.FragmentOutput))

		// the version directive is added by Assemble()
		test.ExpectFailure(t, strings.Contains(f, "#version"))
	}

	test.ExpectSuccess(t, strings.Contains(shaders.ThresholdFragment, "THRESHOLD"))
	test.ExpectSuccess(t, strings.Contains(shaders.VerticalBlurFragment, "HALO_LOW"))
	test.ExpectFailure(t, strings.Contains(shaders.HorizontalBlurFragment, "HALO_LOW"))
}
