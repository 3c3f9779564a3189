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

package shaders

import (
	_ "embed"
	"fmt"
	"strings"
)

// Vertex is the vertex shader shared by every pass program.
//
//go:embed "quad.vert"
var Vertex string

// ThresholdFragment is the fragment shader of the threshold pass.
//
//go:embed "threshold.frag"
var ThresholdFragment string

// HorizontalBlurFragment is the fragment shader of the horizontal blur pass.
//
//go:embed "hblur.frag"
var HorizontalBlurFragment string

// VerticalBlurFragment is the fragment shader of the vertical blur pass.
//
//go:embed "vblur.frag"
var VerticalBlurFragment string

// Version is the GLSL version directive placed at the head of every
// assembled shader.
const Version = "#version 150 core"

// Names of the attributes and uniforms used by the shaders.
const (
	AttribVertexPosition = "VertexPosition"
	AttribTextureCoord   = "TextureCoord"
	UniformProjection    = "ProjectionMatrix"
	UniformModelView     = "ModelViewMatrix"
	UniformSampler       = "Sampler"
	FragmentOutput       = "FragColor"
)

// Definitions are the values injected into the shader sources as
// preprocessor definitions.
type Definitions struct {
	Dimension    int
	SampleRadius int
	Threshold    float32
	HaloLow      float32
	HaloHigh     float32
}

// header returns the preprocessor lines for the definitions.
func (defs Definitions) header() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("#define DIMENSION %d.0\n", defs.Dimension))
	s.WriteString(fmt.Sprintf("#define SAMPLE_RADIUS %d\n", defs.SampleRadius))
	s.WriteString(fmt.Sprintf("#define THRESHOLD %f\n", defs.Threshold))
	s.WriteString(fmt.Sprintf("#define HALO_LOW %f\n", defs.HaloLow))
	s.WriteString(fmt.Sprintf("#define HALO_HIGH %f\n", defs.HaloHigh))
	return s.String()
}

// Assemble prepares a shader source for compilation by adding the version
// directive and the definitions. Line numbers in compiler diagnostics will
// refer to lines in the original source.
func Assemble(source string, defs Definitions) string {
	s := strings.Builder{}
	s.WriteString(Version)
	s.WriteString("\n")
	s.WriteString(defs.header())
	s.WriteString("#line 1\n")
	s.WriteString(source)
	return s.String()
}
