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

package pipeline

import (
	"github.com/jetsetilly/glowmask/curated"
	"github.com/jetsetilly/glowmask/pipeline/shaders"
)

// PipelineState holds the device resources used by the pipeline. It is
// created by NewPipelineState() and must be destroyed with Destroy().
type PipelineState struct {
	Programs [NumPasses]Program
	Geometry Geometry
	Targets  []Target

	// the source texture is nil until the first image has been received
	Source Texture
}

// Definitions returns the values given to the shader sources.
func Definitions() shaders.Definitions {
	return shaders.Definitions{
		Dimension:    Dimension,
		SampleRadius: SampleRadius,
		Threshold:    ThresholdLength,
		HaloLow:      HaloLow,
		HaloHigh:     HaloHigh,
	}
}

// fragment sources for each pass.
var fragments = [NumPasses]string{
	Threshold:      shaders.ThresholdFragment,
	HorizontalBlur: shaders.HorizontalBlurFragment,
	VerticalBlur:   shaders.VerticalBlurFragment,
}

// ProgramSources returns the assembled vertex and fragment shader sources for
// the pass.
func ProgramSources(p Pass) (string, string) {
	defs := Definitions()
	return shaders.Assemble(shaders.Vertex, defs), shaders.Assemble(fragments[p], defs)
}

// NewPipelineState compiles the pass programs, uploads the geometry and
// allocates the offscreen targets. Any error is a curated SetupFatal error.
// Resources that have been created before an error are destroyed.
func NewPipelineState(dev Device) (*PipelineState, error) {
	st := &PipelineState{}

	for p := Threshold; p < NumPasses; p++ {
		vertex, fragment := ProgramSources(p)
		prog, err := dev.CompileProgram(p, vertex, fragment)
		if err != nil {
			st.Destroy()
			return nil, curated.Errorf(SetupFatal, curated.Errorf("%v program: %v", p, err))
		}
		st.Programs[p] = prog
	}

	var err error

	st.Geometry, err = dev.CreateGeometry(NewQuad())
	if err != nil {
		st.Destroy()
		return nil, curated.Errorf(SetupFatal, err)
	}

	st.Targets, err = dev.AllocateTargets(NumTargets, Dimension)
	if err != nil {
		st.Destroy()
		return nil, curated.Errorf(SetupFatal, err)
	}

	return st, nil
}

// Destroy releases every resource in the state. It is safe to call Destroy()
// more than once.
func (st *PipelineState) Destroy() {
	for i, p := range st.Programs {
		if p != nil {
			p.Destroy()
			st.Programs[i] = nil
		}
	}
	if st.Geometry != nil {
		st.Geometry.Destroy()
		st.Geometry = nil
	}
	for _, t := range st.Targets {
		t.Destroy()
	}
	st.Targets = nil
	if st.Source != nil {
		st.Source.Destroy()
		st.Source = nil
	}
}
