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
	"strings"

	"github.com/go-gl/gl/v3.2-core/gl"

	"github.com/jetsetilly/glowmask/pipeline"
	"github.com/jetsetilly/glowmask/pipeline/shaders"
)

type program struct {
	handle uint32
	pass   pipeline.Pass

	// vertex
	projection int32 // uniform
	modelView  int32 // uniform
	position   int32
	texCoord   int32

	// fragment
	sampler int32 // uniform
}

func (prog *program) Destroy() {
	if prog.handle != 0 {
		gl.DeleteProgram(prog.handle)
		prog.handle = 0
	}
}

func (prog *program) Pass() pipeline.Pass {
	return prog.pass
}

// CompileProgram implements the pipeline.Device interface.
func (dev *Device) CompileProgram(pass pipeline.Pass, vertex string, fragment string) (pipeline.Program, error) {
	handle, err := LinkProgram(vertex, fragment, shaders.FragmentOutput)
	if err != nil {
		return nil, err
	}

	prog := &program{
		handle: handle,
		pass:   pass,
	}

	// get references to shader attributes and uniform variables
	prog.projection = gl.GetUniformLocation(prog.handle, gl.Str(shaders.UniformProjection+"\x00"))
	prog.modelView = gl.GetUniformLocation(prog.handle, gl.Str(shaders.UniformModelView+"\x00"))
	prog.sampler = gl.GetUniformLocation(prog.handle, gl.Str(shaders.UniformSampler+"\x00"))
	prog.position = gl.GetAttribLocation(prog.handle, gl.Str(shaders.AttribVertexPosition+"\x00"))
	prog.texCoord = gl.GetAttribLocation(prog.handle, gl.Str(shaders.AttribTextureCoord+"\x00"))

	if prog.position < 0 || prog.texCoord < 0 {
		prog.Destroy()
		return nil, fmt.Errorf("link: missing vertex attributes")
	}

	return prog, nil
}

// LinkProgram compiles the vertex and fragment sources and links them into a
// program. The output argument names the fragment shader output variable
// bound to colour attachment zero. Compile and link errors include the
// diagnostic log of the driver.
func LinkProgram(vertex string, fragment string, output string) (uint32, error) {
	vertHandle, err := compileShader(gl.VERTEX_SHADER, vertex)
	if err != nil {
		return 0, fmt.Errorf("vertex: %w", err)
	}
	defer gl.DeleteShader(vertHandle)

	fragHandle, err := compileShader(gl.FRAGMENT_SHADER, fragment)
	if err != nil {
		return 0, fmt.Errorf("fragment: %w", err)
	}
	defer gl.DeleteShader(fragHandle)

	handle := gl.CreateProgram()
	gl.AttachShader(handle, vertHandle)
	gl.AttachShader(handle, fragHandle)
	gl.BindFragDataLocation(handle, 0, gl.Str(output+"\x00"))
	gl.LinkProgram(handle)

	if log := getProgramLinkError(handle); log != "" {
		gl.DeleteProgram(handle)
		return 0, fmt.Errorf("link: %s", log)
	}

	// now that the program has linked we no longer need the individual
	// shaders
	gl.DetachShader(handle, vertHandle)
	gl.DetachShader(handle, fragHandle)

	return handle, nil
}

func compileShader(typ uint32, source string) (uint32, error) {
	handle := gl.CreateShader(typ)

	csource, free := gl.Strs(source + "\x00")
	defer free()
	gl.ShaderSource(handle, 1, csource, nil)
	gl.CompileShader(handle)

	if log := getShaderCompileError(handle); log != "" {
		gl.DeleteShader(handle)
		return 0, fmt.Errorf("compile: %s", log)
	}

	return handle, nil
}

// getShaderCompileError returns the most recent error generated by the
// shader compiler.
func getShaderCompileError(handle uint32) string {
	var isCompiled int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &isCompiled)
	if isCompiled != gl.FALSE {
		return ""
	}

	var logLength int32
	gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return "unknown error"
	}

	// the length includes the NULL character
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(handle, logLength, nil, gl.Str(log))
	return strings.TrimSpace(strings.TrimRight(log, "\x00"))
}

// getProgramLinkError returns the most recent error generated by the shader
// linker.
func getProgramLinkError(handle uint32) string {
	var isLinked int32
	gl.GetProgramiv(handle, gl.LINK_STATUS, &isLinked)
	if isLinked != gl.FALSE {
		return ""
	}

	var logLength int32
	gl.GetProgramiv(handle, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return "unknown error"
	}

	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(handle, logLength, nil, gl.Str(log))
	return strings.TrimSpace(strings.TrimRight(log, "\x00"))
}
