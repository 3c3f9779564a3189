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
	"image"
)

// Resource is implemented by every handle returned by a Device.
type Resource interface {
	// Destroy releases the resources held by the device for the handle.
	// The handle must not be used after Destroy().
	Destroy()
}

// Texture is a handle to an image held by the device.
type Texture interface {
	Resource
	Bounds() image.Rectangle
}

// Target is an offscreen render target. A nil Target in a call to a Device
// function means the visible surface.
type Target interface {
	Resource
	ID() int
	Texture() Texture
}

// Program is a compiled pass program.
type Program interface {
	Resource
	Pass() Pass
}

// Geometry is the vertex data drawn by every pass.
type Geometry interface {
	Resource
	Count() int
}

// Device is implemented by anything that can execute the pipeline passes.
// All Device functions are called from the same goroutine.
type Device interface {
	// CompileProgram compiles and links the program for the pass from the
	// vertex and fragment sources.
	CompileProgram(pass Pass, vertex string, fragment string) (Program, error)

	// CreateGeometry uploads the quad.
	CreateGeometry(quad Quad) (Geometry, error)

	// AllocateTargets creates count square targets of the dimension. The
	// targets are cleared to transparent black.
	AllocateTargets(count int, dimension int) ([]Target, error)

	// CreateTexture creates a texture from the image. The first row of the
	// image is the top of the texture.
	CreateTexture(img image.Image) (Texture, error)

	// UpdateTexture replaces the contents of a texture created with
	// CreateTexture(). The image can be a different size to the existing
	// texture.
	UpdateTexture(tex Texture, img image.Image) error

	// Execute draws the geometry with the program. The source texture is
	// bound to the program's sampler and the result is written to the
	// destination. A nil destination means the surface.
	Execute(prog Program, src Texture, dest Target, geom Geometry, xf Transform) error

	// ReadPixels returns a copy of the contents of the target. A nil target
	// means the surface. The first row of the returned image is the top of
	// the target.
	ReadPixels(t Target) (*image.RGBA, error)

	// Err returns the most recent error reported by the device, if any.
	Err() error
}
