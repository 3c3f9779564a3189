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
	"github.com/go-gl/mathgl/mgl32"
)

// the fixed camera.
const (
	zNear = 0.1
	zFar  = 100.0
)

// the quad lies in the z=1 plane. moving it back by five places it between
// zNear and zFar.
const cameraDistance = -5.0

// Transform is the pair of matrices given to every pass program.
type Transform struct {
	Projection mgl32.Mat4
	ModelView  mgl32.Mat4
}

// NewTransform returns the orthographic projection and model-view
// translation used by every pass.
func NewTransform() Transform {
	return Transform{
		Projection: mgl32.Ortho(-1.0, 1.0, -1.0, 1.0, zNear, zFar),
		ModelView:  mgl32.Translate3D(0.0, 0.0, cameraDistance),
	}
}

// Apply transforms the position to normalised device coordinates.
func (xf Transform) Apply(x, y, z float32) mgl32.Vec3 {
	clip := xf.Projection.Mul4(xf.ModelView).Mul4x1(mgl32.Vec4{x, y, z, 1.0})
	return clip.Vec3().Mul(1.0 / clip.W())
}
