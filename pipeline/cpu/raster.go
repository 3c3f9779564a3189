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
	"fmt"

	"github.com/chewxy/math32"

	"github.com/jetsetilly/glowmask/pipeline"
)

// rectangle is the quad after transformation into normalised device
// coordinates, with the texture coordinates at two opposite corners.
type rectangle struct {
	minX, minY float32
	maxX, maxY float32

	// texture coordinates at the min and max corners
	minU, minV float32
	maxU, maxV float32
}

// project transforms the vertices of the quad. the result must be an axis
// aligned rectangle.
func project(quad pipeline.Quad, xf pipeline.Transform) (rectangle, error) {
	var r rectangle
	r.minX, r.minY = math32.MaxFloat32, math32.MaxFloat32
	r.maxX, r.maxY = -math32.MaxFloat32, -math32.MaxFloat32

	n := quad.NumVertices()
	ndc := make([][2]float32, n)
	for i := 0; i < n; i++ {
		p := xf.Apply(quad.Position(i))
		if p.Z() < -1.0 || p.Z() > 1.0 {
			return r, fmt.Errorf("vertex %d is clipped (z=%f)", i, p.Z())
		}
		ndc[i] = [2]float32{p.X(), p.Y()}
		r.minX = math32.Min(r.minX, p.X())
		r.minY = math32.Min(r.minY, p.Y())
		r.maxX = math32.Max(r.maxX, p.X())
		r.maxY = math32.Max(r.maxY, p.Y())
	}

	if r.maxX <= r.minX || r.maxY <= r.minY {
		return r, fmt.Errorf("quad has no area")
	}

	var foundMin, foundMax bool
	for i := 0; i < n; i++ {
		u, v := quad.TexCoord(i)
		switch {
		case ndc[i] == [2]float32{r.minX, r.minY}:
			r.minU, r.minV = u, v
			foundMin = true
		case ndc[i] == [2]float32{r.maxX, r.maxY}:
			r.maxU, r.maxV = u, v
			foundMax = true
		}
	}

	if !foundMin || !foundMax {
		return r, fmt.Errorf("quad is not an axis aligned rectangle")
	}

	return r, nil
}

func (r rectangle) coversX(x float32) bool {
	return x >= r.minX && x < r.maxX
}

func (r rectangle) coversY(y float32) bool {
	return y >= r.minY && y < r.maxY
}

// texCoord interpolates the texture coordinates at the point.
func (r rectangle) texCoord(x float32, y float32) (float32, float32) {
	u := r.minU + (x-r.minX)/(r.maxX-r.minX)*(r.maxU-r.minU)
	v := r.minV + (y-r.minY)/(r.maxY-r.minY)*(r.maxV-r.minV)
	return u, v
}
