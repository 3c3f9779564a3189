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

// Quad is the vertex data for a unit quad in the z=1 plane, with texture
// coordinates covering the whole of the texture.
type Quad struct {
	Positions []float32
	TexCoords []float32
	Indices   []uint16
}

// NewQuad returns the quad used by every pass.
func NewQuad() Quad {
	return Quad{
		Positions: []float32{
			-1.0, -1.0, 1.0,
			1.0, -1.0, 1.0,
			1.0, 1.0, 1.0,
			-1.0, 1.0, 1.0,
		},
		TexCoords: []float32{
			0.0, 0.0,
			1.0, 0.0,
			1.0, 1.0,
			0.0, 1.0,
		},
		Indices: []uint16{
			0, 1, 2,
			0, 2, 3,
		},
	}
}

// NumVertices returns the number of vertices in the quad.
func (q Quad) NumVertices() int {
	return len(q.Positions) / 3
}

// Position returns the position of the numbered vertex.
func (q Quad) Position(i int) (x, y, z float32) {
	return q.Positions[i*3], q.Positions[i*3+1], q.Positions[i*3+2]
}

// TexCoord returns the texture coordinate of the numbered vertex.
func (q Quad) TexCoord(i int) (u, v float32) {
	return q.TexCoords[i*2], q.TexCoords[i*2+1]
}
