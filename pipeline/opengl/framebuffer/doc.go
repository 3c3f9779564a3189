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

// Package framebuffer provides a convenient way of working with OpenGL
// framebuffers. The Sequence type conceptualises a sequence of textures, each
// attached to its own framebuffer object as the sole colour attachment.
//
// The key to the Sequence type is the texture index. This is not to be
// confused with the texture ID. The number of textures (and therefore texture
// indices) is defined at Sequence creation, with NewSequence().
//
// For example, to create a framebuffer sequence with two textures:
//
//	seq := NewSequence(2)
//
// The Setup() function must be called once after NewSequence(). Storage for
// the textures is created with the given dimensions. An error is returned if
// a framebuffer is not complete. The content of a texture is undefined until
// it has been cleared with Clear() or drawn to.
//
//	err := seq.Setup(768, 768)
//	seq.Clear(0)
//
// The Bind() function binds the framebuffer of the indexed texture as the
// destination of subsequent draw calls. The texture ID returned by Texture()
// can then be used as the source of the next draw.
//
// Textures in the sequence are sampled with nearest filtering and are clamped
// to the edge.
package framebuffer
