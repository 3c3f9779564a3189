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

// Package opengl implements the pipeline.Device interface with OpenGL 3.2
// core profile. The functions of the Device must be called from the
// goroutine that owns the OpenGL context, which will be the main thread.
//
// Shader compilation and link errors are returned with the diagnostic
// message from the driver. The programs are compiled from the sources in
// the shaders package.
//
// The surface is the default framebuffer. The size of the surface must be
// kept up to date with SetSurfaceSize() so that the final pass of the
// pipeline covers the window.
package opengl
